package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gitlord217/jobhubproapp/internal/app"
	"github.com/gitlord217/jobhubproapp/internal/config"
	"github.com/gitlord217/jobhubproapp/internal/database"
	apphttp "github.com/gitlord217/jobhubproapp/internal/http"
	"github.com/gitlord217/jobhubproapp/internal/http/handlers"
	httpmw "github.com/gitlord217/jobhubproapp/internal/http/middleware"
	"github.com/gitlord217/jobhubproapp/internal/observability"
	"github.com/gitlord217/jobhubproapp/internal/repository/postgres"
	"github.com/gitlord217/jobhubproapp/internal/session"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	accountRepo := postgres.NewAccountRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	authService := app.NewAuthService(accountRepo, sessions, cfg.BcryptCost)
	accountService := app.NewAccountService(accountRepo)
	jobService := app.NewJobService(jobRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo)
	analyticsService := app.NewAnalyticsService(analyticsRepo)

	rateLimiter := httpmw.NewRedisLimiter(redisClient)
	authHandler := handlers.NewAuthHandler(authService, rateLimiter, cfg.SessionTTL)
	accountHandler := handlers.NewAccountHandler(accountService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, rateLimiter)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	sessionAuth := httpmw.NewSessionAuth(sessions, accountRepo)

	collector := httpmw.NewCollector()

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        authHandler,
		AccountHandler:     accountHandler,
		JobHandler:         jobHandler,
		ApplicationHandler: applicationHandler,
		AnalyticsHandler:   analyticsHandler,
		SessionAuth:        sessionAuth,
		Metrics:            collector,
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("API started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
	logger.Info().Msg("server stopped")
}
