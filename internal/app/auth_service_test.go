package app

import (
	"context"
	"testing"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
)

// low cost keeps the hashing fast in tests
const testBcryptCost = 4

func TestAuthServiceRegister(t *testing.T) {
	accountRepo := newFakeAccountRepo()
	sessions := newFakeSessionStore()
	service := NewAuthService(accountRepo, sessions, testBcryptCost)

	result, err := service.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret1",
		Role:     "job_seeker",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Account.Email != "alice@example.com" {
		t.Fatalf("expected email lowercased, got %q", result.Account.Email)
	}
	if result.Account.Role != account.RoleJobSeeker {
		t.Fatalf("expected role job_seeker, got %s", result.Account.Role)
	}
	if result.Account.PasswordHash == "secret1" || result.Account.PasswordHash == "" {
		t.Fatal("expected password to be hashed")
	}
	if result.Token == "" {
		t.Fatal("expected session token")
	}
	accountID, err := sessions.Get(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("expected session to exist, got %v", err)
	}
	if accountID != result.Account.ID {
		t.Fatal("expected session bound to the new account")
	}
}

func TestAuthServiceRegister_Validation(t *testing.T) {
	service := NewAuthService(newFakeAccountRepo(), newFakeSessionStore(), testBcryptCost)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "a",
		Email:    "not-an-email",
		Password: "short",
		Role:     "admin",
	})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthServiceRegister_DuplicateEmail(t *testing.T) {
	service := NewAuthService(newFakeAccountRepo(), newFakeSessionStore(), testBcryptCost)

	input := RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1", Role: "job_seeker"}
	if _, err := service.Register(context.Background(), input); err != nil {
		t.Fatalf("expected first register to succeed, got %v", err)
	}
	input.Username = "alice2"
	_, err := service.Register(context.Background(), input)
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthServiceRegister_DuplicateUsername(t *testing.T) {
	service := NewAuthService(newFakeAccountRepo(), newFakeSessionStore(), testBcryptCost)

	if _, err := service.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret1", Role: "job_seeker",
	}); err != nil {
		t.Fatalf("expected first register to succeed, got %v", err)
	}
	_, err := service.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice2@example.com", Password: "secret1", Role: "job_seeker",
	})
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthServiceLogin(t *testing.T) {
	service := NewAuthService(newFakeAccountRepo(), newFakeSessionStore(), testBcryptCost)

	if _, err := service.Register(context.Background(), RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret1",
		Role:     "employer",
	}); err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}

	result, err := service.Login(context.Background(), "BOB@example.com", "secret1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected session token")
	}
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	service := NewAuthService(newFakeAccountRepo(), newFakeSessionStore(), testBcryptCost)

	if _, err := service.Register(context.Background(), RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret1",
		Role:     "employer",
	}); err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}

	_, err := service.Login(context.Background(), "bob@example.com", "wrong")
	if !common.Is(err, common.CodeUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthServiceLogin_UnknownEmail(t *testing.T) {
	service := NewAuthService(newFakeAccountRepo(), newFakeSessionStore(), testBcryptCost)

	_, err := service.Login(context.Background(), "nobody@example.com", "secret1")
	if !common.Is(err, common.CodeUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthServiceLogout(t *testing.T) {
	sessions := newFakeSessionStore()
	service := NewAuthService(newFakeAccountRepo(), sessions, testBcryptCost)

	result, err := service.Register(context.Background(), RegisterInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "secret1",
		Role:     "job_seeker",
	})
	if err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}

	if err := service.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("expected logout to succeed, got %v", err)
	}
	if _, err := sessions.Get(context.Background(), result.Token); !common.Is(err, common.CodeUnauthenticated) {
		t.Fatalf("expected session gone, got %v", err)
	}
}
