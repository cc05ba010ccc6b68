package postgres

import (
	"context"
	"database/sql"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) CountJobs(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM jobs`)
}

func (r *AnalyticsRepository) CountAccountsByRole(ctx context.Context, role string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role)
}

func (r *AnalyticsRepository) CountApplications(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM applications`)
}

func (r *AnalyticsRepository) CountApplicationsByStatus(ctx context.Context, status string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM applications WHERE status = $1`, status)
}

func (r *AnalyticsRepository) ListJobTitles(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT title FROM jobs`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job titles", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job title", err)
		}
		titles = append(titles, title)
	}
	return titles, nil
}

func (r *AnalyticsRepository) ApplicationsPerDay(ctx context.Context) ([]analytics.TrendPoint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DATE(applied_at)::text, COUNT(*)
		FROM applications
		GROUP BY DATE(applied_at)
		ORDER BY DATE(applied_at)`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to aggregate application trends", err)
	}
	defer rows.Close()

	var points []analytics.TrendPoint
	for rows.Next() {
		var point analytics.TrendPoint
		if err := rows.Scan(&point.Date, &point.Count); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan trend point", err)
		}
		points = append(points, point)
	}
	return points, nil
}

func (r *AnalyticsRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count rows", err)
	}
	return total, nil
}
