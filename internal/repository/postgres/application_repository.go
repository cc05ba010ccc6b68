package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/domain/application"
	"github.com/gitlord217/jobhubproapp/internal/domain/job"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = "id, job_id, candidate_id, status, cover_letter, match_score, applied_at, updated_at"

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, job_id, candidate_id, status, cover_letter, match_score, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID, app.JobID, app.CandidateID, app.Status, nullString(app.CoverLetter), app.MatchScore, app.AppliedAt, app.UpdatedAt)
	if err != nil {
		// the (job_id, candidate_id) constraint is the correctness guarantee
		// against concurrent duplicate submissions
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplicationFields(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND candidate_id = $2`, jobID, candidateID)
	app, err := scanApplicationFields(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Details, error) {
	return r.listDetails(ctx, `WHERE a.job_id = $1`, jobID)
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Details, error) {
	return r.listDetails(ctx, `WHERE a.candidate_id = $1`, candidateID)
}

// ListByEmployer fans the employer's jobs in as a single join instead of one
// round-trip per job.
func (r *ApplicationRepository) ListByEmployer(ctx context.Context, employerID common.UUID) ([]application.Details, error) {
	return r.listDetails(ctx, `WHERE j.employer_id = $1`, employerID)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) Delete(ctx context.Context, jobID, candidateID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE job_id = $1 AND candidate_id = $2`, jobID, candidateID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return nil
}

// listDetails joins job and candidate data. Rows whose join partners are
// missing are omitted rather than failing the whole listing.
func (r *ApplicationRepository) listDetails(ctx context.Context, where string, arg any) ([]application.Details, error) {
	query := `SELECT a.id, a.job_id, a.candidate_id, a.status, a.cover_letter, a.match_score, a.applied_at, a.updated_at,
		` + prefixedJobColumns + `,
		u.id, u.username, u.email, u.role, u.profile_data, u.created_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.candidate_id
		` + where + `
		ORDER BY a.applied_at DESC`
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()

	var items []application.Details
	for rows.Next() {
		item, err := scanApplicationDetails(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *item)
	}
	return items, nil
}

func scanApplicationFields(row rowScanner) (*application.Application, error) {
	var app application.Application
	var coverLetter sql.NullString
	if err := row.Scan(&app.ID, &app.JobID, &app.CandidateID, &app.Status, &coverLetter, &app.MatchScore, &app.AppliedAt, &app.UpdatedAt); err != nil {
		return nil, err
	}
	app.CoverLetter = coverLetter.String
	return &app, nil
}

func scanApplicationDetails(row rowScanner) (*application.Details, error) {
	var app application.Application
	var coverLetter sql.NullString
	var j job.Job
	var experience, requirements, contactEmail sql.NullString
	var deadline sql.NullTime
	var cand account.Account
	var profile []byte
	if err := row.Scan(&app.ID, &app.JobID, &app.CandidateID, &app.Status, &coverLetter, &app.MatchScore, &app.AppliedAt, &app.UpdatedAt,
		&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location, &j.JobType, &experience,
		&j.SalaryMin, &j.SalaryMax, &j.Description, &requirements, pq.Array(&j.Skills), &contactEmail,
		&deadline, &j.Status, &j.CreatedAt, &j.UpdatedAt,
		&cand.ID, &cand.Username, &cand.Email, &cand.Role, &profile, &cand.CreatedAt); err != nil {
		return nil, err
	}
	app.CoverLetter = coverLetter.String
	j.ExperienceLevel = experience.String
	j.Requirements = requirements.String
	j.ContactEmail = contactEmail.String
	if deadline.Valid {
		j.Deadline = &deadline.Time
	}
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &cand.ProfileData); err != nil {
			return nil, err
		}
	}
	return &application.Details{Application: app, Job: &j, Candidate: &cand}, nil
}
