package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = "id, employer_id, title, company, location, job_type, experience_level, salary_min, salary_max, description, requirements, skills, contact_email, deadline, status, created_at, updated_at"

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	if j.Skills == nil {
		j.Skills = []string{}
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, employer_id, title, company, location, job_type, experience_level, salary_min, salary_max, description, requirements, skills, contact_email, deadline, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		j.ID, j.EmployerID, j.Title, j.Company, j.Location, j.JobType, nullString(j.ExperienceLevel), j.SalaryMin, j.SalaryMax,
		j.Description, nullString(j.Requirements), pq.Array(j.Skills), nullString(j.ContactEmail), j.Deadline, j.Status, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJobFields(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return j, nil
}

// GetWithEmployer joins the owning account. A dangling employer reference
// makes the whole job unavailable for single-entity reads.
func (r *JobRepository) GetWithEmployer(ctx context.Context, id common.UUID) (*job.WithEmployer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+prefixedJobColumns+`, `+employerColumns+`
		FROM jobs j
		JOIN users u ON u.id = j.employer_id
		WHERE j.id = $1`, id)
	item, err := scanJobWithEmployer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return item, nil
}

func (r *JobRepository) ListPublished(ctx context.Context, filters job.Filters) ([]job.WithEmployer, int, error) {
	where := []string{"j.status = $1"}
	args := []any{job.StatusPublished}
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		placeholder := arg(pattern)
		where = append(where, fmt.Sprintf("(j.title ILIKE %s OR j.company ILIKE %s OR j.description ILIKE %s)", placeholder, placeholder, placeholder))
	}
	if filters.Location != "" {
		where = append(where, "j.location ILIKE "+arg("%"+filters.Location+"%"))
	}
	if filters.JobType != "" {
		where = append(where, "j.job_type = "+arg(filters.JobType))
	}
	if filters.ExperienceLevel != "" {
		where = append(where, "j.experience_level = "+arg(filters.ExperienceLevel))
	}
	if filters.SalaryMin != nil {
		where = append(where, "j.salary_max >= "+arg(*filters.SalaryMin))
	}
	if filters.SalaryMax != nil {
		where = append(where, "j.salary_min <= "+arg(*filters.SalaryMax))
	}
	if len(filters.Skills) > 0 {
		where = append(where, "j.skills && "+arg(pq.Array(filters.Skills)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM jobs j JOIN users u ON u.id = j.employer_id WHERE ` + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, filters.Offset)
	query := fmt.Sprintf(`SELECT %s, %s
		FROM jobs j
		JOIN users u ON u.id = j.employer_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, prefixedJobColumns, employerColumns, whereClause, orderClause(filters.SortBy), len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()

	var items []job.WithEmployer
	for rows.Next() {
		item, err := scanJobWithEmployer(rows)
		if err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *item)
	}
	return items, total, nil
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`, employerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list employer jobs", err)
	}
	defer rows.Close()

	var items []job.Job
	for rows.Next() {
		j, err := scanJobFields(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *j)
	}
	return items, nil
}

func (r *JobRepository) Update(ctx context.Context, id common.UUID, update job.Update) (*job.Job, error) {
	assignments := []string{}
	args := []any{}
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}
	if update.Title != nil {
		assignments = append(assignments, "title = "+arg(*update.Title))
	}
	if update.Company != nil {
		assignments = append(assignments, "company = "+arg(*update.Company))
	}
	if update.Location != nil {
		assignments = append(assignments, "location = "+arg(*update.Location))
	}
	if update.JobType != nil {
		assignments = append(assignments, "job_type = "+arg(*update.JobType))
	}
	if update.ExperienceLevel != nil {
		assignments = append(assignments, "experience_level = "+arg(nullString(*update.ExperienceLevel)))
	}
	if update.SalaryMin != nil {
		assignments = append(assignments, "salary_min = "+arg(*update.SalaryMin))
	}
	if update.SalaryMax != nil {
		assignments = append(assignments, "salary_max = "+arg(*update.SalaryMax))
	}
	if update.Description != nil {
		assignments = append(assignments, "description = "+arg(*update.Description))
	}
	if update.Requirements != nil {
		assignments = append(assignments, "requirements = "+arg(nullString(*update.Requirements)))
	}
	if update.Skills != nil {
		assignments = append(assignments, "skills = "+arg(pq.Array(update.Skills)))
	}
	if update.ContactEmail != nil {
		assignments = append(assignments, "contact_email = "+arg(nullString(*update.ContactEmail)))
	}
	if update.Deadline != nil {
		assignments = append(assignments, "deadline = "+arg(*update.Deadline))
	}
	if update.Status != nil {
		assignments = append(assignments, "status = "+arg(*update.Status))
	}
	assignments = append(assignments, "updated_at = "+arg(time.Now().UTC()))

	query := "UPDATE jobs SET " + strings.Join(assignments, ", ") + " WHERE id = " + arg(id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

const prefixedJobColumns = "j.id, j.employer_id, j.title, j.company, j.location, j.job_type, j.experience_level, j.salary_min, j.salary_max, j.description, j.requirements, j.skills, j.contact_email, j.deadline, j.status, j.created_at, j.updated_at"

const employerColumns = "u.id, u.username, u.email, u.role, u.profile_data, u.created_at"

func orderClause(sortBy job.SortKey) string {
	switch sortBy {
	case job.SortSalaryHigh:
		return "j.salary_max DESC NULLS LAST, j.created_at DESC"
	case job.SortSalaryLow:
		return "j.salary_min ASC NULLS LAST, j.created_at DESC"
	default:
		// relevance has no ranking signal beyond recency
		return "j.created_at DESC"
	}
}

func scanJobFields(row rowScanner) (*job.Job, error) {
	var j job.Job
	var experience, requirements, contactEmail sql.NullString
	var deadline sql.NullTime
	if err := row.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location, &j.JobType, &experience,
		&j.SalaryMin, &j.SalaryMax, &j.Description, &requirements, pq.Array(&j.Skills), &contactEmail,
		&deadline, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	j.ExperienceLevel = experience.String
	j.Requirements = requirements.String
	j.ContactEmail = contactEmail.String
	if deadline.Valid {
		j.Deadline = &deadline.Time
	}
	return &j, nil
}

func scanJobWithEmployer(row rowScanner) (*job.WithEmployer, error) {
	var j job.Job
	var emp account.Account
	var experience, requirements, contactEmail sql.NullString
	var deadline sql.NullTime
	var profile []byte
	if err := row.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location, &j.JobType, &experience,
		&j.SalaryMin, &j.SalaryMax, &j.Description, &requirements, pq.Array(&j.Skills), &contactEmail,
		&deadline, &j.Status, &j.CreatedAt, &j.UpdatedAt,
		&emp.ID, &emp.Username, &emp.Email, &emp.Role, &profile, &emp.CreatedAt); err != nil {
		return nil, err
	}
	j.ExperienceLevel = experience.String
	j.Requirements = requirements.String
	j.ContactEmail = contactEmail.String
	if deadline.Valid {
		j.Deadline = &deadline.Time
	}
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &emp.ProfileData); err != nil {
			return nil, err
		}
	}
	return &job.WithEmployer{Job: j, Employer: &emp}, nil
}

func nullString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
