package app

import (
	"context"
	"strings"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/job"
)

type JobService struct {
	repo job.Repository
}

func NewJobService(repo job.Repository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	if err := validateRequiredJobFields(j); err != nil {
		return nil, err
	}
	if err := validateSalaryBounds(j.SalaryMin, j.SalaryMax); err != nil {
		return nil, err
	}
	if j.Status == "" {
		j.Status = job.StatusPublished
	}
	if _, err := job.ParseStatus(string(j.Status)); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, j)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.WithEmployer, error) {
	return s.repo.GetWithEmployer(ctx, id)
}

// List returns published jobs only, regardless of filters.
func (s *JobService) List(ctx context.Context, filters job.Filters) ([]job.WithEmployer, int, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	return s.repo.ListPublished(ctx, filters)
}

func (s *JobService) Update(ctx context.Context, id, callerID common.UUID, update job.Update) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.EmployerID != callerID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another employer", nil)
	}

	fields := map[string]string{}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		fields["title"] = "title cannot be empty"
	}
	if update.Company != nil && strings.TrimSpace(*update.Company) == "" {
		fields["company"] = "company cannot be empty"
	}
	if update.Location != nil && strings.TrimSpace(*update.Location) == "" {
		fields["location"] = "location cannot be empty"
	}
	if update.JobType != nil && strings.TrimSpace(*update.JobType) == "" {
		fields["jobType"] = "jobType cannot be empty"
	}
	if update.Description != nil && strings.TrimSpace(*update.Description) == "" {
		fields["description"] = "description cannot be empty"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid job data", fields)
	}
	if update.Status != nil {
		if _, err := job.ParseStatus(string(*update.Status)); err != nil {
			return nil, err
		}
	}

	// salary sanity is checked against the merged record so a partial update
	// cannot invert the bounds
	mergedMin := current.SalaryMin
	if update.SalaryMin != nil {
		mergedMin = update.SalaryMin
	}
	mergedMax := current.SalaryMax
	if update.SalaryMax != nil {
		mergedMax = update.SalaryMax
	}
	if err := validateSalaryBounds(mergedMin, mergedMax); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, update)
}

func (s *JobService) Delete(ctx context.Context, id, callerID common.UUID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.EmployerID != callerID {
		return common.NewError(common.CodeForbidden, "job belongs to another employer", nil)
	}
	return s.repo.Delete(ctx, id)
}

func validateRequiredJobFields(j job.Job) error {
	fields := map[string]string{}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(j.Company) == "" {
		fields["company"] = "company is required"
	}
	if strings.TrimSpace(j.Location) == "" {
		fields["location"] = "location is required"
	}
	if strings.TrimSpace(j.JobType) == "" {
		fields["jobType"] = "jobType is required"
	}
	if strings.TrimSpace(j.Description) == "" {
		fields["description"] = "description is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job data", fields)
	}
	return nil
}

func validateSalaryBounds(min, max *int) error {
	fields := map[string]string{}
	if min != nil && *min < 0 {
		fields["salaryMin"] = "salaryMin cannot be negative"
	}
	if max != nil && *max < 0 {
		fields["salaryMax"] = "salaryMax cannot be negative"
	}
	if min != nil && max != nil && *min > *max {
		fields["salaryMin"] = "salaryMin cannot exceed salaryMax"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid salary bounds", fields)
	}
	return nil
}
