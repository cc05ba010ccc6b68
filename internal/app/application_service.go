package app

import (
	"context"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/domain/application"
	"github.com/gitlord217/jobhubproapp/internal/domain/job"
)

type ApplicationService struct {
	repo application.Repository
	jobs job.Repository
}

func NewApplicationService(repo application.Repository, jobs job.Repository) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs}
}

func (s *ApplicationService) Apply(ctx context.Context, candidateID, jobID common.UUID, coverLetter string) (*application.Application, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.StatusPublished {
		return nil, common.NewError(common.CodeValidation, "job is not accepting applications", nil)
	}
	// fast path only; the (job_id, candidate_id) unique constraint is the
	// guarantee under concurrent submissions
	if _, err := s.repo.FindByJobAndCandidate(ctx, jobID, candidateID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied to this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	return s.repo.Create(ctx, application.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      application.StatusPending,
		CoverLetter: coverLetter,
	})
}

// Withdraw deletes the caller's application for a job. Any status may be
// withdrawn, including post-offer.
func (s *ApplicationService) Withdraw(ctx context.Context, candidateID, jobID common.UUID) error {
	return s.repo.Delete(ctx, jobID, candidateID)
}

func (s *ApplicationService) TransitionStatus(ctx context.Context, applicationID, callerID common.UUID, rawStatus string) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	j, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if j.EmployerID != callerID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another employer's job", nil)
	}
	next, err := application.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if application.IsTerminal(app.Status) {
		return nil, common.NewError(common.CodeValidation, "application status is final", nil)
	}
	if !application.CanTransition(app.Status, next) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	return s.repo.UpdateStatus(ctx, applicationID, next)
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID, callerID common.UUID) ([]application.Details, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.EmployerID != callerID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another employer", nil)
	}
	return s.repo.ListByJob(ctx, jobID)
}

// ListByCandidate lets a candidate read their own applications; employers may
// read any candidate's list.
func (s *ApplicationService) ListByCandidate(ctx context.Context, candidateID, callerID common.UUID, callerRole account.Role) ([]application.Details, error) {
	if callerID != candidateID && callerRole != account.RoleEmployer {
		return nil, common.NewError(common.CodeForbidden, "cannot view another candidate's applications", nil)
	}
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *ApplicationService) ListByEmployer(ctx context.Context, employerID, callerID common.UUID) ([]application.Details, error) {
	if employerID != callerID {
		return nil, common.NewError(common.CodeForbidden, "cannot view another employer's applications", nil)
	}
	return s.repo.ListByEmployer(ctx, employerID)
}
