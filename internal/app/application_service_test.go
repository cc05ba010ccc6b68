package app

import (
	"context"
	"testing"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/domain/application"
	"github.com/gitlord217/jobhubproapp/internal/domain/job"
)

func seedJob(t *testing.T, repo *fakeJobRepo, employerID common.UUID, status job.Status) *job.Job {
	t.Helper()
	created, err := repo.Create(context.Background(), job.Job{
		EmployerID:  employerID,
		Title:       "Backend Developer",
		Company:     "Acme",
		Location:    "Remote",
		JobType:     "full-time",
		Description: "Build APIs",
		Status:      status,
	})
	if err != nil {
		t.Fatalf("expected job created, got %v", err)
	}
	return created
}

func TestApplicationServiceApply_CreatesPending(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	employerID := common.NewUUID()
	candidateID := common.NewUUID()
	j := seedJob(t, jobRepo, employerID, job.StatusPublished)

	created, err := service.Apply(context.Background(), candidateID, j.ID, "I would like this job")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected status pending, got %s", created.Status)
	}
	if created.JobID != j.ID || created.CandidateID != candidateID {
		t.Fatal("expected application bound to job and candidate")
	}
	if created.CoverLetter != "I would like this job" {
		t.Fatalf("expected cover letter stored, got %q", created.CoverLetter)
	}
}

func TestApplicationServiceApply_DuplicateIsConflict(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	candidateID := common.NewUUID()
	j := seedJob(t, jobRepo, common.NewUUID(), job.StatusPublished)

	if _, err := service.Apply(context.Background(), candidateID, j.ID, ""); err != nil {
		t.Fatalf("expected first apply to succeed, got %v", err)
	}
	_, err := service.Apply(context.Background(), candidateID, j.ID, "")
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestApplicationServiceApply_UnpublishedJobRejected(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	j := seedJob(t, jobRepo, common.NewUUID(), job.StatusDraft)

	_, err := service.Apply(context.Background(), common.NewUUID(), j.ID, "")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceApply_MissingJobIsNotFound(t *testing.T) {
	service := NewApplicationService(newFakeApplicationRepo(), newFakeJobRepo())

	_, err := service.Apply(context.Background(), common.NewUUID(), common.NewUUID(), "")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationServiceTransitionStatus_Forward(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	employerID := common.NewUUID()
	j := seedJob(t, jobRepo, employerID, job.StatusPublished)
	created, err := service.Apply(context.Background(), common.NewUUID(), j.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	updated, err := service.TransitionStatus(context.Background(), created.ID, employerID, "reviewing")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != application.StatusReviewing {
		t.Fatalf("expected status reviewing, got %s", updated.Status)
	}
}

func TestApplicationServiceTransitionStatus_WrongEmployerForbidden(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	j := seedJob(t, jobRepo, common.NewUUID(), job.StatusPublished)
	created, err := service.Apply(context.Background(), common.NewUUID(), j.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	_, err = service.TransitionStatus(context.Background(), created.ID, common.NewUUID(), "reviewing")
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	stored, err := appRepo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected application to exist, got %v", err)
	}
	if stored.Status != application.StatusPending {
		t.Fatalf("expected status unchanged, got %s", stored.Status)
	}
}

func TestApplicationServiceTransitionStatus_SkippingStageRejected(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	employerID := common.NewUUID()
	j := seedJob(t, jobRepo, employerID, job.StatusPublished)
	created, err := service.Apply(context.Background(), common.NewUUID(), j.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	_, err = service.TransitionStatus(context.Background(), created.ID, employerID, "offer")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceTransitionStatus_TerminalIsFinal(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	employerID := common.NewUUID()
	j := seedJob(t, jobRepo, employerID, job.StatusPublished)
	created, err := service.Apply(context.Background(), common.NewUUID(), j.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}
	if _, err := service.TransitionStatus(context.Background(), created.ID, employerID, "rejected"); err != nil {
		t.Fatalf("expected rejection to succeed, got %v", err)
	}

	_, err = service.TransitionStatus(context.Background(), created.ID, employerID, "reviewing")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceTransitionStatus_FullPathToHired(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	employerID := common.NewUUID()
	j := seedJob(t, jobRepo, employerID, job.StatusPublished)
	created, err := service.Apply(context.Background(), common.NewUUID(), j.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	for _, next := range []string{"reviewing", "interview", "offer", "hired"} {
		if _, err := service.TransitionStatus(context.Background(), created.ID, employerID, next); err != nil {
			t.Fatalf("expected transition to %s, got %v", next, err)
		}
	}
	stored, err := appRepo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected application to exist, got %v", err)
	}
	if stored.Status != application.StatusHired {
		t.Fatalf("expected status hired, got %s", stored.Status)
	}
}

func TestApplicationServiceTransitionStatus_UnknownStatusRejected(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	employerID := common.NewUUID()
	j := seedJob(t, jobRepo, employerID, job.StatusPublished)
	created, err := service.Apply(context.Background(), common.NewUUID(), j.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	_, err = service.TransitionStatus(context.Background(), created.ID, employerID, "accepted")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceWithdraw(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	candidateID := common.NewUUID()
	j := seedJob(t, jobRepo, common.NewUUID(), job.StatusPublished)
	created, err := service.Apply(context.Background(), candidateID, j.ID, "")
	if err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	if err := service.Withdraw(context.Background(), candidateID, j.ID); err != nil {
		t.Fatalf("expected withdraw to succeed, got %v", err)
	}
	if _, err := appRepo.GetByID(context.Background(), created.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected application gone, got %v", err)
	}
}

func TestApplicationServiceWithdraw_AbsentIsNotFound(t *testing.T) {
	service := NewApplicationService(newFakeApplicationRepo(), newFakeJobRepo())

	err := service.Withdraw(context.Background(), common.NewUUID(), common.NewUUID())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationServiceListByJob_WrongEmployerForbidden(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	j := seedJob(t, jobRepo, common.NewUUID(), job.StatusPublished)

	_, err := service.ListByJob(context.Background(), j.ID, common.NewUUID())
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestApplicationServiceListByCandidate_Authorization(t *testing.T) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	service := NewApplicationService(appRepo, jobRepo)

	candidateID := common.NewUUID()
	j := seedJob(t, jobRepo, common.NewUUID(), job.StatusPublished)
	if _, err := service.Apply(context.Background(), candidateID, j.ID, ""); err != nil {
		t.Fatalf("expected apply to succeed, got %v", err)
	}

	items, err := service.ListByCandidate(context.Background(), candidateID, candidateID, account.RoleJobSeeker)
	if err != nil {
		t.Fatalf("expected self access, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 application, got %d", len(items))
	}

	if _, err := service.ListByCandidate(context.Background(), candidateID, common.NewUUID(), account.RoleEmployer); err != nil {
		t.Fatalf("expected employer access, got %v", err)
	}

	_, err = service.ListByCandidate(context.Background(), candidateID, common.NewUUID(), account.RoleJobSeeker)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
