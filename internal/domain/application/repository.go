package application

import (
	"context"

	"github.com/gitlord217/jobhubproapp/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*Application, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]Details, error)
	ListByCandidate(ctx context.Context, candidateID common.UUID) ([]Details, error)
	ListByEmployer(ctx context.Context, employerID common.UUID) ([]Details, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	Delete(ctx context.Context, jobID, candidateID common.UUID) error
}
