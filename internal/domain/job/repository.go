package job

import (
	"context"

	"github.com/gitlord217/jobhubproapp/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	GetWithEmployer(ctx context.Context, id common.UUID) (*WithEmployer, error)
	ListPublished(ctx context.Context, filters Filters) ([]WithEmployer, int, error)
	ListByEmployer(ctx context.Context, employerID common.UUID) ([]Job, error)
	Update(ctx context.Context, id common.UUID, update Update) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
}
