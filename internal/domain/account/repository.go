package account

import (
	"context"

	"github.com/gitlord217/jobhubproapp/internal/common"
)

type Repository interface {
	Create(ctx context.Context, acc Account) (*Account, error)
	GetByID(ctx context.Context, id common.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	Update(ctx context.Context, id common.UUID, update Update) (*Account, error)
	SearchCandidates(ctx context.Context, filters SearchFilters) ([]Account, int, error)
}
