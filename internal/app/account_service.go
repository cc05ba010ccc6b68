package app

import (
	"context"
	"strings"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
)

type AccountService struct {
	accounts account.Repository
}

func NewAccountService(accounts account.Repository) *AccountService {
	return &AccountService{accounts: accounts}
}

type AccountUpdateInput struct {
	Username *string
	Email    *string
	Role     *string
}

// Update applies a partial patch to the caller's own account. Role changes
// persist to the store only; sessions never cache the role, so there is
// nothing to resynchronize.
func (s *AccountService) Update(ctx context.Context, callerID, targetID common.UUID, input AccountUpdateInput) (*account.Account, error) {
	if callerID != targetID {
		return nil, common.NewError(common.CodeForbidden, "cannot update another account", nil)
	}

	fields := map[string]string{}
	update := account.Update{}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if len(username) < 2 {
			fields["username"] = "username must be at least 2 characters"
		}
		update.Username = &username
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !emailPattern.MatchString(email) {
			fields["email"] = "invalid email address"
		}
		update.Email = &email
	}
	if input.Role != nil {
		role, err := account.ParseRole(*input.Role)
		if err != nil {
			fields["role"] = "role must be job_seeker or employer"
		}
		update.Role = &role
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid update data", fields)
	}

	if update.Email != nil {
		existing, err := s.accounts.GetByEmail(ctx, *update.Email)
		if err == nil && existing.ID != targetID {
			return nil, common.NewError(common.CodeConflict, "email already in use", nil)
		} else if err != nil && !common.Is(err, common.CodeNotFound) {
			return nil, err
		}
	}

	return s.accounts.Update(ctx, targetID, update)
}

// UpdateProfile replaces the opaque profile blob. The server never interprets
// its contents.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID common.UUID, profile map[string]any) (*account.Account, error) {
	if profile == nil {
		profile = map[string]any{}
	}
	return s.accounts.Update(ctx, accountID, account.Update{ProfileData: profile})
}

func (s *AccountService) SearchCandidates(ctx context.Context, filters account.SearchFilters) ([]account.Account, int, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 10
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	return s.accounts.SearchCandidates(ctx, filters)
}
