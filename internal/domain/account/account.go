package account

import (
	"time"

	"github.com/gitlord217/jobhubproapp/internal/common"
)

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleJobSeeker, RoleEmployer:
		return Role(value), nil
	}
	return "", common.NewValidationError("invalid role", map[string]string{"role": "role must be job_seeker or employer"})
}

type Account struct {
	ID           common.UUID    `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Role         Role           `json:"role"`
	ProfileData  map[string]any `json:"profileData,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Update carries a partial account patch; nil fields are left unchanged.
type Update struct {
	Username    *string
	Email       *string
	Role        *Role
	ProfileData map[string]any
}

type SearchFilters struct {
	Search string
	Limit  int
	Offset int
}
