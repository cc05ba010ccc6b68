package app

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/session"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthService struct {
	accounts   account.Repository
	sessions   session.Store
	bcryptCost int
}

func NewAuthService(accounts account.Repository, sessions session.Store, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{accounts: accounts, sessions: sessions, bcryptCost: bcryptCost}
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Role        string
	ProfileData map[string]any
}

type AuthResult struct {
	Account *account.Account
	Token   string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	fields := map[string]string{}
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if len(username) < 2 {
		fields["username"] = "username must be at least 2 characters"
	}
	if !emailPattern.MatchString(email) {
		fields["email"] = "invalid email address"
	}
	if len(input.Password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}
	role, err := account.ParseRole(input.Role)
	if err != nil {
		fields["role"] = "role must be job_seeker or employer"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid registration data", fields)
	}

	// fast path; the unique constraints still back this under concurrency
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, common.NewError(common.CodeConflict, "user already exists", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	if _, err := s.accounts.GetByUsername(ctx, username); err == nil {
		return nil, common.NewError(common.CodeConflict, "username already taken", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}

	created, err := s.accounts.Create(ctx, account.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		ProfileData:  input.ProfileData,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Create(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Account: created, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthenticated, "invalid credentials", nil)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, common.NewError(common.CodeUnauthenticated, "invalid credentials", nil)
	}

	token, err := s.sessions.Create(ctx, acc.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Account: acc, Token: token}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
