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
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = "id, username, email, password_hash, role, profile_data, created_at"

func (r *AccountRepository) Create(ctx context.Context, acc account.Account) (*account.Account, error) {
	acc.ID = common.NewUUID()
	acc.CreatedAt = time.Now().UTC()
	profile, err := marshalProfile(acc.ProfileData)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode profile data", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO users (id, username, email, password_hash, role, profile_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		acc.ID, acc.Username, acc.Email, acc.PasswordHash, acc.Role, profile, acc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "account already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create account", err)
	}
	return &acc, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM users WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM users WHERE email = $1`, email)
	return scanAccount(row)
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM users WHERE username = $1`, username)
	return scanAccount(row)
}

func (r *AccountRepository) Update(ctx context.Context, id common.UUID, update account.Update) (*account.Account, error) {
	assignments := make([]string, 0, 4)
	args := make([]any, 0, 5)
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}
	if update.Username != nil {
		assignments = append(assignments, "username = "+arg(*update.Username))
	}
	if update.Email != nil {
		assignments = append(assignments, "email = "+arg(*update.Email))
	}
	if update.Role != nil {
		assignments = append(assignments, "role = "+arg(*update.Role))
	}
	if update.ProfileData != nil {
		profile, err := marshalProfile(update.ProfileData)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to encode profile data", err)
		}
		assignments = append(assignments, "profile_data = "+arg(profile))
	}
	if len(assignments) == 0 {
		return r.GetByID(ctx, id)
	}
	query := "UPDATE users SET " + strings.Join(assignments, ", ") + " WHERE id = " + arg(id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "email or username already in use", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to update account", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "account not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *AccountRepository) SearchCandidates(ctx context.Context, filters account.SearchFilters) ([]account.Account, int, error) {
	where := "role = $1"
	args := []any{account.RoleJobSeeker}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		args = append(args, pattern)
		where += fmt.Sprintf(" AND (username ILIKE $%d OR email ILIKE $%d)", len(args), len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count candidates", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	args = append(args, limit, filters.Offset)
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		accountColumns, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to search candidates", err)
	}
	defer rows.Close()

	var items []account.Account
	for rows.Next() {
		acc, err := scanAccountFields(rows)
		if err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan candidate", err)
		}
		items = append(items, *acc)
	}
	return items, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row *sql.Row) (*account.Account, error) {
	acc, err := scanAccountFields(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "account not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load account", err)
	}
	return acc, nil
}

func scanAccountFields(row rowScanner) (*account.Account, error) {
	var acc account.Account
	var profile []byte
	if err := row.Scan(&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.Role, &profile, &acc.CreatedAt); err != nil {
		return nil, err
	}
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &acc.ProfileData); err != nil {
			return nil, err
		}
	}
	return &acc, nil
}

func marshalProfile(profile map[string]any) (any, error) {
	if profile == nil {
		return nil, nil
	}
	return json.Marshal(profile)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
