package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/http/response"
	"github.com/gitlord217/jobhubproapp/internal/session"
)

// SessionCookie carries the opaque session token; an Authorization bearer
// header is accepted as a fallback for non-browser clients.
const SessionCookie = "session_token"

type contextKey string

const (
	contextAccountKey contextKey = "account"
	contextTokenKey   contextKey = "session_token"
)

type SessionAuth struct {
	sessions session.Store
	accounts account.Repository
}

func NewSessionAuth(sessions session.Store, accounts account.Repository) *SessionAuth {
	return &SessionAuth{sessions: sessions, accounts: accounts}
}

// Authenticate resolves the session token to an account. The account record
// is re-read from the store on every request so the stored role is always
// authoritative; nothing role-related lives in the session.
func (m *SessionAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			response.Error(w, common.NewError(common.CodeUnauthenticated, "not authenticated", nil))
			return
		}
		accountID, err := m.sessions.Get(r.Context(), token)
		if err != nil {
			response.Error(w, err)
			return
		}
		acc, err := m.accounts.GetByID(r.Context(), accountID)
		if err != nil {
			if common.Is(err, common.CodeNotFound) {
				response.Error(w, common.NewError(common.CodeUnauthenticated, "account no longer exists", err))
				return
			}
			response.Error(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), contextAccountKey, acc)
		ctx = context.WithValue(ctx, contextTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRole(role account.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acc, ok := AccountFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeUnauthenticated, "not authenticated", nil))
				return
			}
			if acc.Role != role {
				response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func AccountFromContext(ctx context.Context) (*account.Account, bool) {
	acc, ok := ctx.Value(contextAccountKey).(*account.Account)
	return acc, ok
}

func SessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(contextTokenKey).(string)
	return token, ok
}
