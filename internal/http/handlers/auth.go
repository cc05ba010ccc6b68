package handlers

import (
	"net/http"
	"time"

	"github.com/gitlord217/jobhubproapp/internal/app"
	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/http/middleware"
	"github.com/gitlord217/jobhubproapp/internal/http/response"
)

type AuthHandler struct {
	auth       *app.AuthService
	limiter    middleware.Limiter
	sessionTTL time.Duration
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, sessionTTL: sessionTTL}
}

type registerRequest struct {
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	Password    string         `json:"password"`
	Role        string         `json:"role"`
	ProfileData map[string]any `json:"profileData"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Register(r.Context(), app.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		ProfileData: req.ProfileData,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	h.setSessionCookie(w, result.Token)
	response.JSON(w, http.StatusOK, result.Account)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil && !h.limiter.Allow("login:"+middleware.ClientIP(r), 10, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many login attempts", nil))
		return
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.setSessionCookie(w, result.Token)
	response.JSON(w, http.StatusOK, result.Account)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.SessionTokenFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	if err := h.auth.Logout(r.Context(), token); err != nil {
		response.Error(w, err)
		return
	}
	h.clearSessionCookie(w)
	response.JSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	response.JSON(w, http.StatusOK, acc)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
