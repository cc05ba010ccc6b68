package handlers

import (
	"net/http"
	"strconv"

	"github.com/gitlord217/jobhubproapp/internal/app"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/http/middleware"
	"github.com/gitlord217/jobhubproapp/internal/http/response"
)

type AccountHandler struct {
	accounts *app.AccountService
}

func NewAccountHandler(accounts *app.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type accountUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

type profileUpdateRequest struct {
	ProfileData map[string]any `json:"profileData"`
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	targetID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req accountUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.accounts.Update(r.Context(), caller.ID, targetID, app.AccountUpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.accounts.UpdateProfile(r.Context(), caller.ID, req.ProfileData)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

type candidatePage struct {
	Candidates []account.Account `json:"candidates"`
	Total      int               `json:"total"`
}

func (h *AccountHandler) SearchCandidates(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := account.SearchFilters{Search: query.Get("search")}
	if value := query.Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			filters.Limit = parsed
		}
	}
	if value := query.Get("offset"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			filters.Offset = parsed
		}
	}
	candidates, total, err := h.accounts.SearchCandidates(r.Context(), filters)
	if err != nil {
		response.Error(w, err)
		return
	}
	if candidates == nil {
		candidates = []account.Account{}
	}
	response.JSON(w, http.StatusOK, candidatePage{Candidates: candidates, Total: total})
}
