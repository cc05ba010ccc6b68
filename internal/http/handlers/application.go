package handlers

import (
	"net/http"
	"time"

	"github.com/gitlord217/jobhubproapp/internal/app"
	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/application"
	"github.com/gitlord217/jobhubproapp/internal/http/middleware"
	"github.com/gitlord217/jobhubproapp/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type applyRequest struct {
	JobID       string `json:"jobId"`
	CoverLetter string `json:"coverLetter"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid job id", map[string]string{"jobId": "must be a valid id"}))
		return
	}
	if h.limiter != nil && !h.limiter.Allow("apply:"+jobID.String()+":"+caller.ID.String(), 3, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many applications, slow down", nil))
		return
	}
	created, err := h.applications.Apply(r.Context(), caller.ID, jobID, req.CoverLetter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.Withdraw(r.Context(), caller.ID, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "application withdrawn"})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.TransitionStatus(r.Context(), applicationID, caller.ID, req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListByJob(r.Context(), jobID, caller.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	writeDetails(w, items)
}

func (h *ApplicationHandler) ListByCandidate(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	candidateID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListByCandidate(r.Context(), candidateID, caller.ID, caller.Role)
	if err != nil {
		response.Error(w, err)
		return
	}
	writeDetails(w, items)
}

func (h *ApplicationHandler) ListByEmployer(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	employerID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListByEmployer(r.Context(), employerID, caller.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	writeDetails(w, items)
}

func writeDetails(w http.ResponseWriter, items []application.Details) {
	if items == nil {
		items = []application.Details{}
	}
	response.JSON(w, http.StatusOK, items)
}
