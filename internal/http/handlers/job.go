package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gitlord217/jobhubproapp/internal/app"
	"github.com/gitlord217/jobhubproapp/internal/domain/job"
	"github.com/gitlord217/jobhubproapp/internal/http/middleware"
	"github.com/gitlord217/jobhubproapp/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title           *string    `json:"title"`
	Company         *string    `json:"company"`
	Location        *string    `json:"location"`
	JobType         *string    `json:"jobType"`
	ExperienceLevel *string    `json:"experienceLevel"`
	SalaryMin       *int       `json:"salaryMin"`
	SalaryMax       *int       `json:"salaryMax"`
	Description     *string    `json:"description"`
	Requirements    *string    `json:"requirements"`
	Skills          []string   `json:"skills"`
	ContactEmail    *string    `json:"contactEmail"`
	Deadline        *time.Time `json:"deadline"`
	Status          *string    `json:"status"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthenticated())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	j := job.Job{EmployerID: caller.ID, Skills: req.Skills, Deadline: req.Deadline, SalaryMin: req.SalaryMin, SalaryMax: req.SalaryMax}
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Company != nil {
		j.Company = *req.Company
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.JobType != nil {
		j.JobType = *req.JobType
	}
	if req.ExperienceLevel != nil {
		j.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Requirements != nil {
		j.Requirements = *req.Requirements
	}
	if req.ContactEmail != nil {
		j.ContactEmail = *req.ContactEmail
	}
	if req.Status != nil {
		j.Status = job.Status(*req.Status)
	}
	created, err := h.jobs.Create(r.Context(), j)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

type jobPage struct {
	Jobs  []job.WithEmployer `json:"jobs"`
	Total int                `json:"total"`
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := parseJobFilters(r)
	items, total, err := h.jobs.List(r.Context(), filters)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []job.WithEmployer{}
	}
	response.JSON(w, http.StatusOK, jobPage{Jobs: items, Total: total})
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	update := job.Update{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Skills:          req.Skills,
		ContactEmail:    req.ContactEmail,
		Deadline:        req.Deadline,
	}
	if req.Status != nil {
		status := job.Status(*req.Status)
		update.Status = &status
	}
	updated, err := h.jobs.Update(r.Context(), jobID, caller.ID, update)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.jobs.Delete(r.Context(), jobID, caller.ID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "job deleted successfully"})
}

func parseJobFilters(r *http.Request) job.Filters {
	query := r.URL.Query()
	filters := job.Filters{
		Search:          query.Get("search"),
		Location:        query.Get("location"),
		JobType:         query.Get("jobType"),
		ExperienceLevel: query.Get("experienceLevel"),
		SortBy:          job.SortKey(query.Get("sortBy")),
	}
	if value := query.Get("salaryMin"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			filters.SalaryMin = &parsed
		}
	}
	if value := query.Get("salaryMax"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			filters.SalaryMax = &parsed
		}
	}
	if value := query.Get("skills"); value != "" {
		for _, skill := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				filters.Skills = append(filters.Skills, trimmed)
			}
		}
	}
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
	return filters
}
