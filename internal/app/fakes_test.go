package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/domain/application"
	"github.com/gitlord217/jobhubproapp/internal/domain/job"
)

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[common.UUID]*account.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[common.UUID]*account.Account)}
}

func (r *fakeAccountRepo) Create(ctx context.Context, acc account.Account) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Email == acc.Email || existing.Username == acc.Username {
			return nil, common.NewError(common.CodeConflict, "user already exists", nil)
		}
	}
	acc.ID = common.NewUUID()
	acc.CreatedAt = time.Now().UTC()
	stored := acc
	r.accounts[acc.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *acc
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range r.accounts {
		if acc.Email == email {
			copied := *acc
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *fakeAccountRepo) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range r.accounts {
		if acc.Username == username {
			copied := *acc
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *fakeAccountRepo) Update(ctx context.Context, id common.UUID, update account.Update) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	if update.Username != nil {
		acc.Username = *update.Username
	}
	if update.Email != nil {
		acc.Email = *update.Email
	}
	if update.Role != nil {
		acc.Role = *update.Role
	}
	if update.ProfileData != nil {
		acc.ProfileData = update.ProfileData
	}
	copied := *acc
	return &copied, nil
}

func (r *fakeAccountRepo) SearchCandidates(ctx context.Context, filters account.SearchFilters) ([]account.Account, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []account.Account
	for _, acc := range r.accounts {
		if acc.Role != account.RoleJobSeeker {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(acc.Username), strings.ToLower(filters.Search)) {
			continue
		}
		matched = append(matched, *acc)
	}
	return matched, len(matched), nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[common.UUID]*job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[common.UUID]*job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	stored := j
	r.jobs[j.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	copied := *j
	return &copied, nil
}

func (r *fakeJobRepo) GetWithEmployer(ctx context.Context, id common.UUID) (*job.WithEmployer, error) {
	j, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &job.WithEmployer{Job: *j}, nil
}

func (r *fakeJobRepo) ListPublished(ctx context.Context, filters job.Filters) ([]job.WithEmployer, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []job.WithEmployer
	for _, j := range r.jobs {
		if j.Status != job.StatusPublished {
			continue
		}
		matched = append(matched, job.WithEmployer{Job: *j})
	}
	return matched, len(matched), nil
}

func (r *fakeJobRepo) ListByEmployer(ctx context.Context, employerID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []job.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			matched = append(matched, *j)
		}
	}
	return matched, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, id common.UUID, update job.Update) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if update.Title != nil {
		j.Title = *update.Title
	}
	if update.Company != nil {
		j.Company = *update.Company
	}
	if update.Location != nil {
		j.Location = *update.Location
	}
	if update.JobType != nil {
		j.JobType = *update.JobType
	}
	if update.ExperienceLevel != nil {
		j.ExperienceLevel = *update.ExperienceLevel
	}
	if update.SalaryMin != nil {
		j.SalaryMin = update.SalaryMin
	}
	if update.SalaryMax != nil {
		j.SalaryMax = update.SalaryMax
	}
	if update.Description != nil {
		j.Description = *update.Description
	}
	if update.Requirements != nil {
		j.Requirements = *update.Requirements
	}
	if update.Skills != nil {
		j.Skills = update.Skills
	}
	if update.ContactEmail != nil {
		j.ContactEmail = *update.ContactEmail
	}
	if update.Deadline != nil {
		j.Deadline = update.Deadline
	}
	if update.Status != nil {
		j.Status = *update.Status
	}
	j.UpdatedAt = time.Now().UTC()
	copied := *j
	return &copied, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	delete(r.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[common.UUID]*application.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[common.UUID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.applications {
		if existing.JobID == app.JobID && existing.CandidateID == app.CandidateID {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", nil)
		}
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	stored := app
	r.applications[app.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.applications[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.applications {
		if app.JobID == jobID && app.CandidateID == candidateID {
			copied := *app
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Details, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []application.Details
	for _, app := range r.applications {
		if app.JobID == jobID {
			matched = append(matched, application.Details{Application: *app})
		}
	}
	return matched, nil
}

func (r *fakeApplicationRepo) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Details, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []application.Details
	for _, app := range r.applications {
		if app.CandidateID == candidateID {
			matched = append(matched, application.Details{Application: *app})
		}
	}
	return matched, nil
}

func (r *fakeApplicationRepo) ListByEmployer(ctx context.Context, employerID common.UUID) ([]application.Details, error) {
	return nil, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.applications[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, jobID, candidateID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, app := range r.applications {
		if app.JobID == jobID && app.CandidateID == candidateID {
			delete(r.applications, id)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "application not found", nil)
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]common.UUID
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]common.UUID)}
}

func (s *fakeSessionStore) Create(ctx context.Context, accountID common.UUID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := common.NewUUID().String()
	s.sessions[token] = accountID
	return token, nil
}

func (s *fakeSessionStore) Get(ctx context.Context, token string) (common.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accountID, ok := s.sessions[token]
	if !ok {
		return "", common.NewError(common.CodeUnauthenticated, "session not found", nil)
	}
	return accountID, nil
}

func (s *fakeSessionStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
