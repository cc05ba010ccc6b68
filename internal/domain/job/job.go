package job

import (
	"time"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusClosed    Status = "closed"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusDraft, StatusPublished, StatusClosed:
		return Status(value), nil
	}
	return "", common.NewValidationError("invalid job status", map[string]string{"status": "status must be draft, published, or closed"})
}

type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortDate       SortKey = "date"
	SortSalaryHigh SortKey = "salary-high"
	SortSalaryLow  SortKey = "salary-low"
)

type Job struct {
	ID              common.UUID `json:"id"`
	EmployerID      common.UUID `json:"employerId"`
	Title           string      `json:"title"`
	Company         string      `json:"company"`
	Location        string      `json:"location"`
	JobType         string      `json:"jobType"`
	ExperienceLevel string      `json:"experienceLevel,omitempty"`
	SalaryMin       *int        `json:"salaryMin"`
	SalaryMax       *int        `json:"salaryMax"`
	Description     string      `json:"description"`
	Requirements    string      `json:"requirements,omitempty"`
	Skills          []string    `json:"skills"`
	ContactEmail    string      `json:"contactEmail,omitempty"`
	Deadline        *time.Time  `json:"deadline"`
	Status          Status      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// WithEmployer embeds the owning account's public fields for read endpoints.
type WithEmployer struct {
	Job
	Employer *account.Account `json:"employer"`
}

// Update carries a partial job patch; nil fields are left unchanged.
type Update struct {
	Title           *string
	Company         *string
	Location        *string
	JobType         *string
	ExperienceLevel *string
	SalaryMin       *int
	SalaryMax       *int
	Description     *string
	Requirements    *string
	Skills          []string
	ContactEmail    *string
	Deadline        *time.Time
	Status          *Status
}

type Filters struct {
	Search          string
	Location        string
	JobType         string
	ExperienceLevel string
	SalaryMin       *int
	SalaryMax       *int
	Skills          []string
	Limit           int
	Offset          int
	SortBy          SortKey
}
