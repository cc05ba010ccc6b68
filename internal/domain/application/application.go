// Package application holds the candidate application entity and its status
// state machine.
//
// Valid status graph:
//
//	pending ──► reviewing ──► interview ──► offer ──► hired
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──► rejected
//
// hired and rejected are terminal states.
package application

import (
	"time"

	"github.com/gitlord217/jobhubproapp/internal/common"
	"github.com/gitlord217/jobhubproapp/internal/domain/account"
	"github.com/gitlord217/jobhubproapp/internal/domain/job"
)

// Status values mirror the applications.status check constraint in PostgreSQL.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusHired     Status = "hired"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusReviewing, StatusRejected},
	StatusReviewing: {StatusInterview, StatusRejected},
	StatusInterview: {StatusOffer, StatusRejected},
	StatusOffer:     {StatusHired, StatusRejected},
	// hired and rejected have no outgoing transitions
}

// ParseStatus converts a raw string to a Status, rejecting unknown values.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusReviewing, StatusInterview, StatusOffer, StatusRejected, StatusHired:
		return Status(value), nil
	}
	return "", common.NewValidationError("invalid application status", map[string]string{
		"status": "status must be pending, reviewing, interview, offer, rejected, or hired",
	})
}

// CanTransition reports whether moving from → to is permitted.
func CanTransition(from, to Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsTerminal(s Status) bool {
	return s == StatusRejected || s == StatusHired
}

type Application struct {
	ID          common.UUID `json:"id"`
	JobID       common.UUID `json:"jobId"`
	CandidateID common.UUID `json:"candidateId"`
	Status      Status      `json:"status"`
	CoverLetter string      `json:"coverLetter,omitempty"`
	MatchScore  *int        `json:"matchScore"`
	AppliedAt   time.Time   `json:"appliedAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Details embeds the joined job and candidate records for list endpoints.
type Details struct {
	Application
	Job       *job.Job         `json:"job"`
	Candidate *account.Account `json:"candidate"`
}
