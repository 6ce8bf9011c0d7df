package domain

import "time"

// JobStatus represents the status of an import job.
type JobStatus string

const (
	JobStatusProcessing          JobStatus = "processing"
	JobStatusCompleted           JobStatus = "completed"
	JobStatusCompletedWithErrors JobStatus = "completed_with_errors"
	JobStatusFailed              JobStatus = "failed"
)

// ImportJob records one import call and its outcome.
type ImportJob struct {
	ID               string       `json:"id"`
	Variant          Variant      `json:"variant"`
	Status           JobStatus    `json:"status"`
	Source           string       `json:"source,omitempty"`
	Result           ImportResult `json:"result"`
	IdempotencyToken string       `json:"idempotencyToken"`
	ErrorMessage     *string      `json:"errorMessage,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
	CompletedAt      *time.Time   `json:"completedAt,omitempty"`
}

// StatusFor derives the terminal status of a job that ran to completion.
func StatusFor(r ImportResult) JobStatus {
	switch {
	case r.ErrorRows > 0 && r.SuccessRows == 0:
		return JobStatusFailed
	case r.ErrorRows > 0:
		return JobStatusCompletedWithErrors
	default:
		return JobStatusCompleted
	}
}
