package entities

import (
	"strings"
	"time"
)

// JobStatus represents where a service job is in the shop floor lifecycle.
//
// Domain notes:
//   - pending -> started -> completed is the normal flow.
//   - Backward moves are accepted (operator correction) but never reset a recorded timestamp.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusStarted   JobStatus = "started"
	JobStatusCompleted JobStatus = "completed"
)

// ActiveJobStatuses are the statuses that count towards queue load.
var ActiveJobStatuses = []JobStatus{JobStatusPending, JobStatusStarted}

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusStarted, JobStatusCompleted:
		return true
	}
	return false
}

func (s JobStatus) IsActive() bool {
	return s == JobStatusPending || s == JobStatusStarted
}

// ParseJobStatus accepts only the exact lowercase status names.
func ParseJobStatus(raw string) (JobStatus, bool) {
	s := JobStatus(raw)
	return s, s.IsValid()
}

// Job is one unit of requested work, embedded in its owning Customer.
type Job struct {
	ID                    string     `json:"id"`
	RequestedServiceTypes []string   `json:"requested_service_types"`
	Message               string     `json:"message,omitempty"`
	Status                JobStatus  `json:"status"`
	StartTime             *time.Time `json:"start_time,omitempty"`
	CompletionTime        *time.Time `json:"completion_time,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func NewPendingJob(id string, services []string, message string, now time.Time) Job {
	return Job{
		ID:                    id,
		RequestedServiceTypes: services,
		Message:               strings.TrimSpace(message),
		Status:                JobStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// ApplyStatus moves the job to next and returns the status it had before.
//
// StartTime and CompletionTime are written at most once over the life of the job.
func (j *Job) ApplyStatus(next JobStatus, now time.Time) JobStatus {
	previous := j.Status
	j.Status = next
	j.UpdatedAt = now

	if next == JobStatusStarted && previous != JobStatusStarted && j.StartTime == nil {
		t := now
		j.StartTime = &t
	}
	if next == JobStatusCompleted && previous != JobStatusCompleted && j.CompletionTime == nil {
		t := now
		j.CompletionTime = &t
	}
	return previous
}
