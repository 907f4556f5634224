package entities

import "time"

// QueueEntry is a read-model row for an active job.
type QueueEntry struct {
	JobID         string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	ServiceTypes  []string   `json:"service_types"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// QueueSnapshot is the shop floor load at a point in time.
type QueueSnapshot struct {
	QueueLength       int          `json:"queue_length"`
	ActiveJobs        int          `json:"active_jobs"`
	CustomerPosition  *int         `json:"customer_position"`
	EstimatedWaitTime int          `json:"estimated_wait_time"`
	PendingJobs       []QueueEntry `json:"pending_jobs"`
	StartedJobs       []QueueEntry `json:"started_jobs"`
}
