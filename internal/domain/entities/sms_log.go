package entities

import "time"

// SmsStatus is the outcome of one SMS delivery attempt sequence.
type SmsStatus string

const (
	SmsStatusSent   SmsStatus = "sent"
	SmsStatusFailed SmsStatus = "failed"
)

// SmsLog keeps the outcome of each status notification for traceability.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
type SmsLog struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	JobID        string    `json:"job_id,omitempty"`
	PhoneNumber  string    `json:"phone_number"`
	Message      string    `json:"message"`
	Status       SmsStatus `json:"status"`
	ProviderSID  string    `json:"provider_sid,omitempty"`
	JobStatus    JobStatus `json:"job_status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Attempts     int       `json:"attempts"`
	CreatedAt    time.Time `json:"created_at"`
}
