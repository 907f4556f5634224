package entities

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// Customer owns its jobs; a job never outlives the customer record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - jobs: embedded list, addressed through the job_index table (job_id -> customer_id)
//   - version: bumped on every write, used for conditional job updates
type Customer struct {
	ID                     string    `json:"id"`
	CustomerSequenceNumber int64     `json:"customer_sequence_number"`
	Name                   string    `json:"name"`
	Phone                  string    `json:"phone"`
	Vehicle                string    `json:"vehicle"`
	Message                string    `json:"message,omitempty"`
	Jobs                   []Job     `json:"jobs"`
	Version                int64     `json:"version"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// FindJob returns the position of the job in the customer's list, or -1.
func (c Customer) FindJob(jobID string) int {
	for i := range c.Jobs {
		if c.Jobs[i].ID == jobID {
			return i
		}
	}
	return -1
}

func (c Customer) HasActiveJobs() bool {
	for _, j := range c.Jobs {
		if j.Status.IsActive() {
			return true
		}
	}
	return false
}

// NormalizePhone turns user input into "+1" followed by 10 digits.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch {
	case len(d) == 10:
		return "+1" + d, nil
	case len(d) == 11 && d[0] == '1':
		return "+" + d, nil
	}
	return "", ErrInvalidPhone
}
