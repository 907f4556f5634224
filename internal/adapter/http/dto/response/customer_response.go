package response

import (
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase"
)

type CustomerResponse struct {
	ID                     string        `json:"id"`
	CustomerSequenceNumber int64         `json:"customerSequenceNumber"`
	Name                   string        `json:"name"`
	Phone                  string        `json:"phone"`
	Vehicle                string        `json:"vehicle"`
	Message                string        `json:"message,omitempty"`
	Jobs                   []JobResponse `json:"jobs"`
	CreatedAt              time.Time     `json:"createdAt"`
	UpdatedAt              time.Time     `json:"updatedAt"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	jobs := make([]JobResponse, 0, len(c.Jobs))
	for _, j := range c.Jobs {
		jobs = append(jobs, FromJob(j))
	}
	return CustomerResponse{
		ID:                     c.ID,
		CustomerSequenceNumber: c.CustomerSequenceNumber,
		Name:                   c.Name,
		Phone:                  c.Phone,
		Vehicle:                c.Vehicle,
		Message:                c.Message,
		Jobs:                   jobs,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

type IntakeResponse struct {
	Customer CustomerResponse         `json:"customer"`
	Job      JobResponse              `json:"job"`
	Estimate CustomerEstimateResponse `json:"estimate"`
}

func FromIntakeResult(r usecase.IntakeResult) IntakeResponse {
	return IntakeResponse{
		Customer: FromCustomer(r.Customer),
		Job:      FromJob(r.Job),
		Estimate: FromWaitTimeEstimate(r.Estimate),
	}
}

type SmsLogResponse struct {
	ID           string    `json:"id"`
	JobID        string    `json:"jobId,omitempty"`
	PhoneNumber  string    `json:"phoneNumber"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	ProviderSID  string    `json:"providerSid,omitempty"`
	JobStatus    string    `json:"jobStatus"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Attempts     int       `json:"attempts"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromSmsLogs(logs []entities.SmsLog) []SmsLogResponse {
	out := make([]SmsLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, SmsLogResponse{
			ID:           l.ID,
			JobID:        l.JobID,
			PhoneNumber:  l.PhoneNumber,
			Message:      l.Message,
			Status:       string(l.Status),
			ProviderSID:  l.ProviderSID,
			JobStatus:    string(l.JobStatus),
			ErrorMessage: l.ErrorMessage,
			Attempts:     l.Attempts,
			CreatedAt:    l.CreatedAt,
		})
	}
	return out
}
