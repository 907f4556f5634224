package response

import (
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase"
)

type JobResponse struct {
	ID                    string     `json:"id"`
	RequestedServiceTypes []string   `json:"requestedServiceTypes"`
	Message               string     `json:"message,omitempty"`
	Status                string     `json:"status"`
	StartTime             *time.Time `json:"startTime,omitempty"`
	CompletionTime        *time.Time `json:"completionTime,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                    j.ID,
		RequestedServiceTypes: nonNil(j.RequestedServiceTypes),
		Message:               j.Message,
		Status:                string(j.Status),
		StartTime:             j.StartTime,
		CompletionTime:        j.CompletionTime,
		CreatedAt:             j.CreatedAt,
		UpdatedAt:             j.UpdatedAt,
	}
}

type CustomerSummaryResponse struct {
	ID                     string `json:"id"`
	CustomerSequenceNumber int64  `json:"customerSequenceNumber"`
	Name                   string `json:"name"`
	Phone                  string `json:"phone"`
}

type StatusChangeResponse struct {
	Success        bool                    `json:"success"`
	PreviousStatus string                  `json:"previousStatus"`
	NewStatus      string                  `json:"newStatus"`
	Job            JobResponse             `json:"job"`
	Customer       CustomerSummaryResponse `json:"customer"`
}

func FromStatusChange(ch usecase.JobStatusChange) StatusChangeResponse {
	return StatusChangeResponse{
		Success:        true,
		PreviousStatus: string(ch.PreviousStatus),
		NewStatus:      string(ch.NewStatus),
		Job:            FromJob(ch.Job),
		Customer: CustomerSummaryResponse{
			ID:                     ch.Customer.ID,
			CustomerSequenceNumber: ch.Customer.CustomerSequenceNumber,
			Name:                   ch.Customer.Name,
			Phone:                  ch.Customer.Phone,
		},
	}
}

type JobStatusResponse struct {
	JobID             string     `json:"jobId"`
	Status            string     `json:"status"`
	ServiceTypes      []string   `json:"serviceTypes"`
	CustomerID        string     `json:"customerId"`
	CustomerName      string     `json:"customerName"`
	CustomerPhone     string     `json:"customerPhone"`
	EstimatedWaitTime *int       `json:"estimatedWaitTime"`
	FormattedWaitTime string     `json:"formattedWaitTime,omitempty"`
	StartTime         *time.Time `json:"startTime,omitempty"`
	CompletionTime    *time.Time `json:"completionTime,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func FromJobStatusView(v usecase.JobStatusView) JobStatusResponse {
	return JobStatusResponse{
		JobID:             v.JobID,
		Status:            string(v.Status),
		ServiceTypes:      nonNil(v.ServiceTypes),
		CustomerID:        v.CustomerID,
		CustomerName:      v.CustomerName,
		CustomerPhone:     v.CustomerPhone,
		EstimatedWaitTime: v.EstimatedWaitTime,
		FormattedWaitTime: v.FormattedWaitTime,
		StartTime:         v.StartTime,
		CompletionTime:    v.CompletionTime,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}
