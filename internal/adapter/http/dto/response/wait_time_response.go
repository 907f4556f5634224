package response

import (
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase"
)

type EstimateResponse struct {
	EstimatedWaitTime int      `json:"estimatedWaitTime"`
	FormattedTime     string   `json:"formattedTime"`
	Services          []string `json:"services"`
	RequestedServices []string `json:"requestedServices"`
	ActiveJobs        int      `json:"activeJobs"`
}

func FromQuote(q usecase.WaitTimeQuote) EstimateResponse {
	return EstimateResponse{
		EstimatedWaitTime: q.EstimatedWaitTimeMinutes,
		FormattedTime:     q.FormattedTime,
		Services:          nonNil(q.MatchedServices),
		RequestedServices: nonNil(q.RequestedServices),
		ActiveJobs:        q.ActiveJobCount,
	}
}

type CustomerEstimateResponse struct {
	CustomerID        string    `json:"customerId"`
	EstimatedWaitTime int       `json:"estimatedWaitTime"`
	FormattedTime     string    `json:"formattedTime"`
	RequestedServices []string  `json:"requestedServices"`
	CreatedAt         time.Time `json:"createdAt"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

func FromWaitTimeEstimate(e entities.WaitTimeEstimate) CustomerEstimateResponse {
	return CustomerEstimateResponse{
		CustomerID:        e.CustomerID,
		EstimatedWaitTime: e.EstimatedWaitTimeMinutes,
		FormattedTime:     usecase.FormatDuration(e.EstimatedWaitTimeMinutes),
		RequestedServices: nonNil(e.RequestedServiceTypes),
		CreatedAt:         e.CreatedAt,
		ExpiresAt:         e.ExpiresAt,
	}
}

type QueueEntryResponse struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	ServiceTypes  []string   `json:"serviceTypes"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type QueueResponse struct {
	QueueLength       int                  `json:"queueLength"`
	ActiveJobs        int                  `json:"activeJobs"`
	CustomerPosition  *int                 `json:"customerPosition"`
	EstimatedWaitTime int                  `json:"estimatedWaitTime"`
	FormattedTime     string               `json:"formattedTime"`
	PendingJobs       []QueueEntryResponse `json:"pendingJobs"`
	StartedJobs       []QueueEntryResponse `json:"startedJobs"`
}

func FromQueueSnapshot(s entities.QueueSnapshot) QueueResponse {
	return QueueResponse{
		QueueLength:       s.QueueLength,
		ActiveJobs:        s.ActiveJobs,
		CustomerPosition:  s.CustomerPosition,
		EstimatedWaitTime: s.EstimatedWaitTime,
		FormattedTime:     usecase.FormatDuration(s.EstimatedWaitTime),
		PendingJobs:       fromQueueEntries(s.PendingJobs),
		StartedJobs:       fromQueueEntries(s.StartedJobs),
	}
}

func fromQueueEntries(entries []entities.QueueEntry) []QueueEntryResponse {
	out := make([]QueueEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, QueueEntryResponse{
			ID:            e.JobID,
			CustomerID:    e.CustomerID,
			CustomerName:  e.CustomerName,
			CustomerPhone: e.CustomerPhone,
			ServiceTypes:  nonNil(e.ServiceTypes),
			StartTime:     e.StartTime,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
