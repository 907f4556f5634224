package entities

import "time"

// WaitTimeEstimateTTL is how long an estimate stays visible after it was computed.
const WaitTimeEstimateTTL = 7 * 24 * time.Hour

// WaitTimeEstimate is the latest wait-time projection communicated to a customer.
//
// Storage model (DynamoDB):
//   - PK: customer_id (one live estimate per customer, overwritten on re-estimation)
//   - TTL attribute: expires_at (epoch seconds)
//
// It is a volatile projection, not a billing record.
type WaitTimeEstimate struct {
	CustomerID               string    `json:"customer_id"`
	RequestedServiceTypes    []string  `json:"requested_service_types"`
	EstimatedWaitTimeMinutes int       `json:"estimated_wait_time_minutes"`
	CreatedAt                time.Time `json:"created_at"`
	ExpiresAt                time.Time `json:"expires_at"`
}

func NewWaitTimeEstimate(customerID string, services []string, minutes int, now time.Time) WaitTimeEstimate {
	return WaitTimeEstimate{
		CustomerID:               customerID,
		RequestedServiceTypes:    services,
		EstimatedWaitTimeMinutes: minutes,
		CreatedAt:                now,
		ExpiresAt:                now.Add(WaitTimeEstimateTTL),
	}
}

func (e WaitTimeEstimate) IsExpired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}
