package request

import "strings"

// EstimateWaitTimeRequest is the body of POST /v1/wait-time/estimate.
type EstimateWaitTimeRequest struct {
	Services   []ServiceRef `json:"services"`
	CustomerID string       `json:"customerId"`
}

func (r EstimateWaitTimeRequest) ResolveServices() []string {
	return ServiceNames(r.Services)
}

func (r EstimateWaitTimeRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}
