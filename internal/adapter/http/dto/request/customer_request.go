package request

import (
	"strings"

	"auto_service_queue/internal/usecase"
)

// CreateCustomerRequest is the intake form. "service" (single) is accepted
// for older clients and merged ahead of "services".
type CreateCustomerRequest struct {
	Name     string       `json:"name" binding:"required"`
	Phone    string       `json:"phone" binding:"required"`
	Vehicle  string       `json:"vehicle" binding:"required"`
	Message  string       `json:"message"`
	Service  string       `json:"service"`
	Services []ServiceRef `json:"services"`
}

func (r CreateCustomerRequest) ResolveServices() []string {
	names := make([]string, 0, len(r.Services)+1)
	if s := strings.TrimSpace(r.Service); s != "" {
		names = append(names, s)
	}
	return append(names, ServiceNames(r.Services)...)
}

func (r CreateCustomerRequest) ToIntakeInput() usecase.IntakeInput {
	return usecase.IntakeInput{
		Name:     r.Name,
		Phone:    r.Phone,
		Vehicle:  r.Vehicle,
		Message:  r.Message,
		Services: r.ResolveServices(),
	}
}

type AddJobRequest struct {
	Services []ServiceRef `json:"services"`
	Message  string       `json:"message"`
}

func (r AddJobRequest) ResolveServices() []string {
	return ServiceNames(r.Services)
}
