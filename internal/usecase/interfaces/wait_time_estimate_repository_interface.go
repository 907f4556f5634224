package interfaces

import (
	"context"

	"auto_service_queue/internal/domain/entities"
)

//go:generate mockgen -source=wait_time_estimate_repository_interface.go -destination=mocks/wait_time_estimate_repository_mock.go -package=mock_interfaces

// IWaitTimeEstimateRepository abstracts DynamoDB persistence for WaitTimeEstimate.
//
// At most one live estimate exists per customer: Upsert replaces it in place.
// GetByCustomerID returns a zero value when the estimate is missing or expired.
type IWaitTimeEstimateRepository interface {
	Upsert(ctx context.Context, e entities.WaitTimeEstimate) (entities.WaitTimeEstimate, error)
	GetByCustomerID(ctx context.Context, customerID string) (entities.WaitTimeEstimate, error)
}
