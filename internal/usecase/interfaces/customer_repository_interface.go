package interfaces

import (
	"context"
	"errors"

	"auto_service_queue/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_mock.go -package=mock_interfaces

// ErrVersionConflict is returned when a conditional write lost a race.
var ErrVersionConflict = errors.New("customer version conflict")

// ICustomerRepository abstracts DynamoDB persistence for Customer and its embedded jobs.
//
// The repository must be able to:
//   - create a customer together with its first job (job index written atomically)
//   - resolve the owning customer of a job id
//   - replace a single embedded job and its active flag, conditional on the customer version
//   - list customers that still have pending/started jobs (queue read model)
//
// Lookups return a zero-value Customer when nothing matches.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Customer, error)
	AppendJob(ctx context.Context, customerID string, job entities.Job, expectedVersion int64) (entities.Customer, error)
	UpdateJob(ctx context.Context, customerID string, position int, job entities.Job, expectedVersion int64, hasActiveJobs bool) (entities.Customer, error)
	ListWithActiveJobs(ctx context.Context) ([]entities.Customer, error)
}
