package interfaces

import (
	"context"

	"auto_service_queue/internal/domain/entities"
)

//go:generate mockgen -source=service_type_repository_interface.go -destination=mocks/service_type_repository_mock.go -package=mock_interfaces

// IServiceTypeRepository abstracts DynamoDB persistence for the service catalog.
//
// FindByNames returns only the entries that exist, each at most once.
type IServiceTypeRepository interface {
	List(ctx context.Context) ([]entities.ServiceType, error)
	FindByNames(ctx context.Context, names []string) ([]entities.ServiceType, error)
	Upsert(ctx context.Context, st entities.ServiceType) (entities.ServiceType, error)
}
