package interfaces

import "context"

//go:generate mockgen -source=counter_repository_interface.go -destination=mocks/counter_repository_mock.go -package=mock_interfaces

// ICounterRepository hands out strictly increasing, never reused sequence values.
//
// Next must be an atomic read-modify-write against shared storage.
type ICounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
