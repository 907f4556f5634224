package interfaces

import (
	"context"

	"auto_service_queue/internal/domain/entities"
)

//go:generate mockgen -source=sms_log_repository_interface.go -destination=mocks/sms_log_repository_mock.go -package=mock_interfaces

// ISmsLogRepository abstracts DynamoDB persistence for SmsLog.

type ISmsLogRepository interface {
	Create(ctx context.Context, l entities.SmsLog) (entities.SmsLog, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.SmsLog, error)
}
