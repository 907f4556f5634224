package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"auto_service_queue/internal/adapter/persistence/repository"
	"auto_service_queue/internal/infrastructure/config"
	"auto_service_queue/internal/infrastructure/database"
	"auto_service_queue/internal/infrastructure/sms"
	"auto_service_queue/internal/usecase"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
)

// AppContext wires the same use cases the API serves, for one CLI invocation.
type AppContext struct {
	Config        config.AppConfig
	DB            *dynamodb.Client
	Catalog       *usecase.CatalogUseCase
	Queue         *usecase.QueueUseCase
	Jobs          *usecase.JobUseCase
	Notifications *usecase.NotificationUseCase
}

func NewAppContext(ctx context.Context, envFile string) (*AppContext, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}

	customerRepo := repository.NewCustomerDynamoRepository(ddb)

	gateway := newSMSGateway(cfg.Twilio)

	catalog := usecase.NewCatalogUseCase(repository.NewServiceTypeDynamoRepository(ddb))
	queue := usecase.NewQueueUseCase(customerRepo, cfg.Estimation.QueueMinutesPerJob)
	waitTime := usecase.NewWaitTimeUseCase(catalog, queue, repository.NewWaitTimeEstimateDynamoRepository(ddb), usecase.EstimationSettings{
		QueueMultiplier:       cfg.Estimation.QueueMultiplier,
		DefaultServiceMinutes: cfg.Estimation.DefaultServiceMinutes,
	})
	notifications := usecase.NewNotificationUseCase(gateway, repository.NewSmsLogDynamoRepository(ddb), usecase.NotificationSettings{
		ShopName:     cfg.ShopName,
		Timeout:      cfg.SMS.Timeout,
		MaxAttempts:  cfg.SMS.MaxAttempts,
		RetryBackoff: cfg.SMS.RetryBackoff,
	})

	return &AppContext{
		Config:        cfg,
		DB:            ddb,
		Catalog:       catalog,
		Queue:         queue,
		Jobs:          usecase.NewJobUseCase(customerRepo, waitTime, notifications),
		Notifications: notifications,
	}, nil
}

// newSMSGateway returns nil when Twilio is absent or incomplete; commands then run without SMS.
func newSMSGateway(cfg config.TwilioConfig) interfaces.ISMSGateway {
	tw, err := sms.NewTwilioGateway(cfg)
	switch {
	case err != nil:
		log.Printf("[shopctl] twilio gateway not configured; sms disabled err=%v", err)
		return nil
	case tw == nil:
		return nil
	}
	return tw
}

// Close waits for SMS dispatches started by the command.
func (a *AppContext) Close() {
	a.Notifications.Wait()
}

// loadEnvFile loads envFile when present; a missing file is not an error.
func loadEnvFile(envFile string) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}
