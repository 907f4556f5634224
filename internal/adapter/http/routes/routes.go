package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "auto_service_queue/docs" // swagger spec registration
	"auto_service_queue/internal/adapter/http/handlers"
	"auto_service_queue/internal/adapter/persistence/repository"
	"auto_service_queue/internal/infrastructure/config"
	"auto_service_queue/internal/infrastructure/database"
	"auto_service_queue/internal/infrastructure/sms"
	"auto_service_queue/internal/usecase"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const shutdownTimeout = 15 * time.Second

// Run starts the server and blocks until SIGINT/SIGTERM, then drains
// in-flight requests and pending SMS dispatches.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	notifier := getRoutes(ctx, cfg)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[http][server] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[http][server] shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http][server] shutdown failed err=%v", err)
	}
	notifier.Wait()
	log.Printf("[http][server] stopped")
}

func getRoutes(ctx context.Context, cfg config.AppConfig) usecase.INotificationUseCase {
	ddb := database.MustConnectDynamoDB(ctx)

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	serviceTypeRepo := repository.NewServiceTypeDynamoRepository(ddb)
	estimateRepo := repository.NewWaitTimeEstimateDynamoRepository(ddb)
	counterRepo := repository.NewCounterDynamoRepository(ddb)
	smsLogRepo := repository.NewSmsLogDynamoRepository(ddb)

	var smsGateway interfaces.ISMSGateway
	twilioGateway, err := sms.NewTwilioGateway(cfg.Twilio)
	switch {
	case err != nil:
		log.Printf("Twilio gateway not configured: %v", err)
	case twilioGateway != nil:
		smsGateway = twilioGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(serviceTypeRepo)
	queueUseCase := usecase.NewQueueUseCase(customerRepo, cfg.Estimation.QueueMinutesPerJob)
	waitTimeUseCase := usecase.NewWaitTimeUseCase(catalogUseCase, queueUseCase, estimateRepo, usecase.EstimationSettings{
		QueueMultiplier:       cfg.Estimation.QueueMultiplier,
		DefaultServiceMinutes: cfg.Estimation.DefaultServiceMinutes,
	})
	notificationUseCase := usecase.NewNotificationUseCase(smsGateway, smsLogRepo, usecase.NotificationSettings{
		ShopName:     cfg.ShopName,
		Timeout:      cfg.SMS.Timeout,
		MaxAttempts:  cfg.SMS.MaxAttempts,
		RetryBackoff: cfg.SMS.RetryBackoff,
	})
	jobUseCase := usecase.NewJobUseCase(customerRepo, waitTimeUseCase, notificationUseCase)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, counterRepo, waitTimeUseCase, notificationUseCase)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	waitTimeHandler := handlers.NewWaitTimeHandler(waitTimeUseCase, queueUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase, notificationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, catalogHandler, waitTimeHandler, jobHandler, customerHandler)

	return notificationUseCase
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
