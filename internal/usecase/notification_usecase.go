package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notification_usecase.go -destination=../adapter/http/handlers/mocks/notification_usecase_mock.go -package=mocks

const (
	DefaultShopName          = "Nabil Auto Service"
	defaultNotifyTimeout     = 10 * time.Second
	defaultNotifyMaxAttempts = 1
)

// JobNotification carries what a status message needs about the customer and job.
type JobNotification struct {
	CustomerID             string
	CustomerName           string
	CustomerSequenceNumber int64
	Phone                  string
	JobID                  string
	Status                 entities.JobStatus
	DurationMinutes        *int
}

// NotificationSettings bounds each detached dispatch.
type NotificationSettings struct {
	ShopName     string
	Timeout      time.Duration
	MaxAttempts  int
	RetryBackoff time.Duration
}

// INotificationUseCase sends best-effort customer SMS.
//
// Requested behavior:
//   - NotifyJobStatus never blocks on the transport and never reports failure.
//   - Every dispatch outcome is recorded as an SmsLog.

type INotificationUseCase interface {
	NotifyJobStatus(ctx context.Context, n JobNotification)
	ListLogs(ctx context.Context, customerID string) ([]entities.SmsLog, error)
	Wait()
}

type NotificationUseCase struct {
	gateway   interfaces.ISMSGateway
	logs      interfaces.ISmsLogRepository
	templates MessageTemplates
	settings  NotificationSettings
	inflight  sync.WaitGroup
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NewNotificationUseCase accepts a nil gateway (SMS disabled) and a nil log repository.
func NewNotificationUseCase(gateway interfaces.ISMSGateway, logs interfaces.ISmsLogRepository, settings NotificationSettings) *NotificationUseCase {
	if strings.TrimSpace(settings.ShopName) == "" {
		settings.ShopName = DefaultShopName
	}
	if settings.Timeout <= 0 {
		settings.Timeout = defaultNotifyTimeout
	}
	if settings.MaxAttempts < 1 {
		settings.MaxAttempts = defaultNotifyMaxAttempts
	}
	if settings.RetryBackoff < 0 {
		settings.RetryBackoff = 0
	}
	return &NotificationUseCase{
		gateway:   gateway,
		logs:      logs,
		templates: MessageTemplates{ShopName: settings.ShopName},
		settings:  settings,
	}
}

func (u *NotificationUseCase) NotifyJobStatus(ctx context.Context, n JobNotification) {
	if u.gateway == nil {
		log.Printf("[sms][usecase] gateway not configured; skipping job_id=%s status=%s", n.JobID, n.Status)
		return
	}
	if strings.TrimSpace(n.Phone) == "" {
		log.Printf("[sms][usecase] missing phone; skipping job_id=%s status=%s", n.JobID, n.Status)
		return
	}

	message := u.templates.Render(n.Status, n.CustomerName, n.CustomerSequenceNumber, n.DurationMinutes)

	// The request context is cancelled once the handler returns.
	detached := context.WithoutCancel(ctx)

	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[sms][usecase] dispatch panic job_id=%s recovered=%v", n.JobID, r)
			}
		}()
		u.dispatch(detached, n, message)
	}()
}

// Wait blocks until all in-flight dispatches have finished.
func (u *NotificationUseCase) Wait() {
	u.inflight.Wait()
}

func (u *NotificationUseCase) ListLogs(ctx context.Context, customerID string) ([]entities.SmsLog, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	if u.logs == nil {
		return []entities.SmsLog{}, nil
	}
	return u.logs.ListByCustomerID(ctx, customerID)
}

func (u *NotificationUseCase) dispatch(ctx context.Context, n JobNotification, message string) {
	sendCtx, cancel := context.WithTimeout(ctx, u.settings.Timeout)
	defer cancel()

	log.Printf("[sms][usecase] dispatch start job_id=%s status=%s to=%s", n.JobID, n.Status, maskPhone(n.Phone))

	var (
		sid      string
		err      error
		attempts int
	)
	for attempts < u.settings.MaxAttempts {
		attempts++
		sid, err = u.gateway.Send(sendCtx, n.Phone, message)
		if err == nil {
			break
		}
		log.Printf("[sms][usecase] send failed job_id=%s attempt=%d err=%v", n.JobID, attempts, err)
		if attempts >= u.settings.MaxAttempts || !sleepCtx(sendCtx, u.settings.RetryBackoff*time.Duration(attempts)) {
			break
		}
	}

	entry := entities.SmsLog{
		ID:          uuid.NewString(),
		CustomerID:  n.CustomerID,
		JobID:       n.JobID,
		PhoneNumber: n.Phone,
		Message:     message,
		Status:      entities.SmsStatusSent,
		ProviderSID: sid,
		JobStatus:   n.Status,
		Attempts:    attempts,
		CreatedAt:   time.Now().UTC(),
	}
	if err != nil {
		entry.Status = entities.SmsStatusFailed
		entry.ErrorMessage = err.Error()
		log.Printf("[sms][usecase] dispatch failed job_id=%s attempts=%d err=%v", n.JobID, attempts, err)
	} else {
		log.Printf("[sms][usecase] dispatch success job_id=%s sid=%s", n.JobID, sid)
	}

	if u.logs == nil {
		return
	}
	logCtx, cancelLog := context.WithTimeout(context.WithoutCancel(ctx), u.settings.Timeout)
	defer cancelLog()
	if _, lerr := u.logs.Create(logCtx, entry); lerr != nil {
		log.Printf("[sms][usecase] sms log write failed job_id=%s err=%v", n.JobID, lerr)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// MessageTemplates renders the customer-facing SMS for each job event.
type MessageTemplates struct {
	ShopName string
}

// RenderMessage renders with the default shop name.
func RenderMessage(event entities.JobStatus, customerName string, customerSequenceNumber int64, durationMinutes *int) string {
	return MessageTemplates{ShopName: DefaultShopName}.Render(event, customerName, customerSequenceNumber, durationMinutes)
}

func (t MessageTemplates) Render(event entities.JobStatus, customerName string, customerSequenceNumber int64, durationMinutes *int) string {
	shop := t.ShopName
	if shop == "" {
		shop = DefaultShopName
	}
	duration := "unknown"
	if durationMinutes != nil && *durationMinutes > 0 {
		duration = FormatDuration(*durationMinutes)
	}

	switch event {
	case entities.JobStatusPending:
		return fmt.Sprintf("Hello %s, thank you for choosing %s! Your service request (ID: %d) has been received. Your estimated wait time before service begins is %s.",
			customerName, shop, customerSequenceNumber, duration)
	case entities.JobStatusStarted:
		return fmt.Sprintf("Hello %s, your service at %s has started! Estimated time to completion: %s.",
			customerName, shop, duration)
	case entities.JobStatusCompleted:
		return fmt.Sprintf("Hello %s, your service at %s has been completed. Your vehicle is ready for pickup. Please contact us to schedule a pickup time. Thank you for choosing %s!",
			customerName, shop, shop)
	default:
		return fmt.Sprintf("Hi %s, your auto service request #%d status has been updated to: %s.",
			customerName, customerSequenceNumber, event)
	}
}
