package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=customer_usecase.go -destination=../adapter/http/handlers/mocks/customer_usecase_mock.go -package=mocks

var (
	ErrInvalidCustomerInput = errors.New("invalid customer input")
	ErrCustomerNotFound     = errors.New("customer not found")
)

// CustomerSequenceCounter names the counter that issues customer sequence numbers.
const CustomerSequenceCounter = "customerID"

type IntakeInput struct {
	Name     string
	Phone    string
	Vehicle  string
	Message  string
	Services []string
}

type IntakeResult struct {
	Customer entities.Customer
	Job      entities.Job
	Estimate entities.WaitTimeEstimate
	Quote    WaitTimeQuote
}

// ICustomerUseCase handles intake: a customer arrives with the services they need.
//
// Requested behavior:
//   - The estimate is computed before anything is written.
//   - Each customer gets a sequence number that is never reused.
//   - The "pending" SMS is best effort.

type ICustomerUseCase interface {
	Intake(ctx context.Context, in IntakeInput) (IntakeResult, error)
	AddJob(ctx context.Context, customerID string, services []string, message string) (IntakeResult, error)
	GetByID(ctx context.Context, customerID string) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo     interfaces.ICustomerRepository
	counter  interfaces.ICounterRepository
	waitTime IWaitTimeUseCase
	notifier INotificationUseCase
	now      func() time.Time
	newID    func() string
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(
	repo interfaces.ICustomerRepository,
	counter interfaces.ICounterRepository,
	waitTime IWaitTimeUseCase,
	notifier INotificationUseCase,
) *CustomerUseCase {
	return &CustomerUseCase{
		repo:     repo,
		counter:  counter,
		waitTime: waitTime,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (u *CustomerUseCase) Intake(ctx context.Context, in IntakeInput) (IntakeResult, error) {
	name := strings.TrimSpace(in.Name)
	vehicle := strings.TrimSpace(in.Vehicle)
	if name == "" || vehicle == "" {
		return IntakeResult{}, fmt.Errorf("%w: name and vehicle are required", ErrInvalidCustomerInput)
	}
	phone, err := entities.NormalizePhone(in.Phone)
	if err != nil {
		return IntakeResult{}, fmt.Errorf("%w: %v", ErrInvalidCustomerInput, err)
	}

	quote, err := u.waitTime.Estimate(ctx, in.Services)
	if err != nil {
		return IntakeResult{}, err
	}

	seq, err := u.counter.Next(ctx, CustomerSequenceCounter)
	if err != nil {
		log.Printf("[customer][usecase] sequence failed err=%v", err)
		return IntakeResult{}, fmt.Errorf("next customer sequence: %w", err)
	}

	now := u.now()
	job := entities.NewPendingJob(u.newID(), quote.MatchedServices, in.Message, now)
	customer := entities.Customer{
		ID:                     u.newID(),
		CustomerSequenceNumber: seq,
		Name:                   name,
		Phone:                  phone,
		Vehicle:                vehicle,
		Message:                strings.TrimSpace(in.Message),
		Jobs:                   []entities.Job{job},
		Version:                1,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	saved, err := u.repo.Create(ctx, customer)
	if err != nil {
		log.Printf("[customer][usecase] create failed seq=%d err=%v", seq, err)
		return IntakeResult{}, err
	}
	log.Printf("[customer][usecase] intake success customer_id=%s seq=%d job_id=%s minutes=%d",
		saved.ID, saved.CustomerSequenceNumber, job.ID, quote.EstimatedWaitTimeMinutes)

	return u.finishIntake(ctx, saved, job, quote)
}

func (u *CustomerUseCase) AddJob(ctx context.Context, customerID string, services []string, message string) (IntakeResult, error) {
	customer, err := u.GetByID(ctx, customerID)
	if err != nil {
		return IntakeResult{}, err
	}

	quote, err := u.waitTime.Estimate(ctx, services)
	if err != nil {
		return IntakeResult{}, err
	}

	job := entities.NewPendingJob(u.newID(), quote.MatchedServices, message, u.now())
	saved, err := u.repo.AppendJob(ctx, customer.ID, job, customer.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return IntakeResult{}, ErrJobConflict
		}
		log.Printf("[customer][usecase] append job failed customer_id=%s err=%v", customer.ID, err)
		return IntakeResult{}, err
	}
	log.Printf("[customer][usecase] job added customer_id=%s job_id=%s", saved.ID, job.ID)

	return u.finishIntake(ctx, saved, job, quote)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, customerID string) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) finishIntake(ctx context.Context, customer entities.Customer, job entities.Job, quote WaitTimeQuote) (IntakeResult, error) {
	estimate, err := u.waitTime.PersistEstimate(ctx, customer.ID, quote.MatchedServices, quote.EstimatedWaitTimeMinutes)
	if err != nil {
		return IntakeResult{}, fmt.Errorf("persist estimate for customer %s: %w", customer.ID, err)
	}

	if u.notifier != nil {
		minutes := quote.EstimatedWaitTimeMinutes
		u.notifier.NotifyJobStatus(ctx, JobNotification{
			CustomerID:             customer.ID,
			CustomerName:           customer.Name,
			CustomerSequenceNumber: customer.CustomerSequenceNumber,
			Phone:                  customer.Phone,
			JobID:                  job.ID,
			Status:                 entities.JobStatusPending,
			DurationMinutes:        &minutes,
		})
	}

	return IntakeResult{
		Customer: customer,
		Job:      job,
		Estimate: estimate,
		Quote:    quote,
	}, nil
}
