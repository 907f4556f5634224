package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"
)

//go:generate mockgen -source=job_usecase.go -destination=../adapter/http/handlers/mocks/job_usecase_mock.go -package=mocks

var (
	ErrInvalidJobStatus = errors.New("invalid status. must be one of: pending, started, completed")
	ErrInvalidJobID     = errors.New("invalid job id")
	ErrJobNotFound      = errors.New("job not found")
	ErrJobConflict      = errors.New("job was modified concurrently")
)

// JobStatusChange is the result of SetStatus.
type JobStatusChange struct {
	PreviousStatus entities.JobStatus
	NewStatus      entities.JobStatus
	Job            entities.Job
	Customer       entities.Customer
}

// JobStatusView is the read model behind the job status endpoint.
type JobStatusView struct {
	JobID             string
	Status            entities.JobStatus
	ServiceTypes      []string
	CustomerID        string
	CustomerName      string
	CustomerPhone     string
	EstimatedWaitTime *int
	FormattedWaitTime string
	StartTime         *time.Time
	CompletionTime    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IJobUseCase drives the job lifecycle.
//
// Requested behavior:
//   - SetStatus persists first, then notifies once when the status actually changed.
//   - A notification problem never fails the status update.

type IJobUseCase interface {
	SetStatus(ctx context.Context, jobID string, rawStatus string) (JobStatusChange, error)
	GetJobStatus(ctx context.Context, jobID string) (JobStatusView, error)
}

type JobUseCase struct {
	repo     interfaces.ICustomerRepository
	waitTime IWaitTimeUseCase
	notifier INotificationUseCase
	now      func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.ICustomerRepository, waitTime IWaitTimeUseCase, notifier INotificationUseCase) *JobUseCase {
	return &JobUseCase{
		repo:     repo,
		waitTime: waitTime,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *JobUseCase) SetStatus(ctx context.Context, jobID string, rawStatus string) (JobStatusChange, error) {
	next, ok := entities.ParseJobStatus(rawStatus)
	if !ok {
		return JobStatusChange{}, ErrInvalidJobStatus
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return JobStatusChange{}, ErrInvalidJobID
	}

	log.Printf("[job][usecase] set-status start job_id=%s status=%s", jobID, next)

	customer, err := u.repo.GetByJobID(ctx, jobID)
	if err != nil {
		log.Printf("[job][usecase] lookup failed job_id=%s err=%v", jobID, err)
		return JobStatusChange{}, err
	}
	pos := customer.FindJob(jobID)
	if customer.ID == "" || pos < 0 {
		return JobStatusChange{}, ErrJobNotFound
	}

	job := customer.Jobs[pos]
	previous := job.ApplyStatus(next, u.now())
	customer.Jobs[pos] = job

	updated, err := u.repo.UpdateJob(ctx, customer.ID, pos, job, customer.Version, customer.HasActiveJobs())
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[job][usecase] conflict job_id=%s customer_id=%s version=%d", jobID, customer.ID, customer.Version)
			return JobStatusChange{}, ErrJobConflict
		}
		log.Printf("[job][usecase] update failed job_id=%s err=%v", jobID, err)
		return JobStatusChange{}, err
	}

	if p := updated.FindJob(jobID); p >= 0 {
		job = updated.Jobs[p]
	}

	log.Printf("[job][usecase] set-status success job_id=%s previous=%s new=%s", jobID, previous, next)

	if previous != next {
		u.notify(ctx, updated, job)
	}

	return JobStatusChange{
		PreviousStatus: previous,
		NewStatus:      next,
		Job:            job,
		Customer:       updated,
	}, nil
}

func (u *JobUseCase) GetJobStatus(ctx context.Context, jobID string) (JobStatusView, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return JobStatusView{}, ErrInvalidJobID
	}

	customer, err := u.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return JobStatusView{}, err
	}
	pos := customer.FindJob(jobID)
	if customer.ID == "" || pos < 0 {
		return JobStatusView{}, ErrJobNotFound
	}
	job := customer.Jobs[pos]

	view := JobStatusView{
		JobID:          job.ID,
		Status:         job.Status,
		ServiceTypes:   job.RequestedServiceTypes,
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		CustomerPhone:  customer.Phone,
		StartTime:      job.StartTime,
		CompletionTime: job.CompletionTime,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}

	if est, err := u.waitTime.GetCustomerEstimate(ctx, customer.ID); err == nil {
		minutes := est.EstimatedWaitTimeMinutes
		view.EstimatedWaitTime = &minutes
		view.FormattedWaitTime = FormatDuration(minutes)
	} else if !errors.Is(err, ErrWaitTimeEstimateNotFound) {
		log.Printf("[job][usecase] estimate lookup failed customer_id=%s err=%v", customer.ID, err)
	}
	return view, nil
}

// notify picks the timing context for the new status and hands off to the dispatcher.
func (u *JobUseCase) notify(ctx context.Context, customer entities.Customer, job entities.Job) {
	if u.notifier == nil {
		return
	}

	var duration *int
	switch job.Status {
	case entities.JobStatusPending:
		minutes := DefaultServiceMinutes
		if est, err := u.waitTime.GetCustomerEstimate(ctx, customer.ID); err == nil {
			minutes = est.EstimatedWaitTimeMinutes
		}
		duration = &minutes
	case entities.JobStatusStarted:
		minutes := u.waitTime.ServiceDuration(ctx, job.RequestedServiceTypes)
		duration = &minutes
	}

	u.notifier.NotifyJobStatus(ctx, JobNotification{
		CustomerID:             customer.ID,
		CustomerName:           customer.Name,
		CustomerSequenceNumber: customer.CustomerSequenceNumber,
		Phone:                  customer.Phone,
		JobID:                  job.ID,
		Status:                 job.Status,
		DurationMinutes:        duration,
	})
}
