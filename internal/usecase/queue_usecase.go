package usecase

import (
	"context"
	"sort"
	"strings"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"
)

//go:generate mockgen -source=queue_usecase.go -destination=../adapter/http/handlers/mocks/queue_usecase_mock.go -package=mocks

const defaultQueueMinutesPerJob = 30

// IQueueUseCase is the read model over active jobs.

type IQueueUseCase interface {
	ActiveJobCount(ctx context.Context) (int, error)
	Snapshot(ctx context.Context, customerID string) (entities.QueueSnapshot, error)
}

type QueueUseCase struct {
	repo          interfaces.ICustomerRepository
	minutesPerJob int
}

var _ IQueueUseCase = (*QueueUseCase)(nil)

func NewQueueUseCase(repo interfaces.ICustomerRepository, minutesPerJob int) *QueueUseCase {
	if minutesPerJob <= 0 {
		minutesPerJob = defaultQueueMinutesPerJob
	}
	return &QueueUseCase{repo: repo, minutesPerJob: minutesPerJob}
}

// ActiveJobCount counts jobs, not customers, in pending or started.
func (u *QueueUseCase) ActiveJobCount(ctx context.Context) (int, error) {
	customers, err := u.repo.ListWithActiveJobs(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, c := range customers {
		for _, j := range c.Jobs {
			if j.Status.IsActive() {
				count++
			}
		}
	}
	return count, nil
}

func (u *QueueUseCase) Snapshot(ctx context.Context, customerID string) (entities.QueueSnapshot, error) {
	customers, err := u.repo.ListWithActiveJobs(ctx)
	if err != nil {
		return entities.QueueSnapshot{}, err
	}

	pending := make([]entities.QueueEntry, 0)
	started := make([]entities.QueueEntry, 0)
	for _, c := range customers {
		for _, j := range c.Jobs {
			entry := entities.QueueEntry{
				JobID:         j.ID,
				CustomerID:    c.ID,
				CustomerName:  c.Name,
				CustomerPhone: c.Phone,
				ServiceTypes:  j.RequestedServiceTypes,
				CreatedAt:     j.CreatedAt,
			}
			switch j.Status {
			case entities.JobStatusPending:
				pending = append(pending, entry)
			case entities.JobStatusStarted:
				entry.StartTime = j.StartTime
				started = append(started, entry)
			}
		}
	}

	byCreation := func(list []entities.QueueEntry) {
		sort.SliceStable(list, func(a, b int) bool { return list[a].CreatedAt.Before(list[b].CreatedAt) })
	}
	byCreation(pending)
	byCreation(started)

	snapshot := entities.QueueSnapshot{
		QueueLength:       len(pending),
		ActiveJobs:        len(started),
		EstimatedWaitTime: len(pending) * u.minutesPerJob,
		PendingJobs:       pending,
		StartedJobs:       started,
	}

	if customerID = strings.TrimSpace(customerID); customerID != "" {
		for i, e := range pending {
			if e.CustomerID == customerID {
				pos := i + 1
				snapshot.CustomerPosition = &pos
				break
			}
		}
	}
	return snapshot, nil
}
