package usecase

import (
	"context"
	"sync"
	"time"

	"auto_service_queue/internal/domain/entities"
)

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func catalogFixture() []entities.ServiceType {
	return []entities.ServiceType{
		{Name: "Oil Change", EstimatedDurationMinutes: 30},
		{Name: "Engine Repair", EstimatedDurationMinutes: 1440},
		{Name: "Tune Up", EstimatedDurationMinutes: 60},
		{Name: "Exhaust & Brakes", EstimatedDurationMinutes: 120},
	}
}

// findByNames mimics the repository contract: only existing entries, each once.
func findByNames(_ context.Context, names []string) ([]entities.ServiceType, error) {
	out := make([]entities.ServiceType, 0)
	for _, st := range catalogFixture() {
		for _, n := range names {
			if st.Name == n {
				out = append(out, st)
				break
			}
		}
	}
	return out, nil
}

func customerWithJobs(id string, jobs ...entities.Job) entities.Customer {
	return entities.Customer{
		ID:                     id,
		CustomerSequenceNumber: 6001,
		Name:                   "Ana",
		Phone:                  "+15551234567",
		Vehicle:                "Civic",
		Jobs:                   jobs,
		Version:                3,
	}
}

func jobWithStatus(id string, status entities.JobStatus, createdAt time.Time, services ...string) entities.Job {
	return entities.Job{ID: id, Status: status, RequestedServiceTypes: services, CreatedAt: createdAt, UpdatedAt: createdAt}
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []JobNotification
}

func (r *recordingNotifier) NotifyJobStatus(_ context.Context, n JobNotification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, n)
}

func (r *recordingNotifier) ListLogs(context.Context, string) ([]entities.SmsLog, error) {
	return nil, nil
}

func (r *recordingNotifier) Wait() {}

func (r *recordingNotifier) Calls() []JobNotification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]JobNotification(nil), r.calls...)
}
