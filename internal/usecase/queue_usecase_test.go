package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"auto_service_queue/internal/domain/entities"
	mock_interfaces "auto_service_queue/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func queueFixture() []entities.Customer {
	t0 := fixedNow
	return []entities.Customer{
		customerWithJobs("cust-b",
			jobWithStatus("job-b1", entities.JobStatusPending, t0.Add(20*time.Minute), "Oil Change"),
			jobWithStatus("job-b0", entities.JobStatusCompleted, t0.Add(-time.Hour), "Tune Up"),
		),
		customerWithJobs("cust-a",
			jobWithStatus("job-a1", entities.JobStatusStarted, t0, "Tune Up"),
			jobWithStatus("job-a2", entities.JobStatusPending, t0.Add(10*time.Minute), "Oil Change"),
		),
	}
}

func TestQueueUseCase_ActiveJobCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewQueueUseCase(repo, 30)

	repo.EXPECT().ListWithActiveJobs(gomock.Any()).Return(queueFixture(), nil)

	n, err := uc.ActiveJobCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 active jobs, got %d", n)
	}
}

func TestQueueUseCase_Snapshot(t *testing.T) {
	t.Run("orders by creation and locates customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewQueueUseCase(repo, 30)

		repo.EXPECT().ListWithActiveJobs(gomock.Any()).Return(queueFixture(), nil)

		s, err := uc.Snapshot(context.Background(), "cust-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.QueueLength != 2 || s.ActiveJobs != 1 || s.EstimatedWaitTime != 60 {
			t.Fatalf("unexpected snapshot: %+v", s)
		}
		if s.PendingJobs[0].JobID != "job-a2" || s.PendingJobs[1].JobID != "job-b1" {
			t.Fatalf("unexpected pending order: %+v", s.PendingJobs)
		}
		if s.StartedJobs[0].StartTime != nil {
			t.Fatalf("fixture job has no start time")
		}
		if s.CustomerPosition == nil || *s.CustomerPosition != 2 {
			t.Fatalf("expected position 2, got %v", s.CustomerPosition)
		}
	})

	t.Run("customer without pending job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewQueueUseCase(repo, 0)

		repo.EXPECT().ListWithActiveJobs(gomock.Any()).Return(queueFixture(), nil)

		s, err := uc.Snapshot(context.Background(), "cust-z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.CustomerPosition != nil {
			t.Fatalf("expected nil position, got %d", *s.CustomerPosition)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewQueueUseCase(repo, 30)

		repo.EXPECT().ListWithActiveJobs(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Snapshot(context.Background(), ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}
