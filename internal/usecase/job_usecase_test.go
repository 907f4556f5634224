package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"
	mock_interfaces "auto_service_queue/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type jobDeps struct {
	waitTimeDeps
	notifier *recordingNotifier
}

func newJobUseCase(t *testing.T) (*JobUseCase, jobDeps) {
	t.Helper()
	wt, deps := newWaitTimeUseCase(t, EstimationSettings{})
	n := &recordingNotifier{}
	uc := NewJobUseCase(deps.customers, wt, n)
	uc.now = func() time.Time { return fixedNow }
	return uc, jobDeps{waitTimeDeps: deps, notifier: n}
}

func echoUpdate(_ context.Context, customerID string, position int, job entities.Job, expectedVersion int64, _ bool) (entities.Customer, error) {
	c := customerWithJobs(customerID, job)
	c.Version = expectedVersion + 1
	return c, nil
}

func TestJobUseCase_SetStatus_Validations(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		_, err := uc.SetStatus(context.Background(), "job-1", "cancelled")
		if !errors.Is(err, ErrInvalidJobStatus) {
			t.Fatalf("expected ErrInvalidJobStatus, got %v", err)
		}
	})

	t.Run("status names are case and space sensitive", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		for _, raw := range []string{"STARTED", "Completed", " pending "} {
			_, err := uc.SetStatus(context.Background(), "job-1", raw)
			if !errors.Is(err, ErrInvalidJobStatus) {
				t.Fatalf("status %q: expected ErrInvalidJobStatus, got %v", raw, err)
			}
		}
	})

	t.Run("blank job id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		_, err := uc.SetStatus(context.Background(), "  ", "started")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("unknown job leaves storage untouched", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-x").Return(entities.Customer{}, nil)
		deps.customers.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.SetStatus(context.Background(), "job-x", "started")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
		if len(deps.notifier.Calls()) != 0 {
			t.Fatalf("expected no notification")
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Customer{}, errors.New("db"))

		_, err := uc.SetStatus(context.Background(), "job-1", "started")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestJobUseCase_SetStatus_Transitions(t *testing.T) {
	t.Run("pending to started sets start time and notifies with service duration", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		c := customerWithJobs("cust-1", jobWithStatus("job-1", entities.JobStatusPending, fixedNow.Add(-time.Hour), "Oil Change", "Tune Up"))
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(c, nil)
		deps.customers.EXPECT().UpdateJob(gomock.Any(), "cust-1", 0, gomock.Any(), int64(3), gomock.Any()).DoAndReturn(echoUpdate)
		deps.services.EXPECT().FindByNames(gomock.Any(), gomock.Any()).DoAndReturn(findByNames)

		res, err := uc.SetStatus(context.Background(), "job-1", "started")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PreviousStatus != entities.JobStatusPending || res.NewStatus != entities.JobStatusStarted {
			t.Fatalf("unexpected change: %+v", res)
		}
		if res.Job.StartTime == nil || !res.Job.StartTime.Equal(fixedNow) || res.Job.CompletionTime != nil {
			t.Fatalf("unexpected timestamps: %+v", res.Job)
		}

		calls := deps.notifier.Calls()
		if len(calls) != 1 || calls[0].Status != entities.JobStatusStarted {
			t.Fatalf("expected one started notification, got %+v", calls)
		}
		if calls[0].DurationMinutes == nil || *calls[0].DurationMinutes != 90 {
			t.Fatalf("expected 90 minutes, got %v", calls[0].DurationMinutes)
		}
	})

	t.Run("started to completed keeps start time", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		started := fixedNow.Add(-2 * time.Hour)
		job := jobWithStatus("job-1", entities.JobStatusStarted, fixedNow.Add(-3*time.Hour), "Oil Change")
		job.StartTime = &started
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(customerWithJobs("cust-1", job), nil)
		deps.customers.EXPECT().UpdateJob(gomock.Any(), "cust-1", 0, gomock.Any(), int64(3), false).DoAndReturn(echoUpdate)

		res, err := uc.SetStatus(context.Background(), "job-1", "completed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Job.StartTime.Equal(started) || res.Job.CompletionTime == nil || !res.Job.CompletionTime.Equal(fixedNow) {
			t.Fatalf("unexpected timestamps: %+v", res.Job)
		}
		calls := deps.notifier.Calls()
		if len(calls) != 1 || calls[0].Status != entities.JobStatusCompleted || calls[0].DurationMinutes != nil {
			t.Fatalf("unexpected notification: %+v", calls)
		}
	})

	t.Run("back to pending uses stored estimate", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		job := jobWithStatus("job-1", entities.JobStatusStarted, fixedNow.Add(-time.Hour), "Oil Change")
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(customerWithJobs("cust-1", job), nil)
		deps.customers.EXPECT().UpdateJob(gomock.Any(), "cust-1", 0, gomock.Any(), gomock.Any(), true).DoAndReturn(echoUpdate)
		deps.estimates.EXPECT().GetByCustomerID(gomock.Any(), "cust-1").
			Return(entities.NewWaitTimeEstimate("cust-1", nil, 75, fixedNow), nil)

		if _, err := uc.SetStatus(context.Background(), "job-1", "pending"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		calls := deps.notifier.Calls()
		if len(calls) != 1 || *calls[0].DurationMinutes != 75 {
			t.Fatalf("expected pending notification with 75 minutes, got %+v", calls)
		}
	})

	t.Run("back to pending without estimate falls back to default", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		job := jobWithStatus("job-1", entities.JobStatusCompleted, fixedNow.Add(-time.Hour))
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(customerWithJobs("cust-1", job), nil)
		deps.customers.EXPECT().UpdateJob(gomock.Any(), "cust-1", 0, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
		deps.estimates.EXPECT().GetByCustomerID(gomock.Any(), "cust-1").Return(entities.WaitTimeEstimate{}, errors.New("db"))

		if _, err := uc.SetStatus(context.Background(), "job-1", "pending"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		calls := deps.notifier.Calls()
		if len(calls) != 1 || *calls[0].DurationMinutes != DefaultServiceMinutes {
			t.Fatalf("expected default duration, got %+v", calls)
		}
	})

	t.Run("same status persists but does not notify", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		started := fixedNow.Add(-time.Hour)
		job := jobWithStatus("job-1", entities.JobStatusStarted, fixedNow.Add(-2*time.Hour))
		job.StartTime = &started
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(customerWithJobs("cust-1", job), nil)
		deps.customers.EXPECT().UpdateJob(gomock.Any(), "cust-1", 0, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		res, err := uc.SetStatus(context.Background(), "job-1", "started")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Job.StartTime.Equal(started) {
			t.Fatalf("start time must not move, got %v", res.Job.StartTime)
		}
		if len(deps.notifier.Calls()) != 0 {
			t.Fatalf("expected no notification")
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		job := jobWithStatus("job-1", entities.JobStatusPending, fixedNow)
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(customerWithJobs("cust-1", job), nil)
		deps.customers.EXPECT().UpdateJob(gomock.Any(), "cust-1", 0, gomock.Any(), int64(3), gomock.Any()).
			Return(entities.Customer{}, interfaces.ErrVersionConflict)

		_, err := uc.SetStatus(context.Background(), "job-1", "started")
		if !errors.Is(err, ErrJobConflict) {
			t.Fatalf("expected ErrJobConflict, got %v", err)
		}
		if len(deps.notifier.Calls()) != 0 {
			t.Fatalf("expected no notification")
		}
	})
}

func TestJobUseCase_SetStatus_NotificationFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	services := mock_interfaces.NewMockIServiceTypeRepository(ctrl)
	gateway := mock_interfaces.NewMockISMSGateway(ctrl)
	logs := mock_interfaces.NewMockISmsLogRepository(ctrl)

	notifier := NewNotificationUseCase(gateway, logs, NotificationSettings{Timeout: time.Second})
	wt := NewWaitTimeUseCase(NewCatalogUseCase(services), NewQueueUseCase(customers, 0), nil, EstimationSettings{})
	uc := NewJobUseCase(customers, wt, notifier)

	job := jobWithStatus("job-1", entities.JobStatusPending, fixedNow, "Oil Change")
	customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(customerWithJobs("cust-1", job), nil)
	customers.EXPECT().UpdateJob(gomock.Any(), "cust-1", 0, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
	services.EXPECT().FindByNames(gomock.Any(), gomock.Any()).DoAndReturn(findByNames)
	gateway.EXPECT().Send(gomock.Any(), "+15551234567", gomock.Any()).Return("", errors.New("twilio down"))
	logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entities.SmsLog) (entities.SmsLog, error) {
			if l.Status != entities.SmsStatusFailed || l.ErrorMessage != "twilio down" {
				t.Errorf("unexpected sms log: %+v", l)
			}
			return l, nil
		},
	)

	res, err := uc.SetStatus(context.Background(), "job-1", "started")
	notifier.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NewStatus != entities.JobStatusStarted {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestJobUseCase_GetJobStatus(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-x").Return(entities.Customer{}, nil)

		_, err := uc.GetJobStatus(context.Background(), "job-x")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("with estimate", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		job := jobWithStatus("job-1", entities.JobStatusPending, fixedNow, "Oil Change")
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(customerWithJobs("cust-1", job), nil)
		deps.estimates.EXPECT().GetByCustomerID(gomock.Any(), "cust-1").
			Return(entities.NewWaitTimeEstimate("cust-1", nil, 90, fixedNow), nil)

		v, err := uc.GetJobStatus(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.CustomerName != "Ana" || v.Status != entities.JobStatusPending {
			t.Fatalf("unexpected view: %+v", v)
		}
		if v.EstimatedWaitTime == nil || *v.EstimatedWaitTime != 90 || v.FormattedWaitTime != "2 hour(s)" {
			t.Fatalf("unexpected wait time: %+v", v)
		}
	})

	t.Run("without estimate", func(t *testing.T) {
		uc, deps := newJobUseCase(t)
		job := jobWithStatus("job-1", entities.JobStatusStarted, fixedNow)
		deps.customers.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(customerWithJobs("cust-1", job), nil)
		deps.estimates.EXPECT().GetByCustomerID(gomock.Any(), "cust-1").Return(entities.WaitTimeEstimate{}, nil)

		v, err := uc.GetJobStatus(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.EstimatedWaitTime != nil {
			t.Fatalf("expected no wait time, got %d", *v.EstimatedWaitTime)
		}
	})
}
