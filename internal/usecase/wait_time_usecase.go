package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"
)

//go:generate mockgen -source=wait_time_usecase.go -destination=../adapter/http/handlers/mocks/wait_time_usecase_mock.go -package=mocks

var (
	ErrInvalidServices          = errors.New("services array is required")
	ErrUnknownServices          = errors.New("no valid services selected")
	ErrInvalidCustomerID        = errors.New("invalid customer id")
	ErrInvalidWaitTime          = errors.New("invalid wait time")
	ErrWaitTimeEstimateNotFound = errors.New("no wait time estimate found for this customer")
)

const (
	DefaultQueueMultiplier = 0.5
	DefaultServiceMinutes  = 30
	minutesPerHour         = 60
	minutesPerDay          = 1440
)

// WaitTimeQuote is the outcome of one estimation.
//
// MatchedServices is the subset of RequestedServices the catalog recognized;
// the minutes are computed from it alone.
type WaitTimeQuote struct {
	EstimatedWaitTimeMinutes int
	FormattedTime            string
	RequestedServices        []string
	MatchedServices          []string
	BaseMinutes              int
	ActiveJobCount           int
}

// EstimationSettings tunes the estimator. A negative multiplier or a
// non-positive default duration falls back to the package defaults; a zero
// multiplier disables the queue penalty.
type EstimationSettings struct {
	QueueMultiplier       float64
	DefaultServiceMinutes int
}

// IWaitTimeUseCase exposes wait-time estimation.
//
//   - Estimate() is a pure function of catalog + queue state at call time, no caching.
//   - PersistEstimate() keeps one live estimate per customer.
//   - ServiceDuration() times a job for the "service started" message.

type IWaitTimeUseCase interface {
	Estimate(ctx context.Context, serviceNames []string) (WaitTimeQuote, error)
	EstimateForCustomer(ctx context.Context, customerID string, serviceNames []string) (WaitTimeQuote, error)
	PersistEstimate(ctx context.Context, customerID string, serviceNames []string, minutes int) (entities.WaitTimeEstimate, error)
	GetCustomerEstimate(ctx context.Context, customerID string) (entities.WaitTimeEstimate, error)
	ServiceDuration(ctx context.Context, serviceNames []string) int
}

type WaitTimeUseCase struct {
	catalog  ICatalogUseCase
	queue    IQueueUseCase
	repo     interfaces.IWaitTimeEstimateRepository
	settings EstimationSettings
	now      func() time.Time
}

var _ IWaitTimeUseCase = (*WaitTimeUseCase)(nil)

func NewWaitTimeUseCase(catalog ICatalogUseCase, queue IQueueUseCase, repo interfaces.IWaitTimeEstimateRepository, settings EstimationSettings) *WaitTimeUseCase {
	if settings.QueueMultiplier < 0 {
		settings.QueueMultiplier = DefaultQueueMultiplier
	}
	if settings.DefaultServiceMinutes <= 0 {
		settings.DefaultServiceMinutes = DefaultServiceMinutes
	}
	return &WaitTimeUseCase{
		catalog:  catalog,
		queue:    queue,
		repo:     repo,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *WaitTimeUseCase) Estimate(ctx context.Context, serviceNames []string) (WaitTimeQuote, error) {
	requested := normalizeServiceNames(serviceNames)
	if len(requested) == 0 {
		return WaitTimeQuote{}, ErrInvalidServices
	}

	matched, err := u.catalog.ResolveServiceTypes(ctx, requested)
	if err != nil {
		return WaitTimeQuote{}, err
	}

	base := 0
	names := make([]string, 0, len(matched))
	for _, st := range matched {
		base += st.EstimatedDurationMinutes
		names = append(names, st.Name)
	}

	active, err := u.queue.ActiveJobCount(ctx)
	if err != nil {
		log.Printf("[wait-time][usecase] active job count failed err=%v", err)
		return WaitTimeQuote{}, fmt.Errorf("count active jobs: %w", err)
	}

	minutes := CalculateWaitTime(base, active, u.settings.QueueMultiplier)
	log.Printf("[wait-time][usecase] estimate base=%d active_jobs=%d multiplier=%.2f minutes=%d", base, active, u.settings.QueueMultiplier, minutes)

	return WaitTimeQuote{
		EstimatedWaitTimeMinutes: minutes,
		FormattedTime:            FormatDuration(minutes),
		RequestedServices:        requested,
		MatchedServices:          names,
		BaseMinutes:              base,
		ActiveJobCount:           active,
	}, nil
}

// EstimateForCustomer estimates and, when customerID is set, stores the result.
func (u *WaitTimeUseCase) EstimateForCustomer(ctx context.Context, customerID string, serviceNames []string) (WaitTimeQuote, error) {
	quote, err := u.Estimate(ctx, serviceNames)
	if err != nil {
		return WaitTimeQuote{}, err
	}
	if customerID = strings.TrimSpace(customerID); customerID == "" {
		return quote, nil
	}
	if _, err := u.PersistEstimate(ctx, customerID, quote.MatchedServices, quote.EstimatedWaitTimeMinutes); err != nil {
		return WaitTimeQuote{}, err
	}
	return quote, nil
}

func (u *WaitTimeUseCase) PersistEstimate(ctx context.Context, customerID string, serviceNames []string, minutes int) (entities.WaitTimeEstimate, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.WaitTimeEstimate{}, ErrInvalidCustomerID
	}
	if minutes < 0 {
		return entities.WaitTimeEstimate{}, ErrInvalidWaitTime
	}

	e := entities.NewWaitTimeEstimate(customerID, normalizeServiceNames(serviceNames), minutes, u.now())
	saved, err := u.repo.Upsert(ctx, e)
	if err != nil {
		log.Printf("[wait-time][usecase] persist failed customer_id=%s err=%v", customerID, err)
		return entities.WaitTimeEstimate{}, err
	}
	return saved, nil
}

func (u *WaitTimeUseCase) GetCustomerEstimate(ctx context.Context, customerID string) (entities.WaitTimeEstimate, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.WaitTimeEstimate{}, ErrInvalidCustomerID
	}

	e, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return entities.WaitTimeEstimate{}, err
	}
	if e.CustomerID == "" || e.IsExpired(u.now()) {
		return entities.WaitTimeEstimate{}, ErrWaitTimeEstimateNotFound
	}
	return e, nil
}

// ServiceDuration sums the catalog durations of the matched services.
// It never fails: lookup problems fall back to the configured default.
func (u *WaitTimeUseCase) ServiceDuration(ctx context.Context, serviceNames []string) int {
	matched, err := u.catalog.ResolveServiceTypes(ctx, serviceNames)
	if err != nil {
		if !errors.Is(err, ErrInvalidServices) && !errors.Is(err, ErrUnknownServices) {
			log.Printf("[wait-time][usecase] service duration lookup failed err=%v", err)
		}
		return u.settings.DefaultServiceMinutes
	}
	total := 0
	for _, st := range matched {
		total += st.EstimatedDurationMinutes
	}
	return total
}

// CalculateWaitTime applies the queue load to a base duration.
//
// queueFactor discounts the job being estimated, so a lone customer pays no
// queue penalty. The result is rounded half-up.
func CalculateWaitTime(baseMinutes, activeJobCount int, queueMultiplier float64) int {
	if baseMinutes <= 0 {
		return 0
	}
	queueFactor := activeJobCount - 1
	if queueFactor < 0 {
		queueFactor = 0
	}
	total := float64(baseMinutes) + float64(queueFactor)*float64(baseMinutes)*queueMultiplier
	return int(math.Floor(total + 0.5))
}

// FormatDuration renders minutes for customers. Hours and days use the
// ceiling so a communicated estimate never understates the wait.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	switch {
	case minutes >= minutesPerDay:
		return fmt.Sprintf("%d day(s)", ceilDiv(minutes, minutesPerDay))
	case minutes >= minutesPerHour:
		return fmt.Sprintf("%d hour(s)", ceilDiv(minutes, minutesPerHour))
	default:
		return fmt.Sprintf("%d minute(s)", minutes)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
