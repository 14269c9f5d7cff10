package repository

import (
	"context"
	"errors"
	"time"

	"github.com/stevesplace/order-service/internal/circuitbreaker"
)

// guarded runs fn through cb and returns its result.
func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var fnErr error
		result, fnErr = fn()
		return fnErr
	})
	return result, err
}

// IsBusinessError reports repository errors that describe the request rather
// than the health of the database. Breakers should not count them.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// OrdersRepositoryWithCircuitBreaker wraps an orders repository with circuit breaker protection.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           OrdersRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrdersRepositoryWithCircuitBreaker(repo OrdersRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores an order. When the circuit is open the order is not stored
// and ErrCircuitOpen is returned so checkout can fail before promising a pickup.
func (r *OrdersRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *OrderDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
}

// FindByReference looks up an order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) FindByReference(ctx context.Context, reference string) (*OrderDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() (*OrderDocument, error) {
		return r.repo.FindByReference(ctx, reference)
	})
}

// ListCreatedBetween lists orders with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]OrderDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]OrderDocument, error) {
		return r.repo.ListCreatedBetween(ctx, start, end)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ClosedDatesRepositoryWithCircuitBreaker wraps a closed dates repository with circuit breaker protection.
type ClosedDatesRepositoryWithCircuitBreaker struct {
	repo           ClosedDatesRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewClosedDatesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewClosedDatesRepositoryWithCircuitBreaker(repo ClosedDatesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ClosedDatesRepositoryWithCircuitBreaker {
	return &ClosedDatesRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a closure with circuit breaker protection.
func (r *ClosedDatesRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *ClosedDateDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
}

// ClosedOn checks the calendar with circuit breaker protection. An open
// circuit is an error: a pickup must not be accepted on an unverified date.
func (r *ClosedDatesRepositoryWithCircuitBreaker) ClosedOn(ctx context.Context, date string, weekday time.Weekday) (bool, error) {
	return guarded(ctx, r.circuitBreaker, func() (bool, error) {
		return r.repo.ClosedOn(ctx, date, weekday)
	})
}

// ListUpcoming lists closures with circuit breaker protection.
func (r *ClosedDatesRepositoryWithCircuitBreaker) ListUpcoming(ctx context.Context, from string) ([]ClosedDateDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]ClosedDateDocument, error) {
		return r.repo.ListUpcoming(ctx, from)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ClosedDatesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores an entry. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores entries. Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

var (
	_ OrdersRepositoryInterface      = (*OrdersRepositoryWithCircuitBreaker)(nil)
	_ ClosedDatesRepositoryInterface = (*ClosedDatesRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface        = (*LogsRepositoryWithCircuitBreaker)(nil)
)
