package repository

import (
	"context"
	"time"
)

// OrdersRepositoryInterface stores and lists placed orders.
type OrdersRepositoryInterface interface {
	Create(ctx context.Context, doc *OrderDocument) error
	FindByReference(ctx context.Context, reference string) (*OrderDocument, error)
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]OrderDocument, error)
}

// ClosedDatesRepositoryInterface stores the closure calendar.
type ClosedDatesRepositoryInterface interface {
	Create(ctx context.Context, doc *ClosedDateDocument) error
	ClosedOn(ctx context.Context, date string, weekday time.Weekday) (bool, error)
	ListUpcoming(ctx context.Context, from string) ([]ClosedDateDocument, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ OrdersRepositoryInterface      = (*OrdersRepository)(nil)
	_ ClosedDatesRepositoryInterface = (*ClosedDatesRepository)(nil)
	_ LogsRepositoryInterface        = (*LogsRepository)(nil)
)
