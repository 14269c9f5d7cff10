// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/stevesplace/order-service/internal/repository"
)

type MockOrdersRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrdersRepositoryInterface) Create(ctx context.Context, doc *repository.OrderDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockOrdersRepositoryInterface) FindByReference(ctx context.Context, reference string) (*repository.OrderDocument, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.OrderDocument), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]repository.OrderDocument, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OrderDocument), args.Error(1)
}

type MockClosedDatesRepositoryInterface struct {
	mock.Mock
}

func (m *MockClosedDatesRepositoryInterface) Create(ctx context.Context, doc *repository.ClosedDateDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockClosedDatesRepositoryInterface) ClosedOn(ctx context.Context, date string, weekday time.Weekday) (bool, error) {
	args := m.Called(ctx, date, weekday)
	return args.Bool(0), args.Error(1)
}

func (m *MockClosedDatesRepositoryInterface) ListUpcoming(ctx context.Context, from string) ([]repository.ClosedDateDocument, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ClosedDateDocument), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ repository.OrdersRepositoryInterface      = (*MockOrdersRepositoryInterface)(nil)
	_ repository.ClosedDatesRepositoryInterface = (*MockClosedDatesRepositoryInterface)(nil)
	_ repository.LogsRepositoryInterface        = (*MockLogsRepositoryInterface)(nil)
)
