// Code generated manually. DO NOT EDIT.

// Package servicemocks holds testify mocks of the service interfaces. It is
// separate from package mocks because the service tests import that one.
package servicemocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/stevesplace/order-service/internal/domain/dto"
	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/service"
)

type MockStaffAuthService struct {
	mock.Mock
}

func (m *MockStaffAuthService) IssueToken(ctx context.Context, secret, staffName string) (*dto.StaffTokenResponse, error) {
	args := m.Called(ctx, secret, staffName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StaffTokenResponse), args.Error(1)
}

func (m *MockStaffAuthService) ValidateToken(tokenString string) (*dto.StaffClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StaffClaims), args.Error(1)
}

type MockOrderValidator struct {
	mock.Mock
}

func (m *MockOrderValidator) Validate(ctx context.Context, req service.OrderRequest) (*service.ValidatedOrder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ValidatedOrder), args.Error(1)
}

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) PlaceOrder(ctx context.Context, req service.CheckoutRequest) (*service.PlacedOrder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlacedOrder), args.Error(1)
}

func (m *MockCheckoutService) FindOrder(ctx context.Context, reference string) (*model.OrderRecord, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderRecord), args.Error(1)
}

func (m *MockCheckoutService) OrdersToday(ctx context.Context) ([]model.OrderRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderRecord), args.Error(1)
}

type MockClosureCalendar struct {
	mock.Mock
}

func (m *MockClosureCalendar) IsClosedOn(ctx context.Context, day time.Time) (bool, error) {
	args := m.Called(ctx, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockClosureCalendar) AddClosure(ctx context.Context, req service.ClosureRequest) (*model.ClosedDate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClosedDate), args.Error(1)
}

func (m *MockClosureCalendar) Upcoming(ctx context.Context) ([]model.ClosedDate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClosedDate), args.Error(1)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ service.StaffAuthService = (*MockStaffAuthService)(nil)
	_ service.OrderValidator   = (*MockOrderValidator)(nil)
	_ service.CheckoutService  = (*MockCheckoutService)(nil)
	_ service.ClosureCalendar  = (*MockClosureCalendar)(nil)
	_ service.LoggingService   = (*MockLoggingService)(nil)
)
