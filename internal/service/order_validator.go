package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/stevesplace/order-service/internal/domain/order"
	"github.com/stevesplace/order-service/internal/domain/validation"
	"github.com/stevesplace/order-service/internal/metrics"
)

// MaxCustomerNameLength bounds the contact name, in characters.
const MaxCustomerNameLength = 100

// PhoneDigits is the exact length of a contact phone number.
const PhoneDigits = 10

// OrderRequest is the raw input of the validation pipeline.
type OrderRequest struct {
	CustomerName string
	PhoneNumber  string
	// Items are raw JSON objects, each tagged with its category in "type".
	Items        []json.RawMessage
	ClaimedPrice decimal.Decimal
	// PickupAt is an ISO-8601 timestamp; without an offset it is read as UTC.
	PickupAt    string
	CardPayment bool
}

// ValidatedOrder is the pipeline output.
type ValidatedOrder struct {
	Order *order.Order
	// PickupAt is the pickup time in the store time zone.
	PickupAt time.Time
	// Total is the amount due for the payment mode, equal to the claimed price.
	Total decimal.Decimal
}

// OrderValidator runs the order validation pipeline.
type OrderValidator interface {
	Validate(ctx context.Context, req OrderRequest) (*ValidatedOrder, error)
}

// ValidatorOption configures an OrderValidatorService.
type ValidatorOption func(*OrderValidatorService)

// WithFeeRate sets the card fee rate of validated orders.
func WithFeeRate(rate decimal.Decimal) ValidatorOption {
	return func(s *OrderValidatorService) {
		s.orderOpts = append(s.orderOpts, order.WithFeeRate(rate))
	}
}

// OrderValidatorService checks contact details, builds the items, admits the
// pickup time and reconciles the claimed price, stopping at the first failure.
type OrderValidatorService struct {
	items     ItemFactory
	hours     *StoreHours
	closures  ClosureChecker
	orderOpts []order.Option
}

// NewOrderValidator creates the pipeline.
func NewOrderValidator(items ItemFactory, hours *StoreHours, closures ClosureChecker, opts ...ValidatorOption) *OrderValidatorService {
	s := &OrderValidatorService{items: items, hours: hours, closures: closures}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate implements OrderValidator. Validation failures are one of the
// validation package error kinds; a failed closure lookup is returned wrapped
// and is never reported as a closed store.
func (s *OrderValidatorService) Validate(ctx context.Context, req OrderRequest) (*ValidatedOrder, error) {
	start := time.Now()
	result, err := s.validate(ctx, req)
	metrics.RecordOrderValidation(time.Since(start), outcomeOf(err))
	return result, err
}

func (s *OrderValidatorService) validate(ctx context.Context, req OrderRequest) (*ValidatedOrder, error) {
	if err := checkContact(req.CustomerName, req.PhoneNumber); err != nil {
		return nil, err
	}

	o, err := s.buildOrder(req.Items)
	if err != nil {
		return nil, err
	}

	pickupAt, err := s.admitPickup(ctx, req.PickupAt)
	if err != nil {
		return nil, err
	}

	due := o.Due(req.CardPayment)
	if !req.ClaimedPrice.Equal(due) {
		return nil, &validation.ReconciliationError{
			Claimed:     req.ClaimedPrice,
			Computed:    due,
			CardPayment: req.CardPayment,
		}
	}

	return &ValidatedOrder{Order: o, PickupAt: pickupAt, Total: due}, nil
}

func checkContact(name, phone string) error {
	if utf8.RuneCountInString(name) > MaxCustomerNameLength {
		return validation.Violation(validation.RuleContactName,
			fmt.Sprintf("customer name must be at most %d characters", MaxCustomerNameLength))
	}
	if !isPhoneNumber(phone) {
		return validation.Violation(validation.RuleContactPhone,
			fmt.Sprintf("phone number must be exactly %d digits", PhoneDigits))
	}
	return nil
}

func isPhoneNumber(phone string) bool {
	if len(phone) != PhoneDigits {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

func (s *OrderValidatorService) buildOrder(items []json.RawMessage) (*order.Order, error) {
	if len(items) == 0 {
		return nil, validation.Structural("items", "at least one item is required")
	}

	o := order.New(s.orderOpts...)
	for i, raw := range items {
		item, err := s.items.ConfigureTagged(raw)
		if err != nil {
			return nil, &validation.ItemError{Index: i, Category: categoryTag(raw), Err: err}
		}
		o.Add(item)
	}
	return o, nil
}

func (s *OrderValidatorService) admitPickup(ctx context.Context, raw string) (time.Time, error) {
	at, err := ParsePickup(raw)
	if err != nil {
		return time.Time{}, err
	}

	local := s.hours.Local(at)
	if !s.hours.Open(local) {
		return time.Time{}, &validation.TemporalError{
			Rule:     validation.RuleOutsideHours,
			Message:  fmt.Sprintf("pickup time %s is outside store hours (%s)", local.Format("15:04:05"), s.hours.Window()),
			PickupAt: local,
		}
	}

	closed, err := s.closures.IsClosedOn(ctx, local)
	if err != nil {
		return time.Time{}, err
	}
	if closed {
		return time.Time{}, &validation.TemporalError{
			Rule:     validation.RuleStoreClosed,
			Message:  fmt.Sprintf("store is closed on %s", local.Format("Monday, January 2, 2006")),
			PickupAt: local,
		}
	}
	return local, nil
}

// categoryTag reads the "type" tag for error reporting; it is empty when absent.
func categoryTag(raw json.RawMessage) string {
	var tagged struct {
		Type string `json:"type"`
	}
	_ = json.Unmarshal(raw, &tagged)
	return tagged.Type
}

var _ OrderValidator = (*OrderValidatorService)(nil)
