package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stevesplace/order-service/internal/domain/menu"
	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/domain/order"
	"github.com/stevesplace/order-service/internal/domain/validation"
	"github.com/stevesplace/order-service/internal/metrics"
	"github.com/stevesplace/order-service/internal/repository"
)

// ErrOrderNotFound is returned when no order has the requested reference.
var ErrOrderNotFound = errors.New("order not found")

const (
	preparedEstimate = "~7-10 mins"
	quickEstimate    = "~3-7 mins"

	// PlacedMessage is shown to the customer after checkout.
	PlacedMessage = "Order placed! Estimated time: Sandwich/EggSandwich: ~7-10 mins, " +
		"Other items: ~3-7 mins (depends on kitchen workload)"
)

// CheckoutRequest is an order to validate and place.
type CheckoutRequest struct {
	OrderRequest
	PaymentMethod model.PaymentMethod
}

// PlacedOrder is the result of a successful checkout.
type PlacedOrder struct {
	Record   *model.OrderRecord
	Estimate string
	Message  string
}

// CheckoutService places orders and lists them for staff.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, req CheckoutRequest) (*PlacedOrder, error)
	FindOrder(ctx context.Context, reference string) (*model.OrderRecord, error)
	OrdersToday(ctx context.Context) ([]model.OrderRecord, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	validator OrderValidator
	orders    repository.OrdersRepositoryInterface
	loc       *time.Location
	now       func() time.Time
}

// NewCheckoutService creates a checkout service. Orders are validated even
// without a repository, but they cannot be placed.
func NewCheckoutService(validator OrderValidator, orders repository.OrdersRepositoryInterface, loc *time.Location) *CheckoutServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &CheckoutServiceImpl{
		validator: validator,
		orders:    orders,
		loc:       loc,
		now:       time.Now,
	}
}

// PlaceOrder runs the validation pipeline and stores the order with a
// pending payment.
func (s *CheckoutServiceImpl) PlaceOrder(ctx context.Context, req CheckoutRequest) (*PlacedOrder, error) {
	if !req.PaymentMethod.Valid() {
		return nil, validation.Structuralf("payment_method", "%q is not cash or card", string(req.PaymentMethod))
	}
	if s.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}

	req.CardPayment = req.PaymentMethod.Card()
	validated, err := s.validator.Validate(ctx, req.OrderRequest)
	if err != nil {
		return nil, err
	}

	record := &model.OrderRecord{
		Reference:     uuid.NewString(),
		CustomerName:  req.CustomerName,
		PhoneNumber:   req.PhoneNumber,
		Items:         validated.Order.Lines(),
		Subtotal:      validated.Order.Total(),
		Total:         validated.Total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: model.PaymentPending,
		PickupAt:      validated.PickupAt,
		CreatedAt:     s.now().UTC(),
	}

	doc, err := orderToDocument(record)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}
	record.ID = doc.ID.Hex()

	metrics.RecordOrderPlaced(string(record.PaymentMethod), record.Total)
	log.Info().
		Str("reference", record.Reference).
		Str("payment_method", string(record.PaymentMethod)).
		Str("total", record.Total.StringFixed(2)).
		Int("items", len(record.Items)).
		Time("pickup_at", record.PickupAt).
		Msg("Order placed")

	estimate := quickEstimate
	if validated.Order.HasPreparedItems() {
		estimate = preparedEstimate
	}
	return &PlacedOrder{Record: record, Estimate: estimate, Message: PlacedMessage}, nil
}

// FindOrder returns the order with reference or ErrOrderNotFound.
func (s *CheckoutServiceImpl) FindOrder(ctx context.Context, reference string) (*model.OrderRecord, error) {
	if s.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	doc, err := s.orders.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	if doc == nil {
		return nil, ErrOrderNotFound
	}
	record := orderFromDocument(*doc)
	return &record, nil
}

// OrdersToday lists orders created since local midnight, oldest first.
func (s *CheckoutServiceImpl) OrdersToday(ctx context.Context) ([]model.OrderRecord, error) {
	if s.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}

	start, end := s.Today()
	docs, err := s.orders.ListCreatedBetween(ctx, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list today's orders: %w", err)
	}
	out := make([]model.OrderRecord, len(docs))
	for i, doc := range docs {
		out[i] = orderFromDocument(doc)
	}
	return out, nil
}

// Today returns the bounds of the current store day.
func (s *CheckoutServiceImpl) Today() (start, end time.Time) {
	y, m, d := s.now().In(s.loc).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

func orderToDocument(r *model.OrderRecord) (*repository.OrderDocument, error) {
	subtotal, err := toDecimal128(r.Subtotal)
	if err != nil {
		return nil, err
	}
	total, err := toDecimal128(r.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]repository.OrderLineDocument, len(r.Items))
	for i, l := range r.Items {
		lines[i] = repository.OrderLineDocument{
			Type:       string(l.Type),
			Price:      l.Price,
			Attributes: l.Attributes,
			Summary:    l.Summary,
		}
	}

	return &repository.OrderDocument{
		Reference:     r.Reference,
		CustomerName:  r.CustomerName,
		PhoneNumber:   r.PhoneNumber,
		Items:         lines,
		Subtotal:      subtotal,
		Total:         total,
		PaymentMethod: string(r.PaymentMethod),
		PaymentStatus: string(r.PaymentStatus),
		PickupAt:      r.PickupAt,
		CreatedAt:     r.CreatedAt,
	}, nil
}

func orderFromDocument(doc repository.OrderDocument) model.OrderRecord {
	lines := make([]order.Line, len(doc.Items))
	for i, l := range doc.Items {
		lines[i] = order.Line{
			Type:       menu.Category(l.Type),
			Price:      l.Price,
			Attributes: l.Attributes,
			Summary:    l.Summary,
		}
	}

	return model.OrderRecord{
		ID:            doc.ID.Hex(),
		Reference:     doc.Reference,
		CustomerName:  doc.CustomerName,
		PhoneNumber:   doc.PhoneNumber,
		Items:         lines,
		Subtotal:      fromDecimal128(doc.Subtotal),
		Total:         fromDecimal128(doc.Total),
		PaymentMethod: model.PaymentMethod(doc.PaymentMethod),
		PaymentStatus: model.PaymentStatus(doc.PaymentStatus),
		PickupAt:      doc.PickupAt,
		CreatedAt:     doc.CreatedAt,
	}
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.StringFixed(2))
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("amount %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

var _ CheckoutService = (*CheckoutServiceImpl)(nil)
