package dto

import (
	"net/http"
	"time"

	"github.com/stevesplace/order-service/internal/domain/model"
	"github.com/stevesplace/order-service/internal/domain/order"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency such as the database is down.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeRuleViolation indicates an order that breaks a menu or contact rule.
	ErrCodeRuleViolation = "rule_violation"
	// ErrCodePickupUnavailable indicates a pickup time the store cannot honour.
	ErrCodePickupUnavailable = "pickup_unavailable"
	// ErrCodePriceMismatch indicates a claimed price that differs from the computed total.
	ErrCodePriceMismatch = "price_mismatch"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-10-16T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"rule_violation"`
	Message string `json:"message,omitempty" example:"bacon is not allowed on a garden salad"`
	// Details locates a validation failure: kind, rule, field and item index.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-10-16T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches details, skipping empty values.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	for k, v := range details {
		if v == "" {
			continue
		}
		if e.Details == nil {
			e.Details = make(map[string]string, len(details))
		}
		e.Details[k] = v
	}
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// ItemPriceResponse is a single configured item.
type ItemPriceResponse = order.Line

// OrderQuoteResponse is a validated order that has not been placed.
// @Description Validated order with its totals
type OrderQuoteResponse struct {
	Items []order.Line `json:"items"`
	// Subtotal is the sum of item prices.
	Subtotal string `json:"subtotal" example:"22.00"`
	// Total is the amount due for the payment method.
	Total         string    `json:"total" example:"22.88"`
	PaymentMethod string    `json:"payment_method" example:"card"`
	PickupAt      time.Time `json:"pickup_at" example:"2026-10-16T12:00:00-04:00"`
} // @name OrderQuoteResponse

// OrderPlacedResponse confirms a placed order.
// @Description Placed order confirmation
type OrderPlacedResponse struct {
	Reference     string    `json:"reference" example:"9b2f4c7e-1a8b-4d0e-9f3a-2c6d5e4b3a21"`
	Total         string    `json:"total" example:"6.50"`
	PaymentStatus string    `json:"payment_status" example:"pending"`
	PickupAt      time.Time `json:"pickup_at" example:"2026-10-16T12:00:00-04:00"`
	Estimate      string    `json:"estimate" example:"~3-7 mins"`
	Message       string    `json:"message"`
} // @name OrderPlacedResponse

// OrderResponse is a stored order as shown to staff.
// @Description Stored order
type OrderResponse struct {
	Reference     string       `json:"reference"`
	CustomerName  string       `json:"customer_name"`
	PhoneNumber   string       `json:"phone_number"`
	Items         []order.Line `json:"items"`
	Subtotal      string       `json:"subtotal" example:"22.00"`
	Total         string       `json:"total" example:"22.88"`
	PaymentMethod string       `json:"payment_method" example:"card"`
	PaymentStatus string       `json:"payment_status" example:"pending"`
	PickupAt      time.Time    `json:"pickup_at"`
	CreatedAt     time.Time    `json:"created_at"`
} // @name OrderResponse

// NewOrderResponse formats a stored order with cent-precision amounts.
func NewOrderResponse(r model.OrderRecord) OrderResponse {
	return OrderResponse{
		Reference:     r.Reference,
		CustomerName:  r.CustomerName,
		PhoneNumber:   r.PhoneNumber,
		Items:         r.Items,
		Subtotal:      r.Subtotal.StringFixed(2),
		Total:         r.Total.StringFixed(2),
		PaymentMethod: string(r.PaymentMethod),
		PaymentStatus: string(r.PaymentStatus),
		PickupAt:      r.PickupAt,
		CreatedAt:     r.CreatedAt,
	}
}

// OrderListResponse lists stored orders.
type OrderListResponse struct {
	Date   string          `json:"date" example:"2026-10-16"`
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
} // @name OrderListResponse

// ClosureResponse is one store closure.
// @Description Store closure
type ClosureResponse struct {
	Date      string `json:"date" example:"2026-12-25"`
	Weekday   string `json:"weekday" example:"Friday"`
	Recurring bool   `json:"recurring"`
	Reason    string `json:"reason,omitempty" example:"Christmas"`
} // @name ClosureResponse

// NewClosureResponse formats a closure.
func NewClosureResponse(c model.ClosedDate) ClosureResponse {
	return ClosureResponse{
		Date:      c.Date,
		Weekday:   c.Weekday.String(),
		Recurring: c.Recurring,
		Reason:    c.Reason,
	}
}

// StoreClosuresResponse lists upcoming closures and the standing closed weekday.
type StoreClosuresResponse struct {
	ClosedWeekday string            `json:"closed_weekday" example:"Sunday"`
	Closures      []ClosureResponse `json:"closures"`
} // @name StoreClosuresResponse
