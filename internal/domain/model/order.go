package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stevesplace/order-service/internal/domain/order"
)

// PaymentMethod is how the customer settles the order at pickup.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// Card reports whether the card surcharge applies.
func (m PaymentMethod) Card() bool { return m == PaymentCard }

// PaymentStatus tracks settlement of a placed order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

// OrderRecord is a validated order as it is stored and shown to staff. Total
// is the amount charged, including the card fee when it applies.
type OrderRecord struct {
	ID            string          `json:"id,omitempty"`
	Reference     string          `json:"reference"`
	CustomerName  string          `json:"customer_name"`
	PhoneNumber   string          `json:"phone_number"`
	Items         []order.Line    `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PickupAt      time.Time       `json:"pickup_at"`
	CreatedAt     time.Time       `json:"created_at"`
}
