// Package order aggregates validated menu items and computes totals.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/stevesplace/order-service/internal/domain/menu"
)

// DefaultFeeRate is the card processing surcharge.
var DefaultFeeRate = decimal.RequireFromString("0.04")

// Option configures an Order.
type Option func(*Order)

// WithFeeRate overrides the card fee rate.
func WithFeeRate(rate decimal.Decimal) Option {
	return func(o *Order) {
		o.feeRate = rate
	}
}

// Order is an append-only sequence of items. It is owned by a single request
// and is not safe for concurrent use.
type Order struct {
	items   []menu.Item
	feeRate decimal.Decimal
}

// New creates an empty order.
func New(opts ...Option) *Order {
	o := &Order{feeRate: DefaultFeeRate}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Add appends item. Duplicates are allowed.
func (o *Order) Add(item menu.Item) {
	o.items = append(o.items, item)
}

// Items returns the items in insertion order. The slice is a copy.
func (o *Order) Items() []menu.Item {
	out := make([]menu.Item, len(o.items))
	copy(out, o.items)
	return out
}

// Len returns the number of items.
func (o *Order) Len() int { return len(o.items) }

// FeeRate returns the card fee rate applied by TotalWithFee.
func (o *Order) FeeRate() decimal.Decimal { return o.feeRate }

// Total is the sum of item prices rounded to cents.
func (o *Order) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.items {
		sum = sum.Add(it.Price())
	}
	return sum.Round(2)
}

// TotalWithFee is Total scaled by one plus the fee rate, rounded to cents.
func (o *Order) TotalWithFee() decimal.Decimal {
	return o.Total().Mul(decimal.NewFromInt(1).Add(o.feeRate)).Round(2)
}

// Due returns the amount to charge for the payment mode.
func (o *Order) Due(cardPayment bool) decimal.Decimal {
	if cardPayment {
		return o.TotalWithFee()
	}
	return o.Total()
}

// Line is the serializable shape of one item: its category tag, price and
// validated attributes.
type Line struct {
	Type       menu.Category  `json:"type" bson:"type"`
	Price      string         `json:"price" bson:"price"`
	Attributes map[string]any `json:"attributes" bson:"attributes"`
	Summary    string         `json:"summary" bson:"summary"`
}

// Lines serializes the items for persistence or display.
func (o *Order) Lines() []Line {
	out := make([]Line, 0, len(o.items))
	for _, it := range o.items {
		out = append(out, Line{
			Type:       it.Category(),
			Price:      it.Price().StringFixed(2),
			Attributes: it.Attributes(),
			Summary:    it.String(),
		})
	}
	return out
}

// HasPreparedItems reports whether any item is made to order on the grill,
// which lengthens the kitchen estimate.
func (o *Order) HasPreparedItems() bool {
	for _, it := range o.items {
		switch it.Category() {
		case menu.CategorySandwich, menu.CategoryEggSandwich:
			return true
		}
	}
	return false
}
