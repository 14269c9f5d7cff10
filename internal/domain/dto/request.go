// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OrderRequest is the JSON body of the order validation and checkout endpoints.
//
// Each item is an object tagged with its category in "type"; the remaining
// fields are that category's attributes. Contact fields and the item list are
// checked by the order pipeline, contact first, so that their failures carry
// business rule details.
//
// @Description Order to validate or place
// @Example {"customer_name": "Ada", "phone_number": "3125550100", "items": [{"type": "Hotdog", "quantity": 2, "dog_type": "BEEF"}], "price": "6.50", "pickup_at": "2026-10-16T12:00:00-04:00", "payment_method": "cash"}
type OrderRequest struct {
	CustomerName string            `json:"customer_name" example:"Ada"`
	PhoneNumber  string            `json:"phone_number" example:"3125550100"`
	Items        []json.RawMessage `json:"items" swaggertype:"array,object"`
	// Price is the total the client expects to pay, including the card fee for card payments.
	Price         *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"6.50"`
	PickupAt      string           `json:"pickup_at" binding:"required" example:"2026-10-16T12:00:00-04:00"`
	PaymentMethod string           `json:"payment_method" binding:"required,oneof=cash card" example:"cash"`
} // @name OrderRequest

// CardPayment reports whether the card fee applies.
func (r *OrderRequest) CardPayment() bool { return r.PaymentMethod == "card" }

// Validate checks the payment fields. Items are left to the order pipeline.
func (r *OrderRequest) Validate() error {
	if r.Price == nil {
		return &ValidationError{Field: "price", Message: "is required"}
	}
	if r.PaymentMethod != "cash" && r.PaymentMethod != "card" {
		return &ValidationError{Field: "payment_method", Message: "must be cash or card"}
	}
	return nil
}

// ClosureRequest is the JSON body for adding a store closure.
//
// @Description Close the store on a date
// @Example {"date": "12/25/2026", "recurring": false, "reason": "Christmas"}
type ClosureRequest struct {
	// Date is MM/DD/YYYY or YYYY-MM-DD in store time.
	Date string `json:"date" binding:"required" example:"12/25/2026"`
	// Recurring closes the same weekday every week from Date on.
	Recurring bool   `json:"recurring" example:"false"`
	Reason    string `json:"reason,omitempty" binding:"max=200" example:"Christmas"`
} // @name ClosureRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
