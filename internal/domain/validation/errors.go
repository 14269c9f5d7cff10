// Package validation defines the typed failures produced while configuring
// menu items and validating orders.
//
// Every failure is one of four kinds. Callers match them with errors.As or
// classify any wrapped error with KindOf.
package validation

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a validation failure.
type Kind string

const (
	// KindNone is returned by KindOf for errors that are not validation failures.
	KindNone Kind = ""
	// KindStructural covers bad option values, missing fields, bad quantity and oversized text.
	KindStructural Kind = "structural"
	// KindDomain covers violated business rules.
	KindDomain Kind = "domain"
	// KindTemporal covers pickup times outside store hours or on closed dates.
	KindTemporal Kind = "temporal"
	// KindReconciliation covers a claimed price that differs from the computed total.
	KindReconciliation Kind = "reconciliation"
)

// Rule names a business rule. Rules are stable identifiers suitable for
// API error details and metrics labels.
type Rule string

const (
	RuleContactName         Rule = "contact.name_length"
	RuleContactPhone        Rule = "contact.phone_digits"
	RuleComboSideSize       Rule = "combo.side_regular_only"
	RuleComboPremiumSide    Rule = "combo.premium_side"
	RuleEggOrMeat           Rule = "egg_sandwich.egg_or_meat"
	RuleEggAddOnNeedsEgg    Rule = "egg_sandwich.extra_egg_needs_egg"
	RuleEggAddOnNeedsCheese Rule = "egg_sandwich.extra_cheese_needs_cheese"
	RuleEggAddOnNeedsMeat   Rule = "egg_sandwich.extra_meat_needs_meat"
	RuleGardenBacon         Rule = "salad.garden_no_bacon"
	RuleGardenMeat          Rule = "salad.garden_no_meat"
	RuleSaladDressing       Rule = "salad.dressing_addon_needs_dressing"
	RuleSaladEggs           Rule = "salad.eggs_addon_needs_eggs"
	RuleSaladCheese         Rule = "salad.cheese_addon_needs_cheese"
	RuleSandwichCheese      Rule = "sandwich.cheese_addon_needs_cheese"
	RuleDrinkContainer      Rule = "drink.size_matches_drink"

	RuleBadPickupTime Rule = "pickup.invalid_timestamp"
	RuleOutsideHours  Rule = "pickup.outside_store_hours"
	RuleStoreClosed   Rule = "pickup.store_closed"
)

// StructuralError reports a value that is not a member of its option set, a
// missing or mistyped field, a quantity below one or text above its bound.
type StructuralError struct {
	Field  string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Kind implements Failure.
func (e *StructuralError) Kind() Kind { return KindStructural }

// DomainError reports a violated business rule.
type DomainError struct {
	Rule    Rule
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Kind implements Failure.
func (e *DomainError) Kind() Kind { return KindDomain }

// TemporalError reports a pickup time the store cannot honour.
type TemporalError struct {
	Rule     Rule
	Message  string
	PickupAt time.Time
}

func (e *TemporalError) Error() string { return e.Message }

// Kind implements Failure.
func (e *TemporalError) Kind() Kind { return KindTemporal }

// ReconciliationError reports a claimed price that does not equal the
// computed order total.
type ReconciliationError struct {
	Claimed     decimal.Decimal
	Computed    decimal.Decimal
	CardPayment bool
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("order price does not match: claimed %s, computed %s",
		e.Claimed.StringFixed(2), e.Computed.StringFixed(2))
}

// Kind implements Failure.
func (e *ReconciliationError) Kind() Kind { return KindReconciliation }

// Failure is implemented by all four validation error types.
type Failure interface {
	error
	Kind() Kind
}

// Structural builds a StructuralError.
func Structural(field, reason string) error {
	return &StructuralError{Field: field, Reason: reason}
}

// Structuralf builds a StructuralError with a formatted reason.
func Structuralf(field, format string, args ...any) error {
	return &StructuralError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Violation builds a DomainError for rule.
func Violation(rule Rule, message string) error {
	return &DomainError{Rule: rule, Message: message}
}

// KindOf returns the kind of the first validation failure in err's chain,
// or KindNone.
func KindOf(err error) Kind {
	var f Failure
	if errors.As(err, &f) {
		return f.Kind()
	}
	return KindNone
}

// IsFailure reports whether err wraps one of the validation failure types.
func IsFailure(err error) bool {
	return KindOf(err) != KindNone
}
