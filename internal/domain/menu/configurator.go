package menu

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

// MaxInstructionsLength bounds the free-text special instructions, in characters.
const MaxInstructionsLength = 200

// Item is a validated, priced menu item. Implementations are immutable:
// fields are unexported and the price is fixed at construction.
type Item interface {
	Category() Category
	Quantity() int
	SpecialInstructions() string
	// Price is the line price: unit price times quantity, rounded to cents.
	Price() decimal.Decimal
	// Attributes returns the validated selections keyed by wire field name.
	Attributes() map[string]any
	// String renders the item the way it is shown to the kitchen.
	String() string
}

// Configurator builds items against one catalog. It holds no mutable state
// and is safe for concurrent use.
type Configurator struct {
	catalog *Catalog
}

// NewConfigurator returns a configurator pricing items from catalog.
func NewConfigurator(catalog *Catalog) *Configurator {
	return &Configurator{catalog: catalog}
}

// Catalog returns the catalog used for pricing.
func (c *Configurator) Catalog() *Catalog { return c.catalog }

// base carries the fields every item shares.
type base struct {
	quantity     int
	instructions string
	price        decimal.Decimal
}

func (b base) Quantity() int { return b.quantity }

func (b base) SpecialInstructions() string { return b.instructions }

func (b base) Price() decimal.Decimal { return b.price }

func (b base) attributes(extra map[string]any) map[string]any {
	extra["quantity"] = b.quantity
	if b.instructions != "" {
		extra["special_instructions"] = b.instructions
	}
	return extra
}

// checkCommon validates quantity and instructions.
func checkCommon(quantity int, instructions string) error {
	if quantity < 1 {
		return validation.Structural("quantity", "must be at least 1")
	}
	if utf8.RuneCountInString(instructions) > MaxInstructionsLength {
		return validation.Structuralf("special_instructions", "must be at most %d characters", MaxInstructionsLength)
	}
	return nil
}

// linePrice multiplies the unit price by quantity and rounds once.
func linePrice(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

func invalidOption(field, value string) error {
	return validation.Structuralf(field, "%q is not a valid option", value)
}

func missing(field string) error {
	return validation.Structural(field, "is required")
}

// requireOption checks a mandatory single-valued selection.
func requireOption[T ~string](list optionList[T], field string, v T) error {
	if v == "" {
		return missing(field)
	}
	if !list.valid(v) {
		return invalidOption(field, string(v))
	}
	return nil
}

// optionalOption checks a single-valued selection that may be absent.
func optionalOption[T ~string](list optionList[T], field string, v T) error {
	if v == "" || list.valid(v) {
		return nil
	}
	return invalidOption(field, string(v))
}

func labelsOf[T ~string](list optionList[T], set OptionSet[T]) []string {
	out := make([]string, 0, set.Len())
	for _, v := range set.items {
		out = append(out, list.label(v))
	}
	return out
}

func headline(quantity int, what string) string {
	return fmt.Sprintf("%d X %s\n", quantity, what)
}

func writeLine(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", name, value)
}

func writeList(b *strings.Builder, name string, values []string) {
	if len(values) == 0 {
		return
	}
	writeLine(b, name, strings.Join(values, ", "))
}

func writeFlag(b *strings.Builder, name string, on bool) {
	if on {
		writeLine(b, name, "Yes")
	}
}
