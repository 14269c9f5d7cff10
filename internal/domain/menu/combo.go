package menu

import (
	"strings"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

// ComboSideAttrs is the side slot of a combo. It has no quantity or
// instructions: both live on the combo.
type ComboSideAttrs struct {
	Name      SideName   `json:"name"`
	Size      SideSize   `json:"size,omitempty"`
	ChipsType ChipFlavor `json:"chips_type,omitempty"`
}

// ComboDrinkAttrs is the drink slot of a combo.
type ComboDrinkAttrs struct {
	Name DrinkName `json:"name"`
	Size DrinkSize `json:"size"`
}

// ComboAttrs is the combo attribute record.
type ComboAttrs struct {
	Quantity            int             `json:"quantity"`
	Side                ComboSideAttrs  `json:"side"`
	Drink               ComboDrinkAttrs `json:"drink"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// ComboSide is the validated side inside a combo.
type ComboSide struct {
	Name      SideName
	Size      SideSize
	ChipsType ChipFlavor
}

// ComboDrink is the validated drink inside a combo.
type ComboDrink struct {
	Name DrinkName
	Size DrinkSize
}

// Combo is a side plus drink sold at the combo price.
type Combo struct {
	base
	side  ComboSide
	drink ComboDrink
}

// Combo validates attrs and prices the line from the combo base plus the
// drink upgrade when the drink is large or bottled.
func (c *Configurator) Combo(attrs ComboAttrs) (*Combo, error) {
	if err := checkCommon(attrs.Quantity, attrs.SpecialInstructions); err != nil {
		return nil, err
	}
	side, drink := attrs.Side, attrs.Drink
	if err := c.checkSide(side.Name, side.Size, side.ChipsType); err != nil {
		return nil, prefixField("side", err)
	}
	if err := checkDrink(drink.Name, drink.Size); err != nil {
		return nil, prefixField("drink", err)
	}

	if side.Size != "" && side.Size != SideRegular {
		return nil, validation.Violation(validation.RuleComboSideSize, "combo includes only regular size sides")
	}
	if side.Name.Premium() {
		return nil, validation.Violation(validation.RuleComboPremiumSide,
			"combo does not include chicken salad, tuna salad, cheese fries, or chilli cheese fries")
	}

	prices := c.catalog.tables.Combo
	unit := prices.Base
	if drink.Size.Upgraded() {
		unit = unit.Add(prices.DrinkUpgrade)
	}

	return &Combo{
		base: base{
			quantity:     attrs.Quantity,
			instructions: attrs.SpecialInstructions,
			price:        linePrice(unit, attrs.Quantity),
		},
		side: ComboSide{
			Name:      side.Name,
			Size:      normalizeSideSize(side.Name, side.Size),
			ChipsType: side.ChipsType,
		},
		drink: ComboDrink{Name: drink.Name, Size: drink.Size},
	}, nil
}

// prefixField qualifies a structural error's field with the combo slot.
func prefixField(slot string, err error) error {
	if se, ok := err.(*validation.StructuralError); ok {
		return &validation.StructuralError{Field: slot + "." + se.Field, Reason: se.Reason}
	}
	return err
}

func (c *Combo) Category() Category { return CategoryCombo }
func (c *Combo) Side() ComboSide    { return c.side }
func (c *Combo) Drink() ComboDrink  { return c.drink }

func (c *Combo) Attributes() map[string]any {
	return c.attributes(map[string]any{
		"side": sideAttributes(c.side.Name, c.side.Size, c.side.ChipsType),
		"drink": map[string]any{
			"name": string(c.drink.Name),
			"size": string(c.drink.Size),
		},
	})
}

func (c *Combo) String() string {
	var b strings.Builder
	b.WriteString(headline(c.quantity, "Combo"))
	writeLine(&b, "Side", sideTitle(c.side.Name, c.side.Size, c.side.ChipsType))
	writeLine(&b, "Drink", c.drink.Size.Label()+" "+c.drink.Name.Label())
	writeLine(&b, "Special Instructions", c.instructions)
	return b.String()
}
