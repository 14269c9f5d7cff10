package menu

import (
	"strings"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

type DrinkSize string

const (
	DrinkRegular DrinkSize = "REGULAR"
	DrinkLarge   DrinkSize = "LARGE"
	DrinkBottle  DrinkSize = "BOTTLE"
)

var drinkSizes = newOptionList(
	option[DrinkSize]{DrinkRegular, "Regular"},
	option[DrinkSize]{DrinkLarge, "Large"},
	option[DrinkSize]{DrinkBottle, "Bottle"},
)

func (v DrinkSize) Valid() bool   { return drinkSizes.valid(v) }
func (v DrinkSize) Label() string { return drinkSizes.label(v) }

// Upgraded reports whether the size carries the combo drink upcharge.
func (v DrinkSize) Upgraded() bool { return v == DrinkLarge || v == DrinkBottle }

// DrinkName covers fountain and bottled drinks. Fountain drinks come in
// regular or large cups; bottled drinks only in a bottle.
type DrinkName string

const (
	DrinkCoke        DrinkName = "COKE"
	DrinkSweetTea    DrinkName = "SWEET_TEA"
	DrinkBottledSoda DrinkName = "BOTTLED_SODA"
)

var fountainDrinks = newOptionList(
	option[DrinkName]{DrinkCoke, "Coke"},
	option[DrinkName]{"DIET_COKE", "Diet Coke"},
	option[DrinkName]{"MOUNTAIN_DEW_YELLOW", "Mountain Dew Yellow"},
	option[DrinkName]{"HI_C", "Hi-C"},
	option[DrinkName]{"ROOT_BEER", "Root Beer"},
	option[DrinkName]{"DR_PEPPER", "Dr Pepper"},
	option[DrinkName]{DrinkSweetTea, "Homemade Sweet Tea"},
	option[DrinkName]{"UNSWEET_TEA", "Homemade Unsweet Tea"},
	option[DrinkName]{"LEMONADE", "Homemade Lemonade"},
)

var bottleDrinks = newOptionList(
	option[DrinkName]{DrinkBottledSoda, "Bottled Soda"},
)

// Valid reports whether v is a fountain or bottled drink.
func (v DrinkName) Valid() bool { return fountainDrinks.valid(v) || bottleDrinks.valid(v) }

// Bottled reports whether v is sold by the bottle.
func (v DrinkName) Bottled() bool { return bottleDrinks.valid(v) }

func (v DrinkName) Label() string {
	if v.Bottled() {
		return bottleDrinks.label(v)
	}
	return fountainDrinks.label(v)
}

// DrinkAttrs is the drink attribute record.
type DrinkAttrs struct {
	Quantity            int       `json:"quantity"`
	Size                DrinkSize `json:"size"`
	Name                DrinkName `json:"name"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
}

// Drink is a configured drink line.
type Drink struct {
	base
	size DrinkSize
	name DrinkName
}

// Drink validates attrs and prices the line by size.
func (c *Configurator) Drink(attrs DrinkAttrs) (*Drink, error) {
	if err := checkCommon(attrs.Quantity, attrs.SpecialInstructions); err != nil {
		return nil, err
	}
	if err := checkDrink(attrs.Name, attrs.Size); err != nil {
		return nil, err
	}
	return &Drink{
		base: base{
			quantity:     attrs.Quantity,
			instructions: attrs.SpecialInstructions,
			price:        linePrice(c.catalog.tables.Drink[attrs.Size], attrs.Quantity),
		},
		size: attrs.Size,
		name: attrs.Name,
	}, nil
}

func checkDrink(name DrinkName, size DrinkSize) error {
	if err := requireOption(drinkSizes, "size", size); err != nil {
		return err
	}
	if name == "" {
		return missing("name")
	}
	if !name.Valid() {
		return invalidOption("name", string(name))
	}
	if size == DrinkBottle && !name.Bottled() {
		return validation.Violation(validation.RuleDrinkContainer, "bottle size requires a bottled drink")
	}
	if size != DrinkBottle && name.Bottled() {
		return validation.Violation(validation.RuleDrinkContainer, "regular and large sizes require a fountain drink")
	}
	return nil
}

func (d *Drink) Category() Category { return CategoryDrink }
func (d *Drink) Size() DrinkSize    { return d.size }
func (d *Drink) Name() DrinkName    { return d.name }

func (d *Drink) Attributes() map[string]any {
	return d.attributes(map[string]any{
		"size": string(d.size),
		"name": string(d.name),
	})
}

func (d *Drink) String() string {
	var b strings.Builder
	b.WriteString(headline(d.quantity, d.size.Label()+" "+d.name.Label()))
	writeLine(&b, "Special Instructions", d.instructions)
	return b.String()
}
