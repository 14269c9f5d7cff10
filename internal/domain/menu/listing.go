package menu

import (
	"github.com/shopspring/decimal"
)

// ListedOption is one selectable value with its display label and, when the
// value carries a price, the price formatted to cents.
type ListedOption struct {
	Value  string            `json:"value"`
	Label  string            `json:"label"`
	Price  string            `json:"price,omitempty"`
	Prices map[string]string `json:"prices,omitempty"`
}

// Slot is one configurable attribute of a category.
type Slot struct {
	Field    string         `json:"field"`
	Required bool           `json:"required"`
	Multiple bool           `json:"multiple"`
	Options  []ListedOption `json:"options"`
}

// Listing is the read-only menu projection of one category.
type Listing struct {
	Category Category          `json:"category"`
	Label    string            `json:"label"`
	Slots    []Slot            `json:"slots"`
	Pricing  map[string]string `json:"pricing,omitempty"`
}

func money(v decimal.Decimal) string { return v.StringFixed(2) }

func sizedPrices(p SizedPrice) map[string]string {
	return map[string]string{
		"REGULAR": money(p.Regular),
		"LARGE":   money(p.Large),
	}
}

func listed[T ~string](list optionList[T], price func(T) (string, map[string]string)) []ListedOption {
	out := make([]ListedOption, 0, len(list.defs))
	for _, o := range list.defs {
		lo := ListedOption{Value: string(o.value), Label: o.label}
		if price != nil {
			lo.Price, lo.Prices = price(o.value)
		}
		out = append(out, lo)
	}
	return out
}

func flatPrice[T comparable](prices map[T]decimal.Decimal) func(T) (string, map[string]string) {
	return func(v T) (string, map[string]string) { return money(prices[v]), nil }
}

func sizedPrice[T comparable](prices map[T]SizedPrice) func(T) (string, map[string]string) {
	return func(v T) (string, map[string]string) { return "", sizedPrices(prices[v]) }
}

// Listing projects the option sets and prices of category.
func (c *Catalog) Listing(category Category) (Listing, error) {
	t := c.tables
	l := Listing{Category: category, Label: category.Label()}

	switch category {
	case CategoryHotdog:
		l.Slots = []Slot{
			{Field: "dog_type", Required: true, Options: listed(hotdogMeats, flatPrice(t.Hotdog))},
			{Field: "toppings", Multiple: true, Options: listed[HotdogTopping](hotdogToppings, nil)},
		}
	case CategorySandwich:
		l.Slots = []Slot{
			{Field: "size", Required: true, Options: listed[SandwichSize](sandwichSizes, nil)},
			{Field: "bread", Required: true, Options: listed[SandwichBread](sandwichBreads, nil)},
			{Field: "meat", Required: true, Options: listed(sandwichMeats, sizedPrice(t.Sandwich))},
			{Field: "cheese", Options: listed[SandwichCheese](sandwichCheeses, nil)},
			{Field: "toppings", Multiple: true, Options: listed[SandwichTopping](sandwichToppings, nil)},
			{Field: "add_ons", Multiple: true, Options: listed(sandwichAddOns, sizedPrice(t.SandwichAddOns))},
		}
	case CategoryEggSandwich:
		l.Slots = []Slot{
			{Field: "bread", Required: true, Options: listed[EggSandwichBread](eggSandwichBreads, nil)},
			{Field: "egg", Required: true, Options: listed[Egg](eggs, nil)},
			{Field: "meat", Options: listed[EggSandwichMeat](eggSandwichMeats, nil)},
			{Field: "cheese", Options: listed[EggSandwichCheese](eggSandwichCheeses, nil)},
			{Field: "toppings", Multiple: true, Options: listed[EggSandwichTopping](eggSandwichToppings, nil)},
			{Field: "add_ons", Multiple: true, Options: listed(eggSandwichAddOns, flatPrice(t.EggSandwich.AddOns))},
		}
		l.Pricing = map[string]string{
			"base":               money(t.EggSandwich.Base),
			"with_meat":          money(t.EggSandwich.WithMeat),
			"croissant_upcharge": money(t.EggSandwich.Croissant),
		}
	case CategorySalad:
		l.Slots = []Slot{
			{Field: "choice", Required: true, Options: listed(saladChoices, flatPrice(t.Salad))},
			{Field: "toppings", Required: true, Multiple: true, Options: listed[SaladTopping](saladToppings, nil)},
			{Field: "dressing", Options: listed[SaladDressing](saladDressings, nil)},
			{Field: "add_ons", Multiple: true, Options: listed(saladAddOns, flatPrice(t.SaladAddOns))},
		}
	case CategorySide:
		l.Slots = []Slot{
			{Field: "name", Required: true, Options: listed(sideNames, func(n SideName) (string, map[string]string) {
				if n == SideChips {
					return money(t.Chips), nil
				}
				return "", sizedPrices(t.Side[n])
			})},
			{Field: "size", Options: listed[SideSize](sideSizes, nil)},
			{Field: "chips_type", Options: listed[ChipFlavor](chipFlavors, nil)},
		}
	case CategoryDrink:
		l.Slots = []Slot{
			{Field: "size", Required: true, Options: listed(drinkSizes, flatPrice(t.Drink))},
			{Field: "name", Required: true, Options: append(
				listed[DrinkName](fountainDrinks, nil),
				listed[DrinkName](bottleDrinks, nil)...,
			)},
		}
	case CategoryCombo:
		combo := make([]ListedOption, 0, len(sideNames.defs))
		for _, o := range sideNames.defs {
			if !o.value.Premium() {
				combo = append(combo, ListedOption{Value: string(o.value), Label: o.label})
			}
		}
		l.Slots = []Slot{
			{Field: "side.name", Required: true, Options: combo},
			{Field: "side.chips_type", Options: listed[ChipFlavor](chipFlavors, nil)},
			{Field: "drink.size", Required: true, Options: listed[DrinkSize](drinkSizes, nil)},
			{Field: "drink.name", Required: true, Options: append(
				listed[DrinkName](fountainDrinks, nil),
				listed[DrinkName](bottleDrinks, nil)...,
			)},
		}
		l.Pricing = map[string]string{
			"base":          money(t.Combo.Base),
			"drink_upgrade": money(t.Combo.DrinkUpgrade),
		}
	default:
		return Listing{}, invalidOption("category", string(category))
	}
	return l, nil
}

// Menu projects every category in menu order.
func (c *Catalog) Menu() []Listing {
	out := make([]Listing, 0, len(categories.defs))
	for _, cat := range Categories() {
		l, _ := c.Listing(cat)
		out = append(out, l)
	}
	return out
}
