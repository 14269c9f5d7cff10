// Package menu holds the store's option sets, price tables and the item
// configurators that turn a category's attributes into a priced item.
package menu

// Category is one of the seven menu item kinds. The string value is the
// wire tag used in order payloads.
type Category string

const (
	CategoryHotdog      Category = "Hotdog"
	CategorySandwich    Category = "Sandwich"
	CategoryEggSandwich Category = "EggSandwich"
	CategorySalad       Category = "Salad"
	CategorySide        Category = "Side"
	CategoryDrink       Category = "Drink"
	CategoryCombo       Category = "Combo"
)

var categories = newOptionList(
	option[Category]{CategoryHotdog, "Hotdog"},
	option[Category]{CategorySandwich, "Sandwich"},
	option[Category]{CategoryEggSandwich, "Egg Sandwich"},
	option[Category]{CategorySalad, "Salad"},
	option[Category]{CategorySide, "Side"},
	option[Category]{CategoryDrink, "Drink"},
	option[Category]{CategoryCombo, "Combo"},
)

// Categories returns every category in menu order.
func Categories() []Category { return categories.values() }

// Valid reports whether c is a known category.
func (c Category) Valid() bool { return categories.valid(c) }

// Label returns the display name.
func (c Category) Label() string { return categories.label(c) }

// ParseCategory returns the category for tag or a StructuralError.
func ParseCategory(tag string) (Category, error) {
	c := Category(tag)
	if !c.Valid() {
		return "", invalidOption("type", tag)
	}
	return c, nil
}
