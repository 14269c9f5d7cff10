package menu

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

type SideSize string

const (
	SideRegular SideSize = "REGULAR"
	SideLarge   SideSize = "LARGE"
)

var sideSizes = newOptionList(
	option[SideSize]{SideRegular, "Regular"},
	option[SideSize]{SideLarge, "Large"},
)

func (v SideSize) Valid() bool   { return sideSizes.valid(v) }
func (v SideSize) Label() string { return sideSizes.label(v) }

type SideName string

const (
	SideChips             SideName = "CHIPS"
	SideSlaw              SideName = "SLAW"
	SidePotatoSalad       SideName = "POTATO_SALAD"
	SideMacaroniSalad     SideName = "MACARONI_SALAD"
	SideDeviledEgg        SideName = "DEVILED_EGG"
	SideFrenchFries       SideName = "FRENCH_FRIES"
	SideTunaSalad         SideName = "TUNA_SALAD"
	SideChickenSalad      SideName = "CHICKEN_SALAD"
	SideCheeseFries       SideName = "CHEESE_FRIES"
	SideChilliCheeseFries SideName = "CHILLI_CHEESE_FRIES"
)

var sideNames = newOptionList(
	option[SideName]{SideChips, "Chips"},
	option[SideName]{SideSlaw, "Slaw"},
	option[SideName]{SidePotatoSalad, "Potato Salad"},
	option[SideName]{SideMacaroniSalad, "Macaroni Salad"},
	option[SideName]{SideDeviledEgg, "Deviled Egg"},
	option[SideName]{SideFrenchFries, "French Fries"},
	option[SideName]{SideTunaSalad, "Tuna Salad"},
	option[SideName]{SideChickenSalad, "Chicken Salad"},
	option[SideName]{SideCheeseFries, "Cheese Fries"},
	option[SideName]{SideChilliCheeseFries, "Chilli Cheese Fries"},
)

func (v SideName) Valid() bool   { return sideNames.valid(v) }
func (v SideName) Label() string { return sideNames.label(v) }

// Premium reports whether the side is excluded from combos.
func (v SideName) Premium() bool {
	switch v {
	case SideChickenSalad, SideTunaSalad, SideCheeseFries, SideChilliCheeseFries:
		return true
	}
	return false
}

// ChipFlavor is the bag chosen for a chips side.
type ChipFlavor string

var chipFlavors = newOptionList(
	option[ChipFlavor]{"LAYS_PLAIN", "Lays Plain"},
	option[ChipFlavor]{"LAYS_BBQ", "Lays BBQ"},
	option[ChipFlavor]{"JALAPENO_KETTLE_CHIPS", "Jalapeno Kettle Chips"},
	option[ChipFlavor]{"SOUR_CREAM_ONION_KETTLE_CHIPS", "Sour Cream N' Onion Kettle Chips"},
	option[ChipFlavor]{"SALT_VINEGAR_KETTLE_CHIPS", "Salt N' Vinegar Kettle Chips"},
	option[ChipFlavor]{"COOKIES", "Cookies"},
)

func (v ChipFlavor) Valid() bool   { return chipFlavors.valid(v) }
func (v ChipFlavor) Label() string { return chipFlavors.label(v) }

// SideAttrs is the side attribute record.
type SideAttrs struct {
	Quantity            int        `json:"quantity"`
	Name                SideName   `json:"name"`
	Size                SideSize   `json:"size,omitempty"`
	ChipsType           ChipFlavor `json:"chips_type,omitempty"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
}

// Side is a configured side line. Chips carry a flavor and no size; every
// other side carries a size.
type Side struct {
	base
	name      SideName
	size      SideSize
	chipsType ChipFlavor
}

// Side validates attrs and prices the line: chips are flat and sizeless, other
// sides are looked up by (name, size).
func (c *Configurator) Side(attrs SideAttrs) (*Side, error) {
	if err := checkCommon(attrs.Quantity, attrs.SpecialInstructions); err != nil {
		return nil, err
	}
	if err := c.checkSide(attrs.Name, attrs.Size, attrs.ChipsType); err != nil {
		return nil, err
	}
	if attrs.Name == SideChips && attrs.Size != "" {
		return nil, validation.Structural("size", "chips take no size")
	}
	return &Side{
		base: base{
			quantity:     attrs.Quantity,
			instructions: attrs.SpecialInstructions,
			price:        linePrice(c.sideUnit(attrs.Name, attrs.Size), attrs.Quantity),
		},
		name:      attrs.Name,
		size:      normalizeSideSize(attrs.Name, attrs.Size),
		chipsType: attrs.ChipsType,
	}, nil
}

// checkSide applies the structural side rules shared with combos.
func (c *Configurator) checkSide(name SideName, size SideSize, flavor ChipFlavor) error {
	if err := requireOption(sideNames, "name", name); err != nil {
		return err
	}
	if err := optionalOption(sideSizes, "size", size); err != nil {
		return err
	}
	if err := optionalOption(chipFlavors, "chips_type", flavor); err != nil {
		return err
	}
	if name == SideChips {
		if flavor == "" {
			return missing("chips_type")
		}
		return nil
	}
	if flavor != "" {
		return invalidOption("chips_type", string(flavor)+" (only valid for chips)")
	}
	if size == "" {
		return missing("size")
	}
	return nil
}

func (c *Configurator) sideUnit(name SideName, size SideSize) decimal.Decimal {
	if name == SideChips {
		return c.catalog.tables.Chips
	}
	return c.catalog.tables.Side[name].pick(size == SideLarge)
}

// normalizeSideSize drops the size on chips; a bag of chips has one size.
func normalizeSideSize(name SideName, size SideSize) SideSize {
	if name == SideChips {
		return ""
	}
	return size
}

func (s *Side) Category() Category    { return CategorySide }
func (s *Side) Name() SideName        { return s.name }
func (s *Side) Size() SideSize        { return s.size }
func (s *Side) ChipsType() ChipFlavor { return s.chipsType }

func (s *Side) Attributes() map[string]any {
	return s.attributes(sideAttributes(s.name, s.size, s.chipsType))
}

func sideAttributes(name SideName, size SideSize, flavor ChipFlavor) map[string]any {
	attrs := map[string]any{"name": string(name)}
	if size != "" {
		attrs["size"] = string(size)
	}
	if flavor != "" {
		attrs["chips_type"] = string(flavor)
	}
	return attrs
}

func sideTitle(name SideName, size SideSize, flavor ChipFlavor) string {
	if name == SideChips {
		return flavor.Label()
	}
	return size.Label() + " " + name.Label()
}

func (s *Side) String() string {
	var b strings.Builder
	b.WriteString(headline(s.quantity, sideTitle(s.name, s.size, s.chipsType)))
	writeLine(&b, "Special Instructions", s.instructions)
	return b.String()
}
