package menu

import (
	"strings"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

type Egg string

const (
	EggFried     Egg = "FRIED"
	EggScrambled Egg = "SCRAMBLED"
	EggNone      Egg = "NO_EGG"
)

var eggs = newOptionList(
	option[Egg]{EggFried, "Fried Egg"},
	option[Egg]{EggScrambled, "Scrambled Egg"},
	option[Egg]{EggNone, "No Egg"},
)

func (v Egg) Valid() bool   { return eggs.valid(v) }
func (v Egg) Label() string { return eggs.label(v) }

type EggSandwichBread string

const (
	EggBreadWhite      EggSandwichBread = "WHITE"
	EggBreadWheat      EggSandwichBread = "WHEAT"
	EggBreadRye        EggSandwichBread = "RYE"
	EggBreadKaiserRoll EggSandwichBread = "KAISER_ROLL"
	EggBreadCroissant  EggSandwichBread = "CROISSANT"
)

var eggSandwichBreads = newOptionList(
	option[EggSandwichBread]{EggBreadWhite, "White"},
	option[EggSandwichBread]{EggBreadWheat, "Wheat"},
	option[EggSandwichBread]{EggBreadRye, "Rye"},
	option[EggSandwichBread]{EggBreadKaiserRoll, "Kaiser Roll"},
	option[EggSandwichBread]{EggBreadCroissant, "Croissant +$0.75"},
)

func (v EggSandwichBread) Valid() bool   { return eggSandwichBreads.valid(v) }
func (v EggSandwichBread) Label() string { return eggSandwichBreads.label(v) }

type EggSandwichMeat string

const (
	EggMeatPorkRoll      EggSandwichMeat = "PORK_ROLL"
	EggMeatHam           EggSandwichMeat = "HAM"
	EggMeatBacon         EggSandwichMeat = "BACON"
	EggMeatSausage       EggSandwichMeat = "SAUSAGE"
	EggMeatTurkeySausage EggSandwichMeat = "TURKEY_SAUSAGE"
	EggMeatCountryHam    EggSandwichMeat = "COUNTRY_HAM"
	EggMeatTurkeyBacon   EggSandwichMeat = "TURKEY_BACON"
)

var eggSandwichMeats = newOptionList(
	option[EggSandwichMeat]{EggMeatPorkRoll, "Pork Roll"},
	option[EggSandwichMeat]{EggMeatHam, "Ham"},
	option[EggSandwichMeat]{EggMeatBacon, "Bacon"},
	option[EggSandwichMeat]{EggMeatSausage, "Sausage"},
	option[EggSandwichMeat]{EggMeatTurkeySausage, "Turkey Sausage"},
	option[EggSandwichMeat]{EggMeatCountryHam, "Country Ham"},
	option[EggSandwichMeat]{EggMeatTurkeyBacon, "Turkey Bacon"},
)

func (v EggSandwichMeat) Valid() bool   { return eggSandwichMeats.valid(v) }
func (v EggSandwichMeat) Label() string { return eggSandwichMeats.label(v) }

type EggSandwichCheese string

var eggSandwichCheeses = newOptionList(
	option[EggSandwichCheese]{"AMERICAN", "American"},
	option[EggSandwichCheese]{"SWISS", "Swiss"},
	option[EggSandwichCheese]{"PROVOLONE", "Provolone"},
	option[EggSandwichCheese]{"PEPPER_JACK", "Pepper Jack"},
)

func (v EggSandwichCheese) Valid() bool   { return eggSandwichCheeses.valid(v) }
func (v EggSandwichCheese) Label() string { return eggSandwichCheeses.label(v) }

type EggSandwichTopping string

var eggSandwichToppings = newOptionList(
	option[EggSandwichTopping]{"MAYO", "Mayo"},
	option[EggSandwichTopping]{"SALT", "Salt"},
	option[EggSandwichTopping]{"PEPPER", "Pepper"},
	option[EggSandwichTopping]{"KETCHUP", "Ketchup"},
)

func (v EggSandwichTopping) Valid() bool   { return eggSandwichToppings.valid(v) }
func (v EggSandwichTopping) Label() string { return eggSandwichToppings.label(v) }

// EggSandwichAddOn is a flat-priced extra.
type EggSandwichAddOn string

const (
	EggAddHashbrown       EggSandwichAddOn = "HASHBROWN"
	EggAddHashbrownOnSide EggSandwichAddOn = "HASHBROWN_ONSIDE"
	EggAddMeat            EggSandwichAddOn = "MEAT"
	EggAddEgg             EggSandwichAddOn = "EGG"
	EggAddCheese          EggSandwichAddOn = "CHEESE"
)

var eggSandwichAddOns = newOptionList(
	option[EggSandwichAddOn]{EggAddHashbrown, "Hashbrown on it (1 Piece)"},
	option[EggSandwichAddOn]{EggAddHashbrownOnSide, "Hashbrown on Side (2 Piece)"},
	option[EggSandwichAddOn]{EggAddMeat, "Meat"},
	option[EggSandwichAddOn]{EggAddEgg, "Egg"},
	option[EggSandwichAddOn]{EggAddCheese, "Cheese"},
)

func (v EggSandwichAddOn) Valid() bool   { return eggSandwichAddOns.valid(v) }
func (v EggSandwichAddOn) Label() string { return eggSandwichAddOns.label(v) }

// EggSandwichAttrs is the breakfast sandwich attribute record.
type EggSandwichAttrs struct {
	Quantity            int                  `json:"quantity"`
	Bread               EggSandwichBread     `json:"bread"`
	Egg                 Egg                  `json:"egg"`
	Toasted             bool                 `json:"toasted,omitempty"`
	Grilled             bool                 `json:"grilled,omitempty"`
	Meat                EggSandwichMeat      `json:"meat,omitempty"`
	Cheese              EggSandwichCheese    `json:"cheese,omitempty"`
	Toppings            []EggSandwichTopping `json:"toppings,omitempty"`
	AddOns              []EggSandwichAddOn   `json:"add_ons,omitempty"`
	SpecialInstructions string               `json:"special_instructions,omitempty"`
}

// EggSandwich is a configured breakfast sandwich line.
type EggSandwich struct {
	base
	bread    EggSandwichBread
	egg      Egg
	toasted  bool
	grilled  bool
	meat     EggSandwichMeat
	cheese   EggSandwichCheese
	toppings OptionSet[EggSandwichTopping]
	addOns   OptionSet[EggSandwichAddOn]
}

// EggSandwich validates attrs and prices the line from the meat/no-meat base,
// the croissant upcharge and flat add-ons.
func (c *Configurator) EggSandwich(attrs EggSandwichAttrs) (*EggSandwich, error) {
	if err := checkCommon(attrs.Quantity, attrs.SpecialInstructions); err != nil {
		return nil, err
	}
	if err := requireOption(eggSandwichBreads, "bread", attrs.Bread); err != nil {
		return nil, err
	}
	if err := requireOption(eggs, "egg", attrs.Egg); err != nil {
		return nil, err
	}
	if err := optionalOption(eggSandwichMeats, "meat", attrs.Meat); err != nil {
		return nil, err
	}
	if err := optionalOption(eggSandwichCheeses, "cheese", attrs.Cheese); err != nil {
		return nil, err
	}
	toppings, err := buildSet(eggSandwichToppings, "toppings", attrs.Toppings)
	if err != nil {
		return nil, err
	}
	addOns, err := buildSet(eggSandwichAddOns, "add_ons", attrs.AddOns)
	if err != nil {
		return nil, err
	}

	hasEgg := attrs.Egg != EggNone
	hasMeat := attrs.Meat != ""
	switch {
	case !hasEgg && !hasMeat:
		return nil, validation.Violation(validation.RuleEggOrMeat, "egg or meat must be specified")
	case !hasEgg && addOns.Has(EggAddEgg):
		return nil, validation.Violation(validation.RuleEggAddOnNeedsEgg,
			"cannot add extra egg when no egg is selected")
	case attrs.Cheese == "" && addOns.Has(EggAddCheese):
		return nil, validation.Violation(validation.RuleEggAddOnNeedsCheese,
			"cannot add extra cheese when no cheese is selected")
	case !hasMeat && addOns.Has(EggAddMeat):
		return nil, validation.Violation(validation.RuleEggAddOnNeedsMeat,
			"cannot add extra meat when no meat is selected")
	}

	prices := c.catalog.tables.EggSandwich
	unit := prices.Base
	if hasMeat {
		unit = prices.WithMeat
	}
	if attrs.Bread == EggBreadCroissant {
		unit = unit.Add(prices.Croissant)
	}
	for _, a := range addOns.items {
		unit = unit.Add(prices.AddOns[a])
	}

	return &EggSandwich{
		base: base{
			quantity:     attrs.Quantity,
			instructions: attrs.SpecialInstructions,
			price:        linePrice(unit, attrs.Quantity),
		},
		bread:    attrs.Bread,
		egg:      attrs.Egg,
		toasted:  attrs.Toasted,
		grilled:  attrs.Grilled,
		meat:     attrs.Meat,
		cheese:   attrs.Cheese,
		toppings: toppings,
		addOns:   addOns,
	}, nil
}

func (e *EggSandwich) Category() Category                      { return CategoryEggSandwich }
func (e *EggSandwich) Bread() EggSandwichBread                 { return e.bread }
func (e *EggSandwich) Egg() Egg                                { return e.egg }
func (e *EggSandwich) Toasted() bool                           { return e.toasted }
func (e *EggSandwich) Grilled() bool                           { return e.grilled }
func (e *EggSandwich) Meat() EggSandwichMeat                   { return e.meat }
func (e *EggSandwich) Cheese() EggSandwichCheese               { return e.cheese }
func (e *EggSandwich) Toppings() OptionSet[EggSandwichTopping] { return e.toppings }
func (e *EggSandwich) AddOns() OptionSet[EggSandwichAddOn]     { return e.addOns }

func (e *EggSandwich) Attributes() map[string]any {
	attrs := map[string]any{
		"bread":    string(e.bread),
		"egg":      string(e.egg),
		"toasted":  e.toasted,
		"grilled":  e.grilled,
		"toppings": e.toppings.strings(),
		"add_ons":  e.addOns.strings(),
	}
	if e.meat != "" {
		attrs["meat"] = string(e.meat)
	}
	if e.cheese != "" {
		attrs["cheese"] = string(e.cheese)
	}
	return e.attributes(attrs)
}

func (e *EggSandwich) String() string {
	var b strings.Builder
	b.WriteString(headline(e.quantity, e.bread.Label()+" Egg Sandwich"))
	writeFlag(&b, "Toasted", e.toasted)
	writeFlag(&b, "Grilled", e.grilled)
	writeLine(&b, "Egg", e.egg.Label())
	if e.meat != "" {
		writeLine(&b, "Meat", e.meat.Label())
	}
	if e.cheese != "" {
		writeLine(&b, "Cheese", e.cheese.Label())
	}
	writeList(&b, "Toppings", labelsOf(eggSandwichToppings, e.toppings))
	writeList(&b, "Add-ons", labelsOf(eggSandwichAddOns, e.addOns))
	writeLine(&b, "Special Instructions", e.instructions)
	return b.String()
}
