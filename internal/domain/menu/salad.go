package menu

import (
	"strings"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

type SaladChoice string

const (
	SaladChefHamTurkey SaladChoice = "CHEF_HAM_TURKEY"
	SaladChefChicken   SaladChoice = "CHEF_CHICKEN"
	SaladChefTuna      SaladChoice = "CHEF_TUNA"
	SaladGarden        SaladChoice = "GARDEN"
)

var saladChoices = newOptionList(
	option[SaladChoice]{SaladChefHamTurkey, "Chef Salad - Ham & Turkey"},
	option[SaladChoice]{SaladChefChicken, "Chef Salad - Chicken Salad"},
	option[SaladChoice]{SaladChefTuna, "Chef Salad - Tuna Salad"},
	option[SaladChoice]{SaladGarden, "Garden Salad (veggies only)"},
)

func (v SaladChoice) Valid() bool   { return saladChoices.valid(v) }
func (v SaladChoice) Label() string { return saladChoices.label(v) }

type SaladTopping string

const (
	SaladBacon           SaladTopping = "BACON"
	SaladEggs            SaladTopping = "EGGS"
	SaladAmericanCheese  SaladTopping = "AMERICAN_CHEESE"
	SaladProvoloneCheese SaladTopping = "PROVOLONE_CHEESE"
	SaladSwissCheese     SaladTopping = "SWISS_CHEESE"
)

var saladToppings = newOptionList(
	option[SaladTopping]{"LETTUCE", "Lettuce"},
	option[SaladTopping]{SaladBacon, "Bacon"},
	option[SaladTopping]{"TOMATO", "Tomato"},
	option[SaladTopping]{"CUCUMBER", "Cucumber"},
	option[SaladTopping]{"ONIONS", "Onions"},
	option[SaladTopping]{"OLIVES", "Olives"},
	option[SaladTopping]{SaladEggs, "Eggs"},
	option[SaladTopping]{"GREEN_PEPPERS", "Green Peppers"},
	option[SaladTopping]{"BANANA_PEPPERS", "Banana Peppers"},
	option[SaladTopping]{"JALAPENOS", "Jalapenos Peppers"},
	option[SaladTopping]{"SALT_PEPPER", "Salt & Pepper"},
	option[SaladTopping]{"OREGANO", "Oregano"},
	option[SaladTopping]{"OIL_VINEGAR", "Oil & Vinegar"},
	option[SaladTopping]{"PICKLES", "Pickles"},
	option[SaladTopping]{SaladAmericanCheese, "American Cheese"},
	option[SaladTopping]{SaladProvoloneCheese, "Provolone Cheese"},
	option[SaladTopping]{SaladSwissCheese, "Swiss Cheese"},
)

func (v SaladTopping) Valid() bool   { return saladToppings.valid(v) }
func (v SaladTopping) Label() string { return saladToppings.label(v) }

type SaladDressing string

var saladDressings = newOptionList(
	option[SaladDressing]{"RANCH", "Ranch"},
	option[SaladDressing]{"ITALIAN", "Italian"},
	option[SaladDressing]{"FRENCH", "French"},
	option[SaladDressing]{"THOUSAND_ISLAND", "Thousand Island"},
	option[SaladDressing]{"HONEY_MUSTARD", "Honey Mustard"},
)

func (v SaladDressing) Valid() bool   { return saladDressings.valid(v) }
func (v SaladDressing) Label() string { return saladDressings.label(v) }

// SaladAddOn is a flat-priced extra.
type SaladAddOn string

const (
	SaladAddCheese   SaladAddOn = "CHEESE"
	SaladAddEggs     SaladAddOn = "EGGS"
	SaladAddMeat     SaladAddOn = "MEAT"
	SaladAddDressing SaladAddOn = "DRESSING"
)

var saladAddOns = newOptionList(
	option[SaladAddOn]{SaladAddCheese, "Cheese"},
	option[SaladAddOn]{SaladAddEggs, "Eggs"},
	option[SaladAddOn]{SaladAddMeat, "Meat"},
	option[SaladAddOn]{SaladAddDressing, "Dressing"},
)

func (v SaladAddOn) Valid() bool   { return saladAddOns.valid(v) }
func (v SaladAddOn) Label() string { return saladAddOns.label(v) }

// SaladAttrs is the salad attribute record.
type SaladAttrs struct {
	Quantity            int            `json:"quantity"`
	Choice              SaladChoice    `json:"choice"`
	Toppings            []SaladTopping `json:"toppings"`
	Dressing            SaladDressing  `json:"dressing,omitempty"`
	AddOns              []SaladAddOn   `json:"add_ons,omitempty"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
}

// Salad is a configured salad line.
type Salad struct {
	base
	choice   SaladChoice
	toppings OptionSet[SaladTopping]
	dressing SaladDressing
	addOns   OptionSet[SaladAddOn]
}

// Salad validates attrs and prices the line by choice plus flat add-ons.
func (c *Configurator) Salad(attrs SaladAttrs) (*Salad, error) {
	if err := checkCommon(attrs.Quantity, attrs.SpecialInstructions); err != nil {
		return nil, err
	}
	if err := requireOption(saladChoices, "choice", attrs.Choice); err != nil {
		return nil, err
	}
	if attrs.Toppings == nil {
		return nil, missing("toppings")
	}
	toppings, err := buildSet(saladToppings, "toppings", attrs.Toppings)
	if err != nil {
		return nil, err
	}
	if err := optionalOption(saladDressings, "dressing", attrs.Dressing); err != nil {
		return nil, err
	}
	addOns, err := buildSet(saladAddOns, "add_ons", attrs.AddOns)
	if err != nil {
		return nil, err
	}

	if attrs.Choice == SaladGarden {
		if toppings.Has(SaladBacon) {
			return nil, validation.Violation(validation.RuleGardenBacon, "bacon not allowed on Garden")
		}
		if addOns.Has(SaladAddMeat) {
			return nil, validation.Violation(validation.RuleGardenMeat, "meat not allowed on Garden")
		}
	}
	if addOns.Has(SaladAddDressing) && attrs.Dressing == "" {
		return nil, validation.Violation(validation.RuleSaladDressing,
			"a dressing must be selected to add extra dressing")
	}
	if addOns.Has(SaladAddEggs) && !toppings.Has(SaladEggs) {
		return nil, validation.Violation(validation.RuleSaladEggs,
			"eggs are required in the toppings to add eggs")
	}
	if addOns.Has(SaladAddCheese) && !toppings.HasAny(SaladAmericanCheese, SaladProvoloneCheese, SaladSwissCheese) {
		return nil, validation.Violation(validation.RuleSaladCheese,
			"cheese is required in the toppings to add cheese")
	}

	unit := c.catalog.tables.Salad[attrs.Choice]
	for _, a := range addOns.items {
		unit = unit.Add(c.catalog.tables.SaladAddOns[a])
	}

	return &Salad{
		base: base{
			quantity:     attrs.Quantity,
			instructions: attrs.SpecialInstructions,
			price:        linePrice(unit, attrs.Quantity),
		},
		choice:   attrs.Choice,
		toppings: toppings,
		dressing: attrs.Dressing,
		addOns:   addOns,
	}, nil
}

func (s *Salad) Category() Category                { return CategorySalad }
func (s *Salad) Choice() SaladChoice               { return s.choice }
func (s *Salad) Toppings() OptionSet[SaladTopping] { return s.toppings }
func (s *Salad) Dressing() SaladDressing           { return s.dressing }
func (s *Salad) AddOns() OptionSet[SaladAddOn]     { return s.addOns }

func (s *Salad) Attributes() map[string]any {
	attrs := map[string]any{
		"choice":   string(s.choice),
		"toppings": s.toppings.strings(),
		"add_ons":  s.addOns.strings(),
	}
	if s.dressing != "" {
		attrs["dressing"] = string(s.dressing)
	}
	return s.attributes(attrs)
}

func (s *Salad) String() string {
	var b strings.Builder
	b.WriteString(headline(s.quantity, s.choice.Label()))
	writeList(&b, "Toppings", labelsOf(saladToppings, s.toppings))
	if s.dressing != "" {
		writeLine(&b, "Dressing", s.dressing.Label())
	}
	writeList(&b, "Add-ons", labelsOf(saladAddOns, s.addOns))
	writeLine(&b, "Special Instructions", s.instructions)
	return b.String()
}
