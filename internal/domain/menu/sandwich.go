package menu

import (
	"strings"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

type SandwichSize string

const (
	SandwichRegular SandwichSize = "REGULAR"
	SandwichLarge   SandwichSize = "LARGE"
)

var sandwichSizes = newOptionList(
	option[SandwichSize]{SandwichRegular, "Regular"},
	option[SandwichSize]{SandwichLarge, "Large"},
)

func (v SandwichSize) Valid() bool   { return sandwichSizes.valid(v) }
func (v SandwichSize) Label() string { return sandwichSizes.label(v) }

type SandwichBread string

const (
	SandwichWhite      SandwichBread = "WHITE"
	SandwichWheat      SandwichBread = "WHEAT"
	SandwichRye        SandwichBread = "RYE"
	SandwichKaiserRoll SandwichBread = "KAISER_ROLL"
)

var sandwichBreads = newOptionList(
	option[SandwichBread]{SandwichWhite, "White"},
	option[SandwichBread]{SandwichWheat, "Wheat"},
	option[SandwichBread]{SandwichRye, "Rye"},
	option[SandwichBread]{SandwichKaiserRoll, "Kaiser Roll"},
)

func (v SandwichBread) Valid() bool   { return sandwichBreads.valid(v) }
func (v SandwichBread) Label() string { return sandwichBreads.label(v) }

type SandwichMeat string

const (
	SandwichChickenSalad   SandwichMeat = "CHICKEN_SALAD"
	SandwichTunaSalad      SandwichMeat = "TUNA_SALAD"
	SandwichFriedBologna   SandwichMeat = "FRIED_BOLOGNA"
	SandwichEggSalad       SandwichMeat = "EGG_SALAD"
	SandwichPimentoCheese  SandwichMeat = "PIMENTO_CHEESE"
	SandwichGrilledCheese  SandwichMeat = "GRILLED_CHEESE"
	SandwichBLT            SandwichMeat = "BLT"
	SandwichTurkey         SandwichMeat = "TURKEY"
	SandwichRoastBeef      SandwichMeat = "ROAST_BEEF"
	SandwichReuben         SandwichMeat = "CORNED_BEEF_REUBEN"
	SandwichHam            SandwichMeat = "HAM"
	SandwichBuffaloChicken SandwichMeat = "BUFFALO_CHICKEN_BREAST"
	SandwichHotPastrami    SandwichMeat = "HOT_PASTRAMI"
	SandwichHotCornedBeef  SandwichMeat = "HOT_CORNED_BEEF"
	SandwichTurkeyHam      SandwichMeat = "HALF_TURKEY_HALF_HAM"
	SandwichPastramiCorned SandwichMeat = "HALF_HOT_PASTRAMI_HALF_CORNED_BEEF"
)

var sandwichMeats = newOptionList(
	option[SandwichMeat]{SandwichChickenSalad, "Chicken Salad"},
	option[SandwichMeat]{SandwichTunaSalad, "Tuna Salad"},
	option[SandwichMeat]{SandwichFriedBologna, "Fried Bologna"},
	option[SandwichMeat]{SandwichEggSalad, "Egg Salad"},
	option[SandwichMeat]{SandwichPimentoCheese, "Pimento Cheese"},
	option[SandwichMeat]{SandwichGrilledCheese, "Grilled Cheese"},
	option[SandwichMeat]{SandwichBLT, "BLT"},
	option[SandwichMeat]{SandwichTurkey, "Turkey"},
	option[SandwichMeat]{SandwichRoastBeef, "Roast Beef"},
	option[SandwichMeat]{SandwichReuben, "Corned Beef Reuben"},
	option[SandwichMeat]{SandwichHam, "Ham"},
	option[SandwichMeat]{SandwichBuffaloChicken, "Buffalo Chicken Breast"},
	option[SandwichMeat]{SandwichHotPastrami, "Hot Pastrami"},
	option[SandwichMeat]{SandwichHotCornedBeef, "Hot Corned Beef"},
	option[SandwichMeat]{SandwichTurkeyHam, "Half Turkey Half Ham"},
	option[SandwichMeat]{SandwichPastramiCorned, "Half Hot Pastrami Half Corned Beef"},
)

func (v SandwichMeat) Valid() bool   { return sandwichMeats.valid(v) }
func (v SandwichMeat) Label() string { return sandwichMeats.label(v) }

type SandwichCheese string

const (
	SandwichAmerican   SandwichCheese = "AMERICAN"
	SandwichProvolone  SandwichCheese = "PROVOLONE"
	SandwichSwiss      SandwichCheese = "SWISS"
	SandwichPepperJack SandwichCheese = "PEPPER_JACK"
)

var sandwichCheeses = newOptionList(
	option[SandwichCheese]{SandwichAmerican, "American"},
	option[SandwichCheese]{SandwichProvolone, "Provolone"},
	option[SandwichCheese]{SandwichSwiss, "Swiss"},
	option[SandwichCheese]{SandwichPepperJack, "Pepper Jack"},
)

func (v SandwichCheese) Valid() bool   { return sandwichCheeses.valid(v) }
func (v SandwichCheese) Label() string { return sandwichCheeses.label(v) }

type SandwichTopping string

var sandwichToppings = newOptionList(
	option[SandwichTopping]{"MAYO", "Mayo"},
	option[SandwichTopping]{"TOMATO", "Tomato"},
	option[SandwichTopping]{"LETTUCE", "Lettuce"},
	option[SandwichTopping]{"ONIONS", "Onions"},
	option[SandwichTopping]{"PICKLES", "Pickles"},
	option[SandwichTopping]{"SALT", "Salt"},
	option[SandwichTopping]{"PEPPER", "Pepper"},
	option[SandwichTopping]{"OREGANO", "Oregano"},
	option[SandwichTopping]{"THOUSAND_ISLAND", "Thousand Island"},
	option[SandwichTopping]{"GRILLED_ONIONS", "Grilled Onions"},
	option[SandwichTopping]{"GRILLED_PEPPERS", "Grilled Peppers"},
	option[SandwichTopping]{"SPICY_MUSTARD", "Spicy Mustard"},
	option[SandwichTopping]{"MUSTARD", "Mustard"},
	option[SandwichTopping]{"BANANA_PEPPERS", "Banana Peppers"},
	option[SandwichTopping]{"JALAPENO_PEPPERS", "Jalapeno Peppers"},
	option[SandwichTopping]{"OLIVES", "Olives"},
	option[SandwichTopping]{"OIL", "Oil"},
	option[SandwichTopping]{"VINEGAR", "Vinegar"},
	option[SandwichTopping]{"KRAUT", "Kraut"},
)

func (v SandwichTopping) Valid() bool   { return sandwichToppings.valid(v) }
func (v SandwichTopping) Label() string { return sandwichToppings.label(v) }

// SandwichAddOn is a priced extra. Prices vary by sandwich size.
type SandwichAddOn string

const (
	SandwichAddBacon  SandwichAddOn = "BACON"
	SandwichAddMeat   SandwichAddOn = "MEAT"
	SandwichAddCheese SandwichAddOn = "CHEESE"
)

var sandwichAddOns = newOptionList(
	option[SandwichAddOn]{SandwichAddBacon, "Bacon"},
	option[SandwichAddOn]{SandwichAddMeat, "Meat"},
	option[SandwichAddOn]{SandwichAddCheese, "Cheese"},
)

func (v SandwichAddOn) Valid() bool   { return sandwichAddOns.valid(v) }
func (v SandwichAddOn) Label() string { return sandwichAddOns.label(v) }

// SandwichAttrs is the sandwich attribute record.
type SandwichAttrs struct {
	Quantity            int               `json:"quantity"`
	Size                SandwichSize      `json:"size"`
	Bread               SandwichBread     `json:"bread"`
	Meat                SandwichMeat      `json:"meat"`
	Toast               bool              `json:"toast,omitempty"`
	Grilled             bool              `json:"grilled,omitempty"`
	Cheese              SandwichCheese    `json:"cheese,omitempty"`
	Toppings            []SandwichTopping `json:"toppings,omitempty"`
	AddOns              []SandwichAddOn   `json:"add_ons,omitempty"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
}

// Sandwich is a configured deli sandwich line.
type Sandwich struct {
	base
	size     SandwichSize
	bread    SandwichBread
	meat     SandwichMeat
	toast    bool
	grilled  bool
	cheese   SandwichCheese
	toppings OptionSet[SandwichTopping]
	addOns   OptionSet[SandwichAddOn]
}

// Sandwich validates attrs and prices the line by (meat, size) plus the
// size-dependent add-ons.
func (c *Configurator) Sandwich(attrs SandwichAttrs) (*Sandwich, error) {
	if err := checkCommon(attrs.Quantity, attrs.SpecialInstructions); err != nil {
		return nil, err
	}
	if err := requireOption(sandwichSizes, "size", attrs.Size); err != nil {
		return nil, err
	}
	if err := requireOption(sandwichBreads, "bread", attrs.Bread); err != nil {
		return nil, err
	}
	if err := requireOption(sandwichMeats, "meat", attrs.Meat); err != nil {
		return nil, err
	}
	if err := optionalOption(sandwichCheeses, "cheese", attrs.Cheese); err != nil {
		return nil, err
	}
	toppings, err := buildSet(sandwichToppings, "toppings", attrs.Toppings)
	if err != nil {
		return nil, err
	}
	addOns, err := buildSet(sandwichAddOns, "add_ons", attrs.AddOns)
	if err != nil {
		return nil, err
	}

	if addOns.Has(SandwichAddCheese) && attrs.Cheese == "" {
		return nil, validation.Violation(validation.RuleSandwichCheese,
			"cheese is required when adding cheese add-on")
	}

	large := attrs.Size == SandwichLarge
	unit := c.catalog.tables.Sandwich[attrs.Meat].pick(large)
	for _, a := range addOns.items {
		unit = unit.Add(c.catalog.tables.SandwichAddOns[a].pick(large))
	}

	return &Sandwich{
		base: base{
			quantity:     attrs.Quantity,
			instructions: attrs.SpecialInstructions,
			price:        linePrice(unit, attrs.Quantity),
		},
		size:     attrs.Size,
		bread:    attrs.Bread,
		meat:     attrs.Meat,
		toast:    attrs.Toast,
		grilled:  attrs.Grilled,
		cheese:   attrs.Cheese,
		toppings: toppings,
		addOns:   addOns,
	}, nil
}

func (s *Sandwich) Category() Category                   { return CategorySandwich }
func (s *Sandwich) Size() SandwichSize                   { return s.size }
func (s *Sandwich) Bread() SandwichBread                 { return s.bread }
func (s *Sandwich) Meat() SandwichMeat                   { return s.meat }
func (s *Sandwich) Toast() bool                          { return s.toast }
func (s *Sandwich) Grilled() bool                        { return s.grilled }
func (s *Sandwich) Cheese() SandwichCheese               { return s.cheese }
func (s *Sandwich) Toppings() OptionSet[SandwichTopping] { return s.toppings }
func (s *Sandwich) AddOns() OptionSet[SandwichAddOn]     { return s.addOns }

func (s *Sandwich) Attributes() map[string]any {
	attrs := map[string]any{
		"size":     string(s.size),
		"bread":    string(s.bread),
		"meat":     string(s.meat),
		"toast":    s.toast,
		"grilled":  s.grilled,
		"toppings": s.toppings.strings(),
		"add_ons":  s.addOns.strings(),
	}
	if s.cheese != "" {
		attrs["cheese"] = string(s.cheese)
	}
	return s.attributes(attrs)
}

func (s *Sandwich) String() string {
	var b strings.Builder
	b.WriteString(headline(s.quantity, s.size.Label()+" "+s.meat.Label()+" Sandwich"))
	writeLine(&b, "Bread", s.bread.Label())
	writeFlag(&b, "Toast", s.toast)
	writeFlag(&b, "Grilled", s.grilled)
	if s.cheese != "" {
		writeLine(&b, "Cheese", s.cheese.Label())
	}
	writeList(&b, "Toppings", labelsOf(sandwichToppings, s.toppings))
	writeList(&b, "Add Ons", labelsOf(sandwichAddOns, s.addOns))
	writeLine(&b, "Special Instructions", s.instructions)
	return b.String()
}
