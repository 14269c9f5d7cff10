package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"

	"github.com/shopspring/decimal"
)

// SizedPrice is a price that varies between regular and large.
type SizedPrice struct {
	Regular decimal.Decimal `json:"regular"`
	Large   decimal.Decimal `json:"large"`
}

func (p SizedPrice) pick(large bool) decimal.Decimal {
	if large {
		return p.Large
	}
	return p.Regular
}

// EggSandwichPrices holds the breakfast sandwich formula inputs.
type EggSandwichPrices struct {
	Base      decimal.Decimal                      `json:"base"`
	WithMeat  decimal.Decimal                      `json:"with_meat"`
	Croissant decimal.Decimal                      `json:"croissant_upcharge"`
	AddOns    map[EggSandwichAddOn]decimal.Decimal `json:"add_ons"`
}

// ComboPrices holds the combo formula inputs.
type ComboPrices struct {
	Base         decimal.Decimal `json:"base"`
	DrinkUpgrade decimal.Decimal `json:"drink_upgrade"`
}

// PriceTables is the full menu pricing. It is plain data so alternate menus
// can be loaded from JSON; NewCatalog checks it and takes a private copy.
type PriceTables struct {
	Hotdog         map[HotdogMeat]decimal.Decimal  `json:"hotdog"`
	Sandwich       map[SandwichMeat]SizedPrice     `json:"sandwich"`
	SandwichAddOns map[SandwichAddOn]SizedPrice    `json:"sandwich_add_ons"`
	EggSandwich    EggSandwichPrices               `json:"egg_sandwich"`
	Salad          map[SaladChoice]decimal.Decimal `json:"salad"`
	SaladAddOns    map[SaladAddOn]decimal.Decimal  `json:"salad_add_ons"`
	Chips          decimal.Decimal                 `json:"chips"`
	Side           map[SideName]SizedPrice         `json:"side"`
	Drink          map[DrinkSize]decimal.Decimal   `json:"drink"`
	Combo          ComboPrices                     `json:"combo"`
}

func usd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sized(regular, large string) SizedPrice {
	return SizedPrice{Regular: usd(regular), Large: usd(large)}
}

// DefaultPriceTables returns the store's current menu pricing.
func DefaultPriceTables() PriceTables {
	standard := sized("7.00", "8.50")
	sandwich := map[SandwichMeat]SizedPrice{
		SandwichEggSalad:      sized("5.50", "6.75"),
		SandwichPimentoCheese: sized("5.25", "6.50"),
		SandwichGrilledCheese: sized("4.00", "5.00"),
		SandwichBLT:           sized("6.75", "8.25"),
	}
	for _, m := range sandwichMeats.values() {
		if _, ok := sandwich[m]; !ok {
			sandwich[m] = standard
		}
	}

	deli, salads := sized("3.00", "5.75"), sized("4.00", "8.75")

	return PriceTables{
		Hotdog: map[HotdogMeat]decimal.Decimal{
			HotdogRed:           usd("3.25"),
			HotdogRedFootlong:   usd("4.25"),
			HotdogItalian:       usd("4.75"),
			HotdogBeef:          usd("3.25"),
			HotdogBeefFootlong:  usd("6.00"),
			HotdogRedHotSausage: usd("3.50"),
			HotdogTurkey:        usd("3.25"),
			HotdogSmokedBeef:    usd("4.00"),
			HotdogJalapeno:      usd("4.00"),
			HotdogKielbasa:      usd("4.00"),
			HotdogSausage:       usd("4.00"),
		},
		Sandwich: sandwich,
		SandwichAddOns: map[SandwichAddOn]SizedPrice{
			SandwichAddBacon:  sized("2.00", "2.50"),
			SandwichAddMeat:   sized("2.00", "2.50"),
			SandwichAddCheese: sized("0.75", "0.75"),
		},
		EggSandwich: EggSandwichPrices{
			Base:      usd("3.50"),
			WithMeat:  usd("5.25"),
			Croissant: usd("0.75"),
			AddOns: map[EggSandwichAddOn]decimal.Decimal{
				EggAddHashbrown:       usd("0.75"),
				EggAddHashbrownOnSide: usd("1.50"),
				EggAddMeat:            usd("1.50"),
				EggAddEgg:             usd("0.75"),
				EggAddCheese:          usd("0.75"),
			},
		},
		Salad: map[SaladChoice]decimal.Decimal{
			SaladChefHamTurkey: usd("9.50"),
			SaladChefChicken:   usd("9.50"),
			SaladChefTuna:      usd("9.50"),
			SaladGarden:        usd("7.50"),
		},
		SaladAddOns: map[SaladAddOn]decimal.Decimal{
			SaladAddCheese:   usd("0.75"),
			SaladAddEggs:     usd("1.00"),
			SaladAddMeat:     usd("2.00"),
			SaladAddDressing: usd("0.75"),
		},
		Chips: usd("1.75"),
		Side: map[SideName]SizedPrice{
			SideSlaw:              deli,
			SidePotatoSalad:       deli,
			SideMacaroniSalad:     deli,
			SideDeviledEgg:        deli,
			SideTunaSalad:         salads,
			SideChickenSalad:      salads,
			SideFrenchFries:       sized("2.75", "3.50"),
			SideCheeseFries:       sized("3.25", "3.75"),
			SideChilliCheeseFries: sized("3.75", "4.25"),
		},
		Drink: map[DrinkSize]decimal.Decimal{
			DrinkRegular: usd("2.00"),
			DrinkLarge:   usd("2.50"),
			DrinkBottle:  usd("2.50"),
		},
		Combo: ComboPrices{
			Base:         usd("4.25"),
			DrinkUpgrade: usd("0.50"),
		},
	}
}

// LoadPriceTables decodes price tables from JSON. Unknown keys are rejected.
func LoadPriceTables(r io.Reader) (PriceTables, error) {
	var t PriceTables
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return PriceTables{}, fmt.Errorf("decode price tables: %w", err)
	}
	return t, nil
}

// ErrIncompletePrices is returned when a price table misses an option or
// holds a negative amount.
var ErrIncompletePrices = errors.New("incomplete price tables")

// Catalog is an immutable, checked copy of the price tables.
type Catalog struct {
	tables PriceTables
}

// NewCatalog checks that every option has a non-negative price and copies
// the tables so later changes to t have no effect.
func NewCatalog(t PriceTables) (*Catalog, error) {
	var errs []error
	errs = append(errs, coverFlat("hotdog", hotdogMeats, t.Hotdog)...)
	errs = append(errs, coverSized("sandwich", sandwichMeats.values(), t.Sandwich)...)
	errs = append(errs, coverSized("sandwich_add_ons", sandwichAddOns.values(), t.SandwichAddOns)...)
	errs = append(errs, coverFlat("egg_sandwich.add_ons", eggSandwichAddOns, t.EggSandwich.AddOns)...)
	errs = append(errs, coverFlat("salad", saladChoices, t.Salad)...)
	errs = append(errs, coverFlat("salad_add_ons", saladAddOns, t.SaladAddOns)...)
	errs = append(errs, coverFlat("drink", drinkSizes, t.Drink)...)

	var priced []SideName
	for _, s := range sideNames.values() {
		if s != SideChips {
			priced = append(priced, s)
		}
	}
	errs = append(errs, coverSized("side", priced, t.Side)...)

	for name, v := range map[string]decimal.Decimal{
		"egg_sandwich.base":               t.EggSandwich.Base,
		"egg_sandwich.with_meat":          t.EggSandwich.WithMeat,
		"egg_sandwich.croissant_upcharge": t.EggSandwich.Croissant,
		"chips":                           t.Chips,
		"combo.base":                      t.Combo.Base,
		"combo.drink_upgrade":             t.Combo.DrinkUpgrade,
	} {
		if v.IsNegative() {
			errs = append(errs, fmt.Errorf("%s: negative price", name))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrIncompletePrices, errors.Join(errs...))
	}

	cp := t
	cp.Hotdog = maps.Clone(t.Hotdog)
	cp.Sandwich = maps.Clone(t.Sandwich)
	cp.SandwichAddOns = maps.Clone(t.SandwichAddOns)
	cp.EggSandwich.AddOns = maps.Clone(t.EggSandwich.AddOns)
	cp.Salad = maps.Clone(t.Salad)
	cp.SaladAddOns = maps.Clone(t.SaladAddOns)
	cp.Side = maps.Clone(t.Side)
	cp.Drink = maps.Clone(t.Drink)
	return &Catalog{tables: cp}, nil
}

// DefaultCatalog returns the catalog for DefaultPriceTables.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultPriceTables())
	if err != nil {
		panic(err)
	}
	return c
}

func coverFlat[K ~string](table string, list optionList[K], prices map[K]decimal.Decimal) []error {
	var errs []error
	for _, k := range list.values() {
		p, ok := prices[k]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%s: missing price for %s", table, k))
		case p.IsNegative():
			errs = append(errs, fmt.Errorf("%s: negative price for %s", table, k))
		}
	}
	return errs
}

func coverSized[K ~string](table string, keys []K, prices map[K]SizedPrice) []error {
	var errs []error
	for _, k := range keys {
		p, ok := prices[k]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%s: missing price for %s", table, k))
		case p.Regular.IsNegative() || p.Large.IsNegative():
			errs = append(errs, fmt.Errorf("%s: negative price for %s", table, k))
		}
	}
	return errs
}
