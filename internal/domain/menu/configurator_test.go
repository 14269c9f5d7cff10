//go:build !integration

package menu

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

func newTestConfigurator() *Configurator {
	return NewConfigurator(DefaultCatalog())
}

func assertPrice(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.StringFixed(2))
}

func assertRule(t *testing.T, err error, rule validation.Rule) {
	t.Helper()
	var de *validation.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %v", err)
	assert.Equal(t, rule, de.Rule)
}

func assertStructural(t *testing.T, err error, field string) {
	t.Helper()
	var se *validation.StructuralError
	require.True(t, errors.As(err, &se), "expected StructuralError, got %v", err)
	assert.Equal(t, field, se.Field)
}

func TestHotdog(t *testing.T) {
	c := newTestConfigurator()

	tests := []struct {
		name      string
		attrs     HotdogAttrs
		wantPrice string
		wantField string
	}{
		{"beef times two", HotdogAttrs{Quantity: 2, Meat: HotdogBeef}, "6.50", ""},
		{"beef footlong", HotdogAttrs{Quantity: 1, Meat: HotdogBeefFootlong}, "6.00", ""},
		{"italian with toppings", HotdogAttrs{Quantity: 3, Meat: HotdogItalian, Toppings: []HotdogTopping{HotdogMustard, HotdogChili}}, "14.25", ""},
		{"zero quantity", HotdogAttrs{Quantity: 0, Meat: HotdogBeef}, "", "quantity"},
		{"negative quantity", HotdogAttrs{Quantity: -1, Meat: HotdogBeef}, "", "quantity"},
		{"missing meat", HotdogAttrs{Quantity: 1}, "", "dog_type"},
		{"unknown meat", HotdogAttrs{Quantity: 1, Meat: "TOFU"}, "", "dog_type"},
		{"unknown topping", HotdogAttrs{Quantity: 1, Meat: HotdogRed, Toppings: []HotdogTopping{"GLITTER"}}, "", "toppings"},
		{"instructions too long", HotdogAttrs{Quantity: 1, Meat: HotdogRed, SpecialInstructions: strings.Repeat("x", 201)}, "", "special_instructions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := c.Hotdog(tt.attrs)
			if tt.wantField != "" {
				assertStructural(t, err, tt.wantField)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assertPrice(t, tt.wantPrice, item.Price())
			assert.Equal(t, CategoryHotdog, item.Category())
		})
	}
}

func TestHotdog_InstructionsBoundIsInCharacters(t *testing.T) {
	c := newTestConfigurator()
	_, err := c.Hotdog(HotdogAttrs{Quantity: 1, Meat: HotdogRed, SpecialInstructions: strings.Repeat("é", 200)})
	assert.NoError(t, err)
}

func TestHotdog_ToppingsAreDeduplicated(t *testing.T) {
	c := newTestConfigurator()
	item, err := c.Hotdog(HotdogAttrs{
		Quantity: 1,
		Meat:     HotdogRed,
		Toppings: []HotdogTopping{HotdogKetchup, HotdogMustard, HotdogKetchup, HotdogKetchup},
	})
	require.NoError(t, err)

	toppings := item.Toppings()
	assert.Equal(t, 2, toppings.Len())
	assert.True(t, toppings.Has(HotdogKetchup))
	assert.True(t, toppings.Has(HotdogMustard))
	assert.ElementsMatch(t, []HotdogTopping{HotdogMustard, HotdogKetchup}, toppings.Values())
}

func TestOptionSet_ValuesReturnsCopy(t *testing.T) {
	c := newTestConfigurator()
	item, err := c.Hotdog(HotdogAttrs{Quantity: 1, Meat: HotdogRed, Toppings: []HotdogTopping{HotdogKetchup}})
	require.NoError(t, err)

	values := item.Toppings().Values()
	values[0] = HotdogMayo
	assert.True(t, item.Toppings().Has(HotdogKetchup))
	assert.False(t, item.Toppings().Has(HotdogMayo))
}

func TestSandwich(t *testing.T) {
	c := newTestConfigurator()

	tests := []struct {
		name      string
		attrs     SandwichAttrs
		wantPrice string
		wantField string
		wantRule  validation.Rule
	}{
		{
			name:      "blt regular times two",
			attrs:     SandwichAttrs{Quantity: 2, Size: SandwichRegular, Bread: SandwichWhite, Meat: SandwichBLT},
			wantPrice: "13.50",
		},
		{
			name:      "standard meat large",
			attrs:     SandwichAttrs{Quantity: 1, Size: SandwichLarge, Bread: SandwichRye, Meat: SandwichTurkey},
			wantPrice: "8.50",
		},
		{
			name: "turkey with bacon and cheese add-ons",
			attrs: SandwichAttrs{
				Quantity: 1, Size: SandwichRegular, Bread: SandwichWheat, Meat: SandwichTurkey,
				Cheese: SandwichSwiss, AddOns: []SandwichAddOn{SandwichAddBacon, SandwichAddCheese},
			},
			wantPrice: "9.75",
		},
		{
			name: "large add-ons priced by size",
			attrs: SandwichAttrs{
				Quantity: 2, Size: SandwichLarge, Bread: SandwichKaiserRoll, Meat: SandwichGrilledCheese,
				AddOns: []SandwichAddOn{SandwichAddMeat, SandwichAddMeat},
			},
			wantPrice: "15.00",
		},
		{
			name: "cheese add-on without cheese",
			attrs: SandwichAttrs{
				Quantity: 1, Size: SandwichRegular, Bread: SandwichWhite, Meat: SandwichHam,
				AddOns: []SandwichAddOn{SandwichAddCheese},
			},
			wantRule: validation.RuleSandwichCheese,
		},
		{
			name:      "missing size",
			attrs:     SandwichAttrs{Quantity: 1, Bread: SandwichWhite, Meat: SandwichHam},
			wantField: "size",
		},
		{
			name:      "unknown bread",
			attrs:     SandwichAttrs{Quantity: 1, Size: SandwichRegular, Bread: "SOURDOUGH", Meat: SandwichHam},
			wantField: "bread",
		},
		{
			name:      "unknown cheese",
			attrs:     SandwichAttrs{Quantity: 1, Size: SandwichRegular, Bread: SandwichWhite, Meat: SandwichHam, Cheese: "BRIE"},
			wantField: "cheese",
		},
		{
			name: "structural before domain",
			attrs: SandwichAttrs{
				Quantity: 1, Size: SandwichRegular, Bread: SandwichWhite, Meat: SandwichHam,
				AddOns: []SandwichAddOn{SandwichAddCheese, "TRUFFLE"},
			},
			wantField: "add_ons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := c.Sandwich(tt.attrs)
			switch {
			case tt.wantField != "":
				assertStructural(t, err, tt.wantField)
			case tt.wantRule != "":
				assertRule(t, err, tt.wantRule)
			default:
				require.NoError(t, err)
				assertPrice(t, tt.wantPrice, item.Price())
			}
		})
	}
}

func TestEggSandwich(t *testing.T) {
	c := newTestConfigurator()

	tests := []struct {
		name      string
		attrs     EggSandwichAttrs
		wantPrice string
		wantRule  validation.Rule
		wantField string
	}{
		{
			name: "bacon with meat and hashbrown add-ons times two",
			attrs: EggSandwichAttrs{
				Quantity: 2, Bread: EggBreadWhite, Egg: EggFried, Meat: EggMeatBacon,
				AddOns: []EggSandwichAddOn{EggAddMeat, EggAddHashbrown},
			},
			wantPrice: "15.00",
		},
		{
			name:      "egg only",
			attrs:     EggSandwichAttrs{Quantity: 1, Bread: EggBreadWheat, Egg: EggScrambled},
			wantPrice: "3.50",
		},
		{
			name:      "croissant upcharge",
			attrs:     EggSandwichAttrs{Quantity: 1, Bread: EggBreadCroissant, Egg: EggScrambled, Meat: EggMeatHam},
			wantPrice: "6.00",
		},
		{
			name:      "meat only",
			attrs:     EggSandwichAttrs{Quantity: 1, Bread: EggBreadRye, Egg: EggNone, Meat: EggMeatPorkRoll},
			wantPrice: "5.25",
		},
		{
			name:     "neither egg nor meat",
			attrs:    EggSandwichAttrs{Quantity: 1, Bread: EggBreadWhite, Egg: EggNone},
			wantRule: validation.RuleEggOrMeat,
		},
		{
			name: "extra egg without egg",
			attrs: EggSandwichAttrs{
				Quantity: 1, Bread: EggBreadWhite, Egg: EggNone, Meat: EggMeatHam,
				AddOns: []EggSandwichAddOn{EggAddEgg},
			},
			wantRule: validation.RuleEggAddOnNeedsEgg,
		},
		{
			name: "extra cheese without cheese",
			attrs: EggSandwichAttrs{
				Quantity: 1, Bread: EggBreadWhite, Egg: EggFried,
				AddOns: []EggSandwichAddOn{EggAddCheese},
			},
			wantRule: validation.RuleEggAddOnNeedsCheese,
		},
		{
			name: "extra meat without meat",
			attrs: EggSandwichAttrs{
				Quantity: 1, Bread: EggBreadWhite, Egg: EggFried,
				AddOns: []EggSandwichAddOn{EggAddMeat},
			},
			wantRule: validation.RuleEggAddOnNeedsMeat,
		},
		{
			name:      "missing egg",
			attrs:     EggSandwichAttrs{Quantity: 1, Bread: EggBreadWhite, Meat: EggMeatHam},
			wantField: "egg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := c.EggSandwich(tt.attrs)
			switch {
			case tt.wantField != "":
				assertStructural(t, err, tt.wantField)
			case tt.wantRule != "":
				assertRule(t, err, tt.wantRule)
			default:
				require.NoError(t, err)
				assertPrice(t, tt.wantPrice, item.Price())
			}
		})
	}
}

func TestSalad(t *testing.T) {
	c := newTestConfigurator()

	tests := []struct {
		name      string
		attrs     SaladAttrs
		wantPrice string
		wantRule  validation.Rule
		wantField string
	}{
		{
			name:      "garden plain",
			attrs:     SaladAttrs{Quantity: 1, Choice: SaladGarden, Toppings: []SaladTopping{"LETTUCE"}},
			wantPrice: "7.50",
		},
		{
			name: "chef with every add-on",
			attrs: SaladAttrs{
				Quantity: 2, Choice: SaladChefHamTurkey, Dressing: "RANCH",
				Toppings: []SaladTopping{SaladEggs, SaladSwissCheese, SaladBacon},
				AddOns:   []SaladAddOn{SaladAddCheese, SaladAddEggs, SaladAddMeat, SaladAddDressing},
			},
			wantPrice: "28.00",
		},
		{
			name:     "garden with bacon",
			attrs:    SaladAttrs{Quantity: 1, Choice: SaladGarden, Toppings: []SaladTopping{SaladBacon}},
			wantRule: validation.RuleGardenBacon,
		},
		{
			name: "garden with meat add-on",
			attrs: SaladAttrs{
				Quantity: 1, Choice: SaladGarden, Toppings: []SaladTopping{},
				AddOns: []SaladAddOn{SaladAddMeat},
			},
			wantRule: validation.RuleGardenMeat,
		},
		{
			name: "dressing add-on without dressing",
			attrs: SaladAttrs{
				Quantity: 1, Choice: SaladChefTuna, Toppings: []SaladTopping{},
				AddOns: []SaladAddOn{SaladAddDressing},
			},
			wantRule: validation.RuleSaladDressing,
		},
		{
			name: "eggs add-on without eggs topping",
			attrs: SaladAttrs{
				Quantity: 1, Choice: SaladChefTuna, Toppings: []SaladTopping{"TOMATO"},
				AddOns: []SaladAddOn{SaladAddEggs},
			},
			wantRule: validation.RuleSaladEggs,
		},
		{
			name: "cheese add-on without cheese topping",
			attrs: SaladAttrs{
				Quantity: 1, Choice: SaladChefChicken, Toppings: []SaladTopping{"TOMATO"},
				AddOns: []SaladAddOn{SaladAddCheese},
			},
			wantRule: validation.RuleSaladCheese,
		},
		{
			name: "cheese add-on with provolone",
			attrs: SaladAttrs{
				Quantity: 1, Choice: SaladChefChicken, Toppings: []SaladTopping{SaladProvoloneCheese},
				AddOns: []SaladAddOn{SaladAddCheese},
			},
			wantPrice: "10.25",
		},
		{
			name:      "toppings required",
			attrs:     SaladAttrs{Quantity: 1, Choice: SaladGarden},
			wantField: "toppings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := c.Salad(tt.attrs)
			switch {
			case tt.wantField != "":
				assertStructural(t, err, tt.wantField)
			case tt.wantRule != "":
				assertRule(t, err, tt.wantRule)
			default:
				require.NoError(t, err)
				assertPrice(t, tt.wantPrice, item.Price())
			}
		})
	}
}

func TestSalad_GardenBaconMessage(t *testing.T) {
	c := newTestConfigurator()
	_, err := c.Salad(SaladAttrs{Quantity: 1, Choice: SaladGarden, Toppings: []SaladTopping{SaladBacon}})
	require.Error(t, err)
	assert.Equal(t, validation.KindDomain, validation.KindOf(err))
	assert.Equal(t, "bacon not allowed on Garden", err.Error())
}

func TestSide(t *testing.T) {
	c := newTestConfigurator()

	tests := []struct {
		name      string
		attrs     SideAttrs
		wantPrice string
		wantField string
	}{
		{"chips flat", SideAttrs{Quantity: 3, Name: SideChips, ChipsType: "LAYS_BBQ"}, "5.25", ""},
		{"chips with a size", SideAttrs{Quantity: 1, Name: SideChips, Size: SideLarge, ChipsType: "COOKIES"}, "", "size"},
		{"chips with regular size", SideAttrs{Quantity: 1, Name: SideChips, Size: SideRegular, ChipsType: "COOKIES"}, "", "size"},
		{"slaw large", SideAttrs{Quantity: 1, Name: SideSlaw, Size: SideLarge}, "5.75", ""},
		{"chicken salad regular", SideAttrs{Quantity: 2, Name: SideChickenSalad, Size: SideRegular}, "8.00", ""},
		{"chilli cheese fries large", SideAttrs{Quantity: 1, Name: SideChilliCheeseFries, Size: SideLarge}, "4.25", ""},
		{"chips without flavor", SideAttrs{Quantity: 1, Name: SideChips}, "", "chips_type"},
		{"fries without size", SideAttrs{Quantity: 1, Name: SideFrenchFries}, "", "size"},
		{"flavor on non-chips", SideAttrs{Quantity: 1, Name: SideSlaw, Size: SideRegular, ChipsType: "LAYS_PLAIN"}, "", "chips_type"},
		{"unknown size", SideAttrs{Quantity: 1, Name: SideSlaw, Size: "HUGE"}, "", "size"},
		{"unknown name", SideAttrs{Quantity: 1, Name: "ONION_RINGS", Size: SideRegular}, "", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := c.Side(tt.attrs)
			if tt.wantField != "" {
				assertStructural(t, err, tt.wantField)
				return
			}
			require.NoError(t, err)
			assertPrice(t, tt.wantPrice, item.Price())
		})
	}
}

func TestDrink(t *testing.T) {
	c := newTestConfigurator()

	tests := []struct {
		name      string
		attrs     DrinkAttrs
		wantPrice string
		wantErr   validation.Kind
	}{
		{"regular coke", DrinkAttrs{Quantity: 1, Size: DrinkRegular, Name: DrinkCoke}, "2.00", ""},
		{"large tea times three", DrinkAttrs{Quantity: 3, Size: DrinkLarge, Name: DrinkSweetTea}, "7.50", ""},
		{"bottled soda", DrinkAttrs{Quantity: 2, Size: DrinkBottle, Name: DrinkBottledSoda}, "5.00", ""},
		{"bottle size fountain drink", DrinkAttrs{Quantity: 1, Size: DrinkBottle, Name: DrinkCoke}, "", validation.KindDomain},
		{"cup size bottled drink", DrinkAttrs{Quantity: 1, Size: DrinkLarge, Name: DrinkBottledSoda}, "", validation.KindDomain},
		{"unknown drink", DrinkAttrs{Quantity: 1, Size: DrinkRegular, Name: "SLUSHIE"}, "", validation.KindStructural},
		{"missing size", DrinkAttrs{Quantity: 1, Name: DrinkCoke}, "", validation.KindStructural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := c.Drink(tt.attrs)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, validation.KindOf(err))
				return
			}
			require.NoError(t, err)
			assertPrice(t, tt.wantPrice, item.Price())
		})
	}
}

func TestCombo(t *testing.T) {
	c := newTestConfigurator()
	fries := ComboSideAttrs{Name: SideFrenchFries, Size: SideRegular}
	coke := ComboDrinkAttrs{Name: DrinkCoke, Size: DrinkRegular}

	tests := []struct {
		name      string
		attrs     ComboAttrs
		wantPrice string
		wantRule  validation.Rule
		wantField string
	}{
		{"fries and coke", ComboAttrs{Quantity: 1, Side: fries, Drink: coke}, "4.25", "", ""},
		{"large drink upgrade", ComboAttrs{Quantity: 1, Side: fries, Drink: ComboDrinkAttrs{Name: DrinkCoke, Size: DrinkLarge}}, "4.75", "", ""},
		{"bottle upgrade times two", ComboAttrs{Quantity: 2, Side: fries, Drink: ComboDrinkAttrs{Name: DrinkBottledSoda, Size: DrinkBottle}}, "9.50", "", ""},
		{"chips side", ComboAttrs{Quantity: 1, Side: ComboSideAttrs{Name: SideChips, ChipsType: "LAYS_PLAIN"}, Drink: coke}, "4.25", "", ""},
		{"large side", ComboAttrs{Quantity: 1, Side: ComboSideAttrs{Name: SideSlaw, Size: SideLarge}, Drink: coke}, "", validation.RuleComboSideSize, ""},
		{"large chips", ComboAttrs{Quantity: 1, Side: ComboSideAttrs{Name: SideChips, Size: SideLarge, ChipsType: "LAYS_PLAIN"}, Drink: coke}, "", validation.RuleComboSideSize, ""},
		{"side missing size", ComboAttrs{Quantity: 1, Side: ComboSideAttrs{Name: SideSlaw}, Drink: coke}, "", "", "side.size"},
		{"drink missing name", ComboAttrs{Quantity: 1, Side: fries, Drink: ComboDrinkAttrs{Size: DrinkRegular}}, "", "", "drink.name"},
		{"zero quantity", ComboAttrs{Side: fries, Drink: coke}, "", "", "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := c.Combo(tt.attrs)
			switch {
			case tt.wantField != "":
				assertStructural(t, err, tt.wantField)
			case tt.wantRule != "":
				assertRule(t, err, tt.wantRule)
			default:
				require.NoError(t, err)
				assertPrice(t, tt.wantPrice, item.Price())
			}
		})
	}
}

func TestCombo_PremiumSidesAlwaysRejected(t *testing.T) {
	c := newTestConfigurator()
	premium := []SideName{SideChickenSalad, SideTunaSalad, SideCheeseFries, SideChilliCheeseFries}
	drinks := []ComboDrinkAttrs{
		{Name: DrinkCoke, Size: DrinkRegular},
		{Name: DrinkSweetTea, Size: DrinkLarge},
		{Name: DrinkBottledSoda, Size: DrinkBottle},
	}

	for _, side := range premium {
		for _, drink := range drinks {
			t.Run(string(side)+"/"+string(drink.Size), func(t *testing.T) {
				_, err := c.Combo(ComboAttrs{
					Quantity: 1,
					Side:     ComboSideAttrs{Name: side, Size: SideRegular},
					Drink:    drink,
				})
				assertRule(t, err, validation.RuleComboPremiumSide)
			})
		}
	}
}

func TestPrice_QuantityScalesLinearly(t *testing.T) {
	c := newTestConfigurator()
	build := []func(q int) (Item, error){
		func(q int) (Item, error) { return c.Hotdog(HotdogAttrs{Quantity: q, Meat: HotdogRedHotSausage}) },
		func(q int) (Item, error) {
			return c.Sandwich(SandwichAttrs{Quantity: q, Size: SandwichLarge, Bread: SandwichRye, Meat: SandwichBLT,
				Cheese: SandwichAmerican, AddOns: []SandwichAddOn{SandwichAddCheese, SandwichAddBacon}})
		},
		func(q int) (Item, error) {
			return c.EggSandwich(EggSandwichAttrs{Quantity: q, Bread: EggBreadCroissant, Egg: EggFried,
				AddOns: []EggSandwichAddOn{EggAddHashbrownOnSide, EggAddEgg}})
		},
		func(q int) (Item, error) {
			return c.Salad(SaladAttrs{Quantity: q, Choice: SaladChefTuna, Toppings: []SaladTopping{SaladEggs},
				AddOns: []SaladAddOn{SaladAddEggs}})
		},
		func(q int) (Item, error) { return c.Side(SideAttrs{Quantity: q, Name: SideCheeseFries, Size: SideLarge}) },
		func(q int) (Item, error) { return c.Drink(DrinkAttrs{Quantity: q, Size: DrinkLarge, Name: "ROOT_BEER"}) },
		func(q int) (Item, error) {
			return c.Combo(ComboAttrs{Quantity: q, Side: ComboSideAttrs{Name: SideSlaw, Size: SideRegular},
				Drink: ComboDrinkAttrs{Name: DrinkCoke, Size: DrinkLarge}})
		},
	}

	for _, b := range build {
		one, err := b(1)
		require.NoError(t, err)
		two, err := b(2)
		require.NoError(t, err)
		again, err := b(1)
		require.NoError(t, err)

		assert.True(t, two.Price().Equal(one.Price().Mul(decimal.NewFromInt(2))),
			"%s: %s x2 != %s", one.Category(), one.Price(), two.Price())
		assert.True(t, one.Price().Equal(again.Price()), "%s: not deterministic", one.Category())
		assert.LessOrEqual(t, one.Price().Exponent(), int32(0))
		assert.GreaterOrEqual(t, one.Price().Exponent(), int32(-2))
	}
}

func TestItem_AttributesAndString(t *testing.T) {
	c := newTestConfigurator()

	combo, err := c.Combo(ComboAttrs{
		Quantity:            2,
		Side:                ComboSideAttrs{Name: SideChips, ChipsType: "LAYS_BBQ"},
		Drink:               ComboDrinkAttrs{Name: DrinkSweetTea, Size: DrinkLarge},
		SpecialInstructions: "no ice",
	})
	require.NoError(t, err)

	attrs := combo.Attributes()
	assert.Equal(t, 2, attrs["quantity"])
	assert.Equal(t, "no ice", attrs["special_instructions"])
	assert.Equal(t, map[string]any{"name": "CHIPS", "chips_type": "LAYS_BBQ"}, attrs["side"])
	assert.Equal(t, map[string]any{"name": "SWEET_TEA", "size": "LARGE"}, attrs["drink"])

	text := combo.String()
	assert.Contains(t, text, "2 X Combo")
	assert.Contains(t, text, "Side: Lays BBQ")
	assert.Contains(t, text, "Drink: Large Homemade Sweet Tea")
	assert.Contains(t, text, "Special Instructions: no ice")

	hotdog, err := c.Hotdog(HotdogAttrs{Quantity: 1, Meat: HotdogBeef, Toppings: []HotdogTopping{HotdogRelish, HotdogMustard}})
	require.NoError(t, err)
	assert.Contains(t, hotdog.String(), "1 X Beef (100%) Hot Dog")
	assert.ElementsMatch(t, []string{"MUSTARD", "RELISH"}, hotdog.Attributes()["toppings"])
}
