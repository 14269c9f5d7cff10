package menu

import "strings"

// HotdogMeat is the dog itself.
type HotdogMeat string

const (
	HotdogRed           HotdogMeat = "RED"
	HotdogRedFootlong   HotdogMeat = "RED_FOOTLONG"
	HotdogItalian       HotdogMeat = "ITALIAN_SAUSAGE"
	HotdogBeef          HotdogMeat = "BEEF"
	HotdogBeefFootlong  HotdogMeat = "BEEF_FOOTLONG"
	HotdogRedHotSausage HotdogMeat = "RED_HOT_SAUSAGE"
	HotdogTurkey        HotdogMeat = "TURKEY"
	HotdogSmokedBeef    HotdogMeat = "SMOKED_BEEF"
	HotdogJalapeno      HotdogMeat = "JALAPENO"
	HotdogKielbasa      HotdogMeat = "KIELBASA"
	HotdogSausage       HotdogMeat = "SAUSAGE"
)

var hotdogMeats = newOptionList(
	option[HotdogMeat]{HotdogRed, "Red (Pork & Beef)"},
	option[HotdogMeat]{HotdogRedFootlong, "Red Footlong (Pork & Beef)"},
	option[HotdogMeat]{HotdogItalian, "Italian Sausage"},
	option[HotdogMeat]{HotdogBeef, "Beef (100%)"},
	option[HotdogMeat]{HotdogBeefFootlong, "Beef Footlong 1/3lb"},
	option[HotdogMeat]{HotdogRedHotSausage, "Red Hot Sausage"},
	option[HotdogMeat]{HotdogTurkey, "Turkey"},
	option[HotdogMeat]{HotdogSmokedBeef, "Smoked Beef"},
	option[HotdogMeat]{HotdogJalapeno, "Jalapeno"},
	option[HotdogMeat]{HotdogKielbasa, "Kielbasa"},
	option[HotdogMeat]{HotdogSausage, "Sausage (Pork & Beef)"},
)

func (v HotdogMeat) Valid() bool   { return hotdogMeats.valid(v) }
func (v HotdogMeat) Label() string { return hotdogMeats.label(v) }

// HotdogTopping is an included condiment.
type HotdogTopping string

const (
	HotdogMustard          HotdogTopping = "MUSTARD"
	HotdogKetchup          HotdogTopping = "KETCHUP"
	HotdogChili            HotdogTopping = "CHILI"
	HotdogOnions           HotdogTopping = "ONIONS"
	HotdogSlaw             HotdogTopping = "SLAW"
	HotdogPickles          HotdogTopping = "PICKLES"
	HotdogKraut            HotdogTopping = "KRAUT"
	HotdogCheese           HotdogTopping = "CHEESE"
	HotdogRelish           HotdogTopping = "RELISH"
	HotdogGrilledOnions    HotdogTopping = "GRILLED_ONIONS"
	HotdogGrilledPeppers   HotdogTopping = "GRILLED_PEPPERS"
	HotdogSpicyMustard     HotdogTopping = "SPICY_MUSTARD"
	HotdogRedOnionSauce    HotdogTopping = "RED_ONION_SAUCE"
	HotdogJalapenos        HotdogTopping = "JALAPENOS"
	HotdogMayo             HotdogTopping = "MAYO"
	HotdogHotCherryPeppers HotdogTopping = "HOT_CHERRY_PEPPERS"
)

var hotdogToppings = newOptionList(
	option[HotdogTopping]{HotdogMustard, "Mustard"},
	option[HotdogTopping]{HotdogKetchup, "Ketchup"},
	option[HotdogTopping]{HotdogChili, "Chili"},
	option[HotdogTopping]{HotdogOnions, "Onions"},
	option[HotdogTopping]{HotdogSlaw, "Slaw"},
	option[HotdogTopping]{HotdogPickles, "Pickles"},
	option[HotdogTopping]{HotdogKraut, "Kraut"},
	option[HotdogTopping]{HotdogCheese, "Cheese"},
	option[HotdogTopping]{HotdogRelish, "Relish"},
	option[HotdogTopping]{HotdogGrilledOnions, "Grilled Onions"},
	option[HotdogTopping]{HotdogGrilledPeppers, "Grilled Peppers"},
	option[HotdogTopping]{HotdogSpicyMustard, "Spicy Mustard"},
	option[HotdogTopping]{HotdogRedOnionSauce, "Red Onion Sauce"},
	option[HotdogTopping]{HotdogJalapenos, "Jalapenos"},
	option[HotdogTopping]{HotdogMayo, "Mayo"},
	option[HotdogTopping]{HotdogHotCherryPeppers, "Hot Cherry Peppers"},
)

func (v HotdogTopping) Valid() bool   { return hotdogToppings.valid(v) }
func (v HotdogTopping) Label() string { return hotdogToppings.label(v) }

// HotdogAttrs is the hotdog attribute record.
type HotdogAttrs struct {
	Quantity            int             `json:"quantity"`
	Meat                HotdogMeat      `json:"dog_type"`
	Toppings            []HotdogTopping `json:"toppings,omitempty"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// Hotdog is a configured hotdog line.
type Hotdog struct {
	base
	meat     HotdogMeat
	toppings OptionSet[HotdogTopping]
}

// Hotdog validates attrs and prices the line by meat.
func (c *Configurator) Hotdog(attrs HotdogAttrs) (*Hotdog, error) {
	if err := checkCommon(attrs.Quantity, attrs.SpecialInstructions); err != nil {
		return nil, err
	}
	if err := requireOption(hotdogMeats, "dog_type", attrs.Meat); err != nil {
		return nil, err
	}
	toppings, err := buildSet(hotdogToppings, "toppings", attrs.Toppings)
	if err != nil {
		return nil, err
	}

	unit := c.catalog.tables.Hotdog[attrs.Meat]
	return &Hotdog{
		base: base{
			quantity:     attrs.Quantity,
			instructions: attrs.SpecialInstructions,
			price:        linePrice(unit, attrs.Quantity),
		},
		meat:     attrs.Meat,
		toppings: toppings,
	}, nil
}

func (h *Hotdog) Category() Category                 { return CategoryHotdog }
func (h *Hotdog) Meat() HotdogMeat                   { return h.meat }
func (h *Hotdog) Toppings() OptionSet[HotdogTopping] { return h.toppings }

func (h *Hotdog) Attributes() map[string]any {
	return h.attributes(map[string]any{
		"dog_type": string(h.meat),
		"toppings": h.toppings.strings(),
	})
}

func (h *Hotdog) String() string {
	var b strings.Builder
	b.WriteString(headline(h.quantity, h.meat.Label()+" Hot Dog"))
	writeList(&b, "Toppings", labelsOf(hotdogToppings, h.toppings))
	writeLine(&b, "Special Instructions", h.instructions)
	return b.String()
}

