package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/stevesplace/order-service/internal/domain/menu"
	"github.com/stevesplace/order-service/internal/domain/validation"
	"github.com/stevesplace/order-service/internal/metrics"
)

// ItemFactory turns raw item payloads into priced menu items.
type ItemFactory interface {
	// ConfigureItem decodes attrs strictly for category and builds the item.
	ConfigureItem(category menu.Category, attrs json.RawMessage) (menu.Item, error)
	// ConfigureTagged reads the category from the payload's "type" field and
	// configures the rest of the payload as that category's attributes.
	ConfigureTagged(payload json.RawMessage) (menu.Item, error)
	Catalog() *menu.Catalog
}

// ItemFactoryService implements ItemFactory over a menu.Configurator.
type ItemFactoryService struct {
	configurator *menu.Configurator
}

// NewItemFactory creates an item factory pricing from catalog. A nil catalog
// uses the default menu.
func NewItemFactory(catalog *menu.Catalog) *ItemFactoryService {
	if catalog == nil {
		catalog = menu.DefaultCatalog()
	}
	return &ItemFactoryService{configurator: menu.NewConfigurator(catalog)}
}

// Catalog returns the catalog items are priced from.
func (f *ItemFactoryService) Catalog() *menu.Catalog {
	return f.configurator.Catalog()
}

// ConfigureItem implements ItemFactory.
func (f *ItemFactoryService) ConfigureItem(category menu.Category, attrs json.RawMessage) (menu.Item, error) {
	item, err := f.configure(category, attrs)
	metrics.RecordItemConfigured(string(category), outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (f *ItemFactoryService) configure(category menu.Category, attrs json.RawMessage) (menu.Item, error) {
	c := f.configurator
	switch category {
	case menu.CategoryHotdog:
		return build(attrs, c.Hotdog)
	case menu.CategorySandwich:
		return build(attrs, c.Sandwich)
	case menu.CategoryEggSandwich:
		return build(attrs, c.EggSandwich)
	case menu.CategorySalad:
		return build(attrs, c.Salad)
	case menu.CategorySide:
		return build(attrs, c.Side)
	case menu.CategoryDrink:
		return build(attrs, c.Drink)
	case menu.CategoryCombo:
		return build(attrs, c.Combo)
	default:
		return nil, validation.Structuralf("type", "%q is not a menu category", string(category))
	}
}

// ConfigureTagged implements ItemFactory.
func (f *ItemFactoryService) ConfigureTagged(payload json.RawMessage) (menu.Item, error) {
	members, ok, err := objectMembers(payload)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, validation.Structural("", "item must be a JSON object")
	}

	var rawTag json.RawMessage
	attrs := make([]member, 0, len(members))
	for _, m := range members {
		if m.key == "type" {
			rawTag = m.value
			continue
		}
		attrs = append(attrs, m)
	}
	if rawTag == nil {
		return nil, validation.Structural("type", "is required")
	}
	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil {
		return nil, validation.Structural("type", "must be a string")
	}
	category, err := menu.ParseCategory(tag)
	if err != nil {
		metrics.RecordItemConfigured("unknown", string(validation.KindStructural))
		return nil, err
	}

	return f.ConfigureItem(category, encodeMembers(attrs))
}

// build strictly decodes attrs into the category's attribute record and runs
// its configurator.
func build[A any, I menu.Item](attrs json.RawMessage, configure func(A) (I, error)) (menu.Item, error) {
	var a A
	if err := decodeStrict(attrs, &a); err != nil {
		return nil, err
	}
	item, err := configure(a)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// decodeStrict rejects unknown fields, mistyped values and trailing data as
// structural failures.
func decodeStrict(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return validation.Structural("", "attributes are required")
	}

	if t := reflect.TypeOf(v); t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct {
		if err := checkFields(data, t.Elem()); err != nil {
			return err
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return decodeFailure(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return validation.Structural("", "unexpected data after item attributes")
	}
	return nil
}

// member is one key of a JSON object with its raw value.
type member struct {
	key   string
	value json.RawMessage
}

// objectMembers lists the members of a JSON object in document order. ok is
// false when data is not a well-formed object. A repeated key is a
// structural failure.
func objectMembers(data []byte) (members []member, ok bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, false, nil
	}

	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false, nil
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false, nil
		}
		if seen[key] {
			return nil, true, validation.Structural(key, "is given more than once")
		}
		seen[key] = true
		members = append(members, member{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, false, nil
	}
	return members, true, nil
}

func encodeMembers(members []member) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(m.key)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// checkFields accepts only the exact json names declared on t, recursing into
// nested records. encoding/json alone would match names case-insensitively.
// Malformed input is left for the decoder to report.
func checkFields(data []byte, t reflect.Type) error {
	members, ok, err := objectMembers(data)
	if err != nil || !ok {
		return err
	}

	fields := jsonFields(t)
	for _, m := range members {
		ft, known := fields[m.key]
		if !known {
			return validation.Structural(m.key, "is not a recognized field")
		}
		if ft.Kind() == reflect.Struct {
			if err := checkFields(m.value, ft); err != nil {
				return err
			}
		}
	}
	return nil
}

func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		fields[name] = ft
	}
	return fields
}

func decodeFailure(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return validation.Structuralf(typeErr.Field, "must be a %s", typeErr.Type.Kind())
	}

	// encoding/json reports unknown fields only through the message text.
	const unknown = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, unknown) {
		return validation.Structural(strings.Trim(strings.TrimPrefix(msg, unknown), `"`), "is not a recognized field")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return validation.Structural("", "malformed item attributes")
	}
	return validation.Structural("", err.Error())
}

// outcomeOf labels a result for metrics: "ok", a failure kind or "error".
func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := validation.KindOf(err); kind != validation.KindNone {
		return string(kind)
	}
	return "error"
}

var _ ItemFactory = (*ItemFactoryService)(nil)
