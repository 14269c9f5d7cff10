package menu

import (
	"encoding/json"
	"slices"
)

// option pairs a symbolic value with its display label.
type option[T ~string] struct {
	value T
	label string
}

// optionList is the closed, ordered set of legal values for one slot.
type optionList[T ~string] struct {
	defs  []option[T]
	index map[T]int
}

func newOptionList[T ~string](defs ...option[T]) optionList[T] {
	index := make(map[T]int, len(defs))
	for i, d := range defs {
		index[d.value] = i
	}
	return optionList[T]{defs: defs, index: index}
}

func (l optionList[T]) valid(v T) bool {
	_, ok := l.index[v]
	return ok
}

func (l optionList[T]) label(v T) string {
	if i, ok := l.index[v]; ok {
		return l.defs[i].label
	}
	return string(v)
}

func (l optionList[T]) values() []T {
	out := make([]T, len(l.defs))
	for i, d := range l.defs {
		out[i] = d.value
	}
	return out
}

func (l optionList[T]) rank(v T) int {
	if i, ok := l.index[v]; ok {
		return i
	}
	return len(l.defs)
}

// OptionSet is a deduplicated multi-valued selection. Membership and size are
// what matter; Values returns members in menu order so output is stable.
type OptionSet[T ~string] struct {
	items []T
}

// buildSet validates every raw value against list and removes duplicates.
func buildSet[T ~string](list optionList[T], field string, raw []T) (OptionSet[T], error) {
	if len(raw) == 0 {
		return OptionSet[T]{}, nil
	}
	seen := make(map[T]struct{}, len(raw))
	items := make([]T, 0, len(raw))
	for _, v := range raw {
		if !list.valid(v) {
			return OptionSet[T]{}, invalidOption(field, string(v))
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		items = append(items, v)
	}
	slices.SortFunc(items, func(a, b T) int { return list.rank(a) - list.rank(b) })
	return OptionSet[T]{items: items}, nil
}

// Has reports whether v is selected.
func (s OptionSet[T]) Has(v T) bool {
	return slices.Contains(s.items, v)
}

// HasAny reports whether any of vs is selected.
func (s OptionSet[T]) HasAny(vs ...T) bool {
	for _, v := range vs {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct selections.
func (s OptionSet[T]) Len() int { return len(s.items) }

// Values returns a copy of the selections.
func (s OptionSet[T]) Values() []T {
	return slices.Clone(s.items)
}

func (s OptionSet[T]) strings() []string {
	out := make([]string, len(s.items))
	for i, v := range s.items {
		out[i] = string(v)
	}
	return out
}

// MarshalJSON encodes the set as a JSON array, never null.
func (s OptionSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.strings())
}
