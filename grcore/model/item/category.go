/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package item

import (
	"encoding/json"

	"dirpx.dev/gildedrose/grcore/errors"
	"dirpx.dev/gildedrose/grcore/model"
	"gopkg.in/yaml.v3"
)

// Category selects the rule the daily update applies to an item.
//
// The set is closed. An item's category is derived from its name by exact
// match (see CategoryOf); adding a category means adding a constant here and
// a branch in the update rules, never a new type.
type Category int

const (
	// CategoryDefault covers every item without a special name. Quality
	// drops by one per day, or by two once the sell-by date has passed.
	CategoryDefault Category = iota

	// CategoryRipening covers items that improve with age. Quality rises by
	// one per day and never passes MaxQuality.
	CategoryRipening

	// CategoryEventPass covers tickets whose value climbs as the event
	// approaches and drops to zero once it is over.
	CategoryEventPass

	// CategoryLegendary covers items that never change. They are exempt from
	// the upper quality bound, and reaching one ends the day's update for
	// every item after it.
	CategoryLegendary
)

// Item names that select a special category. Matching is exact and
// case-sensitive.
const (
	NameAgedBrie        = "Aged Brie"
	NameBackstagePasses = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras        = "Sulfuras, Hand of Ragnaros"
)

// Textual forms of Category used in JSON, YAML and logs.
const (
	CategoryDefaultStr   = "default"
	CategoryRipeningStr  = "ripening"
	CategoryEventPassStr = "event-pass"
	CategoryLegendaryStr = "legendary"
)

var categoryByName = map[string]Category{
	NameAgedBrie:        CategoryRipening,
	NameBackstagePasses: CategoryEventPass,
	NameSulfuras:        CategoryLegendary,
}

// CategoryOf returns the category selected by an item name. Unknown names,
// including near misses such as "aged brie", map to CategoryDefault.
func CategoryOf(name string) Category {
	if c, ok := categoryByName[name]; ok {
		return c
	}
	return CategoryDefault
}

// ParseCategory converts a textual form back into a Category.
//
// Only the canonical lowercase forms are accepted. Any other input returns a
// *errors.ParseError.
func ParseCategory(s string) (Category, error) {
	switch s {
	case CategoryDefaultStr:
		return CategoryDefault, nil
	case CategoryRipeningStr:
		return CategoryRipening, nil
	case CategoryEventPassStr:
		return CategoryEventPass, nil
	case CategoryLegendaryStr:
		return CategoryLegendary, nil
	default:
		return CategoryDefault, &errors.ParseError{Type: "Category", Value: s}
	}
}

// String returns the canonical textual form, or "unknown" for values outside
// the defined constants.
func (c Category) String() string {
	switch c {
	case CategoryDefault:
		return CategoryDefaultStr
	case CategoryRipening:
		return CategoryRipeningStr
	case CategoryEventPass:
		return CategoryEventPassStr
	case CategoryLegendary:
		return CategoryLegendaryStr
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the defined constants.
func (c Category) Valid() bool {
	return c >= CategoryDefault && c <= CategoryLegendary
}

// Bounded reports whether items of this category must keep quality at or
// below MaxQuality.
func (c Category) Bounded() bool {
	return c != CategoryLegendary
}

// TypeName returns "Category".
func (c Category) TypeName() string {
	return "Category"
}

// Redacted returns the same text as String; categories carry nothing
// sensitive.
func (c Category) Redacted() string {
	return c.String()
}

// IsZero reports whether c is CategoryDefault. The zero value is valid.
func (c Category) IsZero() bool {
	return c == CategoryDefault
}

// Equal reports whether other is a Category or *Category with the same value.
func (c Category) Equal(other any) bool {
	switch v := other.(type) {
	case Category:
		return c == v
	case *Category:
		if v == nil {
			return false
		}
		return c == *v
	default:
		return false
	}
}

// Validate returns a *errors.ValidationError when c is not a defined
// constant.
func (c Category) Validate() error {
	if !c.Valid() {
		return &errors.ValidationError{
			Type:   "Category",
			Reason: "invalid Category value",
			Value:  int(c),
		}
	}
	return nil
}

// MarshalJSON encodes c as its textual form.
func (c Category) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Category", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts the textual form or the integer value.
func (c *Category) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Category", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseCategory(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: err.Error()}
	}
	if !Category(i).Valid() {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: "invalid numeric value"}
	}
	*c = Category(i)
	return nil
}

// MarshalYAML encodes c as its textual form.
func (c Category) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Category", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML accepts the textual form.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: model.NodeSource(node), Reason: err.Error()}
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Category", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var _ model.Model = (*Category)(nil)
