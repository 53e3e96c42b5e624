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

// Package item defines the inventory item, the closed set of categories that
// decide how an item ages, and the quality bounds checked before each daily
// update.
package item

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"dirpx.dev/gildedrose/grcore/errors"
	"dirpx.dev/gildedrose/grcore/model"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Item is one inventory entry.
//
// All three fields are meant to be read and written directly by callers.
// The daily update mutates items in place through the pointers it was given,
// so a caller holding the same *Item observes every change.
type Item struct {
	// Name identifies the item and selects its Category. Names need not be
	// unique within an inventory.
	Name string `json:"name" yaml:"name" validate:"required"`

	// SellIn is the number of days left before the sell-by date. It goes
	// negative once the date has passed and has no floor.
	SellIn int `json:"sell_in" yaml:"sell_in"`

	// Quality is the item's value score, kept within [MinQuality,
	// MaxQuality] except for legendary items, which have no upper bound.
	Quality int `json:"quality" yaml:"quality"`
}

// New returns a pointer to an Item with the given fields.
func New(name string, sellIn, quality int) *Item {
	return &Item{Name: name, SellIn: sellIn, Quality: quality}
}

// Category returns the category selected by the item's name.
func (i Item) Category() Category {
	return CategoryOf(i.Name)
}

// Validate checks the quality bounds first and then the struct-tag rules.
//
// Quality violations come back as *NegativeQualityError or
// *ExcessiveQualityError; a tag violation (such as an empty Name) comes back
// as *errors.ValidationError.
func (i Item) Validate() error {
	if err := VerifyQuality(i); err != nil {
		return err
	}
	if err := validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &errors.ValidationError{
				Type:   "Item",
				Field:  fe.Field(),
				Reason: "failed " + fe.Tag() + " rule",
				Value:  fe.Value(),
			}
		}
		return err
	}
	return nil
}

// TypeName returns "Item".
func (i Item) TypeName() string {
	return "Item"
}

// IsZero reports whether every field holds its zero value.
func (i Item) IsZero() bool {
	return i.Name == "" && i.SellIn == 0 && i.Quality == 0
}

// String renders the item as Item{Name:"...", SellIn:N, Quality:N}.
func (i Item) String() string {
	return fmt.Sprintf("Item{Name:%q, SellIn:%d, Quality:%d}", i.Name, i.SellIn, i.Quality)
}

// Redacted returns the same text as String.
func (i Item) Redacted() string {
	return i.String()
}

// Equal reports whether both items have the same name, sell-in and quality.
func (i Item) Equal(other Item) bool {
	return i == other
}

// Clone returns a copy that shares nothing with i.
func (i Item) Clone() Item {
	return i
}

// MarshalJSON validates i and encodes it with its json tags.
func (i Item) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	type alias Item
	return json.Marshal((alias)(i))
}

// UnmarshalJSON decodes data into i and validates the result.
func (i *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	if err := json.Unmarshal(data, (*alias)(i)); err != nil {
		return &errors.UnmarshalError{Type: "Item", Data: data, Reason: err.Error()}
	}
	return i.Validate()
}

// MarshalYAML validates i and encodes it with its yaml tags.
func (i Item) MarshalYAML() (any, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	type alias Item
	return (alias)(i), nil
}

// UnmarshalYAML decodes node into i and validates the result.
func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	type alias Item
	if err := node.Decode((*alias)(i)); err != nil {
		return &errors.UnmarshalError{Type: "Item", Data: model.NodeSource(node), Reason: err.Error()}
	}
	return i.Validate()
}

var (
	_ model.Model            = (*Item)(nil)
	_ model.Comparable[Item] = Item{}
	_ model.Cloneable[Item]  = Item{}
)
