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

// Package stock reads and writes inventory documents.
//
// A document is a schema version plus an ordered list of items:
//
//	schema: 1.0.0
//	items:
//	  - name: +5 Dexterity Vest
//	    sell_in: 10
//	    quality: 20
//	  - name: Sulfuras, Hand of Ragnaros
//	    sell_in: 0
//	    quality: 80
//
// The package works on bytes only. Where the bytes come from and whether a
// document is written back after a day is up to the caller.
package stock

import (
	"encoding/json"
	"fmt"
	"strconv"

	"dirpx.dev/gildedrose/grcore/errors"
	"dirpx.dev/gildedrose/grcore/model"
	"dirpx.dev/gildedrose/grcore/model/item"
	"dirpx.dev/gildedrose/grcore/model/semver"
	"dirpx.dev/gildedrose/grcore/rose"
	"gopkg.in/yaml.v3"
)

// CurrentSchema is the schema version written by this package. Documents
// are readable when their major version matches.
var CurrentSchema = semver.MustParseVersion("1.0.0")

// Stock is a decoded inventory document.
type Stock struct {
	Schema semver.Version `json:"schema" yaml:"schema"`
	Items  []*item.Item   `json:"items" yaml:"items"`
}

// record is the wire form of an item. Decoding into it skips the per-item
// validation of item.Item so Validate can report every bad item at once.
type record struct {
	Name    string `json:"name" yaml:"name"`
	SellIn  int    `json:"sell_in" yaml:"sell_in"`
	Quality int    `json:"quality" yaml:"quality"`
}

type document struct {
	Schema semver.Version `json:"schema" yaml:"schema"`
	Items  []record       `json:"items" yaml:"items"`
}

func (d document) stock() Stock {
	items := make([]*item.Item, len(d.Items))
	for i, r := range d.Items {
		items[i] = item.New(r.Name, r.SellIn, r.Quality)
	}
	return Stock{Schema: d.Schema, Items: items}
}

// New returns a Stock at CurrentSchema holding items.
func New(items ...*item.Item) Stock {
	return Stock{Schema: CurrentSchema, Items: items}
}

// Engine returns a rose engine over the stock's items. Advancing the engine
// mutates s.Items.
func (s Stock) Engine(opts ...rose.Option) *rose.GildedRose {
	return rose.New(s.Items, opts...)
}

// Validate checks the schema version and every item.
//
// Item failures are collected with model.ValidateAll, so one call reports
// all of them.
func (s Stock) Validate() error {
	if s.Schema.IsZero() {
		return &errors.ValidationError{Type: "Stock", Field: "Schema", Reason: "must be set"}
	}
	if err := s.Schema.Validate(); err != nil {
		return err
	}
	if !CurrentSchema.Compatible(s.Schema) {
		return &errors.ValidationError{
			Type:   "Stock",
			Field:  "Schema",
			Reason: "unsupported major version " + strconv.Itoa(s.Schema.Major) + ", want " + strconv.Itoa(CurrentSchema.Major),
			Value:  s.Schema.String(),
		}
	}
	for i, it := range s.Items {
		if it == nil {
			return &errors.ValidationError{Type: "Stock", Field: "Items", Reason: "nil item at position " + strconv.Itoa(i)}
		}
	}
	return model.ValidateAll(s.Items)
}

// TypeName returns "Stock".
func (s Stock) TypeName() string {
	return "Stock"
}

// IsZero reports whether s has neither a schema nor items.
func (s Stock) IsZero() bool {
	return s.Schema.IsZero() && len(s.Items) == 0
}

// String summarizes s as Stock{Schema:X, Items:N}.
func (s Stock) String() string {
	return fmt.Sprintf("Stock{Schema:%s, Items:%d}", s.Schema, len(s.Items))
}

// Redacted returns the same text as String.
func (s Stock) Redacted() string {
	return s.String()
}

// MarshalJSON validates s and encodes it.
func (s Stock) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Stock
	return json.Marshal((alias)(s))
}

// UnmarshalJSON decodes data into s and validates the result.
func (s *Stock) UnmarshalJSON(data []byte) error {
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return &errors.UnmarshalError{Type: "Stock", Data: data, Reason: err.Error()}
	}
	*s = d.stock()
	return s.Validate()
}

// MarshalYAML validates s and encodes it.
func (s Stock) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Stock
	return (alias)(s), nil
}

// UnmarshalYAML decodes node into s and validates the result.
func (s *Stock) UnmarshalYAML(node *yaml.Node) error {
	var d document
	if err := node.Decode(&d); err != nil {
		return &errors.UnmarshalError{Type: "Stock", Data: model.NodeSource(node), Reason: err.Error()}
	}
	*s = d.stock()
	return s.Validate()
}

// DecodeJSON parses and validates a JSON document.
func DecodeJSON(data []byte) (Stock, error) {
	s := &Stock{}
	if err := model.FromJSON(data, &s); err != nil {
		return Stock{}, err
	}
	return *s, nil
}

// DecodeYAML parses and validates a YAML document.
func DecodeYAML(data []byte) (Stock, error) {
	s := &Stock{}
	if err := model.FromYAML(data, &s); err != nil {
		return Stock{}, err
	}
	return *s, nil
}

// EncodeJSON validates s and encodes it as JSON.
func EncodeJSON(s Stock) ([]byte, error) {
	return model.ToJSON(&s)
}

// EncodeYAML validates s and encodes it as YAML.
func EncodeYAML(s Stock) ([]byte, error) {
	return model.ToYAML(&s)
}

var _ model.Model = (*Stock)(nil)
