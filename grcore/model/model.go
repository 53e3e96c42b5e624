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

// Package model defines the contracts shared by gildedrose value types such
// as item.Item, item.Category, semver.Version and stock.Stock.
//
// A type that implements Model can be validated, serialized to JSON and
// YAML, rendered for logs, identified by name and checked for emptiness.
// The generic helpers in this package (ValidateAll, ToJSON, FromYAML, ...)
// are constrained to Model so that a type missing part of the contract fails
// at compile time rather than at run time.
//
// Model types are plain values. Methods never mutate their receiver unless
// documented (the Unmarshal family). Concurrent reads are safe; concurrent
// writes need external synchronization.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model combines every contract a gildedrose value type MUST satisfy.
//
//	var _ model.Model = (*Item)(nil) // compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST return nil if and only if the value is usable. It MUST be
// deterministic, free of side effects and MUST NOT mutate the receiver.
// Error values SHOULD be one of the types in grcore/errors so callers can
// match them with errors.As.
type Validatable interface {
	Validate() error
}

// Serializable is implemented by types with JSON and YAML forms.
//
// Marshal methods MUST validate first and refuse to encode an invalid value.
// Unmarshal methods MUST validate after decoding and return the validation
// error; the receiver MUST NOT be used after a failed unmarshal.
//
// Implementations use a local alias type to reach the default encoding
// without recursing into themselves:
//
//	func (i *Item) UnmarshalJSON(data []byte) error {
//	    type alias Item
//	    if err := json.Unmarshal(data, (*alias)(i)); err != nil {
//	        return err
//	    }
//	    return i.Validate()
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that can be rendered as text.
type Loggable interface {
	// Redacted returns a form safe for production logs.
	Redacted() string

	// String returns the full form. It MAY include data that Redacted
	// hides.
	String() string
}

// Identifiable is implemented by types that report a canonical name.
type Identifiable interface {
	// TypeName returns a constant CamelCase name without package prefix.
	TypeName() string
}

// ZeroCheckable is implemented by types that can tell whether they carry any
// data.
type ZeroCheckable interface {
	IsZero() bool
}

// Comparable is implemented by types with a value equality.
type Comparable[T any] interface {
	Equal(other T) bool
}

// Cloneable is implemented by types that can produce an independent copy.
type Cloneable[T any] interface {
	Clone() T
}
