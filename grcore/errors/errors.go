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

// Package errors provides the error types shared by every gildedrose package.
//
// Two families live here. The first covers enum-like and model values that
// fail to parse, marshal, unmarshal or validate (ParseError, MarshalError,
// UnmarshalError, ValidationError). The second covers the quality invariant
// enforced by the daily update (NegativeQualityError, ExcessiveQualityError).
//
// All types are plain value carriers with stable message formats prefixed by
// "gildedrose: ". Callers SHOULD match them with errors.As rather than by
// comparing messages:
//
//	var neg *errors.NegativeQualityError
//	if stderrors.As(err, &neg) {
//	    // neg.Item, neg.Quality
//	}
//
// Packages that surface one of these errors MAY re-export it with a type
// alias so callers do not need to import this package:
//
//	type NegativeQualityError = errors.NegativeQualityError
package errors

import "strconv"

// ParseError is returned when a string cannot be mapped onto an enum-like
// value such as item.Category.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Category").
	Type string

	// Value is the text that could not be interpreted.
	Value string
}

// Error implements the error interface for ParseError.
//
// Format:
//
//	"gildedrose: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "gildedrose: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when an enum-like value outside its defined
// constants is serialized. It nearly always points at a value produced by a
// numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the numeric value that has no textual form.
	Value int
}

// Error implements the error interface for MarshalError.
//
// Format:
//
//	"gildedrose: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "gildedrose: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when raw JSON or YAML input cannot be decoded
// into a typed value.
//
// Data holds the offending payload. It is left out of Error() so large or
// private documents do not end up in logs; callers can log it separately.
type UnmarshalError struct {
	// Type is the logical name of the type being populated.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short explanation of the failure, without the type name.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// Format:
//
//	"gildedrose: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "gildedrose: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned by Validate methods and by operations that
// reject their input before doing any work (for example, prime.Factorize on
// a non-positive number).
type ValidationError struct {
	// Type is the logical name of the type or operation being validated.
	Type string

	// Field names the failing field. Empty when the error applies to the
	// whole value.
	Field string

	// Reason is a short explanation of why validation failed.
	Reason string

	// Value optionally carries the rejected value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// Format:
//
//	"gildedrose: invalid {Type}.{Field}: {Reason}" (Field set)
//	"gildedrose: invalid {Type}: {Reason}"         (Field empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "gildedrose: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "gildedrose: invalid " + e.Type + ": " + e.Reason
}

// NegativeQualityError reports an item whose quality dropped below zero.
//
// The daily update raises it while checking an item before that item's rule
// runs, so Quality is the value left behind by the previous day.
type NegativeQualityError struct {
	// Item is the name of the offending item.
	Item string

	// Quality is the observed quality.
	Quality int
}

// Error implements the error interface for NegativeQualityError.
//
// Format:
//
//	"gildedrose: negative quality {Quality} for item {Item}"
//
// Item is rendered quoted.
func (e *NegativeQualityError) Error() string {
	return "gildedrose: negative quality " + strconv.Itoa(e.Quality) + " for item " + strconv.Quote(e.Item)
}

// ExcessiveQualityError reports a bounded item whose quality exceeds the
// upper limit. Legendary items are never reported.
type ExcessiveQualityError struct {
	// Item is the name of the offending item.
	Item string

	// Quality is the observed quality.
	Quality int

	// Limit is the upper bound that was exceeded.
	Limit int
}

// Error implements the error interface for ExcessiveQualityError.
//
// Format:
//
//	"gildedrose: quality {Quality} exceeds {Limit} for item {Item}"
//
// Item is rendered quoted.
func (e *ExcessiveQualityError) Error() string {
	return "gildedrose: quality " + strconv.Itoa(e.Quality) + " exceeds " + strconv.Itoa(e.Limit) + " for item " + strconv.Quote(e.Item)
}
