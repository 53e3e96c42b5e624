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

import "dirpx.dev/gildedrose/grcore/errors"

// Quality bounds for bounded categories.
const (
	MinQuality = 0
	MaxQuality = 50
)

type (
	NegativeQualityError  = errors.NegativeQualityError
	ExcessiveQualityError = errors.ExcessiveQualityError
)

// VerifyQuality checks i against the quality bounds of its category.
//
// A negative quality is reported before an excessive one. Legendary items
// are only held to the lower bound.
func VerifyQuality(i Item) error {
	if i.Quality < MinQuality {
		return &NegativeQualityError{Item: i.Name, Quality: i.Quality}
	}
	if i.Quality > MaxQuality && i.Category().Bounded() {
		return &ExcessiveQualityError{Item: i.Name, Quality: i.Quality, Limit: MaxQuality}
	}
	return nil
}
