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

package rose

import "dirpx.dev/gildedrose/grcore/model/item"

// step tells AdvanceDay whether to move on to the next item.
type step int

const (
	nextItem step = iota
	haltDay
)

// apply runs the rule for cat on it and, unless the day halts, decrements
// SellIn.
func apply(cat item.Category, it *item.Item) step {
	switch cat {
	case item.CategoryLegendary:
		return haltDay
	case item.CategoryRipening:
		ripen(it)
	case item.CategoryEventPass:
		admit(it)
	default:
		degrade(it)
	}
	it.SellIn--
	return nextItem
}

func ripen(it *item.Item) {
	if it.Quality < item.MaxQuality {
		it.Quality++
	}
}

// admit uses SellIn before the day's decrement. The result is not capped.
func admit(it *item.Item) {
	switch {
	case it.SellIn < 0:
		it.Quality = 0
	case it.SellIn <= 5:
		it.Quality += 3
	case it.SellIn <= 10:
		it.Quality += 2
	default:
		it.Quality++
	}
}

// degrade has no floor; a negative result is caught by the next day's check.
func degrade(it *item.Item) {
	if it.SellIn < 0 {
		it.Quality -= 2
	} else {
		it.Quality--
	}
}
