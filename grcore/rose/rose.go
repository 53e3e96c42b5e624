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

// Package rose implements the daily inventory update.
//
// A GildedRose engine owns an ordered slice of *item.Item supplied by the
// caller. Each call to AdvanceDay walks that slice in order and, for every
// item:
//
//  1. checks the quality left by the previous day (item.VerifyQuality) and
//     aborts the whole call with the resulting error on a violation;
//  2. applies the rule of the item's category;
//  3. decrements SellIn.
//
// A legendary item is left untouched and ends the call: items after it in
// the slice are not updated that day. This is part of the contract, so
// inventories should list legendary items last unless that cut-off is
// wanted.
//
// Rules do not clamp their own results (apart from the ripening ceiling), so
// a single call can leave an item out of bounds; the next call reports it.
//
// The engine is synchronous and not safe for concurrent use. Independent
// inventories can be processed in parallel with one engine each.
package rose

import (
	"fmt"

	"dirpx.dev/gildedrose/grcore/errors"
	"dirpx.dev/gildedrose/grcore/model"
	"dirpx.dev/gildedrose/grcore/model/item"
	"go.uber.org/zap"
)

// GildedRose advances an inventory one day at a time.
type GildedRose struct {
	items []*item.Item
	log   *zap.Logger
	day   int
}

// New returns an engine over items. The slice and the items are used as
// given, not copied. A nil entry is reported by AdvanceDay as a
// *errors.ValidationError when the day reaches it.
func New(items []*item.Item, opts ...Option) *GildedRose {
	g := &GildedRose{
		items: items,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Items returns the slice the engine mutates.
func (g *GildedRose) Items() []*item.Item {
	return g.items
}

// Day returns the number of AdvanceDay calls that returned nil.
func (g *GildedRose) Day() int {
	return g.day
}

// AdvanceDay applies one day of aging to the inventory.
//
// On a quality violation it returns an error wrapping
// *item.NegativeQualityError or *item.ExcessiveQualityError. Items before
// the offending one have already been updated, the offending item and
// everything after it have not, and the day counter is not advanced. A nil
// entry aborts the day the same way with a *errors.ValidationError.
func (g *GildedRose) AdvanceDay() error {
	day := g.day + 1
	for i, it := range g.items {
		if it == nil {
			err := &errors.ValidationError{Type: "GildedRose", Field: "items", Reason: "nil item"}
			g.log.Warn("nil item in inventory", zap.Int("day", day), zap.Int("index", i))
			return fmt.Errorf("rose: day %d, item[%d]: %w", day, i, err)
		}
		if err := item.VerifyQuality(*it); err != nil {
			g.log.Warn("quality check failed",
				zap.Int("day", day),
				zap.Int("index", i),
				zap.String("item", model.SafeString(it, false)),
				zap.Error(err))
			return fmt.Errorf("rose: day %d, item[%d]: %w", day, i, err)
		}

		cat := it.Category()
		if apply(cat, it) == haltDay {
			g.log.Debug("legendary item ends the day",
				zap.Int("day", day),
				zap.Int("index", i),
				zap.Int("skipped", len(g.items)-i-1))
			break
		}

		g.log.Debug("item updated",
			zap.Int("day", day),
			zap.Int("index", i),
			zap.Stringer("category", cat),
			zap.String("item", model.SafeString(it, false)))
	}
	g.day = day
	return nil
}
