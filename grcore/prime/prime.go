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

// Package prime decomposes positive integers into prime factors.
package prime

import "dirpx.dev/gildedrose/grcore/errors"

// Factorize returns the prime factors of n in non-decreasing order, with
// repeats, so that their product is n. Factorize(1) returns an empty slice.
//
// It uses plain trial division: the smallest divisor d >= 2 of what is left
// is appended and divided out until nothing but 1 remains. Only odd d are
// tried after 2. Once d*d exceeds
// the remainder, the remainder is prime and is appended last, so the work is
// bounded by the square root of n. A non-positive n returns a
// *errors.ValidationError.
func Factorize(n int) ([]int, error) {
	if n <= 0 {
		return nil, &errors.ValidationError{
			Type:   "Factorize",
			Field:  "n",
			Reason: "must be positive",
			Value:  n,
		}
	}

	factors := []int{}
	for d := 2; d <= n/d; {
		if n%d == 0 {
			factors = append(factors, d)
			n /= d
			continue
		}
		if d == 2 {
			d = 3
		} else {
			d += 2
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors, nil
}
