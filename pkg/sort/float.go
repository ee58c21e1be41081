// Copyright 2024 The dpsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"math"

	"golang.org/x/exp/constraints"
)

// sortFloats sorts a into the total order where NaN sorts after every
// other value and -0.0 sorts immediately before +0.0. IEEE comparison
// gives neither property, so the engine never sees those values:
// a pre-pass moves NaNs to the tail and canonicalizes -0.0 to +0.0,
// and a post-pass restores the counted negative zeros at the head of
// the zero run.
func sortFloats[T constraints.Float](a []T, parallelism int) {
	numNegativeZero := 0
	end := len(a)

	for k := end - 1; k >= 0; k-- {
		ak := a[k]
		if ak != ak {
			// NaN, move behind the active range.
			end--
			a[k] = a[end]
			a[end] = ak
		} else if ak == 0 && math.Signbit(float64(ak)) {
			numNegativeZero++
			a[k] = 0
		}
	}

	if parallelism > 1 {
		parallelSortRange(a[:end], orderedLess[T], parallelism)
	} else {
		sortRange(nil, a, orderedLess[T], 0, 0, end)
	}

	if numNegativeZero == 0 {
		return
	}

	negativeZero := T(math.Copysign(0, -1))
	for k := findZeroStart(a, 0, end-1); numNegativeZero > 0 && k < end; k++ {
		if a[k] == 0 && !math.Signbit(float64(a[k])) {
			a[k] = negativeZero
			numNegativeZero--
		}
	}
}

// findZeroStart returns the first index in a[low:high+1] holding a
// non-negative value. The range is sorted, so this is where restored
// negative zeros must begin.
func findZeroStart[T constraints.Float](a []T, low, high int) int {
	for low <= high {
		mid := (low + high) >> 1
		if a[mid] < 0 {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return low
}
