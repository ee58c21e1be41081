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

// sort5 orders the five sample elements with a fixed 9-comparator
// sorting network.
func sort5[T any](a []T, e1, e2, e3, e4, e5 int, less lessFn[T]) {
	if less(a[e2], a[e1]) {
		a[e1], a[e2] = a[e2], a[e1]
	}
	if less(a[e5], a[e4]) {
		a[e4], a[e5] = a[e5], a[e4]
	}
	if less(a[e3], a[e1]) {
		a[e1], a[e3] = a[e3], a[e1]
	}
	if less(a[e3], a[e2]) {
		a[e2], a[e3] = a[e3], a[e2]
	}
	if less(a[e4], a[e1]) {
		a[e1], a[e4] = a[e4], a[e1]
	}
	if less(a[e4], a[e3]) {
		a[e3], a[e4] = a[e4], a[e3]
	}
	if less(a[e5], a[e2]) {
		a[e2], a[e5] = a[e5], a[e2]
	}
	if less(a[e3], a[e2]) {
		a[e2], a[e3] = a[e3], a[e2]
	}
	if less(a[e5], a[e4]) {
		a[e4], a[e5] = a[e5], a[e4]
	}
}

// partitionDualPivot splits a[low:high) around the pivots at p1 and p2
// (p1 value not greater than p2 value) and returns indices (lower,
// upper) such that
//
//	a[low:lower)    < pivot1
//	a[lower]       == pivot1
//	a[lower+1:upper) in [pivot1, pivot2]
//	a[upper]       == pivot2
//	a[upper+1:high) > pivot2
func partitionDualPivot[T any](a []T, low, high, p1, p2 int, less lessFn[T]) (int, int) {
	a[low], a[p1] = a[p1], a[low]
	a[high-1], a[p2] = a[p2], a[high-1]

	pivot1 := a[low]
	pivot2 := a[high-1]

	lt := low + 1
	gt := high - 2

	for k := lt; k <= gt; {
		if less(a[k], pivot1) {
			a[k], a[lt] = a[lt], a[k]
			lt++
			k++
		} else if less(pivot2, a[k]) {
			for k < gt && less(pivot2, a[gt]) {
				gt--
			}
			a[k], a[gt] = a[gt], a[k]
			gt--
			if less(a[k], pivot1) {
				a[k], a[lt] = a[lt], a[k]
				lt++
			}
			k++
		} else {
			k++
		}
	}

	lt--
	gt++
	a[low], a[lt] = a[lt], a[low]
	a[high-1], a[gt] = a[gt], a[high-1]

	return lt, gt
}

// partitionSinglePivot is the Dutch national flag split used when the
// pivot sample is not strictly increasing. It returns (lower, upper)
// bounding the zone equal to the pivot: a[low:lower) < pivot,
// a[lower:upper+1] == pivot, a[upper+1:high) > pivot.
func partitionSinglePivot[T any](a []T, low, high, p int, less lessFn[T]) (int, int) {
	pivot := a[p]
	a[low], a[p] = a[p], a[low]

	lt := low
	gt := high

	for i := low + 1; i < gt; {
		if less(a[i], pivot) {
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		} else if less(pivot, a[i]) {
			gt--
			for i < gt && less(pivot, a[gt]) {
				gt--
			}
			a[i], a[gt] = a[gt], a[i]
		} else {
			i++
		}
	}

	return lt, gt - 1
}
