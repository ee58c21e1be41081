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

// insertionSort sorts a[low:high) by shift-based insertion.
func insertionSort[T any](a []T, low, high int, less lessFn[T]) {
	for k := low + 1; k < high; k++ {
		ai := a[k]
		if less(ai, a[k-1]) {
			i := k - 1
			for ; i >= low && less(ai, a[i]); i-- {
				a[i+1] = a[i]
			}
			a[i+1] = ai
		}
	}
}

// mixedInsertionSort sorts a[low:high) combining pin insertion on the
// prefix with pair insertion on the tail. It is only used on ranges
// that are not the leftmost of their subtree, where already-ordered
// prefixes are common.
func mixedInsertionSort[T any](a []T, low, high int, less lessFn[T]) {
	start := low
	size := high - low
	end := high - 3*((size>>5)<<3)

	if end == high {
		// Range too small for the split, plain insertion.
		for k := low + 1; k < end; k++ {
			ai := a[k]
			i := k - 1
			for ; i >= start && less(ai, a[i]); i-- {
				a[i+1] = a[i]
			}
			a[i+1] = ai
		}
		return
	}

	// The pin separates small and large elements: small ones are
	// inserted into the sorted prefix, large ones swapped towards the
	// tail before insertion.
	pin := a[end]

	p := high
	for k := low + 1; k < end; k++ {
		ai := a[k]
		i := k
		if less(ai, a[i-1]) {
			a[i] = a[i-1]
			i--
			for i--; i >= start && less(ai, a[i]); i-- {
				a[i+1] = a[i]
			}
			a[i+1] = ai
		} else if p > i && less(pin, ai) {
			p--
			for p > start && less(pin, a[p]) {
				p--
			}
			if p > i {
				ai = a[p]
				a[p] = a[i]
			}
			i--
			for ; i >= start && less(ai, a[i]); i-- {
				a[i+1] = a[i]
			}
			a[i+1] = ai
		}
	}

	// Insert the remaining tail two elements at a time. The tail
	// length is a multiple of 24, so pairs always complete.
	for k := end; k < high; k++ {
		a1 := a[k]
		i := k
		k++
		a2 := a[k]

		if less(a2, a1) {
			i--
			for ; i >= start && less(a1, a[i]); i-- {
				a[i+2] = a[i]
			}
			i++
			a[i+1] = a1
			i--
			for ; i >= start && less(a2, a[i]); i-- {
				a[i+1] = a[i]
			}
			a[i+1] = a2
		} else if less(a1, a[i-1]) {
			i--
			for ; i >= start && less(a2, a[i]); i-- {
				a[i+2] = a[i]
			}
			i++
			a[i+1] = a2
			i--
			for ; i >= start && less(a1, a[i]); i-- {
				a[i+1] = a[i]
			}
			a[i+1] = a1
		}
	}
}
