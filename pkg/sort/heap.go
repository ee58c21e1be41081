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

// heapSort sorts a[low:high) with a binary max-heap. It is the
// worst-case fallback once the depth counter exceeds its ceiling and
// guarantees O(n log n) on any input.
func heapSort[T any](a []T, low, high int, less lessFn[T]) {
	for k := (low + high) >> 1; k > low; {
		k--
		pushDown(a, k, a[k], low, high, less)
	}
	for high--; high > low; high-- {
		max := a[low]
		pushDown(a, low, a[high], low, high, less)
		a[high] = max
	}
}

// pushDown sifts value from position p towards the leaves of the heap
// laid out over a[low:high).
func pushDown[T any](a []T, p int, value T, low, high int, less lessFn[T]) {
	for {
		k := (p << 1) - low + 2
		if k > high {
			break
		}
		if k == high || less(a[k], a[k-1]) {
			k--
		}
		if !less(value, a[k]) {
			break
		}
		a[p] = a[k]
		p = k
	}
	a[p] = value
}
