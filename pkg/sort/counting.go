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

import "golang.org/x/exp/constraints"

// Domain sizes and signed offsets of the narrow integer types served
// by counting sort.
const (
	numByteValues  = 1 << 8
	numShortValues = 1 << 16

	byteOffset  = 1 << 7
	shortOffset = 1 << 15
)

// countingSort sorts a[low:high) by frequency histogram. numValues is
// the size of the element domain and offset maps the smallest
// representable value to bucket zero. When the range is longer than
// half the domain the histogram is dense, so the writeback walks every
// bucket backwards without a zero check; a sparse histogram walks
// forwards and skips empty buckets.
func countingSort[T constraints.Integer](a []T, low, high, numValues, offset int) {
	count := make([]int32, numValues)

	for i := high; i > low; {
		i--
		count[int(a[i])+offset]++
	}

	if high-low > numValues/2 {
		k := high
		for i := numValues; i > 0; {
			i--
			value := T(i - offset)
			for c := count[i]; c > 0; c-- {
				k--
				a[k] = value
			}
		}
	} else {
		k := low
		for i := 0; i < numValues; i++ {
			if count[i] > 0 {
				value := T(i - offset)
				for c := count[i]; c > 0; c-- {
					a[k] = value
					k++
				}
			}
		}
	}
}

// Natural-order entry points for the narrow integer widths. Tiny
// ranges are not worth the histogram allocation.

func sortInt8s(a []int8) {
	if len(a) > minByteCountingSortSize {
		countingSort(a, 0, len(a), numByteValues, byteOffset)
	} else {
		insertionSort(a, 0, len(a), orderedLess[int8])
	}
}

func sortUint8s(a []uint8) {
	if len(a) > minByteCountingSortSize {
		countingSort(a, 0, len(a), numByteValues, 0)
	} else {
		insertionSort(a, 0, len(a), orderedLess[uint8])
	}
}

func sortInt16s(a []int16) {
	if len(a) > minShortCountingSortSize {
		countingSort(a, 0, len(a), numShortValues, shortOffset)
	} else {
		sortRange(nil, a, orderedLess[int16], 0, 0, len(a))
	}
}

func sortUint16s(a []uint16) {
	if len(a) > minShortCountingSortSize {
		countingSort(a, 0, len(a), numShortValues, 0)
	} else {
		sortRange(nil, a, orderedLess[uint16], 0, 0, len(a))
	}
}
