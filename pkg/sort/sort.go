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

// Package sort implements an in-memory sorting engine built around
// Yaroslavskiy's dual-pivot quicksort. The engine switches between
// insertion sort, natural run merging, dual-pivot partitioning and a
// heap sort fallback depending on range size, detected structure and
// recursion depth. Narrow integer domains use counting sort and
// floating point slices get a total order over NaN and signed zero.
//
// Sorting is not stable: equal elements may be reordered.
package sort

import (
	"golang.org/x/exp/constraints"
)

// Tuning thresholds of the algorithm selection loop.
const (
	// maxInsertionSortSize is the largest range sorted by plain
	// insertion sort.
	maxInsertionSortSize = 44

	// maxMixedInsertionSortSize is the largest non-leftmost range
	// sorted by mixed insertion sort.
	maxMixedInsertionSortSize = 65

	// minTryMergeSize is the smallest range worth scanning for
	// natural runs.
	minTryMergeSize = 4096

	// minFirstRunSize is the minimum length of the first run for the
	// run scan to continue.
	minFirstRunSize = 16

	// minFirstRunsFactor gates how long the first runs must be
	// relative to the scanned prefix.
	minFirstRunsFactor = 7

	// maxRunCapacity caps how many runs the scan may collect.
	maxRunCapacity = 5120

	// minRunCount is the smallest run count merged in parallel.
	minRunCount = 4

	// depthDelta is added to the depth counter at each partitioning
	// step; maxRecursionDepth is the ceiling past which the engine
	// switches to heap sort.
	depthDelta        = 6
	maxRecursionDepth = 384

	// minParallelSortSize is the smallest range worth forking.
	minParallelSortSize = 4096

	// minParallelMergeSize is the smallest part size worth splitting
	// a merge.
	minParallelMergeSize = 4096

	// Counting sort cut-overs for 1-byte and 2-byte domains.
	minByteCountingSortSize  = 64
	minShortCountingSortSize = 1750
)

// lessFn is a strict weak ordering over T.
type lessFn[T any] func(a, b T) bool

func orderedLess[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Sort sorts a in ascending natural order.
func Sort[T constraints.Ordered](a []T) {
	switch v := any(a).(type) {
	case []int8:
		sortInt8s(v)
	case []uint8:
		sortUint8s(v)
	case []int16:
		sortInt16s(v)
	case []uint16:
		sortUint16s(v)
	case []float32:
		sortFloats(v, 1)
	case []float64:
		sortFloats(v, 1)
	default:
		sortRange(nil, a, orderedLess[T], 0, 0, len(a))
	}
}

// SortFunc sorts a by the given strict weak ordering. A comparator
// that is not a strict weak ordering yields an unspecified permutation
// of a, never a crash.
func SortFunc[T any](a []T, less func(a, b T) bool) {
	sortRange(nil, a, less, 0, 0, len(a))
}

// ParallelSort sorts a in ascending natural order using up to
// parallelism workers. Parallelism of 0 or 1 sorts sequentially.
func ParallelSort[T constraints.Ordered](a []T, parallelism int) {
	switch v := any(a).(type) {
	case []int8:
		sortInt8s(v)
	case []uint8:
		sortUint8s(v)
	case []int16:
		sortInt16s(v)
	case []uint16:
		sortUint16s(v)
	case []float32:
		sortFloats(v, parallelism)
	case []float64:
		sortFloats(v, parallelism)
	default:
		parallelSortRange(a, orderedLess[T], parallelism)
	}
}

// ParallelSortFunc sorts a by the given strict weak ordering using up
// to parallelism workers. Parallelism of 0 or 1 sorts sequentially.
func ParallelSortFunc[T any](a []T, less func(a, b T) bool, parallelism int) {
	parallelSortRange(a, less, parallelism)
}

// sortRange sorts a[low:high). bits carries the recursion depth in its
// upper part and "not the leftmost range" in its lowest bit. task is
// non-nil when running under the parallel scheduler, in which case
// large partitions are forked instead of recursed.
func sortRange[T any](task *sortTask[T], a []T, less lessFn[T], bits, low, high int) {
	for {
		end := high - 1
		size := high - low

		// Mixed insertion sort on small non-leftmost ranges.
		if size < maxMixedInsertionSortSize+bits && bits&1 > 0 {
			mixedInsertionSort(a, low, high, less)
			return
		}

		// Plain insertion sort on small leftmost ranges.
		if size < maxInsertionSortSize {
			insertionSort(a, low, high, less)
			return
		}

		// Merge natural runs on the first call or on large fresh
		// subtrees.
		if (bits == 0 || size > minTryMergeSize && bits&1 > 0) &&
			tryMergeRuns(a, low, size, less, task != nil) {
			return
		}

		// Switch to heap sort when execution is becoming quadratic.
		if bits += depthDelta; bits > maxRecursionDepth {
			heapSort(a, low, high, less)
			return
		}

		// Five sample elements around the golden ratio points.
		step := (size>>3)*3 + 3
		e1 := low + step
		e5 := end - step
		e3 := (e1 + e5) >> 1
		e2 := (e1 + e3) >> 1
		e4 := (e3 + e5) >> 1

		sort5(a, e1, e2, e3, e4, e5, less)

		var lower, upper int

		if less(a[e1], a[e2]) && less(a[e2], a[e3]) && less(a[e3], a[e4]) && less(a[e4], a[e5]) {
			// Strictly increasing sample: partition around a[e1]
			// and a[e5].
			lower, upper = partitionDualPivot(a, low, high, e1, e5, less)

			if task != nil && size > minParallelSortSize {
				task.forkSorter(bits|1, lower+1, upper)
				task.forkSorter(bits|1, upper+1, high)
			} else {
				sortRange(task, a, less, bits|1, lower+1, upper)
				sortRange(task, a, less, bits|1, upper+1, high)
			}
		} else {
			// Degenerate sample: three-way partition around the
			// median a[e3], skipping the equal middle zone.
			lower, upper = partitionSinglePivot(a, low, high, e3, less)

			if task != nil && size > minParallelSortSize {
				task.forkSorter(bits|1, upper+1, high)
			} else {
				sortRange(task, a, less, bits|1, upper+1, high)
			}
		}

		// Iterate on the leftmost partition.
		high = lower
	}
}
