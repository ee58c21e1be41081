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

import "sync"

// tryMergeRuns scans a[low:low+size) for natural runs and, if the
// range is sufficiently structured, merges them and returns true.
// Descending runs are reversed in place during the scan; a run of
// equal elements is absorbed into a neighboring run. The scan gives up
// early on unstructured data so the caller can fall back to
// partitioning: the first run must reach minFirstRunSize, the run
// count must stay proportional to the scanned prefix, and it may never
// reach maxRunCapacity.
func tryMergeRuns[T any](a []T, low, size int, less lessFn[T], parallel bool) bool {
	// run holds the start index of each pending run, terminated by the
	// end of the last one.
	var run []int
	high := low + size
	count := 1
	last := low

	for k := low + 1; k < high; {
		if less(a[k-1], a[k]) {
			// Ascending run.
			for k++; k < high && !less(a[k], a[k-1]); k++ {
			}
		} else if less(a[k], a[k-1]) {
			// Descending run, reverse into ascending order.
			for k++; k < high && !less(a[k-1], a[k]); k++ {
			}
			for i, j := last-1, k; ; {
				i++
				j--
				if i >= j || !less(a[j], a[i]) {
					break
				}
				a[i], a[j] = a[j], a[i]
			}
		} else {
			// Equal elements, absorbed by a neighboring run.
			ak := a[k]
			for k++; k < high && !less(ak, a[k]) && !less(a[k], ak); k++ {
			}
			if k < high {
				continue
			}
		}

		if run == nil {
			if k == high {
				// Monotonic range, already sorted.
				return true
			}

			if k-low < minFirstRunSize {
				return false
			}

			run = make([]int, 0, ((size>>10)|0x7F)&0x3FF)
			run = append(run, low, k)
			last = k
		} else if less(a[last], a[last-1]) {
			if count > (k-low)>>minFirstRunsFactor {
				// The first runs are too short to keep scanning.
				return false
			}

			count++
			if count == maxRunCapacity {
				// Not highly structured after all.
				return false
			}
			run = append(run, k)
			last = k
		} else {
			run[len(run)-1] = k
			last = k
		}
	}

	if count > 1 {
		b := make([]T, size)
		mergeRuns(a, b, low, 1, parallel, run, 0, count, less)
	}
	return true
}

// mergeRuns merges run[lo:hi+1] bounded runs, alternating the roles of
// a and b at each recursion level. aim tells where the merged result
// must land: non-negative for a, negative for b. offset maps indices
// of a onto b. The slice actually holding the result is returned.
func mergeRuns[T any](a, b []T, offset, aim int, parallel bool, run []int, lo, hi int, less lessFn[T]) []T {
	if hi-lo == 1 {
		if aim >= 0 {
			return a
		}
		for i, j := run[hi], run[hi]-offset; i > run[lo]; {
			i--
			j--
			b[j] = a[i]
		}
		return b
	}

	// Split where the run boundary is closest to the midpoint.
	mi := lo
	rmi := (run[lo] + run[hi]) >> 1
	for {
		mi++
		if run[mi+1] > rmi {
			break
		}
	}

	var a1, a2 []T
	if parallel && hi-lo > minRunCount {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			a2 = mergeRuns(a, b, offset, 0, true, run, mi, hi, less)
		}()
		a1 = mergeRuns(a, b, offset, -aim, true, run, lo, mi, less)
		wg.Wait()
	} else {
		a1 = mergeRuns(a, b, offset, -aim, false, run, lo, mi, less)
		a2 = mergeRuns(a, b, offset, 0, false, run, mi, hi, less)
	}

	dst := a
	if sameSlice(a1, a) {
		dst = b
	}

	k := run[lo]
	if sameSlice(a1, a) {
		k -= offset
	}
	lo1, hi1 := run[lo], run[mi]
	if sameSlice(a1, b) {
		lo1 -= offset
		hi1 -= offset
	}
	lo2, hi2 := run[mi], run[hi]
	if sameSlice(a2, b) {
		lo2 -= offset
		hi2 -= offset
	}

	if parallel {
		parallelMergeParts(dst, k, a1, lo1, hi1, a2, lo2, hi2, less)
	} else {
		mergeParts(dst, k, a1, lo1, hi1, a2, lo2, hi2, less)
	}
	return dst
}

// mergeParts merges the sorted parts a1[lo1:hi1) and a2[lo2:hi2) into
// dst starting at k. A tail already in place is not recopied when dst
// aliases its source.
func mergeParts[T any](dst []T, k int, a1 []T, lo1, hi1 int, a2 []T, lo2, hi2 int, less lessFn[T]) {
	for lo1 < hi1 && lo2 < hi2 {
		if less(a1[lo1], a2[lo2]) {
			dst[k] = a1[lo1]
			lo1++
		} else {
			dst[k] = a2[lo2]
			lo2++
		}
		k++
	}
	if !sameSlice(dst, a1) || k < lo1 {
		for lo1 < hi1 {
			dst[k] = a1[lo1]
			k++
			lo1++
		}
	}
	if !sameSlice(dst, a2) || k < lo2 {
		for lo2 < hi2 {
			dst[k] = a2[lo2]
			k++
			lo2++
		}
	}
}

// parallelMergeParts is mergeParts with the work recursively split in
// two: the larger part is halved at its median and the smaller part at
// the insertion point of that median, so both sub-merges cover
// disjoint destination ranges. Sub-merges run on their own goroutines
// down to minParallelMergeSize.
func parallelMergeParts[T any](dst []T, k int, a1 []T, lo1, hi1 int, a2 []T, lo2, hi2 int, less lessFn[T]) {
	var wg sync.WaitGroup
	for hi1-lo1 >= minParallelMergeSize && hi2-lo2 >= minParallelMergeSize {
		if hi1-lo1 < hi2-lo2 {
			a1, a2 = a2, a1
			lo1, lo2 = lo2, lo1
			hi1, hi2 = hi2, hi1
		}

		mi1 := (lo1 + hi1) >> 1
		key := a1[mi1]
		mi2 := lowerBound(a2, lo2, hi2, key, less)

		// The sub-merge gets every bound as an argument: the loop
		// variables keep changing underneath it.
		wg.Add(1)
		go func(k int, a1 []T, lo1, hi1 int, a2 []T, lo2, hi2 int) {
			defer wg.Done()
			parallelMergeParts(dst, k, a1, lo1, hi1, a2, lo2, hi2, less)
		}(k+(mi1-lo1)+(mi2-lo2), a1, mi1, hi1, a2, mi2, hi2)

		hi1 = mi1
		hi2 = mi2
	}
	mergeParts(dst, k, a1, lo1, hi1, a2, lo2, hi2, less)
	wg.Wait()
}

// lowerBound returns the first index in [lo, hi) whose element is not
// less than key, or hi.
func lowerBound[T any](a []T, lo, hi int, key T, less lessFn[T]) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(a[mid], key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// sameSlice reports whether x and y share a backing array. Only valid
// for the full-length working slices handled by the merge machinery.
func sameSlice[T any](x, y []T) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}
