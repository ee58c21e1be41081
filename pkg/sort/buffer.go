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

// bufferPair couples the slice being sorted with the auxiliary buffer
// used by merge decomposition. offset maps primary indices onto
// auxiliary ones: primary index i lives at aux[i-offset]. All index
// translation between the two slices happens here and nowhere else.
type bufferPair[T any] struct {
	prim   []T
	aux    []T
	offset int
}

// newBufferPair wraps a[low:low+size) with a fresh auxiliary buffer of
// the same length.
func newBufferPair[T any](a []T, low, size int) *bufferPair[T] {
	return &bufferPair[T]{
		prim:   a,
		aux:    make([]T, size),
		offset: low,
	}
}

// mergeBounds resolves the slices and indices for merging the sorted
// halves [low, mi) and [mi, high) at the given decomposition depth.
// Merge levels alternate direction so neither slice is ever copied
// wholesale: even depths merge the auxiliary halves back into the
// primary slice, odd depths merge primary halves into the auxiliary.
// The returned indices lo, mid, hi address src; k addresses dst.
func (p *bufferPair[T]) mergeBounds(low, mi, high, depth int) (dst []T, k int, src []T, lo, mid, hi int) {
	if depth&1 == 0 {
		return p.prim, low, p.aux, low - p.offset, mi - p.offset, high - p.offset
	}
	return p.aux, low - p.offset, p.prim, low, mi, high
}
