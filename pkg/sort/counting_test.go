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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestCountingSortInt8Dense(t *testing.T) {
	r := rand.New(rand.NewSource(201))

	// More elements than half the domain forces the dense backward
	// writeback.
	a := make([]int8, 1000)
	for i := range a {
		a[i] = int8(r.Intn(256) - 128)
	}
	want := slices.Clone(a)
	slices.Sort(want)

	countingSort(a, 0, len(a), numByteValues, byteOffset)
	require.Equal(t, want, a)
}

func TestCountingSortInt8Sparse(t *testing.T) {
	// Few elements over few distinct values: sparse forward writeback.
	a := []int8{5, -3, 5, 127, -128, 0, -3, 5}
	want := slices.Clone(a)
	slices.Sort(want)

	countingSort(a, 0, len(a), numByteValues, byteOffset)
	require.Equal(t, want, a)
}

func TestCountingSortSubrange(t *testing.T) {
	a := []uint8{200, 100, 9, 7, 8, 5, 100, 0}
	countingSort(a, 2, 6, numByteValues, 0)
	require.Equal(t, []uint8{200, 100, 5, 7, 8, 9, 100, 0}, a)
}

func TestCountingSortUint16(t *testing.T) {
	r := rand.New(rand.NewSource(203))

	a := make([]uint16, 3000)
	for i := range a {
		a[i] = uint16(r.Uint32())
	}
	want := slices.Clone(a)
	slices.Sort(want)

	countingSort(a, 0, len(a), numShortValues, 0)
	require.Equal(t, want, a)
}

func TestCountingSortInt16Dense(t *testing.T) {
	r := rand.New(rand.NewSource(205))

	a := make([]int16, 40000)
	for i := range a {
		a[i] = int16(r.Intn(1 << 16))
	}
	want := slices.Clone(a)
	slices.Sort(want)

	countingSort(a, 0, len(a), numShortValues, shortOffset)
	require.Equal(t, want, a)
}

// The natural-order entry points pick counting sort only above their
// size cut-overs; both sides of each cut-over must sort correctly.
func TestNarrowWidthDispatch(t *testing.T) {
	r := rand.New(rand.NewSource(207))

	for _, n := range []int{0, 1, 10, minByteCountingSortSize, minByteCountingSortSize + 1, 500} {
		a := make([]int8, n)
		for i := range a {
			a[i] = int8(r.Intn(256) - 128)
		}
		want := slices.Clone(a)
		slices.Sort(want)

		Sort(a)
		require.Equal(t, want, a, "int8 size %d", n)
	}

	for _, n := range []int{0, 1, 100, minShortCountingSortSize, minShortCountingSortSize + 1, 5000} {
		u := make([]uint16, n)
		for i := range u {
			u[i] = uint16(r.Uint32())
		}
		want := slices.Clone(u)
		slices.Sort(want)

		Sort(u)
		require.Equal(t, want, u, "uint16 size %d", n)
	}

	s := make([]int16, 2000)
	for i := range s {
		s[i] = int16(r.Intn(1 << 16))
	}
	wantS := slices.Clone(s)
	slices.Sort(wantS)
	Sort(s)
	require.Equal(t, wantS, s)

	b := make([]uint8, 300)
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
	wantB := slices.Clone(b)
	slices.Sort(wantB)
	Sort(b)
	require.Equal(t, wantB, b)
}
