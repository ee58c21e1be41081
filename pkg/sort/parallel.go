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

import "sync/atomic"

// completer is one node of the fork-join completion tree. Every fork
// increments the parent's pending count; every finished subtree
// arrives at the parent through tryComplete. The last arrival at a
// node observes pending == 0, runs the node's completion action and
// carries on upward, so a merge at one level runs only after both
// halves below it are fully done, and no worker ever blocks waiting
// for another task.
type completer struct {
	parent  *completer
	pending atomic.Int32

	// onDone runs when the node's subtree has finished. Returning
	// false stops the upward walk: completion has been handed off to
	// a replacement subtree that inherits this node's parent.
	onDone func() bool

	// done is closed when the tree rooted here completes. Only set on
	// roots.
	done chan struct{}
}

// tryComplete reports one finished subtree at c and propagates
// completion as far up as it goes.
func (c *completer) tryComplete() {
	for node := c; ; {
		p := node.pending.Load()
		if p == 0 {
			if node.onDone != nil && !node.onDone() {
				return
			}
			if node.parent == nil {
				if node.done != nil {
					close(node.done)
				}
				return
			}
			node = node.parent
		} else if node.pending.CompareAndSwap(p, p-1) {
			return
		}
	}
}

// getDepth converts requested parallelism and a size factor into the
// merge decomposition depth. The result is an even non-positive
// number: zero selects parallel quicksort, negative values select
// |depth| levels of parallel merge sort above quicksort leaves.
func getDepth(parallelism, size int) int {
	depth := 0
	for {
		if parallelism >>= 3; parallelism == 0 {
			break
		}
		if size >>= 2; size == 0 {
			break
		}
		depth -= 2
	}
	return depth
}

// sortTask sorts buf.prim[low:low+size). Non-negative depth is the
// recursion depth counter of the sequential engine, with partitions
// forked instead of recursed while ranges stay large. Negative depth
// halves the range into two child tasks and merges their results on
// completion, alternating buffers per level.
type sortTask[T any] struct {
	completer

	buf   *bufferPair[T]
	less  lessFn[T]
	sched *Scheduler

	low, size int
	depth     int
}

func newSortTask[T any](parent *sortTask[T], buf *bufferPair[T], less lessFn[T], sched *Scheduler, low, size, depth int) *sortTask[T] {
	t := &sortTask[T]{
		buf:   buf,
		less:  less,
		sched: sched,
		low:   low,
		size:  size,
		depth: depth,
	}
	if parent != nil {
		t.parent = &parent.completer
		parent.pending.Add(1)
	}
	if depth < 0 {
		t.onDone = t.mergeHalves
	}
	return t
}

func (t *sortTask[T]) compute() {
	if t.depth < 0 {
		half := t.size >> 1
		left := newSortTask(t, t.buf, t.less, t.sched, t.low, half, t.depth+1)
		right := newSortTask(t, t.buf, t.less, t.sched, t.low+half, t.size-half, t.depth+1)
		t.sched.submit(left.compute)
		right.compute()
	} else {
		sortRange(t, t.buf.prim, t.less, t.depth, t.low, t.low+t.size)
	}
	t.tryComplete()
}

// forkSorter hands a partition off to the pool. bits is the depth
// counter the child resumes the sequential engine with.
func (t *sortTask[T]) forkSorter(bits, low, high int) {
	child := newSortTask(t, t.buf, t.less, t.sched, low, high-low, bits)
	t.sched.submit(child.compute)
}

// mergeHalves fires when both halves of a merge-mode task are sorted.
// The merge itself runs as a merger task tree that takes over this
// node's place in the completion tree, so the worker finishing the
// second half never blocks on the merge.
func (t *sortTask[T]) mergeHalves() bool {
	mi := t.low + t.size>>1
	dst, k, src, lo, mid, hi := t.buf.mergeBounds(t.low, mi, t.low+t.size, t.depth)

	m := &mergerTask[T]{
		completer: completer{parent: t.parent, done: t.done},
		less:      t.less,
		sched:     t.sched,
		dst:       dst,
		k:         k,
		a1:        src,
		lo1:       lo,
		hi1:       mid,
		a2:        src,
		lo2:       mid,
		hi2:       hi,
	}
	t.sched.submit(m.compute)
	return false
}

// mergerTask merges the sorted parts a1[lo1:hi1) and a2[lo2:hi2) into
// dst at k. Large merges split themselves: the larger part is halved
// at its median, the smaller part at the insertion point of that
// median, and the upper sub-merge is forked while the loop continues
// on the lower one.
type mergerTask[T any] struct {
	completer

	less  lessFn[T]
	sched *Scheduler

	dst      []T
	k        int
	a1       []T
	lo1, hi1 int
	a2       []T
	lo2, hi2 int
}

func (m *mergerTask[T]) compute() {
	dst, k := m.dst, m.k
	a1, lo1, hi1 := m.a1, m.lo1, m.hi1
	a2, lo2, hi2 := m.a2, m.lo2, m.hi2

	for hi1-lo1 >= minParallelMergeSize && hi2-lo2 >= minParallelMergeSize {
		if hi1-lo1 < hi2-lo2 {
			a1, a2 = a2, a1
			lo1, lo2 = lo2, lo1
			hi1, hi2 = hi2, hi1
		}

		mi1 := (lo1 + hi1) >> 1
		key := a1[mi1]
		mi2 := lowerBound(a2, lo2, hi2, key, m.less)

		m.forkMerger(k+(mi1-lo1)+(mi2-lo2), a1, mi1, hi1, a2, mi2, hi2)

		hi1 = mi1
		hi2 = mi2
	}

	mergeParts(dst, k, a1, lo1, hi1, a2, lo2, hi2, m.less)
	m.tryComplete()
}

func (m *mergerTask[T]) forkMerger(k int, a1 []T, lo1, hi1 int, a2 []T, lo2, hi2 int) {
	m.pending.Add(1)
	child := &mergerTask[T]{
		completer: completer{parent: &m.completer},
		less:      m.less,
		sched:     m.sched,
		dst:       m.dst,
		k:         k,
		a1:        a1,
		lo1:       lo1,
		hi1:       hi1,
		a2:        a2,
		lo2:       lo2,
		hi2:       hi2,
	}
	m.sched.submit(child.compute)
}

// parallelSortRange sorts a with up to parallelism workers from the
// shared pool. Small slices and parallelism <= 1 run the sequential
// engine directly.
func parallelSortRange[T any](a []T, less lessFn[T], parallelism int) {
	size := len(a)
	if parallelism <= 1 || size <= minParallelSortSize {
		sortRange(nil, a, less, 0, 0, size)
		return
	}

	buf := &bufferPair[T]{prim: a}
	depth := getDepth(parallelism, size>>12)
	if depth < 0 {
		buf = newBufferPair(a, 0, size)
	}

	root := newSortTask(nil, buf, less, defaultScheduler(), 0, size, depth)
	root.done = make(chan struct{})
	root.compute()
	<-root.done
}
