// Package heapq implements a generic array-backed binary heap priority queue.
//
// A Heap keeps a set of keys ordered by a comparison function and exposes the
// minimum under that ordering in O(log n) per mutation. Max-orientation is
// obtained by reversing the comparator. Duplicate keys are permitted and
// compare equal for ordering purposes.
package heapq

// The swim and sink loops are adapted from the heap algorithms in the Go
// standard library's container/heap, moved to 1-indexed positions.
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

import (
	"cmp"

	"github.com/pkg/errors"
)

// minCapacity is the floor of the backing array: shrinking stops here to
// avoid resize oscillation on tiny heaps.
const minCapacity = 8

// Heap is an array-backed binary min-heap of keys of type T.
//
// The backing array is 1-indexed: live keys occupy positions 1..Len() of a
// complete binary tree where position k has children at 2k and 2k+1, and
// position 0 is an unused sentinel. The array doubles when full and halves at
// quarter occupancy, never below minCapacity.
//
// A Heap is owned by a single goroutine at a time; it performs no internal
// synchronization.
type Heap[T any] struct {
	store  []T
	length int
	cmp    func(T, T) int
}

// New returns an empty heap ordered by the natural ascending order of T.
func New[T cmp.Ordered](opts ...Option) *Heap[T] {
	return NewFunc[T](cmp.Compare[T], opts...)
}

// NewFunc returns an empty heap ordered by compare, which must return a
// negative value when a orders before b, zero when they are equal, and a
// positive value otherwise.
//
// A nil compare falls back to the intrinsic order of the concrete keys
// (integer, float, and string kinds), resolved when a comparison is first
// needed: pushing a key of a type with no intrinsic order succeeds while the
// heap is empty and fails with ErrNotOrdered on the first key it has to be
// compared against.
func NewFunc[T any](compare func(T, T) int, opts ...Option) *Heap[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Heap[T]{
		store: make([]T, o.capacity),
		cmp:   compare,
	}
}

// Len returns the number of keys in the heap.
func (h *Heap[T]) Len() int { return h.length }

// Empty reports whether the heap holds no keys.
func (h *Heap[T]) Empty() bool { return h.length == 0 }

// Compare returns the comparison function the heap was constructed with, or
// nil when the heap relies on the intrinsic order of its keys.
func (h *Heap[T]) Compare() func(T, T) int { return h.cmp }

// Push inserts key, growing the backing array first when it is full.
// Amortized O(log n). A nil key is rejected with ErrNilKey.
//
// If the comparison fails the error is returned and the heap must be
// considered unusable: the backing array is intact but the heap property may
// not hold around the aborted swap.
func (h *Heap[T]) Push(key T) error {
	if isNil(key) {
		return errors.WithStack(ErrNilKey)
	}
	if h.length+1 == len(h.store) {
		h.resize(2 * len(h.store))
	}
	h.length++
	h.store[h.length] = key
	return h.swim(h.length)
}

// Pop removes and returns the minimum key in O(log n), shrinking the backing
// array when occupancy drops to a quarter. It fails with ErrEmpty when the
// heap holds no keys, and with the comparison error under the same terms as
// Push.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if h.length == 0 {
		return zero, errors.WithStack(ErrEmpty)
	}
	min := h.store[1]
	h.store[1] = h.store[h.length]
	h.store[h.length] = zero // release the vacated slot
	h.length--
	if err := h.sink(1); err != nil {
		return zero, err
	}
	if h.length == len(h.store)/4 && len(h.store) > minCapacity {
		h.resize(max(len(h.store)/2, minCapacity))
	}
	return min, nil
}

// Peek returns the minimum key without removing it. It fails with ErrEmpty
// when the heap holds no keys.
func (h *Heap[T]) Peek() (T, error) {
	if h.length == 0 {
		var zero T
		return zero, errors.WithStack(ErrEmpty)
	}
	return h.store[1], nil
}

// Clear removes all keys, releasing the backing array, and keeps the
// ordering.
func (h *Heap[T]) Clear() {
	h.store = make([]T, minCapacity)
	h.length = 0
}

// Contains reports whether the heap holds a key comparing equal to key under
// the active ordering. It scans the live slots linearly in O(n), returning on
// the first match.
func (h *Heap[T]) Contains(key T) (bool, error) {
	for k := 1; k <= h.length; k++ {
		diff, err := h.order(h.store[k], key)
		if err != nil {
			return false, err
		}
		if diff == 0 {
			return true, nil
		}
	}
	return false, nil
}

// resize reallocates the backing array at capacity n and copies the live
// slots across, preserving their positions; the old and new arrays never
// alias. Allocation failure aborts the program, there is no recoverable
// out-of-memory error at this layer.
func (h *Heap[T]) resize(n int) {
	store := make([]T, n)
	copy(store, h.store[:h.length+1])
	h.store = store
}

// swim restores the heap property after an append at position k by swapping
// the key with its parent until the parent orders not-after it.
func (h *Heap[T]) swim(k int) error {
	for k > 1 {
		diff, err := h.order(h.store[k], h.store[k/2])
		if err != nil {
			return err
		}
		if diff >= 0 {
			break
		}
		h.store[k/2], h.store[k] = h.store[k], h.store[k/2]
		k /= 2
	}
	return nil
}

// sink restores the heap property after a root replacement by swapping the
// key at position k with its smaller child until neither child orders before
// it. When both children are equal the left one is chosen; the tie-break is
// part of the contract, not incidental.
func (h *Heap[T]) sink(k int) error {
	for {
		j := 2 * k
		if j > h.length || j < 0 { // j < 0 after int overflow
			break
		}
		if j < h.length {
			diff, err := h.order(h.store[j+1], h.store[j])
			if err != nil {
				return err
			}
			if diff < 0 {
				j++ // right child, strictly smaller
			}
		}
		diff, err := h.order(h.store[j], h.store[k])
		if err != nil {
			return err
		}
		if diff >= 0 {
			break
		}
		h.store[j], h.store[k] = h.store[k], h.store[j]
		k = j
	}
	return nil
}
