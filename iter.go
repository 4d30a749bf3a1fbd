package heapq

import (
	"iter"

	"github.com/pkg/errors"
)

// An Iterator produces the keys of a heap in non-decreasing order under the
// heap's ordering. It drains a private clone taken at creation time, so
// iterating never disturbs the source and later mutations of the source have
// no effect on the sequence. A full traversal costs O(n log n) time and O(n)
// extra space; that is the price of producing priority order rather than
// array-storage order. An Iterator is not restartable.
type Iterator[T any] struct {
	heap *Heap[T]
}

// Iter returns a draining iterator over a snapshot of the heap.
func (h *Heap[T]) Iter() *Iterator[T] {
	return &Iterator[T]{heap: h.Clone()}
}

// HasNext reports whether the iterator has keys left to produce.
func (it *Iterator[T]) HasNext() bool { return !it.heap.Empty() }

// Next returns the smallest remaining key. It fails with ErrExhausted once
// the iterator is depleted, and propagates comparison errors from the
// underlying heap.
func (it *Iterator[T]) Next() (T, error) {
	key, err := it.heap.Pop()
	if errors.Is(err, ErrEmpty) {
		var zero T
		return zero, errors.WithStack(ErrExhausted)
	}
	return key, err
}

// Values returns the keys of the heap in non-decreasing order as a range
// function over a snapshot, under the same terms as Iter. A comparison
// failure is yielded as the final pair's error.
func (h *Heap[T]) Values() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		c := h.Clone()
		for !c.Empty() {
			key, err := c.Pop()
			if !yield(key, err) || err != nil {
				return
			}
		}
	}
}
