package heapq

import "github.com/pkg/errors"

// Clone returns an independent heap holding the same keys under the same
// ordering. The backing array is freshly allocated and sized to the occupancy
// under the usual capacity policy, so a clone of a mostly-drained heap is
// compact. Keys of reference kinds are shared between the source and the
// clone; mutating either heap never affects the other.
func (h *Heap[T]) Clone() *Heap[T] {
	c := &Heap[T]{
		store:  make([]T, cloneCapacity(h.length)),
		length: h.length,
		cmp:    h.cmp,
	}
	copy(c.store[1:], h.store[1:h.length+1])
	return c
}

// CloneFunc returns an independent heap where every live key is replaced by
// transform(key), positions preserved. It fails with ErrNilTransform when
// transform is nil, and with ErrNilKey when transform produces a nil key;
// the latter is detected as keys are transformed, not up front.
//
// A transform that does not preserve the relative order of keys leaves the
// clone without the heap property.
func (h *Heap[T]) CloneFunc(transform func(T) T) (*Heap[T], error) {
	if transform == nil {
		return nil, errors.WithStack(ErrNilTransform)
	}
	c := &Heap[T]{
		store:  make([]T, cloneCapacity(h.length)),
		length: h.length,
		cmp:    h.cmp,
	}
	for k := 1; k <= h.length; k++ {
		key := transform(h.store[k])
		if isNil(key) {
			return nil, errors.Wrapf(ErrNilKey, "transform returned nil for the key at position %d", k)
		}
		c.store[k] = key
	}
	return c, nil
}

// cloneCapacity returns the smallest capacity the resizing policy allows for
// n keys.
func cloneCapacity(n int) int {
	c := minCapacity
	for n >= c {
		c *= 2
	}
	return c
}
