package heapq

import "github.com/pkg/errors"

// Errors reported by heap operations, matched with errors.Is. ErrNotOrdered
// is a programming error: the fix is supplying a compare function, not
// retrying.
var (
	// ErrNilKey reports a nil key passed to Push or produced by a CloneFunc
	// transform.
	ErrNilKey = errors.New("heapq: nil key")

	// ErrNilTransform reports a nil transform passed to CloneFunc.
	ErrNilTransform = errors.New("heapq: nil transform")

	// ErrEmpty reports Pop or Peek on an empty heap.
	ErrEmpty = errors.New("heapq: empty heap")

	// ErrExhausted reports Next on a depleted iterator.
	ErrExhausted = errors.New("heapq: iterator exhausted")

	// ErrNotOrdered reports a comparison attempted with no usable ordering:
	// no compare function was supplied and the key type has no intrinsic
	// order.
	ErrNotOrdered = errors.New("heapq: key type is not ordered and no compare function was provided")
)
