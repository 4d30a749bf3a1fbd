package heapq

import (
	"cmp"
	"iter"
)

// Merge returns the keys of all heaps combined in non-decreasing natural
// order. The sources are never disturbed: each contributes a draining
// iterator over its own clone.
func Merge[T cmp.Ordered](heaps ...*Heap[T]) iter.Seq2[T, error] {
	return MergeFunc(cmp.Compare[T], heaps...)
}

// MergeFunc returns the keys of all heaps combined in non-decreasing order
// under compare. The heaps must be ordered by a comparison consistent with
// compare, otherwise the output order is unspecified. Keys comparing equal
// are produced in source order.
func MergeFunc[T any](compare func(T, T) int, heaps ...*Heap[T]) iter.Seq2[T, error] {
	switch len(heaps) {
	case 0:
		return merge0[T]()
	case 1:
		return heaps[0].Values()
	case 2:
		return merge2(compare, heaps[0].Iter(), heaps[1].Iter())
	default:
		return mergeN(compare, heaps)
	}
}

func merge0[T any]() iter.Seq2[T, error] {
	return func(func(T, error) bool) {}
}

func merge2[T any](compare func(T, T) int, it0, it1 *Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		v0, err0, ok0 := pull(it0)
		v1, err1, ok1 := pull(it1)

		for ok0 && ok1 {
			if compare(v1, v0) < 0 {
				if !yield(v1, nil) {
					return
				}
				v1, err1, ok1 = pull(it1)
			} else {
				if !yield(v0, nil) {
					return
				}
				v0, err0, ok0 = pull(it0)
			}
		}

		if flush(yield, it0, v0, err0, ok0) {
			flush(yield, it1, v1, err1, ok1)
		}
	}
}

// mergeN selects the next key with a heap of source cursors keyed by their
// head values, ties broken by source rank.
func mergeN[T any](compare func(T, T) int, heaps []*Heap[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		fail := func(err error) {
			var zero T
			yield(zero, err)
		}

		queue := NewFunc(func(a, b *cursor[T]) int {
			if diff := compare(a.head, b.head); diff != 0 {
				return diff
			}
			return a.rank - b.rank
		}, WithCapacity(len(heaps)+1))

		for rank, h := range heaps {
			it := h.Iter()
			head, err, ok := pull(it)
			if err != nil {
				fail(err)
				return
			}
			if !ok {
				continue
			}
			if err := queue.Push(&cursor[T]{head: head, it: it, rank: rank}); err != nil {
				fail(err)
				return
			}
		}

		for !queue.Empty() {
			c, err := queue.Pop()
			if err != nil {
				fail(err)
				return
			}
			if !yield(c.head, nil) {
				return
			}
			head, err, ok := pull(c.it)
			if err != nil {
				fail(err)
				return
			}
			if ok {
				c.head = head
				if err := queue.Push(c); err != nil {
					fail(err)
					return
				}
			}
		}
	}
}

type cursor[T any] struct {
	head T
	it   *Iterator[T]
	rank int
}

// pull advances it by one key. ok is false when the iterator is exhausted or
// the underlying comparison failed.
func pull[T any](it *Iterator[T]) (v T, err error, ok bool) {
	if !it.HasNext() {
		return v, nil, false
	}
	v, err = it.Next()
	return v, err, err == nil
}

// flush drains the remaining keys of one source once the other ran out. It
// reports whether the consumer is still accepting keys.
func flush[T any](yield func(T, error) bool, it *Iterator[T], v T, err error, ok bool) bool {
	for ok {
		if !yield(v, nil) {
			return false
		}
		v, err, ok = pull(it)
	}
	if err != nil {
		yield(v, err)
		return false
	}
	return true
}
