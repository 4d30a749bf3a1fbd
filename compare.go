package heapq

import (
	"cmp"
	"reflect"

	"github.com/pkg/errors"
)

// order resolves the active ordering for a single comparison: the explicit
// compare function when one was supplied, the intrinsic order of the concrete
// keys otherwise. Resolution is lazy so that a heap with no usable ordering
// can still be constructed and hold a single key.
func (h *Heap[T]) order(a, b T) (int, error) {
	if h.cmp != nil {
		return h.cmp(a, b), nil
	}
	return reflectCompare(any(a), any(b))
}

type kindClass int

const (
	classNone kindClass = iota
	classInt
	classUint
	classFloat
	classString
)

func classOf(k reflect.Kind) kindClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	default:
		return classNone
	}
}

// reflectCompare orders two keys by their concrete kind. Only kinds with an
// intrinsic total order qualify: signed and unsigned integers, floats, and
// strings. Any other kind, or two keys of different kinds, fails with
// ErrNotOrdered.
func reflectCompare(a, b any) (int, error) {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	ka := classOf(av.Kind())
	if ka == classNone || ka != classOf(bv.Kind()) {
		return 0, errors.Wrapf(ErrNotOrdered, "comparing %T and %T", a, b)
	}
	switch ka {
	case classInt:
		return cmp.Compare(av.Int(), bv.Int()), nil
	case classUint:
		return cmp.Compare(av.Uint(), bv.Uint()), nil
	case classFloat:
		return cmp.Compare(av.Float(), bv.Float()), nil
	default:
		return cmp.Compare(av.String(), bv.String()), nil
	}
}

// isNil reports whether key is an absent value of a nilable kind. Keys of
// value kinds are never nil.
func isNil[T any](key T) bool {
	v := any(key)
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
