package vector

import (
	"math"
	"runtime"
	"unsafe"
)

// Destroyer is implemented by element types that need to release resources
// when the vector destroys them. Destroy is called on pop, erase, clear,
// shrinking resize, elements replaced by assignment, and Release. It is not
// called when elements are relocated or shifted, since those are moves.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types whose copies must not share state.
// The vector calls Clone wherever it copy-constructs an element.
type Cloner[T any] interface {
	Clone() T
}

// elemSize returns the size in bytes of one element slot.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// maxSize returns the largest element count addressable for T.
func maxSize[T any]() int {
	size := elemSize[T]()
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// allocate returns n zeroed slots. A runtime refusal to create the slice
// is reported as ErrOutOfMemory instead of crashing the caller.
func allocate[T any](n int) (buf []T, err error) {
	if n < 0 || n > maxSize[T]() {
		return nil, lengthError(n, maxSize[T]())
	}
	if n == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, errOutOfMemory(n, elemSize[T]())
		}
	}()
	return make([]T, n), nil
}

// nextCapacity applies the growth policy: double the current capacity
// (or 1 when empty), but never less than required and never above max.
func nextCapacity(capacity, required, max int) int {
	next := 1
	if capacity > 0 {
		if capacity > max/2 {
			next = max
		} else {
			next = capacity * 2
		}
	}
	if required > next {
		next = required
	}
	return next
}

func destroys[T any]() bool {
	_, ok := any((*T)(nil)).(Destroyer)
	return ok
}

// destroy ends the lifetime of every element in s and leaves the slots zeroed.
func destroy[T any](s []T) {
	if len(s) == 0 {
		return
	}
	if destroys[T]() {
		for i := range s {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	clear(s)
}

func clones[T any]() bool {
	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		return true
	}
	_, ok := any(&zero).(Cloner[T])
	return ok
}

func cloneOf[T any](p *T) T {
	if c, ok := any(*p).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(p).(Cloner[T]); ok {
		return c.Clone()
	}
	return *p
}

// copyConstruct copies src into the uninitialized slots of dst.
// dst and src must not overlap.
func copyConstruct[T any](dst, src []T) {
	if !clones[T]() {
		copy(dst, src)
		return
	}
	for i := range src {
		dst[i] = cloneOf(&src[i])
	}
}

// fillConstruct copy-constructs value into every slot of dst.
func fillConstruct[T any](dst []T, value T) {
	cloning := clones[T]()
	for i := range dst {
		if cloning {
			dst[i] = cloneOf(&value)
		} else {
			dst[i] = value
		}
	}
}

// aliases reports whether values reads from memory inside buf's capacity.
func aliases[T any](buf, values []T) bool {
	size := uintptr(elemSize[T]())
	if size == 0 || cap(buf) == 0 || len(values) == 0 {
		return false
	}
	bufStart := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	valStart := uintptr(unsafe.Pointer(unsafe.SliceData(values)))
	bufEnd := bufStart + uintptr(cap(buf))*size
	valEnd := valStart + uintptr(len(values))*size
	return bufStart < valEnd && valStart < bufEnd
}
