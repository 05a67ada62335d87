package vector

import (
	"iter"
	"slices"

	"go.uber.org/zap"
)

// Vector is a dynamic array. It owns one backing buffer of Cap() slots, of
// which the first Len() hold live elements; the rest are zeroed and reserved
// for growth. The zero value is an empty vector ready to use.
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	buf      []T // len(buf) == capacity, nil iff capacity == 0
	size     int
	opts     options
	reallocs int
}

// New returns an empty vector. No storage is allocated.
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{opts: newOptions(opts)}
}

// NewSized returns a vector of n zero-valued elements with capacity exactly n.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	buf, err := v.acquire(n)
	if err != nil {
		return nil, err
	}
	v.buf, v.size = buf, n
	return v, nil
}

// NewFilled returns a vector of n copies of value with capacity exactly n.
func NewFilled[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	buf, err := v.acquire(n)
	if err != nil {
		return nil, err
	}
	fillConstruct(buf, value)
	v.buf, v.size = buf, n
	return v, nil
}

// FromSlice returns a vector holding copies of the elements of s, with
// capacity exactly len(s).
func FromSlice[T any](s []T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	buf, err := v.acquire(len(s))
	if err != nil {
		return nil, err
	}
	copyConstruct(buf, s)
	v.buf, v.size = buf, len(s)
	return v, nil
}

// FromSeq drains seq and returns a vector of its elements with capacity
// exactly the number of elements produced.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) (*Vector[T], error) {
	return FromSlice(slices.Collect(seq), opts...)
}

// Of returns a vector of the given values. It panics if storage cannot be
// acquired, which for values already held in memory does not happen in practice.
func Of[T any](values ...T) *Vector[T] {
	v, err := FromSlice(values)
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns a deep copy of v with capacity exactly v.Len().
// The copy never shares storage with v and inherits v's options.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{opts: v.opts}
	buf, err := c.acquire(v.size)
	if err != nil {
		return nil, err
	}
	copyConstruct(buf, v.buf[:v.size])
	c.buf, c.size = buf, v.size
	return c, nil
}

// Move transfers v's storage to a new vector and leaves v empty with no
// storage. v remains usable.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{buf: v.buf, size: v.size, opts: v.opts, reallocs: v.reallocs}
	v.buf, v.size, v.reallocs = nil, 0, 0
	return m
}

// CopyFrom replaces the contents of v with copies of src's elements.
// When v lacks capacity the new storage is acquired before anything is
// destroyed, so on error v is unchanged. Copying from v itself is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	values := src.buf[:src.size]
	return v.assign(len(values), func(dst []T) { copyConstruct(dst, values) })
}

// MoveFrom destroys v's elements, releases its storage and adopts src's
// storage, leaving src empty. Moving from v itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.buf, v.size = src.buf, src.size
	src.buf, src.size = nil, 0
}

// Assign replaces the contents of v with copies of values. Existing
// capacity is reused when sufficient. values may alias v's own elements.
func (v *Vector[T]) Assign(values ...T) error {
	if aliases(v.buf, values) {
		values = slices.Clone(values)
	}
	return v.assign(len(values), func(dst []T) { copyConstruct(dst, values) })
}

// AssignN replaces the contents of v with n copies of value.
func (v *Vector[T]) AssignN(n int, value T) error {
	return v.assign(n, func(dst []T) { fillConstruct(dst, value) })
}

func (v *Vector[T]) assign(n int, construct func(dst []T)) error {
	if max := maxSize[T](); n < 0 || n > max {
		return lengthError(n, max)
	}
	if n > len(v.buf) {
		buf, err := v.acquire(n)
		if err != nil {
			return err
		}
		v.Release()
		v.install(buf)
	} else {
		v.Clear()
	}
	construct(v.buf[:n])
	v.size = n
	return nil
}

// Reserve ensures capacity for at least n elements. When n exceeds the
// current capacity, storage of exactly n slots is acquired and the live
// elements are moved into it.
func (v *Vector[T]) Reserve(n int) error {
	if max := maxSize[T](); n < 0 || n > max {
		return lengthError(n, max)
	}
	if n <= len(v.buf) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reduces capacity to exactly Len(). An empty vector releases
// its storage entirely.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.buf) {
		return nil
	}
	return v.reallocate(v.size)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of reserved element slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether v holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest number of elements a vector of T can hold.
func (v *Vector[T]) MaxSize() int { return maxSize[T]() }

// Get returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) Get(i int) T {
	return v.buf[:v.size][i]
}

// Set assigns x to the element at index i, as writing through Ref(i) would.
// It panics if i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	v.buf[:v.size][i] = x
}

// Ref returns a pointer to the element at index i. The pointer is
// invalidated by any operation that reallocates or shifts elements.
func (v *Vector[T]) Ref(i int) *T {
	return &v.buf[:v.size][i]
}

// At returns the element at index i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, rangeError(i, v.size)
	}
	return v.buf[i], nil
}

// Front returns the first element. It panics if v is empty.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic("vector: Front on empty vector")
	}
	return v.buf[0]
}

// Back returns the last element. It panics if v is empty.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic("vector: Back on empty vector")
	}
	return v.buf[v.size-1]
}

// Data returns the live elements as a slice sharing v's storage. Its
// capacity is clipped to Len() so appending to it never writes into v.
// It is nil when v has no storage.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// acquire allocates n slots, reporting the outcome to the logger and collector.
func (v *Vector[T]) acquire(n int) ([]T, error) {
	buf, err := allocate[T](n)
	if err != nil {
		v.opts.collector.observeFailure(err)
		v.opts.log().Warn("vector: allocation failed",
			zap.Int("slots", n),
			zap.Int("elem_size", elemSize[T]()),
			zap.Error(err))
		return nil, err
	}
	v.opts.collector.observeAlloc(n * elemSize[T]())
	return buf, nil
}

// install makes buf the backing storage of an empty vector with no storage.
func (v *Vector[T]) install(buf []T) {
	v.buf = buf
	v.reallocs++
}

// free drops the backing storage. The caller must already have destroyed
// or moved out every live element.
func (v *Vector[T]) free() {
	if v.buf == nil {
		return
	}
	clear(v.buf[:v.size])
	v.opts.collector.observeRelease(len(v.buf) * elemSize[T]())
	v.buf = nil
}

// reallocate moves the live elements into new storage of exactly capacity
// slots. On error nothing is modified.
func (v *Vector[T]) reallocate(capacity int) error {
	buf, err := v.acquire(capacity)
	if err != nil {
		return err
	}
	from := len(v.buf)
	copy(buf, v.buf[:v.size])
	v.free()
	v.install(buf)
	v.opts.log().Debug("vector: reallocated",
		zap.Int("from", from),
		zap.Int("to", capacity),
		zap.Int("len", v.size))
	return nil
}

// ensure makes room for extra more elements. With exact set the capacity
// becomes exactly what is required; otherwise the growth policy applies.
func (v *Vector[T]) ensure(extra int, exact bool) error {
	max := maxSize[T]()
	if extra < 0 || extra > max-v.size {
		return growthError(v.size, extra, max)
	}
	required := v.size + extra
	if required <= len(v.buf) {
		return nil
	}
	if exact {
		return v.reallocate(required)
	}
	return v.reallocate(nextCapacity(len(v.buf), required, max))
}
