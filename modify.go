package vector

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// PushBack appends x, taking ownership of it. When v is full the capacity
// doubles (or becomes 1 for an empty vector) before x is stored.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.ensure(1, false); err != nil {
		return err
	}
	v.buf[v.size] = x
	v.size++
	return nil
}

// EmplaceBack appends a new element constructed in place by construct, which
// receives a pointer to the zeroed slot. A nil construct leaves the zero value.
// The returned pointer is valid until the next reallocation or shift.
func (v *Vector[T]) EmplaceBack(construct func(*T)) (*T, error) {
	if err := v.ensure(1, false); err != nil {
		return nil, err
	}
	p := &v.buf[v.size]
	if construct != nil {
		construct(p)
	}
	v.size++
	return p, nil
}

// PopBack destroys the last element. It panics if v is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
	destroy(v.buf[v.size : v.size+1])
}

// Insert places x before position pos, taking ownership of it, and returns
// the position of the inserted element. pos must be in [0, Len()].
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if err := v.checkPosition(pos); err != nil {
		return 0, err
	}
	if err := v.ensure(1, false); err != nil {
		return 0, err
	}
	v.openGap(pos, 1)
	v.buf[pos] = x
	v.size++
	return pos, nil
}

// Emplace constructs a new element in place before position pos and returns
// its position. construct receives a pointer to the zeroed slot.
func (v *Vector[T]) Emplace(pos int, construct func(*T)) (int, error) {
	if err := v.checkPosition(pos); err != nil {
		return 0, err
	}
	if err := v.ensure(1, false); err != nil {
		return 0, err
	}
	v.openGap(pos, 1)
	if construct != nil {
		construct(&v.buf[pos])
	}
	v.size++
	return pos, nil
}

// InsertN places n copies of value before position pos and returns the
// position of the first one. If capacity is short it grows to exactly
// Len()+n.
func (v *Vector[T]) InsertN(pos, n int, value T) (int, error) {
	if err := v.checkPosition(pos); err != nil {
		return 0, err
	}
	if err := v.ensure(n, true); err != nil {
		return 0, err
	}
	if n == 0 {
		return pos, nil
	}
	v.openGap(pos, n)
	fillConstruct(v.buf[pos:pos+n], value)
	v.size += n
	return pos, nil
}

// InsertSlice places copies of values before position pos and returns the
// position of the first one. If capacity is short it grows to exactly
// Len()+len(values). values may alias v's own elements.
func (v *Vector[T]) InsertSlice(pos int, values ...T) (int, error) {
	if err := v.checkPosition(pos); err != nil {
		return 0, err
	}
	if aliases(v.buf, values) {
		values = slices.Clone(values)
	}
	n := len(values)
	if err := v.ensure(n, true); err != nil {
		return 0, err
	}
	if n == 0 {
		return pos, nil
	}
	v.openGap(pos, n)
	copyConstruct(v.buf[pos:pos+n], values)
	v.size += n
	return pos, nil
}

// Erase destroys the element at pos, closes the gap and returns the
// position of the element that followed it. pos must be in [0, Len()).
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.size {
		return 0, rangeError(pos, v.size)
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange destroys the elements in [first, last), closes the gap and
// returns the position of the element that followed the range. When the
// range reached the end, the returned position equals the new Len().
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	if first < 0 || last > v.size || first > last {
		return 0, errors.Wrapf(ErrOutOfRange, "range [%d, %d), length %d", first, last, v.size)
	}
	n := last - first
	if n == 0 {
		return first, nil
	}
	destroy(v.buf[first:last])
	copy(v.buf[first:], v.buf[last:v.size])
	clear(v.buf[v.size-n : v.size])
	v.size -= n
	return first, nil
}

// Resize changes the length to n. New elements are zero values; surplus
// elements are destroyed and capacity is kept.
func (v *Vector[T]) Resize(n int) error {
	return v.resize(n, nil)
}

// ResizeWith changes the length to n, filling new slots with copies of value.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	return v.resize(n, func(dst []T) { fillConstruct(dst, value) })
}

func (v *Vector[T]) resize(n int, construct func(dst []T)) error {
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if construct != nil {
			construct(v.buf[v.size:n])
		}
		v.size = n
	case n < v.size:
		if n < 0 {
			return lengthError(n, maxSize[T]())
		}
		_, err := v.EraseRange(n, v.size)
		return err
	}
	return nil
}

// Clear destroys every element. Capacity and storage are kept.
func (v *Vector[T]) Clear() {
	destroy(v.buf[:v.size])
	v.size = 0
}

// Swap exchanges the contents and storage of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

// Release destroys every element and frees the storage, leaving v empty
// with zero capacity. v remains usable.
func (v *Vector[T]) Release() {
	v.Clear()
	v.free()
}

func (v *Vector[T]) checkPosition(pos int) error {
	if pos < 0 || pos > v.size {
		return rangeError(pos, v.size)
	}
	return nil
}

// openGap shifts [pos, Len()) right by n and zeroes the n vacated slots.
// Capacity for Len()+n must already be reserved.
func (v *Vector[T]) openGap(pos, n int) {
	copy(v.buf[pos+n:v.size+n], v.buf[pos:v.size])
	clear(v.buf[pos : pos+n])
}
