package vector

import "cmp"

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a orders before b lexicographically.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// LessFunc is like Less but orders elements with less.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		switch {
		case less(a.buf[i], b.buf[i]):
			return true
		case less(b.buf[i], a.buf[i]):
			return false
		}
	}
	return a.size < b.size
}

// Greater reports whether a orders after b: neither Less nor Equal.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b) && !Equal(a, b)
}

// LessEqual reports whether a is not Greater than b.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Greater(a, b)
}

// GreaterEqual reports whether a is not Less than b.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or +1 as a orders before, equal to or after b.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	switch {
	case Less(a, b):
		return -1
	case Equal(a, b):
		return 0
	}
	return 1
}
