package vector

import "github.com/cockroachdb/errors"

// Errors reported by Vector operations. Returned errors wrap one of these
// with the offending index or length; test for them with errors.Is.
var (
	// ErrOutOfMemory is returned when backing storage cannot be acquired.
	// The vector is left exactly as it was before the call.
	ErrOutOfMemory = errors.New("vector: out of memory")

	// ErrLengthExceeded is returned when a requested length or capacity is
	// negative or larger than MaxSize. It is reported before any allocation.
	ErrLengthExceeded = errors.New("vector: length error")

	// ErrOutOfRange is returned by checked access and by position-taking
	// operations when the index or position lies outside the vector.
	ErrOutOfRange = errors.New("vector: out of range")
)

func lengthError(n, max int) error {
	return errors.Wrapf(ErrLengthExceeded, "requested %d, max %d", n, max)
}

func rangeError(i, n int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, n)
}

func errOutOfMemory(n, size int) error {
	return errors.Wrapf(ErrOutOfMemory, "%d elements of %d bytes", n, size)
}

func growthError(length, extra, max int) error {
	return errors.Wrapf(ErrLengthExceeded, "length %d plus %d, max %d", length, extra, max)
}
