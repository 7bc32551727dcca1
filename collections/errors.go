package collections

import "errors"

// Sentinel errors returned by Collection operations. Errors from package
// arr (such as arr.ErrInvalidSize from Chunk) are passed through unchanged.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")
)
