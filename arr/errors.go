package arr

import "errors"

// Sentinel errors returned by slice operations.
var (
	// ErrEmptyList is returned when an operation needs at least one element,
	// such as Random.
	ErrEmptyList = errors.New("arr: list is empty")

	// ErrInvalidSize is returned by Chunk and Windowed when size <= 0.
	ErrInvalidSize = errors.New("arr: size must be greater than 0")

	// ErrInvalidStep is returned by Windowed when step <= 0.
	ErrInvalidStep = errors.New("arr: step must be greater than 0")

	// ErrNotAList is returned by Flatten when an element is not a slice or
	// array.
	ErrNotAList = errors.New("arr: element is not a list")

	// ErrNotNumeric is returned by Numbers when an element is not a number.
	ErrNotNumeric = errors.New("arr: element is not numeric")

	// ErrIndexOutOfRange is returned by Swap when an index is outside
	// [0, len-1].
	ErrIndexOutOfRange = errors.New("arr: index out of range")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")
)
