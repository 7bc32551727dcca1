package dict

import "errors"

// Sentinel errors returned by map operations.
var (
	// ErrEmptyMap is returned by Shift when the map has no entries.
	ErrEmptyMap = errors.New("dict: map is empty")

	// ErrInvalidPath is returned when a key path is empty or runs through a
	// value that is not a map.
	ErrInvalidPath = errors.New("dict: invalid key path")
)
