package enum

import "errors"

var (
	// ErrNoMatch is returned by When when the value has no branch.
	ErrNoMatch = errors.New("enum: no branch matches value")

	// ErrUnknownLabel is returned by Parse when no value carries the label.
	ErrUnknownLabel = errors.New("enum: unknown label")
)
