package num

import "errors"

// Sentinel errors returned by number operations.
var (
	// ErrNegativeFactorial is returned by Factorial for n < 0.
	ErrNegativeFactorial = errors.New("num: factorial of a negative number")

	// ErrRomanOutOfRange is returned by ToRoman outside 1..3999.
	ErrRomanOutOfRange = errors.New("num: roman numerals cover 1..3999")

	// ErrInvalidRoman is returned by FromRoman for a malformed or
	// non-canonical numeral.
	ErrInvalidRoman = errors.New("num: invalid roman numeral")

	// ErrInvalidRange is returned when a lower bound is not below its upper
	// bound.
	ErrInvalidRange = errors.New("num: invalid range")

	// ErrOverflow is returned when a result does not fit its integer type.
	ErrOverflow = errors.New("num: result overflows its type")
)
