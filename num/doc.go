// Package num provides helpers for Go's integer and floating-point types:
// predicates, interpolation, digit arithmetic, human-readable formatting
// (currency, ordinals, percentages, compact "1.2K" notation), Roman
// numerals, radix conversion and random integer lists.
//
// Functions are generic over the constraints in this package ([Integer],
// [Float], [Number]) so they work with named numeric types too:
//
//	type Cents int64
//	num.IsPositive(Cents(250)) // true
//
// # Formatting
//
// [ToCurrencyString] groups integer digits with a delimiter and drops an
// all-zero fraction unless asked to keep it:
//
//	num.ToCurrencyString(1234567.89) // "1,234,567.89"
//
//	opts := num.DefaultCurrencyOptions()
//	opts.Symbol = "$"
//	num.ToCurrencyString(1000, opts) // "$1,000"
//
// # Errors
//
// [Factorial], [ToRoman], [FromRoman] and [RandomList] validate their input
// and wrap the sentinels in this package; everything else is total.
// Division-like edge cases return a defined value instead: [Normalize]
// yields 0 when low == high and [Percentage] yields "0%" for a zero total.
package num
