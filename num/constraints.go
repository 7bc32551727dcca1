package num

// Signed permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number permits any integer or floating-point type: every type that
// supports the arithmetic operators and converts losslessly enough to
// float64 for the helpers in this module.
type Number interface {
	Integer | Float
}
