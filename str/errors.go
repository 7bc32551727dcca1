package str

import "errors"

// Sentinel errors returned by string operations.
var (
	// ErrIndexOutOfRange is returned by Format when a {n} placeholder refers
	// to an argument that was not supplied.
	ErrIndexOutOfRange = errors.New("str: placeholder index out of range")

	// ErrMissingKey is returned by FormatMap when a {name} placeholder has no
	// matching entry in the value map.
	ErrMissingKey = errors.New("str: placeholder key not found")

	// ErrInvalidBase64 is returned by FromBase64 when the input is not valid
	// standard Base64.
	ErrInvalidBase64 = errors.New("str: invalid base64 input")

	// ErrUnsupportedDigest is returned by Digest for an unknown algorithm name.
	ErrUnsupportedDigest = errors.New("str: unsupported digest algorithm")
)
