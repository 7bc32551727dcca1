package color

import "errors"

// ErrInvalidHex is returned by FromHex for strings that are not #RGB,
// #RGBA, #RRGGBB or #RRGGBBAA.
var ErrInvalidHex = errors.New("color: invalid hex color")
