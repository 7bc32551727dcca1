package color

import (
	"fmt"
	"strings"
)

// HexOptions configures [Color.ToHex].
type HexOptions struct {
	// IncludeAlpha appends the alpha channel as two more digits.
	IncludeAlpha bool
	// Uppercase renders A-F instead of a-f.
	Uppercase bool
	// OmitHash drops the leading '#'.
	OmitHash bool
}

// DefaultHexOptions returns lower-case "#rrggbb" options.
func DefaultHexOptions() HexOptions { return HexOptions{} }

// ToHex renders c as "#rrggbb", or "#rrggbbaa" with IncludeAlpha.
func (c Color) ToHex(opts ...HexOptions) string {
	o := DefaultHexOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	r, g, b, a := c.RGBA255()
	s := fmt.Sprintf("%02x%02x%02x", r, g, b)
	if o.IncludeAlpha {
		s += fmt.Sprintf("%02x", a)
	}
	if o.Uppercase {
		s = strings.ToUpper(s)
	}
	if !o.OmitHash {
		s = "#" + s
	}
	return s
}
