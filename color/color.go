package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// Color is an sRGB color with straight (non-premultiplied) alpha. Every
// channel is in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	// Black is opaque #000000.
	Black = Color{0, 0, 0, 1}
	// White is opaque #ffffff.
	White = Color{1, 1, 1, 1}
	// Transparent is fully transparent black.
	Transparent = Color{}
)

// RGB returns an opaque color from channels in [0, 1].
func RGB(r, g, b float64) Color { return Color{r, g, b, 1} }

// HSL returns an opaque color from hue in degrees and saturation and
// lightness in [0, 1].
func HSL(h, s, l float64) Color {
	return from(colorful.Hsl(normHue(h), clamp01(s), clamp01(l)), 1)
}

// FromRGBA255 builds a color from 8-bit channels. Alpha defaults to 255.
func FromRGBA255(r, g, b uint8, a ...uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(lo.FirstOr(a, 255)) / 255,
	}
}

// FromHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The leading
// '#' is optional and digits are case-insensitive.
func FromHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !isHex(h) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	var rgb, alpha string
	switch len(h) {
	case 3, 6:
		rgb = h
	case 4, 8:
		rgb, alpha = h[:len(h)*3/4], h[len(h)*3/4:]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	base, err := colorful.Hex("#" + rgb)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	a := 1.0
	if alpha != "" {
		if len(alpha) == 1 {
			alpha += alpha
		}
		v, _ := strconv.ParseUint(alpha, 16, 8)
		a = float64(v) / 255
	}
	return from(base, a), nil
}

// MustFromHex is like [FromHex] but panics on an invalid string.
func MustFromHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// RGBA255 returns the channels scaled to 0..255 and rounded.
func (c Color) RGBA255() (r, g, b, a uint8) {
	return to255(c.R), to255(c.G), to255(c.B), to255(c.A)
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit
// channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	cl := c.clamped()
	a = uint32(math.Round(cl.A * 0xffff))
	r = uint32(math.Round(cl.R * cl.A * 0xffff))
	g = uint32(math.Round(cl.G * cl.A * 0xffff))
	b = uint32(math.Round(cl.B * cl.A * 0xffff))
	return r, g, b, a
}

// WithAlpha returns c with alpha set to a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Invert returns the RGB negative of c. Alpha is kept.
func (c Color) Invert() Color {
	return Color{1 - c.R, 1 - c.G, 1 - c.B, c.A}
}

// String returns the lower-case #RRGGBBAA form.
func (c Color) String() string {
	return c.ToHex(HexOptions{IncludeAlpha: true})
}

// ─── Conversion helpers ───────────────────────────────────────────────────────

func (c Color) rgb() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func from(cf colorful.Color, a float64) Color {
	cf = cf.Clamped()
	return Color{cf.R, cf.G, cf.B, a}
}

func (c Color) clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

func clamp01(v float64) float64 { return lo.Clamp(v, 0, 1) }

func to255(v float64) uint8 { return uint8(math.Round(clamp01(v) * 255)) }

func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
