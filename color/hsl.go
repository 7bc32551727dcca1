package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// ─────────────────────────────────────────────────────────────────────────────
// HSL adjustments
//
// Each adjustment converts to HSL, changes one channel, clamps it to its
// range and converts back. Alpha is always kept.
// ─────────────────────────────────────────────────────────────────────────────

// HSL returns the hue in degrees [0, 360) and saturation and lightness in
// [0, 1].
func (c Color) HSL() (h, s, l float64) {
	return c.clamped().rgb().Hsl()
}

func (c Color) withHSL(fn func(h, s, l float64) (float64, float64, float64)) Color {
	h, s, l := fn(c.HSL())
	return from(colorful.Hsl(normHue(h), clamp01(s), clamp01(l)), c.A)
}

// Lighten raises lightness by amount (0..1), saturating at white.
func (c Color) Lighten(amount float64) Color {
	return c.withHSL(func(h, s, l float64) (float64, float64, float64) { return h, s, l + amount })
}

// Darken lowers lightness by amount (0..1), saturating at black.
func (c Color) Darken(amount float64) Color {
	return c.Lighten(-amount)
}

// WithHue returns c with its hue replaced by h degrees. Any angle is
// accepted and normalized to [0, 360).
func (c Color) WithHue(h float64) Color {
	return c.withHSL(func(_, s, l float64) (float64, float64, float64) { return h, s, l })
}

// WithSaturation returns c with saturation set to s, clamped to [0, 1].
func (c Color) WithSaturation(s float64) Color {
	return c.withHSL(func(h, _, l float64) (float64, float64, float64) { return h, s, l })
}

// WithLightness returns c with lightness set to l, clamped to [0, 1].
func (c Color) WithLightness(l float64) Color {
	return c.withHSL(func(h, s, _ float64) (float64, float64, float64) { return h, s, l })
}

// RotateHue shifts the hue by deg degrees.
func (c Color) RotateHue(deg float64) Color {
	return c.withHSL(func(h, s, l float64) (float64, float64, float64) { return h + deg, s, l })
}

// Mix linearly interpolates every channel, alpha included, from c (t = 0)
// to other (t = 1). t is clamped to [0, 1].
func (c Color) Mix(other Color, t float64) Color {
	t = clamp01(t)
	blended := c.clamped().rgb().BlendRgb(other.clamped().rgb(), t)
	return from(blended, c.A+(other.A-c.A)*t)
}

// ─────────────────────────────────────────────────────────────────────────────
// Palettes
// ─────────────────────────────────────────────────────────────────────────────

// Complementary returns c with its hue rotated by 180°.
func (c Color) Complementary() Color { return c.RotateHue(180) }

// Triadic returns c followed by its 120° and 240° rotations.
func (c Color) Triadic() []Color { return c.rotations(120, 240) }

// Tetradic returns c followed by its 90°, 180° and 270° rotations.
func (c Color) Tetradic() []Color { return c.rotations(90, 180, 270) }

func (c Color) rotations(degs ...float64) []Color {
	return append([]Color{c}, lo.Map(degs, func(d float64, _ int) Color { return c.RotateHue(d) })...)
}

// Analogous returns count colors whose hues are spaced angle degrees
// apart and centered on c's hue. With an odd count the middle element is
// c's hue; count <= 0 yields an empty slice.
//
//	c.Analogous(3, 30) // hues h-30, h, h+30
func (c Color) Analogous(count int, angle float64) []Color {
	if count <= 0 {
		return []Color{}
	}
	mid := float64(count-1) / 2
	return lo.Times(count, func(i int) Color {
		return c.RotateHue((float64(i) - mid) * angle)
	})
}
