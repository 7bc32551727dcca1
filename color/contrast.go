package color

import colorful "github.com/lucasb-eyer/go-colorful"

// lightThreshold is the luminance above which black text reads better
// than white.
const lightThreshold = 0.179

// Luminance returns the WCAG 2 relative luminance of c in [0, 1]. Alpha
// is ignored.
func (c Color) Luminance() float64 {
	r, g, b := c.clamped().rgb().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsLight reports whether c's luminance exceeds 0.179.
func (c Color) IsLight() bool { return c.Luminance() > lightThreshold }

// IsDark reports whether c is not light.
func (c Color) IsDark() bool { return !c.IsLight() }

// ContrastColor returns [Black] for light colors and [White] for dark
// ones.
func (c Color) ContrastColor() Color {
	if c.IsLight() {
		return Black
	}
	return White
}

// ContrastRatio returns the WCAG contrast ratio between c and other, from
// 1 (identical luminance) to 21 (black on white).
func (c Color) ContrastRatio(other Color) float64 {
	l1, l2 := c.Luminance(), other.Luminance()
	if l2 > l1 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Grayscale returns the gray with the same relative luminance as c. Alpha
// is kept.
func (c Color) Grayscale() Color {
	l := c.Luminance()
	return from(colorful.LinearRgb(l, l, l), c.A)
}
