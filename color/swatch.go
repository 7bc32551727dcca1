package color

import "slices"

// SwatchWeights are the shade weights of a [Swatch], lightest first.
var SwatchWeights = [10]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Swatch is a ten-step ramp of one color ordered like [SwatchWeights]:
// five lighter shades, the base color at 500 and four darker shades.
type Swatch [10]Color

// Shade returns the color for a weight such as 50 or 700.
func (s Swatch) Shade(weight int) (Color, bool) {
	i := slices.Index(SwatchWeights[:], weight)
	if i < 0 {
		return Color{}, false
	}
	return s[i], true
}

// Base returns the 500 shade.
func (s Swatch) Base() Color { return s[5] }

var swatchSteps = [10]float64{0.5, 0.4, 0.3, 0.2, 0.1, 0, -0.1, -0.2, -0.3, -0.4}

// ToMaterialColor builds a Material-style swatch around c by shifting
// lightness: +0.5 down to +0.1 for weights 50..400, none at 500 and -0.1
// to -0.4 for 600..900.
func (c Color) ToMaterialColor() Swatch {
	var s Swatch
	for i, step := range swatchSteps {
		if step == 0 {
			s[i] = c
			continue
		}
		s[i] = c.Lighten(step)
	}
	return s
}
