// Package color provides an RGBA color value with WCAG luminance and
// contrast helpers, HSL adjustments, palette generation and hex
// conversion.
//
// Channels are float64 in [0, 1]. Conversions to and from HSL and linear
// RGB are delegated to github.com/lucasb-eyer/go-colorful.
//
//	c, _ := color.FromHex("#3366cc")
//	c.IsLight()                    // false
//	c.ContrastColor()              // color.White
//	c.Lighten(0.2).ToHex()         // "#85a3e0"
//	c.ToHex(color.HexOptions{IncludeAlpha: true, Uppercase: true})
//
// # Palettes
//
// Complementary, Triadic, Tetradic and Analogous rotate the hue and keep
// saturation, lightness and alpha. ToMaterialColor builds a ten-step
// swatch from light (50) to dark (900) with the original color at 500.
//
// Color also implements image/color.Color so it can be drawn with the
// standard image packages.
package color
