package color_test

import (
	"errors"
	stdcolor "image/color"
	"math"
	"testing"

	"github.com/hasbyte1/go-utility-belts/color"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func assertHex(t *testing.T, name string, c color.Color, want string) {
	t.Helper()
	if got := c.ToHex(); got != want {
		t.Fatalf("%s = %s; want %s", name, got, want)
	}
}

var red = color.RGB(1, 0, 0)

// ─── Contrast ─────────────────────────────────────────────────────────────────

func TestLightAndDark(t *testing.T) {
	if !color.White.IsLight() || color.White.IsDark() {
		t.Fatal("white should be light")
	}
	if color.Black.IsLight() || !color.Black.IsDark() {
		t.Fatal("black should be dark")
	}
	if color.White.ContrastColor() != color.Black {
		t.Fatalf("White.ContrastColor() = %v; want black", color.White.ContrastColor())
	}
	if color.Black.ContrastColor() != color.White {
		t.Fatalf("Black.ContrastColor() = %v; want white", color.Black.ContrastColor())
	}
	if l := color.White.Luminance(); !near(l, 1) {
		t.Fatalf("White.Luminance() = %v; want 1", l)
	}
	if got := color.Black.ContrastRatio(color.White); !near(got, 21) {
		t.Fatalf("ContrastRatio(black, white) = %v; want 21", got)
	}
	if got := red.ContrastRatio(red); !near(got, 1) {
		t.Fatalf("ContrastRatio(red, red) = %v; want 1", got)
	}
}

func TestGrayscale(t *testing.T) {
	c := color.MustFromHex("#3366cc").WithAlpha(0.4)
	g := c.Grayscale()
	if g.R != g.G || g.G != g.B {
		t.Fatalf("Grayscale = %v; channels differ", g)
	}
	if g.A != 0.4 {
		t.Fatalf("Grayscale alpha = %v; want 0.4", g.A)
	}
	if math.Abs(g.Luminance()-c.Luminance()) > 1e-9 {
		t.Fatalf("Grayscale luminance = %v; want %v", g.Luminance(), c.Luminance())
	}
}

// ─── Hex ──────────────────────────────────────────────────────────────────────

func TestFromHex(t *testing.T) {
	tests := []struct {
		in         string
		r, g, b, a uint8
	}{
		{"#3366cc", 0x33, 0x66, 0xcc, 0xff},
		{"3366CC", 0x33, 0x66, 0xcc, 0xff},
		{"#fff", 0xff, 0xff, 0xff, 0xff},
		{"#00000080", 0, 0, 0, 0x80},
		{"#0f08", 0, 0xff, 0, 0x88},
	}
	for _, tc := range tests {
		c, err := color.FromHex(tc.in)
		if err != nil {
			t.Fatalf("FromHex(%q) error: %v", tc.in, err)
		}
		r, g, b, a := c.RGBA255()
		if r != tc.r || g != tc.g || b != tc.b || a != tc.a {
			t.Fatalf("FromHex(%q) = %d,%d,%d,%d; want %d,%d,%d,%d", tc.in, r, g, b, a, tc.r, tc.g, tc.b, tc.a)
		}
	}

	for _, bad := range []string{"", "#", "#12345", "#gg0000", "#1234567", "red"} {
		if _, err := color.FromHex(bad); !errors.Is(err, color.ErrInvalidHex) {
			t.Fatalf("FromHex(%q) err = %v; want ErrInvalidHex", bad, err)
		}
	}
}

func TestToHex(t *testing.T) {
	c := color.FromRGBA255(0x33, 0x66, 0xcc)
	tests := []struct {
		opts color.HexOptions
		want string
	}{
		{color.DefaultHexOptions(), "#3366cc"},
		{color.HexOptions{Uppercase: true}, "#3366CC"},
		{color.HexOptions{IncludeAlpha: true}, "#3366ccff"},
		{color.HexOptions{OmitHash: true, IncludeAlpha: true, Uppercase: true}, "3366CCFF"},
	}
	for _, tc := range tests {
		if got := c.ToHex(tc.opts); got != tc.want {
			t.Fatalf("ToHex(%+v) = %s; want %s", tc.opts, got, tc.want)
		}
	}
	if got := c.WithAlpha(0).String(); got != "#3366cc00" {
		t.Fatalf("String() = %s; want #3366cc00", got)
	}
}

// ─── HSL ──────────────────────────────────────────────────────────────────────

func TestHSLAdjustments(t *testing.T) {
	h, s, l := red.HSL()
	if !near(h, 0) || !near(s, 1) || !near(l, 0.5) {
		t.Fatalf("red.HSL() = %v, %v, %v; want 0, 1, 0.5", h, s, l)
	}

	assertHex(t, "Lighten", color.MustFromHex("#3366cc").Lighten(0.2), "#85a3e0")
	assertHex(t, "Black.Lighten(1)", color.Black.Lighten(1), "#ffffff")
	assertHex(t, "White.Darken(0.5)", color.White.Darken(0.5), "#808080")
	assertHex(t, "Darken clamps", red.Darken(2), "#000000")
	assertHex(t, "WithLightness clamps", red.WithLightness(3), "#ffffff")
	assertHex(t, "WithSaturation(0)", red.WithSaturation(0), "#808080")
	assertHex(t, "WithHue(-120)", red.WithHue(-120), "#0000ff")
	assertHex(t, "HSL(120, 1, .5)", color.HSL(120, 1, 0.5), "#00ff00")

	if got := red.WithAlpha(0.3).Lighten(0.1).A; got != 0.3 {
		t.Fatalf("Lighten alpha = %v; want 0.3", got)
	}
}

func TestMix(t *testing.T) {
	assertHex(t, "Mix half", color.Black.Mix(color.White, 0.5), "#808080")
	assertHex(t, "Mix 0", color.Black.Mix(color.White, 0), "#000000")
	assertHex(t, "Mix clamps t", color.Black.Mix(color.White, 4), "#ffffff")
	if got := color.Transparent.Mix(color.White, 0.25).A; !near(got, 0.25) {
		t.Fatalf("Mix alpha = %v; want 0.25", got)
	}
}

func TestInvert(t *testing.T) {
	if got := color.Black.Invert(); got != color.White {
		t.Fatalf("Black.Invert() = %v; want white", got)
	}
	assertHex(t, "Invert", color.MustFromHex("#3366cc").Invert(), "#cc9933")
}

// ─── Palettes ─────────────────────────────────────────────────────────────────

func TestPalettes(t *testing.T) {
	assertHex(t, "Complementary", red.Complementary(), "#00ffff")

	tri := red.Triadic()
	if len(tri) != 3 {
		t.Fatalf("len(Triadic) = %d; want 3", len(tri))
	}
	for i, want := range []string{"#ff0000", "#00ff00", "#0000ff"} {
		assertHex(t, "Triadic", tri[i], want)
	}

	tet := red.Tetradic()
	if len(tet) != 4 || tet[0] != red {
		t.Fatalf("Tetradic = %v; want 4 colors starting with red", tet)
	}
	assertHex(t, "Tetradic[2]", tet[2], "#00ffff")

	an := red.Analogous(3, 30)
	if len(an) != 3 {
		t.Fatalf("len(Analogous) = %d; want 3", len(an))
	}
	assertHex(t, "Analogous middle", an[1], "#ff0000")
	if h, _, _ := an[0].HSL(); math.Abs(h-330) > 1e-6 {
		t.Fatalf("Analogous[0] hue = %v; want 330", h)
	}
	if h, _, _ := an[2].HSL(); math.Abs(h-30) > 1e-6 {
		t.Fatalf("Analogous[2] hue = %v; want 30", h)
	}
	if got := red.Analogous(0, 30); len(got) != 0 {
		t.Fatalf("Analogous(0) = %v; want empty", got)
	}
}

func TestMaterialSwatch(t *testing.T) {
	base := color.MustFromHex("#3366cc")
	sw := base.ToMaterialColor()
	if sw.Base() != base {
		t.Fatalf("Base() = %v; want %v", sw.Base(), base)
	}
	if c, ok := sw.Shade(500); !ok || c != base {
		t.Fatalf("Shade(500) = %v, %v; want base", c, ok)
	}
	if _, ok := sw.Shade(550); ok {
		t.Fatal("Shade(550) should not exist")
	}
	for i := 1; i < len(sw); i++ {
		if sw[i].Luminance() > sw[i-1].Luminance() {
			t.Fatalf("shade %d is lighter than shade %d", color.SwatchWeights[i], color.SwatchWeights[i-1])
		}
	}
	light, _ := sw.Shade(50)
	dark, _ := sw.Shade(900)
	if !light.IsLight() || !dark.IsDark() {
		t.Fatalf("Shade(50) = %v, Shade(900) = %v; want light and dark ends", light, dark)
	}
}

// ─── image/color ──────────────────────────────────────────────────────────────

func TestImageColor(t *testing.T) {
	var c stdcolor.Color = color.White
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Fatalf("White.RGBA() = %d,%d,%d,%d; want all 0xffff", r, g, b, a)
	}

	nrgba := stdcolor.NRGBAModel.Convert(color.FromRGBA255(10, 20, 30, 255)).(stdcolor.NRGBA)
	if nrgba != (stdcolor.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("NRGBA = %v; want {10 20 30 255}", nrgba)
	}
}
