package water

import (
	"fmt"
	"image/color"

	css "github.com/mazznoer/csscolorparser"
	"golang.org/x/exp/constraints"
)

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// ParseHex converts a human-editable color ("#2d81ae", "#6cf", "rgb(...)")
// into an RGB. Alpha is ignored.
func ParseHex(s string) (RGB, error) {
	c, err := css.Parse(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

func mustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// NRGBA converts to an opaque 8-bit color, rounding each channel.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: 255,
	}
}

// Array32 returns the channels as float32, the layout GL uniforms and
// color widgets expect.
func (c RGB) Array32() [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// RGBFromArray32 is the inverse of Array32.
func RGBFromArray32(a [3]float32) RGB {
	return RGB{R: float64(a[0]), G: float64(a[1]), B: float64(a[2])}
}

// LerpRGB mixes a and b component-wise by t.
func LerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
	}
}

func channel8(v float64) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}

// Lerp returns a + (b-a)*t.
func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

// Clamp limits n to [minN, maxN].
func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)
	return n
}

func rgbaOf(c RGB) color.RGBA {
	n := c.NRGBA()
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}
