package water

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#2d81ae", RGB{0x2d / 255.0, 0x81 / 255.0, 0xae / 255.0}},
		{"#66c1f9", RGB{0x66 / 255.0, 0xc1 / 255.0, 0xf9 / 255.0}},
		{"#fff", RGB{1, 1, 1}},
		{"black", RGB{0, 0, 0}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "not a color", "#gggggg"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) expected error", in)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{DefaultDepthHex, DefaultSurfaceHex, "#000000", "#ffffff"} {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("Hex() = %q, want %q", got, hex)
		}
	}
}

func TestLerpRGB(t *testing.T) {
	a := RGB{0, 0.5, 1}
	b := RGB{1, 0.5, 0}

	if got := LerpRGB(a, b, 0); got != a {
		t.Errorf("LerpRGB(t=0) = %+v, want %+v", got, a)
	}
	if got := LerpRGB(a, b, 1); got != b {
		t.Errorf("LerpRGB(t=1) = %+v, want %+v", got, b)
	}
	if got := LerpRGB(a, b, 0.5); got != (RGB{0.5, 0.5, 0.5}) {
		t.Errorf("LerpRGB(t=0.5) = %+v", got)
	}
}

func TestArray32(t *testing.T) {
	c := RGB{0.25, 0.5, 0.75}
	if got := RGBFromArray32(c.Array32()); got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, 0.0, 1.0); got != 1 {
		t.Errorf("Clamp(1.5) = %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3) = %v", got)
	}
	if got := Clamp(4, 0, 10); got != 4 {
		t.Errorf("Clamp(4) = %v", got)
	}
}
