package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if want := (Vec3{0, 0, 1}); got != want {
		t.Errorf("Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	if l := (Vec3{3, 4, 12}).Normalize().Length(); abs(l-1) > 1e-6 {
		t.Errorf("Normalize().Length() = %v, want 1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v", got)
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	tests := []Vec3{
		{0.25, 0.25, 1},
		{0, 0, 3},
		{-2, 1, -1},
		{1, -0.5, 0},
	}
	for _, v := range tests {
		r, pitch, yaw := v.Spherical()
		got := FromSpherical(r, pitch, yaw)
		if got.Distance(v) > 1e-5 {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestFromSphericalAxes(t *testing.T) {
	tests := []struct {
		pitch, yaw float32
		want       Vec3
	}{
		{0, 0, Vec3{0, 0, 1}},
		{0, math.Pi / 2, Vec3{1, 0, 0}},
		{math.Pi / 2, 0, Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		got := FromSpherical(1, tt.pitch, tt.yaw)
		if got.Distance(tt.want) > 1e-6 {
			t.Errorf("FromSpherical(1, %v, %v) = %v, want %v", tt.pitch, tt.yaw, got, tt.want)
		}
	}
}
