package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/wavesurface/pkg/math"
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func topDown(t *testing.T) math.Mat4 {
	t.Helper()
	view := math.LookAt(math.Vec3{Y: 2}, math.Vec3{}, math.Vec3{Z: -1})
	proj := math.Perspective(float32(gomath.Pi/2), 1, 0.1, 100)
	inv, ok := proj.Mul(view).Inverse()
	if !ok {
		t.Fatal("view projection not invertible")
	}
	return inv
}

func TestScreenToRayCenter(t *testing.T) {
	r := ScreenToRay(50, 50, 100, 100, topDown(t))

	if !near(r.Direction.Y, -1, 1e-3) {
		t.Errorf("center ray direction = %+v, want straight down", r.Direction)
	}
	if !near(r.Origin.X, 0, 1e-3) || !near(r.Origin.Z, 0, 1e-3) {
		t.Errorf("center ray origin = %+v, want above origin", r.Origin)
	}
}

func TestIntersectPlaneY(t *testing.T) {
	down := Ray{Origin: math.Vec3{X: 0.3, Y: 2, Z: -0.4}, Direction: math.Vec3{Y: -1}}
	up := Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{Y: 1}}
	flat := Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{X: 1}}

	tests := []struct {
		name   string
		ray    Ray
		level  float32
		wantOK bool
		want   math.Vec3
	}{
		{"down to zero", down, 0, true, math.Vec3{X: 0.3, Z: -0.4}},
		{"down to raised", down, 0.5, true, math.Vec3{X: 0.3, Y: 0.5, Z: -0.4}},
		{"pointing away", up, 0, false, math.Vec3{}},
		{"parallel", flat, 0, false, math.Vec3{}},
	}
	for _, tt := range tests {
		got, ok := tt.ray.IntersectPlaneY(tt.level)
		if ok != tt.wantOK {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if ok && (!near(got.X, tt.want.X, 1e-5) || !near(got.Y, tt.want.Y, 1e-5) || !near(got.Z, tt.want.Z, 1e-5)) {
			t.Errorf("%s: hit = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestIntersectHeight(t *testing.T) {
	// 45 degree ray so the hit point moves with the surface height.
	r := Ray{
		Origin:    math.Vec3{Y: 1},
		Direction: math.Vec3{X: 1, Y: -1}.Normalize(),
	}

	flat := func(x, z float32) float32 { return 0.25 }
	p, ok := r.IntersectHeight(flat, 8, 1e-5)
	if !ok {
		t.Fatal("no hit on constant surface")
	}
	if !near(p.Y, 0.25, 1e-5) || !near(p.X, 0.75, 1e-4) {
		t.Errorf("constant hit = %+v, want (0.75, 0.25, 0)", p)
	}

	// Gentle slope y = 0.1x converges to x = 1/1.1.
	slope := func(x, z float32) float32 { return 0.1 * x }
	p, ok = r.IntersectHeight(slope, 32, 1e-6)
	if !ok {
		t.Fatal("no hit on sloped surface")
	}
	if !near(p.X, 1/1.1, 1e-4) {
		t.Errorf("slope hit x = %f, want %f", p.X, 1/1.1)
	}
}

func TestIntersectHeightMiss(t *testing.T) {
	r := Ray{Origin: math.Vec3{Y: 1}, Direction: math.Vec3{Y: 1}}
	if _, ok := r.IntersectHeight(func(x, z float32) float32 { return 0 }, 4, 1e-5); ok {
		t.Error("upward ray should miss")
	}
}
