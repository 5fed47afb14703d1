package main

import (
	gomath "math"

	"github.com/Faultbox/wavesurface/internal/engine/picking"
	"github.com/Faultbox/wavesurface/internal/engine/water"
	"github.com/Faultbox/wavesurface/pkg/math"
)

const (
	probeIterations = 12
	probeTolerance  = 1e-4
)

// probe is the CPU evaluation of the surface point under the cursor.
type probe struct {
	X, Z      float64
	Elevation float64
	Mix       float64
	Color     water.RGB
}

// probeSurface intersects ray with the displaced plane at time t. Hits
// outside the plane's extent report false.
func probeSurface(field *water.Field, plane water.Plane, ray picking.Ray, t float64, p *water.Params) (probe, bool) {
	height := func(x, z float32) float32 {
		return float32(field.Elevation(float64(x), float64(z), t, p))
	}
	hit, ok := ray.IntersectHeight(height, probeIterations, probeTolerance)
	if !ok {
		return probe{}, false
	}

	x, z := float64(hit.X), float64(hit.Z)
	if gomath.Abs(x) > plane.Width/2 || gomath.Abs(z) > plane.Depth/2 {
		return probe{}, false
	}

	e := field.Elevation(x, z, t, p)
	return probe{
		X:         x,
		Z:         z,
		Elevation: e,
		Mix:       water.MixFactor(e, p),
		Color:     water.Fragment(e, p),
	}, true
}

// cursorRay builds the world ray through a point of a w x h viewport.
func cursorRay(view, proj math.Mat4, x, y, w, h float32) (picking.Ray, bool) {
	inv, ok := proj.Mul(view).Inverse()
	if !ok {
		return picking.Ray{}, false
	}
	return picking.ScreenToRay(x, y, w, h, inv), true
}
