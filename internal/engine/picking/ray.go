// Package picking casts rays from the viewport into the scene.
package picking

import (
	gomath "math"

	"github.com/Faultbox/wavesurface/pkg/math"
)

// Ray is a half-line in world space. Direction is normalized.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay unprojects a viewport pixel into a world-space ray.
// (sx, sy) is measured from the top-left corner of a w x h viewport.
func ScreenToRay(sx, sy, w, h float32, invViewProj math.Mat4) Ray {
	ndcX := 2*sx/w - 1
	ndcY := 1 - 2*sy/h

	near := unproject(invViewProj, ndcX, ndcY, -1)
	far := unproject(invViewProj, ndcX, ndcY, 1)
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func unproject(inv math.Mat4, x, y, z float32) math.Vec3 {
	p := inv.MulVec4(math.Vec4{x, y, z, 1})
	if p[3] != 0 {
		p[0] /= p[3]
		p[1] /= p[3]
		p[2] /= p[3]
	}
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane y = level.
// Hits behind the origin or on a near-parallel ray report false.
func (r Ray) IntersectPlaneY(level float32) (math.Vec3, bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 1e-4 {
		return math.Vec3{}, false
	}
	t := (level - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false
	}
	p := r.At(t)
	p.Y = level
	return p, true
}

// HeightFunc returns the surface height at (x, z).
type HeightFunc func(x, z float32) float32

// IntersectHeight finds where the ray meets a height field y = height(x, z).
// It starts from the y = 0 plane and re-intersects at the sampled height
// until the step drops below tol or iterations run out.
func (r Ray) IntersectHeight(height HeightFunc, iterations int, tol float32) (math.Vec3, bool) {
	p, ok := r.IntersectPlaneY(0)
	if !ok {
		return math.Vec3{}, false
	}
	for i := 0; i < iterations; i++ {
		y := height(p.X, p.Z)
		next, ok := r.IntersectPlaneY(y)
		if !ok {
			return math.Vec3{}, false
		}
		step := next.Sub(p).Length()
		p = next
		if step < tol {
			break
		}
	}
	p.Y = height(p.X, p.Z)
	return p, true
}
