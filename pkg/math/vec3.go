// Package math provides the small float32 vector and matrix set used by
// the renderer.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// FromSpherical returns the offset at radius r, pitch above the XZ plane
// and yaw around +Y, measured from +Z toward +X.
func FromSpherical(r, pitch, yaw float32) Vec3 {
	sp, cp := math.Sincos(float64(pitch))
	sy, cy := math.Sincos(float64(yaw))
	return Vec3{
		X: r * float32(cp*sy),
		Y: r * float32(sp),
		Z: r * float32(cp*cy),
	}
}

// Spherical is the inverse of FromSpherical. A zero vector yields zeros.
func (v Vec3) Spherical() (r, pitch, yaw float32) {
	r = v.Length()
	if r == 0 {
		return 0, 0, 0
	}
	pitch = float32(math.Asin(float64(v.Y / r)))
	yaw = float32(math.Atan2(float64(v.X), float64(v.Z)))
	return r, pitch, yaw
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns a unit vector, or zero for a zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance returns the distance to another point.
func (v Vec3) Distance(o Vec3) float32 {
	return v.Sub(o).Length()
}
