// Package camera provides the orbit camera used to look around the water.
package camera

import (
	gomath "math"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/pkg/math"
)

// OrbitCamera orbits around a center point. Input moves the target
// orientation; Update eases the current orientation toward it.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Current spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Targets set by input
	targetDistance  float32
	targetRotationX float32
	targetRotationY float32

	// Damping is the fraction of the remaining gap closed per 60 Hz frame.
	// Zero or less disables easing.
	Damping float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FOV  float32 // Vertical field of view, radians
	Near float32
	Far  float32

	home math.Vec3
}

// NewOrbitCamera creates a camera at (0.25, 0.25, 1) looking at the origin.
func NewOrbitCamera() *OrbitCamera {
	return FromConfig(config.Default().Camera)
}

// FromConfig creates a camera from the camera config section.
func FromConfig(cfg config.CameraConfig) *OrbitCamera {
	c := &OrbitCamera{
		Damping:         cfg.Damping,
		MinDistance:     0.05,
		MaxDistance:     10,
		MinPitch:        -1.55,
		MaxPitch:        1.55,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             cfg.FOV * gomath.Pi / 180,
		Near:            cfg.Near,
		Far:             cfg.Far,
	}
	c.home = math.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}
	c.SetPosition(c.home)
	return c
}

// SetPosition places the camera at a world position relative to Center,
// immediately and without easing.
func (c *OrbitCamera) SetPosition(pos math.Vec3) {
	dist, pitch, yaw := pos.Sub(c.Center).Spherical()
	if dist == 0 {
		dist = c.MinDistance
	}
	c.Distance = clampf(dist, c.MinDistance, c.MaxDistance)
	c.RotationX = clampf(pitch, c.MinPitch, c.MaxPitch)
	c.RotationY = yaw
	c.snap()
}

func (c *OrbitCamera) snap() {
	c.targetDistance = c.Distance
	c.targetRotationX = c.RotationX
	c.targetRotationY = c.RotationY
}

// Reset returns the camera to its initial placement.
func (c *OrbitCamera) Reset() {
	c.Center = math.Vec3{}
	c.SetPosition(c.home)
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return c.Center.Add(math.FromSpherical(c.Distance, c.RotationX, c.RotationY))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// Projection returns the perspective matrix for the given width/height ratio.
func (c *OrbitCamera) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// HandleDrag updates the target rotation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.targetRotationY -= deltaX * c.DragSensitivity
	c.targetRotationX = clampf(c.targetRotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates the target distance from a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	d := c.targetDistance - delta*c.targetDistance*c.ZoomSensitivity
	c.targetDistance = clampf(d, c.MinDistance, c.MaxDistance)
}

// SetDistance moves the camera along its current view ray without easing.
func (c *OrbitCamera) SetDistance(d float32) {
	c.Distance = clampf(d, c.MinDistance, c.MaxDistance)
	c.targetDistance = c.Distance
}

// Update eases the current orientation toward the target. dt is in seconds.
func (c *OrbitCamera) Update(dt float32) {
	if c.Damping <= 0 || c.Damping >= 1 {
		c.Distance = c.targetDistance
		c.RotationX = c.targetRotationX
		c.RotationY = c.targetRotationY
		return
	}
	if dt <= 0 {
		return
	}

	alpha := 1 - float32(gomath.Pow(float64(1-c.Damping), float64(dt*60)))
	c.Distance += (c.targetDistance - c.Distance) * alpha
	c.RotationX += (c.targetRotationX - c.RotationX) * alpha
	c.RotationY += (c.targetRotationY - c.RotationY) * alpha
}

// Settled reports whether the camera has caught up with its target.
func (c *OrbitCamera) Settled() bool {
	const eps = 1e-4
	return absf(c.targetDistance-c.Distance) < eps &&
		absf(c.targetRotationX-c.RotationX) < eps &&
		absf(c.targetRotationY-c.RotationY) < eps
}

func clampf(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
