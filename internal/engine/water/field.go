package water

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Noise3 is a coherent 3D noise source with output roughly in [-1, 1].
type Noise3 interface {
	Eval3(x, y, z float64) float64
}

// Field evaluates the wave surface. It holds only the noise source, which
// is immutable, so a Field is safe for concurrent use.
type Field struct {
	noise Noise3
}

// NewField creates a field whose ripple layer uses OpenSimplex noise
// seeded with seed.
func NewField(seed int64) *Field {
	return &Field{noise: opensimplex.New(seed)}
}

// NewFieldWithNoise creates a field around an arbitrary noise source.
func NewFieldWithNoise(n Noise3) *Field {
	return &Field{noise: n}
}

// Elevation returns the surface height at (x, z) on the undisplaced plane
// at time t.
//
// The primary swell is the product of two perpendicular sine waves, which
// gives a cross-hatched pattern. A noise ripple sampled in (x, z, t) space
// is added on top so it evolves smoothly between frames.
func (f *Field) Elevation(x, z, t float64, p *Params) float64 {
	swell := math.Sin(x*p.Frequency[0]+t*p.WaveSpeed) *
		math.Sin(z*p.Frequency[1]+t*p.WaveSpeed) *
		p.WaveLength

	ripple := p.SmallWaveElevation * f.noise.Eval3(
		x*p.SmallWaveFrequency,
		z*p.SmallWaveFrequency,
		t*p.SmallWaveSpeed,
	)

	return swell + ripple
}

// Vertex is the output of the vertex stage.
type Vertex struct {
	Position  [3]float64 // x, elevation, z
	Elevation float64    // Passed unchanged to the fragment stage
}

// Vertex runs the vertex stage for one grid point: the elevation is written
// to the Y axis (the plane normal) and carried forward as-is.
func (f *Field) Vertex(pt GridPoint, t float64, p *Params) Vertex {
	e := f.Elevation(pt.X, pt.Z, t, p)
	return Vertex{
		Position:  [3]float64{pt.X, e, pt.Z},
		Elevation: e,
	}
}

// MixFactor remaps an elevation into the [0, 1] gradient position.
func MixFactor(elevation float64, p *Params) float64 {
	return Clamp((elevation+p.ColorOffset)*p.ColorMultiplier, 0, 1)
}

// Fragment runs the fragment stage: the elevation selects a color between
// DepthColor and SurfaceColor.
func Fragment(elevation float64, p *Params) RGB {
	return LerpRGB(p.DepthColor, p.SurfaceColor, MixFactor(elevation, p))
}
