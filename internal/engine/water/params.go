// Package water evaluates the procedural wave field that displaces and
// colors the water plane.
//
// The vertex stage (Field.Elevation, Field.Vertex) and the fragment stage
// (Fragment, MixFactor) are plain functions of their arguments. Both take
// the tunables as an explicit *Params and read it on every call, so a value
// changed by the debug panel between frames is picked up by the next
// evaluation.
package water

// Params holds the tunable wave and color settings shared by both stages.
type Params struct {
	WaveLength float64    // Amplitude of the primary swell
	Frequency  [2]float64 // Spatial frequency along X and Z
	WaveSpeed  float64    // Phase speed of the primary swell

	SmallWaveElevation float64 // Amplitude of the noise ripple
	SmallWaveFrequency float64 // Spatial scale of the noise ripple
	SmallWaveSpeed     float64 // Time-axis scale of the noise ripple

	ColorOffset     float64 // Shifts the waterline of the color gradient
	ColorMultiplier float64 // Steepness of the color gradient

	DepthColor   RGB
	SurfaceColor RGB
}

// Default colors, as edited in the panel.
const (
	DefaultDepthHex   = "#2d81ae"
	DefaultSurfaceHex = "#66c1f9"
)

// DefaultParams returns the stock tuning of the water surface.
func DefaultParams() Params {
	return Params{
		WaveLength:         0.38,
		Frequency:          [2]float64{6.6, 3.5},
		WaveSpeed:          0.75,
		SmallWaveElevation: 0.15,
		SmallWaveFrequency: 3.0,
		SmallWaveSpeed:     0.2,
		ColorOffset:        0.03,
		ColorMultiplier:    9.0,
		DepthColor:         mustParseHex(DefaultDepthHex),
		SurfaceColor:       mustParseHex(DefaultSurfaceHex),
	}
}

// Range is the recommended interval for a tunable.
// The evaluator never enforces it; controllers do.
type Range struct {
	Min, Max, Step float64
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return Clamp(v, r.Min, r.Max)
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Ranges lists the recommended bounds for every tunable.
var Ranges = struct {
	WaveLength         Range
	FrequencyX         Range
	FrequencyY         Range
	WaveSpeed          Range
	ColorOffset        Range
	ColorMultiplier    Range
	SmallWaveElevation Range
	SmallWaveFrequency Range
	SmallWaveSpeed     Range
}{
	WaveLength:         Range{0, 1, 0.001},
	FrequencyX:         Range{1, 10, 0.001},
	FrequencyY:         Range{1, 10, 0.01},
	WaveSpeed:          Range{0, 4, 0.01},
	ColorOffset:        Range{0, 1, 0.001},
	ColorMultiplier:    Range{0, 10, 0.001},
	SmallWaveElevation: Range{0, 1, 0.001},
	SmallWaveFrequency: Range{0, 30, 0.001},
	SmallWaveSpeed:     Range{0, 4, 0.001},
}

// Clamped returns a copy of p with every tunable limited to Ranges.
// Colors are left untouched.
func (p Params) Clamped() Params {
	p.WaveLength = Ranges.WaveLength.Clamp(p.WaveLength)
	p.Frequency[0] = Ranges.FrequencyX.Clamp(p.Frequency[0])
	p.Frequency[1] = Ranges.FrequencyY.Clamp(p.Frequency[1])
	p.WaveSpeed = Ranges.WaveSpeed.Clamp(p.WaveSpeed)
	p.ColorOffset = Ranges.ColorOffset.Clamp(p.ColorOffset)
	p.ColorMultiplier = Ranges.ColorMultiplier.Clamp(p.ColorMultiplier)
	p.SmallWaveElevation = Ranges.SmallWaveElevation.Clamp(p.SmallWaveElevation)
	p.SmallWaveFrequency = Ranges.SmallWaveFrequency.Clamp(p.SmallWaveFrequency)
	p.SmallWaveSpeed = Ranges.SmallWaveSpeed.Clamp(p.SmallWaveSpeed)
	return p
}

// MaxElevation is the nominal bound on |elevation| for p.
// Noise overshoot may exceed it by a small margin.
func (p *Params) MaxElevation() float64 {
	return abs(p.WaveLength) + abs(p.SmallWaveElevation)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
