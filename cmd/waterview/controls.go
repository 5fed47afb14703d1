package main

import (
	"fmt"

	"github.com/Faultbox/wavesurface/internal/engine/water"
)

// tunable binds one slider to a parameter field.
type tunable struct {
	label  string
	format string
	rng    water.Range
	value  *float64
}

// tunables lists the panel sliders in display order. The pointers alias p.
func tunables(p *water.Params) []tunable {
	return []tunable{
		{"Wave length", "%.3f", water.Ranges.WaveLength, &p.WaveLength},
		{"Frequency X", "%.3f", water.Ranges.FrequencyX, &p.Frequency[0]},
		{"Frequency Y", "%.2f", water.Ranges.FrequencyY, &p.Frequency[1]},
		{"Wave speed", "%.2f", water.Ranges.WaveSpeed, &p.WaveSpeed},
		{"Color offset", "%.3f", water.Ranges.ColorOffset, &p.ColorOffset},
		{"Color multiplier", "%.3f", water.Ranges.ColorMultiplier, &p.ColorMultiplier},
		{"Ripple elevation", "%.3f", water.Ranges.SmallWaveElevation, &p.SmallWaveElevation},
		{"Ripple frequency", "%.3f", water.Ranges.SmallWaveFrequency, &p.SmallWaveFrequency},
		{"Ripple speed", "%.3f", water.Ranges.SmallWaveSpeed, &p.SmallWaveSpeed},
	}
}

// set writes a widget value back, limited to the recommended range.
func (t tunable) set(v float32) {
	*t.value = t.rng.Clamp(float64(v))
}

// colorField keeps the text and picker widgets of one color in sync with
// the parameter it edits. Hex is parsed only when the text changes.
type colorField struct {
	label  string
	target *water.RGB
	hex    string
	picker [3]float32
	err    error
}

func newColorField(label string, target *water.RGB) *colorField {
	f := &colorField{label: label, target: target}
	f.sync()
	return f
}

// sync reloads both widgets from the target.
func (f *colorField) sync() {
	f.hex = f.target.Hex()
	f.picker = f.target.Array32()
	f.err = nil
}

// commitHex applies the text field. On error the target is left unchanged.
func (f *colorField) commitHex() error {
	c, err := water.ParseHex(f.hex)
	if err != nil {
		f.err = fmt.Errorf("%s: %w", f.label, err)
		return f.err
	}
	*f.target = c
	f.picker = c.Array32()
	f.err = nil
	return nil
}

// commitPicker applies the color picker.
func (f *colorField) commitPicker() {
	*f.target = water.RGBFromArray32(f.picker)
	f.hex = f.target.Hex()
	f.err = nil
}
