package main

import (
	"testing"

	"github.com/Faultbox/wavesurface/internal/engine/water"
)

func TestTunablesAliasParams(t *testing.T) {
	p := water.DefaultParams()
	ts := tunables(&p)
	if len(ts) != 9 {
		t.Fatalf("got %d sliders, want 9", len(ts))
	}

	for _, tt := range ts {
		tt.set(float32(tt.rng.Min))
	}
	want := water.Params{
		WaveLength:         0,
		Frequency:          [2]float64{1, 1},
		WaveSpeed:          0,
		ColorOffset:        0,
		ColorMultiplier:    0,
		SmallWaveElevation: 0,
		SmallWaveFrequency: 0,
		SmallWaveSpeed:     0,
		DepthColor:         p.DepthColor,
		SurfaceColor:       p.SurfaceColor,
	}
	if p != want {
		t.Errorf("params after setting minimums = %+v, want %+v", p, want)
	}
}

func TestTunableSetClamps(t *testing.T) {
	p := water.DefaultParams()
	wave := tunables(&p)[0]

	wave.set(5)
	if p.WaveLength != 1 {
		t.Errorf("WaveLength = %f, want clamped to 1", p.WaveLength)
	}
	wave.set(-1)
	if p.WaveLength != 0 {
		t.Errorf("WaveLength = %f, want clamped to 0", p.WaveLength)
	}
}

func TestColorFieldHex(t *testing.T) {
	p := water.DefaultParams()
	f := newColorField("Depth color", &p.DepthColor)

	if f.hex != water.DefaultDepthHex {
		t.Errorf("initial hex = %s, want %s", f.hex, water.DefaultDepthHex)
	}

	f.hex = "#ff0000"
	if err := f.commitHex(); err != nil {
		t.Fatalf("commitHex: %v", err)
	}
	if p.DepthColor != (water.RGB{R: 1}) {
		t.Errorf("DepthColor = %+v, want red", p.DepthColor)
	}
	if f.picker != [3]float32{1, 0, 0} {
		t.Errorf("picker = %v, want red", f.picker)
	}

	f.hex = "#zzz"
	if err := f.commitHex(); err == nil {
		t.Error("expected error for invalid hex")
	}
	if p.DepthColor != (water.RGB{R: 1}) {
		t.Error("invalid hex must leave the color unchanged")
	}
	if f.err == nil {
		t.Error("error should be kept for display")
	}
}

func TestColorFieldPicker(t *testing.T) {
	p := water.DefaultParams()
	f := newColorField("Surface color", &p.SurfaceColor)

	f.picker = [3]float32{0, 0, 1}
	f.commitPicker()
	if p.SurfaceColor != (water.RGB{B: 1}) {
		t.Errorf("SurfaceColor = %+v, want blue", p.SurfaceColor)
	}
	if f.hex != "#0000ff" {
		t.Errorf("hex = %s, want #0000ff", f.hex)
	}
}

func TestColorFieldSyncAfterReset(t *testing.T) {
	p := water.DefaultParams()
	f := newColorField("Depth color", &p.DepthColor)
	f.hex = "#000000"
	_ = f.commitHex()

	p = water.DefaultParams()
	f.sync()
	if f.hex != water.DefaultDepthHex {
		t.Errorf("hex after sync = %s", f.hex)
	}
}
