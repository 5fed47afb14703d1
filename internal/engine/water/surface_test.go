package water

import (
	"context"
	"errors"
	"testing"
)

func TestSurfaceMatchesPointwise(t *testing.T) {
	field := NewField(5)
	plane := Plane{Width: 2, Depth: 2, Segments: 16}
	s := NewSurface(field, plane)
	p := DefaultParams()

	frame, err := s.Evaluate(context.Background(), 1.5, &p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	for i, pt := range plane.Points() {
		v := field.Vertex(pt, 1.5, &p)
		if frame.Vertices[i] != v {
			t.Fatalf("vertex %d = %+v, want %+v", i, frame.Vertices[i], v)
		}
		if c := Fragment(v.Elevation, &p); frame.Colors[i] != c {
			t.Fatalf("color %d = %+v, want %+v", i, frame.Colors[i], c)
		}
	}
}

func TestSurfaceIndependentOfWorkers(t *testing.T) {
	field := NewField(9)
	plane := Plane{Width: 2, Depth: 2, Segments: 33}
	p := DefaultParams()

	serial := NewSurface(field, plane)
	serial.SetWorkers(1)
	parallel := NewSurface(field, plane)
	parallel.SetWorkers(7)

	a, err := serial.Evaluate(context.Background(), 4, &p)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	b, err := parallel.Evaluate(context.Background(), 4, &p)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] || a.Colors[i] != b.Colors[i] {
			t.Fatalf("point %d differs between 1 and 7 workers", i)
		}
	}
}

func TestSurfaceCancelled(t *testing.T) {
	s := NewSurface(NewField(1), DefaultPlane())
	p := DefaultParams()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Evaluate(ctx, 0, &p)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Evaluate error = %v, want context.Canceled", err)
	}
}

func TestSurfaceSnapshotsParams(t *testing.T) {
	s := NewSurface(NewField(1), Plane{Width: 1, Depth: 1, Segments: 4})
	p := DefaultParams()

	frame, err := s.Evaluate(context.Background(), 0, &p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	p.WaveLength = 0.9
	if frame.Params.WaveLength != 0.38 {
		t.Errorf("frame params changed after Evaluate: %v", frame.Params.WaveLength)
	}
}

func TestFrameStats(t *testing.T) {
	s := NewSurface(NewField(2), Plane{Width: 2, Depth: 2, Segments: 24})
	p := DefaultParams()

	frame, err := s.Evaluate(context.Background(), 2, &p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	st := frame.Stats()
	if st.Min > st.Mean || st.Mean > st.Max {
		t.Errorf("stats out of order: %+v", st)
	}
	if limit := p.MaxElevation() + 0.01; st.Max > limit || st.Min < -limit {
		t.Errorf("stats %+v exceed ±%v", st, limit)
	}

	var empty Frame
	if got := empty.Stats(); got != (Stats{}) {
		t.Errorf("empty Stats = %+v", got)
	}
}

func TestFrameImage(t *testing.T) {
	plane := Plane{Width: 2, Depth: 2, Segments: 10}
	s := NewSurface(NewField(2), plane)
	p := DefaultParams()

	frame, err := s.Evaluate(context.Background(), 0.5, &p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	img := frame.Image()
	if b := img.Bounds(); b.Dx() != 11 || b.Dy() != 11 {
		t.Fatalf("image size = %v, want 11x11", b)
	}

	i := 3*plane.Side() + 7
	want := frame.Colors[i].NRGBA()
	got := img.RGBAAt(7, 3)
	if got.R != want.R || got.G != want.G || got.B != want.B || got.A != 255 {
		t.Errorf("pixel (7,3) = %v, want %v", got, want)
	}
}
