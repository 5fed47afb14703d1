package water

import (
	"context"
	"image"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Surface evaluates a Field over every point of a Plane.
type Surface struct {
	field   *Field
	plane   Plane
	points  []GridPoint
	workers int
}

// NewSurface creates a surface evaluator. The grid points are computed once
// here since the topology is fixed for the lifetime of the surface.
func NewSurface(field *Field, plane Plane) *Surface {
	return &Surface{
		field:   field,
		plane:   plane,
		points:  plane.Points(),
		workers: runtime.GOMAXPROCS(0),
	}
}

// SetWorkers limits the number of goroutines used by Evaluate.
func (s *Surface) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// Plane returns the grid topology.
func (s *Surface) Plane() Plane {
	return s.plane
}

// Frame is one evaluated surface.
type Frame struct {
	Plane    Plane
	Time     float64
	Params   Params // Snapshot used for this frame
	Vertices []Vertex
	Colors   []RGB
}

// Evaluate runs the vertex and fragment stages for every grid point at
// time t. p is copied on entry; writes to it while the frame is being
// computed show up in the next frame.
//
// Rows are split across workers. Each point is independent, so the result
// does not depend on scheduling.
func (s *Surface) Evaluate(ctx context.Context, t float64, p *Params) (*Frame, error) {
	params := *p
	frame := &Frame{
		Plane:    s.plane,
		Time:     t,
		Params:   params,
		Vertices: make([]Vertex, len(s.points)),
		Colors:   make([]RGB, len(s.points)),
	}

	side := s.plane.Side()
	rowsPerWorker := (side + s.workers - 1) / s.workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for start := 0; start < side; start += rowsPerWorker {
		end := min(start+rowsPerWorker, side)
		g.Go(func() error {
			for row := start; row < end; row++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for i := row * side; i < (row+1)*side; i++ {
					v := s.field.Vertex(s.points[i], t, &params)
					frame.Vertices[i] = v
					frame.Colors[i] = Fragment(v.Elevation, &params)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frame, nil
}

// Stats summarizes the elevations of a frame.
type Stats struct {
	Min, Max, Mean float64
}

// Stats returns the elevation extremes and mean of the frame.
func (f *Frame) Stats() Stats {
	if len(f.Vertices) == 0 {
		return Stats{}
	}
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range f.Vertices {
		st.Min = min(st.Min, v.Elevation)
		st.Max = max(st.Max, v.Elevation)
		sum += v.Elevation
	}
	st.Mean = sum / float64(len(f.Vertices))
	return st
}

// Image returns the top-down color field, one pixel per grid point.
// Row 0 of the image is the -Z edge of the plane.
func (f *Frame) Image() *image.RGBA {
	side := f.Plane.Side()
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for i, c := range f.Colors {
		img.SetRGBA(i%side, i/side, rgbaOf(c))
	}
	return img
}
