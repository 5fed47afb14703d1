package water

// Plane is a flat grid on the XZ plane, centered on the origin.
type Plane struct {
	Width    float64 // Extent along X
	Depth    float64 // Extent along Z
	Segments int     // Cells per side
}

// DefaultPlane is a 2x2 unit plane with 256 segments per side.
func DefaultPlane() Plane {
	return Plane{Width: 2, Depth: 2, Segments: 256}
}

// GridPoint is one sample location on the undisplaced plane.
type GridPoint struct {
	X, Z     float64
	Col, Row int
}

// Side returns the number of vertices along one edge.
func (p Plane) Side() int {
	if p.Segments < 1 {
		return 2
	}
	return p.Segments + 1
}

// VertexCount returns the number of grid points.
func (p Plane) VertexCount() int {
	n := p.Side()
	return n * n
}

// Point returns the grid point at (col, row).
func (p Plane) Point(col, row int) GridPoint {
	cells := float64(p.Side() - 1)
	return GridPoint{
		X:   -p.Width/2 + p.Width*float64(col)/cells,
		Z:   -p.Depth/2 + p.Depth*float64(row)/cells,
		Col: col,
		Row: row,
	}
}

// Points returns every grid point in row-major order (Z outer, X inner).
func (p Plane) Points() []GridPoint {
	n := p.Side()
	points := make([]GridPoint, 0, n*n)
	for row := range n {
		for col := range n {
			points = append(points, p.Point(col, row))
		}
	}
	return points
}

// Positions returns the flat x,y,z vertex array (y = 0) for GPU upload.
func (p Plane) Positions() []float32 {
	points := p.Points()
	out := make([]float32, 0, len(points)*3)
	for _, pt := range points {
		out = append(out, float32(pt.X), 0, float32(pt.Z))
	}
	return out
}

// Indices returns two triangles per cell, wound counter-clockwise when
// seen from +Y.
func (p Plane) Indices() []uint32 {
	n := p.Side()
	cells := n - 1
	indices := make([]uint32, 0, cells*cells*6)
	for row := range cells {
		for col := range cells {
			a := uint32(row*n + col)
			b := a + 1
			c := a + uint32(n)
			d := c + 1
			indices = append(indices, a, c, b, b, c, d)
		}
	}
	return indices
}
