package geom

import "math"

// Point is a position in the plane with an elevation.
// Z may be NaN when the elevation is unknown; planar operations never read it.
type Point struct {
	X, Y, Z float64
}

// Pt builds a Point with zero elevation.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance2D returns the planar distance between p and q, ignoring Z.
func (p Point) Distance2D(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// coord is the XY coordinate of p in the layout of the xy algorithms.
func (p Point) coord() []float64 {
	return []float64{p.X, p.Y}
}

// Segment is an oriented segment from A to B.
type Segment struct {
	A, B Point
}

// Seg builds a Segment from planar coordinates.
func Seg(ax, ay, bx, by float64) Segment {
	return Segment{A: Pt(ax, ay), B: Pt(bx, by)}
}

// Envelope is an axis-aligned bounding box. An envelope with MinX > MaxX is empty.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}
