package geom

import (
	"math"

	"github.com/twpayne/go-geom/xy"
)

// ProjectionFactor returns the parameter t of the orthogonal projection of p
// onto the line through s, so that the projection equals A + t·(B − A).
// A degenerate segment yields 0.
func (s Segment) ProjectionFactor(p Point) float64 {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}

	return ((p.X-s.A.X)*dx + (p.Y-s.A.Y)*dy) / l2
}

// PointAt returns A + t·(B − A). The elevation is interpolated the same way.
func (s Segment) PointAt(t float64) Point {
	return Point{
		X: s.A.X + t*(s.B.X-s.A.X),
		Y: s.A.Y + t*(s.B.Y-s.A.Y),
		Z: s.A.Z + t*(s.B.Z-s.A.Z),
	}
}

// Project returns the orthogonal projection of p onto the infinite line
// through s. The result carries the elevation of p.
func (s Segment) Project(p Point) Point {
	t := s.ProjectionFactor(p)

	return Point{
		X: s.A.X + t*(s.B.X-s.A.X),
		Y: s.A.Y + t*(s.B.Y-s.A.Y),
		Z: p.Z,
	}
}

// Distance returns the planar distance between the closed segments s and o,
// zero when they intersect.
func (s Segment) Distance(o Segment) float64 {
	return xy.DistanceFromLineToLine(s.A.coord(), s.B.coord(), o.A.coord(), o.B.coord())
}

// LineIntersection intersects the infinite lines through s and o.
// It returns the parameters ts (along s) and to (along o) of the
// intersection point, and false when the lines are parallel.
func (s Segment) LineIntersection(o Segment) (ts, to float64, ok bool) {
	rx, ry := s.B.X-s.A.X, s.B.Y-s.A.Y
	qx, qy := o.B.X-o.A.X, o.B.Y-o.A.Y
	den := rx*qy - ry*qx
	if den == 0 {
		return 0, 0, false
	}
	wx, wy := o.A.X-s.A.X, o.A.Y-s.A.Y
	ts = (wx*qy - wy*qx) / den
	to = (wx*ry - wy*rx) / den

	return ts, to, true
}

// Envelope returns the bounding box of s.
func (s Segment) Envelope() Envelope {
	return Envelope{
		MinX: math.Min(s.A.X, s.B.X), MinY: math.Min(s.A.Y, s.B.Y),
		MaxX: math.Max(s.A.X, s.B.X), MaxY: math.Max(s.A.Y, s.B.Y),
	}
}
