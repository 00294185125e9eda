package geom

import (
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// IsCCW reports whether the ordered triple (a, b, c) turns strictly
// counter-clockwise. Degenerate (collinear) triples report false.
func IsCCW(a, b, c Point) bool {
	return xy.OrientationIndex(a.coord(), b.coord(), c.coord()) == orientation.CounterClockwise
}

// Reflect returns the point reflection of p about center: 2·center − p in the
// plane. The elevation of p is kept unchanged.
func Reflect(p, center Point) Point {
	return Point{
		X: 2*center.X - p.X,
		Y: 2*center.Y - p.Y,
		Z: p.Z,
	}
}
