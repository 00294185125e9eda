package mirror

import (
	"github.com/katalvlaran/mirrorpath/geom"
	"github.com/katalvlaran/mirrorpath/walls"
)

// unfoldTol is the parametric slack allowed when a reflection point falls
// on a wall endpoint.
const unfoldTol = 1e-9

// ReflectionPath is a reflection chain laid out in the plane.
type ReflectionPath struct {
	// Points holds the receiver, the reflection points from the receiver
	// side to the source side, then the source.
	Points []geom.Point

	// Length is the planar length of the polyline. It equals the distance
	// between the source and the deepest image.
	Length float64
}

// Unfold rebuilds the specular path of n between source and receiver.
// catalogue must be the one n was computed from.
//
// The source is joined to the deepest image; where that line crosses the
// deepest wall is the last reflection point, which is then joined to the
// parent image, and so on up to depth 1. It returns false when a crossing
// misses its wall segment or lies outside the joining segment, i.e. the
// image chain has no physical specular path.
func (n *Node) Unfold(source, receiver geom.Point, catalogue walls.Catalogue) (ReflectionPath, bool) {
	chain := n.Chain()
	pts := make([]geom.Point, len(chain)+2)
	pts[0] = receiver
	pts[len(pts)-1] = source

	cur := source
	for i := len(chain) - 1; i >= 0; i-- {
		wall := catalogue.At(chain[i].wall).Segment
		ray := geom.Segment{A: cur, B: chain[i].image}
		tr, tw, ok := ray.LineIntersection(wall)
		if !ok || !inUnit(tr) || !inUnit(tw) {
			return ReflectionPath{}, false
		}
		cur = ray.PointAt(tr)
		pts[i+1] = cur
	}

	var length float64
	for i := 1; i < len(pts); i++ {
		length += pts[i-1].Distance2D(pts[i])
	}

	return ReflectionPath{Points: pts, Length: length}, true
}

func inUnit(t float64) bool {
	return t >= -unfoldTol && t <= 1+unfoldTol
}
