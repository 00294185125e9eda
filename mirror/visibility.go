package mirror

import "github.com/katalvlaran/mirrorpath/geom"

// FacesPoint reports whether the CCW-oriented wall w faces p.
func FacesPoint(w geom.Segment, p geom.Point) bool {
	return geom.IsCCW(w.A, w.B, p)
}

// FaceToFace reports whether walls a and b can see each other: at least one
// endpoint of b lies in front of a, and at least one endpoint of a lies in
// front of b.
func FaceToFace(a, b geom.Segment) bool {
	return (geom.IsCCW(a.A, a.B, b.A) || geom.IsCCW(a.A, a.B, b.B)) &&
		(geom.IsCCW(b.A, b.B, a.A) || geom.IsCCW(b.A, b.B, a.B))
}
