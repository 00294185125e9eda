// Package geom provides the small planar geometry kernel used by the
// mirror-receiver search: points with an elevation component, oriented
// segments, axis-aligned envelopes and the orientation predicates built on
// top of them. Orientation and segment distance come from the JTS port
// github.com/twpayne/go-geom/xy; projection and reflection are computed here
// because they carry the elevation of the input point.
//
// What:
//
//   - Point:    X, Y plus an elevation Z that planar algorithms carry but ignore.
//   - Segment:  oriented segment A→B; projection, distance, line intersection.
//   - Envelope: axis-aligned bounding box used by spatial index queries.
//   - IsCCW:    strict counter-clockwise predicate over point triples.
//   - Reflect:  point reflection about another point, keeping elevation.
//
// Why:
//
//   - Walls are counter-clockwise oriented around their building, so
//     "does this wall face that point" reduces to a single IsCCW call.
//   - Image sources are obtained by reflecting an image across the
//     orthogonal projection onto a wall line.
//
// Complexity:
//
//   - Every operation is O(1) time and allocation free.
//
// All predicates are strict: collinear triples are never counter-clockwise.
package geom
