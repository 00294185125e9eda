package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mirrorpath/geom"
)

const eps = 1e-12

func TestIsCCW(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c geom.Point
		ccw     bool
	}{
		{"LeftTurn", geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), true},
		{"RightTurn", geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), false},
		{"Collinear", geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(3, 3), false},
		{"Coincident", geom.Pt(2, 2), geom.Pt(2, 2), geom.Pt(5, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ccw, geom.IsCCW(tc.a, tc.b, tc.c))
		})
	}
}

func TestReflect_KeepsElevation(t *testing.T) {
	got := geom.Reflect(geom.Point{X: 20, Y: 0, Z: 4}, geom.Pt(20, -5))
	assert.Equal(t, geom.Point{X: 20, Y: -10, Z: 4}, got)
}

func TestSegment_Project(t *testing.T) {
	s := geom.Seg(0, 0, 10, 0)

	p := s.Project(geom.Point{X: 5, Y: 5, Z: 2})
	assert.InDelta(t, 5.0, p.X, eps)
	assert.InDelta(t, 0.0, p.Y, eps)
	assert.Equal(t, 2.0, p.Z, "projection keeps the elevation of the projected point")

	// Projection is onto the infinite line, not clamped to the segment.
	p = s.Project(geom.Pt(15, 3))
	assert.InDelta(t, 15.0, p.X, eps)
	assert.InDelta(t, 0.0, p.Y, eps)

	// Degenerate segment collapses onto A.
	d := geom.Seg(1, 1, 1, 1)
	assert.Equal(t, 0.0, d.ProjectionFactor(geom.Pt(4, 4)))
}

func TestSegment_Distance(t *testing.T) {
	cases := []struct {
		name     string
		s, o     geom.Segment
		distance float64
	}{
		{"Crossing", geom.Seg(0, 0, 10, 10), geom.Seg(0, 10, 10, 0), 0},
		{"Parallel", geom.Seg(0, 0, 10, 0), geom.Seg(0, 1, 10, 1), 1},
		{"TouchingEndpoint", geom.Seg(0, 0, 10, 0), geom.Seg(10, 0, 10, 5), 0},
		{"CollinearGap", geom.Seg(0, 0, 1, 0), geom.Seg(2, 0, 3, 0), 1},
		{"CollinearOverlap", geom.Seg(0, 0, 2, 0), geom.Seg(1, 0, 3, 0), 0},
		{"TShapeApart", geom.Seg(0, 0, 10, 0), geom.Seg(5, 2, 5, 8), 2},
		{"BeyondEnd", geom.Seg(0, 0, 10, 0), geom.Seg(13, 4, 13, 9), 5},
		{"DegeneratePoint", geom.Seg(0, 0, 10, 0), geom.Seg(15, 3, 15, 3), math.Sqrt(34)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.distance, tc.s.Distance(tc.o), eps)
			assert.InDelta(t, tc.distance, tc.o.Distance(tc.s), eps, "symmetry")
		})
	}
}

func TestSegment_LineIntersection(t *testing.T) {
	s := geom.Seg(0, 0, 10, 0)
	ts, to, ok := s.LineIntersection(geom.Seg(5, -5, 5, 5))
	assert.True(t, ok)
	assert.InDelta(t, 0.5, ts, eps)
	assert.InDelta(t, 0.5, to, eps)

	_, _, ok = s.LineIntersection(geom.Seg(0, 1, 10, 1))
	assert.False(t, ok, "parallel lines never meet")
}

func TestEnvelope(t *testing.T) {
	a := geom.Seg(10, 5, 0, 0).Envelope()
	assert.Equal(t, geom.Envelope{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}, a)
	assert.False(t, a.IsEmpty())
	assert.True(t, a.IsFinite())
	assert.Equal(t, geom.Envelope{MinX: -2, MinY: -2, MaxX: 12, MaxY: 7}, a.Expand(2))

	empty := geom.Envelope{MinX: 1, MaxX: 0}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, empty, empty.Expand(5), "an empty envelope stays empty")

	assert.False(t, geom.Envelope{MinX: math.NaN()}.IsFinite())
	assert.False(t, geom.Envelope{MaxY: math.Inf(1)}.IsFinite())
}
