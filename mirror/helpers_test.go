package mirror_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mirrorpath/geom"
	"github.com/katalvlaran/mirrorpath/mirror"
	"github.com/katalvlaran/mirrorpath/walls"
)

var (
	source   = geom.Pt(0, 0)
	receiver = geom.Pt(20, 0)
	srcRcv   = geom.Segment{A: source, B: receiver}
)

// corridor returns three walls around the direct path S(0,0)→R(20,0):
//
//	wall 2: (10,8)→(-10,8)   facing down
//	wall 1: (20,5)→(0,5)     facing down
//	  S ─────────── R
//	wall 0: (0,-5)→(20,-5)   facing up
//
// Walls 1 and 2 are on the same side and never see each other.
func corridor() walls.Slice {
	return walls.Slice{
		walls.NewWall(geom.Pt(0, -5), geom.Pt(20, -5), 10),
		walls.NewWall(geom.Pt(20, 5), geom.Pt(0, 5), 11),
		walls.NewWall(geom.Pt(10, 8), geom.Pt(-10, 8), 12),
	}
}

// corridorOrders is the expected result of corridor() at depth 2.
var corridorOrders = [][]int{{0}, {0, 1}, {0, 2}, {1}, {1, 0}, {2}, {2, 0}}

// wallOrders maps nodes to their wall index chains.
func wallOrders(nodes []*mirror.Node) [][]int {
	var out [][]int
	for _, n := range nodes {
		out = append(out, n.Walls())
	}

	return out
}

// randomScene builds n random walls in a 100×100 box with random orientation.
func randomScene(n int, seed int64) walls.Slice {
	rng := rand.New(rand.NewSource(seed))
	out := make(walls.Slice, n)
	for i := range out {
		a := geom.Pt(rng.Float64()*100-50, rng.Float64()*100-50)
		b := geom.Pt(a.X+rng.Float64()*30-15, a.Y+rng.Float64()*30-15)
		out[i] = walls.NewWall(a, b, i)
	}

	return out
}

// referenceSearch is an exhaustive recursive rendition of the walker rules:
// a sequence is admissible when every prefix is.
func referenceSearch(rcv geom.Point, ws walls.Slice, sr geom.Segment, maxDepth int, dl, pl float64) [][]int {
	var out [][]int
	var rec func(prefix []int, image geom.Point)
	rec = func(prefix []int, image geom.Point) {
		if len(prefix) == maxDepth {
			return
		}
		for i := range ws {
			w := ws[i].Segment
			if len(prefix) > 0 {
				last := prefix[len(prefix)-1]
				if last == i || !mirror.FaceToFace(ws[last].Segment, w) {
					continue
				}
			}
			if !mirror.FacesPoint(w, rcv) || w.Distance(sr) >= dl {
				continue
			}
			m := geom.Reflect(image, w.Project(image))
			if sr.A.Distance2D(m) >= pl {
				continue
			}
			seq := append(slices.Clone(prefix), i)
			out = append(out, seq)
			rec(seq, m)
		}
	}
	rec(nil, rcv)

	return out
}

func assertPoint(t *testing.T, want, got geom.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "X")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "Y")
}
