package walls

import (
	"fmt"
	"slices"

	"github.com/tidwall/rtree"

	"github.com/katalvlaran/mirrorpath/geom"
)

// RTree is an Index over envelopes backed by an R-tree.
//
// An RTree is not safe for concurrent Insert; concurrent Query calls on a
// fully built tree are safe.
type RTree struct {
	tr rtree.RTreeG[int]
}

// NewRTree returns an empty RTree.
func NewRTree() *RTree {
	return &RTree{}
}

// IndexCatalogue builds an RTree over the wall envelopes of c, using each
// wall's catalogue index as id.
func IndexCatalogue(c Catalogue) (*RTree, error) {
	if c == nil {
		return nil, ErrNilCatalogue
	}
	t := NewRTree()
	for i := 0; i < c.Len(); i++ {
		if err := t.Insert(c.At(i).Segment.Envelope(), i); err != nil {
			return nil, fmt.Errorf("walls: wall %d: %w", i, err)
		}
	}

	return t, nil
}

// Len returns the number of inserted items.
func (t *RTree) Len() int {
	return t.tr.Len()
}

// Insert adds env under id. The same id may be inserted several times;
// Query reports it once.
func (t *RTree) Insert(env geom.Envelope, id int) error {
	if env.IsEmpty() || !env.IsFinite() {
		return ErrInvalidEnvelope
	}
	t.tr.Insert([2]float64{env.MinX, env.MinY}, [2]float64{env.MaxX, env.MaxY}, id)

	return nil
}

// Query implements Index.
func (t *RTree) Query(env geom.Envelope) []int {
	if env.IsEmpty() {
		return nil
	}
	var out []int
	t.tr.Search([2]float64{env.MinX, env.MinY}, [2]float64{env.MaxX, env.MaxY},
		func(_, _ [2]float64, id int) bool {
			out = append(out, id)
			return true
		})
	slices.Sort(out)

	return slices.Compact(out)
}
