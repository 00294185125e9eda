package walls

import (
	"errors"

	"github.com/katalvlaran/mirrorpath/geom"
)

var (
	// ErrInvalidEnvelope is returned when an empty or non-finite envelope
	// is inserted into an RTree.
	ErrInvalidEnvelope = errors.New("walls: envelope must be finite and non-empty")

	// ErrNilCatalogue indicates a nil Catalogue or Index was supplied.
	ErrNilCatalogue = errors.New("walls: catalogue is nil")
)

// Wall is an oriented segment of a building footprint. Vertices of a
// footprint are counter-clockwise, so a wall faces every point lying
// strictly to the left of A→B.
type Wall struct {
	Segment    geom.Segment
	BuildingID int
}

// NewWall builds a Wall from two endpoints.
func NewWall(a, b geom.Point, buildingID int) Wall {
	return Wall{Segment: geom.Segment{A: a, B: b}, BuildingID: buildingID}
}

// Catalogue is an ordered, fixed-size, read-only collection of walls.
// Implementations must be safe for concurrent reads.
type Catalogue interface {
	// Len returns the number of walls.
	Len() int
	// At returns the wall at index i, 0 <= i < Len().
	At(i int) Wall
}

// Slice is the plain slice-backed Catalogue.
type Slice []Wall

// Len implements Catalogue.
func (s Slice) Len() int { return len(s) }

// At implements Catalogue.
func (s Slice) At(i int) Wall { return s[i] }

// Index answers envelope queries over a set of indexed geometries.
type Index interface {
	// Query returns, in ascending order and without duplicates, the ids
	// whose envelope intersects env.
	Query(env geom.Envelope) []int
}
