package mirror

import (
	"iter"
	"log/slog"

	"github.com/katalvlaran/mirrorpath/geom"
	"github.com/katalvlaran/mirrorpath/walls"
)

// walkerState is the Walker life cycle: ready while a node is pending,
// exhausted once the Enumerator ran dry. Exhausted is terminal.
type walkerState int

const (
	stateReady walkerState = iota
	stateExhausted
)

// Walker yields the admissible reflection paths of one source–receiver pair.
// It is a forward-only sequence; build a new Walker to start over.
type Walker struct {
	receiver geom.Point
	walls    walls.Catalogue
	srcRcv   geom.Segment
	opts     Options

	seq     *Enumerator
	current *Node
	state   walkerState
	stats   Stats
}

// NewWalker prepares the search for the reflections of receiver across the
// walls of catalogue. srcRcv.A is the source position; srcRcv is the direct
// path used by the distance limitation. The first admissible node, if any,
// is computed before NewWalker returns.
func NewWalker(receiver geom.Point, catalogue walls.Catalogue, srcRcv geom.Segment, opts ...Option) (*Walker, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if catalogue == nil {
		return nil, ErrNilCatalogue
	}
	if catalogue.Len() == 0 {
		return nil, ErrEmptyCatalogue
	}

	w := &Walker{
		receiver: receiver,
		walls:    catalogue,
		srcRcv:   srcRcv,
		opts:     o,
		seq:      NewEnumerator(o.MaxDepth, catalogue.Len()),
	}
	w.fetchNext()

	return w, nil
}

// HasNext reports whether Next will yield a node.
func (w *Walker) HasNext() bool {
	return w.current != nil
}

// Next returns the pending node and searches the following one.
// Once exhausted it always returns (nil, false).
func (w *Walker) Next() (*Node, bool) {
	if w.current == nil {
		return nil, false
	}
	n := w.current
	w.fetchNext()

	return n, true
}

// All returns an iterator draining w.
func (w *Walker) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for {
			n, ok := w.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// Remove always fails: yielded paths cannot be removed from the sequence.
func (w *Walker) Remove() error {
	return ErrUnsupportedOperation
}

// Stats returns the work counters so far.
func (w *Walker) Stats() Stats {
	return w.stats
}

// fetchNext scans candidates until one is admissible or the Enumerator is
// exhausted. The previously yielded node is the reference for parent reuse.
func (w *Walker) fetchNext() {
	if w.state == stateExhausted {
		w.current = nil
		return
	}
	prev := w.current
	w.current = nil

	for w.seq.HasMore() {
		candidate := w.seq.Next()
		w.stats.Candidates++
		if w.opts.Metrics {
			candidatesTotal.Inc()
		}

		if n := w.evaluate(candidate, resolveParent(prev, candidate)); n != nil {
			w.current = n
			w.stats.Accepted++
			if w.opts.Metrics {
				pathsTotal.Inc()
				pathDepth.Observe(float64(n.depth))
			}
			return
		}

		// Nothing reflects here, so nothing deeper can either.
		if len(candidate) < w.opts.MaxDepth {
			w.seq.Prune()
			w.stats.Pruned++
			if w.opts.Metrics {
				prunedTotal.Inc()
			}
		}
	}

	w.state = stateExhausted
	w.opts.Logger.Debug("mirror search exhausted",
		slog.Int("walls", w.walls.Len()),
		slog.Int("max_depth", w.opts.MaxDepth),
		slog.Int("candidates", w.stats.Candidates),
		slog.Int("pruned", w.stats.Pruned),
		slog.Int("accepted", w.stats.Accepted),
	)
}

// evaluate validates candidate on top of parent and builds its node, or
// returns nil when the reflection is not admissible.
func (w *Walker) evaluate(candidate []int, parent *Node) *Node {
	depth := len(candidate)
	if depth > 1 && (parent == nil || parent.depth != depth-1) {
		return nil
	}
	wallIdx := candidate[depth-1]
	wall := w.walls.At(wallIdx)

	image := w.receiver
	// Deeper walls are tested against the receiver itself, not the image.
	facing := FacesPoint(wall.Segment, w.receiver)
	if parent != nil {
		image = parent.image
		facing = facing && FaceToFace(w.walls.At(parent.wall).Segment, wall.Segment)
	}
	if !facing {
		return nil
	}

	if wall.Segment.Distance(w.srcRcv) >= w.opts.DistanceLimitation {
		return nil
	}
	mirrored := geom.Reflect(image, wall.Segment.Project(image))
	if w.srcRcv.A.Distance2D(mirrored) >= w.opts.PropagationLimitation {
		return nil
	}

	return &Node{
		image:    mirrored,
		wall:     wallIdx,
		building: wall.BuildingID,
		parent:   parent,
		depth:    depth,
	}
}

// resolveParent returns the deepest node of prev's chain whose wall indices
// are a prefix of candidate, stopping one level above the candidate itself.
func resolveParent(prev *Node, candidate []int) *Node {
	if prev == nil || len(candidate) <= 1 {
		return nil
	}
	var parent *Node
	for i, n := range prev.Chain() {
		if i >= len(candidate)-1 || n.wall != candidate[i] {
			break
		}
		parent = n
	}

	return parent
}
