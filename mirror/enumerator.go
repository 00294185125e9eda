package mirror

import "slices"

// Enumerator produces wall-index sequences depth-first, like an odometer
// whose digits may not repeat their left neighbour.
//
// State is the stack path. Next returns it and then either descends (push a
// new level) or backtracks (increment the last level, popping on overflow).
// A sequence is only ever produced after all of its prefixes.
type Enumerator struct {
	maxDepth  int
	wallCount int
	path      []int
	// returned is the length of the sequence most recently returned by Next.
	returned int
}

// NewEnumerator creates an Enumerator over wallCount walls and sequence
// lengths 1..maxDepth. It is exhausted from the start when either bound is
// not positive.
func NewEnumerator(maxDepth, wallCount int) *Enumerator {
	e := &Enumerator{
		maxDepth:  maxDepth,
		wallCount: wallCount,
		path:      make([]int, 0, max(maxDepth, 0)),
	}
	if maxDepth > 0 && wallCount > 0 {
		e.path = append(e.path, 0)
	}

	return e
}

// HasMore reports whether Next will return another sequence.
func (e *Enumerator) HasMore() bool {
	return len(e.path) > 0
}

// Depth returns the length of the pending sequence, 0 once exhausted.
func (e *Enumerator) Depth() int {
	return len(e.path)
}

// Next returns a copy of the pending sequence and advances to the following
// one. It returns nil once exhausted.
func (e *Enumerator) Next() []int {
	if len(e.path) == 0 {
		return nil
	}
	out := slices.Clone(e.path)
	e.returned = len(out)

	if len(e.path) < e.maxDepth && e.wallCount > 1 {
		// First child: 0, or 1 when the parent is 0.
		e.path = append(e.path, nextIndex(-1, e.path[len(e.path)-1]))
	} else {
		e.backtrack()
	}

	return out
}

// Prune skips every remaining descendant of the sequence most recently
// returned by Next. Siblings and shallower alternatives are kept. It is a
// no-op when Next did not descend below that sequence.
func (e *Enumerator) Prune() {
	if len(e.path) <= e.returned {
		return
	}
	e.path[len(e.path)-1] = e.wallCount - 1
	e.backtrack()
}

// backtrack increments the deepest level, popping levels that overflow.
func (e *Enumerator) backtrack() {
	for len(e.path) > 0 {
		last := len(e.path) - 1
		skip := -1
		if last > 0 {
			skip = e.path[last-1]
		}
		e.path[last] = nextIndex(e.path[last], skip)
		if e.path[last] < e.wallCount {
			return
		}
		e.path = e.path[:last]
	}
}

// nextIndex returns the value after v, stepping over skip.
func nextIndex(v, skip int) int {
	if v+1 != skip {
		return v + 1
	}

	return v + 2
}
