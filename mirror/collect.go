package mirror

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mirrorpath/geom"
	"github.com/katalvlaran/mirrorpath/progress"
	"github.com/katalvlaran/mirrorpath/walls"
)

// Collect drains w. When v is non-nil it is polled before every pull, and
// Collect returns the nodes gathered so far with ErrCanceled once v reports
// cancellation.
func Collect(w *Walker, v progress.Visitor) ([]*Node, error) {
	var out []*Node
	for w.HasNext() {
		if v != nil && v.IsCanceled() {
			return out, ErrCanceled
		}
		n, _ := w.Next()
		out = append(out, n)
	}

	return out, nil
}

// Search returns every admissible reflection path of receiver across
// catalogue. See NewWalker for the parameters.
func Search(receiver geom.Point, catalogue walls.Catalogue, srcRcv geom.Segment, opts ...Option) ([]*Node, error) {
	w, err := NewWalker(receiver, catalogue, srcRcv, opts...)
	if err != nil {
		return nil, err
	}

	return Collect(w, nil)
}

// ReceiverPaths is the outcome of the search for one receiver.
type ReceiverPaths struct {
	Receiver geom.Point

	// Walls is the near-wall catalogue of this receiver; Node.WallIndex
	// indexes into it.
	Walls walls.Slice

	// WallIDs maps Walls back to the full catalogue: Walls[i] is
	// all.At(WallIDs[i]).
	WallIDs []int

	// Nodes are the admissible paths, in enumeration order.
	Nodes []*Node
}

// SearchReceivers runs one search per receiver against a shared source.
// For each receiver, the walls of all closer than the distance limitation
// to the direct path are selected through index (built from all when nil),
// then searched. Up to Options.Workers receivers are processed at once; the
// result keeps the order of receivers. v, when non-nil, advances by one step
// per receiver and is polled for cancellation between pulls; on
// cancellation the results of the finished receivers are returned with
// ErrCanceled.
func SearchReceivers(
	source geom.Point,
	receivers []geom.Point,
	all walls.Catalogue,
	index walls.Index,
	v progress.Visitor,
	opts ...Option,
) ([]ReceiverPaths, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if all == nil {
		return nil, ErrNilCatalogue
	}
	if index == nil {
		q, err := walls.IndexCatalogue(all)
		if err != nil {
			return nil, fmt.Errorf("mirror: index catalogue: %w", err)
		}
		index = q
	}

	results := make([]ReceiverPaths, len(receivers))
	done := make([]bool, len(receivers))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.Workers)
	for i, rcv := range receivers {
		g.Go(func() error {
			// A failed receiver stops the ones not started yet.
			if ctx.Err() != nil {
				return nil
			}
			res, err := searchReceiver(source, rcv, all, index, v, o, opts)
			if err != nil {
				if errors.Is(err, ErrCanceled) {
					return err
				}

				return fmt.Errorf("mirror: receiver %d: %w", i, err)
			}
			results[i], done[i] = res, true
			if v != nil {
				v.PushProgress()
			}

			return nil
		})
	}
	err := g.Wait()

	out := make([]ReceiverPaths, 0, len(receivers))
	for i, ok := range done {
		if ok {
			out = append(out, results[i])
		}
	}

	return out, err
}

// searchReceiver selects the near walls of one receiver and drains a
// Walker over them.
func searchReceiver(
	source, rcv geom.Point,
	all walls.Catalogue,
	index walls.Index,
	v progress.Visitor,
	o Options,
	opts []Option,
) (ReceiverPaths, error) {
	if v != nil && v.IsCanceled() {
		return ReceiverPaths{}, ErrCanceled
	}
	srcRcv := geom.Segment{A: source, B: rcv}
	near, ids, err := walls.Near(all, index, srcRcv, o.DistanceLimitation)
	if err != nil {
		return ReceiverPaths{}, err
	}

	res := ReceiverPaths{Receiver: rcv, Walls: near, WallIDs: ids}
	if len(near) == 0 {
		return res, nil
	}
	w, err := NewWalker(rcv, near, srcRcv, opts...)
	if err != nil {
		return ReceiverPaths{}, err
	}
	res.Nodes, err = Collect(w, v)
	if err != nil {
		return ReceiverPaths{}, err
	}

	return res, nil
}
