package mirror

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var (
	// ErrNilCatalogue is returned when the wall catalogue is nil.
	ErrNilCatalogue = errors.New("mirror: wall catalogue is nil")

	// ErrEmptyCatalogue is returned when the wall catalogue holds no wall.
	ErrEmptyCatalogue = errors.New("mirror: wall catalogue is empty")

	// ErrNegativeDepth indicates a negative maximum reflection depth.
	ErrNegativeDepth = errors.New("mirror: max depth must be >= 0")

	// ErrNonPositiveLimit indicates a distance or propagation limitation
	// that is not strictly positive.
	ErrNonPositiveLimit = errors.New("mirror: limitation must be > 0")

	// ErrNonPositiveWorkers indicates a receiver worker count below one.
	ErrNonPositiveWorkers = errors.New("mirror: workers must be >= 1")

	// ErrUnsupportedOperation is returned by operations that would mutate
	// the result sequence.
	ErrUnsupportedOperation = fmt.Errorf("mirror: operation not supported: %w", errors.ErrUnsupported)

	// ErrCanceled is returned by Collect when its visitor reports cancellation.
	ErrCanceled = errors.New("mirror: search canceled")
)

// Option configures a Walker.
type Option func(*Options)

// Options holds the search limits and diagnostics of a Walker.
type Options struct {
	// MaxDepth is the maximum reflection order. Zero yields no path.
	MaxDepth int

	// DistanceLimitation is the exclusive upper bound on the distance between
	// a reflecting wall and the direct source–receiver segment.
	DistanceLimitation float64

	// PropagationLimitation is the exclusive upper bound on the distance
	// between the source and a mirrored receiver.
	PropagationLimitation float64

	// Logger receives a debug record per finished search.
	Logger *slog.Logger

	// Metrics toggles the package Prometheus counters.
	Metrics bool

	// Workers bounds the receivers searched concurrently by SearchReceivers.
	Workers int
}

// DefaultOptions returns Options with:
//   - MaxDepth = 1
//   - DistanceLimitation = 50
//   - PropagationLimitation = 150
//   - a discarding logger
//   - metrics enabled
//   - Workers = 1
func DefaultOptions() Options {
	return Options{
		MaxDepth:              1,
		DistanceLimitation:    50,
		PropagationLimitation: 150,
		Logger:                slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:               true,
		Workers:               1,
	}
}

// WithMaxDepth sets the maximum reflection order.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithDistanceLimitation sets the wall to direct-path distance cap.
func WithDistanceLimitation(d float64) Option {
	return func(o *Options) {
		o.DistanceLimitation = d
	}
}

// WithPropagationLimitation sets the source to image distance cap.
func WithPropagationLimitation(d float64) Option {
	return func(o *Options) {
		o.PropagationLimitation = d
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables or disables Prometheus accounting.
func WithMetrics(enabled bool) Option {
	return func(o *Options) {
		o.Metrics = enabled
	}
}

// WithWorkers sets how many receivers SearchReceivers processes at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// validate checks the limits once, at construction.
func (o Options) validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("mirror: max depth %d: %w", o.MaxDepth, ErrNegativeDepth)
	}
	// Written as !(x > 0) so that NaN is rejected too.
	if !(o.DistanceLimitation > 0) {
		return fmt.Errorf("mirror: distance limitation %v: %w", o.DistanceLimitation, ErrNonPositiveLimit)
	}
	if !(o.PropagationLimitation > 0) {
		return fmt.Errorf("mirror: propagation limitation %v: %w", o.PropagationLimitation, ErrNonPositiveLimit)
	}
	if o.Workers < 1 {
		return fmt.Errorf("mirror: workers %d: %w", o.Workers, ErrNonPositiveWorkers)
	}

	return nil
}

// Stats counts the work done by a Walker.
type Stats struct {
	// Candidates is the number of sequences pulled from the Enumerator.
	Candidates int
	// Pruned is the number of rejected prefixes whose subtree was cut.
	Pruned int
	// Accepted is the number of yielded nodes.
	Accepted int
}
