package progress

import (
	"context"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Visitor is the push-progress + is-canceled contract.
type Visitor interface {
	// PushProgress marks one step of this visitor as done.
	PushProgress()
	// IsCanceled reports whether the job was canceled.
	IsCanceled() bool
	// SubProcess splits one step of this visitor into steps sub-steps.
	SubProcess(steps int64) Visitor
	// Progression returns the completed ratio of this visitor, in [0, 1].
	Progression() float64
}

// Option configures a Root visitor.
type Option func(*Options)

// Options holds Root settings.
type Options struct {
	// Ctx, when done, marks the job canceled.
	Ctx context.Context

	// Logger receives progression and cancellation records.
	Logger *slog.Logger

	// LogStep logs progression each time it grows by LogStep percent.
	// Zero disables progression logging.
	LogStep int

	// Gauge, if non-nil, is set to the root progression ratio on each push.
	Gauge prometheus.Gauge
}

// DefaultOptions returns Options with a background context, a discarding
// logger, no progression logging and no gauge.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogStep: 0,
		Gauge:   nil,
	}
}

// WithContext cancels the job once ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
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

// WithLogStep logs progression every percent percents (1..100).
func WithLogStep(percent int) Option {
	return func(o *Options) {
		if percent < 0 {
			percent = 0
		}
		o.LogStep = min(percent, 100)
	}
}

// WithGauge exports the root progression ratio into g.
func WithGauge(g prometheus.Gauge) Option {
	return func(o *Options) {
		o.Gauge = g
	}
}
