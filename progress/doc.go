// Package progress reports the advancement of long batch computations and
// carries their cooperative cancellation flag.
//
// A Root visitor covers a whole job split into a number of steps. Any
// visitor can open a SubProcess that divides one of its steps further; each
// finished sub-step pushes its share of progression up to the root. Callers
// poll IsCanceled between units of work: nothing in this package interrupts
// running code.
//
// The Root can log progression every N percent through log/slog and mirror
// it into a Prometheus gauge.
package progress
