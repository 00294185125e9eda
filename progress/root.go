package progress

import (
	"log/slog"
	"slices"
	"sync"
)

// process is one level of the progression tree. All fields are guarded by
// root.mu.
//
// step only ever grows by whole steps, so a level is exactly full once all
// its steps are pushed. Partial progress of unfinished sub-processes is
// summed on read from active.
type process struct {
	root   *Root
	parent *process
	size   float64
	step   float64
	active []*process
}

// Root is the top-level Visitor of a job. It is safe for concurrent use:
// sub-processes of the same root may be driven from several goroutines.
type Root struct {
	process

	mu         sync.Mutex
	opts       Options
	canceled   bool
	lastLogged int
}

var _ Visitor = (*Root)(nil)

// NewRoot creates a Root for a job of steps steps (at least one).
func NewRoot(steps int64, opts ...Option) *Root {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	r := &Root{opts: o}
	r.process = process{root: r, size: stepCount(steps)}

	return r
}

// Cancel marks the job canceled. Subsequent IsCanceled calls on the root and
// on every sub-process report true.
func (r *Root) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markCanceled("canceled")
}

// PushProgress implements Visitor.
func (p *process) PushProgress() {
	r := p.root
	r.mu.Lock()
	defer r.mu.Unlock()

	p.push(1)
	r.report()
}

// IsCanceled implements Visitor.
func (p *process) IsCanceled() bool {
	r := p.root
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.canceled && r.opts.Ctx.Err() != nil {
		r.markCanceled(r.opts.Ctx.Err().Error())
	}

	return r.canceled
}

// SubProcess implements Visitor.
func (p *process) SubProcess(steps int64) Visitor {
	r := p.root
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &process{root: r, parent: p, size: stepCount(steps)}
	p.active = append(p.active, c)

	return c
}

// Progression implements Visitor.
func (p *process) Progression() float64 {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()

	return p.ratio()
}

// push adds inc whole steps, clamped to the remaining ones. A level that
// becomes full leaves its parent's active list and pushes one parent step.
func (p *process) push(inc float64) {
	if p.step >= p.size {
		return
	}
	p.step = min(p.step+inc, p.size)
	if p.step < p.size || p.parent == nil {
		return
	}
	if i := slices.Index(p.parent.active, p); i >= 0 {
		p.parent.active = slices.Delete(p.parent.active, i, i+1)
	}
	p.parent.push(1)
}

// ratio is the completed share of p, unfinished sub-processes included.
func (p *process) ratio() float64 {
	done := p.step
	for _, c := range p.active {
		done += c.ratio()
	}

	return min(done/p.size, 1)
}

// report publishes the root progression. Caller holds r.mu.
func (r *Root) report() {
	ratio := r.ratio()
	if r.opts.Gauge != nil {
		r.opts.Gauge.Set(ratio)
	}
	if r.opts.LogStep <= 0 {
		return
	}
	percent := int(ratio * 100)
	if percent-r.lastLogged >= r.opts.LogStep {
		r.lastLogged = percent
		r.opts.Logger.Info("progress", slog.Int("percent", percent))
	}
}

// markCanceled flips the flag once. Caller holds r.mu.
func (r *Root) markCanceled(reason string) {
	if r.canceled {
		return
	}
	r.canceled = true
	r.opts.Logger.Info("job canceled",
		slog.String("reason", reason),
		slog.Float64("progression", r.ratio()),
	)
}

func stepCount(n int64) float64 {
	if n < 1 {
		return 1
	}

	return float64(n)
}
