// Package engine serializes access to a simulation behind a single goroutine
// so interactive frontends can drive it from their own event loops without
// violating the grid's exclusive-owner contract.
package engine

import (
	"sync"
	"time"

	"golife/internal/core"
)

// Mode is the runner's coarse state.
type Mode int

const (
	// ModeManual means the runner only advances on explicit StepOnce calls.
	ModeManual Mode = iota
	// ModeRunning means the runner advances on its own interval.
	ModeRunning
	// ModeFinished means a stop condition was reached; Reseed or Clear
	// leaves this state.
	ModeFinished
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeFinished:
		return "finished"
	default:
		return "waiting"
	}
}

// Status is a snapshot of the runner published after every mutation.
type Status struct {
	Generation uint64
	Population int
	StepTime   time.Duration
	PerSecond  float64
	Mode       Mode
}

// Options configures a Runner.
type Options struct {
	// Interval between generations while running.
	Interval time.Duration
	// MaxSteps stops the run once the generation counter reaches it.
	// Zero means unlimited.
	MaxSteps uint64
	// Seed used by Reseed when the caller does not supply one.
	Seed uint64
}

// DefaultOptions are the runner defaults shared by the frontends.
var DefaultOptions = Options{
	Interval: 100 * time.Millisecond,
	MaxSteps: 1000,
	Seed:     42,
}

// cellToggler is implemented by sims whose cells can be flipped in place.
type cellToggler interface {
	Toggle(x, y int)
}

// changeProber is implemented by sims that can tell whether the last step
// changed anything; the runner uses it to stop quiescent boards.
type changeProber interface {
	Changed() bool
}

// Runner owns a Sim and executes all mutations on one goroutine. Commands
// return immediately; results are observed via Status, the state channel,
// and the notify callback.
type Runner struct {
	sim  core.Sim
	opts Options

	mu     sync.Mutex
	status Status

	stateCh chan<- Status
	notify  func()

	ctrl  chan func()
	close chan struct{}
	tick  *time.Ticker
}

// New starts a runner for the provided sim. stateCh may be nil; when set,
// every status change is delivered on it and the caller must drain it.
func New(sim core.Sim, opts Options, stateCh chan<- Status) *Runner {
	if opts.Interval <= 0 {
		opts.Interval = DefaultOptions.Interval
	}
	r := &Runner{
		sim:     sim,
		opts:    opts,
		stateCh: stateCh,
		ctrl:    make(chan func(), 4),
		close:   make(chan struct{}),
	}
	r.tick = time.NewTicker(opts.Interval)
	r.tick.Stop()
	r.status.Population = sim.Population()
	r.status.Generation = sim.Generation()
	go r.loop()
	return r
}

// SetNotify registers a callback invoked after every status change, on the
// runner goroutine. Intended for UI refresh hooks; must not block.
func (r *Runner) SetNotify(fn func()) {
	r.ctrl <- func() { r.notify = fn }
}

// Status returns the latest snapshot.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Options returns the runner configuration.
func (r *Runner) Options() Options { return r.opts }

// Sim exposes the underlying simulation for read-only access (rendering).
// Mutations must go through the runner.
func (r *Runner) Sim() core.Sim { return r.sim }

// Run starts free-running stepping at the configured interval.
func (r *Runner) Run() {
	r.ctrl <- func() {
		if r.mode() == ModeFinished {
			return
		}
		r.setMode(ModeRunning)
		r.tick.Reset(r.opts.Interval)
	}
}

// Stop halts free-running stepping.
func (r *Runner) Stop() {
	r.ctrl <- func() {
		if r.mode() == ModeRunning {
			r.tick.Stop()
			r.setMode(ModeManual)
		}
	}
}

// StepOnce advances exactly one generation.
func (r *Runner) StepOnce() {
	r.ctrl <- func() {
		if r.mode() != ModeFinished {
			r.step()
		}
	}
}

// Clear kills all cells and resets counters, returning to manual mode.
func (r *Runner) Clear() {
	r.ctrl <- func() {
		r.tick.Stop()
		r.sim.Reset()
		r.publish(func(s *Status) {
			*s = Status{Mode: ModeManual}
		})
	}
}

// Reseed reinitializes the board from the seed and returns to manual mode.
func (r *Runner) Reseed(seed uint64) {
	r.ctrl <- func() {
		r.tick.Stop()
		r.sim.Reseed(seed)
		r.publish(func(s *Status) {
			*s = Status{
				Generation: r.sim.Generation(),
				Population: r.sim.Population(),
				Mode:       ModeManual,
			}
		})
	}
}

// Toggle flips the cell at (x, y) if the sim supports it.
func (r *Runner) Toggle(x, y int) {
	r.ctrl <- func() {
		t, ok := r.sim.(cellToggler)
		if !ok {
			return
		}
		sz := r.sim.Size()
		if x < 0 || x >= sz.W || y < 0 || y >= sz.H {
			return
		}
		t.Toggle(x, y)
		r.publish(func(s *Status) {
			s.Population = r.sim.Population()
		})
	}
}

// Close stops the runner goroutine. No commands may be issued afterwards.
func (r *Runner) Close() {
	close(r.close)
}

func (r *Runner) loop() {
	for {
		select {
		case cmd := <-r.ctrl:
			cmd()
		case <-r.tick.C:
			r.step()
		case <-r.close:
			r.tick.Stop()
			return
		}
	}
}

// step runs on the runner goroutine only.
func (r *Runner) step() {
	start := time.Now()
	r.sim.Step()
	took := time.Since(start)

	finished := false
	if r.opts.MaxSteps > 0 && r.sim.Generation() >= r.opts.MaxSteps {
		finished = true
	}
	if r.sim.Population() == 0 {
		finished = true
	}
	if p, ok := r.sim.(changeProber); ok && !p.Changed() {
		finished = true
	}

	r.publish(func(s *Status) {
		s.Generation = r.sim.Generation()
		s.Population = r.sim.Population()
		s.StepTime = took
		if took > 0 {
			s.PerSecond = 1.0 / took.Seconds()
		}
		if finished {
			s.Mode = ModeFinished
		}
	})
	if finished {
		r.tick.Stop()
	}
}

func (r *Runner) mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status.Mode
}

func (r *Runner) setMode(m Mode) {
	r.publish(func(s *Status) { s.Mode = m })
}

// publish applies a mutation to the status under the lock, then fans the
// snapshot out to the state channel and the notify callback.
func (r *Runner) publish(mut func(*Status)) {
	r.mu.Lock()
	mut(&r.status)
	st := r.status
	r.mu.Unlock()

	if r.stateCh != nil {
		select {
		case r.stateCh <- st:
		case <-r.close:
		}
	}
	if r.notify != nil {
		r.notify()
	}
}
