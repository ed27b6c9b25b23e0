package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// StepsPerTick lets the caller advance several generations per elapsed tick
// without touching the wall-clock pacing.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	StepsPerTick int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{StepsPerTick: 1}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether a tick boundary has passed since the last call.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Steps returns how many generations to advance this tick, zero when the
// tick boundary has not been reached yet.
func (f *FixedStep) Steps() int {
	if !f.ShouldStep() {
		return 0
	}
	if f.StepsPerTick < 1 {
		return 1
	}
	return f.StepsPerTick
}
