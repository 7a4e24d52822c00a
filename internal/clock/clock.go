// Package clock tracks elapsed time for a single active phase.
//
// Elapsed time is always derived from timestamp deltas taken from the
// monotonic clock. Callers sample the clock periodically, but a sample only
// triggers re-evaluation: the number of samples never affects the result, so
// late or skipped samples cannot make the countdown drift.
package clock

import (
	"time"
)

// MinTarget is the shortest target a clock accepts. Shorter targets are
// clamped so that a clock is never complete before it starts.
const MinTarget = time.Second

// State is the observable state of a Clock.
type State int

const (
	// Idle means the clock has been reset and has not run since.
	Idle State = iota
	Running
	Paused
	// Completed means the clock reached zero and fired. It stays in this
	// state until Reset.
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return "unknown"
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow sets the time source used by the clock.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// Clock is a pausable countdown for one phase. It is not safe for
// concurrent use.
type Clock struct {
	now         func() time.Time
	runSince    time.Time
	target      time.Duration
	accumulated time.Duration
	running     bool
	fired       bool
}

// New returns an idle clock that counts down from target.
func New(target time.Duration, opts ...Option) *Clock {
	c := &Clock{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Reset(target)

	return c
}

// clamp truncates d to whole seconds and enforces MinTarget.
func clamp(d time.Duration) time.Duration {
	d = d.Truncate(time.Second)
	if d < MinTarget {
		return MinTarget
	}

	return d
}

// Start begins or resumes the countdown. It does nothing if the clock is
// already running or has completed.
func (c *Clock) Start() {
	if c.Running() || c.fired {
		return
	}

	c.runSince = c.now()
	c.running = true
}

// Pause stops the countdown, keeping the progress made so far.
func (c *Clock) Pause() {
	if !c.Running() {
		return
	}

	c.accumulated += c.now().Sub(c.runSince)
	c.runSince = time.Time{}
	c.running = false
}

// Reset discards all progress and sets a new target. It is safe to call in
// any state.
func (c *Clock) Reset(target time.Duration) {
	c.target = clamp(target)
	c.accumulated = 0
	c.runSince = time.Time{}
	c.running = false
	c.fired = false
}

// Running reports whether the countdown is in progress.
func (c *Clock) Running() bool {
	return c.running
}

// State returns the current state of the clock.
func (c *Clock) State() State {
	switch {
	case c.fired:
		return Completed
	case c.Running():
		return Running
	case c.accumulated > 0:
		return Paused
	default:
		return Idle
	}
}

// Target returns the duration the clock counts down from.
func (c *Clock) Target() time.Duration {
	return c.target
}

// Elapsed returns the total running time since the last reset.
func (c *Clock) Elapsed() time.Duration {
	elapsed := c.accumulated
	if c.Running() {
		elapsed += c.now().Sub(c.runSince)
	}

	if elapsed < 0 {
		return 0
	}

	return elapsed
}

// RemainingSeconds returns the whole seconds left, never negative.
func (c *Clock) RemainingSeconds() int {
	remaining := int(c.target/time.Second) - int(c.Elapsed()/time.Second)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Remaining returns the time left at full resolution, never negative.
func (c *Clock) Remaining() time.Duration {
	remaining := c.target - c.Elapsed()
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Progress returns the completed fraction of the target in [0, 1].
func (c *Clock) Progress() float64 {
	p := float64(c.Elapsed()) / float64(c.target)
	if p > 1 {
		return 1
	}

	return p
}

// Sample re-evaluates the clock. It returns true exactly once per reset,
// on the first sample taken while running at which no whole seconds remain.
// The clock then stops and stays Completed until the next Reset.
func (c *Clock) Sample() bool {
	if c.fired || !c.Running() {
		return false
	}

	if c.RemainingSeconds() > 0 {
		return false
	}

	c.Pause()
	c.fired = true

	return true
}
