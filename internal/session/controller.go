// Package session sequences the phases of a cadence cycle. A Controller owns
// the phase list, the active phase and its clock, and the log of completed
// phases. It advances to the next phase exactly once per completed clock and
// restarts the cycle after the last phase.
package session

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/cadence/internal/clock"
	"github.com/ayoisaiah/cadence/internal/phase"
)

// Cue names played by the controller in addition to each phase's own sound.
const (
	CueStart = "start"
	CuePause = "pause"
)

// CuePlayer plays a named sound. Errors are logged by the controller and
// never interrupt the session.
type CuePlayer interface {
	Play(cue string) error
}

type nopPlayer struct{}

func (nopPlayer) Play(string) error { return nil }

// Option configures a Controller.
type Option func(*Controller)

// WithCuePlayer sets the collaborator that plays cues.
func WithCuePlayer(p CuePlayer) Option {
	return func(c *Controller) {
		c.cues = p
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithNow sets the time source shared by the controller and its clock.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithListener registers a listener for controller events.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		c.listeners = append(c.listeners, l)
	}
}

// State is a read-only snapshot of a controller.
type State struct {
	Phase       phase.Phase
	Pending     string
	Phases      []phase.Phase
	Logs        []Entry
	Remaining   time.Duration
	WorkingTime time.Duration
	Progress    float64
	Index       int
	Running     bool
	Started     bool
}

// Controller drives a cycle of phases. It is not safe for concurrent use:
// every method must be called from the same goroutine, which is also where
// listeners run.
type Controller struct {
	cues      CuePlayer
	now       func() time.Time
	logger    *slog.Logger
	clock     *clock.Clock
	pending   string
	listeners []Listener
	logs      []Entry
	defaults  phase.List
	phases    phase.List
	index     int
	epoch     uint64
	running   bool
	started   bool
	closed    bool
}

// New returns a stopped controller positioned on the first phase.
func New(phases phase.List, opts ...Option) (*Controller, error) {
	if phases.Len() == 0 {
		return nil, errNoPhases
	}

	c := &Controller{
		defaults: phases,
		phases:   phases,
		cues:     nopPlayer{},
		now:      time.Now,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.clock = clock.New(phases.At(0).Duration, clock.WithNow(c.now))

	return c, nil
}

// disarm invalidates every sampling tick scheduled so far. It must run
// before any change to the active index or the clock target.
func (c *Controller) disarm() {
	c.epoch++
}

// Epoch returns the current sampling generation. A sampling loop should tag
// each scheduled tick with the epoch it was armed in and pass it back to
// SampleEpoch.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// Start runs the active phase. It does nothing if the controller is already
// running or has been closed.
func (c *Controller) Start() {
	if c.running || c.closed {
		return
	}

	c.disarm()

	c.running = true
	c.started = true
	c.clock.Start()

	c.cue(CueStart)
	c.emit(Event{Type: EventStarted})
}

// Stop pauses the active phase, keeping its progress.
func (c *Controller) Stop() {
	if !c.running {
		return
	}

	c.disarm()

	c.running = false
	c.clock.Pause()

	c.cue(CuePause)
	c.emit(Event{Type: EventPaused})
}

// Reset returns to the first phase of a fresh cycle. Duration edits are
// discarded and the log is cleared.
func (c *Controller) Reset() {
	c.disarm()

	c.running = false
	c.started = false
	c.index = 0
	c.phases = c.defaults
	c.logs = nil
	c.pending = ""
	c.clock.Reset(c.phases.At(0).Duration)

	c.emit(Event{Type: EventReset})
}

// Close stops the controller for good. Later samples are ignored.
func (c *Controller) Close() {
	c.disarm()

	c.closed = true
	c.running = false
	c.clock.Pause()
}

// Sample re-evaluates the active clock and advances to the next phase if it
// has just completed. It reports whether a phase completed.
func (c *Controller) Sample() bool {
	if !c.running || c.closed {
		return false
	}

	if !c.clock.Sample() {
		return false
	}

	c.onPhaseComplete()

	return true
}

// SampleEpoch is Sample for a tick armed in the given epoch. Ticks from an
// earlier epoch were disarmed and are dropped.
func (c *Controller) SampleEpoch(epoch uint64) bool {
	if epoch != c.epoch {
		return false
	}

	return c.Sample()
}

// onPhaseComplete advances past the completed phase. It acts only while the
// clock is Completed, so a repeated call for the same completion is a no-op.
func (c *Controller) onPhaseComplete() {
	if c.clock.State() != clock.Completed {
		return
	}

	c.disarm()

	finished := c.phases.At(c.index)
	entry := newEntry(finished, c.pending)

	if c.index == c.phases.Last() {
		cycle := append(c.Logs(), entry)

		c.emit(Event{
			Type:  EventCycleCompleted,
			Phase: finished,
			Entry: entry,
			Cycle: cycle,
		})

		c.Reset()
		c.Start()

		return
	}

	c.logs = append(c.logs, entry)
	c.pending = ""
	c.index++
	c.clock.Reset(c.phases.At(c.index).Duration)

	c.cue(finished.CueSound)

	if c.running {
		c.clock.Start()
	}

	c.emit(Event{
		Type:  EventPhaseCompleted,
		Phase: finished,
		Entry: entry,
		Index: c.index - 1,
	})
}

// SetPhaseDuration changes the duration of phase i for the rest of this
// cycle. Phases that already ran this cycle cannot be edited, and neither
// can the active phase once its clock has moved.
func (c *Controller) SetPhaseDuration(i int, d time.Duration) error {
	if !c.phases.InRange(i) {
		return phase.ErrIndexOutOfRange.Fmt(i, c.phases.Len())
	}

	active := i == c.index
	if i < c.index || active && c.clock.State() != clock.Idle {
		return ErrPhaseLocked.Fmt(c.phases.At(i).Label)
	}

	phases, err := c.phases.WithDuration(i, d)
	if err != nil {
		return err
	}

	if active {
		c.disarm()
		c.clock.Reset(phases.At(i).Duration)
	}

	c.phases = phases

	return nil
}

// SetPendingComment replaces the comment attached to the active phase.
func (c *Controller) SetPendingComment(text string) {
	c.pending = text
}

// PendingComment returns the comment attached to the active phase.
func (c *Controller) PendingComment() string {
	return c.pending
}

// Index returns the position of the active phase.
func (c *Controller) Index() int {
	return c.index
}

// Current returns the active phase.
func (c *Controller) Current() phase.Phase {
	return c.phases.At(c.index)
}

// Phases returns the phase list in effect for this cycle.
func (c *Controller) Phases() phase.List {
	return c.phases
}

// Running reports whether the active phase is counting down.
func (c *Controller) Running() bool {
	return c.running
}

// Started reports whether the cycle has been started since the last reset.
func (c *Controller) Started() bool {
	return c.started
}

// Remaining returns the time left in the active phase.
func (c *Controller) Remaining() time.Duration {
	return c.clock.Remaining()
}

// RemainingSeconds returns the whole seconds left in the active phase.
func (c *Controller) RemainingSeconds() int {
	return c.clock.RemainingSeconds()
}

// Logs returns a copy of the entries recorded in this cycle.
func (c *Controller) Logs() []Entry {
	logs := make([]Entry, len(c.logs))
	copy(logs, c.logs)

	return logs
}

// WorkingTime returns the time spent in working phases this cycle.
func (c *Controller) WorkingTime() time.Duration {
	return WorkingTime(c.logs)
}

// Snapshot captures the observable state of the controller.
func (c *Controller) Snapshot() State {
	return State{
		Index:       c.index,
		Phase:       c.Current(),
		Phases:      c.phases.All(),
		Running:     c.running,
		Started:     c.started,
		Remaining:   c.clock.Remaining(),
		Progress:    c.clock.Progress(),
		Pending:     c.pending,
		Logs:        c.Logs(),
		WorkingTime: c.WorkingTime(),
	}
}

func (c *Controller) cue(name string) {
	if name == "" {
		return
	}

	if err := c.cues.Play(name); err != nil {
		c.logger.Warn("cue playback failed",
			slog.String("cue", name),
			slog.Any("error", err),
		)
	}
}

func (c *Controller) emit(ev Event) {
	if ev.At.IsZero() {
		ev.At = c.now()
	}

	if ev.Type == EventStarted || ev.Type == EventPaused {
		ev.Phase = c.Current()
		ev.Index = c.index
	}

	for _, l := range c.listeners {
		l(ev)
	}
}
