package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/cadence/internal/clock"
)

// fakeTime is a manually advanced time source.
type fakeTime struct {
	t time.Time
}

func newFakeTime() *fakeTime {
	return &fakeTime{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeTime) Now() time.Time {
	return f.t
}

func (f *fakeTime) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func newClock(target time.Duration) (*clock.Clock, *fakeTime) {
	ft := newFakeTime()

	return clock.New(target, clock.WithNow(ft.Now)), ft
}

func TestClockStates(t *testing.T) {
	c, ft := newClock(10 * time.Second)

	assert.Equal(t, clock.Idle, c.State())

	c.Start()
	assert.Equal(t, clock.Running, c.State())

	ft.Advance(2 * time.Second)
	c.Pause()
	assert.Equal(t, clock.Paused, c.State())

	c.Start()
	assert.Equal(t, clock.Running, c.State())

	ft.Advance(8 * time.Second)
	assert.True(t, c.Sample())
	assert.Equal(t, clock.Completed, c.State())

	c.Reset(5 * time.Second)
	assert.Equal(t, clock.Idle, c.State())
	assert.Equal(t, 5, c.RemainingSeconds())
}

func TestMonotonicDrain(t *testing.T) {
	c, ft := newClock(5 * time.Second)
	c.Start()

	prev := c.RemainingSeconds()

	// uneven sampling intervals simulate an unreliable scheduler
	steps := []time.Duration{
		13 * time.Millisecond,
		700 * time.Millisecond,
		2 * time.Millisecond,
		1500 * time.Millisecond,
		40 * time.Millisecond,
		3 * time.Second,
		10 * time.Second,
	}

	for _, step := range steps {
		ft.Advance(step)
		c.Sample()

		got := c.RemainingSeconds()

		assert.LessOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 0)

		prev = got
	}

	assert.Equal(t, 0, c.RemainingSeconds())
}

func TestRemainingUsesFloorOfElapsed(t *testing.T) {
	c, ft := newClock(60 * time.Second)
	c.Start()

	ft.Advance(999 * time.Millisecond)
	assert.Equal(t, 60, c.RemainingSeconds())

	ft.Advance(1 * time.Millisecond)
	assert.Equal(t, 59, c.RemainingSeconds())

	ft.Advance(58500 * time.Millisecond)
	assert.Equal(t, 1, c.RemainingSeconds())
	assert.Equal(t, 500*time.Millisecond, c.Remaining())
}

func TestPauseResumeConservation(t *testing.T) {
	c, ft := newClock(30 * time.Second)
	c.Start()

	ft.Advance(12300 * time.Millisecond)
	c.Pause()

	before := c.RemainingSeconds()
	beforeExact := c.Remaining()

	ft.Advance(3 * time.Hour)
	assert.Equal(t, before, c.RemainingSeconds(), "time passed while paused")

	c.Start()
	assert.Equal(t, before, c.RemainingSeconds())
	assert.Equal(t, beforeExact, c.Remaining())
}

func TestStartAndPauseAreIdempotent(t *testing.T) {
	c, ft := newClock(30 * time.Second)

	c.Pause()
	assert.Equal(t, clock.Idle, c.State())

	c.Start()
	ft.Advance(5 * time.Second)

	// a second start must not move the segment start forward
	c.Start()
	assert.Equal(t, 25, c.RemainingSeconds())

	c.Pause()
	ft.Advance(5 * time.Second)
	c.Pause()
	assert.Equal(t, 25, c.RemainingSeconds())
}

func TestSingleFireCompletion(t *testing.T) {
	c, ft := newClock(3 * time.Second)
	c.Start()

	fired := 0

	for range 100 {
		ft.Advance(50 * time.Millisecond)

		if c.Sample() {
			fired++

			assert.GreaterOrEqual(t, c.Elapsed(), 3*time.Second)
		}
	}

	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, c.RemainingSeconds())

	// restarting a completed clock does not re-arm it
	c.Start()
	ft.Advance(time.Second)
	assert.False(t, c.Sample())

	c.Reset(3 * time.Second)
	c.Start()
	ft.Advance(3 * time.Second)
	assert.True(t, c.Sample())
}

func TestNeverFiresBeforeTarget(t *testing.T) {
	c, ft := newClock(2 * time.Second)
	c.Start()

	ft.Advance(1999 * time.Millisecond)
	assert.False(t, c.Sample())

	ft.Advance(time.Millisecond)
	assert.True(t, c.Sample())
}

func TestNoFireWhilePaused(t *testing.T) {
	c, ft := newClock(2 * time.Second)
	c.Start()
	ft.Advance(3 * time.Second)
	c.Pause()

	assert.False(t, c.Sample())
	assert.Equal(t, 0, c.RemainingSeconds())

	c.Start()
	assert.True(t, c.Sample())
}

func TestLateSampleDoesNotDrift(t *testing.T) {
	c, ft := newClock(10 * time.Second)
	c.Start()

	// a single very late sample still sees the true elapsed time
	ft.Advance(7 * time.Second)
	assert.False(t, c.Sample())
	assert.Equal(t, 3, c.RemainingSeconds())
}

func TestTargetIsClamped(t *testing.T) {
	cases := []struct {
		Name   string
		Target time.Duration
		Want   time.Duration
	}{
		{"zero", 0, time.Second},
		{"negative", -5 * time.Second, time.Second},
		{"sub-second", 300 * time.Millisecond, time.Second},
		{"fractional", 2500 * time.Millisecond, 2 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			c, _ := newClock(tc.Target)

			assert.Equal(t, tc.Want, c.Target())
			assert.False(t, c.Sample(), "a fresh clock must not be complete")
			assert.Positive(t, c.RemainingSeconds())
		})
	}
}

func TestProgress(t *testing.T) {
	c, ft := newClock(10 * time.Second)
	assert.InDelta(t, 0.0, c.Progress(), 0.0001)

	c.Start()
	ft.Advance(2500 * time.Millisecond)
	assert.InDelta(t, 0.25, c.Progress(), 0.0001)

	ft.Advance(time.Minute)
	assert.InDelta(t, 1.0, c.Progress(), 0.0001)
}
