package timer

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	c       chan time.Time
	armed   int
	stopped int
}

func (f *fakeTicker) new(time.Duration) (<-chan time.Time, func()) {
	f.armed++

	return f.c, func() {
		f.stopped++
	}
}

func newTestPlain(t *testing.T) (*Plain, *testEnv, *fakeTicker, *bytes.Buffer) {
	t.Helper()

	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	env := newTestEnv(t, testConfig())
	ticker := &fakeTicker{c: make(chan time.Time)}
	out := &bytes.Buffer{}

	p := NewPlain(
		env.cfg,
		env.ctrl,
		env.hooks,
		out,
		WithPlainClock(env.time.Now),
		WithTicker(ticker.new),
	)

	return p, env, ticker, out
}

func TestPlainToggleArmsTicker(t *testing.T) {
	p, env, ticker, out := newTestPlain(t)

	assert.False(t, p.handle(""))
	assert.True(t, env.ctrl.Running())
	assert.Equal(t, 1, ticker.armed)
	assert.Contains(t, out.String(), "[Plan 1/4]")
	assert.Contains(t, out.String(), "until 09:01:00")

	// starting twice keeps a single ticker
	p.handle(":start")
	assert.Equal(t, 1, ticker.armed)

	p.handle("")
	assert.False(t, env.ctrl.Running())
	assert.Equal(t, 1, ticker.stopped)
	assert.Nil(t, p.tickC)
	assert.Contains(t, out.String(), "[Paused]")
}

func TestPlainCycle(t *testing.T) {
	p, env, ticker, out := newTestPlain(t)

	p.handle(":s")
	p.handle("outline the chapter")
	assert.Equal(t, "outline the chapter", env.ctrl.PendingComment())

	env.time.Advance(30 * time.Second)
	p.sample()
	assert.Contains(t, out.String(), "00:30")

	env.time.Advance(30 * time.Second)
	p.sample()

	assert.Equal(t, 1, env.ctrl.Index())
	assert.True(t, env.ctrl.Running())
	assert.Equal(t, 1, ticker.armed)
	assert.Contains(t, out.String(), "Plan is finished")

	logs := env.ctrl.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, "outline the chapter", logs[0].Comment)

	p.handle(":log")
	assert.Contains(t, out.String(), "outline the chapter")
}

func TestPlainSet(t *testing.T) {
	p, env, _, out := newTestPlain(t)

	p.handle(":set work 25m")
	assert.Equal(t, 25*time.Minute, env.ctrl.Phases().At(1).Duration)
	assert.Contains(t, out.String(), "Work is now 25 minutes")

	p.handle(":set 4 10")
	assert.Equal(t, 10*time.Minute, env.ctrl.Phases().At(3).Duration)

	assert.ErrorIs(t, p.set([]string{"work"}), errSetUsage)
	assert.ErrorIs(t, p.set([]string{"work", "later"}), errSetUsage)
	assert.Error(t, p.set([]string{"lunch", "5m"}))
	assert.Error(t, p.set([]string{"2", "0s"}))
	assert.Equal(t, 25*time.Minute, env.ctrl.Phases().At(1).Duration)
}

func TestPlainReset(t *testing.T) {
	p, env, ticker, out := newTestPlain(t)

	p.handle("")
	env.time.Advance(time.Minute)
	p.sample()
	require.Equal(t, 1, env.ctrl.Index())

	p.handle(":reset")

	assert.Equal(t, 0, env.ctrl.Index())
	assert.False(t, env.ctrl.Running())
	assert.Equal(t, 1, ticker.stopped)
	assert.Contains(t, out.String(), "Back to Plan")
}

func TestPlainCommands(t *testing.T) {
	p, _, _, out := newTestPlain(t)

	assert.False(t, p.handle(":help"))
	assert.Contains(t, out.String(), ":set P D")

	assert.False(t, p.handle(":bogus"))
	assert.True(t, p.handle(":q"))
}

func TestPlainRun(t *testing.T) {
	p, env, _, out := newTestPlain(t)

	err := p.Run(context.Background(), strings.NewReader("\n:quit\n"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Press ENTER to start")

	env.time.Advance(time.Hour)
	assert.False(t, env.ctrl.Sample())
	assert.Nil(t, p.tickC)
}

func TestPlainRunCancelled(t *testing.T) {
	p, env, _, _ := newTestPlain(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx, strings.NewReader("")))

	env.time.Advance(time.Hour)
	assert.False(t, env.ctrl.Sample())
}
