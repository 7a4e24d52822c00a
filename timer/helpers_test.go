package timer

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/cadence/internal/config"
	"github.com/ayoisaiah/cadence/internal/phase"
	"github.com/ayoisaiah/cadence/internal/session"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.t
}

func (f *fakeTime) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

type notification struct {
	title   string
	message string
}

type testEnv struct {
	cfg        *config.Config
	ctrl       *session.Controller
	hooks      *Hooks
	time       *fakeTime
	statusPath string
	mu         sync.Mutex
	notes      []notification
	cmds       [][]string
	envs       [][]string
}

func testConfig() *config.Config {
	return &config.Config{
		Phases: []config.PhaseConfig{
			{Label: "Plan", Kind: phase.Preparation, Duration: time.Minute, Theme: "sunrise"},
			{Label: "Work", Kind: phase.Working, Duration: 13 * time.Minute, Theme: "ocean"},
			{Label: "Review", Kind: phase.Review, Duration: time.Minute, Theme: "sunrise"},
			{Label: "Rest", Kind: phase.Relaxing, Duration: 5 * time.Minute, Theme: "meadow"},
		},
		Settings: config.SettingsConfig{
			SampleInterval: 50 * time.Millisecond,
			Cmd:            `echo "phase done"`,
		},
		Notifications: config.NotificationConfig{Enabled: true},
		Display:       config.DisplayConfig{DarkTheme: true, TwentyFourHour: true},
	}
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	env := &testEnv{
		cfg:        cfg,
		time:       &fakeTime{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		statusPath: filepath.Join(t.TempDir(), "status.json"),
	}

	env.hooks = NewHooks(
		cfg,
		WithStatusFile(env.statusPath),
		WithHooksLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	env.hooks.notify = func(title, message, _ string) error {
		env.mu.Lock()
		defer env.mu.Unlock()

		env.notes = append(env.notes, notification{title, message})

		return nil
	}
	env.hooks.run = func(name string, args, vars []string) error {
		env.mu.Lock()
		defer env.mu.Unlock()

		env.cmds = append(env.cmds, append([]string{name}, args...))
		env.envs = append(env.envs, vars)

		return nil
	}

	list, err := cfg.PhaseList()
	require.NoError(t, err)

	env.ctrl, err = session.New(
		list,
		session.WithNow(env.time.Now),
		session.WithListener(env.hooks.Listener),
	)
	require.NoError(t, err)

	return env
}
