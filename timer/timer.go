// Package timer runs a cadence session in the terminal, either as a
// full-screen interface or as a plain line-oriented prompt.
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/cadence/internal/config"
	"github.com/ayoisaiah/cadence/internal/session"
	"github.com/ayoisaiah/cadence/internal/ui"
)

// adjustStep is how much a key press lengthens or shortens a phase.
const adjustStep = time.Minute

// tickMsg asks the model to sample the controller. It carries the epoch the
// tick was armed in so that ticks outliving a transition are dropped.
type tickMsg struct {
	at    time.Time
	epoch uint64
}

// Timer is the bubbletea model for the full-screen interface.
type Timer struct {
	now        func() time.Time
	ctrl       *session.Controller
	hooks      *Hooks
	logger     *slog.Logger
	styles     styles
	flash      string
	comment    textinput.Model
	help       help.Model
	progress   progress.Model
	keys       keymap
	theme      ui.Theme
	interval   time.Duration
	selected   int
	width      int
	twentyFour bool
	editing    bool
	showLog    bool
	debug      bool
	quitting   bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock sets the time source used for display and status updates.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// New returns the model for ctrl. The controller must have been created
// with hooks.Listener registered.
func New(cfg *config.Config, ctrl *session.Controller, hooks *Hooks, opts ...Option) *Timer {
	ti := textinput.New()
	ti.Prompt = "✎ "
	ti.CharLimit = 280
	ti.Width = maxWidth - 10

	t := &Timer{
		now:        time.Now,
		ctrl:       ctrl,
		hooks:      hooks,
		logger:     hooks.Logger(),
		styles:     newStyles(cfg.Display.DarkTheme),
		comment:    ti,
		help:       help.New(),
		keys:       defaultKeymap,
		interval:   cfg.Settings.SampleInterval,
		twentyFour: cfg.Display.TwentyFourHour,
		debug:      cfg.CLI.Debug,
		width:      maxWidth,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.applyTheme()

	return t
}

// Run starts the interface and blocks until the user quits.
func (t *Timer) Run() error {
	_, err := tea.NewProgram(t).Run()

	return err
}

// tick arms the next sample for the current epoch.
func (t *Timer) tick() tea.Cmd {
	epoch := t.ctrl.Epoch()

	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return tickMsg{at: at, epoch: epoch}
	})
}

// applyTheme colours the interface for the active phase, or greys it out
// while the timer is stopped.
func (t *Timer) applyTheme() {
	theme := ui.Idle

	if t.ctrl.Running() {
		if th, ok := ui.LookupTheme(t.ctrl.Current().Theme); ok {
			theme = th
		}
	}

	if theme == t.theme && t.progress.Width == t.barWidth() {
		return
	}

	t.theme = theme
	t.progress = progress.New(
		progress.WithGradient(theme.From, theme.To),
		progress.WithWidth(t.barWidth()),
		progress.WithoutPercentage(),
	)
}

func (t *Timer) barWidth() int {
	return min(t.width-padding*2-4, maxWidth)
}

// syncComment points the comment field at the active phase.
func (t *Timer) syncComment() {
	t.comment.Placeholder = t.ctrl.Current().Kind.Placeholder()
}

// afterChange refreshes everything that depends on controller state.
func (t *Timer) afterChange() {
	t.applyTheme()
	t.syncComment()
	t.hooks.UpdateStatus(t.ctrl.Snapshot(), t.now())
}

func (t *Timer) Init() tea.Cmd {
	t.syncComment()
	t.hooks.UpdateStatus(t.ctrl.Snapshot(), t.now())

	return tea.SetWindowTitle("cadence")
}
