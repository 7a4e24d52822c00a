package timer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/cadence/internal/config"
	"github.com/ayoisaiah/cadence/internal/phase"
	"github.com/ayoisaiah/cadence/internal/session"
	"github.com/ayoisaiah/cadence/internal/timeutil"
	"github.com/ayoisaiah/cadence/internal/ui"
	"github.com/ayoisaiah/cadence/report"
)

const plainHelp = `Commands:
  ENTER          start or pause
  :start, :s     start
  :pause, :p     pause
  :reset, :r     back to the first phase
  :set P D       set the duration of phase P (label or number) to D
  :log, :l       print the session log
  :quit, :q      exit
  anything else  comment on the current phase`

// Plain runs a session without taking over the terminal. It reads commands
// line by line and prints a countdown.
type Plain struct {
	out        io.Writer
	now        func() time.Time
	newTicker  func(time.Duration) (<-chan time.Time, func())
	ctrl       *session.Controller
	hooks      *Hooks
	tickC      <-chan time.Time
	stopTicker func()
	interval   time.Duration
	lastSecs   int
	twentyFour bool
}

// PlainOption configures a Plain runner.
type PlainOption func(*Plain)

// WithPlainClock sets the time source used for display and status updates.
func WithPlainClock(now func() time.Time) PlainOption {
	return func(p *Plain) {
		p.now = now
	}
}

// WithTicker replaces the sampling ticker.
func WithTicker(fn func(time.Duration) (<-chan time.Time, func())) PlainOption {
	return func(p *Plain) {
		p.newTicker = fn
	}
}

// NewPlain returns a plain runner writing to out.
func NewPlain(
	cfg *config.Config,
	ctrl *session.Controller,
	hooks *Hooks,
	out io.Writer,
	opts ...PlainOption,
) *Plain {
	p := &Plain{
		out:        out,
		now:        time.Now,
		newTicker:  newTicker,
		ctrl:       ctrl,
		hooks:      hooks,
		interval:   cfg.Settings.SampleInterval,
		twentyFour: cfg.Display.TwentyFourHour,
		lastSecs:   -1,
	}

	for _, opt := range opts {
		opt(p)
	}

	hooks.Subscribe(p.onEvent)

	return p
}

func newTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)

	return t.C, t.Stop
}

// Run processes commands from in until ctx is done or the user quits.
func (p *Plain) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)

	go func() {
		defer close(lines)

		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprintln(p.out, p.banner())
	fmt.Fprintln(p.out, ui.Highlight("Press ENTER to start, :help for commands"))
	p.hooks.UpdateStatus(p.ctrl.Snapshot(), p.now())

	defer p.close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				// keep counting down after stdin closes
				lines = nil
				continue
			}

			if p.handle(line) {
				return nil
			}
		case <-p.tickC:
			p.sample()
		}
	}
}

func (p *Plain) close() {
	p.disarm()
	p.ctrl.Close()
}

// arm starts the ticker if it is not running.
func (p *Plain) arm() {
	if p.tickC != nil {
		return
	}

	p.tickC, p.stopTicker = p.newTicker(p.interval)
}

// disarm stops the ticker. Ticks already delivered are dropped with it.
func (p *Plain) disarm() {
	if p.tickC == nil {
		return
	}

	p.stopTicker()
	p.tickC = nil
	p.stopTicker = nil
}

// syncTicker keeps the ticker armed exactly while the controller runs.
func (p *Plain) syncTicker() {
	if p.ctrl.Running() {
		p.arm()
		return
	}

	p.disarm()
}

// handle executes one line of input. It reports whether to quit.
func (p *Plain) handle(line string) bool {
	line = strings.TrimSpace(line)

	defer func() {
		p.syncTicker()
		p.hooks.UpdateStatus(p.ctrl.Snapshot(), p.now())
	}()

	if line == "" {
		if p.ctrl.Running() {
			p.ctrl.Stop()
		} else {
			p.ctrl.Start()
		}

		return false
	}

	if !strings.HasPrefix(line, ":") {
		p.ctrl.SetPendingComment(line)
		fmt.Fprintln(p.out, ui.Cyan("✎ noted for "+p.ctrl.Current().Label))

		return false
	}

	fields := strings.Fields(line)

	switch fields[0] {
	case ":start", ":s":
		p.ctrl.Start()
	case ":pause", ":p":
		p.ctrl.Stop()
	case ":reset", ":r":
		p.ctrl.Reset()
	case ":log", ":l":
		if err := report.Log(p.out, report.FormatText, p.ctrl.Logs()); err != nil {
			report.Error(err)
		}
	case ":set":
		if err := p.set(fields[1:]); err != nil {
			report.Error(err)
		}
	case ":help", ":h":
		fmt.Fprintln(p.out, plainHelp)
	case ":quit", ":q":
		return true
	default:
		report.Error(errUnknownCommand.Fmt(fields[0]))
	}

	return false
}

// set changes a phase duration from ":set PHASE DURATION".
func (p *Plain) set(args []string) error {
	if len(args) != 2 {
		return errSetUsage
	}

	i := p.ctrl.Phases().Index(args[0])
	if n, err := strconv.Atoi(args[0]); err == nil {
		i = n - 1
	}

	d, err := timeutil.ParseDuration(args[1])
	if err != nil {
		return errSetUsage.Wrap(err)
	}

	if err := p.ctrl.SetPhaseDuration(i, d); err != nil {
		return err
	}

	ph := p.ctrl.Phases().At(i)
	fmt.Fprintf(p.out, "%s is now %s\n", ph.Label, timeutil.Humanize(ph.Duration))

	return nil
}

// sample checks the clock and redraws the countdown when the displayed
// second changes.
func (p *Plain) sample() {
	p.ctrl.Sample()
	p.syncTicker()

	secs := p.ctrl.RemainingSeconds()
	if secs != p.lastSecs && p.ctrl.Running() {
		p.lastSecs = secs
		p.countdown(secs)
	}

	p.hooks.UpdateStatus(p.ctrl.Snapshot(), p.now())
}

// countdown prints the time remaining in the active phase.
func (p *Plain) countdown(secs int) {
	m, s := timeutil.SecsToMinsAndSecs(secs)

	fmt.Fprintf(
		p.out,
		"\r🕒%s:%s",
		pterm.Yellow(fmt.Sprintf("%02d", m)),
		pterm.Yellow(fmt.Sprintf("%02d", s)),
	)
}

// banner describes the active phase.
func (p *Plain) banner() string {
	cur := p.ctrl.Current()
	tag := phaseTag(cur.Label, p.ctrl.Index(), p.ctrl.Phases().Len())

	return fmt.Sprintf(
		"%s %s (%s)",
		kindColor(cur.Kind)(tag),
		cur.Kind.Placeholder(),
		timeutil.Humanize(cur.Duration),
	)
}

func (p *Plain) onEvent(ev session.Event) {
	p.lastSecs = -1

	switch ev.Type {
	case session.EventStarted:
		end := ev.At.Add(p.ctrl.Remaining()).Format(timeFormat(p.twentyFour))
		fmt.Fprintf(p.out, "\n%s until %s\n", p.banner(), ui.Highlight(end))
	case session.EventPaused:
		fmt.Fprintf(p.out, "\n%s\n", ui.Magenta("[Paused]"))
	case session.EventPhaseCompleted:
		fmt.Fprintf(p.out, "\n%s is finished\n", ev.Phase.Label)
	case session.EventCycleCompleted:
		fmt.Fprintf(
			p.out,
			"\n%s Working time: %s\n",
			ui.Green("Cycle complete!"),
			timeutil.Humanize(session.WorkingTime(ev.Cycle)),
		)
	case session.EventReset:
		fmt.Fprintf(p.out, "\n%s\n", ui.Blue("Back to "+p.ctrl.Current().Label))
	}
}

func kindColor(k phase.Kind) func(any) string {
	switch k {
	case phase.Working:
		return ui.Green
	case phase.Relaxing:
		return ui.Blue
	case phase.Review:
		return ui.Magenta
	case phase.Preparation:
		return ui.Cyan
	}

	return ui.Highlight
}
