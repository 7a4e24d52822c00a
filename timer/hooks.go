package timer

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/cadence/internal/config"
	"github.com/ayoisaiah/cadence/internal/session"
	"github.com/ayoisaiah/cadence/internal/status"
	"github.com/ayoisaiah/cadence/internal/timeutil"
)

type (
	// Hooks reacts to controller events on behalf of both runners. It sends
	// desktop notifications, runs the post-phase command, keeps the status
	// file current and remembers every completed phase of the run.
	Hooks struct {
		logger      *slog.Logger
		notify      func(title, message, icon string) error
		run         func(name string, args []string, env []string) error
		lastStatus  *status.Status
		sessionID   string
		statusPath  string
		sessionCmd  string
		subscribers []session.Listener
		history     []session.Entry
		wg          sync.WaitGroup
		notifyOn    bool
	}

	// HooksOption configures Hooks.
	HooksOption func(*Hooks)
)

// WithStatusFile sets where the status file is written. No status file is
// written without it.
func WithStatusFile(path string) HooksOption {
	return func(h *Hooks) {
		h.statusPath = path
	}
}

// WithHooksLogger sets the logger used for hook failures.
func WithHooksLogger(l *slog.Logger) HooksOption {
	return func(h *Hooks) {
		h.logger = l
	}
}

// NewHooks returns hooks configured from cfg.
func NewHooks(cfg *config.Config, opts ...HooksOption) *Hooks {
	h := &Hooks{
		sessionID:  uuid.NewString(),
		sessionCmd: cfg.Settings.Cmd,
		notifyOn:   cfg.Notifications.Enabled,
		logger:     slog.Default(),
		notify:     beeep.Notify,
		run:        runCmd,
	}

	for _, opt := range opts {
		opt(h)
	}

	h.logger = h.logger.With(slog.String("session_id", h.sessionID))

	return h
}

// SessionID identifies this run of the timer.
func (h *Hooks) SessionID() string {
	return h.sessionID
}

// Logger returns the logger tagged with the session id.
func (h *Hooks) Logger() *slog.Logger {
	return h.logger
}

// Subscribe registers fn to receive every event after the built-in hooks
// have handled it.
func (h *Hooks) Subscribe(fn session.Listener) {
	h.subscribers = append(h.subscribers, fn)
}

// History returns every phase completed during this run, across cycles and
// resets.
func (h *Hooks) History() []session.Entry {
	entries := make([]session.Entry, len(h.history))
	copy(entries, h.history)

	return entries
}

// Listener is registered with the controller.
func (h *Hooks) Listener(ev session.Event) {
	h.logger.Info("session event",
		slog.String("type", string(ev.Type)),
		slog.String("phase", ev.Phase.Label),
		slog.Int("index", ev.Index),
	)

	switch ev.Type {
	case session.EventPhaseCompleted, session.EventCycleCompleted:
		h.history = append(h.history, ev.Entry)
		h.phaseCompleted(ev)
	case session.EventStarted,
		session.EventPaused,
		session.EventReset:
	}

	for _, fn := range h.subscribers {
		fn(ev)
	}
}

func (h *Hooks) phaseCompleted(ev session.Event) {
	if h.notifyOn {
		title := ev.Phase.Label + " is finished"

		msg := "Starting the next phase"
		if ev.Type == session.EventCycleCompleted {
			msg = "Cycle complete. Working time: " +
				timeutil.Humanize(session.WorkingTime(ev.Cycle))
		}

		if err := h.notify(title, msg, ""); err != nil {
			h.logger.Warn(errNotify.Error(), slog.Any("error", err))
		}
	}

	h.runSessionCmd(ev)
}

// runSessionCmd starts the post-phase command without waiting for it.
func (h *Hooks) runSessionCmd(ev session.Event) {
	if h.sessionCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(h.sessionCmd)
	if err != nil {
		h.logger.Warn(
			errParseCmd.Fmt(h.sessionCmd).Error(),
			slog.Any("error", err),
		)

		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	env := []string{
		"CADENCE_PHASE=" + ev.Phase.Label,
		"CADENCE_KIND=" + string(ev.Phase.Kind),
		"CADENCE_COMMENT=" + ev.Entry.Comment,
		"CADENCE_SESSION=" + h.sessionID,
	}

	h.wg.Add(1)

	go func() {
		defer h.wg.Done()

		if err := h.run(cmdSlice[0], cmdSlice[1:], env); err != nil {
			h.logger.Warn(
				errRunCmd.Fmt(h.sessionCmd).Error(),
				slog.Any("error", err),
			)
		}
	}()
}

func runCmd(name string, args, env []string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), env...)

	return cmd.Run()
}

// UpdateStatus writes the status file when the visible state has changed
// since the last write.
func (h *Hooks) UpdateStatus(st session.State, now time.Time) {
	if h.statusPath == "" {
		return
	}

	s := &status.Status{
		SessionID:  h.sessionID,
		Label:      st.Phase.Label,
		Kind:       st.Phase.Kind,
		Index:      st.Index,
		PhaseCount: len(st.Phases),
		Running:    st.Running,
		Remaining:  st.Remaining.Round(time.Second),
		EndTime:    now.Add(st.Remaining).Round(time.Second),
		UpdatedAt:  now,
	}

	if last := h.lastStatus; last != nil &&
		last.Index == s.Index &&
		last.Running == s.Running &&
		last.Remaining == s.Remaining &&
		last.PhaseCount == s.PhaseCount {
		return
	}

	if err := status.Write(h.statusPath, s); err != nil {
		h.logger.Warn("status update failed", slog.Any("error", err))
		return
	}

	h.lastStatus = s
}

// Close waits for running commands and removes the status file.
func (h *Hooks) Close() {
	h.wg.Wait()

	if h.statusPath == "" {
		return
	}

	if err := status.Remove(h.statusPath); err != nil {
		h.logger.Warn("removing status file failed", slog.Any("error", err))
	}
}

// timeFormat returns the layout used to print wall-clock times.
func timeFormat(twentyFourHour bool) string {
	if twentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

// phaseTag formats a phase position such as "[Work 2/4]".
func phaseTag(label string, index, count int) string {
	return fmt.Sprintf("[%s %d/%d]", label, index+1, count)
}
