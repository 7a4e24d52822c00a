package timer

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

// handleTick samples the controller and re-arms while it keeps running.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.epoch != t.ctrl.Epoch() {
		return t, nil
	}

	if t.ctrl.SampleEpoch(msg.epoch) {
		t.flash = ""
	}

	t.afterChange()

	if !t.ctrl.Running() {
		return t, nil
	}

	return t, t.tick()
}

// toggle starts or pauses the active phase.
func (t *Timer) toggle() tea.Cmd {
	if t.ctrl.Running() {
		t.ctrl.Stop()
		t.afterChange()

		return nil
	}

	t.ctrl.Start()
	t.afterChange()

	return t.tick()
}

// adjust lengthens or shortens the selected phase.
func (t *Timer) adjust(delta time.Duration) {
	p := t.ctrl.Phases().At(t.selected)

	err := t.ctrl.SetPhaseDuration(t.selected, p.Duration+delta)
	if err != nil {
		t.flash = err.Error()
		return
	}

	t.flash = ""
	t.afterChange()
}

func (t *Timer) handleCommentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.submit):
		t.ctrl.SetPendingComment(strings.TrimSpace(t.comment.Value()))
		t.editing = false
		t.comment.Blur()

		return t, nil
	case key.Matches(msg, t.keys.cancel):
		t.editing = false
		t.comment.Blur()

		return t, nil
	case msg.Type == tea.KeyCtrlC:
		return t.quit()
	}

	var cmd tea.Cmd
	t.comment, cmd = t.comment.Update(msg)

	return t, cmd
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t.editing {
		return t.handleCommentKey(msg)
	}

	if t.showLog {
		switch {
		case key.Matches(msg, t.keys.quit):
			return t.quit()
		case key.Matches(msg, t.keys.log, t.keys.cancel):
			t.showLog = false
		}

		return t, nil
	}

	switch {
	case key.Matches(msg, t.keys.togglePlay):
		return t, t.toggle()

	case key.Matches(msg, t.keys.comment):
		t.editing = true
		t.comment.SetValue(t.ctrl.PendingComment())
		t.comment.CursorEnd()

		return t, t.comment.Focus()

	case key.Matches(msg, t.keys.log):
		t.showLog = true

	case key.Matches(msg, t.keys.reset):
		t.ctrl.Reset()
		t.selected = 0
		t.flash = ""
		t.comment.SetValue("")
		t.afterChange()

	case key.Matches(msg, t.keys.up):
		if t.selected > 0 {
			t.selected--
		}

	case key.Matches(msg, t.keys.down):
		if t.selected < t.ctrl.Phases().Last() {
			t.selected++
		}

	case key.Matches(msg, t.keys.longer):
		t.adjust(adjustStep)

	case key.Matches(msg, t.keys.shorter):
		t.adjust(-adjustStep)

	case key.Matches(msg, t.keys.help):
		t.help.ShowAll = !t.help.ShowAll

	case key.Matches(msg, t.keys.quit):
		return t.quit()
	}

	return t, nil
}

func (t *Timer) quit() (tea.Model, tea.Cmd) {
	t.quitting = true
	t.ctrl.Close()

	return t, tea.Quit
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok && t.debug {
		t.logger.Debug("tui message", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.help.Width = msg.Width
		t.applyTheme()

		return t, nil
	}

	return t, nil
}
