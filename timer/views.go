package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/cadence/internal/timeutil"
	"github.com/ayoisaiah/cadence/report"
)

func (t *Timer) headerView() string {
	var s strings.Builder

	cur := t.ctrl.Current()
	count := t.ctrl.Phases().Len()

	s.WriteString(accent(t.theme).Render(phaseTag(cur.Label, t.ctrl.Index(), count)))
	s.WriteString(" ")

	switch {
	case t.ctrl.Running():
		end := t.now().Add(t.ctrl.Remaining()).Format(timeFormat(t.twentyFour))
		s.WriteString(t.styles.hint.Render("until " + end))
	case t.ctrl.Started():
		s.WriteString(t.styles.secondary.Render("[Paused]"))
	default:
		s.WriteString(t.styles.hint.Render("press space to start"))
	}

	return s.String()
}

func (t *Timer) commentView() string {
	if t.editing {
		return t.comment.View()
	}

	pending := t.ctrl.PendingComment()
	if pending == "" {
		return t.styles.hint.Render("✎ " + t.ctrl.Current().Kind.Placeholder())
	}

	return t.styles.secondary.Render("✎ " + pending)
}

func (t *Timer) phasesView() string {
	var s strings.Builder

	for i, p := range t.ctrl.Phases().All() {
		cursor := "  "
		if i == t.selected {
			cursor = "> "
		}

		marker := " "

		switch {
		case i < t.ctrl.Index():
			marker = "✓"
		case i == t.ctrl.Index():
			marker = "•"
		}

		line := fmt.Sprintf(
			"%s%s %d. %-12s %s",
			cursor,
			marker,
			i+1,
			p.Label,
			timeutil.Compact(p.Duration),
		)

		if i == t.selected {
			s.WriteString(t.styles.selected.Render(line))
		} else {
			s.WriteString(t.styles.hint.Render(line))
		}

		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n")
	s.WriteString(t.styles.main.Render(timeutil.Countdown(t.ctrl.RemainingSeconds())))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.ctrl.Snapshot().Progress))
	s.WriteString("\n\n")
	s.WriteString(t.commentView())
	s.WriteString("\n\n")
	s.WriteString(t.phasesView())

	if wt := t.ctrl.WorkingTime(); wt > 0 {
		s.WriteString("\n\n")
		s.WriteString(t.styles.hint.Render("Working time: " + timeutil.Humanize(wt)))
	}

	if t.flash != "" {
		s.WriteString("\n\n")
		s.WriteString(t.styles.flash.Render(t.flash))
	}

	s.WriteString("\n\n")
	s.WriteString(t.help.View(t.keys))

	return s.String()
}

func (t *Timer) logView() string {
	var s strings.Builder

	s.WriteString(t.styles.main.Render("Session log"))
	s.WriteString("\n\n")

	if err := report.Log(&s, report.FormatText, t.ctrl.Logs()); err != nil {
		s.WriteString(t.styles.flash.Render(err.Error()))
	}

	s.WriteString("\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{t.keys.log, t.keys.quit}))

	return s.String()
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	if t.showLog {
		return t.styles.base.Render(t.logView())
	}

	return t.styles.base.Render(t.timerView())
}
