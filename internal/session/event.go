package session

import (
	"time"

	"github.com/ayoisaiah/cadence/internal/phase"
)

// EventType identifies a controller event.
type EventType string

const (
	EventStarted        EventType = "started"
	EventPaused         EventType = "paused"
	EventPhaseCompleted EventType = "phase_completed"
	EventCycleCompleted EventType = "cycle_completed"
	EventReset          EventType = "reset"
)

// Event describes a controller transition for listeners.
type Event struct {
	At   time.Time
	Type EventType
	// Phase is the phase the event concerns: the active phase for start and
	// pause, the finished phase for completions.
	Phase phase.Phase
	// Entry is the log record appended for a completed phase.
	Entry Entry
	// Cycle holds every record of a finished cycle, including the final
	// phase. Only set for EventCycleCompleted.
	Cycle []Entry
	Index int
}

// Listener receives controller events. Listeners run synchronously on the
// goroutine that drives the controller and must not call back into it.
type Listener func(Event)
