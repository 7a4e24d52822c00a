package session

import (
	"time"

	"github.com/ayoisaiah/cadence/internal/phase"
)

// Entry records a completed phase. Entries are never edited once appended.
type Entry struct {
	Label    string        `json:"label"    yaml:"label"`
	Kind     phase.Kind    `json:"kind"     yaml:"kind"`
	Comment  string        `json:"comment"  yaml:"comment"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

func newEntry(p phase.Phase, comment string) Entry {
	return Entry{
		Label:    p.Label,
		Kind:     p.Kind,
		Duration: p.Duration,
		Comment:  comment,
	}
}

// WorkingTime sums the durations of the working entries.
func WorkingTime(entries []Entry) time.Duration {
	var total time.Duration

	for _, e := range entries {
		if e.Kind == phase.Working {
			total += e.Duration
		}
	}

	return total
}
