// Package phase defines the timed segments that make up a cadence cycle
package phase

import (
	"time"
)

// MinDuration is the shortest duration a phase may have. Anything shorter
// would complete on the first sample and cascade through the cycle.
const MinDuration = time.Second

// Kind categorises a phase. It selects the comment placeholder and decides
// whether a phase counts toward working time.
type Kind string

const (
	Preparation Kind = "preparation"
	Working     Kind = "working"
	Review      Kind = "review"
	Relaxing    Kind = "relaxing"
)

// Kinds lists every known phase kind.
var Kinds = []Kind{Preparation, Working, Review, Relaxing}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}

	return false
}

// Placeholder returns the prompt shown in the comment field while a phase of
// this kind is active.
func (k Kind) Placeholder() string {
	switch k {
	case Preparation:
		return "What will you work on?"
	case Review:
		return "How did it go?"
	default:
		return "Add a comment"
	}
}

// Phase is an immutable description of one timed segment.
type Phase struct {
	Label    string        `json:"label"     yaml:"label"`
	Kind     Kind          `json:"kind"      yaml:"kind"`
	CueSound string        `json:"cue_sound" yaml:"cue_sound"`
	Theme    string        `json:"theme"     yaml:"theme"`
	Duration time.Duration `json:"duration"  yaml:"duration"`
}

// Seconds returns the duration of the phase in whole seconds.
func (p Phase) Seconds() int {
	return int(p.Duration / time.Second)
}

// Defaults returns the built-in plan, work, review and rest cycle.
func Defaults() List {
	return List{
		phases: []Phase{
			{
				Label:    "Plan",
				Kind:     Preparation,
				Duration: 1 * time.Minute,
				CueSound: "bell",
				Theme:    "sunrise",
			},
			{
				Label:    "Work",
				Kind:     Working,
				Duration: 13 * time.Minute,
				CueSound: "completed",
				Theme:    "ocean",
			},
			{
				Label:    "Review",
				Kind:     Review,
				Duration: 1 * time.Minute,
				CueSound: "bell",
				Theme:    "sunrise",
			},
			{
				Label:    "Rest",
				Kind:     Relaxing,
				Duration: 5 * time.Minute,
				CueSound: "bell",
				Theme:    "meadow",
			},
		},
	}
}
