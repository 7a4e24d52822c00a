package phase

import (
	"strings"
	"time"
)

// List is an ordered, non-empty and immutable sequence of phases. Insertion
// order is execution order. The zero value is an empty list and is only
// useful as a placeholder.
type List struct {
	phases []Phase
}

// NewList validates phases and returns them as a List.
func NewList(phases ...Phase) (List, error) {
	if len(phases) == 0 {
		return List{}, errEmptyList
	}

	cp := make([]Phase, len(phases))

	for i, p := range phases {
		if strings.TrimSpace(p.Label) == "" {
			return List{}, errEmptyLabel.Fmt(i + 1)
		}

		d, err := normalise(p.Duration)
		if err != nil {
			return List{}, errInvalidPhase.Fmt(p.Label).Wrap(err)
		}

		p.Duration = d
		cp[i] = p
	}

	return List{phases: cp}, nil
}

// normalise truncates d to whole seconds and rejects anything below
// MinDuration.
func normalise(d time.Duration) (time.Duration, error) {
	d = d.Truncate(time.Second)
	if d < MinDuration {
		return 0, ErrInvalidDuration.Fmt(d, MinDuration)
	}

	return d, nil
}

// Len returns the number of phases in the list.
func (l List) Len() int {
	return len(l.phases)
}

// Last returns the index of the final phase.
func (l List) Last() int {
	return len(l.phases) - 1
}

// At returns the phase at index i. It panics if i is out of range.
func (l List) At(i int) Phase {
	return l.phases[i]
}

// InRange reports whether i indexes a phase in the list.
func (l List) InRange(i int) bool {
	return i >= 0 && i < len(l.phases)
}

// All returns a copy of the phases in order.
func (l List) All() []Phase {
	cp := make([]Phase, len(l.phases))
	copy(cp, l.phases)

	return cp
}

// Index returns the position of the first phase whose label matches label
// case-insensitively, or -1.
func (l List) Index(label string) int {
	for i, p := range l.phases {
		if strings.EqualFold(p.Label, label) {
			return i
		}
	}

	return -1
}

// Total returns the combined duration of every phase.
func (l List) Total() time.Duration {
	var total time.Duration
	for _, p := range l.phases {
		total += p.Duration
	}

	return total
}

// WithDuration returns a new List in which phase i lasts d. The receiver is
// left untouched.
func (l List) WithDuration(i int, d time.Duration) (List, error) {
	if !l.InRange(i) {
		return l, ErrIndexOutOfRange.Fmt(i, l.Len())
	}

	d, err := normalise(d)
	if err != nil {
		return l, err
	}

	cp := l.All()
	cp[i].Duration = d

	return List{phases: cp}, nil
}
