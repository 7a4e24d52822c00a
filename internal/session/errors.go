package session

import "github.com/ayoisaiah/cadence/internal/apperr"

var (
	errNoPhases = &apperr.Error{
		Message: "a session needs at least one phase",
	}

	// ErrPhaseLocked is returned when editing a phase that has already run
	// in this cycle or is currently counting down.
	ErrPhaseLocked = &apperr.Error{
		Message: "cannot change the duration of %q: the phase is active or already done",
	}
)
