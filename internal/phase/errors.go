package phase

import "github.com/ayoisaiah/cadence/internal/apperr"

var (
	// ErrInvalidDuration is returned for durations below MinDuration.
	ErrInvalidDuration = &apperr.Error{
		Message: "invalid phase duration %v: must be at least %v",
	}

	// ErrIndexOutOfRange is returned when a phase index does not exist.
	ErrIndexOutOfRange = &apperr.Error{
		Message: "phase index %d is out of range (%d phases)",
	}

	errEmptyList = &apperr.Error{
		Message: "at least one phase is required",
	}

	errEmptyLabel = &apperr.Error{
		Message: "phase %d has no label",
	}

	errInvalidPhase = &apperr.Error{
		Message: "phase %q",
	}
)
