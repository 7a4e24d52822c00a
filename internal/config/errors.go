package config

import "github.com/ayoisaiah/cadence/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errNoPhases = &apperr.Error{
		Message: "at least one phase must be configured",
	}

	errEmptyLabel = &apperr.Error{
		Message: "phase %d must have a label",
	}

	errInvalidKind = &apperr.Error{
		Message: "%s kind must be one of %v, got %q",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidTheme = &apperr.Error{
		Message: "%s theme must be one of %v or a hex color code (e.g. #FF0000), got %q",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidSampleInterval = &apperr.Error{
		Message: "sample interval must be between %v and %v",
	}

	errInvalidDurationFormat = &apperr.Error{
		Message: "invalid duration format: %s",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration for %s: %v",
	}

	errMalformedCLIDuration = &apperr.Error{
		Message: "expected PHASE=DURATION (e.g. work=25m or 2=25m), got %q",
	}

	errUnknownPhase = &apperr.Error{
		Message: "no phase matches %q",
	}

	errInvalidLogFormat = &apperr.Error{
		Message: "log format must be one of text, json or yaml, got %q",
	}
)
