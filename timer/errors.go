package timer

import "github.com/ayoisaiah/cadence/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse the post-phase command %q",
	}

	errRunCmd = &apperr.Error{
		Message: "post-phase command %q failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}

	errUnknownCommand = &apperr.Error{
		Message: "unknown command %q (try :help)",
	}

	errSetUsage = &apperr.Error{
		Message: "usage: :set PHASE DURATION (e.g. :set 2 25m)",
	}
)
