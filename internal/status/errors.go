package status

import "github.com/ayoisaiah/cadence/internal/apperr"

var (
	errReadStatus = &apperr.Error{
		Message: "unable to read status file %s",
	}

	errWriteStatus = &apperr.Error{
		Message: "unable to write status file %s",
	}

	errWatchStatus = &apperr.Error{
		Message: "unable to watch status file %s",
	}
)
