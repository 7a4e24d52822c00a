// Package apperr defines the error type shared by cadence packages
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error whose Message may contain format verbs that
// are filled in with Fmt.
type Error struct {
	Cause   error
	Message string
	tmpl    string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// template returns the unformatted message the error was created from.
func (e *Error) template() string {
	if e.tmpl != "" {
		return e.tmpl
	}

	return e.Message
}

// Is reports whether target was derived from the same sentinel as e.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.template() == t.template()
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		tmpl:    e.template(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		tmpl:    e.template(),
	}
}
