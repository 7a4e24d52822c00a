// Package report prints errors and renders the session log.
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/cadence/internal/osutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
