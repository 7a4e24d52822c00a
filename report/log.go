package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/cadence/internal/apperr"
	"github.com/ayoisaiah/cadence/internal/phase"
	"github.com/ayoisaiah/cadence/internal/session"
	"github.com/ayoisaiah/cadence/internal/timeutil"
	"github.com/ayoisaiah/cadence/internal/ui"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var errUnknownFormat = &apperr.Error{
	Message: "unknown log format %q",
}

type (
	logEntry struct {
		Label    string     `json:"label"    yaml:"label"`
		Kind     phase.Kind `json:"kind"     yaml:"kind"`
		Duration string     `json:"duration" yaml:"duration"`
		Comment  string     `json:"comment"  yaml:"comment"`
		Seconds  int        `json:"seconds"  yaml:"seconds"`
	}

	logDocument struct {
		Entries     []logEntry `json:"entries"      yaml:"entries"`
		WorkingTime string     `json:"working_time" yaml:"working_time"`
	}
)

func newLogDocument(entries []session.Entry) logDocument {
	doc := logDocument{
		Entries:     make([]logEntry, len(entries)),
		WorkingTime: timeutil.Compact(session.WorkingTime(entries)),
	}

	for i, e := range entries {
		doc.Entries[i] = logEntry{
			Label:    e.Label,
			Kind:     e.Kind,
			Duration: timeutil.Compact(e.Duration),
			Seconds:  int(e.Duration.Seconds()),
			Comment:  e.Comment,
		}
	}

	return doc
}

// Log writes the session log to w in the given format.
func Log(w io.Writer, format string, entries []session.Entry) error {
	switch format {
	case FormatText, "":
		return logText(w, entries)
	case FormatJSON:
		b, err := json.MarshalIndent(newLogDocument(entries), "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(newLogDocument(entries)); err != nil {
			return err
		}

		return enc.Close()
	}

	return errUnknownFormat.Fmt(format)
}

func logText(w io.Writer, entries []session.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No phases completed yet")
		return err
	}

	data := [][]string{{"#", "PHASE", "KIND", "DURATION", "COMMENT"}}

	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Label,
			string(e.Kind),
			timeutil.Humanize(e.Duration),
			e.Comment,
		})
	}

	if err := ui.PrintTable(data, w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(
		w,
		"Working time: %s\n",
		timeutil.Humanize(session.WorkingTime(entries)),
	)

	return err
}
