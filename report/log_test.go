package report

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/cadence/internal/phase"
	"github.com/ayoisaiah/cadence/internal/session"
	"github.com/ayoisaiah/cadence/internal/testutil"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

var cycleLog = []session.Entry{
	{Label: "Plan", Kind: phase.Preparation, Duration: time.Minute},
	{
		Label:    "Work",
		Kind:     phase.Working,
		Duration: 13 * time.Minute,
		Comment:  "wrote spec",
	},
}

type logGolden struct {
	format string
	out    []byte
}

func (g logGolden) Output() ([]byte, string) {
	return g.out, "log_" + g.format
}

func TestLogGolden(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, Log(&buf, format, cycleLog))

			testutil.CompareGoldenFile(t, logGolden{format: format, out: buf.Bytes()})
		})
	}
}

func TestLogText(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Log(&buf, FormatText, cycleLog))

	out := buf.String()
	assert.Contains(t, out, "PHASE")
	assert.Contains(t, out, "wrote spec")
	assert.Contains(t, out, "13 minutes")
	assert.Contains(t, out, "Working time: 13 minutes\n")
}

func TestLogTextEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Log(&buf, "", nil))
	assert.Equal(t, "No phases completed yet\n", buf.String())
}

func TestLogUnknownFormat(t *testing.T) {
	assert.ErrorIs(t, Log(&bytes.Buffer{}, "xml", cycleLog), errUnknownFormat)
}
