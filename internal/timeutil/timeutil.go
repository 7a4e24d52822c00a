// Package timeutil provides utility functions for formatting durations.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = val / minutesInAnHour
	mins = val % minutesInAnHour

	return
}

// SecsToMinsAndSecs expresses a seconds value in mins and secs.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// Countdown formats whole seconds as MM:SS. Minutes are not capped at 59.
func Countdown(secs int) string {
	if secs < 0 {
		secs = 0
	}

	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// Compact formats d the way durations are written in the config file, such
// as 13m or 1h30m. Sub-second precision is dropped.
func Compact(d time.Duration) string {
	secs := int(d / time.Second)
	if secs <= 0 {
		return "0s"
	}

	mins, s := SecsToMinsAndSecs(secs)
	h, m := MinsToHoursAndMins(mins)

	var b strings.Builder

	if h > 0 {
		b.WriteString(strconv.Itoa(h) + "h")
	}

	if m > 0 {
		b.WriteString(strconv.Itoa(m) + "m")
	}

	if s > 0 {
		b.WriteString(strconv.Itoa(s) + "s")
	}

	return b.String()
}

// Humanize formats d for display, such as "13 minutes" or
// "1 hour 30 minutes".
func Humanize(d time.Duration) string {
	secs := int(d / time.Second)
	if secs <= 0 {
		return "0 seconds"
	}

	mins, s := SecsToMinsAndSecs(secs)
	h, m := MinsToHoursAndMins(mins)

	parts := make([]string, 0, 3)

	for _, p := range []struct {
		unit string
		n    int
	}{{"hour", h}, {"minute", m}, {"second", s}} {
		if p.n == 0 {
			continue
		}

		if p.n == 1 {
			parts = append(parts, "1 "+p.unit)
			continue
		}

		parts = append(parts, fmt.Sprintf("%d %ss", p.n, p.unit))
	}

	return strings.Join(parts, " ")
}

// ParseDuration parses duration strings. A number without a unit is taken
// to be minutes.
func ParseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	return time.Duration(mins * float64(time.Minute)), nil
}
