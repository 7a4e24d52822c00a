package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/cadence/internal/phase"
	"github.com/ayoisaiah/cadence/internal/ui"
)

var (
	// Minimum and maximum duration constraints.
	minPhaseDuration = phase.MinDuration
	maxPhaseDuration = 720 * time.Minute // 12 hours

	minSampleInterval = 10 * time.Millisecond
	maxSampleInterval = time.Second

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

	logFormats = []string{"text", "json", "yaml"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if len(c.Phases) == 0 {
		return errNoPhases
	}

	for i := range c.Phases {
		if err := c.validatePhase(i); err != nil {
			return err
		}
	}

	return c.validateSettings()
}

// validatePhase validates the phase at index i.
func (c *Config) validatePhase(i int) error {
	p := c.Phases[i]

	if strings.TrimSpace(p.Label) == "" {
		return errEmptyLabel.Fmt(i + 1)
	}

	if !p.Kind.Valid() {
		return errInvalidKind.Fmt(p.Label, phase.Kinds, p.Kind)
	}

	if p.Duration < minPhaseDuration || p.Duration > maxPhaseDuration {
		return errInvalidDuration.Fmt(
			p.Label,
			minPhaseDuration,
			maxPhaseDuration,
		)
	}

	if _, ok := ui.LookupTheme(p.Theme); !ok {
		return errInvalidTheme.Fmt(p.Label, ui.ThemeNames(), p.Theme)
	}

	if err := validateSound(p.Sound); err != nil {
		return fmt.Errorf("%s sound invalid: %w", p.Label, err)
	}

	return nil
}

// validateSettings validates the SettingsConfig.
func (c *Config) validateSettings() error {
	if c.Settings.SampleInterval < minSampleInterval ||
		c.Settings.SampleInterval > maxSampleInterval {
		return errInvalidSampleInterval.Fmt(minSampleInterval, maxSampleInterval)
	}

	for _, s := range []string{c.Settings.StartSound, c.Settings.PauseSound} {
		if err := validateSound(s); err != nil {
			return err
		}
	}

	if c.CLI.PrintLog != "" && !slices.Contains(logFormats, c.CLI.PrintLog) {
		return errInvalidLogFormat.Fmt(c.CLI.PrintLog)
	}

	return nil
}

// validateSound checks the format of sounds given as file names. Bare names
// are resolved against the sounds directory at playback time.
func validateSound(sound string) error {
	ext := strings.ToLower(filepath.Ext(sound))
	if ext == "" {
		return nil
	}

	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	return nil
}
