// Package config loads cadence settings from the config file, the
// command-line and the first-run prompt
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/cadence/internal/phase"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Phases        []PhaseConfig      `mapstructure:"phases"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
		PathToConfig  string             `mapstructure:"-"`
	}

	// PhaseConfig describes one phase of the cycle.
	PhaseConfig struct {
		Label    string        `mapstructure:"label"`
		Kind     phase.Kind    `mapstructure:"kind"`
		Sound    string        `mapstructure:"sound"`
		Theme    string        `mapstructure:"theme"`
		Duration time.Duration `mapstructure:"duration"`
	}

	// SettingsConfig holds timer behaviour settings.
	SettingsConfig struct {
		StartSound     string        `mapstructure:"start_sound"`
		PauseSound     string        `mapstructure:"pause_sound"`
		SoundsDir      string        `mapstructure:"sounds_dir"`
		Cmd            string        `mapstructure:"cmd"`
		SampleInterval time.Duration `mapstructure:"sample_interval"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// CLIConfig holds options that only come from command-line flags.
	CLIConfig struct {
		PrintLog string
		Plain    bool
		Mute     bool
		Debug    bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

// SoundOff disables a sound wherever a sound name is accepted.
const SoundOff = "off"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}

// PhaseList converts the configured phases into a phase list.
func (c *Config) PhaseList() (phase.List, error) {
	phases := make([]phase.Phase, len(c.Phases))

	for i, p := range c.Phases {
		sound := p.Sound
		if sound == SoundOff {
			sound = ""
		}

		phases[i] = phase.Phase{
			Label:    p.Label,
			Kind:     p.Kind,
			Duration: p.Duration,
			CueSound: sound,
			Theme:    p.Theme,
		}
	}

	return phase.NewList(phases...)
}

// phaseConfigs converts a phase list into its configuration form.
func phaseConfigs(l phase.List) []PhaseConfig {
	phases := l.All()
	pc := make([]PhaseConfig, len(phases))

	for i, p := range phases {
		pc[i] = PhaseConfig{
			Label:    p.Label,
			Kind:     p.Kind,
			Duration: p.Duration,
			Sound:    p.CueSound,
			Theme:    p.Theme,
		}
	}

	return pc
}
