package config

import (
	"errors"
	"os"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/ayoisaiah/cadence/internal/phase"
	"github.com/ayoisaiah/cadence/internal/timeutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyPhases               = "phases"
	keySampleInterval       = "settings.sample_interval"
	keyStartSound           = "settings.start_sound"
	keyPauseSound           = "settings.pause_sound"
	keySoundsDir            = "settings.sounds_dir"
	keySessionCmd           = "settings.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// The config file is created with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyPhases, phaseMaps(phaseConfigs(phase.Defaults())))
	v.SetDefault(keySampleInterval, "50ms")
	v.SetDefault(keyStartSound, "start")
	v.SetDefault(keyPauseSound, "pause")
	v.SetDefault(keySoundsDir, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)

	// phases chosen in the first-run prompt take precedence
	if len(c.Phases) > 0 {
		v.Set(keyPhases, phaseMaps(c.Phases))
		c.Phases = nil
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			durationHook,
			mapstructure.StringToSliceHookFunc(","),
		),
	))
}

// phaseMaps converts phases into the generic form written to the config file.
func phaseMaps(phases []PhaseConfig) []map[string]any {
	m := make([]map[string]any, len(phases))

	for i, p := range phases {
		m[i] = map[string]any{
			"label":    p.Label,
			"kind":     string(p.Kind),
			"duration": timeutil.Compact(p.Duration),
			"sound":    p.Sound,
			"theme":    p.Theme,
		}
	}

	return m
}

// durationHook decodes durations written either as duration strings or as
// bare numbers of minutes.
func durationHook(_, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		d, err := timeutil.ParseDuration(v)
		if err != nil {
			return nil, errInvalidDurationFormat.Fmt(v)
		}

		return d, nil
	case int:
		return time.Duration(v) * time.Minute, nil
	case int64:
		return time.Duration(v) * time.Minute, nil
	case float64:
		return time.Duration(v * float64(time.Minute)), nil
	}

	return data, nil
}
