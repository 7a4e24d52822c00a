package config

import (
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/cadence/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd    string
	PrintLog      string
	Durations     []string
	DisableNotify bool
	Plain         bool
	Mute          bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Durations:     ctx.StringSlice("duration"),
			SessionCmd:    ctx.String("cmd"),
			PrintLog:      ctx.String("print-log"),
			DisableNotify: ctx.Bool("disable-notification"),
			Plain:         ctx.Bool("plain"),
			Mute:          ctx.Bool("mute"),
			Debug:         ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts.Durations); err != nil {
		return err
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.CLI = CLIConfig{
		PrintLog: strings.ToLower(opts.PrintLog),
		Plain:    opts.Plain,
		Mute:     opts.Mute,
		Debug:    opts.Debug,
	}

	return nil
}

// applyCLIDurations overrides phase durations given as PHASE=DURATION, where
// PHASE is a phase label or its 1-based position.
func applyCLIDurations(c *Config, overrides []string) error {
	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok {
			return errMalformedCLIDuration.Fmt(o)
		}

		key = strings.TrimSpace(key)

		i := c.phaseIndex(key)
		if i < 0 {
			return errUnknownPhase.Fmt(key)
		}

		dur, err := timeutil.ParseDuration(strings.TrimSpace(value))
		if err != nil {
			return errInvalidCLIDuration.Fmt(key, err)
		}

		c.Phases[i].Duration = dur
	}

	return nil
}

// phaseIndex resolves a label or 1-based position to a phase index.
func (c *Config) phaseIndex(key string) int {
	if n, err := strconv.Atoi(key); err == nil {
		if n >= 1 && n <= len(c.Phases) {
			return n - 1
		}

		return -1
	}

	for i, p := range c.Phases {
		if strings.EqualFold(p.Label, key) {
			return i
		}
	}

	return -1
}
