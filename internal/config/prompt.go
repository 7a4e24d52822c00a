package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/cadence/internal/phase"
	"github.com/ayoisaiah/cadence/internal/timeutil"
)

const asciiLogo = `
 ██████╗ █████╗ ██████╗ ███████╗███╗   ██╗ ██████╗███████╗
██╔════╝██╔══██╗██╔══██╗██╔════╝████╗  ██║██╔════╝██╔════╝
██║     ███████║██║  ██║█████╗  ██╔██╗ ██║██║     █████╗
██║     ██╔══██║██║  ██║██╔══╝  ██║╚██╗██║██║     ██╔══╝
╚██████╗██║  ██║██████╔╝███████╗██║ ╚████║╚██████╗███████╗
 ╚═════╝╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═══╝ ╚═════╝╚══════╝`

// promptChoices lists the durations offered for each kind of phase.
var promptChoices = map[phase.Kind][]time.Duration{
	phase.Preparation: {1 * time.Minute, 2 * time.Minute, 5 * time.Minute},
	phase.Working:     {13 * time.Minute, 25 * time.Minute, 45 * time.Minute, 50 * time.Minute},
	phase.Review:      {1 * time.Minute, 2 * time.Minute, 5 * time.Minute},
	phase.Relaxing:    {5 * time.Minute, 10 * time.Minute, 15 * time.Minute},
}

// WithPromptConfig returns an Option that asks for phase durations when no
// config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		phases, err := promptUser(phaseConfigs(phase.Defaults()))
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.Phases = phases

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser(phases []PhaseConfig) ([]PhaseConfig, error) {
	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure cadence for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'cadence edit-config' to change any settings.`, " ").
		Render()

	groups := make([]*huh.Group, len(phases))

	for i := range phases {
		p := &phases[i]

		options := make([]huh.Option[time.Duration], 0, len(promptChoices[p.Kind]))
		for _, d := range promptChoices[p.Kind] {
			options = append(options,
				huh.NewOption(timeutil.Humanize(d), d).Selected(d == p.Duration),
			)
		}

		groups[i] = huh.NewGroup(
			huh.NewSelect[time.Duration]().
				Title(p.Label + " length").
				Options(options...).
				Value(&p.Duration),
		)
	}

	err := huh.NewForm(groups...).Run()
	if err != nil {
		return nil, fmt.Errorf("form interaction failed: %w", err)
	}

	return phases, nil
}
