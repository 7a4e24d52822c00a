// Package app defines the cadence command-line application.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/cadence/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the cadence app instance.
func Get() *cli.App {
	cadenceApp := &cli.App{
		Name: "cadence",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Cadence is a sequential interval timer for the command-line. It walks
		you through an ordered list of phases (plan, work, review and rest by
		default) and keeps a log of what you did in each one.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Flags:  []cli.Flag{watchFlag},
				Action: statusAction,
			},
			{
				Name:   "phases",
				Usage:  "List the configured phases",
				Flags:  []cli.Flag{durationFlag},
				Action: phasesAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the sounds available for cues",
				Action: soundsAction,
			},
		},
		Flags: []cli.Flag{
			durationFlag,
			plainFlag,
			disableNotificationFlag,
			muteFlag,
			sessionCmdFlag,
			printLogFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return cadenceApp
}
