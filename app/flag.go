package app

import "github.com/urfave/cli/v2"

var (
	durationFlag = &cli.StringSliceFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Override a phase duration as PHASE=DURATION where PHASE is a label or position (e.g. work=25m, 2=25). Repeatable",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Run without the full-screen interface, reading commands from standard input",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a phase is completed",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Do not play any sounds",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each phase",
	}

	printLogFlag = &cli.StringFlag{
		Name:  "print-log",
		Usage: "Print the session log on exit in the given format (text, json or yaml)",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug information to the log file",
	}

	watchFlag = &cli.BoolFlag{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Keep printing the status as it changes",
	}
)
