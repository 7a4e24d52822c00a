package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/cadence/internal/config"
	"github.com/ayoisaiah/cadence/internal/osutil"
	"github.com/ayoisaiah/cadence/internal/pathutil"
	"github.com/ayoisaiah/cadence/internal/session"
	"github.com/ayoisaiah/cadence/internal/sound"
	"github.com/ayoisaiah/cadence/internal/status"
	"github.com/ayoisaiah/cadence/internal/timeutil"
	"github.com/ayoisaiah/cadence/internal/ui"
	"github.com/ayoisaiah/cadence/report"
	"github.com/ayoisaiah/cadence/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envCadenceNoColor = "CADENCE_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file, prompting for it on first run, and
// applies command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// soundsDir returns the directory cue sounds are looked up in.
func soundsDir(cfg *config.Config) string {
	return firstNonEmptyString(cfg.Settings.SoundsDir, pathutil.SoundsDir())
}

// newPlayer returns the cue player for cfg.
func newPlayer(cfg *config.Config) *sound.Player {
	return sound.New(
		soundsDir(cfg),
		sound.WithAlias(session.CueStart, cfg.Settings.StartSound),
		sound.WithAlias(session.CuePause, cfg.Settings.PauseSound),
		sound.WithMute(cfg.CLI.Mute),
	)
}

// editConfigAction handles the edit-config command which opens the cadence
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	path := pathutil.ConfigFilePath()

	// writes the defaults if the file does not exist yet
	if _, err := config.New(config.WithViperConfig(path)); err != nil {
		return err
	}

	cmd := exec.Command(editor, path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(ctx *cli.Context) error {
	path := pathutil.StatusFilePath()

	if !ctx.Bool("watch") {
		s, err := status.Read(path)
		if err != nil || s == nil {
			return err
		}

		pterm.Println(s.Line(time.Now()))

		return nil
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return status.Watch(sigCtx, path, func(s *status.Status) {
		if s == nil {
			pterm.Println(ui.Highlight("cadence is not running"))
			return
		}

		pterm.Println(s.Line(time.Now()))
	})
}

// phasesAction prints a table of the configured phases.
func phasesAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	list, err := cfg.PhaseList()
	if err != nil {
		return err
	}

	data := [][]string{{"#", "LABEL", "KIND", "DURATION", "SOUND", "THEME"}}

	for i, p := range list.All() {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			p.Label,
			string(p.Kind),
			timeutil.Compact(p.Duration),
			firstNonEmptyString(p.CueSound, config.SoundOff),
			p.Theme,
		})
	}

	if err := ui.PrintTable(data, config.Stdout); err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		config.Stdout,
		"One cycle takes %s\n",
		timeutil.Humanize(list.Total()),
	)

	return err
}

// soundsAction lists the sounds found in the sounds directory.
func soundsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	dir := soundsDir(cfg)

	names, err := sound.List(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if len(names) == 0 {
		pterm.Info.Printfln("No sounds found in %s", dir)
		return nil
	}

	for _, name := range names {
		pterm.Println(name)
	}

	return nil
}

// defaultAction runs the timer until the user quits.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, logFile := newLogger(pathutil.LogFilePath(), cfg.CLI.Debug)
	defer logFile.Close()

	slog.SetDefault(logger)

	list, err := cfg.PhaseList()
	if err != nil {
		return err
	}

	hooks := timer.NewHooks(
		cfg,
		timer.WithStatusFile(pathutil.StatusFilePath()),
		timer.WithHooksLogger(logger),
	)

	player := newPlayer(cfg)

	ctrl, err := session.New(
		list,
		session.WithCuePlayer(player),
		session.WithLogger(hooks.Logger()),
		session.WithListener(hooks.Listener),
	)
	if err != nil {
		return err
	}

	cues := []string{session.CueStart, session.CuePause}
	for _, p := range list.All() {
		cues = append(cues, p.CueSound)
	}

	player.Preload(cues...)

	hooks.Logger().InfoContext(ctx.Context, "starting cadence",
		slog.Int("phases", list.Len()),
		slog.Bool("plain", cfg.CLI.Plain),
	)

	err = runTimer(ctx.Context, cfg, ctrl, hooks)

	hooks.Close()

	if err != nil {
		return err
	}

	if cfg.CLI.PrintLog == "" {
		return nil
	}

	return report.Log(config.Stdout, cfg.CLI.PrintLog, hooks.History())
}

func runTimer(
	ctx context.Context,
	cfg *config.Config,
	ctrl *session.Controller,
	hooks *timer.Hooks,
) error {
	if !cfg.CLI.Plain {
		return timer.New(cfg, ctrl, hooks).Run()
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return timer.NewPlain(cfg, ctrl, hooks, config.Stdout).Run(sigCtx, config.Stdin)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/cadence/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CADENCE_NO_COLOR is set
	if _, exists := os.LookupEnv(envCadenceNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting cadence")

	return nil
}
