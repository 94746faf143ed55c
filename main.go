// termfolio - a portfolio you browse like a shell.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/cli"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/ui/terminal"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cmd, args, err := cli.Parse(argv)
	if err != nil {
		return fail(err)
	}

	// Commands that need no config.
	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdValidate:
		return fail(runValidate(args))
	case cli.CmdConfig:
		return fail(runConfig(args))
	}

	app, err := cli.Setup(args)
	if err != nil {
		return fail(err)
	}
	defer app.Close()

	switch cmd {
	case cli.CmdPlain:
		err = runPlain(app)
	case cli.CmdRun:
		err = cli.HandleRun(app.NewInterpreter(), args.Line, app.PrinterFor(os.Stdout))
	case cli.CmdCatalog:
		opts := cli.CatalogOptions{
			JSON:        args.JSON,
			Out:         args.Out,
			Highlighter: highlighter(app.Theme()),
		}
		if app.Config.Catalog.Path == "" {
			opts.Source = catalog.DefaultDocument()
		}
		err = cli.HandleCatalog(app.Catalog, opts, os.Stdout)
	default:
		err = runTUI(app, args)
	}
	if err != nil {
		app.Logger.Error("command failed", "command", cmd.String(), "error", err)
	}
	return fail(err)
}

// fail prints err and returns the exit code for it.
func fail(err error) int {
	cli.DisplayError(os.Stderr, err)
	return cli.GetExitCode(err)
}

// runTUI starts the terminal display, or reads command lines from stdin
// when no terminal is attached.
func runTUI(app *cli.App, args cli.Args) error {
	if !cli.Interactive() {
		if args.Explicit {
			return &cli.TTYRequiredError{Operation: "start the terminal display"}
		}
		return cli.RunLines(app.NewInterpreter(), os.Stdin, app.PrinterFor(os.Stdout))
	}

	interp := app.NewInterpreter()
	m := terminal.New(interp, app.Theme(), terminal.Options{
		Prompt:        app.Prompt(),
		MaxWidth:      app.Config.UI.MaxWidth,
		Mouse:         app.Config.UI.Mouse,
		QuickCommands: app.Config.UI.QuickCommands,
	})

	var opts []tea.ProgramOption
	if app.Config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if app.Config.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running termfolio: %w", err)
	}
	app.Logger.Info("session ended", "session_id", interp.SessionID(), "entries", len(interp.Entries()), "duration", interp.Uptime())
	return nil
}

func runPlain(app *cli.App) error {
	interp := app.NewInterpreter()
	printer := app.PrinterFor(os.Stdout)
	if !cli.IsTTY() {
		// Transcript form: each piped line is shown with its prompt.
		printer.EchoCommands(true)
		return cli.RunLines(interp, os.Stdin, printer)
	}
	return cli.NewREPL(interp, printer).Run(os.Stdout)
}

func runValidate(args cli.Args) error {
	cfg, err := cli.LoadConfig(args)
	if err != nil {
		return err
	}
	path := args.Path
	if path == "" {
		path = cfg.Catalog.Path
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.HandleValidate(ctx, cli.ValidateOptions{Path: path, Watch: args.Watch}, os.Stdout)
}

func runConfig(args cli.Args) error {
	cfg, err := cli.LoadConfig(args)
	if err != nil {
		if args.Subcommand == "show" {
			return err
		}
		fmt.Fprintln(os.Stderr, styles.RenderWarning("config: "+err.Error()))
	}
	mode := styles.ModeAuto
	if cfg != nil {
		if m, perr := styles.ParseMode(cfg.UI.Theme); perr == nil {
			mode = m
		}
	}
	return cli.HandleConfig(args, cfg, highlighter(styles.NewTheme(mode)), os.Stdout)
}

// highlighter returns nil when stdout takes no colors.
func highlighter(theme *styles.Theme) *components.Highlighter {
	if !cli.ColorsEnabled() {
		return nil
	}
	return components.NewHighlighter(cli.GetColorProfile(), theme.IsDark)
}
