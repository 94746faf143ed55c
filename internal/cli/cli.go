// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for termfolio.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/termfolio/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdPlain
	CmdRun
	CmdValidate
	CmdCatalog
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name as typed.
func (c Command) String() string {
	switch c {
	case CmdPlain:
		return "plain"
	case CmdRun:
		return "run"
	case CmdValidate:
		return "validate"
	case CmdCatalog:
		return "catalog"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "tui"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath  string
	CatalogPath string
	Theme       string
	LogFile     string
	LogLevel    string
	NoAltScreen bool
	NoMouse     bool

	// Command-specific
	Line       string // run: the command line to dispatch
	Path       string // validate: document path; config init: target path
	Watch      bool   // validate --watch
	JSON       bool   // catalog --json
	Out        string // catalog --out FILE
	Force      bool   // config init --force
	Subcommand string // config: path, init or show

	// Explicit is true when a command name was typed.
	Explicit bool

	// Raw args after the command name
	Raw []string
}

const usageText = `termfolio - a terminal portfolio

Browse a portfolio the way you would browse a shell: type commands such as
about, skills or projects, click the quick command bar, and scroll back
through earlier output.

Usage:
  termfolio [global flags]                 Start the terminal display (default)
  termfolio [global flags] <command> ...

Commands:
  tui                          Start the terminal display
  plain                        Line-mode shell with history and Tab completion
  run <command line...>        Run one portfolio command and print its output
  validate [--watch] [PATH]    Check a catalog document
  catalog [--json] [--out FILE]
                               Print or export the effective catalog
  config [path|init|show]      Show or create the config file
  version                      Show version information
  help                         Show this help

Global flags (before the command):
  --config PATH        Config file (default ~/.termfolio/config.toml)
  --catalog PATH       Catalog document, YAML or JSON (default: embedded)
  --theme MODE         auto, dark or light
  --log-file PATH      Write JSON logs to PATH
  --log-level LEVEL    debug, info, warn or error
  --no-alt-screen      Draw in the main screen buffer
  --no-mouse           Disable mouse clicks

When stdin is not a terminal, termfolio reads command lines from it and
prints each result, so it can be scripted:

  printf 'about\nskills\n' | termfolio

Examples:
  termfolio run projects
  termfolio run cat readme.md
  termfolio validate --watch ./portfolio.yaml
  termfolio catalog --json --out portfolio.json
  termfolio --catalog ./portfolio.yaml --theme light

Version: %s
`

// PrintUsage writes the usage text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "termfolio version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses the arguments after the program name.
func Parse(argv []string) (Command, Args, error) {
	remaining, parsedArgs, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining
	parsedArgs.Explicit = true

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs, noArgs("tui", remaining)

	case "plain", "repl":
		return CmdPlain, parsedArgs, noArgs("plain", remaining)

	case "run":
		// Everything after run is the command line, flags included.
		if len(remaining) == 0 {
			return CmdRun, parsedArgs, NewUsageError("run", "missing command line (try 'termfolio run help')")
		}
		parsedArgs.Line = strings.Join(remaining, " ")
		return CmdRun, parsedArgs, nil

	case "validate":
		return CmdValidate, parsedArgs, parseValidateArgs(&parsedArgs, remaining)

	case "catalog":
		return CmdCatalog, parsedArgs, parseCatalogArgs(&parsedArgs, remaining)

	case "config":
		return CmdConfig, parsedArgs, parseConfigArgs(&parsedArgs, remaining)

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs, nil

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs, nil

	default:
		return CmdHelp, parsedArgs, NewUsageError("", "unknown command '%s' (see 'termfolio help')", cmd)
	}
}

// globalValueFlags take a value; the bool flags are handled inline.
var globalValueFlags = map[string]func(*Args, string){
	"config":    func(a *Args, v string) { a.ConfigPath = v },
	"catalog":   func(a *Args, v string) { a.CatalogPath = v },
	"theme":     func(a *Args, v string) { a.Theme = v },
	"log-file":  func(a *Args, v string) { a.LogFile = v },
	"log-level": func(a *Args, v string) { a.LogLevel = v },
}

// parseGlobalFlags consumes flags up to the first non-flag argument, which
// names the command.
func parseGlobalFlags(args []string) ([]string, Args, error) {
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") || arg == "--" {
			break
		}

		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		switch name {
		case "no-alt-screen":
			parsedArgs.NoAltScreen = true
		case "no-mouse":
			parsedArgs.NoMouse = true
		case "help", "version":
			// Treated as commands.
			return args[i:], parsedArgs, nil
		default:
			set, ok := globalValueFlags[name]
			if !ok {
				return nil, parsedArgs, NewUsageError("", "unknown flag '--%s'", name)
			}
			if !hasValue {
				if i+1 >= len(args) {
					return nil, parsedArgs, NewUsageError("", "flag '--%s' needs a value", name)
				}
				i++
				value = args[i]
			}
			set(&parsedArgs, value)
		}
		i++
	}

	if i < len(args) && args[i] == "--" {
		i++
	}
	return args[i:], parsedArgs, nil
}

func noArgs(command string, remaining []string) error {
	if len(remaining) > 0 {
		return NewUsageError(command, "unexpected argument '%s'", remaining[0])
	}
	return nil
}

func rejectUnknown(command string, p *ArgParser, known ...string) error {
	if unknown := p.Unknown(known...); len(unknown) > 0 {
		return NewUsageError(command, "unknown flag '%s'", unknown[0])
	}
	return nil
}

// parseValidateArgs parses: validate [--watch] [PATH]
func parseValidateArgs(args *Args, remaining []string) error {
	p := NewArgParser(remaining, "watch")
	if err := rejectUnknown("validate", p, "watch"); err != nil {
		return err
	}
	if p.PositionalCount() > 1 {
		return NewUsageError("validate", "expected at most one path, got %d", p.PositionalCount())
	}
	args.Watch = p.BoolFlag("watch")
	args.Path = p.Positional(0)
	return nil
}

// parseCatalogArgs parses: catalog [--json] [--out FILE]
func parseCatalogArgs(args *Args, remaining []string) error {
	p := NewArgParser(remaining, "json")
	if err := rejectUnknown("catalog", p, "json", "out"); err != nil {
		return err
	}
	if err := noArgs("catalog", p.PositionalFrom(0)); err != nil {
		return err
	}
	if p.HasFlag("out") && p.Flag("out") == "" {
		return NewUsageError("catalog", "--out needs a file name")
	}
	args.JSON = p.BoolFlag("json")
	args.Out = p.Flag("out")
	return nil
}

// parseConfigArgs parses: config [path|init [--force] [PATH]|show]
func parseConfigArgs(args *Args, remaining []string) error {
	p := NewArgParser(remaining, "force")
	if err := rejectUnknown("config", p, "force"); err != nil {
		return err
	}
	args.Subcommand = strings.ToLower(p.Positional(0))
	if args.Subcommand == "" {
		args.Subcommand = "show"
	}
	args.Force = p.BoolFlag("force")

	switch args.Subcommand {
	case "path", "show":
		return noArgs("config "+args.Subcommand, p.PositionalFrom(1))
	case "init":
		if p.PositionalCount() > 2 {
			return NewUsageError("config init", "unexpected argument '%s'", p.Positional(2))
		}
		args.Path = p.Positional(1)
		return nil
	default:
		return NewUsageError("config", "unknown subcommand '%s' (expected path, init or show)", args.Subcommand)
	}
}

// ApplyTo overrides cfg with the global flags that were given.
func (a Args) ApplyTo(cfg *config.Config) {
	if a.CatalogPath != "" {
		cfg.Catalog.Path = a.CatalogPath
	}
	if a.Theme != "" {
		cfg.UI.Theme = a.Theme
	}
	if a.LogFile != "" {
		cfg.Log.File = a.LogFile
	}
	if a.LogLevel != "" {
		cfg.Log.Level = a.LogLevel
	}
	if a.NoAltScreen {
		cfg.UI.AltScreen = false
	}
	if a.NoMouse {
		cfg.UI.Mouse = false
	}
}
