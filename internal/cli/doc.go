// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-display modes of
// termfolio.
//
// # Key Types
//
//   - Command: the CLI command to execute
//   - Args: global flags plus command-specific arguments
//   - App: loaded config, logger and catalog shared by every mode
//   - Printer: writes scrollback entries styled or as plain text
//   - REPL: the liner-based line-mode shell
//
// # Usage
//
//	cmd, args, err := cli.Parse(os.Args[1:])
//	app, err := cli.Setup(args)
//	switch cmd {
//	case cli.CmdRun:
//	    err = cli.HandleRun(app.NewInterpreter(), args.Line, app.PrinterFor(os.Stdout))
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - (none), tui: full terminal display; reads lines from stdin when piped
//   - plain: line-mode shell with history and Tab completion
//   - run: one portfolio command, exit status 1 on an error entry
//   - validate: check a catalog document, optionally on every change
//   - catalog: print or export the effective catalog
//   - config: print the config path, write a default file, or show the
//     effective configuration
package cli
