// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands implements the portfolio command interpreter.
//
// A submitted line is normalized (trimmed, lower-cased, split on whitespace),
// looked up in a closed Registry and handed to a handler that builds a
// render.Block from the content catalog or the session state. The
// Interpreter owns the session and appends one scrollback entry per
// dispatch.
//
// # Key Types
//
//   - Registry: the fixed, ordered command set
//   - ParseResult: a normalized line
//   - Completer: unique-prefix command name completion
//   - Interpreter: dispatch, recall navigation and autocomplete over a session
//   - Notice: synchronous post-dispatch event for display surfaces
//
// # Usage
//
//	interp := commands.New(cat, commands.WithHome("/home/guest/portfolio"))
//	res := interp.Dispatch("cat about.txt")
//	fmt.Println(res.Entry.Output.PlainText())
//
//	if name, ok := interp.Autocomplete("pro"); ok {
//	    // name == "projects"
//	}
package commands
