// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/termfolio/internal/commands"
)

// =============================================================================
// LINE EDITING
// =============================================================================

// REPL is the plain line-mode shell. Arrow keys walk the submitted lines;
// Tab completes a unique command prefix. History lives only as long as the
// process.
type REPL struct {
	line    *liner.State
	interp  *commands.Interpreter
	printer *Printer
	prompt  string
}

// NewREPL creates a line editor bound to interp.
func NewREPL(interp *commands.Interpreter, printer *Printer) *REPL {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabCircular)
	line.SetCompleter(Completer(interp))

	return &REPL{
		line:    line,
		interp:  interp,
		printer: printer,
		prompt:  printer.prompt.String() + " ",
	}
}

// Completer adapts the interpreter's unique-prefix autocomplete to liner.
// Ambiguous or unknown prefixes offer nothing.
func Completer(interp *commands.Interpreter) liner.Completer {
	return func(line string) []string {
		if completed, ok := interp.Autocomplete(line); ok {
			return []string{completed}
		}
		return nil
	}
}

// Run prints the welcome entry and reads lines until Ctrl-D.
// Ctrl-C abandons the current line.
func (r *REPL) Run(w io.Writer) error {
	defer r.line.Close()

	for _, e := range r.interp.Entries() {
		r.printer.Entry(e)
	}

	for {
		input, err := r.line.Prompt(r.prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		parsed := commands.Parse(input)
		if !parsed.Empty() && parsed.Name != commands.CmdClear {
			r.line.AppendHistory(strings.TrimSpace(input))
		}

		res := r.interp.Dispatch(input)
		if res.Cleared {
			r.printer.Clear()
			continue
		}
		r.printer.Entry(res.Entry)
	}
}
