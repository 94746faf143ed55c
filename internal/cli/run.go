// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/session"
)

// maxLineLength bounds one scripted input line.
const maxLineLength = 64 * 1024

// HandleRun dispatches a single line and prints its output. It returns
// ErrCommandFailed when the line produced an error entry.
func HandleRun(interp *commands.Interpreter, line string, p *Printer) error {
	res := interp.Dispatch(line)
	if res.Cleared {
		p.Clear()
		return nil
	}
	p.Entry(res.Entry)
	if res.Entry != nil && res.Entry.Kind == session.KindError {
		return ErrCommandFailed
	}
	return nil
}

// RunLines dispatches every line read from r, printing each result. It
// keeps going after a failed line and returns ErrCommandFailed at the end
// if any line failed.
func RunLines(interp *commands.Interpreter, r io.Reader, p *Printer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	failed := false
	for scanner.Scan() {
		if err := HandleRun(interp, scanner.Text(), p); err != nil {
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if failed {
		return ErrCommandFailed
	}
	return nil
}
