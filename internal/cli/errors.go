// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitFailure covers bad arguments, load errors and a failed run line
	ExitFailure = 1
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError reports bad command-line arguments.
type UsageError struct {
	Command string
	Reason  string
}

func (e *UsageError) Error() string {
	if e.Command == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// NewUsageError creates a usage error for command.
func NewUsageError(command, format string, args ...any) error {
	return &UsageError{Command: command, Reason: fmt.Sprintf(format, args...)}
}

// ErrCommandFailed is returned by run when the line produced an error entry.
// The entry has already been printed.
var ErrCommandFailed = errors.New("command failed")

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError writes err to w as "Error: ...". Catalog and config
// validation errors are listed one field per line.
func DisplayError(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrCommandFailed) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, line := range fieldErrors(err) {
		fmt.Fprintf(w, "  %s\n", styles.RenderError(line))
	}
}

func fieldErrors(err error) []string {
	var lines []string
	var catErrs catalog.ValidationErrors
	if errors.As(err, &catErrs) && len(catErrs) > 1 {
		for _, fe := range catErrs {
			lines = append(lines, fe.Error())
		}
	}
	var cfgErrs config.ValidateErrors
	if errors.As(err, &cfgErrs) && len(cfgErrs) > 1 {
		for _, ve := range cfgErrs {
			lines = append(lines, ve.Error())
		}
	}
	return lines
}

// GetExitCode returns the process exit code for err.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
