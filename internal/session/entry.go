// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"time"

	"github.com/jeranaias/termfolio/internal/render"
)

// Kind classifies a scrollback entry.
type Kind int

const (
	// KindCommand is a submitted line with its output (or none, for empty input).
	KindCommand Kind = iota
	// KindInfo is a synthetic entry such as the welcome banner.
	KindInfo
	// KindError is a line that failed: unknown command or bad cat operand.
	KindError
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindError:
		return "error"
	default:
		return "command"
	}
}

// Entry is one scrollback record. Entries are never modified after they
// are appended.
type Entry struct {
	ID uint64

	// Command is the line as submitted. HasCommand is false only for
	// entries not caused by input.
	Command    string
	HasCommand bool

	// Output is nil for empty input.
	Output *render.Block

	Timestamp time.Time
	Kind      Kind
}
