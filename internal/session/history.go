// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"time"

	"github.com/jeranaias/termfolio/internal/render"
)

// =============================================================================
// HISTORY
// =============================================================================

// History is the scrollback log. IDs come from a counter that Clear does not
// reset, so an ID is never reused within a session.
type History struct {
	entries []*Entry
	nextID  uint64
}

// NewHistory creates an empty history whose first ID is 1.
func NewHistory() *History {
	return &History{nextID: 1}
}

// Append assigns the next ID, stamps the entry and adds it to the log.
func (h *History) Append(command string, hasCommand bool, output *render.Block, kind Kind, now time.Time) *Entry {
	e := &Entry{
		ID:         h.nextID,
		Command:    command,
		HasCommand: hasCommand,
		Output:     output,
		Timestamp:  now,
		Kind:       kind,
	}
	h.nextID++
	h.entries = append(h.entries, e)
	return e
}

// Clear truncates the log to empty.
func (h *History) Clear() {
	h.entries = nil
}

// Entries returns a copy of the log in insertion order.
func (h *History) Entries() []*Entry {
	out := make([]*Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

