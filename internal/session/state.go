// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// State is the complete mutable state of one session. It is not safe for
// concurrent use; its owner serializes access.
type State struct {
	sessionID string
	startTime time.Time

	history *History
	recall  RecallBuffer
	cursor  int
	input   string

	minimized bool
	maximized bool
}

// NewState creates an empty session started at now.
func NewState(now time.Time) *State {
	return &State{
		sessionID: uuid.NewString(),
		startTime: now,
		history:   NewHistory(),
		cursor:    NotBrowsing,
	}
}

// SessionID returns the random session identifier.
func (s *State) SessionID() string { return s.sessionID }

// Duration returns how long the session has been running as of now.
func (s *State) Duration(now time.Time) time.Duration {
	return now.Sub(s.startTime)
}

// History returns the scrollback log.
func (s *State) History() *History { return s.history }

// Recall returns a copy of the recall buffer.
func (s *State) Recall() RecallBuffer {
	out := make(RecallBuffer, len(s.recall))
	copy(out, s.recall)
	return out
}

// PushRecall appends a submitted line to the recall buffer.
func (s *State) PushRecall(line string) {
	s.recall = append(s.recall, line)
}

// Cursor returns the recall cursor (NotBrowsing when idle).
func (s *State) Cursor() int { return s.cursor }

// SetCursor moves the recall cursor.
func (s *State) SetCursor(c int) { s.cursor = c }

// Input returns the current input line.
func (s *State) Input() string { return s.input }

// SetInput replaces the current input line.
func (s *State) SetInput(line string) { s.input = line }

// =============================================================================
// DISPLAY MODE
// =============================================================================

// Minimized reports whether the window body is hidden.
func (s *State) Minimized() bool { return s.minimized }

// Maximized reports whether the window fills the terminal.
func (s *State) Maximized() bool { return s.maximized }

// ToggleMinimized flips the minimized flag and returns the new value.
func (s *State) ToggleMinimized() bool {
	s.minimized = !s.minimized
	return s.minimized
}

// ToggleMaximized flips the maximized flag and returns the new value.
func (s *State) ToggleMaximized() bool {
	s.maximized = !s.maximized
	return s.maximized
}
