// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/termfolio/internal/render"
)

// =============================================================================
// HISTORY TESTS
// =============================================================================

func TestHistoryIDsIncrease(t *testing.T) {
	h := NewHistory()
	now := time.Now()

	a := h.Append("about", true, render.Text("x", render.ToneNormal), KindCommand, now)
	b := h.Append("", true, nil, KindCommand, now)
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("IDs = %d, %d; want 1, 2", a.ID, b.ID)
	}

	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", h.Len())
	}
	if len(h.Entries()) != 0 {
		t.Error("Entries should be empty after Clear")
	}

	c := h.Append("help", true, nil, KindCommand, now)
	if c.ID <= b.ID {
		t.Errorf("ID after Clear = %d, must exceed %d", c.ID, b.ID)
	}
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	h := NewHistory()
	h.Append("one", true, nil, KindCommand, time.Now())

	entries := h.Entries()
	entries[0] = nil
	entries = append(entries, &Entry{})

	if h.Len() != 1 || h.Entries()[0] == nil {
		t.Error("mutating Entries() result changed the history")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{KindCommand: "command", KindInfo: "info", KindError: "error"}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

// =============================================================================
// RECALL TESTS
// =============================================================================

func TestRecallPrevious(t *testing.T) {
	buf := RecallBuffer{"help", "about", "skills"}

	tests := []struct {
		name       string
		cursor     int
		wantCursor int
		wantText   string
		wantMoved  bool
	}{
		{"from idle", -1, 0, "skills", true},
		{"second", 0, 1, "about", true},
		{"oldest", 1, 2, "help", true},
		{"past oldest", 2, 2, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, text, moved := RecallPrevious(tt.cursor, buf)
			if c != tt.wantCursor || text != tt.wantText || moved != tt.wantMoved {
				t.Errorf("RecallPrevious(%d) = (%d, %q, %v), want (%d, %q, %v)",
					tt.cursor, c, text, moved, tt.wantCursor, tt.wantText, tt.wantMoved)
			}
		})
	}
}

func TestRecallNext(t *testing.T) {
	buf := RecallBuffer{"help", "about", "skills"}

	tests := []struct {
		name       string
		cursor     int
		wantCursor int
		wantText   string
		wantMoved  bool
	}{
		{"from oldest", 2, 1, "about", true},
		{"to newest", 1, 0, "skills", true},
		{"back to idle", 0, -1, "", true},
		{"idle is no-op", -1, -1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, text, moved := RecallNext(tt.cursor, buf)
			if c != tt.wantCursor || text != tt.wantText || moved != tt.wantMoved {
				t.Errorf("RecallNext(%d) = (%d, %q, %v), want (%d, %q, %v)",
					tt.cursor, c, text, moved, tt.wantCursor, tt.wantText, tt.wantMoved)
			}
		})
	}
}

func TestRecallEmptyBuffer(t *testing.T) {
	if c, _, moved := RecallPrevious(NotBrowsing, nil); moved || c != NotBrowsing {
		t.Errorf("RecallPrevious on empty buffer moved to %d", c)
	}
	if c, _, moved := RecallNext(NotBrowsing, nil); moved || c != NotBrowsing {
		t.Errorf("RecallNext on empty buffer moved to %d", c)
	}
}

func TestRecallRoundTrip(t *testing.T) {
	buf := RecallBuffer{"a", "b", "c", "d"}
	cursor := NotBrowsing
	var seen []string
	for {
		c, text, moved := RecallPrevious(cursor, buf)
		if !moved {
			break
		}
		cursor = c
		seen = append(seen, text)
	}
	want := []string{"d", "c", "b", "a"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("up sequence = %v, want %v", seen, want)
		}
	}
	for cursor != NotBrowsing {
		cursor, _, _ = RecallNext(cursor, buf)
	}
}

// =============================================================================
// STATE TESTS
// =============================================================================

func TestNewState(t *testing.T) {
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewState(start)

	if _, err := uuid.Parse(s.SessionID()); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", s.SessionID(), err)
	}
	if got := s.Duration(start.Add(time.Minute)); got != time.Minute {
		t.Errorf("Duration = %v, want 1m", got)
	}
	if s.Cursor() != NotBrowsing {
		t.Errorf("Cursor = %d, want %d", s.Cursor(), NotBrowsing)
	}
	if s.History().Len() != 0 || len(s.Recall()) != 0 || s.Input() != "" {
		t.Error("new state should be empty")
	}
}

func TestStateRecallCopy(t *testing.T) {
	s := NewState(time.Now())
	s.PushRecall("about")
	r := s.Recall()
	r[0] = "changed"
	if s.Recall()[0] != "about" {
		t.Error("Recall() must return a copy")
	}
}

func TestStateDisplayToggles(t *testing.T) {
	s := NewState(time.Now())
	if !s.ToggleMinimized() || !s.Minimized() {
		t.Error("first ToggleMinimized should set minimized")
	}
	if s.ToggleMinimized() {
		t.Error("second ToggleMinimized should clear minimized")
	}
	if !s.ToggleMaximized() || !s.Maximized() {
		t.Error("ToggleMaximized should set maximized")
	}
	if s.Minimized() {
		t.Error("toggles are independent")
	}
}
