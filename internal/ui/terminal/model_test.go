// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

var testQuick = []string{"help", "about", "pwd"}

func newTestModel(t *testing.T, width, height, maxWidth int) (Model, *commands.Interpreter) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() failed: %v", err)
	}
	now := time.Date(2025, time.March, 4, 15, 4, 5, 0, time.UTC)
	interp := commands.New(cat, commands.WithClock(func() time.Time { return now }))

	m := New(interp, styles.NewTheme(styles.ModeDark), Options{
		Prompt:        components.Prompt{User: "mozammil", Host: "portfolio"},
		MaxWidth:      maxWidth,
		Mouse:         true,
		QuickCommands: testQuick,
	})
	tokens := 0
	m.newToken = func() string {
		tokens++
		return fmt.Sprintf("token-%d", tokens)
	}
	m = send(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return m, interp
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func typeText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(k tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: k}
}

func lastCommand(interp *commands.Interpreter) string {
	entries := interp.Entries()
	if len(entries) == 0 {
		return ""
	}
	return entries[len(entries)-1].Command
}

// =============================================================================
// PROMPT LINE
// =============================================================================

func TestSubmitDispatchesInput(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 0)

	m = send(t, m, typeText("whoami"), keyMsg(tea.KeyEnter))

	if got := lastCommand(interp); got != "whoami" {
		t.Errorf("last entry command = %q, want whoami", got)
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared after submit, got %q", m.input.Value())
	}
	if !m.scrollback.AtBottom() {
		t.Error("typed commands should scroll to the bottom")
	}
}

func TestTypingUpdatesSessionInput(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 0)

	send(t, m, typeText("ab"))
	if got := interp.Input(); got != "ab" {
		t.Errorf("session input = %q, want ab", got)
	}
}

func TestTabCompletes(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 0)

	m = send(t, m, typeText("ab"), keyMsg(tea.KeyTab))
	if m.input.Value() != "about" {
		t.Errorf("input = %q, want about", m.input.Value())
	}
	if interp.Input() != "about" {
		t.Errorf("session input = %q, want about", interp.Input())
	}

	// Ambiguous prefixes leave the input alone.
	m.input.SetValue("c")
	m = send(t, m, keyMsg(tea.KeyTab))
	if m.input.Value() != "c" {
		t.Errorf("ambiguous completion changed input to %q", m.input.Value())
	}
}

func TestRecallNavigation(t *testing.T) {
	m, _ := newTestModel(t, 100, 40, 0)

	m = send(t, m,
		typeText("pwd"), keyMsg(tea.KeyEnter),
		typeText("date"), keyMsg(tea.KeyEnter),
		keyMsg(tea.KeyUp),
	)
	if m.input.Value() != "date" {
		t.Errorf("first Up = %q, want date", m.input.Value())
	}

	m = send(t, m, keyMsg(tea.KeyUp), keyMsg(tea.KeyUp))
	if m.input.Value() != "pwd" {
		t.Errorf("Up past the oldest line = %q, want pwd", m.input.Value())
	}

	m = send(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
	if m.input.Value() != "" {
		t.Errorf("Down past the newest line = %q, want empty", m.input.Value())
	}
}

func TestClearEmptiesScrollback(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 0)

	m = send(t, m, typeText("clear"), keyMsg(tea.KeyEnter))
	if n := len(interp.Entries()); n != 0 {
		t.Errorf("entries after clear = %d, want 0", n)
	}
	if m.scrollback.TotalLines() != 0 {
		t.Errorf("scrollback should be empty, has %d lines", m.scrollback.TotalLines())
	}
}

// =============================================================================
// QUICK BAR
// =============================================================================

func TestQuickBarKeyboard(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 0)

	m = send(t, m, keyMsg(tea.KeyCtrlB))
	if m.focus != focusQuickBar || !m.quickBar.Focused {
		t.Fatal("Ctrl+B should focus the quick bar")
	}

	m = send(t, m, keyMsg(tea.KeyRight), keyMsg(tea.KeyEnter))
	if got := lastCommand(interp); got != "about" {
		t.Errorf("quick bar ran %q, want about", got)
	}

	// Letters do not reach the input while the bar has focus.
	m = send(t, m, typeText("x"))
	if m.input.Value() != "" {
		t.Errorf("input = %q while the bar is focused", m.input.Value())
	}

	m = send(t, m, keyMsg(tea.KeyEsc))
	if m.focus != focusInput || m.quickBar.Focused {
		t.Error("Esc should return focus to the prompt")
	}
}

func TestQuickCommandScrollsEntryToTop(t *testing.T) {
	m, interp := newTestModel(t, 100, 12, 0)

	for i := 0; i < 5; i++ {
		m = send(t, m, typeText("pwd"), keyMsg(tea.KeyEnter))
	}
	m = send(t, m, keyMsg(tea.KeyCtrlB), keyMsg(tea.KeyRight), keyMsg(tea.KeyEnter))

	entries := interp.Entries()
	last := entries[len(entries)-1]
	if last.Command != "about" {
		t.Fatalf("last command = %q, want about", last.Command)
	}
	off, ok := m.scrollback.EntryOffset(last.ID)
	if !ok {
		t.Fatal("about entry has no offset")
	}
	if m.scrollback.YOffset() != off {
		t.Errorf("YOffset() = %d, want the about entry's first line %d", m.scrollback.YOffset(), off)
	}
	if m.quickToken != "" {
		t.Error("token should be consumed by its notice")
	}
}

func TestMouseClickRunsQuickCommand(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 0)

	// Border row 0, title bar row 1, first quick bar row 2. "help" starts
	// one column into the bar, which is one column inside the border.
	m = send(t, m, tea.MouseMsg{X: 3, Y: 2, Type: tea.MouseLeft})
	if got := lastCommand(interp); got != "help" {
		t.Errorf("click ran %q, want help", got)
	}

	send(t, m, tea.MouseMsg{X: 3, Y: 2, Type: tea.MouseRelease})
	if n := len(interp.Entries()); n != 2 {
		t.Errorf("release should not dispatch, entries = %d", n)
	}
}

// =============================================================================
// WINDOW CONTROLS
// =============================================================================

func TestMinimizeHidesBody(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 0)

	m = send(t, m, keyMsg(tea.KeyCtrlN))
	if !interp.Minimized() {
		t.Fatal("Ctrl+N should minimize")
	}
	view := m.View()
	if strings.Contains(view, "try 'help'") {
		t.Error("minimized view should hide the prompt line")
	}
	if !strings.Contains(view, "[minimized]") {
		t.Error("title bar should show the minimized state")
	}

	m = send(t, m, typeText("help"), keyMsg(tea.KeyEnter))
	if n := len(interp.Entries()); n != 1 {
		t.Errorf("input while minimized should be ignored, entries = %d", n)
	}

	m = send(t, m, keyMsg(tea.KeyCtrlN))
	if interp.Minimized() || !strings.Contains(m.View(), "try 'help'") {
		t.Error("second Ctrl+N should restore the window")
	}
}

func TestMaximizeRemovesWidthCap(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 60)

	if m.windowWidth() != 60 || m.windowLeft() != 20 {
		t.Fatalf("capped window = %d at %d, want 60 at 20", m.windowWidth(), m.windowLeft())
	}

	m = send(t, m, keyMsg(tea.KeyCtrlX))
	if !interp.Maximized() {
		t.Fatal("Ctrl+X should maximize")
	}
	if m.windowWidth() != 100 || m.windowLeft() != 0 {
		t.Errorf("maximized window = %d at %d, want 100 at 0", m.windowWidth(), m.windowLeft())
	}
}

func TestTitleBarControlsClick(t *testing.T) {
	m, interp := newTestModel(t, 100, 40, 0)
	dot := 1 + 1 // border plus title bar padding

	m = send(t, m, tea.MouseMsg{X: dot + 2, Y: 1, Type: tea.MouseLeft})
	if !interp.Minimized() {
		t.Error("clicking the second control should minimize")
	}

	_, cmd := m.Update(tea.MouseMsg{X: dot, Y: 1, Type: tea.MouseLeft})
	if cmd == nil {
		t.Fatal("clicking close should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("close should return tea.Quit")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, 100, 40, 0)

	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlQ} {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%v should quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v should return tea.Quit", k)
		}
	}
}

func TestViewShowsPromptAndQuickBar(t *testing.T) {
	m, _ := newTestModel(t, 100, 40, 0)

	view := m.View()
	for _, want := range []string{"mozammil@portfolio:~$", "help", "about", "Quick Commands"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestViewBeforeResizeIsEmpty(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	m := New(commands.New(cat), styles.NewTheme(styles.ModeDark), Options{})
	if m.View() != "" {
		t.Error("view should be empty until the first WindowSizeMsg")
	}
}
