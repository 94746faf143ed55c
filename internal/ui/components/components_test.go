// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/termfolio/internal/render"
	"github.com/jeranaias/termfolio/internal/session"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

var testPrompt = Prompt{User: "mozammil", Host: "portfolio"}

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestPromptString(t *testing.T) {
	if got := testPrompt.String(); got != "mozammil@portfolio:~$" {
		t.Errorf("Prompt.String() = %q", got)
	}
	if got := testPrompt.Render(styles.NewTheme(styles.ModeDark)); !strings.Contains(got, "mozammil") {
		t.Errorf("Prompt.Render() = %q, should contain the user", got)
	}
}

func TestHeaderControlAt(t *testing.T) {
	h := NewHeader(styles.NewTheme(styles.ModeDark), testPrompt)
	w := util.StringWidth(controlDot)

	tests := []struct {
		x    int
		want Control
	}{
		{0, ControlNone},
		{1, ControlClose},
		{1 + w + 1, ControlMinimize},
		{1 + 2*(w+1), ControlMaximize},
		{1 + 3*(w+1), ControlNone},
	}

	for _, tc := range tests {
		if got := h.ControlAt(tc.x); got != tc.want {
			t.Errorf("ControlAt(%d) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestHeaderView(t *testing.T) {
	h := NewHeader(styles.NewTheme(styles.ModeDark), testPrompt)
	h.SetWidth(80)

	view := h.View()
	if !strings.Contains(view, "mozammil@portfolio:~$") {
		t.Errorf("header should show the prompt, got %q", view)
	}
	if got := lipgloss.Width(view); got != 80 {
		t.Errorf("header width = %d, want 80", got)
	}
	if strings.Contains(view, "\n") {
		t.Error("header should be a single line")
	}

	h.Minimized = true
	if !strings.Contains(h.View(), "[minimized]") {
		t.Error("minimized header should show its state")
	}

	h.SetWidth(30)
	if !strings.Contains(h.View(), narrowTitle) {
		t.Errorf("narrow header should use %q", narrowTitle)
	}
}

// =============================================================================
// QUICK BAR TESTS
// =============================================================================

func TestQuickBarLayout(t *testing.T) {
	q := NewQuickBar(styles.NewTheme(styles.ModeDark), []string{"help", "about", "skills"})
	q.SetWidth(80)

	if q.Height() != 2 {
		t.Errorf("Height() = %d, want 2 (one row plus hint)", q.Height())
	}

	tests := []struct {
		x, y int
		want string
		ok   bool
	}{
		{0, 0, "", false},
		{1, 0, "help", true},
		{6, 0, "help", true},
		{7, 0, "", false},
		{8, 0, "about", true},
		{16, 0, "skills", true},
		{1, 1, "", false},
	}
	for _, tc := range tests {
		got, ok := q.ButtonAt(tc.x, tc.y)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ButtonAt(%d, %d) = %q, %v; want %q, %v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestQuickBarWraps(t *testing.T) {
	q := NewQuickBar(styles.NewTheme(styles.ModeDark), []string{"help", "about", "skills"})
	q.SetWidth(12)

	if q.Height() != 4 {
		t.Fatalf("Height() = %d, want 4 (three rows plus hint)", q.Height())
	}
	if got, ok := q.ButtonAt(2, 1); !ok || got != "about" {
		t.Errorf("ButtonAt(2, 1) = %q, %v; want about", got, ok)
	}
	if got, ok := q.ButtonAt(2, 2); !ok || got != "skills" {
		t.Errorf("ButtonAt(2, 2) = %q, %v; want skills", got, ok)
	}
}

func TestQuickBarSelection(t *testing.T) {
	q := NewQuickBar(styles.NewTheme(styles.ModeDark), []string{"help", "about", "skills"})

	if got, _ := q.Current(); got != "help" {
		t.Errorf("initial selection = %q, want help", got)
	}
	q.Prev()
	if got, _ := q.Current(); got != "skills" {
		t.Errorf("Prev() from first should wrap to skills, got %q", got)
	}
	q.Next()
	q.Next()
	if got, _ := q.Current(); got != "about" {
		t.Errorf("selection = %q, want about", got)
	}

	q.Focused = true
	view := q.View()
	for _, name := range q.Commands {
		if !strings.Contains(view, name) {
			t.Errorf("view should contain %q", name)
		}
	}
	if !strings.Contains(view, "Quick Commands") {
		t.Error("view should contain the hint line")
	}
}

// =============================================================================
// BLOCK RENDERER TESTS
// =============================================================================

func TestBlockRendererNil(t *testing.T) {
	r := NewBlockRenderer(styles.NewTheme(styles.ModeDark))
	if got := r.Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestBlockRendererContent(t *testing.T) {
	r := NewBlockRenderer(styles.NewTheme(styles.ModeDark))
	r.SetWidth(60)

	block := render.New("Technical Skills",
		render.Section{Title: "Programming Languages:", Nodes: []render.Node{
			render.Bars{Items: []render.Bar{{Label: "Go", Percent: 90}}},
		}},
		render.Fields{Items: []render.Field{{Label: "Email", Value: "me@example.com", Link: "mailto:me@example.com", Icon: "📧"}}},
		render.Tags{Items: []string{"Docker", "Git"}},
		render.Numbered{Items: []string{"help", "ls"}},
		render.Card{Title: "Termfolio", Badge: "Published", Meta: []string{"2024"}},
	)

	out := r.Render(block)
	for _, want := range []string{"Technical Skills", "Programming Languages:", "Go", "90%", "Email: ", "me@example.com", "Docker", "Git", "1  help", "Termfolio", "Published", "2024"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered block should contain %q\n%s", want, out)
		}
	}
}

func TestBlockRendererWraps(t *testing.T) {
	r := NewBlockRenderer(styles.NewTheme(styles.ModeDark))
	r.SetWidth(30)

	long := strings.Repeat("portfolio terminal ", 10)
	out := r.Render(render.New("", render.Paragraph{Text: long}, render.Bullets{Items: []string{long}}))
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line %q is %d columns wide, want <= 30", line, w)
		}
	}
}

func TestBlockRendererGridFitsWidth(t *testing.T) {
	r := NewBlockRenderer(styles.NewTheme(styles.ModeDark))
	r.SetWidth(20)

	out := r.Render(render.New("", render.Grid{Items: []string{"about.txt", "skills.json", "readme.md"}, Columns: 3}))
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Errorf("narrow grid should fall back to one column, got %d rows:\n%s", len(lines), out)
	}
}

func TestBlockRendererError(t *testing.T) {
	r := NewBlockRenderer(styles.NewTheme(styles.ModeDark))
	out := r.Render(render.Error("cat: x: No such file or directory"))
	if !strings.Contains(out, "cat: x: No such file or directory") {
		t.Errorf("error block lost its message: %q", out)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	m := NewMarkdownRenderer(styles.NewTheme(styles.ModeDark))
	out := m.Render("## Portfolio\n\nWelcome to the **terminal**.", 60)
	if !strings.Contains(out, "Portfolio") || !strings.Contains(out, "terminal") {
		t.Errorf("markdown output lost content: %q", out)
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Error("markdown output should be trimmed of blank lines")
	}
}

// =============================================================================
// HIGHLIGHTER TESTS
// =============================================================================

func TestHighlighter(t *testing.T) {
	plain := NewHighlighter(termenv.Ascii, true)
	if plain.Enabled() {
		t.Error("Ascii profile should disable highlighting")
	}
	if got := plain.Highlight("name: test\n", "yaml"); got != "name: test\n" {
		t.Errorf("disabled highlighter changed input: %q", got)
	}

	colored := NewHighlighter(termenv.TrueColor, true)
	if got := colored.Highlight("name: test\n", "yaml"); !strings.Contains(got, "\x1b[") {
		t.Errorf("TrueColor highlighter should emit escape codes, got %q", got)
	}
}

// =============================================================================
// SCROLLBACK TESTS
// =============================================================================

func scrollbackWithEntries(t *testing.T, n int) (*Scrollback, []*session.Entry) {
	t.Helper()
	theme := styles.NewTheme(styles.ModeDark)
	sb := NewScrollback(theme, NewBlockRenderer(theme), testPrompt)
	sb.SetSize(40, 5)

	h := session.NewHistory()
	now := time.Date(2025, 3, 4, 15, 4, 5, 0, time.UTC)
	for i := 0; i < n; i++ {
		h.Append("pwd", true, render.Text("/home/guest/portfolio", render.ToneNormal), session.KindCommand, now)
	}
	entries := h.Entries()
	sb.SetEntries(entries)
	return sb, entries
}

func TestScrollbackOffsets(t *testing.T) {
	sb, entries := scrollbackWithEntries(t, 10)

	// Each entry is a prompt line plus one output line, separated by a blank line.
	for i, e := range entries {
		off, ok := sb.EntryOffset(e.ID)
		if !ok || off != 3*i {
			t.Errorf("EntryOffset(entry %d) = %d, %v; want %d", i, off, ok, 3*i)
		}
	}
	if sb.TotalLines() != 29 {
		t.Errorf("TotalLines() = %d, want 29", sb.TotalLines())
	}
	if !sb.AtBottom() || sb.YOffset() != 24 {
		t.Errorf("new content should follow the bottom, YOffset = %d", sb.YOffset())
	}
}

func TestScrollbackScrollToEntry(t *testing.T) {
	sb, entries := scrollbackWithEntries(t, 10)

	if !sb.ScrollToEntry(entries[3].ID) {
		t.Fatal("ScrollToEntry should find the entry")
	}
	if sb.YOffset() != 9 {
		t.Errorf("YOffset() = %d, want 9", sb.YOffset())
	}
	if !strings.Contains(sb.View(), "pwd") {
		t.Error("the entry's prompt line should be visible")
	}
	if sb.ScrollToEntry(9999) {
		t.Error("ScrollToEntry should report unknown entries")
	}
}

func TestScrollbackManualScrollStopsFollowing(t *testing.T) {
	sb, entries := scrollbackWithEntries(t, 10)

	sb.ScrollUp(2)
	if sb.YOffset() != 22 {
		t.Fatalf("YOffset() = %d, want 22", sb.YOffset())
	}
	sb.SetEntries(entries)
	if sb.YOffset() != 22 {
		t.Errorf("re-render should keep a manual position, YOffset = %d", sb.YOffset())
	}

	sb, _ = sb.Update(tea.MouseMsg{Type: tea.MouseWheelUp})
	if sb.YOffset() != 19 {
		t.Errorf("wheel up should scroll %d lines, YOffset = %d", wheelLines, sb.YOffset())
	}

	sb.PageDown()
	sb.PageDown()
	if !sb.AtBottom() {
		t.Error("paging down should reach the bottom")
	}
	if sb.ScrollPosition() != "25/25" {
		t.Errorf("ScrollPosition() = %q, want 25/25", sb.ScrollPosition())
	}
}
