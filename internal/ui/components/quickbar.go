// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// QUICK COMMAND BAR
// =============================================================================

const (
	quickHint       = "💡 Quick Commands - Click any button above or type commands below"
	quickHintNarrow = "💡 Click a command or type below"
	quickGap        = 1
	quickPadLeft    = 1
)

// buttonSpan is where one button sits in the bar.
type buttonSpan struct {
	row        int
	start, end int
}

// QuickBar is a row of command buttons that wraps to the available width.
// Buttons are selectable with the keyboard when the bar is focused and
// hit-testable for mouse clicks.
type QuickBar struct {
	Commands []string
	Selected int
	Focused  bool
	Width    int

	theme  *styles.Theme
	layout []buttonSpan
	rows   int
}

// NewQuickBar creates a bar for commands.
func NewQuickBar(theme *styles.Theme, commands []string) *QuickBar {
	q := &QuickBar{
		Commands: append([]string(nil), commands...),
		Width:    80,
		theme:    theme,
	}
	q.relayout()
	return q
}

// SetWidth updates the bar width and recomputes the button layout.
func (q *QuickBar) SetWidth(width int) {
	q.Width = width
	q.relayout()
}

func (q *QuickBar) relayout() {
	inner := q.Width - 2*quickPadLeft
	if inner < 1 {
		inner = 1
	}
	q.layout = make([]buttonSpan, len(q.Commands))
	row, x := 0, quickPadLeft
	for i, name := range q.Commands {
		w := util.StringWidth(name) + 2
		if x > quickPadLeft && x+w > quickPadLeft+inner {
			row++
			x = quickPadLeft
		}
		q.layout[i] = buttonSpan{row: row, start: x, end: x + w}
		x += w + quickGap
	}
	q.rows = row + 1
	if len(q.Commands) == 0 {
		q.rows = 0
	}
}

// Height returns the number of lines View produces.
func (q *QuickBar) Height() int {
	return q.rows + 1
}

// Next selects the next button, wrapping around.
func (q *QuickBar) Next() {
	if len(q.Commands) > 0 {
		q.Selected = (q.Selected + 1) % len(q.Commands)
	}
}

// Prev selects the previous button, wrapping around.
func (q *QuickBar) Prev() {
	if n := len(q.Commands); n > 0 {
		q.Selected = (q.Selected - 1 + n) % n
	}
}

// Current returns the selected command name.
func (q *QuickBar) Current() (string, bool) {
	if q.Selected < 0 || q.Selected >= len(q.Commands) {
		return "", false
	}
	return q.Commands[q.Selected], true
}

// ButtonAt returns the command under column x of line y, both relative to
// the top-left corner of the bar.
func (q *QuickBar) ButtonAt(x, y int) (string, bool) {
	for i, span := range q.layout {
		if span.row == y && x >= span.start && x < span.end {
			return q.Commands[i], true
		}
	}
	return "", false
}

// View renders the button rows followed by the hint line.
func (q *QuickBar) View() string {
	t := q.theme
	lines := make([]string, q.rows)
	cols := make([]int, q.rows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", quickPadLeft)
		cols[i] = quickPadLeft
	}

	for i, name := range q.Commands {
		span := q.layout[i]
		style := t.QuickButton
		if q.Focused && i == q.Selected {
			style = t.QuickButtonSelected
		}
		if gap := span.start - cols[span.row]; gap > 0 {
			lines[span.row] += strings.Repeat(" ", gap)
		}
		lines[span.row] += style.Render(name)
		cols[span.row] = span.end
	}

	hint := quickHint
	if util.StringWidth(hint) > q.Width-2*quickPadLeft {
		hint = quickHintNarrow
	}
	lines = append(lines, strings.Repeat(" ", quickPadLeft)+t.Muted.Render(util.TruncateWidth(hint, q.Width-2*quickPadLeft)))

	return lipgloss.NewStyle().Width(q.Width).MaxWidth(q.Width).Render(strings.Join(lines, "\n"))
}
