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
// PROMPT
// =============================================================================

// Prompt is the simulated shell identity shown before every command.
type Prompt struct {
	User string
	Host string
}

// String returns the prompt as plain text: user@host:~$
func (p Prompt) String() string {
	return p.User + "@" + p.Host + ":~$"
}

// Render returns the prompt with theme colors.
func (p Prompt) Render(theme *styles.Theme) string {
	return theme.PromptUser.Render(p.User) +
		theme.PromptSymbol.Render("@") +
		theme.PromptHost.Render(p.Host) +
		theme.PromptSymbol.Render(":") +
		theme.PromptPath.Render("~") +
		theme.PromptSymbol.Render("$")
}

// =============================================================================
// TITLE BAR
// =============================================================================

// Control is a window control button in the title bar.
type Control int

const (
	ControlNone Control = iota
	ControlClose
	ControlMinimize
	ControlMaximize
)

const controlDot = "●"

// narrowTitle replaces the prompt title when the window is too narrow.
const narrowTitle = "terminal"

// Header is the window title bar: three controls, the prompt as title and
// the current window state.
type Header struct {
	Prompt    Prompt
	Width     int
	Minimized bool
	Maximized bool
	theme     *styles.Theme
}

// NewHeader creates a title bar for prompt.
func NewHeader(theme *styles.Theme, prompt Prompt) *Header {
	return &Header{
		Prompt: prompt,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// controlSpans returns the [start, end) columns of each control.
func (h *Header) controlSpans() [3][2]int {
	w := util.StringWidth(controlDot)
	var spans [3][2]int
	x := 1 // title bar left padding
	for i := range spans {
		spans[i] = [2]int{x, x + w}
		x += w + 1
	}
	return spans
}

// ControlAt returns the control under column x of the title bar.
func (h *Header) ControlAt(x int) Control {
	for i, span := range h.controlSpans() {
		if x >= span[0] && x < span[1] {
			return Control(i + 1)
		}
	}
	return ControlNone
}

func (h *Header) stateLabel() string {
	switch {
	case h.Minimized:
		return "[minimized]"
	case h.Maximized:
		return "[maximized]"
	}
	return ""
}

// View renders the title bar as a single line.
func (h *Header) View() string {
	t := h.theme
	width := h.Width
	if width < 20 {
		width = 20
	}
	inner := width - 2

	controls := t.ControlClose.Render(controlDot) + t.TitleBar.UnsetPadding().Render(" ") +
		t.ControlMinimize.Render(controlDot) + t.TitleBar.UnsetPadding().Render(" ") +
		t.ControlMaximize.Render(controlDot)
	state := t.TitleText.Render(h.stateLabel())

	title := h.Prompt.String()
	if width < 40 {
		title = narrowTitle
	}
	middle := inner - 2*maxInt(lipgloss.Width(controls), lipgloss.Width(state))
	if middle < 1 {
		middle = 1
	}
	titleCell := t.TitleText.
		Width(middle).
		Align(lipgloss.Center).
		Render(util.TruncateWidth(title, middle))

	line := controls + titleCell
	if pad := inner - lipgloss.Width(line) - lipgloss.Width(state); pad > 0 {
		line += t.TitleBar.UnsetPadding().Render(strings.Repeat(" ", pad))
	}
	line += state

	return t.TitleBar.Width(width).MaxWidth(width).Render(line)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
