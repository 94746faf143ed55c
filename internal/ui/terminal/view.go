// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// View renders the window centered in the terminal with the key help below.
// Narrow terminals drop the scroll position from the footer.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	m.header.Minimized = m.interp.Minimized()
	m.header.Maximized = m.interp.Maximized()

	parts := []string{m.header.View()}
	if !m.interp.Minimized() {
		parts = append(parts,
			m.quickBar.View(),
			m.scrollback.View(),
			m.input.View(),
		)
	}

	inner := m.windowWidth() - 2
	window := m.theme.Window.
		Width(inner).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	footer := m.help.View(m.keys)
	narrow := m.theme.GetLayoutMode() == styles.LayoutNarrow
	if pos := m.scrollback.ScrollPosition(); pos != "" && !m.interp.Minimized() && !narrow {
		footer += "  " + m.theme.Muted.Render(pos)
	}

	return indent(window, m.windowLeft()) + "\n" + indent(footer, m.windowLeft())
}

// indent shifts every line of s right by n columns.
func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
