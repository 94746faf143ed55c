// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// MarkdownRenderer renders Markdown with glamour, keeping one renderer per
// wrap width. It falls back to the raw source if glamour fails.
type MarkdownRenderer struct {
	mu        sync.Mutex
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer picks the glamour style matching theme.
func NewMarkdownRenderer(theme *styles.Theme) *MarkdownRenderer {
	style := "light"
	switch {
	case theme.ColorProfile == termenv.Ascii:
		style = "notty"
	case theme.IsDark:
		style = "dark"
	}
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

func (m *MarkdownRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[width] = r
	return r, nil
}

// Render renders source wrapped to width columns.
func (m *MarkdownRenderer) Render(source string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := m.renderer(width)
	if err != nil {
		return strings.TrimSpace(source)
	}
	out, err := r.Render(source)
	if err != nil {
		return strings.TrimSpace(source)
	}
	return strings.Trim(out, "\n")
}
