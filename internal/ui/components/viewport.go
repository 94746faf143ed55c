// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/session"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// SCROLLBACK VIEWPORT - Scrollable entry list with per-entry offsets
// =============================================================================

const wheelLines = 3

// Scrollback shows the session entries in a scrollable viewport and knows
// the first line of every entry, so it can scroll an entry to the top.
type Scrollback struct {
	viewport   viewport.Model
	renderer   *BlockRenderer
	prompt     Prompt
	theme      *styles.Theme
	width      int
	height     int
	ready      bool
	autoScroll bool

	lines   int
	offsets map[uint64]int
}

// NewScrollback creates a scrollback for prompt.
func NewScrollback(theme *styles.Theme, renderer *BlockRenderer, prompt Prompt) *Scrollback {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()

	return &Scrollback{
		viewport:   vp,
		renderer:   renderer,
		prompt:     prompt,
		theme:      theme,
		width:      80,
		height:     20,
		autoScroll: true,
		offsets:    make(map[uint64]int),
	}
}

// SetSize updates the viewport dimensions. Callers re-send the entries
// afterwards so they are wrapped to the new width.
func (s *Scrollback) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.Width = width
	s.viewport.Height = height
	s.renderer.SetWidth(width)
	s.ready = true
}

// SetEntries re-renders the scrollback. With auto-scroll on, the view
// follows the bottom.
func (s *Scrollback) SetEntries(entries []*session.Entry) {
	var sb strings.Builder
	s.offsets = make(map[uint64]int, len(entries))
	line := 0
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n\n")
			line += 2
		}
		s.offsets[e.ID] = line
		text := s.renderEntry(e)
		sb.WriteString(text)
		line += strings.Count(text, "\n")
	}
	s.lines = line + 1
	if len(entries) == 0 {
		s.lines = 0
	}

	s.viewport.SetContent(sb.String())
	if s.autoScroll {
		s.viewport.GotoBottom()
	}
}

func (s *Scrollback) renderEntry(e *session.Entry) string {
	var parts []string
	if e.HasCommand {
		parts = append(parts, s.prompt.Render(s.theme)+" "+s.theme.Command.Render(e.Command))
	}
	if e.Output != nil {
		parts = append(parts, s.renderer.Render(e.Output))
	}
	// Width wraps any line the renderer left long, so line counts match
	// what the viewport shows.
	return lipgloss.NewStyle().Width(s.width).Render(strings.Join(parts, "\n"))
}

// EntryOffset returns the first content line of entry id.
func (s *Scrollback) EntryOffset(id uint64) (int, bool) {
	off, ok := s.offsets[id]
	return off, ok
}

// ScrollToEntry puts the first line of entry id at the top of the view.
func (s *Scrollback) ScrollToEntry(id uint64) bool {
	off, ok := s.offsets[id]
	if !ok {
		return false
	}
	s.viewport.SetYOffset(off)
	s.autoScroll = s.viewport.AtBottom()
	return true
}

// ScrollToBottom scrolls to the bottom and follows new content.
func (s *Scrollback) ScrollToBottom() {
	s.viewport.GotoBottom()
	s.autoScroll = true
}

// ScrollToTop scrolls to the top.
func (s *Scrollback) ScrollToTop() {
	s.viewport.GotoTop()
	s.autoScroll = false
}

// ScrollUp scrolls up by n lines.
func (s *Scrollback) ScrollUp(n int) {
	s.viewport.LineUp(n)
	s.autoScroll = false
}

// ScrollDown scrolls down by n lines. Reaching the bottom turns
// auto-scroll back on.
func (s *Scrollback) ScrollDown(n int) {
	s.viewport.LineDown(n)
	s.autoScroll = s.viewport.AtBottom()
}

// PageUp scrolls up by one page.
func (s *Scrollback) PageUp() {
	s.ScrollUp(s.height)
}

// PageDown scrolls down by one page.
func (s *Scrollback) PageDown() {
	s.ScrollDown(s.height)
}

// YOffset returns the first visible line.
func (s *Scrollback) YOffset() int {
	return s.viewport.YOffset
}

// TotalLines returns the number of content lines.
func (s *Scrollback) TotalLines() int {
	return s.lines
}

// AtTop returns true if the viewport is at the top.
func (s *Scrollback) AtTop() bool {
	return s.viewport.AtTop()
}

// AtBottom returns true if the viewport is at the bottom.
func (s *Scrollback) AtBottom() bool {
	return s.viewport.AtBottom()
}

// Update handles mouse wheel scrolling.
func (s *Scrollback) Update(msg tea.Msg) (*Scrollback, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		switch msg.Type {
		case tea.MouseWheelUp:
			s.ScrollUp(wheelLines)
		case tea.MouseWheelDown:
			s.ScrollDown(wheelLines)
		}
	}
	return s, nil
}

// View renders the visible lines.
func (s *Scrollback) View() string {
	if !s.ready {
		return ""
	}
	return s.viewport.View()
}

// ScrollPosition returns a short position label such as "12/40", or ""
// when everything fits.
func (s *Scrollback) ScrollPosition() string {
	if s.lines <= s.height {
		return ""
	}
	return fmt.Sprintf("%d/%d", s.viewport.YOffset+1, s.lines-s.height+1)
}
