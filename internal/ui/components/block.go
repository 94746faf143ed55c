// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/render"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// BLOCK RENDERER
// =============================================================================

const (
	sectionIndent = 2
	maxBarWidth   = 30
	minBarWidth   = 10
)

// BlockRenderer draws render.Block values with the theme.
type BlockRenderer struct {
	theme    *styles.Theme
	markdown *MarkdownRenderer
	width    int
}

// NewBlockRenderer creates a renderer for theme.
func NewBlockRenderer(theme *styles.Theme) *BlockRenderer {
	return &BlockRenderer{
		theme:    theme,
		markdown: NewMarkdownRenderer(theme),
		width:    80,
	}
}

// SetWidth sets the column budget for rendered blocks.
func (r *BlockRenderer) SetWidth(width int) {
	r.width = width
}

// Width returns the column budget.
func (r *BlockRenderer) Width() int {
	return r.width
}

// Render draws b. A nil block renders as the empty string.
func (r *BlockRenderer) Render(b *render.Block) string {
	if b == nil {
		return ""
	}
	var parts []string
	if b.Title != "" {
		parts = append(parts, r.theme.BlockTitle.Render(b.Title))
	}
	for _, n := range b.Nodes {
		parts = append(parts, r.renderNode(n, r.width, b.Tone))
	}
	return strings.Join(parts, "\n")
}

func (r *BlockRenderer) renderNode(n render.Node, width int, tone render.Tone) string {
	t := r.theme
	if width < 10 {
		width = 10
	}

	switch v := n.(type) {
	case render.Heading:
		return t.Heading.Width(width).Render(v.Text)

	case render.Paragraph:
		return r.toneStyle(v.Tone, tone).Width(width).Render(v.Text)

	case render.Fields:
		return r.renderFields(v, width)

	case render.Tags:
		return r.renderTags(v.Items, width)

	case render.Bullets:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = hanging(t.Bullet.Render("• "), t.Paragraph, item, width)
		}
		return strings.Join(lines, "\n")

	case render.Numbered:
		digits := len(fmt.Sprint(len(v.Items)))
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			num := t.Number.Render(fmt.Sprintf("%*d  ", digits, i+1))
			lines[i] = hanging(num, t.Paragraph, item, width)
		}
		return strings.Join(lines, "\n")

	case render.Bars:
		return r.renderBars(v.Items, width)

	case render.Section:
		parts := []string{t.SectionTitle.Render(v.Title)}
		for _, child := range v.Nodes {
			parts = append(parts, r.renderNode(child, width-sectionIndent, tone))
		}
		body := strings.Join(parts[1:], "\n")
		if body == "" {
			return parts[0]
		}
		return parts[0] + "\n" + lipgloss.NewStyle().PaddingLeft(sectionIndent).Render(body)

	case render.Card:
		return r.renderCard(v, width, tone)

	case render.Grid:
		return r.renderGrid(v, width)

	case render.Markdown:
		return r.markdown.Render(v.Source, width)
	}
	return ""
}

func (r *BlockRenderer) toneStyle(node, block render.Tone) lipgloss.Style {
	if node == render.ToneNormal {
		node = block
	}
	switch node {
	case render.ToneError:
		return r.theme.ErrorText
	case render.ToneAccent:
		return r.theme.Accent
	}
	return r.theme.Paragraph
}

// hanging renders text wrapped to width with every line after the first
// indented under prefix.
func hanging(prefix string, style lipgloss.Style, text string, width int) string {
	pw := lipgloss.Width(prefix)
	body := style.Width(maxInt(width-pw, 1)).Render(text)
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, body)
}

func (r *BlockRenderer) renderFields(f render.Fields, width int) string {
	t := r.theme
	sep := f.Separator
	if sep == "" {
		sep = ": "
	}
	lines := make([]string, 0, len(f.Items))
	for _, item := range f.Items {
		var sb strings.Builder
		if item.Icon != "" {
			sb.WriteString(item.Icon + " ")
		}
		if item.Label != "" {
			sb.WriteString(t.FieldLabel.Render(item.Label + sep))
		}
		if item.Link != "" {
			sb.WriteString(t.LinkStyle.Render(item.Value))
		} else {
			sb.WriteString(t.FieldValue.Render(item.Value))
		}
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(sb.String()))
	}
	return strings.Join(lines, "\n")
}

func (r *BlockRenderer) renderTags(items []string, width int) string {
	var lines []string
	var line string
	for _, item := range items {
		chip := r.theme.Tag.Render(item)
		switch {
		case line == "":
			line = chip
		case lipgloss.Width(line)+1+lipgloss.Width(chip) > width:
			lines = append(lines, line)
			line = chip
		default:
			line += " " + chip
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (r *BlockRenderer) renderBars(items []render.Bar, width int) string {
	t := r.theme
	labelWidth := 0
	for _, b := range items {
		labelWidth = maxInt(labelWidth, util.StringWidth(b.Label))
	}
	barWidth := width - labelWidth - 6
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	lines := make([]string, len(items))
	for i, b := range items {
		bar := render.PlainBar(b.Percent, barWidth)
		filled := strings.Count(bar, "█")
		lines[i] = t.FieldValue.Render(util.PadRight(b.Label, labelWidth)) + " " +
			t.BarFilled.Render(strings.Repeat("█", filled)) +
			t.BarEmpty.Render(strings.Repeat("░", barWidth-filled)) + " " +
			t.BarPercent.Render(fmt.Sprintf("%3d%%", b.Percent))
	}
	return strings.Join(lines, "\n")
}

func (r *BlockRenderer) renderCard(c render.Card, width int, tone render.Tone) string {
	t := r.theme
	// border (2) + padding (2)
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	title := t.CardTitle.Render(c.Title)
	if c.Badge != "" {
		title += " " + t.Badge.Render(c.Badge)
	}
	parts := []string{lipgloss.NewStyle().Width(inner).Render(title)}
	if c.Subtitle != "" {
		parts = append(parts, t.CardSubtitle.Width(inner).Render(c.Subtitle))
	}
	for _, m := range c.Meta {
		parts = append(parts, t.Meta.Width(inner).Render(m))
	}
	if len(c.Links) > 0 {
		links := make([]string, len(c.Links))
		for i, l := range c.Links {
			links[i] = t.FieldLabel.Render(l.Label+": ") + t.LinkStyle.Render(l.Target)
		}
		parts = append(parts, lipgloss.NewStyle().Width(inner).Render(strings.Join(links, "\n")))
	}
	for _, child := range c.Nodes {
		parts = append(parts, r.renderNode(child, inner, tone))
	}

	return t.Card.Width(width - 2).Render(strings.Join(parts, "\n"))
}

func (r *BlockRenderer) renderGrid(g render.Grid, width int) string {
	cellWidth := 0
	for _, item := range g.Items {
		cellWidth = maxInt(cellWidth, util.StringWidth(item))
	}
	cols := g.Columns
	if fit := (width + 2) / (cellWidth + 2); cols > fit {
		cols = maxInt(fit, 1)
	}

	rows := render.GridRows(g.Items, cols)
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = r.theme.GridCell.Render(cell)
		}
		lines[i] = strings.Join(cells, "  ")
	}
	return strings.Join(lines, "\n")
}
