// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strings"

	"github.com/jeranaias/termfolio/internal/util"
)

const plainIndent = "  "

func writePlain(sb *strings.Builder, n Node, indent string) {
	switch v := n.(type) {
	case Heading:
		sb.WriteString(indent + v.Text + "\n")

	case Paragraph:
		sb.WriteString(indent + v.Text + "\n")

	case Fields:
		sep := v.Separator
		if sep == "" {
			sep = ": "
		}
		for _, f := range v.Items {
			line := f.Value
			if f.Label != "" {
				line = f.Label + sep + f.Value
			}
			if f.Icon != "" {
				line = f.Icon + " " + line
			}
			if f.Link != "" && f.Link != f.Value {
				line += " <" + f.Link + ">"
			}
			sb.WriteString(indent + line + "\n")
		}

	case Tags:
		if len(v.Items) > 0 {
			sb.WriteString(indent + "[" + strings.Join(v.Items, "] [") + "]\n")
		}

	case Bullets:
		for _, item := range v.Items {
			sb.WriteString(indent + "- " + item + "\n")
		}

	case Numbered:
		width := len(fmt.Sprint(len(v.Items)))
		for i, item := range v.Items {
			sb.WriteString(fmt.Sprintf("%s%*d  %s\n", indent, width, i+1, item))
		}

	case Bars:
		labelWidth := 0
		for _, b := range v.Items {
			if w := util.StringWidth(b.Label); w > labelWidth {
				labelWidth = w
			}
		}
		for _, b := range v.Items {
			sb.WriteString(fmt.Sprintf("%s%s %s %3d%%\n", indent, util.PadRight(b.Label, labelWidth), PlainBar(b.Percent, 20), b.Percent))
		}

	case Section:
		sb.WriteString(indent + v.Title + "\n")
		for _, child := range v.Nodes {
			writePlain(sb, child, indent+plainIndent)
		}

	case Card:
		title := v.Title
		if v.Badge != "" {
			title += " (" + v.Badge + ")"
		}
		sb.WriteString(indent + title + "\n")
		if v.Subtitle != "" {
			sb.WriteString(indent + plainIndent + v.Subtitle + "\n")
		}
		for _, m := range v.Meta {
			sb.WriteString(indent + plainIndent + m + "\n")
		}
		for _, l := range v.Links {
			sb.WriteString(indent + plainIndent + l.Label + ": " + l.Target + "\n")
		}
		for _, child := range v.Nodes {
			writePlain(sb, child, indent+plainIndent)
		}

	case Grid:
		for _, row := range GridRows(v.Items, v.Columns) {
			sb.WriteString(indent + strings.TrimRight(strings.Join(row, "  "), " ") + "\n")
		}

	case Markdown:
		for _, line := range strings.Split(strings.TrimSpace(v.Source), "\n") {
			sb.WriteString(indent + line + "\n")
		}
	}
}

// GridRows splits items into rows of cols cells, padding each cell to the
// widest item so columns line up.
func GridRows(items []string, cols int) [][]string {
	if cols <= 0 {
		cols = 1
	}
	width := 0
	for _, item := range items {
		if w := util.StringWidth(item); w > width {
			width = w
		}
	}
	var rows [][]string
	for i := 0; i < len(items); i += cols {
		end := i + cols
		if end > len(items) {
			end = len(items)
		}
		row := make([]string, 0, end-i)
		for _, item := range items[i:end] {
			row = append(row, util.PadRight(item, width))
		}
		rows = append(rows, row)
	}
	return rows
}

// PlainBar draws a percentage as a fixed-width bar of block characters.
func PlainBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
