// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render defines the display-neutral output produced by command handlers.
//
// A Block is a small tree of nodes (headings, paragraphs, tags, cards, ...).
// Handlers build blocks from the content catalog; display surfaces decide how
// to draw them. Blocks hold no styling and no terminal escape codes, so two
// blocks built from the same inputs compare equal with reflect.DeepEqual.
//
// # Node Types
//
//   - Heading, Paragraph: single lines of text
//   - Fields: label/value pairs
//   - Tags, Bullets, Numbered: lists
//   - Bars: labelled percentages (skill levels)
//   - Section, Card: containers with nested nodes
//   - Grid: fixed-column item layout
//   - Markdown: Markdown source rendered by the surface
package render
