// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import "strings"

// =============================================================================
// BLOCK
// =============================================================================

// Tone selects the overall presentation of a block.
type Tone int

const (
	ToneNormal Tone = iota
	ToneError
	ToneAccent
)

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case ToneError:
		return "error"
	case ToneAccent:
		return "accent"
	default:
		return "normal"
	}
}

// Block is one renderable unit of command output.
type Block struct {
	// Title is drawn as the block heading; empty means no heading.
	Title string

	// Tone is ToneError for error output.
	Tone Tone

	// Nodes are drawn in order below the title.
	Nodes []Node
}

// New creates a block with the given title and nodes.
func New(title string, nodes ...Node) *Block {
	return &Block{Title: title, Nodes: nodes}
}

// Text creates an untitled block holding a single paragraph.
func Text(text string, tone Tone) *Block {
	return &Block{Nodes: []Node{Paragraph{Text: text, Tone: tone}}}
}

// Error creates an error block holding a single message.
func Error(message string) *Block {
	return &Block{Tone: ToneError, Nodes: []Node{Paragraph{Text: message, Tone: ToneError}}}
}

// IsError reports whether the block is an error block.
func (b *Block) IsError() bool {
	return b != nil && b.Tone == ToneError
}

// Append adds nodes to the block and returns it.
func (b *Block) Append(nodes ...Node) *Block {
	b.Nodes = append(b.Nodes, nodes...)
	return b
}

// PlainText flattens the block into unstyled text, one node per line group.
// It is used for logs, tests and non-terminal output.
func (b *Block) PlainText() string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	if b.Title != "" {
		sb.WriteString(b.Title)
		sb.WriteString("\n")
	}
	for _, n := range b.Nodes {
		writePlain(&sb, n, "")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// =============================================================================
// NODES
// =============================================================================

// Node is one element of a block. The set of node types is closed.
type Node interface {
	node()
}

// Heading is a sub-heading line.
type Heading struct {
	Text string
}

// Paragraph is a line or paragraph of prose.
type Paragraph struct {
	Text string
	Tone Tone
}

// Field is a single label/value pair.
type Field struct {
	Label string
	Value string
	// Link is an optional target shown next to the value.
	Link string
	// Icon is an optional glyph drawn before the label.
	Icon string
}

// Fields is a list of label/value pairs.
type Fields struct {
	Items []Field
	// Separator is drawn between label and value (": " when empty).
	Separator string
}

// Tags is a list of short chips drawn inline.
type Tags struct {
	Items []string
}

// Bullets is an unordered list.
type Bullets struct {
	Items []string
}

// Numbered is an ordered list, numbered from 1.
type Numbered struct {
	Items []string
}

// Bar is a labelled percentage.
type Bar struct {
	Label   string
	Percent int
}

// Bars is a list of labelled percentages.
type Bars struct {
	Items []Bar
}

// Section groups nodes under a sub-heading.
type Section struct {
	Title string
	Nodes []Node
}

// Link is a named external reference.
type Link struct {
	Label  string
	Target string
}

// Card is a bordered record (a project, a job, a paper).
type Card struct {
	Title    string
	Subtitle string
	// Badge is a short marker drawn next to the title (e.g. "Published").
	Badge string
	// Meta lines are drawn right-aligned or below the title.
	Meta  []string
	Links []Link
	Nodes []Node
}

// Grid lays out items in fixed columns.
type Grid struct {
	Items   []string
	Columns int
}

// Markdown is Markdown source drawn by a Markdown renderer where available.
type Markdown struct {
	Source string
}

func (Heading) node()   {}
func (Paragraph) node() {}
func (Fields) node()    {}
func (Tags) node()      {}
func (Bullets) node()   {}
func (Numbered) node()  {}
func (Bars) node()      {}
func (Section) node()   {}
func (Card) node()      {}
func (Grid) node()      {}
func (Markdown) node()  {}
