// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// Highlighter colors source documents (the catalog dump) for a terminal.
type Highlighter struct {
	formatter string
	style     string
}

// NewHighlighter returns a highlighter for the given color profile and
// background. An Ascii profile disables highlighting.
func NewHighlighter(profile termenv.Profile, dark bool) *Highlighter {
	h := &Highlighter{style: "github"}
	if dark {
		h.style = "monokai"
	}
	switch profile {
	case termenv.TrueColor:
		h.formatter = "terminal16m"
	case termenv.ANSI256:
		h.formatter = "terminal256"
	case termenv.ANSI:
		h.formatter = "terminal16"
	}
	return h
}

// Enabled reports whether Highlight adds escape sequences.
func (h *Highlighter) Enabled() bool {
	return h.formatter != ""
}

// Highlight returns code with syntax highlighting for language ("yaml",
// "json", ...). The code is returned unchanged when highlighting is
// disabled or fails.
func (h *Highlighter) Highlight(code, language string) string {
	if !h.Enabled() {
		return code
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(h.style)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get(h.formatter)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
