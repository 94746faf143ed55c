// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strings"

// ParseResult is a normalized input line.
type ParseResult struct {
	// Raw is the line exactly as submitted.
	Raw string

	// Trimmed is Raw without surrounding whitespace, original case.
	Trimmed string

	// Name is the lower-cased first token; empty for blank input.
	Name string

	// Args are the remaining lower-cased tokens.
	Args []string
}

// Empty reports whether the line had no tokens.
func (p ParseResult) Empty() bool {
	return p.Name == ""
}

// Parse normalizes a submitted line. The whole line is lower-cased, so
// arguments are case-insensitive too, and runs of whitespace collapse.
func Parse(raw string) ParseResult {
	trimmed := strings.TrimSpace(raw)
	res := ParseResult{Raw: raw, Trimmed: trimmed}

	tokens := strings.Fields(strings.ToLower(trimmed))
	if len(tokens) == 0 {
		return res
	}
	res.Name = tokens[0]
	if len(tokens) > 1 {
		res.Args = tokens[1:]
	}
	return res
}
