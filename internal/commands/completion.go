// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strings"

// =============================================================================
// COMPLETER
// =============================================================================

// Completer completes command names from a registry.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer over the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Matches returns every command name starting with the lower-cased partial,
// in registry order.
func (c *Completer) Matches(partial string) []string {
	partial = strings.ToLower(partial)
	var out []string
	for _, name := range c.registry.Names() {
		if strings.HasPrefix(name, partial) {
			out = append(out, name)
		}
	}
	return out
}

// Autocomplete returns the only command name starting with partial.
// With zero or several matches it returns false; it never cycles through
// candidates.
func (c *Completer) Autocomplete(partial string) (string, bool) {
	matches := c.Matches(partial)
	if len(matches) != 1 {
		return "", false
	}
	return matches[0], true
}
