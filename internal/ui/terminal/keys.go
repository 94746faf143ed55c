// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the terminal display.
type KeyMap struct {
	Submit     key.Binding
	RecallPrev key.Binding
	RecallNext key.Binding
	Complete   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	FocusBar   key.Binding
	BarPrev    key.Binding
	BarNext    key.Binding
	BarRun     key.Binding
	BarLeave   key.Binding
	Minimize   key.Binding
	Maximize   key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "run"),
		),
		RecallPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		RecallNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "complete"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		FocusBar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "quick bar"),
		),
		BarPrev: key.NewBinding(
			key.WithKeys("left", "shift+tab", "h"),
			key.WithHelp("←", "previous"),
		),
		BarNext: key.NewBinding(
			key.WithKeys("right", "tab", "l"),
			key.WithHelp("→", "next"),
		),
		BarRun: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("Enter", "run"),
		),
		BarLeave: key.NewBinding(
			key.WithKeys("esc", "ctrl+b"),
			key.WithHelp("Esc", "back to prompt"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "minimize"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "maximize"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("ctrl+_", "ctrl+/"),
			key.WithHelp("C-/", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Complete, k.RecallPrev, k.FocusBar, k.ToggleHelp, k.Quit}
}

// FullHelp returns the bindings shown when the footer is expanded.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Prompt
		{k.Submit, k.Complete, k.RecallPrev, k.RecallNext},
		// Scrollback
		{k.PageUp, k.PageDown},
		// Quick bar
		{k.FocusBar, k.BarPrev, k.BarNext, k.BarLeave},
		// Window
		{k.Minimize, k.Maximize, k.Quit},
	}
}
