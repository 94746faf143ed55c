// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"Dark", ModeDark, false},
		{" light ", ModeLight, false},
		{"neon", "", true},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewThemeForcedModes(t *testing.T) {
	dark := NewTheme(ModeDark)
	if !dark.IsDark || dark.Mode != ModeDark {
		t.Errorf("dark theme: IsDark=%v Mode=%q", dark.IsDark, dark.Mode)
	}

	light := NewTheme(ModeLight)
	if light.IsDark || light.Mode != ModeLight {
		t.Errorf("light theme: IsDark=%v Mode=%q", light.IsDark, light.Mode)
	}

	if got := NewTheme("bogus").Mode; got != ModeAuto {
		t.Errorf("unknown mode should fall back to auto, got %q", got)
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme(ModeDark)

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Window", theme.Window},
		{"TitleBar", theme.TitleBar},
		{"PromptUser", theme.PromptUser},
		{"BlockTitle", theme.BlockTitle},
		{"ErrorText", theme.ErrorText},
		{"Card", theme.Card},
		{"Tag", theme.Tag},
		{"QuickButton", theme.QuickButton},
		{"QuickButtonSelected", theme.QuickButtonSelected},
	}

	for _, s := range styles {
		if rendered := s.style.Render("test"); rendered == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

// =============================================================================
// THEME SIZE TESTS
// =============================================================================

func TestThemeGetLayoutMode(t *testing.T) {
	theme := NewTheme(ModeDark)

	tests := []struct {
		width int
		want  LayoutMode
	}{
		{0, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	for _, tc := range tests {
		theme.SetSize(tc.width, 24)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("width %d: GetLayoutMode() = %v, want %v", tc.width, got, tc.want)
		}
	}
}
