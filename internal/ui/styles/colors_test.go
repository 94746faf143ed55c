// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestPaletteHasBothVariants(t *testing.T) {
	colors := []struct {
		name        string
		light, dark string
	}{
		{"Green", Green.Light, Green.Dark},
		{"Blue", Blue.Light, Blue.Dark},
		{"Cyan", Cyan.Light, Cyan.Dark},
		{"Purple", Purple.Light, Purple.Dark},
		{"Amber", Amber.Light, Amber.Dark},
		{"Rose", Rose.Light, Rose.Dark},
		{"Surface", Surface.Light, Surface.Dark},
		{"TextPrimary", TextPrimary.Light, TextPrimary.Dark},
		{"ControlClose", ControlClose.Light, ControlClose.Dark},
		{"LinkColor", LinkColor.Light, LinkColor.Dark},
	}

	for _, c := range colors {
		if !strings.HasPrefix(c.light, "#") || !strings.HasPrefix(c.dark, "#") {
			t.Errorf("%s should define hex light and dark variants, got %q / %q", c.name, c.light, c.dark)
		}
	}
}

// =============================================================================
// STATUS RENDERING TESTS
// =============================================================================

func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name      string
		render    func(string) string
		indicator string
	}{
		{"success", RenderSuccess, StatusIndicators.Success},
		{"error", RenderError, StatusIndicators.Error},
		{"warning", RenderWarning, StatusIndicators.Warning},
		{"info", RenderInfo, StatusIndicators.Info},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.render("catalog is valid")
			if !strings.Contains(got, tc.indicator) {
				t.Errorf("output %q should contain indicator %q", got, tc.indicator)
			}
			if !strings.Contains(got, "catalog is valid") {
				t.Errorf("output %q should contain the message", got)
			}
		})
	}
}

func TestRenderStatus(t *testing.T) {
	if got := RenderStatus(true, "ok"); !strings.Contains(got, StatusIndicators.Success) {
		t.Errorf("RenderStatus(true) = %q", got)
	}
	if got := RenderStatus(false, "bad"); !strings.Contains(got, StatusIndicators.Error) {
		t.Errorf("RenderStatus(false) = %q", got)
	}
}

func TestStatusIndicatorsUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for _, ind := range []string{StatusIndicators.Success, StatusIndicators.Error, StatusIndicators.Warning, StatusIndicators.Info} {
		if seen[ind] {
			t.Errorf("indicator %q is used twice", ind)
		}
		seen[ind] = true
	}
}
