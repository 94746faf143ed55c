// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the background the theme is drawn for.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode parses a theme name. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeDark:
		return ModeDark, nil
	case ModeLight:
		return ModeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q (want auto, dark or light)", s)
}

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	Mode         Mode
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// WINDOW STYLES
	// ==========================================================================

	Window          lipgloss.Style
	TitleBar        lipgloss.Style
	TitleText       lipgloss.Style
	ControlClose    lipgloss.Style
	ControlMinimize lipgloss.Style
	ControlMaximize lipgloss.Style

	// ==========================================================================
	// PROMPT AND INPUT STYLES
	// ==========================================================================

	PromptUser   lipgloss.Style
	PromptHost   lipgloss.Style
	PromptPath   lipgloss.Style
	PromptSymbol lipgloss.Style
	Command      lipgloss.Style
	Placeholder  lipgloss.Style

	// ==========================================================================
	// OUTPUT BLOCK STYLES
	// ==========================================================================

	BlockTitle   lipgloss.Style
	Heading      lipgloss.Style
	Paragraph    lipgloss.Style
	Accent       lipgloss.Style
	ErrorText    lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldValue   lipgloss.Style
	Tag          lipgloss.Style
	Bullet       lipgloss.Style
	Number       lipgloss.Style
	BarFilled    lipgloss.Style
	BarEmpty     lipgloss.Style
	BarPercent   lipgloss.Style
	SectionTitle lipgloss.Style
	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	CardSubtitle lipgloss.Style
	Badge        lipgloss.Style
	Meta         lipgloss.Style
	GridCell     lipgloss.Style
	Muted        lipgloss.Style

	// LinkStyle is underlined so links stand out without color.
	LinkStyle lipgloss.Style

	// ==========================================================================
	// QUICK BAR AND FOOTER STYLES
	// ==========================================================================

	QuickBar            lipgloss.Style
	QuickButton         lipgloss.Style
	QuickButtonSelected lipgloss.Style
	ShortcutKey         lipgloss.Style
	ShortcutDesc        lipgloss.Style
}

// NewTheme creates a new theme for mode with all styles configured.
func NewTheme(mode Mode) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		mode = ModeAuto
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Window chrome
	t.Window = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.TitleBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.TitleText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Bold(true)

	t.ControlClose = lipgloss.NewStyle().Foreground(ControlClose).Background(SurfaceDim)
	t.ControlMinimize = lipgloss.NewStyle().Foreground(ControlMinimize).Background(SurfaceDim)
	t.ControlMaximize = lipgloss.NewStyle().Foreground(ControlMaximize).Background(SurfaceDim)

	// Prompt
	t.PromptUser = lipgloss.NewStyle().Foreground(Green).Bold(true)
	t.PromptHost = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	t.PromptPath = lipgloss.NewStyle().Foreground(Purple)
	t.PromptSymbol = lipgloss.NewStyle().Foreground(TextSecondary)
	t.Command = lipgloss.NewStyle().Foreground(TextPrimary)
	t.Placeholder = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	// Output blocks
	t.BlockTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		MarginBottom(1)

	t.Heading = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	t.Paragraph = lipgloss.NewStyle().Foreground(TextPrimary)
	t.Accent = lipgloss.NewStyle().Foreground(Green).Bold(true)
	t.ErrorText = lipgloss.NewStyle().Foreground(Rose)
	t.FieldLabel = lipgloss.NewStyle().Foreground(Cyan)
	t.FieldValue = lipgloss.NewStyle().Foreground(TextPrimary)

	t.Tag = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 1)

	t.Bullet = lipgloss.NewStyle().Foreground(Green)
	t.Number = lipgloss.NewStyle().Foreground(Amber)
	t.BarFilled = lipgloss.NewStyle().Foreground(Green)
	t.BarEmpty = lipgloss.NewStyle().Foreground(OverlayDim)
	t.BarPercent = lipgloss.NewStyle().Foreground(TextSecondary)
	t.SectionTitle = lipgloss.NewStyle().Foreground(Amber).Bold(true)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.CardTitle = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	t.CardSubtitle = lipgloss.NewStyle().Foreground(TextSecondary).Italic(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Amber).
		Padding(0, 1)

	t.Meta = lipgloss.NewStyle().Foreground(TextMuted)
	t.GridCell = lipgloss.NewStyle().Foreground(Blue)
	t.Muted = lipgloss.NewStyle().Foreground(TextMuted)

	t.LinkStyle = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)

	// Quick bar and footer
	t.QuickBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.QuickButton = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(Overlay).
		Padding(0, 1)

	t.QuickButtonSelected = t.QuickButton.
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
