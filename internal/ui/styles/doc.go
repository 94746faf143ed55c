// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the color palette and Theme for the termfolio display.

All colors are Lip Gloss AdaptiveColor values. NewTheme picks the light or dark
variant from the configured mode ("dark", "light", or "auto", which asks the
terminal through termenv).

	theme := styles.NewTheme(styles.ModeAuto)
	title := theme.BlockTitle.Render("Technical Skills")

RenderSuccess, RenderError, RenderWarning and RenderInfo prefix a message
with an ASCII indicator so status is readable without color.
*/
package styles
