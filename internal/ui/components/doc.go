// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the drawing pieces of the termfolio display.

# Components

Header (header.go) - Window title bar with close/minimize/maximize controls
and the prompt as title. ControlAt hit-tests mouse clicks.

QuickBar (quickbar.go) - Wrapping row of command buttons. Keyboard
selection when focused, ButtonAt for mouse clicks.

Scrollback (viewport.go) - Bubbles viewport over the rendered session
entries. It records the first line of each entry so a quick command can
scroll its own output to the top.

BlockRenderer (block.go) - Draws render.Block trees with the theme.
Markdown nodes go through MarkdownRenderer (glamour).

Highlighter (codeblock.go) - Chroma syntax highlighting for the YAML or
JSON catalog dump.
*/
package components
