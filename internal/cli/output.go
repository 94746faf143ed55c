// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/jeranaias/termfolio/internal/render"
	"github.com/jeranaias/termfolio/internal/session"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// Printer writes scrollback entries to a stream, styled through the block
// renderer or as plain text.
type Printer struct {
	w        io.Writer
	renderer *components.BlockRenderer
	theme    *styles.Theme
	prompt   components.Prompt
	echo     bool
}

// NewPrinter returns a plain-text printer.
func NewPrinter(w io.Writer, prompt components.Prompt) *Printer {
	return &Printer{w: w, prompt: prompt}
}

// NewStyledPrinter returns a printer that draws blocks with theme at width.
func NewStyledPrinter(w io.Writer, prompt components.Prompt, theme *styles.Theme, width int) *Printer {
	r := components.NewBlockRenderer(theme)
	r.SetWidth(width)
	return &Printer{w: w, prompt: prompt, renderer: r, theme: theme}
}

// PrinterFor picks a styled printer when stdout takes colors.
func (a *App) PrinterFor(w io.Writer) *Printer {
	if ColorsEnabled() {
		return NewStyledPrinter(w, a.Prompt(), a.Theme(), GetTerminalWidth())
	}
	return NewPrinter(w, a.Prompt())
}

// EchoCommands makes Entry print the prompt line before each output.
func (p *Printer) EchoCommands(on bool) {
	p.echo = on
}

// Styled reports whether output carries escape sequences.
func (p *Printer) Styled() bool {
	return p.renderer != nil
}

// Entry prints one scrollback entry. Empty input prints nothing unless
// commands are echoed.
func (p *Printer) Entry(e *session.Entry) {
	if e == nil {
		return
	}
	if p.echo && e.HasCommand {
		prompt := p.prompt.String()
		if p.Styled() {
			prompt = p.prompt.Render(p.theme)
		}
		fmt.Fprintf(p.w, "%s %s\n", prompt, e.Command)
	}
	if e.Output == nil {
		return
	}
	fmt.Fprintln(p.w, p.Block(e.Output))
	if p.echo {
		fmt.Fprintln(p.w)
	}
}

// Block renders one output block.
func (p *Printer) Block(b *render.Block) string {
	if p.Styled() {
		return p.renderer.Render(b)
	}
	return b.PlainText()
}

// Clear clears the screen on a styled stream. Plain streams are left alone.
func (p *Printer) Clear() {
	if !p.Styled() {
		return
	}
	termenv.NewOutput(p.w).ClearScreen()
}
