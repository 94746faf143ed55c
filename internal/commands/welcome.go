// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/render"
)

// WelcomeBlock builds the banner shown when a session starts.
func WelcomeBlock(cat *catalog.Catalog) *render.Block {
	p := cat.Personal
	profile := render.Fields{Items: nonEmptyFields(
		render.Field{Icon: "📍", Value: p.Location},
		render.Field{Icon: "📧", Value: p.Email},
		render.Field{Icon: "💻", Value: p.Bio},
	)}

	b := render.New("",
		render.Heading{Text: p.Name},
		render.Paragraph{Text: p.Title, Tone: render.ToneAccent},
		profile,
	)
	w := cat.Welcome
	for _, line := range nonEmpty(w.Greeting, w.Hint, w.Tip) {
		b.Append(render.Paragraph{Text: line})
	}
	return b
}

func nonEmptyFields(fields ...render.Field) []render.Field {
	var out []render.Field
	for _, f := range fields {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}
