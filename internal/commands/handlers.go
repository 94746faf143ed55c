// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/render"
	"github.com/jeranaias/termfolio/internal/session"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Context is everything a handler may read. Handlers do not modify it.
type Context struct {
	Catalog  *catalog.Catalog
	Registry *Registry

	// Recall is the recall buffer including the line being dispatched.
	Recall session.RecallBuffer

	// Now is the dispatch time.
	Now time.Time

	// Home is the path printed by pwd.
	Home string
}

// DateLayout is the layout used by the date command.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// =============================================================================
// CONTENT COMMANDS
// =============================================================================

func handleHelp(ctx *Context, _ []string) *render.Block {
	fields := make([]render.Field, 0, ctx.Registry.Len())
	for _, cmd := range ctx.Registry.Entries() {
		fields = append(fields, render.Field{Label: cmd.Name, Value: helpDescription(cmd)})
	}
	return render.New("Available Commands:",
		render.Fields{Items: fields, Separator: " - "},
		render.Section{Title: "💡 Tips:", Nodes: []render.Node{render.Bullets{Items: []string{
			"Use arrow keys to navigate command history",
			"Type 'clear' to clear the terminal",
			"All commands are case-insensitive",
		}}}},
	)
}

func helpDescription(cmd Command) string {
	if cmd.Usage == "" {
		return cmd.Description
	}
	return fmt.Sprintf("%s (usage: %s)", cmd.Description, cmd.Usage)
}

func handleAbout(ctx *Context, _ []string) *render.Block {
	p := ctx.Catalog.Personal
	b := render.New("About Me",
		render.Paragraph{Text: p.Summary},
		render.Section{Title: "Personal Details:", Nodes: []render.Node{render.Fields{Items: []render.Field{
			{Label: "Name", Value: p.Name},
			{Label: "Location", Value: p.Location},
			{Label: "Phone", Value: p.Phone},
			{Label: "Email", Value: p.Email},
		}}}},
	)
	if len(p.Strengths) > 0 {
		b.Append(render.Section{Title: "Personal Strengths:", Nodes: []render.Node{render.Tags{Items: p.Strengths}}})
	}
	if len(p.Interests) > 0 {
		b.Append(render.Section{Title: "Interests & Hobbies:", Nodes: []render.Node{render.Bullets{Items: p.Interests}}})
	}
	return b
}

func handleSkills(ctx *Context, _ []string) *render.Block {
	b := render.New("Technical Skills")
	for _, cat := range ctx.Catalog.Skills {
		var node render.Node
		if cat.HasLevels() {
			bars := make([]render.Bar, 0, len(cat.Levels))
			for _, l := range cat.Levels {
				bars = append(bars, render.Bar{Label: l.Skill, Percent: l.Level})
			}
			node = render.Bars{Items: bars}
		} else {
			node = render.Tags{Items: cat.Tags}
		}
		b.Append(render.Section{Title: cat.Title() + ":", Nodes: []render.Node{node}})
	}
	return b
}

func handleProjects(ctx *Context, _ []string) *render.Block {
	b := render.New("Featured Projects")
	for _, p := range ctx.Catalog.Projects {
		card := render.Card{
			Title: p.Name,
			Nodes: []render.Node{
				render.Paragraph{Text: p.Description},
				render.Tags{Items: p.Technologies},
			},
		}
		if p.Links.Live != "" {
			card.Links = append(card.Links, render.Link{Label: "Live", Target: p.Links.Live})
		}
		if p.Links.GitHub != "" {
			card.Links = append(card.Links, render.Link{Label: "GitHub", Target: p.Links.GitHub})
		}
		if len(p.Features) > 0 {
			card.Nodes = append(card.Nodes, render.Section{Title: "Key Features:", Nodes: []render.Node{render.Bullets{Items: p.Features}}})
		}
		b.Append(card)
	}
	return b
}

func handleExperience(ctx *Context, _ []string) *render.Block {
	b := render.New("Professional Experience")
	for _, e := range ctx.Catalog.Experience {
		b.Append(render.Card{
			Title:    e.Position,
			Subtitle: e.Company,
			Meta:     nonEmpty(e.Location, e.Duration),
			Nodes: []render.Node{
				render.Bullets{Items: e.Responsibilities},
				render.Tags{Items: e.Technologies},
			},
		})
	}
	return b
}

func handleEducation(ctx *Context, _ []string) *render.Block {
	b := render.New("Educational Background")
	for _, e := range ctx.Catalog.Education {
		card := render.Card{
			Title:    e.Degree,
			Subtitle: e.Institution,
			Meta:     nonEmpty(e.Location, e.Duration, e.Grade),
		}
		if e.Field != "" {
			card.Nodes = []render.Node{render.Paragraph{Text: e.Field}}
		}
		b.Append(card)
	}
	return b
}

func handleAchievements(ctx *Context, _ []string) *render.Block {
	b := render.New("Achievements & Milestones")
	for _, a := range ctx.Catalog.Achievements {
		title := a.Title
		if a.Icon != "" {
			title = a.Icon + " " + a.Title
		}
		b.Append(render.Card{
			Title: title,
			Nodes: []render.Node{
				render.Paragraph{Text: a.Description},
				render.Tags{Items: a.Tags},
			},
		})
	}
	return b
}

func handleResearch(ctx *Context, _ []string) *render.Block {
	b := render.New("Research Publications")
	for _, p := range ctx.Catalog.Research {
		card := render.Card{
			Title:    p.Title,
			Badge:    "Published",
			Subtitle: "Published in: " + p.Journal,
			Nodes: []render.Node{
				render.Section{Title: "Abstract:", Nodes: []render.Node{render.Paragraph{Text: p.Abstract}}},
			},
		}
		if len(p.Contributions) > 0 {
			card.Nodes = append(card.Nodes, render.Section{Title: "Key Contributions:", Nodes: []render.Node{render.Bullets{Items: p.Contributions}}})
		}
		b.Append(card)
	}
	return b
}

func handleContact(ctx *Context, _ []string) *render.Block {
	fields := make([]render.Field, 0, len(ctx.Catalog.Contact))
	for _, c := range ctx.Catalog.Contact {
		fields = append(fields, render.Field{Label: c.Type, Value: c.Value, Link: c.Link, Icon: c.Icon})
	}
	b := render.New("Get In Touch")
	if ctx.Catalog.ContactBlurb != "" {
		b.Append(render.Paragraph{Text: ctx.Catalog.ContactBlurb})
	}
	return b.Append(render.Fields{Items: fields})
}

// =============================================================================
// SHELL-STYLE COMMANDS
// =============================================================================

func handleWhoami(ctx *Context, _ []string) *render.Block {
	p := ctx.Catalog.Personal
	return render.Text(p.Name+" - "+p.Title, render.ToneAccent)
}

func handlePwd(ctx *Context, _ []string) *render.Block {
	return render.Text(ctx.Home, render.ToneAccent)
}

func handleDate(ctx *Context, _ []string) *render.Block {
	return render.Text(ctx.Now.Format(DateLayout), render.ToneNormal)
}

func handleLs(_ *Context, _ []string) *render.Block {
	return render.New("", render.Grid{Items: ListingNames(), Columns: listingColumns})
}

func handleEcho(_ *Context, args []string) *render.Block {
	return render.Text(strings.Join(args, " "), render.ToneNormal)
}

func handleHistory(ctx *Context, _ []string) *render.Block {
	items := make([]string, len(ctx.Recall))
	copy(items, ctx.Recall)
	return render.New("", render.Numbered{Items: items})
}

func handleCat(ctx *Context, args []string) *render.Block {
	switch {
	case len(args) == 0:
		return render.Error("cat: missing file operand")
	case len(args) > 1:
		return render.Error(fmt.Sprintf("cat: extra operand '%s'", args[1]))
	}

	file, ok := lookupFile(args[0])
	if !ok {
		return render.Error(fmt.Sprintf("cat: %s: No such file or directory", args[0]))
	}
	return file(ctx)
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
