// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"

	"github.com/jeranaias/termfolio/internal/render"
)

// The portfolio directory is a fixed set of labels. Nothing here touches
// the real file system.

const listingColumns = 3

var listing = []string{
	"about.txt",
	"projects/",
	"skills.json",
	"experience.log",
	"education.txt",
	"achievements.md",
	"research/",
	"contact.txt",
	"README.md",
}

// ListingNames returns the names shown by ls, in order.
func ListingNames() []string {
	out := make([]string, len(listing))
	copy(out, listing)
	return out
}

type fileContent func(ctx *Context) *render.Block

// readable maps lower-case file names to their content. Directories and
// names outside this table are not readable.
var readable = map[string]fileContent{
	"about.txt":       func(ctx *Context) *render.Block { return handleAbout(ctx, nil) },
	"skills.json":     func(ctx *Context) *render.Block { return handleSkills(ctx, nil) },
	"experience.log":  func(ctx *Context) *render.Block { return handleExperience(ctx, nil) },
	"education.txt":   func(ctx *Context) *render.Block { return handleEducation(ctx, nil) },
	"achievements.md": func(ctx *Context) *render.Block { return handleAchievements(ctx, nil) },
	"contact.txt":     func(ctx *Context) *render.Block { return handleContact(ctx, nil) },
	"readme.md":       readmeContent,
}

func readmeContent(ctx *Context) *render.Block {
	return render.New("", render.Markdown{Source: ctx.Catalog.Readme.Markdown()})
}

func lookupFile(name string) (fileContent, bool) {
	f, ok := readable[strings.ToLower(name)]
	return f, ok
}

// ReadableFiles returns the names cat accepts, sorted as in ls.
func ReadableFiles() []string {
	var out []string
	for _, name := range listing {
		if _, ok := readable[strings.ToLower(name)]; ok {
			out = append(out, strings.ToLower(name))
		}
	}
	return out
}
