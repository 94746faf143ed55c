// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "github.com/jeranaias/termfolio/internal/render"

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command is one entry of the command set.
type Command struct {
	// Name is the exact lower-case command name (e.g., "about").
	Name string

	// Description is shown by help.
	Description string

	// Usage shows argument syntax when the command takes arguments.
	Usage string

	// Icon is a short glyph shown on the quick command bar.
	Icon string

	// QuickBar commands get a button on the display surface.
	QuickBar bool

	handler handlerFunc
}

// handlerFunc builds the output of a command. It never fails; problems are
// reported as an error-tone block.
type handlerFunc func(ctx *Context, args []string) *render.Block

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry is the fixed, ordered set of commands. Iteration order is the
// order help lists them in.
type Registry struct {
	commands []*Command
	byName   map[string]*Command
}

// NewRegistry creates the registry holding every built-in command.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Command)}
	r.registerBuiltins()
	return r
}

func (r *Registry) register(cmd *Command) {
	if _, dup := r.byName[cmd.Name]; dup {
		panic("commands: duplicate command " + cmd.Name)
	}
	r.commands = append(r.commands, cmd)
	r.byName[cmd.Name] = cmd
}

// Get returns the command with the exact name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	if !ok {
		return Command{}, false
	}
	return *cmd, true
}

// Entries returns every command in display order.
func (r *Registry) Entries() []Command {
	out := make([]Command, len(r.commands))
	for i, cmd := range r.commands {
		out[i] = *cmd
	}
	return out
}

// Names returns every command name in display order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		out[i] = cmd.Name
	}
	return out
}

// QuickCommands returns the names that get a quick bar button, in order.
func (r *Registry) QuickCommands() []string {
	var out []string
	for _, cmd := range r.commands {
		if cmd.QuickBar {
			out = append(out, cmd.Name)
		}
	}
	return out
}

// Len returns the number of commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

func (r *Registry) lookup(name string) *Command {
	return r.byName[name]
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

// CmdClear is handled by the interpreter itself since it edits the session.
const CmdClear = "clear"

func (r *Registry) registerBuiltins() {
	r.register(&Command{Name: "help", Description: "Show all available commands", Icon: "?", QuickBar: true, handler: handleHelp})
	r.register(&Command{Name: "about", Description: "Learn more about me and my background", Icon: "👤", QuickBar: true, handler: handleAbout})
	r.register(&Command{Name: "skills", Description: "View my technical skills and expertise", Icon: "</>", QuickBar: true, handler: handleSkills})
	r.register(&Command{Name: "projects", Description: "Explore my featured projects and work", Icon: "📁", QuickBar: true, handler: handleProjects})
	r.register(&Command{Name: "experience", Description: "Check out my professional experience", Icon: "💼", QuickBar: true, handler: handleExperience})
	r.register(&Command{Name: "education", Description: "View my educational background", Icon: "🎓", QuickBar: true, handler: handleEducation})
	r.register(&Command{Name: "achievements", Description: "See my achievements and milestones", Icon: "🏆", QuickBar: true, handler: handleAchievements})
	r.register(&Command{Name: "research", Description: "Read about my research publications", Icon: "📄", QuickBar: true, handler: handleResearch})
	r.register(&Command{Name: "contact", Description: "Get my contact information", Icon: "✉", QuickBar: true, handler: handleContact})
	r.register(&Command{Name: CmdClear, Description: "Clear the terminal screen", Icon: "✕", QuickBar: true})
	r.register(&Command{Name: "whoami", Description: "Display current user information", Icon: "👤", QuickBar: true, handler: handleWhoami})
	r.register(&Command{Name: "pwd", Description: "Print working directory", Icon: "⌂", QuickBar: true, handler: handlePwd})
	r.register(&Command{Name: "date", Description: "Display current date and time", Icon: "📅", QuickBar: true, handler: handleDate})
	r.register(&Command{Name: "ls", Description: "List directory contents", Icon: "📁", QuickBar: true, handler: handleLs})
	r.register(&Command{Name: "cat", Description: "Display file contents", Usage: "cat <filename>", Icon: "👁", QuickBar: true, handler: handleCat})
	r.register(&Command{Name: "echo", Description: "Display a line of text", Usage: "echo <text>", Icon: "💬", handler: handleEcho})
	r.register(&Command{Name: "history", Description: "Show command history", Icon: "🕘", QuickBar: true, handler: handleHistory})
}
