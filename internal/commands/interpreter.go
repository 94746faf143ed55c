// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/render"
	"github.com/jeranaias/termfolio/internal/session"
	"github.com/jeranaias/termfolio/internal/util"
)

// DefaultHome is the working directory reported by pwd when none is set.
const DefaultHome = "/home/guest/portfolio"

// WelcomeCommand is the command text of the synthetic entry a session
// starts with.
const WelcomeCommand = "welcome"

// maxLoggedLine caps the command text written to the log.
const maxLoggedLine = 120

// =============================================================================
// NOTICES
// =============================================================================

// NoticeKind says what a dispatch did to the scrollback.
type NoticeKind int

const (
	// NoticeAppended means one entry was added.
	NoticeAppended NoticeKind = iota
	// NoticeCleared means the scrollback was emptied.
	NoticeCleared
)

// Notice is sent to listeners after every dispatch. Display surfaces use
// it to scroll: to EntryID when Token is set, to the bottom otherwise.
type Notice struct {
	Kind    NoticeKind
	EntryID uint64
	// Token is the correlation token passed to DispatchQuick.
	Token string
}

// DispatchResult is the outcome of one dispatch.
type DispatchResult struct {
	// Entry is the appended entry; nil when the scrollback was cleared.
	Entry   *session.Entry
	Cleared bool
}

// =============================================================================
// INTERPRETER
// =============================================================================

// Interpreter owns a session and turns submitted lines into scrollback
// entries. All methods are safe for concurrent use; dispatches are applied
// one at a time.
type Interpreter struct {
	mu sync.Mutex

	catalog   *catalog.Catalog
	registry  *Registry
	completer *Completer
	state     *session.State

	now    func() time.Time
	home   string
	logger *slog.Logger

	listeners []func(Notice)
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock sets the time source used for timestamps and the date command.
func WithClock(now func() time.Time) Option {
	return func(in *Interpreter) {
		if now != nil {
			in.now = now
		}
	}
}

// WithHome sets the path printed by pwd.
func WithHome(home string) Option {
	return func(in *Interpreter) {
		if home != "" {
			in.home = home
		}
	}
}

// WithLogger sets the logger that records dispatches.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// New creates an interpreter over cat. The session starts with a single
// welcome entry.
func New(cat *catalog.Catalog, opts ...Option) *Interpreter {
	registry := NewRegistry()
	in := &Interpreter{
		catalog:   cat,
		registry:  registry,
		completer: NewCompleter(registry),
		now:       time.Now,
		home:      DefaultHome,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(in)
	}

	in.state = session.NewState(in.now())
	in.state.History().Append(WelcomeCommand, true, WelcomeBlock(cat), session.KindInfo, in.now())
	in.logger.Debug("session started", "session_id", in.state.SessionID())
	return in
}

// OnNotice registers a listener. Listeners run synchronously after each
// dispatch, outside the interpreter lock, in registration order.
func (in *Interpreter) OnNotice(fn func(Notice)) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.listeners = append(in.listeners, fn)
}

// Dispatch runs one submitted line. It never fails: unknown commands and
// bad operands produce error-kind entries.
func (in *Interpreter) Dispatch(raw string) DispatchResult {
	return in.dispatch(raw, "")
}

// DispatchQuick runs a command chosen from the quick bar. It behaves like
// Dispatch and tags the notice with token.
func (in *Interpreter) DispatchQuick(command, token string) DispatchResult {
	return in.dispatch(command, token)
}

func (in *Interpreter) dispatch(raw, token string) DispatchResult {
	in.mu.Lock()
	res, notice := in.dispatchLocked(raw, token)
	listeners := make([]func(Notice), len(in.listeners))
	copy(listeners, in.listeners)
	in.mu.Unlock()

	for _, fn := range listeners {
		fn(notice)
	}
	return res
}

func (in *Interpreter) dispatchLocked(raw, token string) (DispatchResult, Notice) {
	now := in.now()
	parsed := Parse(raw)
	history := in.state.History()

	// Blank line: prompt-only entry, recall untouched.
	if parsed.Empty() {
		e := history.Append(raw, true, nil, session.KindCommand, now)
		in.state.SetInput("")
		in.logger.Debug("dispatch", "command", "", "kind", e.Kind.String(), "entry_id", e.ID)
		return DispatchResult{Entry: e}, Notice{Kind: NoticeAppended, EntryID: e.ID, Token: token}
	}

	if parsed.Name == CmdClear {
		history.Clear()
		in.state.SetInput("")
		in.logger.Debug("dispatch", "command", CmdClear)
		return DispatchResult{Cleared: true}, Notice{Kind: NoticeCleared, Token: token}
	}

	in.state.PushRecall(parsed.Trimmed)

	output := in.run(parsed, now)
	kind := session.KindCommand
	if output.IsError() {
		kind = session.KindError
		in.logger.Info("command failed", "command", parsed.Name, "line", util.TruncateRunes(parsed.Trimmed, maxLoggedLine), "error", output.PlainText())
	}

	e := history.Append(raw, true, output, kind, now)
	in.state.SetInput("")
	in.state.SetCursor(session.NotBrowsing)
	in.logger.Debug("dispatch", "command", parsed.Name, "kind", kind.String(), "entry_id", e.ID)

	return DispatchResult{Entry: e}, Notice{Kind: NoticeAppended, EntryID: e.ID, Token: token}
}

func (in *Interpreter) run(parsed ParseResult, now time.Time) *render.Block {
	cmd := in.registry.lookup(parsed.Name)
	if cmd == nil || cmd.handler == nil {
		return render.Error(fmt.Sprintf("Command '%s' not found. Type 'help' to see available commands.", parsed.Name))
	}
	ctx := &Context{
		Catalog:  in.catalog,
		Registry: in.registry,
		Recall:   in.state.Recall(),
		Now:      now,
		Home:     in.home,
	}
	return cmd.handler(ctx, parsed.Args)
}

// =============================================================================
// RECALL & AUTOCOMPLETE
// =============================================================================

// RecallPrevious steps to the next older submitted line and puts it on the
// input line. It returns false at the oldest line.
func (in *Interpreter) RecallPrevious() (string, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	cursor, text, moved := session.RecallPrevious(in.state.Cursor(), in.state.Recall())
	if moved {
		in.state.SetCursor(cursor)
		in.state.SetInput(text)
	}
	return text, moved
}

// RecallNext steps to the next newer submitted line. Past the newest line
// the input line is cleared. It returns false when not browsing.
func (in *Interpreter) RecallNext() (string, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	cursor, text, moved := session.RecallNext(in.state.Cursor(), in.state.Recall())
	if moved {
		in.state.SetCursor(cursor)
		in.state.SetInput(text)
	}
	return text, moved
}

// Autocomplete returns the single command name that starts with partial.
// It does not change the session; the caller replaces its input line.
func (in *Interpreter) Autocomplete(partial string) (string, bool) {
	return in.completer.Autocomplete(partial)
}

// =============================================================================
// SESSION ACCESSORS
// =============================================================================

// Entries returns a copy of the scrollback.
func (in *Interpreter) Entries() []*session.Entry {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.History().Entries()
}

// Recall returns a copy of the recall buffer.
func (in *Interpreter) Recall() session.RecallBuffer {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.Recall()
}

// Cursor returns the recall cursor.
func (in *Interpreter) Cursor() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.Cursor()
}

// Input returns the current input line.
func (in *Interpreter) Input() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.Input()
}

// SetInput records what the user is typing.
func (in *Interpreter) SetInput(line string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.state.SetInput(line)
}

// ToggleMinimized flips the minimized display flag.
func (in *Interpreter) ToggleMinimized() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.ToggleMinimized()
}

// ToggleMaximized flips the maximized display flag.
func (in *Interpreter) ToggleMaximized() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.ToggleMaximized()
}

// Minimized reports the minimized display flag.
func (in *Interpreter) Minimized() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.Minimized()
}

// Maximized reports the maximized display flag.
func (in *Interpreter) Maximized() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.Maximized()
}

// SessionID returns the session identifier.
func (in *Interpreter) SessionID() string {
	return in.state.SessionID()
}

// Uptime returns how long the session has been running.
func (in *Interpreter) Uptime() time.Duration {
	return in.state.Duration(in.now())
}

// Registry returns the command set.
func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Catalog returns the content catalog.
func (in *Interpreter) Catalog() *catalog.Catalog {
	return in.catalog
}

// Home returns the path printed by pwd.
func (in *Interpreter) Home() string {
	return in.home
}
