// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// MODEL STATE
// =============================================================================

type focusArea int

const (
	focusInput focusArea = iota
	focusQuickBar
)

const inputPlaceholder = "Type a command... (try 'help')"

// Options configures the display.
type Options struct {
	Prompt components.Prompt
	// MaxWidth caps the window width; 0 means no cap. Maximized ignores it.
	MaxWidth int
	// Mouse enables clicking the title bar controls and quick bar.
	Mouse bool
	// QuickCommands overrides the quick bar buttons.
	QuickCommands []string
}

// noticeQueue collects interpreter notices until Update applies them.
type noticeQueue struct {
	mu    sync.Mutex
	items []commands.Notice
}

func (q *noticeQueue) push(n commands.Notice) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

func (q *noticeQueue) drain() []commands.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Model is the Bubble Tea model for the portfolio terminal.
type Model struct {
	interp *commands.Interpreter
	theme  *styles.Theme
	opts   Options

	keys       KeyMap
	help       help.Model
	input      textinput.Model
	header     *components.Header
	quickBar   *components.QuickBar
	scrollback *components.Scrollback
	notices    *noticeQueue

	focus      focusArea
	quickToken string
	newToken   func() string

	width  int
	height int
	ready  bool
}

// New creates the display over interp.
func New(interp *commands.Interpreter, theme *styles.Theme, opts Options) Model {
	quick := opts.QuickCommands
	if len(quick) == 0 {
		quick = interp.Registry().QuickCommands()
	}

	ti := textinput.New()
	ti.Prompt = opts.Prompt.Render(theme) + " "
	ti.Placeholder = inputPlaceholder
	ti.PlaceholderStyle = theme.Placeholder
	ti.TextStyle = theme.Command
	ti.CharLimit = 256
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.FullDesc = theme.ShortcutDesc

	notices := &noticeQueue{}
	interp.OnNotice(notices.push)

	m := Model{
		interp:     interp,
		theme:      theme,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		input:      ti,
		header:     components.NewHeader(theme, opts.Prompt),
		quickBar:   components.NewQuickBar(theme, quick),
		scrollback: components.NewScrollback(theme, components.NewBlockRenderer(theme), opts.Prompt),
		notices:    notices,
		newToken:   uuid.NewString,
	}
	m.refresh()
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Minimize):
		m.interp.ToggleMinimized()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Maximize):
		m.interp.ToggleMaximized()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	// The body is hidden while minimized.
	if m.interp.Minimized() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PageUp):
		m.scrollback.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.scrollback.PageDown()
		return m, nil
	}

	if m.focus == focusQuickBar {
		return m.handleBarKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.FocusBar):
		m.focusQuickBar(true)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.interp.Dispatch(m.input.Value())
		m.input.SetValue("")
		m.applyNotices()
		return m, nil

	case key.Matches(msg, m.keys.RecallPrev):
		if text, moved := m.interp.RecallPrevious(); moved {
			m.setInput(text)
		}
		return m, nil

	case key.Matches(msg, m.keys.RecallNext):
		if text, moved := m.interp.RecallNext(); moved {
			m.setInput(text)
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		if completion, ok := m.interp.Autocomplete(m.input.Value()); ok {
			m.setInput(completion)
			m.interp.SetInput(completion)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.interp.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) handleBarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.BarLeave):
		m.focusQuickBar(false)
	case key.Matches(msg, m.keys.BarPrev):
		m.quickBar.Prev()
	case key.Matches(msg, m.keys.BarNext):
		m.quickBar.Next()
	case key.Matches(msg, m.keys.BarRun):
		if name, ok := m.quickBar.Current(); ok {
			m.runQuick(name)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.opts.Mouse || !m.ready {
		return m, nil
	}

	switch msg.Type {
	case tea.MouseWheelUp, tea.MouseWheelDown:
		if !m.interp.Minimized() {
			m.scrollback, _ = m.scrollback.Update(msg)
		}
		return m, nil
	case tea.MouseLeft:
	default:
		return m, nil
	}

	// Window content starts one cell in from the border.
	x := msg.X - m.windowLeft() - 1
	y := msg.Y - 1

	if y == 0 {
		switch m.header.ControlAt(x) {
		case components.ControlClose:
			return m, tea.Quit
		case components.ControlMinimize:
			m.interp.ToggleMinimized()
			m.layout()
		case components.ControlMaximize:
			m.interp.ToggleMaximized()
			m.layout()
		}
		return m, nil
	}

	if m.interp.Minimized() {
		return m, nil
	}
	if name, ok := m.quickBar.ButtonAt(x, y-1); ok {
		m.runQuick(name)
	}
	return m, nil
}

// =============================================================================
// DISPATCH HELPERS
// =============================================================================

// runQuick dispatches a quick bar command with a fresh token so its notice
// scrolls the new entry to the top.
func (m *Model) runQuick(name string) {
	m.quickToken = m.newToken()
	m.interp.DispatchQuick(name, m.quickToken)
	m.input.SetValue("")
	m.applyNotices()
}

func (m *Model) applyNotices() {
	for _, n := range m.notices.drain() {
		m.refresh()
		switch {
		case n.Kind == commands.NoticeCleared:
			m.scrollback.ScrollToTop()
		case n.Token != "" && n.Token == m.quickToken:
			m.scrollback.ScrollToEntry(n.EntryID)
			m.quickToken = ""
		default:
			m.scrollback.ScrollToBottom()
		}
	}
}

func (m *Model) refresh() {
	m.scrollback.SetEntries(m.interp.Entries())
}

func (m *Model) setInput(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
}

func (m *Model) focusQuickBar(on bool) {
	m.quickBar.Focused = on
	if on {
		m.focus = focusQuickBar
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m *Model) windowWidth() int {
	w := m.width
	if !m.interp.Maximized() && m.opts.MaxWidth > 0 && w > m.opts.MaxWidth {
		w = m.opts.MaxWidth
	}
	return w
}

func (m *Model) windowLeft() int {
	return (m.width - m.windowWidth()) / 2
}

// layout sizes every component for the current window.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	inner := m.windowWidth() - 2
	if inner < 10 {
		inner = 10
	}

	m.theme.SetSize(m.width, m.height)
	m.header.SetWidth(inner)
	m.header.Minimized = m.interp.Minimized()
	m.header.Maximized = m.interp.Maximized()
	m.quickBar.SetWidth(inner)
	m.help.Width = m.width

	const (
		borderHeight = 2
		headerHeight = 1
		inputHeight  = 1
	)
	footerHeight := lipgloss.Height(m.help.View(m.keys))
	body := m.height - borderHeight - headerHeight - m.quickBar.Height() - inputHeight - footerHeight
	if body < 1 {
		body = 1
	}
	m.scrollback.SetSize(inner, body)

	m.input.Width = inner - lipgloss.Width(m.input.Prompt) - 1
	if m.input.Width < 1 {
		m.input.Width = 1
	}

	m.refresh()
}
