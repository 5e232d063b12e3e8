// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
	"github.com/bhasha-ai/bhasha-tui/internal/session"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/components"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the bubbletea model for the chat screen. The session owns all
// conversational state; the model owns presentation state (input widget,
// scroll position, persona cursor) and translates events between the two.
type Model struct {
	session *session.Session
	table   *locale.Table
	keys    KeyMap
	theme   *styles.Theme

	input       textinput.Model
	spin        spinner.Model
	viewport    *components.ChatViewport
	personaBar  *components.PersonaBar
	suggestions *components.Suggestions

	width  int
	height int
	ready  bool

	sending   bool
	listening bool
	showHelp  bool
	quitting  bool

	// events funnels session callbacks (voice results, locale reloads)
	// into the update loop.
	events chan tea.Msg
}

// New creates the chat model around a session.
func New(sess *session.Session, table *locale.Table, theme *styles.Theme) *Model {
	if table == nil {
		table = locale.Builtin()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.CharLimit = 2000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	m := &Model{
		session:     sess,
		table:       table,
		keys:        DefaultKeyMap(),
		theme:       theme,
		input:       ti,
		spin:        sp,
		viewport:    components.NewChatViewport(theme),
		personaBar:  components.NewPersonaBar(table, theme),
		suggestions: components.NewSuggestions(theme),
		events:      make(chan tea.Msg, 8),
	}

	m.personaBar.SetActive(sess.Persona())
	m.suggestions.SetPrompts(sess.SuggestedPrompts())
	m.applyPlaceholder()

	sess.SetTranscriptCallback(func(text string) {
		m.events <- voiceSubmitMsg{text: text}
	})
	sess.SetResultCallback(func(res session.Result) {
		m.events <- voiceResultMsg{result: res}
	})
	sess.SetVoiceEndCallback(func() {
		m.events <- voiceEndedMsg{}
	})

	return m
}

// NotifyTableReload is the sink for the locale file watcher; safe to
// call from any goroutine.
func (m *Model) NotifyTableReload(t *locale.Table) {
	m.events <- localeReloadedMsg{table: t}
}

// Init starts the event pump.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		waitForEvent(m.events),
	)
}

// applyPlaceholder refreshes the input placeholder for the current
// language.
func (m *Model) applyPlaceholder() {
	text := m.session.UIStrings()
	if text.InputPlaceholder != "" {
		m.input.Placeholder = text.InputPlaceholder
	} else {
		m.input.Placeholder = "Type a message..."
	}
}

// syncTranscript pushes the session's history into the viewport.
func (m *Model) syncTranscript() {
	snap := m.session.Snapshot()
	m.viewport.SetMessages(snap.Messages)
}

// cycleLanguage advances to the next supported language.
func (m *Model) cycleLanguage() {
	current := m.session.Language()
	for i, lang := range locale.Languages {
		if lang == current {
			next := locale.Languages[(i+1)%len(locale.Languages)]
			m.session.SetLanguage(next)
			break
		}
	}
	m.suggestions.SetPrompts(m.session.SuggestedPrompts())
	m.applyPlaceholder()
}
