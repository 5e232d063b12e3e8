// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhasha-ai/bhasha-tui/internal/model"
	"github.com/bhasha-ai/bhasha-tui/internal/session"
	"github.com/bhasha-ai/bhasha-tui/internal/speech"
)

// Update handles all incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.input.Width = msg.Width - 6
		m.personaBar.SetWidth(msg.Width)
		m.suggestions.SetWidth(msg.Width)
		m.viewport.SetSize(msg.Width, m.transcriptHeight())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.sending {
			// Keeps the transcript fresh while the reply is pending, so
			// the user's own message shows up right away.
			m.syncTranscript()
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case sendResultMsg:
		if errors.Is(msg.err, session.ErrBusy) {
			// The in-flight submit still owns the spinner.
			return m, nil
		}
		m.sending = false
		m.syncTranscript()
		return m, nil

	case voiceSubmitMsg:
		m.sending = true
		m.syncTranscript()
		return m, tea.Batch(
			waitForEvent(m.events),
			m.spin.Tick,
		)

	case voiceResultMsg:
		m.sending = false
		m.syncTranscript()
		return m, waitForEvent(m.events)

	case voiceEndedMsg:
		m.listening = false
		m.syncTranscript()
		return m, waitForEvent(m.events)

	case localeReloadedMsg:
		if err := m.session.SetTable(msg.table); err == nil {
			m.table = msg.table
			m.personaBar.SetTable(msg.table)
			m.suggestions.SetPrompts(m.session.SuggestedPrompts())
			m.applyPlaceholder()
		}
		return m, waitForEvent(m.events)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleKey routes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.viewport.SetSize(m.width, m.transcriptHeight())
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitInput()

	case key.Matches(msg, m.keys.Voice):
		return m.toggleVoice()

	case key.Matches(msg, m.keys.NextPersona):
		m.personaBar.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevPersona):
		m.personaBar.Prev()
		return m, nil

	case key.Matches(msg, m.keys.ChoosePersona):
		m.session.SelectPersona(m.personaBar.Cursor())
		m.personaBar.SetActive(m.personaBar.Cursor())
		m.syncTranscript()
		return m, nil

	case key.Matches(msg, m.keys.CycleLanguage):
		m.cycleLanguage()
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown),
		key.Matches(msg, m.keys.Home), key.Matches(msg, m.keys.End):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Alt+number picks a suggested prompt while the chat is empty.
	if prompt := m.suggestionFor(msg); prompt != "" {
		m.input.SetValue(prompt)
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetPendingInput(m.input.Value())
	return m, cmd
}

// submitInput sends the current input through the session.
func (m *Model) submitInput() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if text == "" || m.sending {
		return m, nil
	}

	m.input.Reset()
	m.sending = true

	return m, tea.Batch(
		submitCmd(m.session, text),
		m.spin.Tick,
	)
}

// toggleVoice flips the capture state.
func (m *Model) toggleVoice() (tea.Model, tea.Cmd) {
	listening, err := m.session.ToggleVoice()
	if err != nil {
		if errors.Is(err, speech.ErrUnavailable) {
			// No backend configured; stay silent, the status bar
			// already omits the voice hint.
			return m, nil
		}
		return m, nil
	}
	m.listening = listening
	return m, nil
}

// suggestionFor maps alt+1..alt+9 to a starter prompt. Only active while
// the transcript has no user messages yet.
func (m *Model) suggestionFor(msg tea.KeyMsg) string {
	if m.hasUserMessage() {
		return ""
	}
	if !msg.Alt || len(msg.Runes) != 1 {
		return ""
	}
	n := int(msg.Runes[0] - '0')
	if n < 1 || n > m.suggestions.Count() {
		return ""
	}
	return m.suggestions.Prompt(n)
}

func (m *Model) hasUserMessage() bool {
	for _, message := range m.session.Snapshot().Messages {
		if message.Sender == model.SenderUser {
			return true
		}
	}
	return false
}
