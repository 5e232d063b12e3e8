// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
	"github.com/bhasha-ai/bhasha-tui/internal/util"
)

// View renders the full chat screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	sections := []string{
		m.renderHeader(),
		m.personaBar.View(),
	}

	transcript := m.viewport.View()
	if !m.hasUserMessage() && m.suggestions.Count() > 0 {
		transcript = lipgloss.JoinVertical(lipgloss.Left, transcript, m.suggestions.View())
	}
	sections = append(sections, transcript)

	if m.sending {
		sections = append(sections, m.renderSending())
	}

	sections = append(sections, m.renderInput(), m.renderStatusBar())
	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// transcriptHeight is the viewport height after the fixed chrome.
func (m *Model) transcriptHeight() int {
	// header (3 with border) + persona bar + input (3) + status bar
	h := m.height - 8
	if m.showHelp {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	return h
}

// renderHeader shows the localized title and subtitle.
func (m *Model) renderHeader() string {
	text := m.session.UIStrings()
	title := text.Title
	if title == "" {
		title = "BHASHA AI"
	}

	line := m.theme.HeaderTitle.Render(title)
	if text.Subtitle != "" {
		line += "  " + m.theme.HeaderSubtitle.Render(text.Subtitle)
	}
	return m.theme.Header.Width(m.width - 2).Render(line)
}

// renderSending shows the spinner with the localized sending label.
func (m *Model) renderSending() string {
	label := m.session.UIStrings().Sending
	if label == "" {
		label = "Sending..."
	}
	return " " + m.spin.View() + " " + m.theme.SendingText.Render(label)
}

// renderInput shows the text input, or the listening indicator while a
// speech capture is running.
func (m *Model) renderInput() string {
	if m.listening {
		label := m.session.UIStrings().Listening
		if label == "" {
			label = "Listening..."
		}
		indicator := m.theme.Listening.Render("(( " + label + " ))")
		hint := m.theme.ShortcutDesc.Render(" C-v to stop")
		return m.theme.InputContainer.Width(m.width - 2).Render(indicator + hint)
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}

// renderStatusBar shows language, persona, and the key hints.
func (m *Model) renderStatusBar() string {
	snap := m.session.Snapshot()

	parts := []string{
		m.theme.LanguageBadge.Render(m.table.LanguageName(snap.Language, snap.Language)),
	}
	if snap.Persona != "" {
		label := m.table.PersonaIcon(snap.Persona) + " " + m.table.PersonaLabel(snap.Persona)
		parts = append(parts, m.theme.PersonaBadge.Render(util.TruncateWidth(label, 24)))
	}
	if m.viewport.HasUnseen() {
		parts = append(parts, m.theme.UnseenBadge.Render("new v"))
	}

	hints := []string{
		m.theme.ShortcutKey.Render("Enter") + m.theme.ShortcutDesc.Render(" send"),
		m.theme.ShortcutKey.Render("C-g") + m.theme.ShortcutDesc.Render(" language"),
		m.theme.ShortcutKey.Render("C-p") + m.theme.ShortcutDesc.Render(" persona"),
	}
	if m.session.VoiceAvailable() {
		hints = append(hints, m.theme.ShortcutKey.Render("C-v")+m.theme.ShortcutDesc.Render(" speak"))
	}
	hints = append(hints, m.theme.ShortcutKey.Render("C-h")+m.theme.ShortcutDesc.Render(" help"))

	left := strings.Join(parts, " ")
	right := strings.Join(hints, "  ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderHelp shows the full key binding reference.
func (m *Model) renderHelp() string {
	var lines []string
	for _, group := range m.keys.FullHelp() {
		var cols []string
		for _, b := range group {
			cols = append(cols,
				m.theme.ShortcutKey.Render(b.Help().Key)+" "+m.theme.ShortcutDesc.Render(b.Help().Desc))
		}
		lines = append(lines, strings.Join(cols, "   "))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 1).
		Width(m.width - 2).
		Render(strings.Join(lines, "\n"))
}
