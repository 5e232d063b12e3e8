// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
	"github.com/bhasha-ai/bhasha-tui/internal/session"
)

// =============================================================================
// MESSAGES
// =============================================================================

// sendResultMsg delivers the outcome of a keyboard submit.
type sendResultMsg struct {
	result session.Result
	err    error
}

// voiceSubmitMsg signals that a transcript is being submitted, so the
// in-flight indicator covers speak-to-send too.
type voiceSubmitMsg struct {
	text string
}

// voiceResultMsg delivers the outcome of a speak-to-send submit.
type voiceResultMsg struct {
	result session.Result
}

// voiceEndedMsg signals that a speech capture finished or was stopped.
type voiceEndedMsg struct{}

// localeReloadedMsg carries freshly reloaded locale tables.
type localeReloadedMsg struct {
	table *locale.Table
}

// =============================================================================
// COMMANDS
// =============================================================================

// submitCmd runs a blocking submit off the update loop.
func submitCmd(s *session.Session, text string) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Submit(context.Background(), text)
		return sendResultMsg{result: res, err: err}
	}
}

// waitForEvent receives one asynchronous event (voice results, capture
// end, locale reloads) from the model's event channel. The update loop
// re-arms it after every receive.
func waitForEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}
