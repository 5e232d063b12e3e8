// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bhasha-ai/bhasha-tui/internal/model"
	"github.com/bhasha-ai/bhasha-tui/internal/scrollstate"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
)

// =============================================================================
// CHAT VIEWPORT COMPONENT - Scrollable transcript with follow tracking
// =============================================================================

// ChatViewport is the scrollable transcript area. It follows new
// messages while pinned to the bottom; once the user scrolls up it holds
// position and shows an unseen-messages badge instead.
type ChatViewport struct {
	viewport    viewport.Model
	messages    []*model.Message
	width       int
	height      int
	ready       bool
	theme       *styles.Theme
	messageList *MessageList
	tracker     *scrollstate.Tracker

	// followThreshold is how many lines shy of the end still counts as
	// caught up for follow and unseen tracking.
	followThreshold int
}

// NewChatViewport creates a ChatViewport.
func NewChatViewport(theme *styles.Theme) *ChatViewport {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()

	return &ChatViewport{
		viewport:        vp,
		width:           80,
		height:          20,
		theme:           theme,
		messageList:     NewMessageList(theme),
		tracker:         scrollstate.New(),
		followThreshold: 2,
	}
}

// SetSize updates the viewport dimensions.
func (cv *ChatViewport) SetSize(width, height int) {
	cv.width = width
	cv.height = height
	cv.viewport.Width = width
	cv.viewport.Height = height
	cv.messageList.SetWidth(width - 4)
	cv.ready = true

	cv.updateContent()
	if cv.tracker.PinnedToBottom() {
		cv.viewport.GotoBottom()
	}
}

// SetMessages replaces the transcript. New arrivals keep or break the
// follow behavior depending on where the view was when they landed.
func (cv *ChatViewport) SetMessages(messages []*model.Message) {
	grew := len(messages) > len(cv.messages)
	cv.messages = messages
	cv.messageList.SetMessages(messages)
	cv.updateContent()

	if grew {
		cv.tracker.Observe(cv.tracker.PinnedToBottom())
	}
	if cv.tracker.PinnedToBottom() {
		cv.viewport.GotoBottom()
	}
}

// HasUnseen reports whether messages arrived while scrolled up.
func (cv *ChatViewport) HasUnseen() bool {
	return cv.tracker.HasUnseen()
}

// AtBottom reports whether the view is at (or within the follow
// threshold of) the bottom of the transcript.
func (cv *ChatViewport) AtBottom() bool {
	if cv.viewport.AtBottom() {
		return true
	}
	maxOffset := cv.viewport.TotalLineCount() - cv.viewport.Height
	if maxOffset <= 0 {
		return true
	}
	return maxOffset-cv.viewport.YOffset <= cv.followThreshold
}

// JumpToBottom scrolls to the newest message and resumes following.
func (cv *ChatViewport) JumpToBottom() {
	cv.viewport.GotoBottom()
	cv.tracker.JumpToBottom()
}

// ScrollToTop jumps to the oldest message.
func (cv *ChatViewport) ScrollToTop() {
	cv.viewport.GotoTop()
	cv.tracker.SetAtBottom(cv.AtBottom())
}

// updateContent re-renders the transcript into the viewport.
func (cv *ChatViewport) updateContent() {
	cv.viewport.SetContent(cv.messageList.View())
}

// Update handles scroll input.
func (cv *ChatViewport) Update(msg tea.Msg) (*ChatViewport, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			cv.viewport.LineUp(1)
		case "down":
			cv.viewport.LineDown(1)
		case "pgup":
			cv.viewport.ViewUp()
		case "pgdown":
			cv.viewport.ViewDown()
		case "home":
			cv.viewport.GotoTop()
		case "end":
			cv.JumpToBottom()
			return cv, nil
		default:
			cv.viewport, cmd = cv.viewport.Update(msg)
		}
	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseWheelUp:
			cv.viewport.LineUp(3)
		case tea.MouseWheelDown:
			cv.viewport.LineDown(3)
		}
	default:
		cv.viewport, cmd = cv.viewport.Update(msg)
	}

	cv.tracker.SetAtBottom(cv.AtBottom())
	return cv, cmd
}

// View renders the transcript with scroll and unseen indicators.
func (cv *ChatViewport) View() string {
	if !cv.ready {
		return ""
	}

	var out strings.Builder
	out.WriteString(cv.viewport.View())

	if indicator := cv.renderBottomIndicator(); indicator != "" {
		out.WriteString("\n")
		out.WriteString(indicator)
	}
	return out.String()
}

// renderBottomIndicator shows either the unseen-messages badge or a
// plain "more below" hint, centered under the transcript.
func (cv *ChatViewport) renderBottomIndicator() string {
	if cv.AtBottom() {
		return ""
	}

	lineStyle := lipgloss.NewStyle().
		Width(cv.width).
		Align(lipgloss.Center)

	if cv.tracker.HasUnseen() {
		return lineStyle.Render(cv.theme.UnseenBadge.Render("v new messages v"))
	}

	hint := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render("v scroll down for more v")
	return lineStyle.Render(hint)
}
