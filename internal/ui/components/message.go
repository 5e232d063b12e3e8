// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bhasha-ai/bhasha-tui/internal/model"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders a single chat message.
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool

	theme    *styles.Theme
	markdown *glamour.TermRenderer
}

// NewMessageBubble creates a message bubble.
func NewMessageBubble(msg *model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message: msg,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the available width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// SetMarkdownRenderer sets the shared glamour renderer for AI messages.
func (b *MessageBubble) SetMarkdownRenderer(r *glamour.TermRenderer) {
	b.markdown = r
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.Sender == model.SenderUser {
		return b.renderUserBubble()
	}
	return b.renderAIBubble()
}

// ==========================================================================
// USER BUBBLE - Teal tones, right-aligned
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Text
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wrapToWidth(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := b.theme.UserBubble.Width(contentWidth).Render(wrapped)

	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	header := roleStyle.Render(strings.ToLower(b.Message.Sender.DisplayName()))
	if b.ShowTimestamp {
		header += " " + b.renderTimestamp()
	}

	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)

	return lipgloss.JoinVertical(lipgloss.Right,
		marginStyle.Render(header),
		marginStyle.Render(bubble),
	)
}

// ==========================================================================
// AI BUBBLE - Indigo tones, left-aligned, markdown rendered
// ==========================================================================

func (b *MessageBubble) renderAIBubble() string {
	content := b.Message.Text
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}

	// Replies may carry markdown; render it when a renderer is wired,
	// fall back to plain wrapping otherwise.
	var wrapped string
	if b.markdown != nil && looksLikeMarkdown(content) {
		if out, err := b.markdown.Render(content); err == nil {
			wrapped = strings.Trim(out, "\n")
		}
	}
	if wrapped == "" {
		wrapped = wrapToWidth(content, maxContentWidth)
	}

	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)
	bubble := b.theme.AIBubble.Width(contentWidth).Render(wrapped)

	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	header := roleStyle.Render(strings.ToLower(b.Message.Sender.DisplayName()))
	if b.ShowTimestamp {
		header += " " + b.renderTimestamp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bubble)
}

func (b *MessageBubble) renderTimestamp() string {
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(formatTime(b.Message.Timestamp))
}

// looksLikeMarkdown is a cheap check to avoid running every one-line
// reply through glamour.
func looksLikeMarkdown(s string) bool {
	return strings.ContainsAny(s, "*_`#") || strings.Contains(s, "](")
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// MessageList renders the conversation transcript.
type MessageList struct {
	messages []*model.Message
	width    int
	theme    *styles.Theme
	markdown *glamour.TermRenderer
}

// NewMessageList creates a message list.
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		width: 80,
		theme: theme,
	}
}

// SetMessages replaces the displayed messages.
func (ml *MessageList) SetMessages(messages []*model.Message) {
	ml.messages = messages
}

// SetWidth updates the display width and rebuilds the markdown renderer
// to wrap at the new width.
func (ml *MessageList) SetWidth(width int) {
	if width == ml.width && ml.markdown != nil {
		return
	}
	ml.width = width

	wrap := width - 12
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		ml.markdown = r
	}
}

// View renders all messages separated by blank lines.
func (ml *MessageList) View() string {
	if len(ml.messages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(ml.messages))
	for _, msg := range ml.messages {
		bubble := NewMessageBubble(msg, ml.theme)
		bubble.SetWidth(ml.width)
		bubble.SetMarkdownRenderer(ml.markdown)
		parts = append(parts, bubble.View())
	}
	return strings.Join(parts, "\n\n")
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// wrapToWidth wraps text to the given display width, using runewidth so
// Indic scripts and other wide glyphs measure correctly.
func wrapToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		if runewidth.StringWidth(line) <= width {
			out.WriteString(line)
			continue
		}
		out.WriteString(wrapLine(line, width))
	}
	return out.String()
}

// wrapLine wraps a single overlong line, breaking at spaces when one is
// available on the current line.
func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}

	var out strings.Builder
	current := ""
	currentWidth := 0

	flush := func() {
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(current)
		current = ""
		currentWidth = 0
	}

	for _, word := range words {
		w := runewidth.StringWidth(word)

		// A single word wider than the line gets hard-broken.
		if w > width {
			if current != "" {
				flush()
			}
			for _, r := range word {
				rw := runewidth.RuneWidth(r)
				if currentWidth+rw > width {
					flush()
				}
				current += string(r)
				currentWidth += rw
			}
			continue
		}

		sep := 0
		if current != "" {
			sep = 1
		}
		if currentWidth+sep+w > width {
			flush()
		}
		if current != "" {
			current += " "
			currentWidth++
		}
		current += word
		currentWidth += w
	}
	if current != "" {
		flush()
	}
	return out.String()
}

// maxLineWidth returns the display width of the widest line.
func maxLineWidth(text string) int {
	max := 0
	for _, line := range strings.Split(text, "\n") {
		if w := runewidth.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func formatTime(t time.Time) string {
	return t.Format("15:04")
}
