// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
	"github.com/bhasha-ai/bhasha-tui/internal/model"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
)

func TestWrapToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		maxWidth int
	}{
		{"short line untouched", "hello", 20, 5},
		{"long line wraps at spaces", "one two three four five six seven", 10, 10},
		{"devanagari stays whole", "मौसम कैसा है आज बताइए कृपया विस्तार से", 12, 12},
		{"single huge word hard-breaks", strings.Repeat("x", 50), 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapToWidth(tt.input, tt.width)
			if w := maxLineWidth(got); w > tt.maxWidth {
				t.Errorf("widest line = %d, want <= %d\n%s", w, tt.maxWidth, got)
			}
		})
	}
}

func TestWrapToWidthPreservesContent(t *testing.T) {
	input := "the quick brown fox jumps over the lazy dog"
	got := wrapToWidth(input, 10)
	if strings.ReplaceAll(strings.ReplaceAll(got, "\n", " "), "  ", " ") != input {
		t.Errorf("wrapped text lost content:\n%q", got)
	}
}

func TestMessageBubbleRendersBothSenders(t *testing.T) {
	theme := styles.NewTheme()

	user := NewMessageBubble(model.NewUserMessage("hello"), theme)
	user.SetWidth(60)
	if !strings.Contains(user.View(), "hello") {
		t.Error("user bubble missing text")
	}

	ai := NewMessageBubble(model.NewAIMessage("नमस्ते"), theme)
	ai.SetWidth(60)
	if !strings.Contains(ai.View(), "नमस्ते") {
		t.Error("ai bubble missing text")
	}
}

func TestMessageListEmpty(t *testing.T) {
	ml := NewMessageList(styles.NewTheme())
	if ml.View() != "" {
		t.Error("empty list should render nothing")
	}
}

func TestPersonaBarCursorWraps(t *testing.T) {
	pb := NewPersonaBar(locale.Builtin(), styles.NewTheme())

	for range locale.Personas {
		pb.Next()
	}
	if pb.Cursor() != locale.Personas[0] {
		t.Errorf("cursor after full loop = %v, want %v", pb.Cursor(), locale.Personas[0])
	}

	pb.Prev()
	if pb.Cursor() != locale.Personas[len(locale.Personas)-1] {
		t.Errorf("Prev from first did not wrap, got %v", pb.Cursor())
	}
}

func TestPersonaBarActiveMarker(t *testing.T) {
	table := locale.Builtin()
	pb := NewPersonaBar(table, styles.NewTheme())
	pb.SetActive(locale.PersonaFarmer)

	if pb.Active() != locale.PersonaFarmer {
		t.Errorf("Active = %v", pb.Active())
	}
	if pb.Cursor() != locale.PersonaFarmer {
		t.Error("SetActive should move the cursor to the active persona")
	}
	if !strings.Contains(pb.View(), table.PersonaLabel(locale.PersonaFarmer)) {
		t.Error("bar missing farmer label")
	}
}

func TestSuggestionsIndexing(t *testing.T) {
	s := NewSuggestions(styles.NewTheme())
	s.SetPrompts([]string{"a", "b", "c"})

	if got := s.Prompt(1); got != "a" {
		t.Errorf("Prompt(1) = %q", got)
	}
	if got := s.Prompt(3); got != "c" {
		t.Errorf("Prompt(3) = %q", got)
	}
	if got := s.Prompt(0); got != "" {
		t.Errorf("Prompt(0) = %q, want empty", got)
	}
	if got := s.Prompt(4); got != "" {
		t.Errorf("Prompt(4) = %q, want empty", got)
	}
	if s.Count() != 3 {
		t.Errorf("Count = %d", s.Count())
	}
}

func TestSuggestionsEmptyView(t *testing.T) {
	s := NewSuggestions(styles.NewTheme())
	if s.View() != "" {
		t.Error("no prompts should render nothing")
	}
}

func TestChatViewportUnseenFlow(t *testing.T) {
	cv := NewChatViewport(styles.NewTheme())
	cv.SetSize(60, 5)

	msgs := []*model.Message{}
	for i := 0; i < 30; i++ {
		msgs = append(msgs, model.NewAIMessage(strings.Repeat("line ", 3)))
	}
	cv.SetMessages(msgs)

	// Pinned by default: following, nothing unseen.
	if cv.HasUnseen() {
		t.Error("pinned viewport should have nothing unseen")
	}

	// Scroll away, then receive a message.
	cv.ScrollToTop()
	msgs = append(msgs, model.NewAIMessage("fresh"))
	cv.SetMessages(msgs)
	if !cv.HasUnseen() {
		t.Error("arrival while scrolled up should flag unseen")
	}

	cv.JumpToBottom()
	if cv.HasUnseen() {
		t.Error("jumping to bottom should clear unseen")
	}
	if !cv.AtBottom() {
		t.Error("should be at bottom after jump")
	}
}
