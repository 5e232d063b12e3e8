// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
)

// =============================================================================
// SUGGESTIONS COMPONENT - Starter prompt chips
// =============================================================================

// Suggestions shows numbered starter prompts for an empty conversation.
// They disappear once the first message is sent.
type Suggestions struct {
	prompts []string
	width   int
	theme   *styles.Theme
}

// NewSuggestions creates the suggestion chips.
func NewSuggestions(theme *styles.Theme) *Suggestions {
	return &Suggestions{
		width: 80,
		theme: theme,
	}
}

// SetPrompts replaces the suggested prompts (after a language switch).
func (s *Suggestions) SetPrompts(prompts []string) {
	s.prompts = prompts
}

// SetWidth updates the display width.
func (s *Suggestions) SetWidth(width int) {
	s.width = width
}

// Prompt returns the prompt at the 1-based index, or "" when out of range.
func (s *Suggestions) Prompt(n int) string {
	if n < 1 || n > len(s.prompts) {
		return ""
	}
	return s.prompts[n-1]
}

// Count returns the number of available prompts.
func (s *Suggestions) Count() int {
	return len(s.prompts)
}

// View renders the chips stacked vertically with their shortcut numbers.
func (s *Suggestions) View() string {
	if len(s.prompts) == 0 {
		return ""
	}

	hint := s.theme.SuggestionHint.Render("try one of these (alt+1..):")

	lines := []string{hint}
	for i, p := range s.prompts {
		num := lipgloss.NewStyle().
			Foreground(styles.Saffron).
			Bold(true).
			Render(strconv.Itoa(i+1) + ".")
		lines = append(lines, num+" "+s.theme.SuggestionChip.Render(p))
	}

	block := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(s.width).Render(block)
}
