// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
)

// =============================================================================
// PERSONA BAR COMPONENT - Horizontal persona picker
// =============================================================================

// PersonaBar shows the selectable personas with their icons. Selection
// moves with tab/shift-tab; the bar only highlights, the chat model
// applies the choice.
type PersonaBar struct {
	personas []locale.Persona
	table    *locale.Table
	cursor   int
	active   locale.Persona
	width    int
	theme    *styles.Theme
}

// NewPersonaBar creates a persona bar over the display personas.
func NewPersonaBar(table *locale.Table, theme *styles.Theme) *PersonaBar {
	return &PersonaBar{
		personas: locale.Personas,
		table:    table,
		width:    80,
		theme:    theme,
	}
}

// SetTable swaps the locale table after a reload.
func (pb *PersonaBar) SetTable(table *locale.Table) {
	pb.table = table
}

// SetWidth updates the display width.
func (pb *PersonaBar) SetWidth(width int) {
	pb.width = width
}

// SetActive marks a persona as the one in use.
func (pb *PersonaBar) SetActive(p locale.Persona) {
	pb.active = p
	for i, candidate := range pb.personas {
		if candidate == p {
			pb.cursor = i
		}
	}
}

// Active returns the persona currently in use.
func (pb *PersonaBar) Active() locale.Persona {
	return pb.active
}

// Next moves the cursor right, wrapping around.
func (pb *PersonaBar) Next() {
	pb.cursor = (pb.cursor + 1) % len(pb.personas)
}

// Prev moves the cursor left, wrapping around.
func (pb *PersonaBar) Prev() {
	pb.cursor = (pb.cursor - 1 + len(pb.personas)) % len(pb.personas)
}

// Cursor returns the persona under the cursor.
func (pb *PersonaBar) Cursor() locale.Persona {
	return pb.personas[pb.cursor]
}

// View renders the bar.
func (pb *PersonaBar) View() string {
	items := make([]string, 0, len(pb.personas))
	for i, p := range pb.personas {
		label := pb.table.PersonaIcon(p) + " " + pb.table.PersonaLabel(p)
		if p == pb.active {
			label = "* " + label
		}

		style := pb.theme.PersonaItem
		if i == pb.cursor {
			style = pb.theme.PersonaSelected
		}
		items = append(items, style.Render(label))
	}

	bar := strings.Join(items, " ")
	return lipgloss.NewStyle().Width(pb.width).Render(bar)
}
