// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

// =============================================================================
// LOOKUP TABLE
// =============================================================================

// UIText holds the per-language interface strings.
type UIText struct {
	Title            string `toml:"title"`
	Subtitle         string `toml:"subtitle"`
	Sending          string `toml:"sending"`
	InputPlaceholder string `toml:"input_placeholder"`
	SelectLanguage   string `toml:"select_language"`
	Listening        string `toml:"listening"`
}

// Table is the full set of localized lookup data the chat core consumes.
// The core treats it as injected configuration; it never owns or edits it.
// Every accessor applies the same fallback chain: requested language,
// then English, then the zero value.
type Table struct {
	Greetings     map[Language]map[Persona]string `toml:"greetings"`
	Responses     map[Language][]string           `toml:"responses"`
	Prompts       map[Language][]string           `toml:"prompts"`
	LanguageNames map[Language]map[Language]string `toml:"language_names"`
	PersonaLabels map[Persona]string              `toml:"persona_labels"`
	PersonaIcons  map[Persona]string              `toml:"persona_icons"`
	Text          map[Language]UIText             `toml:"text"`
}

// Greeting resolves the greeting for a (persona, language) pair.
// Returns "" when neither the localized nor the English greeting exists;
// unknown personas degrade to no greeting rather than an error.
func (t *Table) Greeting(p Persona, lang Language) string {
	if m, ok := t.Greetings[lang]; ok {
		if g, ok := m[p]; ok && g != "" {
			return g
		}
	}
	if m, ok := t.Greetings[LangEnglish]; ok {
		return m[p]
	}
	return ""
}

// FallbackResponses returns the canned response list for a language,
// falling back to the English list.
func (t *Table) FallbackResponses(lang Language) []string {
	if rs, ok := t.Responses[lang]; ok && len(rs) > 0 {
		return rs
	}
	return t.Responses[LangEnglish]
}

// SuggestedPrompts returns the suggested prompt list for a language,
// falling back to the English list.
func (t *Table) SuggestedPrompts(lang Language) []string {
	if ps, ok := t.Prompts[lang]; ok && len(ps) > 0 {
		return ps
	}
	return t.Prompts[LangEnglish]
}

// LanguageName returns the display name of target in the UI language.
func (t *Table) LanguageName(target, ui Language) string {
	if m, ok := t.LanguageNames[ui]; ok {
		if n, ok := m[target]; ok && n != "" {
			return n
		}
	}
	if m, ok := t.LanguageNames[LangEnglish]; ok {
		if n, ok := m[target]; ok {
			return n
		}
	}
	return string(target)
}

// PersonaLabel returns the human-readable label for a persona.
func (t *Table) PersonaLabel(p Persona) string {
	if l, ok := t.PersonaLabels[p]; ok {
		return l
	}
	return string(p)
}

// PersonaIcon returns the icon glyph for a persona.
func (t *Table) PersonaIcon(p Persona) string {
	return t.PersonaIcons[p]
}

// UIStrings returns the interface strings for a language. Fields the
// requested language leaves empty are filled from English.
func (t *Table) UIStrings(lang Language) UIText {
	en := t.Text[LangEnglish]
	ui, ok := t.Text[lang]
	if !ok {
		return en
	}
	if ui.Title == "" {
		ui.Title = en.Title
	}
	if ui.Subtitle == "" {
		ui.Subtitle = en.Subtitle
	}
	if ui.Sending == "" {
		ui.Sending = en.Sending
	}
	if ui.InputPlaceholder == "" {
		ui.InputPlaceholder = en.InputPlaceholder
	}
	if ui.SelectLanguage == "" {
		ui.SelectLanguage = en.SelectLanguage
	}
	if ui.Listening == "" {
		ui.Listening = en.Listening
	}
	return ui
}

// merge overlays non-empty entries from other onto a copy of t.
// Used for file-based overrides of the builtin tables.
func (t *Table) merge(other *Table) *Table {
	out := &Table{
		Greetings:     make(map[Language]map[Persona]string),
		Responses:     make(map[Language][]string),
		Prompts:       make(map[Language][]string),
		LanguageNames: make(map[Language]map[Language]string),
		PersonaLabels: make(map[Persona]string),
		PersonaIcons:  make(map[Persona]string),
		Text:          make(map[Language]UIText),
	}

	for lang, m := range t.Greetings {
		cp := make(map[Persona]string, len(m))
		for p, g := range m {
			cp[p] = g
		}
		out.Greetings[lang] = cp
	}
	for lang, rs := range t.Responses {
		out.Responses[lang] = append([]string(nil), rs...)
	}
	for lang, ps := range t.Prompts {
		out.Prompts[lang] = append([]string(nil), ps...)
	}
	for ui, m := range t.LanguageNames {
		cp := make(map[Language]string, len(m))
		for target, n := range m {
			cp[target] = n
		}
		out.LanguageNames[ui] = cp
	}
	for p, l := range t.PersonaLabels {
		out.PersonaLabels[p] = l
	}
	for p, i := range t.PersonaIcons {
		out.PersonaIcons[p] = i
	}
	for lang, txt := range t.Text {
		out.Text[lang] = txt
	}

	if other == nil {
		return out
	}

	for lang, m := range other.Greetings {
		if out.Greetings[lang] == nil {
			out.Greetings[lang] = make(map[Persona]string)
		}
		for p, g := range m {
			out.Greetings[lang][p] = g
		}
	}
	for lang, rs := range other.Responses {
		if len(rs) > 0 {
			out.Responses[lang] = append([]string(nil), rs...)
		}
	}
	for lang, ps := range other.Prompts {
		if len(ps) > 0 {
			out.Prompts[lang] = append([]string(nil), ps...)
		}
	}
	for ui, m := range other.LanguageNames {
		if out.LanguageNames[ui] == nil {
			out.LanguageNames[ui] = make(map[Language]string)
		}
		for target, n := range m {
			out.LanguageNames[ui][target] = n
		}
	}
	for p, l := range other.PersonaLabels {
		out.PersonaLabels[p] = l
	}
	for p, i := range other.PersonaIcons {
		out.PersonaIcons[p] = i
	}
	for lang, txt := range other.Text {
		out.Text[lang] = txt
	}

	return out
}
