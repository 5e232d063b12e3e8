// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import "golang.org/x/text/language"

// =============================================================================
// LANGUAGE TYPE
// =============================================================================

// Language is a UI language code from the closed supported set.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangTamil   Language = "ta"
	LangTelugu  Language = "te"
	LangBengali Language = "bn"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LangEnglish, LangHindi, LangTamil, LangTelugu, LangBengali}

// ParseLanguage returns the Language for a code, or English for anything
// outside the supported set. Unknown codes are not an error; every lookup
// table falls back to English anyway.
func ParseLanguage(code string) Language {
	for _, l := range Languages {
		if string(l) == code {
			return l
		}
	}
	return LangEnglish
}

// IsSupported reports whether the code is in the supported set.
func IsSupported(code string) bool {
	for _, l := range Languages {
		if string(l) == code {
			return true
		}
	}
	return false
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// SpeechTag returns the BCP 47 locale tag used for speech recognition.
// Supported languages map to their Indian locale; anything else falls
// back to the base English locale.
func (l Language) SpeechTag() language.Tag {
	if IsSupported(string(l)) {
		return language.Make(string(l) + "-IN")
	}
	return language.Make("en-IN")
}

// =============================================================================
// PERSONA TYPE
// =============================================================================

// Persona is a named user-role context. It selects a greeting and is
// forwarded to the remote endpoint for response tailoring.
type Persona string

const (
	PersonaFarmer     Persona = "farmer"
	PersonaDeveloper  Persona = "developer"
	PersonaStudent    Persona = "student"
	PersonaEducated   Persona = "educated"
	PersonaUneducated Persona = "uneducated"
	PersonaAIArt      Persona = "aiArt"
)

// Personas lists the selectable personas in display order.
var Personas = []Persona{
	PersonaFarmer,
	PersonaDeveloper,
	PersonaStudent,
	PersonaEducated,
	PersonaUneducated,
}

// String returns the persona identifier.
func (p Persona) String() string {
	return string(p)
}
