// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// LANGUAGE TESTS
// =============================================================================

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code string
		want Language
	}{
		{"en", LangEnglish},
		{"hi", LangHindi},
		{"ta", LangTamil},
		{"te", LangTelugu},
		{"bn", LangBengali},
		{"fr", LangEnglish},
		{"", LangEnglish},
		{"HI", LangEnglish},
	}

	for _, tc := range tests {
		if got := ParseLanguage(tc.code); got != tc.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestLanguage_SpeechTag(t *testing.T) {
	tests := []struct {
		lang Language
		want string
	}{
		{LangHindi, "hi-IN"},
		{LangEnglish, "en-IN"},
		{LangTamil, "ta-IN"},
		{Language("xx"), "en-IN"},
	}

	for _, tc := range tests {
		if got := tc.lang.SpeechTag().String(); got != tc.want {
			t.Errorf("SpeechTag(%q) = %q, want %q", tc.lang, got, tc.want)
		}
	}
}

// =============================================================================
// TABLE LOOKUP TESTS
// =============================================================================

func TestTable_Greeting(t *testing.T) {
	tbl := Builtin()

	tests := []struct {
		name    string
		persona Persona
		lang    Language
		want    string
	}{
		{"localized greeting", PersonaFarmer, LangHindi, "नमस्ते किसान"},
		{"english greeting", PersonaFarmer, LangEnglish, "Hello Farmer"},
		{"unknown language falls back to english", PersonaStudent, Language("fr"), "Hello Student"},
		{"unknown persona degrades to none", Persona("astronaut"), LangEnglish, ""},
		{"aiArt has no greeting", PersonaAIArt, LangHindi, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tbl.Greeting(tc.persona, tc.lang); got != tc.want {
				t.Errorf("Greeting(%q, %q) = %q, want %q", tc.persona, tc.lang, got, tc.want)
			}
		})
	}
}

func TestTable_FallbackResponses(t *testing.T) {
	tbl := Builtin()

	for _, lang := range Languages {
		if len(tbl.FallbackResponses(lang)) == 0 {
			t.Errorf("FallbackResponses(%q) should not be empty", lang)
		}
	}

	// Unknown language gets the English list.
	got := tbl.FallbackResponses(Language("fr"))
	want := tbl.Responses[LangEnglish]
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("FallbackResponses(fr) should be the English list")
	}
}

func TestTable_SuggestedPrompts(t *testing.T) {
	tbl := Builtin()

	if len(tbl.SuggestedPrompts(LangBengali)) != 3 {
		t.Error("Bengali should have 3 suggested prompts")
	}
	got := tbl.SuggestedPrompts(Language("xx"))
	if len(got) == 0 || got[0] != "I need help starting an online business." {
		t.Error("unknown language should fall back to English prompts")
	}
}

func TestTable_LanguageName(t *testing.T) {
	tbl := Builtin()

	if got := tbl.LanguageName(LangTamil, LangHindi); got != "तमिल" {
		t.Errorf("LanguageName(ta, hi) = %q", got)
	}
	if got := tbl.LanguageName(LangTamil, Language("fr")); got != "Tamil" {
		t.Errorf("LanguageName(ta, fr) = %q, want English name", got)
	}
}

func TestTable_UIStrings(t *testing.T) {
	tbl := Builtin()

	te := tbl.UIStrings(LangTelugu)
	if te.Sending != "పంపిణీ చేస్తోంది..." {
		t.Errorf("Telugu sending = %q", te.Sending)
	}

	// Unknown language falls back to English wholesale.
	fr := tbl.UIStrings(Language("fr"))
	if fr.Sending != "Sending..." || fr.Title != "BHASHA AI" {
		t.Errorf("unknown language UIStrings = %+v, want English", fr)
	}
}

// =============================================================================
// FILE OVERRIDE TESTS
// =============================================================================

func TestLoad_MissingFileReturnsBuiltin(t *testing.T) {
	tbl, err := Load(filepath.Join(t.TempDir(), "personas.toml"))
	if err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if tbl.Greeting(PersonaFarmer, LangEnglish) != "Hello Farmer" {
		t.Error("missing file should yield builtin tables")
	}
}

func TestLoad_OverlaysBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.toml")
	override := `
[greetings.en]
farmer = "Namaste Farmer"

[responses]
en = ["Canned answer one.", "Canned answer two."]
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := tbl.Greeting(PersonaFarmer, LangEnglish); got != "Namaste Farmer" {
		t.Errorf("overridden greeting = %q", got)
	}
	// Untouched entries survive the overlay.
	if got := tbl.Greeting(PersonaStudent, LangEnglish); got != "Hello Student" {
		t.Errorf("builtin greeting lost: %q", got)
	}
	if got := tbl.FallbackResponses(LangEnglish); len(got) != 2 {
		t.Errorf("overridden responses length = %d, want 2", len(got))
	}
	// Hindi list untouched.
	if got := tbl.FallbackResponses(LangHindi); len(got) != 5 {
		t.Errorf("Hindi responses length = %d, want 5", len(got))
	}
}

func TestLoad_MalformedFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.toml")
	if err := os.WriteFile(path, []byte("[greetings\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err == nil {
		t.Error("malformed file should return an error")
	}
	if tbl == nil || tbl.Greeting(PersonaFarmer, LangEnglish) != "Hello Farmer" {
		t.Error("malformed file should still return builtin tables")
	}
}
