// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package fallback

import (
	"math/rand"
	"testing"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
)

func TestNew_RejectsEmptyEnglishList(t *testing.T) {
	tbl := locale.Builtin()
	tbl.Responses[locale.LangEnglish] = nil

	if _, err := New(tbl); err != ErrNoResponses {
		t.Errorf("New with empty English list: err = %v, want ErrNoResponses", err)
	}
}

func TestGenerate_DrawsFromLanguageList(t *testing.T) {
	tbl := locale.Builtin()
	gen, err := NewWithRand(tbl, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWithRand: %v", err)
	}

	hindi := make(map[string]bool)
	for _, r := range tbl.Responses[locale.LangHindi] {
		hindi[r] = true
	}

	for i := 0; i < 50; i++ {
		got := gen.Generate(locale.LangHindi)
		if !hindi[got] {
			t.Fatalf("Generate(hi) = %q, not in the Hindi list", got)
		}
	}
}

func TestGenerate_UnknownLanguageUsesEnglish(t *testing.T) {
	tbl := locale.Builtin()
	gen, err := NewWithRand(tbl, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("NewWithRand: %v", err)
	}

	english := make(map[string]bool)
	for _, r := range tbl.Responses[locale.LangEnglish] {
		english[r] = true
	}

	for i := 0; i < 50; i++ {
		got := gen.Generate(locale.Language("fr"))
		if !english[got] {
			t.Fatalf("Generate(fr) = %q, not in the English list", got)
		}
	}
}

func TestGenerate_EventuallyCoversList(t *testing.T) {
	tbl := locale.Builtin()
	gen, err := NewWithRand(tbl, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewWithRand: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[gen.Generate(locale.LangEnglish)] = true
	}
	if len(seen) != len(tbl.Responses[locale.LangEnglish]) {
		t.Errorf("selection covered %d of %d responses", len(seen), len(tbl.Responses[locale.LangEnglish]))
	}
}

func TestSetTable_RejectsEmptyEnglishList(t *testing.T) {
	gen, err := New(locale.Builtin())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bad := locale.Builtin()
	bad.Responses[locale.LangEnglish] = []string{}
	if err := gen.SetTable(bad); err != ErrNoResponses {
		t.Errorf("SetTable with empty list: err = %v, want ErrNoResponses", err)
	}

	// The generator keeps working with the previous tables.
	if gen.Generate(locale.LangEnglish) == "" {
		t.Error("Generate should still work after a rejected SetTable")
	}
}
