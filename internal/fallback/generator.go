// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fallback selects canned localized responses for failed sends.
package fallback

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
)

// ErrNoResponses indicates the English response list is empty. This is a
// configuration error surfaced at startup; Generate itself never fails.
var ErrNoResponses = errors.New("fallback: english response list is empty")

// =============================================================================
// GENERATOR
// =============================================================================

// Generator picks a uniformly random canned response for a language.
// It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	table *locale.Table
	rng   *rand.Rand
}

// New creates a Generator over the given lookup tables. It validates that
// the English list is non-empty, because every language ultimately falls
// back to it; an empty English list makes Generate unable to honor its
// never-fails contract.
func New(table *locale.Table) (*Generator, error) {
	return NewWithRand(table, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is New with a caller-supplied random source, for tests.
func NewWithRand(table *locale.Table, rng *rand.Rand) (*Generator, error) {
	if len(table.Responses[locale.LangEnglish]) == 0 {
		return nil, ErrNoResponses
	}
	return &Generator{table: table, rng: rng}, nil
}

// SetTable swaps the lookup tables, e.g. after a hot reload. The new
// tables are rejected if their English list is empty.
func (g *Generator) SetTable(table *locale.Table) error {
	if len(table.Responses[locale.LangEnglish]) == 0 {
		return ErrNoResponses
	}
	g.mu.Lock()
	g.table = table
	g.mu.Unlock()
	return nil
}

// Generate returns a random canned response for the language, using the
// English list when the language has none. It never fails.
func (g *Generator) Generate(lang locale.Language) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	responses := g.table.FallbackResponses(lang)
	return responses[g.rng.Intn(len(responses))]
}
