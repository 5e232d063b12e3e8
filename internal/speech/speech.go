// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package speech provides voice input as an optional capability. The
// session asks for a Recognizer and gets either a working implementation
// or an inert one; it never branches on availability beyond that.
package speech

import "github.com/bhasha-ai/bhasha-tui/internal/locale"

// =============================================================================
// RECOGNIZER INTERFACE
// =============================================================================

// Events carries the recognizer's callbacks. Both are optional; nil
// callbacks are skipped. OnEnd fires exactly once per Start, whether the
// capture finished, failed, or was stopped.
type Events struct {
	// OnTranscript delivers the recognized text.
	OnTranscript func(text string)

	// OnEnd signals that the capture session is over.
	OnEnd func()
}

// Recognizer captures one utterance at a time. Start while already
// listening is a no-op, as is Stop while idle.
type Recognizer interface {
	// Available reports whether this recognizer can actually capture audio.
	Available() bool

	// Start begins listening for a single utterance in the given language.
	Start(lang locale.Language, ev Events) error

	// Stop aborts an in-progress capture. The OnEnd callback still fires.
	Stop()
}

// =============================================================================
// UNAVAILABLE RECOGNIZER
// =============================================================================

// Unavailable is the inert recognizer used when no speech backend is
// configured. Start reports ErrUnavailable and fires OnEnd immediately so
// callers observe the same lifecycle either way.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Start(_ locale.Language, ev Events) error {
	if ev.OnEnd != nil {
		ev.OnEnd()
	}
	return ErrUnavailable
}

func (Unavailable) Stop() {}
