// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
)

func TestUnavailableFiresOnEnd(t *testing.T) {
	ended := false
	err := Unavailable{}.Start(locale.LangHindi, Events{OnEnd: func() { ended = true }})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if !ended {
		t.Error("OnEnd did not fire")
	}
}

func TestUnavailableNilCallbacks(t *testing.T) {
	// Must not panic with zero Events.
	Unavailable{}.Start(locale.LangEnglish, Events{})
	Unavailable{}.Stop()
}

func TestDetectEmptyCommand(t *testing.T) {
	if _, ok := Detect("").(Unavailable); !ok {
		t.Error("Detect(\"\") should return Unavailable")
	}
}

func TestDetectMissingBinary(t *testing.T) {
	if _, ok := Detect("definitely-not-a-real-binary-xyz").(Unavailable); !ok {
		t.Error("Detect of a missing binary should return Unavailable")
	}
}

func TestCommandRecognizerTranscript(t *testing.T) {
	// echo prints its arguments, so the transcript is the locale tag.
	r := NewCommandRecognizer("echo")
	if !r.Available() {
		t.Skip("echo not on PATH")
	}

	transcript := make(chan string, 1)
	done := make(chan struct{})
	err := r.Start(locale.LangTamil, Events{
		OnTranscript: func(text string) { transcript <- text },
		OnEnd:        func() { close(done) },
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("OnEnd never fired")
	}
	select {
	case got := <-transcript:
		if got != "ta-IN" {
			t.Errorf("transcript = %q, want ta-IN", got)
		}
	default:
		t.Fatal("no transcript delivered")
	}
}

func TestCommandRecognizerRejectsConcurrentStart(t *testing.T) {
	// The capture command must block long enough to observe the second
	// Start; a script swallows the locale tag argument.
	script := filepath.Join(t.TempDir(), "capture.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nsleep 5\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	r := NewCommandRecognizer(script)
	if !r.Available() {
		t.Skip("cannot execute test script")
	}

	done := make(chan struct{})
	if err := r.Start(locale.LangEnglish, Events{OnEnd: func() { close(done) }}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Start(locale.LangEnglish, Events{}); !errors.Is(err, ErrAlreadyListening) {
		t.Errorf("second Start err = %v, want ErrAlreadyListening", err)
	}

	r.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("OnEnd never fired after Stop")
	}
}

func TestCommandRecognizerStopEndsPromptlyWithOrphan(t *testing.T) {
	// The background child inherits stdout and survives the kill; the
	// listening state must not stay stuck on its pipe until it exits.
	script := filepath.Join(t.TempDir(), "capture.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nsleep 5 &\nsleep 5\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	r := NewCommandRecognizer(script)
	if !r.Available() {
		t.Skip("cannot execute test script")
	}

	done := make(chan struct{})
	if err := r.Start(locale.LangHindi, Events{OnEnd: func() { close(done) }}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	stopped := time.Now()
	r.Stop()

	select {
	case <-done:
		if elapsed := time.Since(stopped); elapsed > time.Second {
			t.Errorf("OnEnd arrived %v after Stop, want under 1s", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("OnEnd never fired after Stop")
	}

	// The recognizer must be reusable for a fresh capture.
	if r.listening {
		t.Error("still marked listening after Stop completed")
	}
}
