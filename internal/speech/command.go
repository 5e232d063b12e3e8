// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
)

// ErrUnavailable is returned by Start when no speech backend is usable.
var ErrUnavailable = errors.New("speech recognition unavailable")

// ErrAlreadyListening is returned by Start during an active capture.
var ErrAlreadyListening = errors.New("already listening")

// =============================================================================
// COMMAND RECOGNIZER
// =============================================================================

// CommandRecognizer shells out to an external speech-to-text tool. The
// command receives the BCP 47 locale tag (e.g. "hi-IN") as its last
// argument and is expected to print the transcript on stdout. Indic
// transcripts arrive in whatever form the tool emits, so the text is
// NFC-normalized before delivery.
type CommandRecognizer struct {
	command string
	args    []string

	mu        sync.Mutex
	listening bool
	cmd       *exec.Cmd
}

// NewCommandRecognizer builds a recognizer around the given command line.
// An empty command yields a recognizer that is never available.
func NewCommandRecognizer(commandLine string) *CommandRecognizer {
	fields := strings.Fields(commandLine)
	r := &CommandRecognizer{}
	if len(fields) > 0 {
		r.command = fields[0]
		r.args = fields[1:]
	}
	return r
}

// Available reports whether the configured command exists on PATH.
func (r *CommandRecognizer) Available() bool {
	if r.command == "" {
		return false
	}
	_, err := exec.LookPath(r.command)
	return err == nil
}

// Start launches the capture command. The transcript and end callbacks
// fire from a background goroutine once the command exits.
func (r *CommandRecognizer) Start(lang locale.Language, ev Events) error {
	if !r.Available() {
		if ev.OnEnd != nil {
			ev.OnEnd()
		}
		return ErrUnavailable
	}

	r.mu.Lock()
	if r.listening {
		r.mu.Unlock()
		return ErrAlreadyListening
	}

	args := append(append([]string{}, r.args...), lang.SpeechTag().String())
	cmd := exec.Command(r.command, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	// STT tools often spawn helpers that inherit stdout. Without a bound,
	// Wait blocks on the pipe until every inheritor exits, which leaves the
	// caller stuck in the listening state after Stop kills the tool.
	cmd.WaitDelay = 250 * time.Millisecond

	if err := cmd.Start(); err != nil {
		r.mu.Unlock()
		if ev.OnEnd != nil {
			ev.OnEnd()
		}
		return err
	}
	r.listening = true
	r.cmd = cmd
	r.mu.Unlock()

	go func() {
		err := cmd.Wait()

		r.mu.Lock()
		r.listening = false
		r.cmd = nil
		r.mu.Unlock()

		// ErrWaitDelay means the tool itself exited cleanly and only an
		// inherited pipe was abandoned; its output still counts.
		if err == nil || errors.Is(err, exec.ErrWaitDelay) {
			text := norm.NFC.String(strings.TrimSpace(out.String()))
			if text != "" && ev.OnTranscript != nil {
				ev.OnTranscript(text)
			}
		}
		if ev.OnEnd != nil {
			ev.OnEnd()
		}
	}()

	return nil
}

// Stop kills an in-progress capture. The command's exit still drives the
// OnEnd callback.
func (r *CommandRecognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listening && r.cmd != nil && r.cmd.Process != nil {
		r.cmd.Process.Kill()
	}
}

// =============================================================================
// DETECTION
// =============================================================================

// Detect returns a working recognizer for the configured command, or the
// inert Unavailable recognizer when none is usable.
func Detect(commandLine string) Recognizer {
	if commandLine == "" {
		return Unavailable{}
	}
	r := NewCommandRecognizer(commandLine)
	if !r.Available() {
		return Unavailable{}
	}
	return r
}
