// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the conversational state of one chat: the message
// history, the pending input, and the send and voice lifecycles. All
// mutation goes through this package; the UI renders snapshots.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/bhasha-ai/bhasha-tui/internal/fallback"
	"github.com/bhasha-ai/bhasha-tui/internal/inference"
	"github.com/bhasha-ai/bhasha-tui/internal/locale"
	"github.com/bhasha-ai/bhasha-tui/internal/model"
	"github.com/bhasha-ai/bhasha-tui/internal/speech"
)

// Sentinel errors for rejected submits. Callers treat both as no-ops.
var (
	// ErrEmptyInput is returned when the trimmed input is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrBusy is returned while a previous send is still in flight.
	ErrBusy = errors.New("send already in flight")
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Config holds configuration for a conversation session.
type Config struct {
	// SendTimeout bounds each remote send (default: 10s)
	SendTimeout time.Duration

	// FallbackDelay is the pause before a canned response appears, so a
	// failed send still reads like a reply (default: 1s)
	FallbackDelay time.Duration
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		SendTimeout:   10 * time.Second,
		FallbackDelay: time.Second,
	}
}

// =============================================================================
// COLLABORATORS
// =============================================================================

// Inferencer is the remote send dependency. *inference.Client satisfies it.
type Inferencer interface {
	Send(ctx context.Context, req inference.Request) (string, error)
}

// Source tells where a reply came from. It feeds logging only; both
// sources produce an ordinary AI message.
type Source int

const (
	SourceRemote Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "remote"
}

// Result is the outcome of one accepted submit.
type Result struct {
	Message *model.Message
	Source  Source
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the single writer for one conversation's state. Reads go
// through Snapshot. Safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id       string
	messages []*model.Message

	pendingInput string
	sendInFlight bool
	listening    bool

	language locale.Language
	persona  locale.Persona

	table      *locale.Table
	client     Inferencer
	fallback   *fallback.Generator
	recognizer speech.Recognizer
	config     Config

	// Async delivery for voice-initiated sends
	onTranscript func(string)
	onResult     func(Result)
	onVoiceEnd   func()

	// Test seams
	sleep func(time.Duration)
}

// New creates a session. A nil table uses the builtin tables; a nil
// recognizer disables voice input.
func New(client Inferencer, gen *fallback.Generator, rec speech.Recognizer, table *locale.Table, cfg Config) *Session {
	if table == nil {
		table = locale.Builtin()
	}
	if rec == nil {
		rec = speech.Unavailable{}
	}
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	if cfg.FallbackDelay == 0 {
		cfg.FallbackDelay = time.Second
	}
	return &Session{
		id:         uuid.NewString(),
		language:   locale.LangEnglish,
		table:      table,
		client:     client,
		fallback:   gen,
		recognizer: rec,
		config:     cfg,
		sleep:      time.Sleep,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is an immutable view of the session for rendering.
type Snapshot struct {
	Messages     []*model.Message
	PendingInput string
	SendInFlight bool
	Listening    bool
	Language     locale.Language
	Persona      locale.Persona
}

// Snapshot copies the current state. The returned message slice does not
// alias session storage.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make([]*model.Message, len(s.messages))
	copy(msgs, s.messages)

	return Snapshot{
		Messages:     msgs,
		PendingInput: s.pendingInput,
		SendInFlight: s.sendInFlight,
		Listening:    s.listening,
		Language:     s.language,
		Persona:      s.persona,
	}
}

// =============================================================================
// LANGUAGE AND PERSONA
// =============================================================================

// SetLanguage switches the conversation language. History is untouched;
// only future greetings, fallbacks, and speech captures change.
func (s *Session) SetLanguage(lang locale.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// Language returns the current conversation language.
func (s *Session) Language() locale.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SelectPersona switches the active persona and appends its greeting as
// an AI message. Re-selecting is harmless: a greeting whose exact text
// already exists as an AI message is not appended again. Personas without
// a greeting switch silently.
func (s *Session) SelectPersona(p locale.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persona = p

	greeting := s.table.Greeting(p, s.language)
	if greeting == "" {
		return
	}
	for _, m := range s.messages {
		if m.Sender == model.SenderAI && m.Text == greeting {
			return
		}
	}
	s.messages = append(s.messages, model.NewAIMessage(greeting))
}

// Persona returns the active persona ("" when none selected).
func (s *Session) Persona() locale.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

// =============================================================================
// INPUT
// =============================================================================

// SetPendingInput replaces the draft input.
func (s *Session) SetPendingInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingInput = text
}

// PendingInput returns the draft input.
func (s *Session) PendingInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingInput
}

// =============================================================================
// SUBMIT
// =============================================================================

// Submit sends one message and blocks until the reply (remote or
// fallback) is in the history. Empty input returns ErrEmptyInput; a
// submit while another is in flight returns ErrBusy. Callers drive this
// from a goroutine or tea.Cmd.
//
// Every accepted submit appends exactly one user message and exactly one
// AI message. Remote failure of any kind is absorbed: after the
// configured delay a canned response appears instead, so the user always
// gets an answer.
func (s *Session) Submit(ctx context.Context, text string) (Result, error) {
	userMsg, err := s.acceptInput(text)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	lang := s.language
	persona := s.persona
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.sendInFlight = false
		s.mu.Unlock()
	}()

	sendCtx, cancel := context.WithTimeout(ctx, s.config.SendTimeout)
	defer cancel()

	reply, sendErr := s.client.Send(sendCtx, inference.Request{
		Prompt:  userMsg.Text,
		Lang:    lang,
		Persona: persona,
	})

	source := SourceRemote
	if sendErr != nil || reply == "" {
		s.sleep(s.config.FallbackDelay)
		reply = s.fallback.Generate(lang)
		source = SourceFallback
	}

	aiMsg := model.NewAIMessage(reply)
	s.mu.Lock()
	s.messages = append(s.messages, aiMsg)
	s.mu.Unlock()

	return Result{Message: aiMsg, Source: source}, nil
}

// acceptInput validates and records the outgoing message under lock:
// append user message, clear the draft, mark the send in flight.
func (s *Session) acceptInput(text string) (*model.Message, error) {
	normalized := norm.NFC.String(strings.TrimSpace(text))
	if normalized == "" {
		return nil, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sendInFlight {
		return nil, ErrBusy
	}

	msg := model.NewUserMessage(normalized)
	s.messages = append(s.messages, msg)
	s.pendingInput = ""
	s.sendInFlight = true
	return msg, nil
}

// =============================================================================
// VOICE INPUT
// =============================================================================

// SetResultCallback sets the sink for results of voice-initiated sends.
// Keyboard submits return their Result directly and do not use it.
func (s *Session) SetResultCallback(fn func(Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResult = fn
}

// SetTranscriptCallback sets the function called when a transcript is
// about to be submitted. It fires before the send, so the UI can show
// its in-flight state for speak-to-send the same as for typed input.
func (s *Session) SetTranscriptCallback(fn func(text string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTranscript = fn
}

// SetVoiceEndCallback sets the function called when a capture ends.
func (s *Session) SetVoiceEndCallback(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onVoiceEnd = fn
}

// VoiceAvailable reports whether a speech backend is usable.
func (s *Session) VoiceAvailable() bool {
	return s.recognizer.Available()
}

// ToggleVoice starts a capture when idle and stops it when listening.
// A finished capture submits its transcript immediately; the reply is
// delivered through the result callback. Returns whether the session is
// listening after the call.
func (s *Session) ToggleVoice() (bool, error) {
	s.mu.Lock()
	if s.listening {
		s.mu.Unlock()
		s.recognizer.Stop()
		return false, nil
	}
	lang := s.language
	s.listening = true
	s.mu.Unlock()

	err := s.recognizer.Start(lang, speech.Events{
		OnTranscript: s.handleTranscript,
		OnEnd:        s.handleVoiceEnd,
	})
	if err != nil {
		s.mu.Lock()
		s.listening = false
		s.mu.Unlock()
		return false, err
	}
	return true, nil
}

// handleTranscript implements speak-to-send: the transcript goes straight
// into a submit, no confirmation step.
func (s *Session) handleTranscript(text string) {
	s.mu.Lock()
	s.pendingInput = text
	onTranscript := s.onTranscript
	onResult := s.onResult
	s.mu.Unlock()

	if onTranscript != nil {
		onTranscript(text)
	}

	go func() {
		// A rejected submit still reports back so the UI never waits on
		// a result that is not coming.
		res, _ := s.Submit(context.Background(), text)
		if onResult != nil {
			onResult(res)
		}
	}()
}

func (s *Session) handleVoiceEnd() {
	s.mu.Lock()
	s.listening = false
	onEnd := s.onVoiceEnd
	s.mu.Unlock()

	if onEnd != nil {
		onEnd()
	}
}

// =============================================================================
// LOCALE RELOAD
// =============================================================================

// SetTable swaps in new locale tables, typically from a file watcher.
// The fallback generator keeps its old table if the new one is unusable.
func (s *Session) SetTable(t *locale.Table) error {
	if t == nil {
		return errors.New("nil locale table")
	}
	s.mu.Lock()
	s.table = t
	s.mu.Unlock()
	return s.fallback.SetTable(t)
}

// SuggestedPrompts returns the starter prompts for the current language.
func (s *Session) SuggestedPrompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.SuggestedPrompts(s.language)
}

// UIStrings returns the localized UI text for the current language.
func (s *Session) UIStrings() locale.UIText {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.UIStrings(s.language)
}
