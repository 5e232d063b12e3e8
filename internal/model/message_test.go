// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

// =============================================================================
// SENDER TESTS
// =============================================================================

func TestSender_DisplayName(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "You"},
		{SenderAI, "Bhasha"},
		{Sender("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.sender.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.sender, got, tc.want)
		}
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("Hello")

	if msg.Sender != SenderUser {
		t.Errorf("Sender = %q, want 'user'", msg.Sender)
	}
	if msg.Text != "Hello" {
		t.Errorf("Text = %q, want 'Hello'", msg.Text)
	}
	if !strings.HasPrefix(msg.ID, "msg_") {
		t.Errorf("ID = %q, want msg_ prefix", msg.ID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestNewAIMessage(t *testing.T) {
	msg := NewAIMessage("नमस्ते किसान")

	if msg.Sender != SenderAI {
		t.Errorf("Sender = %q, want 'ai'", msg.Sender)
	}
	if msg.Text != "नमस्ते किसान" {
		t.Errorf("Text = %q", msg.Text)
	}
}

func TestMessage_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewUserMessage("x")
		if seen[msg.ID] {
			t.Fatalf("duplicate ID %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"long text truncated", "hello world", 8, "hello..."},
		{"devanagari not split", "नमस्ते किसान भाई", 10, "नमस्ते ..."},
		{"tiny max", "hello", 2, "he"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := NewUserMessage(tc.text)
			if got := msg.Preview(tc.maxLen); got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestMessage_IsEmpty(t *testing.T) {
	if !NewAIMessage("").IsEmpty() {
		t.Error("empty message should report IsEmpty")
	}
	if NewAIMessage("x").IsEmpty() {
		t.Error("non-empty message should not report IsEmpty")
	}
}
