// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package scrollstate

import "testing"

func TestNewStartsPinned(t *testing.T) {
	tr := New()
	if !tr.PinnedToBottom() {
		t.Error("new tracker should be pinned to bottom")
	}
	if tr.HasUnseen() {
		t.Error("new tracker should have nothing unseen")
	}
}

func TestObserve(t *testing.T) {
	tests := []struct {
		name       string
		atBottom   bool
		wantPinned bool
		wantUnseen bool
	}{
		{"arrival while at bottom keeps following", true, true, false},
		{"arrival while scrolled up flags unseen", false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			tr.Observe(tt.atBottom)
			if tr.PinnedToBottom() != tt.wantPinned {
				t.Errorf("PinnedToBottom = %v, want %v", tr.PinnedToBottom(), tt.wantPinned)
			}
			if tr.HasUnseen() != tt.wantUnseen {
				t.Errorf("HasUnseen = %v, want %v", tr.HasUnseen(), tt.wantUnseen)
			}
		})
	}
}

func TestScrollingBackDownClearsUnseen(t *testing.T) {
	tr := New()
	tr.Observe(false)
	if !tr.HasUnseen() {
		t.Fatal("expected unseen after scrolled-up arrival")
	}

	tr.SetAtBottom(true)
	if !tr.PinnedToBottom() || tr.HasUnseen() {
		t.Errorf("after reaching bottom: pinned=%v unseen=%v, want true/false",
			tr.PinnedToBottom(), tr.HasUnseen())
	}
}

func TestScrollingUpUnpinsWithoutUnseen(t *testing.T) {
	tr := New()
	tr.SetAtBottom(false)
	if tr.PinnedToBottom() {
		t.Error("scrolling up should unpin")
	}
	if tr.HasUnseen() {
		t.Error("scrolling up alone should not flag unseen")
	}
}

func TestJumpToBottom(t *testing.T) {
	tr := New()
	tr.Observe(false)
	tr.JumpToBottom()
	if !tr.PinnedToBottom() || tr.HasUnseen() {
		t.Errorf("after jump: pinned=%v unseen=%v, want true/false",
			tr.PinnedToBottom(), tr.HasUnseen())
	}
}

func TestUnseenPersistsWhileScrolledUp(t *testing.T) {
	tr := New()
	tr.Observe(false)
	tr.Observe(false)
	tr.SetAtBottom(false)
	if !tr.HasUnseen() {
		t.Error("unseen flag should persist until the bottom is reached")
	}
}
