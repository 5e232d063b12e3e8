// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scrollstate tracks whether the chat view follows new messages
// and whether any have arrived out of sight. It is pure bookkeeping: the
// viewport reports scroll position, the tracker answers two questions.
package scrollstate

// Tracker holds the follow/unseen state for a message list view.
// The zero value is not useful; use New.
type Tracker struct {
	pinnedToBottom bool
	hasUnseen      bool
}

// New returns a tracker pinned to the bottom with nothing unseen.
func New() *Tracker {
	return &Tracker{pinnedToBottom: true}
}

// PinnedToBottom reports whether the view should follow new messages.
func (t *Tracker) PinnedToBottom() bool { return t.pinnedToBottom }

// HasUnseen reports whether messages arrived while scrolled up.
func (t *Tracker) HasUnseen() bool { return t.hasUnseen }

// Observe records that a new message arrived. atBottom is the view's
// position at the moment of arrival: pinned views stay pinned, scrolled-up
// views keep their place and raise the unseen flag.
func (t *Tracker) Observe(atBottom bool) {
	if atBottom {
		t.pinnedToBottom = true
		t.hasUnseen = false
	} else {
		t.pinnedToBottom = false
		t.hasUnseen = true
	}
}

// SetAtBottom records a scroll position change by the user. Reaching the
// bottom re-pins the view and clears the unseen flag; leaving it unpins.
func (t *Tracker) SetAtBottom(atBottom bool) {
	t.pinnedToBottom = atBottom
	if atBottom {
		t.hasUnseen = false
	}
}

// JumpToBottom handles the explicit jump affordance: pin and clear.
func (t *Tracker) JumpToBottom() {
	t.pinnedToBottom = true
	t.hasUnseen = false
}
