// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages.
//
// A Message is immutable once created and carries only its text, its
// sender, and a generated identity. The conversation transcript itself
// is owned by the session package; nothing in this package mutates or
// aliases message lists.
package model
