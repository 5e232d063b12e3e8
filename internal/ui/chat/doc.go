// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the interactive chat screen.
//
// The Model is a standard bubbletea model. It renders snapshots of a
// session.Session and translates key presses into session operations:
// Enter submits, Ctrl+V toggles speech capture, Tab and Ctrl+P drive the
// persona bar, Ctrl+G cycles the conversation language.
//
// Asynchronous events (speak-to-send results, capture end, locale table
// reloads) arrive through an internal channel pumped by waitForEvent, so
// session callbacks never touch the model directly.
package chat
