// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components contains the reusable visual pieces of the bhasha
// TUI: message bubbles and the transcript list, the scrollable chat
// viewport with follow tracking, the persona picker bar, and the starter
// prompt suggestions.
//
// Components are dumb views. They take a *styles.Theme and render state
// handed to them; conversational state lives in the session package and
// flows in through the chat model.
package components
