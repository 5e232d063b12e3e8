// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale holds the language and persona enumerations and the
// localized lookup tables consumed by the chat core.
//
// The chat core never owns this data: greetings, canned fallback
// responses, suggested prompts, and interface strings are injected as a
// Table value. Every accessor applies the same fallback chain (requested
// language, then English, then the zero value), so callers never see a
// missing-language error.
//
// Deployments can overlay the builtin tables with a personas.toml file;
// Load merges it and Watcher hot-reloads it on change.
package locale
