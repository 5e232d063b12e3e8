// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads, validates, and persists bhasha configuration.
//
// The configuration covers four concerns: the remote endpoint (URL,
// timeout, rate limit), chat defaults (language, persona, fallback
// delay), the speech capture command, and optional locale table
// overrides.
//
// Precedence, highest first:
//
//	BHASHA_* environment variables (optionally via .env)
//	~/.bhasha/config.toml
//	~/.bhasha/config.json
//	built-in defaults
package config
