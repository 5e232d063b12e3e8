// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the bhasha command-line interface: argument
// parsing, the one-shot ask command, the plain-terminal chat REPL, and
// the config command. The interactive TUI lives in internal/ui.
package cli
