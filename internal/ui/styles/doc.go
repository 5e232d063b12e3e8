// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles defines the color palette and lip gloss styles for the
// bhasha TUI.
//
// Colors are AdaptiveColor pairs so the same theme works on light and
// dark terminals. Theme bundles the configured styles; components take a
// *Theme and never construct colors themselves.
package styles
