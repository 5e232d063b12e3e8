// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, args := ParseArgs(nil)
	assert.Equal(t, CmdTUI, cmd)
	assert.Empty(t, args.Lang)
}

func TestParseAsk(t *testing.T) {
	cmd, args := ParseArgs([]string{"ask", "what", "is", "crop", "rotation"})
	assert.Equal(t, CmdAsk, cmd)
	assert.Equal(t, "what is crop rotation", args.Query)
}

func TestParseAskWithGlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"--lang", "hi", "--persona", "farmer", "ask", "नमस्ते"})
	assert.Equal(t, CmdAsk, cmd)
	assert.Equal(t, "hi", args.Lang)
	assert.Equal(t, "farmer", args.Persona)
	assert.Equal(t, "नमस्ते", args.Query)
}

func TestParseFlagsAfterCommand(t *testing.T) {
	cmd, args := ParseArgs([]string{"ask", "hello", "--lang=ta", "--plain"})
	assert.Equal(t, CmdAsk, cmd)
	assert.Equal(t, "ta", args.Lang)
	assert.True(t, args.Plain)
	assert.Equal(t, "hello", args.Query)
}

func TestParseUnsupportedLangFallsBack(t *testing.T) {
	_, args := ParseArgs([]string{"--lang", "fr", "chat"})
	assert.Equal(t, "en", args.Lang)
}

func TestParseChat(t *testing.T) {
	cmd, args := ParseArgs([]string{"chat", "--endpoint", "http://10.0.0.5:8000"})
	assert.Equal(t, CmdChat, cmd)
	assert.Equal(t, "http://10.0.0.5:8000", args.Endpoint)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		sub  string
		key  string
		val  string
	}{
		{"bare config lists", []string{"config"}, "list", "", ""},
		{"get", []string{"config", "get", "endpoint.url"}, "get", "endpoint.url", ""},
		{"set", []string{"config", "set", "chat.language", "hi"}, "set", "chat.language", "hi"},
		{"set joins value words", []string{"config", "set", "speech.command", "stt --mic default"}, "set", "speech.command", "stt --mic default"},
		{"path", []string{"config", "path"}, "path", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := ParseArgs(tt.argv)
			assert.Equal(t, CmdConfig, cmd)
			assert.Equal(t, tt.sub, args.Subcommand)
			assert.Equal(t, tt.key, args.ConfigKey)
			assert.Equal(t, tt.val, args.ConfigVal)
		})
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	cmd, _ := ParseArgs([]string{"--help"})
	assert.Equal(t, CmdHelp, cmd)

	cmd, _ = ParseArgs([]string{"-v"})
	assert.Equal(t, CmdVersion, cmd)

	cmd, _ = ParseArgs([]string{"version"})
	assert.Equal(t, CmdVersion, cmd)

	cmd, _ = ParseArgs([]string{"help"})
	assert.Equal(t, CmdHelp, cmd)
}

func TestParseUnknownCommand(t *testing.T) {
	cmd, _ := ParseArgs([]string{"frobnicate"})
	assert.Equal(t, CmdUnknown, cmd)
}

func TestValidPersona(t *testing.T) {
	assert.True(t, ValidPersona("farmer"))
	assert.True(t, ValidPersona("uneducated"))
	assert.True(t, ValidPersona("aiArt"))
	assert.False(t, ValidPersona("wizard"))
	assert.False(t, ValidPersona(""))
}
