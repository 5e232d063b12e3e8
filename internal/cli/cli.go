// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line argument parsing and dispatch for bhasha.
//
// Running bhasha with no arguments starts the TUI. Everything else is a
// subcommand with a small hand-rolled parser; the flag surface is tiny
// enough that the standard flag package would add more ceremony than it
// removes.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
)

// =============================================================================
// VERSION INFO
// =============================================================================

// Version information, overridden at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command identifies the top-level subcommand to run.
type Command int

const (
	// CmdTUI launches the interactive chat TUI (default).
	CmdTUI Command = iota
	// CmdAsk sends a single prompt and prints the response.
	CmdAsk
	// CmdChat starts a line-oriented REPL without the full TUI.
	CmdChat
	// CmdConfig reads or writes configuration values.
	CmdConfig
	// CmdVersion prints version information.
	CmdVersion
	// CmdHelp prints usage.
	CmdHelp
	// CmdUnknown is returned for unrecognized subcommands.
	CmdUnknown
)

// Args carries the parsed flags and positional arguments for a command.
type Args struct {
	// Query is the prompt text for ask (remaining positionals joined).
	Query string

	// Lang overrides the configured language (--lang / -l).
	Lang string

	// Persona overrides the configured persona (--persona / -p).
	Persona string

	// Endpoint overrides the configured endpoint URL (--endpoint).
	Endpoint string

	// Plain disables markdown rendering of responses (--plain).
	Plain bool

	// Subcommand is the config subcommand (get, set, list, path).
	Subcommand string

	// ConfigKey and ConfigVal are the key/value for config get/set.
	ConfigKey string
	ConfigVal string

	// Raw holds the unparsed arguments after the command name.
	Raw []string
}

// =============================================================================
// USAGE
// =============================================================================

const usageText = `bhasha - multilingual AI chat for Indian languages

Usage:
  bhasha                      Start the interactive chat TUI
  bhasha ask <prompt>         Ask a single question and print the reply
  bhasha chat                 Start a plain-terminal chat REPL
  bhasha config get <key>     Print a configuration value
  bhasha config set <key> <value>
                              Set and save a configuration value
  bhasha config list          List all configuration keys and values
  bhasha config path          Print the configuration file path
  bhasha version              Print version information
  bhasha help                 Show this help

Global Flags:
  -l, --lang CODE             Language: en, hi, ta, te, bn
  -p, --persona NAME          Persona: farmer, developer, student,
                              educated, uneducated
  --endpoint URL              Override the endpoint URL
  --plain                     Disable markdown rendering of replies
  -h, --help                  Show this help
  -v, --version               Print version information

Examples:
  bhasha ask "मौसम कैसा है?" --lang hi
  bhasha ask --persona farmer "When should I sow wheat?"
  bhasha chat --lang ta
  bhasha config set endpoint.url http://10.0.0.5:8000

Config keys: run "bhasha config list" for the full set.

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("bhasha version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses os.Args and returns the command to run and its arguments.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Global flags may appear before
// or after the command name.
func ParseArgs(argv []string) (Command, Args) {
	var args Args
	remaining := parseGlobalFlags(argv, &args)

	if args.Lang != "" && !locale.IsSupported(args.Lang) {
		fmt.Fprintf(os.Stderr, "unsupported language %q, using en\n", args.Lang)
		args.Lang = string(locale.LangEnglish)
	}

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "ask":
		args.Query = strings.TrimSpace(strings.Join(remaining, " "))
		return CmdAsk, args

	case "chat":
		return CmdChat, args

	case "config":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args

	case "version":
		return CmdVersion, args

	case "help":
		return CmdHelp, args

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		return CmdUnknown, args
	}
}

// parseGlobalFlags extracts global flags and returns the remaining
// arguments in order. Help and version flags short-circuit via the
// returned list ("help"/"version" pseudo-commands).
func parseGlobalFlags(argv []string, args *Args) []string {
	var remaining []string

	i := 0
	for i < len(argv) {
		arg := argv[i]
		switch {
		case arg == "--lang" || arg == "-l":
			if i+1 < len(argv) {
				args.Lang = argv[i+1]
				i += 2
				continue
			}
			i++

		case strings.HasPrefix(arg, "--lang="):
			args.Lang = strings.TrimPrefix(arg, "--lang=")
			i++

		case arg == "--persona" || arg == "-p":
			if i+1 < len(argv) {
				args.Persona = argv[i+1]
				i += 2
				continue
			}
			i++

		case strings.HasPrefix(arg, "--persona="):
			args.Persona = strings.TrimPrefix(arg, "--persona=")
			i++

		case arg == "--endpoint":
			if i+1 < len(argv) {
				args.Endpoint = argv[i+1]
				i += 2
				continue
			}
			i++

		case strings.HasPrefix(arg, "--endpoint="):
			args.Endpoint = strings.TrimPrefix(arg, "--endpoint=")
			i++

		case arg == "--plain":
			args.Plain = true
			i++

		case arg == "--help" || arg == "-h":
			return []string{"help"}

		case arg == "--version" || arg == "-v":
			return []string{"version"}

		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	return remaining
}

// parseConfigArgs parses the config subcommand and its key/value.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		args.Subcommand = "list"
		return
	}
	args.Subcommand = strings.ToLower(remaining[0])
	if len(remaining) > 1 {
		args.ConfigKey = remaining[1]
	}
	if len(remaining) > 2 {
		args.ConfigVal = strings.Join(remaining[2:], " ")
	}
}

// ValidPersona reports whether the name is a selectable persona.
func ValidPersona(name string) bool {
	for _, p := range locale.Personas {
		if string(p) == name {
			return true
		}
	}
	return name == string(locale.PersonaAIArt)
}
