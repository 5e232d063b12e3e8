// bhasha TUI - Multilingual AI chat for Indian languages in the terminal.
//
// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhasha-ai/bhasha-tui/internal/cli"
	"github.com/bhasha-ai/bhasha-tui/internal/config"
	"github.com/bhasha-ai/bhasha-tui/internal/fallback"
	"github.com/bhasha-ai/bhasha-tui/internal/inference"
	"github.com/bhasha-ai/bhasha-tui/internal/locale"
	"github.com/bhasha-ai/bhasha-tui/internal/session"
	"github.com/bhasha-ai/bhasha-tui/internal/speech"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/chat"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		os.Exit(cli.HandleAsk(args))
	case cli.CmdChat:
		os.Exit(cli.HandleChat(args))
	case cli.CmdConfig:
		os.Exit(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	case cli.CmdUnknown:
		cli.PrintUsage()
		os.Exit(1)
	}
}

// runTUI assembles the session from config and runs the bubbletea program.
func runTUI(args cli.Args) {
	cfg := config.Global()

	endpoint := cfg.Endpoint.URL
	if args.Endpoint != "" {
		endpoint = args.Endpoint
	}

	client := inference.NewClientWithConfig(&inference.ClientConfig{
		BaseURL:              endpoint,
		Timeout:              cfg.SendTimeout(),
		MaxRequestsPerSecond: cfg.Endpoint.MaxRequestsPerSecond,
	})

	table := locale.Builtin()
	if cfg.Locale.TablePath != "" {
		loaded, err := locale.Load(cfg.Locale.TablePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "locale table %s: %v\n", cfg.Locale.TablePath, err)
		} else {
			table = loaded
		}
	}

	gen, err := fallback.New(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	recognizer := speech.Detect(cfg.Speech.Command)

	sess := session.New(client, gen, recognizer, table, session.Config{
		SendTimeout:   cfg.SendTimeout(),
		FallbackDelay: cfg.FallbackDelay(),
	})

	lang := locale.ParseLanguage(cfg.Chat.Language)
	if args.Lang != "" {
		lang = locale.ParseLanguage(args.Lang)
	}
	sess.SetLanguage(lang)

	persona := args.Persona
	if persona == "" {
		persona = cfg.Chat.Persona
	}
	if persona != "" && cli.ValidPersona(persona) {
		sess.SelectPersona(locale.Persona(persona))
	}

	m := chat.New(sess, table, styles.NewTheme())

	// Reload the locale overlay on file change while the TUI runs.
	if cfg.Locale.TablePath != "" && cfg.Locale.WatchTable {
		watcher, err := locale.NewWatcher(cfg.Locale.TablePath, m.NotifyTableReload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "locale watcher: %v\n", err)
		} else if err := watcher.Watch(); err != nil {
			fmt.Fprintf(os.Stderr, "locale watcher: %v\n", err)
			watcher.Close()
		} else {
			defer watcher.Close()
		}
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
