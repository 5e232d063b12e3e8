// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single prompt command handler for the bhasha CLI.
//
// Handles "bhasha ask" which sends one prompt to the endpoint and prints
// the reply. When the endpoint fails, the localized canned response is
// printed instead so scripts always get output on stdout; the real error
// goes to stderr.
//
// Examples:
//   bhasha ask "What is crop rotation?"
//   bhasha ask --lang hi --persona farmer "गेहूं कब बोना चाहिए?"
//   echo "translate this" | bhasha ask

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/bhasha-ai/bhasha-tui/internal/config"
	"github.com/bhasha-ai/bhasha-tui/internal/fallback"
	"github.com/bhasha-ai/bhasha-tui/internal/inference"
	"github.com/bhasha-ai/bhasha-tui/internal/locale"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// renderMarkdown renders content for terminal display. Returns the
// original content if the renderer cannot be built or fails.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse prints a response, rendering markdown only when stdout
// is a TTY so piped output stays clean.
func displayResponse(response string, plain bool) {
	if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(renderMarkdown(response))
		return
	}
	fmt.Println(response)
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAsk handles the "ask" command. Returns the process exit code.
func HandleAsk(args Args) int {
	cfg := config.Global()

	query := args.Query
	if query == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err == nil {
			query = strings.TrimSpace(string(data))
		}
	}
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: bhasha ask <prompt>")
		return 1
	}

	lang := locale.ParseLanguage(cfg.Chat.Language)
	if args.Lang != "" {
		lang = locale.ParseLanguage(args.Lang)
	}

	persona := locale.Persona(cfg.Chat.Persona)
	if args.Persona != "" {
		if !ValidPersona(args.Persona) {
			fmt.Fprintf(os.Stderr, "unknown persona: %s\n", args.Persona)
			return 1
		}
		persona = locale.Persona(args.Persona)
	}

	endpoint := cfg.Endpoint.URL
	if args.Endpoint != "" {
		endpoint = args.Endpoint
	}

	client := inference.NewClientWithConfig(&inference.ClientConfig{
		BaseURL:              endpoint,
		Timeout:              cfg.SendTimeout(),
		MaxRequestsPerSecond: cfg.Endpoint.MaxRequestsPerSecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SendTimeout())
	defer cancel()

	reply, err := client.Send(ctx, inference.Request{
		Prompt:  query,
		Lang:    lang,
		Persona: persona,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "endpoint error: %v\n", err)
		gen, genErr := fallback.New(locale.Builtin())
		if genErr != nil {
			return 1
		}
		displayResponse(gen.Generate(lang), args.Plain)
		return 1
	}

	displayResponse(reply, args.Plain)
	return 0
}
