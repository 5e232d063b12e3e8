// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Plain-terminal chat REPL for the bhasha CLI.
//
// Handles "bhasha chat" which runs the conversation loop without the full
// TUI: line-edited input with persistent history, localized greetings, and
// the same canned-response fallback as the TUI.
//
// Interactive commands:
//   /lang [code]      Show or switch language (en, hi, ta, te, bn)
//   /persona [name]   Show or switch persona
//   /history          Print the transcript so far
//   /help             Show commands
//   /quit             Exit (also Ctrl+D)

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/bhasha-ai/bhasha-tui/internal/config"
	"github.com/bhasha-ai/bhasha-tui/internal/fallback"
	"github.com/bhasha-ai/bhasha-tui/internal/inference"
	"github.com/bhasha-ai/bhasha-tui/internal/locale"
	"github.com/bhasha-ai/bhasha-tui/internal/model"
	"github.com/bhasha-ai/bhasha-tui/internal/session"
	"github.com/bhasha-ai/bhasha-tui/internal/speech"
	"github.com/bhasha-ai/bhasha-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Saffron).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatInput provides line editing and input history for the REPL.
type ChatInput struct {
	line        *liner.State
	historyFile string
}

// NewChatInput creates a ChatInput backed by the config-dir history file.
func NewChatInput() *ChatInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	in := &ChatInput{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	in.loadHistory()
	return in
}

func (c *ChatInput) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads one line with history navigation.
func (c *ChatInput) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

func (c *ChatInput) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and releases the terminal.
func (c *ChatInput) Close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChat handles the "chat" command. Returns the process exit code.
func HandleChat(args Args) int {
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
		if loaded, err := locale.Load(cfg.Locale.TablePath); err == nil {
			table = loaded
		} else {
			fmt.Fprintf(os.Stderr, "locale table %s: %v\n", cfg.Locale.TablePath, err)
		}
	}

	gen, err := fallback.New(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fallback setup: %v\n", err)
		return 1
	}

	sess := session.New(client, gen, speech.Unavailable{}, table, session.Config{
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
	if persona != "" {
		if ValidPersona(persona) {
			sess.SelectPersona(locale.Persona(persona))
		} else {
			fmt.Fprintln(os.Stderr, warningStyle.Render("unknown persona: "+persona))
		}
	}

	input := NewChatInput()
	defer input.Close()

	printWelcome(sess, table)
	printNewMessages(sess, 0)
	seen := len(sess.Snapshot().Messages)

	for {
		text, err := input.ReadInput(promptStyle.Render("you> "))
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "/") {
			if quit := runSlashCommand(sess, table, trimmed); quit {
				return 0
			}
			seen = printNewMessages(sess, seen)
			continue
		}

		result, err := sess.Submit(context.Background(), text)
		if err != nil {
			fmt.Println(warningStyle.Render(err.Error()))
			continue
		}
		if result.Source == session.SourceFallback {
			fmt.Println(infoStyle.Render("(offline response)"))
		}
		fmt.Println(formatMessage(result.Message))
		seen = len(sess.Snapshot().Messages)
	}
}

// =============================================================================
// REPL HELPERS
// =============================================================================

func printWelcome(sess *session.Session, table *locale.Table) {
	lang := sess.Language()
	fmt.Println(welcomeStyle.Render("bhasha chat"))
	fmt.Println(infoStyle.Render(fmt.Sprintf("language: %s    endpoint replies in your language",
		table.LanguageName(lang, lang))))
	fmt.Println(infoStyle.Render("type /help for commands, Ctrl+D to exit"))
	fmt.Println()
}

// printNewMessages prints transcript entries appended since the last call
// (greetings from persona switches, mostly) and returns the new count.
func printNewMessages(sess *session.Session, seen int) int {
	msgs := sess.Snapshot().Messages
	for _, m := range msgs[seen:] {
		fmt.Println(formatMessage(m))
	}
	return len(msgs)
}

func formatMessage(m *model.Message) string {
	name := m.Sender.DisplayName()
	if m.Sender == model.SenderUser {
		return promptStyle.Render(name+": ") + m.Text
	}
	return commandStyle.Render(name+": ") + m.Text
}

// runSlashCommand executes an interactive command. Returns true to exit.
func runSlashCommand(sess *session.Session, table *locale.Table, cmd string) bool {
	fields := strings.Fields(cmd)
	switch strings.ToLower(fields[0]) {
	case "/quit", "/q", "/exit":
		return true

	case "/help", "/h":
		fmt.Println(commandStyle.Render("/lang [code]") + infoStyle.Render("     show or switch language"))
		fmt.Println(commandStyle.Render("/persona [name]") + infoStyle.Render("  show or switch persona"))
		fmt.Println(commandStyle.Render("/history") + infoStyle.Render("         print the transcript"))
		fmt.Println(commandStyle.Render("/quit") + infoStyle.Render("            exit"))

	case "/lang", "/language":
		if len(fields) < 2 {
			fmt.Println(infoStyle.Render("language: " + sess.Language().String()))
			return false
		}
		code := fields[1]
		if !locale.IsSupported(code) {
			fmt.Println(warningStyle.Render("supported: en, hi, ta, te, bn"))
			return false
		}
		sess.SetLanguage(locale.ParseLanguage(code))
		fmt.Println(infoStyle.Render("language set to " + table.LanguageName(sess.Language(), sess.Language())))

	case "/persona":
		if len(fields) < 2 {
			current := sess.Persona()
			if current == "" {
				fmt.Println(infoStyle.Render("no persona selected"))
			} else {
				fmt.Println(infoStyle.Render("persona: " + current.String()))
			}
			return false
		}
		name := fields[1]
		if !ValidPersona(name) {
			names := make([]string, len(locale.Personas))
			for i, p := range locale.Personas {
				names[i] = string(p)
			}
			fmt.Println(warningStyle.Render("personas: " + strings.Join(names, ", ")))
			return false
		}
		sess.SelectPersona(locale.Persona(name))

	case "/history":
		for _, m := range sess.Snapshot().Messages {
			fmt.Println(formatMessage(m))
		}

	default:
		fmt.Println(warningStyle.Render("unknown command, try /help"))
	}
	return false
}
