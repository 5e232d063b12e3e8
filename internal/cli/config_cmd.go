// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command handler for the bhasha CLI.
//
// Handles "bhasha config" with subcommands:
//   get <key>          Print one value
//   set <key> <value>  Set, validate, and save one value
//   list               Print all keys and current values
//   path               Print the config file location

package cli

import (
	"fmt"
	"os"

	"github.com/bhasha-ai/bhasha-tui/internal/config"
)

// HandleConfig handles the "config" command. Returns the process exit code.
func HandleConfig(args Args) int {
	cfg := config.Global()

	switch args.Subcommand {
	case "get":
		if args.ConfigKey == "" {
			fmt.Fprintln(os.Stderr, "usage: bhasha config get <key>")
			return 1
		}
		value, err := cfg.Get(args.ConfigKey)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(value)
		return 0

	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			fmt.Fprintln(os.Stderr, "usage: bhasha config set <key> <value>")
			return 1
		}
		if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "save: %v\n", err)
			return 1
		}
		fmt.Printf("%s = %s\n", args.ConfigKey, args.ConfigVal)
		return 0

	case "list", "":
		for _, key := range config.Keys() {
			value, err := cfg.Get(key)
			if err != nil {
				continue
			}
			fmt.Printf("%-32s %s\n", key, value)
		}
		return 0

	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(path)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand: %s\n", args.Subcommand)
		fmt.Fprintln(os.Stderr, "usage: bhasha config [get|set|list|path]")
		return 1
	}
}
