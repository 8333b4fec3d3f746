// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
)

const (
	appName    = "bookends"
	appVersion = "0.1.0"
)

// Execute runs the CLI application
func Execute() error {
	return run(os.Args[1:], os.Stdout)
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return printUsage(out)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "view":
		return viewCommand(rest)
	case "layout":
		return layoutCommand(rest, out)
	case "version":
		fmt.Fprintf(out, "%s version %s\n", appName, appVersion)
		return nil
	case "help", "-h", "--help":
		return printUsage(out)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		return printUsage(out)
	}
}

func printUsage(out io.Writer) error {
	fmt.Fprintf(out, `%s - list browser with headers and footers

Usage:
  %s <command> [arguments]

Commands:
  view           Browse the decorated list interactively
  layout         Print how each list position maps to headers, content and footers
  version        Print version information
  help           Show this help message

Flags (view, layout):
  -config <path>    Path to config file (default config.yaml)
  -content <path>   YAML content file, overrides list.content_file

Examples:
  %s view
  %s view -content ./items.yaml
  %s layout -config ./config/config.yaml

`, appName, appName, appName, appName, appName)
	return nil
}
