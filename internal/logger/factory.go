// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Static logger getters matching the keys of log.levels in config.yaml

// GetListLogger returns the logger for header/footer list decoration
func GetListLogger() zerolog.Logger {
	return GetLogger("list")
}

// GetContentLogger returns the logger for content adapters
func GetContentLogger() zerolog.Logger {
	return GetLogger("content")
}

// GetTUILogger returns the logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetCLILogger returns the logger for command line handling
func GetCLILogger() zerolog.Logger {
	return GetLogger("cli")
}
