// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noldarim/bookends/internal/config"
	"github.com/noldarim/bookends/internal/content"
	"github.com/noldarim/bookends/internal/logger"
	"github.com/noldarim/bookends/internal/tui/screens/browser"
)

// StartTUI runs the list browser until the user quits
func StartTUI(cfg config.ListConfig, entries []content.Entry) error {
	log := logger.GetTUILogger()

	p := tea.NewProgram(browser.NewModel(cfg, entries), tea.WithAltScreen())

	log.Info().
		Int("headers", len(cfg.Headers)).
		Int("footers", len(cfg.Footers)).
		Int("entries", len(entries)).
		Msg("Starting browser")

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("Browser exited with error")
		return err
	}
	return nil
}
