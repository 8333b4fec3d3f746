// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"flag"

	"github.com/noldarim/bookends/internal/logger"
	"github.com/noldarim/bookends/internal/tui"
)

func viewCommand(args []string) error {
	opts := &commonOptions{}
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	opts.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, entries, err := setup(opts)
	if err != nil {
		return err
	}
	defer logger.CloseGlobal()

	return tui.StartTUI(cfg.List, entries)
}
