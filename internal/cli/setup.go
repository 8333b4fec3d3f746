// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"flag"
	"fmt"

	"github.com/noldarim/bookends/internal/config"
	"github.com/noldarim/bookends/internal/content"
	"github.com/noldarim/bookends/internal/logger"
)

type commonOptions struct {
	configPath  string
	contentPath string
}

func (o *commonOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "config.yaml", "Path to config file")
	fs.StringVar(&o.contentPath, "content", "", "YAML content file (overrides list.content_file)")
}

// setup loads config, starts logging and reads the list content
func setup(opts *commonOptions) (*config.AppConfig, []content.Entry, error) {
	cfg, err := config.NewConfig(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if opts.contentPath != "" {
		cfg.List.ContentFile = opts.contentPath
	}

	entries, err := loadEntries(cfg.List.ContentFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, entries, nil
}

func loadEntries(path string) ([]content.Entry, error) {
	if path == "" {
		log := logger.GetCLILogger()
		log.Debug().Msg("No content file configured, using sample entries")
		return content.Sample(), nil
	}
	entries, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return entries, nil
}
