// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"github.com/noldarim/bookends/internal/config"
	"github.com/noldarim/bookends/internal/content"
)

// Sample data creators for consistent testing

// SampleEntries returns one section followed by two items
func SampleEntries() []content.Entry {
	return []content.Entry{
		{Kind: content.KindSection, Title: "Fruit"},
		{Kind: content.KindItem, Title: "Apple"},
		{Kind: content.KindItem, Title: "Pear"},
	}
}

// SampleListConfig returns a list config with one visible header and one visible footer
func SampleListConfig() config.ListConfig {
	return config.ListConfig{
		Headers:      []string{"Top"},
		Footers:      []string{"Bottom"},
		ShowHeaders:  true,
		ShowFooters:  true,
		CursorMarker: "> ",
	}
}
