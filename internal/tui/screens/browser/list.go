// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"github.com/noldarim/bookends/internal/bookends"
	"github.com/noldarim/bookends/internal/config"
	"github.com/noldarim/bookends/internal/content"
	"github.com/noldarim/bookends/internal/tui/components/banner"
)

// List is the decorated content list shown by the browser.
type List = bookends.Bookends[*content.Cell]

// Cell is a row of List.
type Cell = bookends.Cell[*content.Cell]

// BuildList wraps entries with the headers and footers named in cfg and
// applies the configured visibility.
func BuildList(cfg config.ListConfig, entries []content.Entry) (*List, *content.Adapter) {
	source := content.NewAdapter(entries)
	list := bookends.New[*content.Cell](source)

	for _, text := range cfg.Headers {
		list.AddHeader(banner.NewHeader(text))
	}
	for _, text := range cfg.Footers {
		list.AddFooter(banner.NewFooter(text))
	}
	list.SetHeaderVisibility(cfg.ShowHeaders)
	list.SetFooterVisibility(cfg.ShowFooters)

	return list, source
}

// RenderCell draws a row of List. Hidden banners draw as an empty string.
func RenderCell(c Cell) string {
	switch c.Kind() {
	case bookends.HeaderCell, bookends.FooterCell:
		if b, ok := c.View().(*banner.Model); ok {
			return b.View()
		}
		return ""
	default:
		if c.Delegated() == nil {
			return ""
		}
		return c.Delegated().Render()
	}
}

// Describe returns a plain description of a position of list: the region,
// the index inside it, and the text shown there.
func Describe(list *List, source *content.Adapter, position int) (bookends.CellKind, int, string) {
	kind, index := list.Region(position)
	switch kind {
	case bookends.HeaderCell:
		if b, ok := list.Header(index).(*banner.Model); ok {
			return kind, index, b.Text()
		}
	case bookends.FooterCell:
		if b, ok := list.Footer(index).(*banner.Model); ok {
			return kind, index, b.Text()
		}
	default:
		entries := source.Entries()
		if index >= 0 && index < len(entries) {
			return kind, index, entries[index].Title
		}
	}
	return kind, index, ""
}
