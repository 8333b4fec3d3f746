// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content provides a list adapter over a slice of text entries.
package content

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/noldarim/bookends/internal/adapter"
	"github.com/noldarim/bookends/internal/logger"
)

// Kind selects how an entry is drawn.
type Kind string

const (
	KindItem    Kind = "item"
	KindSection Kind = "section"
)

// Tags for content cells sit above the range used for headers and footers.
const (
	ItemTag    adapter.Tag = 0x01000001
	SectionTag adapter.Tag = 0x01000002
)

// Entry is one row of content.
type Entry struct {
	Kind  Kind   `yaml:"kind"`
	Title string `yaml:"title"`
	Note  string `yaml:"note,omitempty"`
}

type file struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads entries from a YAML file of the form
//
//	entries:
//	  - kind: section
//	    title: Fruit
//	  - title: Apple
//	    note: red
//
// Entries without a kind are items.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}

	for i := range f.Entries {
		switch f.Entries[i].Kind {
		case "":
			f.Entries[i].Kind = KindItem
		case KindItem, KindSection:
		default:
			return nil, fmt.Errorf("entry %d: unknown kind %q", i, f.Entries[i].Kind)
		}
	}

	log := logger.GetContentLogger()
	log.Info().
		Str("path", path).
		Int("entries", len(f.Entries)).
		Msg("Content loaded")
	return f.Entries, nil
}

// Sample returns a small built-in set of entries.
func Sample() []Entry {
	return []Entry{
		{Kind: KindSection, Title: "Fruit"},
		{Kind: KindItem, Title: "Apple", Note: "red"},
		{Kind: KindItem, Title: "Banana", Note: "yellow"},
		{Kind: KindItem, Title: "Cherry", Note: "dark red"},
		{Kind: KindSection, Title: "Vegetables"},
		{Kind: KindItem, Title: "Carrot", Note: "orange"},
		{Kind: KindItem, Title: "Leek"},
	}
}

// Adapter serves entries as list cells. Entries can be appended while the
// adapter is in use; the count it reports always reflects the current slice.
type Adapter struct {
	entries []Entry
	styles  Styles
}

var _ adapter.Adapter[*Cell] = (*Adapter)(nil)

// NewAdapter returns an adapter over a copy of entries.
func NewAdapter(entries []Entry) *Adapter {
	return &Adapter{
		entries: append([]Entry(nil), entries...),
		styles:  DefaultStyles(),
	}
}

// Append adds entries at the end.
func (a *Adapter) Append(entries ...Entry) {
	a.entries = append(a.entries, entries...)
}

// Entries returns a copy of the current entries.
func (a *Adapter) Entries() []Entry {
	return append([]Entry(nil), a.entries...)
}

// Titles returns the titles of entries of the given kind.
func (a *Adapter) Titles(kind Kind) []string {
	return lo.FilterMap(a.entries, func(e Entry, _ int) (string, bool) {
		return e.Title, e.Kind == kind
	})
}

func (a *Adapter) ItemCount() int {
	return len(a.entries)
}

func (a *Adapter) ItemTag(position int) adapter.Tag {
	if position < 0 || position >= len(a.entries) {
		return adapter.InvalidTag
	}
	if a.entries[position].Kind == KindSection {
		return SectionTag
	}
	return ItemTag
}

func (a *Adapter) CreateCell(tag adapter.Tag) *Cell {
	style := a.styles.Item
	if tag == SectionTag {
		style = a.styles.Section
	}
	return &Cell{tag: tag, style: style, note: a.styles.Note}
}

func (a *Adapter) BindCell(cell *Cell, position int) {
	if cell == nil || position < 0 || position >= len(a.entries) {
		return
	}
	cell.entry = a.entries[position]
	cell.position = position
}

// Cell displays one entry.
type Cell struct {
	tag      adapter.Tag
	style    lipgloss.Style
	note     lipgloss.Style
	entry    Entry
	position int
}

// Tag returns the tag the cell was created for.
func (c *Cell) Tag() adapter.Tag {
	return c.tag
}

// Entry returns the entry last bound to the cell.
func (c *Cell) Entry() Entry {
	return c.entry
}

// Position returns the local position last bound to the cell.
func (c *Cell) Position() int {
	return c.position
}

// Render draws the bound entry.
func (c *Cell) Render() string {
	line := c.style.Render(c.entry.Title)
	if c.entry.Note != "" {
		line += " " + c.note.Render(c.entry.Note)
	}
	return line
}

// Styles used by content cells.
type Styles struct {
	Item    lipgloss.Style
	Section lipgloss.Style
	Note    lipgloss.Style
}

// DefaultStyles returns the standard content styles.
func DefaultStyles() Styles {
	return Styles{
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F3F4F6")).
			PaddingLeft(2),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A78BFA")).
			Bold(true),
		Note: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true),
	}
}
