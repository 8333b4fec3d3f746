// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/noldarim/bookends/internal/tui/components/recycler"
)

type keyMap struct {
	list          recycler.KeyMap
	AddHeader     key.Binding
	AddFooter     key.Binding
	AppendItem    key.Binding
	ToggleHeaders key.Binding
	ToggleFooters key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap(list recycler.KeyMap) keyMap {
	return keyMap{
		list: list,
		AddHeader: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "add header"),
		),
		AddFooter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "add footer"),
		),
		AppendItem: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "append item"),
		),
		ToggleHeaders: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle headers"),
		),
		ToggleFooters: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "toggle footers"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.list.Up, k.list.Down, k.AddHeader, k.AddFooter, k.AppendItem, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.list.Up, k.list.Down, k.list.Top, k.list.Bottom, k.list.Select},
		{k.AddHeader, k.AddFooter, k.AppendItem},
		{k.ToggleHeaders, k.ToggleFooters, k.Help, k.Quit},
	}
}
