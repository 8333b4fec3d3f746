// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/noldarim/bookends/internal/config"
	"github.com/noldarim/bookends/internal/content"
	"github.com/noldarim/bookends/internal/logger"
	"github.com/noldarim/bookends/internal/tui/components/banner"
	"github.com/noldarim/bookends/internal/tui/components/recycler"
)

// chromeLines is the number of lines used by the title, status and help rows.
const chromeLines = 3

// Model is the browser screen: a decorated list plus controls to grow it.
type Model struct {
	cfg    config.ListConfig
	list   *List
	source *content.Adapter
	rows   recycler.Model[Cell]
	keys   keyMap
	help   help.Model

	showHeaders bool
	showFooters bool
	status      string
	width       int
	height      int
	log         zerolog.Logger
}

// NewModel creates a browser over entries, decorated as described by cfg.
func NewModel(cfg config.ListConfig, entries []content.Entry) Model {
	list, source := BuildList(cfg, entries)

	rows := recycler.New[Cell](list, RenderCell, cfg.Height)
	rows.SetMarker(cfg.CursorMarker)
	rows.SnapToVisible()

	return Model{
		cfg:         cfg,
		list:        list,
		source:      source,
		rows:        rows,
		keys:        defaultKeyMap(rows.KeyMap()),
		help:        help.New(),
		showHeaders: cfg.ShowHeaders,
		showFooters: cfg.ShowFooters,
		log:         logger.GetTUILogger(),
	}
}

// List returns the decorated list.
func (m Model) List() *List {
	return m.list
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// Cursor returns the position under the cursor.
func (m Model) Cursor() int {
	return m.rows.Cursor()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil

		case key.Matches(msg, m.keys.AddHeader):
			b := banner.NewHeader(fmt.Sprintf("header %d", m.list.HeaderCount()+1))
			b.SetVisible(m.showHeaders)
			position := m.list.HeaderCount()
			tag := m.list.AddHeader(b)
			m.shiftCursor(position)
			m.status = fmt.Sprintf("Added header with tag %d", tag)
			return m, nil

		case key.Matches(msg, m.keys.AddFooter):
			b := banner.NewFooter(fmt.Sprintf("footer %d", m.list.FooterCount()+1))
			b.SetVisible(m.showFooters)
			tag := m.list.AddFooter(b)
			m.rows.SnapToVisible()
			m.status = fmt.Sprintf("Added footer with tag %d", tag)
			return m, nil

		case key.Matches(msg, m.keys.AppendItem):
			title := fmt.Sprintf("item %d", m.source.ItemCount()+1)
			position := m.list.HeaderCount() + m.source.ItemCount()
			m.source.Append(content.Entry{Kind: content.KindItem, Title: title})
			m.shiftCursor(position)
			m.status = fmt.Sprintf("Appended %q", title)
			return m, nil

		case key.Matches(msg, m.keys.ToggleHeaders):
			m.showHeaders = !m.showHeaders
			m.list.SetHeaderVisibility(m.showHeaders)
			m.rows.SnapToVisible()
			m.status = visibilityStatus("Headers", m.showHeaders)
			return m, nil

		case key.Matches(msg, m.keys.ToggleFooters):
			m.showFooters = !m.showFooters
			m.list.SetFooterVisibility(m.showFooters)
			m.rows.SnapToVisible()
			m.status = visibilityStatus("Footers", m.showFooters)
			return m, nil
		}

	case recycler.SelectedMsg:
		kind, index, text := Describe(m.list, m.source, msg.Position)
		m.status = fmt.Sprintf("Position %d: %s %d %q (tag %d)", msg.Position, kind, index, text, msg.Tag)
		m.log.Debug().
			Int("position", msg.Position).
			Int("tag", int(msg.Tag)).
			Str("region", kind.String()).
			Msg("Row selected")
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}

	updated, cmd := m.rows.Update(msg)
	m.rows = updated.(recycler.Model[Cell])
	return m, cmd
}

// resize gives the list whatever the chrome leaves, unless a fixed height is configured
func (m *Model) resize() {
	height := m.cfg.Height
	if height == 0 && m.height > 0 {
		chrome := chromeLines
		if m.help.ShowAll {
			chrome += len(m.keys.FullHelp()[0]) - 1
		}
		height = max(1, m.height-chrome)
	}
	m.rows.SetSize(m.width, height)
}

// shiftCursor follows a row inserted at position: a cursor at or below it
// moves down with its row, then leaves any hidden row it ends up on.
func (m *Model) shiftCursor(position int) {
	if cursor := m.rows.Cursor(); cursor >= position {
		m.rows.SetCursor(cursor + 1)
	}
	m.rows.SnapToVisible()
}

func visibilityStatus(what string, visible bool) string {
	if visible {
		return what + " shown"
	}
	return what + " hidden"
}

func (m Model) View() string {
	title := titleStyle.Render("bookends")

	stats := statsStyle.Render(fmt.Sprintf("%d headers · %d items · %d footers",
		m.list.HeaderCount(), m.source.ItemCount(), m.list.FooterCount()))
	status := stats
	if m.status != "" {
		status = statusStyle.Render(m.status) + "  " + stats
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.rows.View(),
		status,
		m.help.View(m.keys),
	)
}
