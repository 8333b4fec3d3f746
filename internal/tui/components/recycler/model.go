// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package recycler is a list component that pulls its rows from an
// adapter.Adapter. It asks the adapter for a cell once per tag, keeps that
// cell, and rebinds it for every visible position carrying the same tag.
package recycler

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/bookends/internal/adapter"
)

// RenderFunc draws a bound cell. An empty result hides the row; the row
// still occupies its position.
type RenderFunc[C any] func(cell C) string

// SelectedMsg is sent when the user selects the row under the cursor
type SelectedMsg struct {
	Position int
	Tag      adapter.Tag
}

// Model renders the rows of an adapter and tracks a cursor over them.
type Model[C any] struct {
	adapter adapter.Adapter[C]
	render  RenderFunc[C]
	cells   map[adapter.Tag]C
	created *int

	keys   KeyMap
	marker string
	cursor int
	offset int
	width  int
	height int
}

var _ tea.Model = Model[struct{}]{}

// New creates a list over a. height limits the rendered lines; 0 renders every row.
func New[C any](a adapter.Adapter[C], render RenderFunc[C], height int) Model[C] {
	return Model[C]{
		adapter: a,
		render:  render,
		cells:   make(map[adapter.Tag]C),
		created: new(int),
		keys:    DefaultKeyMap(),
		marker:  "> ",
		height:  height,
	}
}

// SetMarker sets the prefix drawn in front of the row under the cursor
func (m *Model[C]) SetMarker(marker string) {
	m.marker = marker
}

// SetSize sets the area available to the list
func (m *Model[C]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollToCursor()
}

// KeyMap returns the navigation bindings
func (m Model[C]) KeyMap() KeyMap {
	return m.keys
}

// Cursor returns the position under the cursor
func (m Model[C]) Cursor() int {
	return m.cursor
}

// Offset returns the first position in view
func (m Model[C]) Offset() int {
	return m.offset
}

// SetCursor moves the cursor to position, clamped to the current rows
func (m *Model[C]) SetCursor(position int) {
	m.cursor = position
	m.clamp()
	m.scrollToCursor()
}

// SnapToVisible moves the cursor off a hidden row, preferring the next
// visible row and falling back to the previous one.
func (m *Model[C]) SnapToVisible() {
	m.clamp()
	if m.adapter.ItemCount() == 0 || m.rowHeight(m.cursor) > 0 {
		return
	}
	start := m.cursor
	m.move(1)
	if m.cursor == start {
		m.move(-1)
	}
	m.scrollToCursor()
}

// CellsCreated returns how many cells the adapter has been asked to create
func (m Model[C]) CellsCreated() int {
	return *m.created
}

func (m Model[C]) Init() tea.Cmd {
	return nil
}

func (m Model[C]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.clamp()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Top):
			m.cursor = -1
			m.move(1)
		case key.Matches(msg, m.keys.Bottom):
			m.cursor = m.adapter.ItemCount()
			m.move(-1)
		case key.Matches(msg, m.keys.Select):
			count := m.adapter.ItemCount()
			if count == 0 {
				return m, nil
			}
			selected := SelectedMsg{Position: m.cursor, Tag: m.adapter.ItemTag(m.cursor)}
			return m, func() tea.Msg { return selected }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	m.scrollToCursor()
	return m, nil
}

func (m Model[C]) View() string {
	count := m.adapter.ItemCount()
	if count == 0 {
		return ""
	}

	gutter := strings.Repeat(" ", lipgloss.Width(m.marker))
	var lines []string
	for p := m.offset; p < count; p++ {
		row := m.row(p)
		if row == "" {
			continue
		}
		prefix := gutter
		if p == m.cursor {
			prefix = m.marker
		}
		for i, line := range strings.Split(row, "\n") {
			if i > 0 {
				prefix = gutter
			}
			lines = append(lines, prefix+line)
			if m.height > 0 && len(lines) == m.height {
				return strings.Join(lines, "\n")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// row binds the cell for position and renders it
func (m Model[C]) row(position int) string {
	tag := m.adapter.ItemTag(position)
	if tag == adapter.InvalidTag {
		return ""
	}
	cell, ok := m.cells[tag]
	if !ok {
		cell = m.adapter.CreateCell(tag)
		m.cells[tag] = cell
		*m.created++
	}
	m.adapter.BindCell(cell, position)
	return m.render(cell)
}

func (m Model[C]) rowHeight(position int) int {
	row := m.row(position)
	if row == "" {
		return 0
	}
	return lipgloss.Height(row)
}

// move steps the cursor by delta, skipping hidden rows. The cursor stays put
// when there is no visible row in that direction.
func (m *Model[C]) move(delta int) {
	count := m.adapter.ItemCount()
	for p := m.cursor + delta; p >= 0 && p < count; p += delta {
		if m.rowHeight(p) > 0 {
			m.cursor = p
			return
		}
	}
	m.clamp()
}

// clamp keeps cursor and offset inside the current rows. The row count is
// read fresh because the adapter may have changed since the last message.
func (m *Model[C]) clamp() {
	count := m.adapter.ItemCount()
	m.cursor = max(0, min(m.cursor, count-1))
	m.offset = max(0, min(m.offset, m.cursor))
}

func (m *Model[C]) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
		return
	}
	if m.height <= 0 {
		return
	}
	for m.offset < m.cursor && m.linesBetween(m.offset, m.cursor) > m.height {
		m.offset++
	}
}

func (m Model[C]) linesBetween(from, to int) int {
	lines := 0
	for p := from; p <= to; p++ {
		lines += m.rowHeight(p)
	}
	return lines
}
