// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noldarim/bookends/internal/bookends"
	"github.com/noldarim/bookends/internal/content"
	"github.com/noldarim/bookends/internal/tui/components/recycler"
	"github.com/noldarim/bookends/test/testutil"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := testutil.SendMessages(m, msgs...)
	require.IsType(t, Model{}, updated)
	return updated.(Model), cmd
}

func TestBuildList(t *testing.T) {
	cfg := testutil.SampleListConfig()
	cfg.Headers = []string{"One", "Two"}
	cfg.ShowFooters = false

	list, source := BuildList(cfg, testutil.SampleEntries())

	require.Equal(t, 2, list.HeaderCount())
	require.Equal(t, 1, list.FooterCount())
	assert.Equal(t, 3, source.ItemCount())
	assert.Equal(t, 6, list.ItemCount())
	assert.Equal(t, content.SectionTag, list.ItemTag(2))

	assert.NotEmpty(t, RenderCell(list.CreateCell(list.HeaderTag(0))))
	assert.Empty(t, RenderCell(list.CreateCell(list.FooterTag(0))), "hidden footer renders empty")

	kind, index, text := Describe(list, source, 1)
	assert.Equal(t, bookends.HeaderCell, kind)
	assert.Equal(t, 1, index)
	assert.Equal(t, "Two", text)

	kind, index, text = Describe(list, source, 3)
	assert.Equal(t, bookends.DelegatedCell, kind)
	assert.Equal(t, 1, index)
	assert.Equal(t, "Apple", text)

	kind, index, text = Describe(list, source, 5)
	assert.Equal(t, bookends.FooterCell, kind)
	assert.Equal(t, 0, index)
	assert.Equal(t, "Bottom", text)

	_, _, text = Describe(list, source, 9)
	assert.Empty(t, text)
}

func TestRenderCell_Delegated(t *testing.T) {
	list, _ := BuildList(testutil.SampleListConfig(), testutil.SampleEntries())
	cell := list.CreateCell(content.ItemTag)
	list.BindCell(cell, 2)
	assert.Contains(t, RenderCell(cell), "Apple")
}

func TestModel_View(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())
	testutil.AssertViewContains(t, m, "bookends", "Top", "Fruit", "Apple", "Pear", "Bottom", "1 headers", "3 items", "1 footers")
}

func TestModel_AddEntries(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())

	m, _ = send(t, m, testutil.KeyPress("h"), testutil.KeyPress("f"), testutil.KeyPress("a"))

	assert.Equal(t, 2, m.List().HeaderCount())
	assert.Equal(t, 2, m.List().FooterCount())
	assert.Equal(t, 8, m.List().ItemCount())
	assert.Contains(t, m.Status(), "item 4")

	// the new header sits after the configured one
	assert.Equal(t, m.List().HeaderTag(1), m.List().ItemTag(1))
	// the appended item pushes the footers down
	assert.Equal(t, content.ItemTag, m.List().ItemTag(5))
	assert.Equal(t, m.List().FooterTag(1), m.List().ItemTag(7))

	view := m.View()
	assert.Contains(t, view, "header 2")
	assert.Contains(t, view, "footer 2")
	assert.Contains(t, view, "item 4")
}

func TestModel_ToggleVisibility(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())
	require.Equal(t, 0, m.Cursor())

	m, _ = send(t, m, testutil.KeyPress("H"))
	assert.Equal(t, "Headers hidden", m.Status())
	assert.NotContains(t, m.View(), "Top")
	assert.Equal(t, 5, m.List().ItemCount(), "hidden headers keep their slots")
	assert.Equal(t, 1, m.Cursor(), "cursor leaves the hidden header")

	m, _ = send(t, m, testutil.KeyPress("h"))
	assert.NotContains(t, m.View(), "header 2", "headers added while hidden stay hidden")

	m, _ = send(t, m, testutil.KeyPress("F"))
	assert.Equal(t, "Footers hidden", m.Status())
	assert.NotContains(t, m.View(), "Bottom")

	m, _ = send(t, m, testutil.KeyPress("H"), testutil.KeyPress("F"))
	view := m.View()
	assert.Contains(t, view, "Top")
	assert.Contains(t, view, "header 2")
	assert.Contains(t, view, "Bottom")
}

func TestModel_AddHiddenHeaderKeepsCursorRow(t *testing.T) {
	cfg := testutil.SampleListConfig()
	cfg.ShowHeaders = false
	m := NewModel(cfg, testutil.SampleEntries())
	require.Equal(t, 1, m.Cursor(), "cursor starts past the hidden header")

	m, _ = send(t, m, testutil.KeyPress("h"))

	require.Equal(t, 2, m.List().HeaderCount())
	assert.Equal(t, 2, m.Cursor(), "cursor follows its row down")
	kind, index, text := Describe(m.List(), m.source, m.Cursor())
	assert.Equal(t, bookends.DelegatedCell, kind)
	assert.Equal(t, 0, index)
	assert.Equal(t, "Fruit", text)

	lines := strings.Split(m.rows.View(), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "> "), "cursor marker is drawn")
	assert.Contains(t, lines[0], "Fruit")
}

func TestModel_AddKeepsCursorOnFooter(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())
	m, _ = send(t, m, testutil.KeyPress("G"))
	require.Equal(t, 4, m.Cursor())

	m, _ = send(t, m, testutil.KeyPress("a"))
	assert.Equal(t, 5, m.Cursor(), "appended item pushes the footer down")
	kind, _, text := Describe(m.List(), m.source, m.Cursor())
	assert.Equal(t, bookends.FooterCell, kind)
	assert.Equal(t, "Bottom", text)

	m, _ = send(t, m, testutil.KeyPress("h"))
	assert.Equal(t, 6, m.Cursor())
	_, _, text = Describe(m.List(), m.source, m.Cursor())
	assert.Equal(t, "Bottom", text)
}

func TestModel_AddHiddenFooterOnEmptyContent(t *testing.T) {
	cfg := testutil.SampleListConfig()
	cfg.Headers = nil
	cfg.Footers = nil
	cfg.ShowFooters = false
	m := NewModel(cfg, nil)

	m, _ = send(t, m, testutil.KeyPress("f"))
	assert.Equal(t, 1, m.List().ItemCount())
	assert.Equal(t, 0, m.Cursor())

	m, _ = send(t, m, testutil.KeyPress("a"))
	assert.Equal(t, 0, m.Cursor(), "cursor moves onto the first visible row")
	_, _, text := Describe(m.List(), m.source, m.Cursor())
	assert.Equal(t, "item 1", text)
}

func TestModel_SelectHeader(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())

	m, cmd := send(t, m, testutil.SpecialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, recycler.SelectedMsg{}, msg)

	m, _ = send(t, m, msg)
	assert.Contains(t, m.Status(), "Position 0: header 0")
	assert.Contains(t, m.Status(), `"Top"`)
}

func TestModel_Navigation(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())

	m, _ = send(t, m, testutil.SpecialKey(tea.KeyDown), testutil.SpecialKey(tea.KeyDown))
	assert.Equal(t, 2, m.Cursor())

	m, _ = send(t, m, testutil.KeyPress("G"))
	assert.Equal(t, 4, m.Cursor())
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())

	m, _ = send(t, m, testutil.WindowSizeMsg(60, 5))
	m, _ = send(t, m, testutil.KeyPress("G"))

	view := m.View()
	assert.Contains(t, view, "Bottom")
	assert.NotContains(t, view, "Fruit", "only two rows fit")
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())

	_, cmd := send(t, m, testutil.KeyPress("q"))
	testutil.AssertQuitMessage(t, cmd)
}

func TestModel_HelpToggle(t *testing.T) {
	m := NewModel(testutil.SampleListConfig(), testutil.SampleEntries())
	testutil.AssertViewNotContains(t, m, "toggle headers")

	m, _ = send(t, m, testutil.KeyPress("?"))
	testutil.AssertViewContains(t, m, "toggle headers")
}
