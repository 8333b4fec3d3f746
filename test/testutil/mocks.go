// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"github.com/noldarim/bookends/internal/adapter"
)

// MockTagBase is the first tag MockAdapter hands out. It sits above the
// range used for generated header and footer tags.
const MockTagBase adapter.Tag = 0x01000000

// MockView records the visibility it was given
type MockView struct {
	Name    string
	Visible bool
}

// SetVisible records visible
func (v *MockView) SetVisible(visible bool) {
	v.Visible = visible
}

// MockCell is created by MockAdapter and remembers every position bound to it
type MockCell struct {
	Tag   adapter.Tag
	Bound []int
}

// BindCall records one MockAdapter.BindCell call
type BindCall struct {
	Cell     *MockCell
	Position int
}

// MockAdapter is an adapter with Count items. Position i has tag
// MockTagBase + i%Kinds. Every call is recorded.
type MockAdapter struct {
	Count      int
	Kinds      int
	Created    []adapter.Tag
	Binds      []BindCall
	CountCalls int
}

var _ adapter.Adapter[*MockCell] = (*MockAdapter)(nil)

// NewMockAdapter creates an adapter with count items of a single kind
func NewMockAdapter(count int) *MockAdapter {
	return &MockAdapter{Count: count, Kinds: 1}
}

func (a *MockAdapter) ItemCount() int {
	a.CountCalls++
	return a.Count
}

func (a *MockAdapter) ItemTag(position int) adapter.Tag {
	kinds := max(a.Kinds, 1)
	return MockTagBase + adapter.Tag(position%kinds)
}

func (a *MockAdapter) CreateCell(tag adapter.Tag) *MockCell {
	a.Created = append(a.Created, tag)
	return &MockCell{Tag: tag}
}

func (a *MockAdapter) BindCell(cell *MockCell, position int) {
	a.Binds = append(a.Binds, BindCall{Cell: cell, Position: position})
	if cell != nil {
		cell.Bound = append(cell.Bound, position)
	}
}
