// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package bookends

// CellKind says where a cell's content comes from.
type CellKind int

const (
	// DelegatedCell holds a cell created by the wrapped adapter.
	DelegatedCell CellKind = iota
	// HeaderCell wraps a header view.
	HeaderCell
	// FooterCell wraps a footer view.
	FooterCell
)

func (k CellKind) String() string {
	switch k {
	case HeaderCell:
		return "header"
	case FooterCell:
		return "footer"
	default:
		return "delegated"
	}
}

// Cell is what Bookends hands to the host. Header and footer cells carry
// their view as-is and are never rebound; delegated cells carry whatever the
// wrapped adapter created.
type Cell[C any] struct {
	kind      CellKind
	view      View
	delegated C
}

func headerCell[C any](v View) Cell[C] {
	return Cell[C]{kind: HeaderCell, view: v}
}

func footerCell[C any](v View) Cell[C] {
	return Cell[C]{kind: FooterCell, view: v}
}

func delegatedCell[C any](c C) Cell[C] {
	return Cell[C]{kind: DelegatedCell, delegated: c}
}

// Kind returns the cell's kind.
func (c Cell[C]) Kind() CellKind {
	return c.kind
}

// View returns the header or footer view, or nil for delegated cells.
func (c Cell[C]) View() View {
	return c.view
}

// Delegated returns the wrapped adapter's cell. It is the zero value for
// header and footer cells.
func (c Cell[C]) Delegated() C {
	return c.delegated
}
