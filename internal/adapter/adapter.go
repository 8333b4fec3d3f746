// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package adapter defines the contract between a list host and the adapters
// that feed it items.
package adapter

// Tag identifies the kind of cell needed to display a position.
// Hosts use it to decide which cells can be reused for which positions.
type Tag int

// InvalidTag is returned when a tag is requested for a position that does not exist.
const InvalidTag Tag = -1

// Adapter supplies items to a list host. C is the cell type the adapter
// creates and binds.
//
// Hosts call ItemCount first, then ItemTag for each position they intend to
// render, CreateCell once per distinct tag they need a fresh cell for, and
// BindCell for each visible position.
type Adapter[C any] interface {
	ItemCount() int
	ItemTag(position int) Tag
	CreateCell(tag Tag) C
	BindCell(cell C, position int)
}
