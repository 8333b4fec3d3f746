// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bookends wraps a list adapter with header and footer entries.
//
// Headers occupy the first positions of the combined list and footers the
// last, with the wrapped adapter's items in between. Each header and footer
// gets its own tag so the host creates a dedicated cell for it.
//
// Bookends is not safe for concurrent use; call it from the goroutine that
// drives the host list.
package bookends

import (
	"github.com/rs/zerolog"

	"github.com/noldarim/bookends/internal/adapter"
	"github.com/noldarim/bookends/internal/intlist"
	"github.com/noldarim/bookends/internal/logger"
	"github.com/noldarim/bookends/internal/tagid"
)

// View is a header or footer supplied by the caller.
type View interface {
	SetVisible(visible bool)
}

// Bookends presents headers, the wrapped adapter's items and footers as a
// single adapter of Cell[C].
type Bookends[C any] struct {
	base adapter.Adapter[C]

	headers    []View
	headerTags intlist.List
	footers    []View
	footerTags intlist.List

	tags *tagid.Generator
	log  zerolog.Logger
}

var _ adapter.Adapter[Cell[struct{}]] = (*Bookends[struct{}])(nil)

// Option configures a Bookends.
type Option func(*options)

type options struct {
	tags *tagid.Generator
}

// WithTagGenerator makes Bookends draw tags from g instead of the
// process-wide generator.
func WithTagGenerator(g *tagid.Generator) Option {
	return func(o *options) {
		o.tags = g
	}
}

// New wraps base. The wrapped adapter cannot be replaced later.
func New[C any](base adapter.Adapter[C], opts ...Option) *Bookends[C] {
	o := options{tags: tagid.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Bookends[C]{
		base: base,
		tags: o.tags,
		log:  logger.GetListLogger(),
	}
}

// Wrapped returns the adapter passed to New.
func (b *Bookends[C]) Wrapped() adapter.Adapter[C] {
	return b.base
}

// AddHeader appends a header below the existing ones and returns its tag.
func (b *Bookends[C]) AddHeader(v View) adapter.Tag {
	tag := b.tags.Next()
	b.headers = append(b.headers, v)
	b.headerTags.Add(int(tag))
	b.log.Debug().
		Int("tag", int(tag)).
		Int("headers", len(b.headers)).
		Msg("Header added")
	return tag
}

// AddFooter appends a footer below the existing ones and returns its tag.
func (b *Bookends[C]) AddFooter(v View) adapter.Tag {
	tag := b.tags.Next()
	b.footers = append(b.footers, v)
	b.footerTags.Add(int(tag))
	b.log.Debug().
		Int("tag", int(tag)).
		Int("footers", len(b.footers)).
		Msg("Footer added")
	return tag
}

// SetHeaderVisibility shows or hides every header. Hidden headers keep
// their positions.
func (b *Bookends[C]) SetHeaderVisibility(visible bool) {
	for _, h := range b.headers {
		h.SetVisible(visible)
	}
}

// SetFooterVisibility shows or hides every footer. Hidden footers keep
// their positions.
func (b *Bookends[C]) SetFooterVisibility(visible bool) {
	for _, f := range b.footers {
		f.SetVisible(visible)
	}
}

// HeaderCount returns the number of headers.
func (b *Bookends[C]) HeaderCount() int {
	return len(b.headers)
}

// FooterCount returns the number of footers.
func (b *Bookends[C]) FooterCount() int {
	return len(b.footers)
}

// Header returns the i-th header, or nil if there is none.
func (b *Bookends[C]) Header(i int) View {
	if i < 0 || i >= len(b.headers) {
		return nil
	}
	return b.headers[i]
}

// HeaderTag returns the i-th header's tag, or adapter.InvalidTag if there is none.
func (b *Bookends[C]) HeaderTag(i int) adapter.Tag {
	return lookupTag(&b.headerTags, i)
}

// Footer returns the i-th footer, or nil if there is none.
func (b *Bookends[C]) Footer(i int) View {
	if i < 0 || i >= len(b.footers) {
		return nil
	}
	return b.footers[i]
}

// FooterTag returns the i-th footer's tag, or adapter.InvalidTag if there is none.
func (b *Bookends[C]) FooterTag(i int) adapter.Tag {
	return lookupTag(&b.footerTags, i)
}

// IsHeaderTag reports whether tag belongs to a header.
func (b *Bookends[C]) IsHeaderTag(tag adapter.Tag) bool {
	return b.headerTags.Contains(int(tag))
}

// IsFooterTag reports whether tag belongs to a footer.
func (b *Bookends[C]) IsFooterTag(tag adapter.Tag) bool {
	return b.footerTags.Contains(int(tag))
}

// ItemCount returns headers + wrapped items + footers. The wrapped count is
// read on every call.
func (b *Bookends[C]) ItemCount() int {
	return len(b.headers) + b.base.ItemCount() + len(b.footers)
}

// ItemTag returns the tag for a position in the combined list.
func (b *Bookends[C]) ItemTag(position int) adapter.Tag {
	headers := len(b.headers)
	if position < headers {
		return b.HeaderTag(position)
	}
	items := b.base.ItemCount()
	if position < headers+items {
		return b.base.ItemTag(position - headers)
	}
	return b.FooterTag(position - headers - items)
}

// CreateCell returns a cell for tag. Header and footer tags yield a cell
// wrapping the registered view itself; any other tag is passed to the
// wrapped adapter unchanged.
func (b *Bookends[C]) CreateCell(tag adapter.Tag) Cell[C] {
	if i := b.headerTags.IndexOf(int(tag)); i >= 0 {
		return headerCell[C](b.headers[i])
	}
	if i := b.footerTags.IndexOf(int(tag)); i >= 0 {
		return footerCell[C](b.footers[i])
	}
	return delegatedCell(b.base.CreateCell(tag))
}

// BindCell binds cell to a position in the combined list. Header and footer
// positions are left alone; their cells are complete when created.
func (b *Bookends[C]) BindCell(cell Cell[C], position int) {
	headers := len(b.headers)
	if position < headers {
		return
	}
	if position >= headers+b.base.ItemCount() {
		return
	}
	b.base.BindCell(cell.Delegated(), position-headers)
}

// Region reports which part of the combined list a position falls in, and
// the index within that part. Positions past the end report FooterCell with
// an index beyond FooterCount.
func (b *Bookends[C]) Region(position int) (CellKind, int) {
	headers := len(b.headers)
	if position < headers {
		return HeaderCell, position
	}
	items := b.base.ItemCount()
	if position < headers+items {
		return DelegatedCell, position - headers
	}
	return FooterCell, position - headers - items
}

func lookupTag(tags *intlist.List, i int) adapter.Tag {
	v, ok := tags.Lookup(i)
	if !ok {
		return adapter.InvalidTag
	}
	return adapter.Tag(v)
}
