// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tagid hands out small integer tags for synthetic list entries.
package tagid

import (
	"sync/atomic"

	"github.com/noldarim/bookends/internal/adapter"
)

// MaxTag is the largest tag a Generator returns. Tags above it are left
// for adapters that produce their own content tags.
const MaxTag adapter.Tag = 0x00FFFFFF

// Generator produces tags in [1, MaxTag], wrapping back to 1.
// It is safe for concurrent use.
type Generator struct {
	next atomic.Int32
}

// NewGenerator returns a generator whose first tag is 1.
func NewGenerator() *Generator {
	return newGeneratorAt(1)
}

func newGeneratorAt(start adapter.Tag) *Generator {
	g := &Generator{}
	g.next.Store(int32(start))
	return g
}

// Next returns a fresh tag. Wraparound does not check whether the returned
// tag is still in use.
func (g *Generator) Next() adapter.Tag {
	for {
		current := g.next.Load()
		following := current + 1
		if following > int32(MaxTag) {
			// 0 is never handed out
			following = 1
		}
		if g.next.CompareAndSwap(current, following) {
			return adapter.Tag(current)
		}
	}
}

var defaultGenerator = NewGenerator()

// Default returns the process-wide generator.
func Default() *Generator {
	return defaultGenerator
}

// Next returns a fresh tag from the process-wide generator.
func Next() adapter.Tag {
	return defaultGenerator.Next()
}
