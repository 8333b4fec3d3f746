// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package intlist provides a growable list of ints.
package intlist

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

const minGrowth = 12

var (
	// ErrNegativeCapacity is returned when a list is created with a negative capacity.
	ErrNegativeCapacity = errors.New("negative capacity")
	// ErrIndexOutOfRange is returned by positional operations given a bad index.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// List is a growable sequence of ints. The zero value is an empty list ready to use.
type List struct {
	values []int
}

// New creates an empty list with room for capacity values.
func New(capacity int) (*List, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	return &List{values: make([]int, 0, capacity)}, nil
}

// From creates a list holding a copy of values.
func From(values ...int) *List {
	return &List{values: slices.Clone(values)}
}

// Add appends v.
func (l *List) Add(v int) {
	l.grow(1)
	l.values = append(l.values, v)
}

// AddAll appends vs in order.
func (l *List) AddAll(vs ...int) {
	if len(vs) == 0 {
		return
	}
	l.grow(len(vs))
	l.values = append(l.values, vs...)
}

// Insert places v at index, shifting later values right. index may equal Len.
func (l *List) Insert(index, v int) error {
	if index < 0 || index > len(l.values) {
		return outOfRange(index, len(l.values))
	}
	l.grow(1)
	l.values = slices.Insert(l.values, index, v)
	return nil
}

// At returns the value at index. It panics if index is out of range.
func (l *List) At(index int) int {
	return l.values[index]
}

// Lookup returns the value at index and whether index was in range.
func (l *List) Lookup(index int) (int, bool) {
	if index < 0 || index >= len(l.values) {
		return 0, false
	}
	return l.values[index], true
}

// Set replaces the value at index and returns the previous one.
func (l *List) Set(index, v int) (int, error) {
	if index < 0 || index >= len(l.values) {
		return 0, outOfRange(index, len(l.values))
	}
	prev := l.values[index]
	l.values[index] = v
	return prev, nil
}

// RemoveAt deletes the value at index and returns it.
func (l *List) RemoveAt(index int) (int, error) {
	if index < 0 || index >= len(l.values) {
		return 0, outOfRange(index, len(l.values))
	}
	v := l.values[index]
	l.values = slices.Delete(l.values, index, index+1)
	return v, nil
}

// RemoveValue deletes the first occurrence of v and reports whether one was found.
func (l *List) RemoveValue(v int) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.values = slices.Delete(l.values, i, i+1)
	return true
}

// Contains reports whether v is in the list.
func (l *List) Contains(v int) bool {
	return lo.Contains(l.values, v)
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (l *List) IndexOf(v int) int {
	return lo.IndexOf(l.values, v)
}

// LastIndexOf returns the index of the last occurrence of v, or -1.
func (l *List) LastIndexOf(v int) int {
	return lo.LastIndexOf(l.values, v)
}

// Len returns the number of values.
func (l *List) Len() int {
	return len(l.values)
}

// IsEmpty reports whether the list holds no values.
func (l *List) IsEmpty() bool {
	return len(l.values) == 0
}

// Clear removes every value but keeps the allocated storage.
func (l *List) Clear() {
	l.values = l.values[:0]
}

// Clone returns an independent copy.
func (l *List) Clone() *List {
	return From(l.values...)
}

// Values returns a copy of the values in order.
func (l *List) Values() []int {
	return slices.Clone(l.values)
}

// EnsureCapacity grows the backing storage to hold at least minimum values.
func (l *List) EnsureCapacity(minimum int) {
	if minimum > cap(l.values) {
		l.values = slices.Grow(l.values, minimum-len(l.values))
	}
}

// TrimToSize releases unused capacity.
func (l *List) TrimToSize() {
	l.values = slices.Clip(l.values)
}

func (l *List) String() string {
	return fmt.Sprint(l.values)
}

// grow makes room for n more values, growing by half again the current size
// when the list is full.
func (l *List) grow(n int) {
	size := len(l.values)
	if size+n <= cap(l.values) {
		return
	}
	extra := max(n, size/2, minGrowth)
	l.values = slices.Grow(l.values, extra)
}

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}
