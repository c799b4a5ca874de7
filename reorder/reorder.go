// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reorder

// Manager tracks a single drag gesture and reports committed moves.
// The zero value is not usable; construct with NewManager.
type Manager struct {
	onMove   func(from, to int)
	origin   int
	dragging bool
}

// NewManager returns a Manager that calls onMove for every committed move.
func NewManager(onMove func(from, to int)) *Manager {
	return &Manager{onMove: onMove}
}

// BeginDrag records index as the drag origin, replacing any abandoned one.
func (m *Manager) BeginDrag(index int) {
	m.origin = index
	m.dragging = true
}

// Drop ends the current drag at index. onMove fires only when a drag is in
// progress and index differs from its origin. The origin is cleared either way.
func (m *Manager) Drop(index int) {
	if !m.dragging {
		return
	}
	origin := m.origin
	m.origin = 0
	m.dragging = false

	if origin == index {
		return
	}
	if m.onMove != nil {
		m.onMove(origin, index)
	}
}

// Origin returns the pending drag origin and whether a drag is in progress.
func (m *Manager) Origin() (int, bool) {
	return m.origin, m.dragging
}

// Move relocates s[from] to index to using splice semantics: the element is
// removed first and then inserted at to, counted against the shortened slice.
// It reports false and leaves s untouched when either index is out of range.
func Move[S ~[]E, E any](s S, from, to int) bool {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return false
	}
	if from == to {
		return true
	}

	entry := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = entry
	return true
}

// List owns an ordered sequence so that a Manager callback can be bound to
// it directly: NewManager(list.Move).
type List[T any] struct {
	items []T
	moves int
}

// NewList copies items into a new List.
func NewList[T any](items []T) *List[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &List[T]{items: cp}
}

// Move applies a splice move. Out-of-range moves are ignored.
func (l *List[T]) Move(from, to int) {
	if Move(l.items, from, to) && from != to {
		l.moves++
	}
}

// Items returns the current order. The returned slice must not be modified.
func (l *List[T]) Items() []T {
	return l.items
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Moves returns how many moves have changed the order.
func (l *List[T]) Moves() int {
	return l.moves
}
