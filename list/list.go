// SPDX-License-Identifier: MIT

// Package list - arena storage, constructor and accessors.
//
// Layout:
//   - nodes is the arena; a node links to its neighbours by slot index.
//   - free holds released slots for reuse by the next insertion.
//   - front/back/cursor are slot indices or nilSlot.
//   - index mirrors the cursor position (0-based) or -1 when undefined.
//
// Complexity quicksheet:
//   - Len/Index/Front/Back/Get/Set: O(1).
//   - Insert*/Delete*/Prepend/Append: O(1) amortized (arena growth).

package list

// nilSlot marks an absent link (no neighbour, no cursor).
const nilSlot = -1

// node is one arena cell. Cells on the freelist hold the zero value of T so
// the arena never keeps released payloads alive.
type node[T any] struct {
	value T
	prev  int
	next  int
}

// List is a doubly linked sequence of T with a movable cursor.
// Use New to create one; the zero value is not ready for use.
type List[T any] struct {
	nodes  []node[T] // arena
	free   []int     // released slots, reused LIFO
	front  int       // slot of the first element or nilSlot
	back   int       // slot of the last element or nilSlot
	cursor int       // slot under the cursor or nilSlot
	index  int       // cursor position or -1
	length int       // number of live elements
}

// New returns a list holding values in order. When values is non-empty the
// cursor sits on the first element, matching what Append does on an empty
// list.
// Complexity: O(len(values)).
func New[T any](values ...T) *List[T] {
	l := &List[T]{
		front:  nilSlot,
		back:   nilSlot,
		cursor: nilSlot,
		index:  -1,
	}
	l.Extend(values...)

	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.length }

// Index returns the cursor position, or -1 if the cursor is undefined.
func (l *List[T]) Index() int { return l.index }

// Front returns the first element.
// Errors: ErrOutOfRange on an empty list.
func (l *List[T]) Front() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, listErrorf(methodFront, reasonEmpty)
	}

	return l.nodes[l.front].value, nil
}

// Back returns the last element.
// Errors: ErrOutOfRange on an empty list.
func (l *List[T]) Back() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, listErrorf(methodBack, reasonEmpty)
	}

	return l.nodes[l.back].value, nil
}

// Get returns the element under the cursor.
// Errors: ErrOutOfRange if the cursor is undefined.
func (l *List[T]) Get() (T, error) {
	if l.cursor == nilSlot {
		var zero T
		return zero, listErrorf(methodGet, reasonNoCursor)
	}

	return l.nodes[l.cursor].value, nil
}

// Set overwrites the element under the cursor in place. Cursor and index are
// unchanged.
// Errors: ErrOutOfRange if the cursor is undefined.
func (l *List[T]) Set(v T) error {
	if l.cursor == nilSlot {
		return listErrorf(methodSet, reasonNoCursor)
	}
	l.nodes[l.cursor].value = v

	return nil
}

// alloc takes a slot from the freelist (or grows the arena) and stores v in
// it with no links. Callers must not hold *node pointers across alloc: the
// arena may move.
func (l *List[T]) alloc(v T) int {
	if n := len(l.free); n > 0 {
		s := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[s] = node[T]{value: v, prev: nilSlot, next: nilSlot}

		return s
	}
	l.nodes = append(l.nodes, node[T]{value: v, prev: nilSlot, next: nilSlot})

	return len(l.nodes) - 1
}

// release returns slot s to the freelist and drops its payload.
func (l *List[T]) release(s int) {
	l.nodes[s] = node[T]{prev: nilSlot, next: nilSlot}
	l.free = append(l.free, s)
}
