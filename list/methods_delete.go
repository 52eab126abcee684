// SPDX-License-Identifier: MIT

package list

// DeleteFront removes the first element. If the cursor was on it, the cursor
// becomes undefined; otherwise its index shifts down by one.
// Errors: ErrOutOfRange on an empty list.
func (l *List[T]) DeleteFront() error {
	if l.length == 0 {
		return listErrorf(methodDelFront, reasonEmpty)
	}

	s := l.front
	switch l.cursor {
	case s:
		l.cursor, l.index = nilSlot, -1
	case nilSlot:
	default:
		l.index--
	}
	l.unlink(s)

	return nil
}

// DeleteBack removes the last element. If the cursor was on it, the cursor
// becomes undefined.
// Errors: ErrOutOfRange on an empty list.
func (l *List[T]) DeleteBack() error {
	if l.length == 0 {
		return listErrorf(methodDelBack, reasonEmpty)
	}

	s := l.back
	if l.cursor == s {
		l.cursor, l.index = nilSlot, -1
	}
	l.unlink(s)

	return nil
}

// Delete removes the cursor element and leaves the cursor undefined.
// Errors: ErrOutOfRange if the cursor is undefined.
func (l *List[T]) Delete() error {
	if l.cursor == nilSlot {
		return listErrorf(methodDelete, reasonNoCursor)
	}

	s := l.cursor
	l.cursor, l.index = nilSlot, -1
	l.unlink(s)

	return nil
}

// Clear drops every element and leaves the cursor undefined. The arena keeps
// its capacity for reuse.
func (l *List[T]) Clear() {
	clear(l.nodes) // drop payload references before truncating
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.front, l.back = nilSlot, nilSlot
	l.cursor, l.index = nilSlot, -1
	l.length = 0
}

// unlink splices slot s out of the chain and releases it. Cursor bookkeeping
// is the caller's job.
func (l *List[T]) unlink(s int) {
	p, n := l.nodes[s].prev, l.nodes[s].next
	if p == nilSlot {
		l.front = n
	} else {
		l.nodes[p].next = n
	}
	if n == nilSlot {
		l.back = p
	} else {
		l.nodes[n].prev = p
	}
	l.length--
	l.release(s)
}
