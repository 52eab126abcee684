// SPDX-License-Identifier: MIT

// Package list - insertion.
//
// Contract shared by every insert:
//   - Inserting into an empty list makes the new element the cursor (index 0).
//   - Otherwise the cursor keeps pointing at the same element; its index
//     shifts by one when the new element lands in front of it.

package list

// Prepend inserts v before the first element.
// Complexity: O(1) amortized.
func (l *List[T]) Prepend(v T) {
	if l.length == 0 {
		l.establish(v)
		return
	}
	s := l.alloc(v)
	l.nodes[s].next = l.front
	l.nodes[l.front].prev = s
	l.front = s
	l.length++
	if l.cursor != nilSlot {
		l.index++
	}
}

// Append inserts v after the last element.
// Complexity: O(1) amortized.
func (l *List[T]) Append(v T) {
	if l.length == 0 {
		l.establish(v)
		return
	}
	s := l.alloc(v)
	l.nodes[s].prev = l.back
	l.nodes[l.back].next = s
	l.back = s
	l.length++
}

// InsertBefore inserts v immediately before the cursor element.
// Errors: ErrOutOfRange if the list is non-empty and the cursor is undefined.
// Complexity: O(1) amortized.
func (l *List[T]) InsertBefore(v T) error {
	if l.length == 0 {
		l.establish(v)
		return nil
	}
	if l.cursor == nilSlot {
		return listErrorf(methodInsBefore, reasonNoCursor)
	}

	s := l.alloc(v)
	p := l.nodes[l.cursor].prev
	l.nodes[s].prev = p
	l.nodes[s].next = l.cursor
	l.nodes[l.cursor].prev = s
	if p == nilSlot {
		l.front = s
	} else {
		l.nodes[p].next = s
	}
	l.length++
	l.index++ // cursor element moved one position back

	return nil
}

// InsertAfter inserts v immediately after the cursor element.
// Errors: ErrOutOfRange if the list is non-empty and the cursor is undefined.
// Complexity: O(1) amortized.
func (l *List[T]) InsertAfter(v T) error {
	if l.length == 0 {
		l.establish(v)
		return nil
	}
	if l.cursor == nilSlot {
		return listErrorf(methodInsAfter, reasonNoCursor)
	}

	s := l.alloc(v)
	n := l.nodes[l.cursor].next
	l.nodes[s].prev = l.cursor
	l.nodes[s].next = n
	l.nodes[l.cursor].next = s
	if n == nilSlot {
		l.back = s
	} else {
		l.nodes[n].prev = s
	}
	l.length++

	return nil
}

// Extend appends values in order.
func (l *List[T]) Extend(values ...T) {
	for _, v := range values {
		l.Append(v)
	}
}

// Concat appends every element of other, front to back. other may be l
// itself: its values are snapshotted before the first append.
func (l *List[T]) Concat(other *List[T]) {
	l.Extend(other.Values()...)
}

// establish stores v as the sole element of an empty list and puts the
// cursor on it.
func (l *List[T]) establish(v T) {
	s := l.alloc(v)
	l.front, l.back = s, s
	l.cursor, l.index = s, 0
	l.length = 1
}
