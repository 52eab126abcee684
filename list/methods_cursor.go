// SPDX-License-Identifier: MIT

package list

// MoveFront puts the cursor on the first element. On an empty list the
// cursor stays undefined.
func (l *List[T]) MoveFront() {
	if l.length == 0 {
		l.cursor, l.index = nilSlot, -1
		return
	}
	l.cursor, l.index = l.front, 0
}

// MoveBack puts the cursor on the last element. On an empty list the cursor
// stays undefined.
func (l *List[T]) MoveBack() {
	if l.length == 0 {
		l.cursor, l.index = nilSlot, -1
		return
	}
	l.cursor, l.index = l.back, l.length-1
}

// MoveNext advances the cursor one step toward the back. Stepping past the
// last element makes the cursor undefined; with an undefined cursor it does
// nothing.
func (l *List[T]) MoveNext() {
	if l.cursor == nilSlot {
		return
	}
	l.cursor = l.nodes[l.cursor].next
	if l.cursor == nilSlot {
		l.index = -1
		return
	}
	l.index++
}

// MovePrev moves the cursor one step toward the front. Stepping past the
// first element makes the cursor undefined; with an undefined cursor it does
// nothing.
func (l *List[T]) MovePrev() {
	if l.cursor == nilSlot {
		return
	}
	l.cursor = l.nodes[l.cursor].prev
	if l.cursor == nilSlot {
		l.index = -1
		return
	}
	l.index--
}
