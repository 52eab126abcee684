// SPDX-License-Identifier: MIT

// Package list provides List[T], a doubly linked sequence with a single
// movable cursor.
//
// The cursor is either undefined (Index() == -1) or sits on exactly one
// element. It becomes undefined when the list is emptied, when a traversal
// moves past either end, and when the element under it is deleted.
//
// Nodes live in an arena owned by the list and link to each other by slot
// index, so splicing stays O(1) without pointer bookkeeping. Freed slots are
// recycled through a freelist.
//
// Typical traversal:
//
//	for l.MoveFront(); l.Index() != -1; l.MoveNext() {
//		v, _ := l.Get()
//		...
//	}
//
// Read-only walks should prefer All, which never touches the cursor.
//
// A List is not safe for concurrent use.
package list
