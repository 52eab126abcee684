// SPDX-License-Identifier: MIT

// Package list - iteration, copying and comparison.
//
// Iterators walk the arena links directly and never move the cursor, so a
// caller may range over a list while holding a cursor position in it.
// Mutating the list during a range is not supported.

package list

import (
	"fmt"
	"iter"
	"strings"
)

// All returns a restartable front-to-back sequence of the elements.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := l.front; s != nilSlot; s = l.nodes[s].next {
			if !yield(l.nodes[s].value) {
				return
			}
		}
	}
}

// Backward returns a restartable back-to-front sequence of the elements.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := l.back; s != nilSlot; s = l.nodes[s].prev {
			if !yield(l.nodes[s].value) {
				return
			}
		}
	}
}

// Values returns the elements front to back in a fresh slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// Copy returns a new list with the same elements. Element values are copied
// by assignment: value types are independent, pointer payloads are shared.
// The cursor of the copy sits on its first element.
// Complexity: O(n).
func (l *List[T]) Copy() *List[T] {
	return New(l.Values()...)
}

// String renders the elements separated by single spaces.
func (l *List[T]) String() string {
	var sb strings.Builder
	for s := l.front; s != nilSlot; s = l.nodes[s].next {
		if s != l.front {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, l.nodes[s].value)
	}

	return sb.String()
}

// Equal reports whether a and b hold pointwise equal elements. Cursor state
// is ignored; lists of different length are never equal.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.length != b.length {
		return false
	}
	sa, sb := a.front, b.front
	for sa != nilSlot {
		if !eq(a.nodes[sa].value, b.nodes[sb].value) {
			return false
		}
		sa, sb = a.nodes[sa].next, b.nodes[sb].next
	}

	return true
}

// EqualSlice reports whether l holds exactly the elements of s, in order.
func EqualSlice[T comparable](l *List[T], s []T) bool {
	return EqualSliceFunc(l, s, func(x, y T) bool { return x == y })
}

// EqualSliceFunc is EqualSlice with a caller-supplied element comparison.
func EqualSliceFunc[T any](l *List[T], s []T, eq func(x, y T) bool) bool {
	if l.length != len(s) {
		return false
	}
	i := 0
	for v := range l.All() {
		if !eq(v, s[i]) {
			return false
		}
		i++
	}

	return true
}
