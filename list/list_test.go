// SPDX-License-Identifier: MIT
// Package list_test verifies the cursor contract of list.List.
//
// Purpose:
//   - Lock in cursor/index bookkeeping for every insert and delete path.
//   - Check ErrOutOfRange on each positional failure.
//   - Check that iteration never disturbs the cursor.

package list_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/list"
)

// requireValues fails the test with a diff when l does not hold want.
func requireValues[T any](t *testing.T, l *list.List[T], want []T) {
	t.Helper()
	if diff := cmp.Diff(want, l.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, len(want), l.Len())
}

func TestNewEmpty(t *testing.T) {
	l := list.New[int]()
	require.Equal(t, 0, l.Len())
	require.Equal(t, -1, l.Index())
	require.Equal(t, "", l.String())

	_, err := l.Front()
	require.ErrorIs(t, err, list.ErrOutOfRange)
	_, err = l.Back()
	require.ErrorIs(t, err, list.ErrOutOfRange)
	_, err = l.Get()
	require.ErrorIs(t, err, list.ErrOutOfRange)
	require.ErrorIs(t, l.Set(1), list.ErrOutOfRange)
	require.ErrorIs(t, l.DeleteFront(), list.ErrOutOfRange)
	require.ErrorIs(t, l.DeleteBack(), list.ErrOutOfRange)
	require.ErrorIs(t, l.Delete(), list.ErrOutOfRange)

	// Moves on an empty list keep the cursor undefined.
	l.MoveFront()
	require.Equal(t, -1, l.Index())
	l.MoveBack()
	require.Equal(t, -1, l.Index())
	l.MoveNext()
	l.MovePrev()
	require.Equal(t, -1, l.Index())
}

func TestNewWithValues(t *testing.T) {
	l := list.New(1, 2, 3)
	requireValues(t, l, []int{1, 2, 3})
	require.Equal(t, 0, l.Index()) // first append established the cursor

	f, err := l.Front()
	require.NoError(t, err)
	require.Equal(t, 1, f)
	b, err := l.Back()
	require.NoError(t, err)
	require.Equal(t, 3, b)
	require.Equal(t, "1 2 3", l.String())
}

func TestTraversal(t *testing.T) {
	l := list.New(10, 20, 30)

	var fwd []int
	for l.MoveFront(); l.Index() != -1; l.MoveNext() {
		v, err := l.Get()
		require.NoError(t, err)
		fwd = append(fwd, v)
	}
	require.Equal(t, []int{10, 20, 30}, fwd)

	var back []int
	var idx []int
	for l.MoveBack(); l.Index() != -1; l.MovePrev() {
		v, err := l.Get()
		require.NoError(t, err)
		back = append(back, v)
		idx = append(idx, l.Index())
	}
	require.Equal(t, []int{30, 20, 10}, back)
	require.Equal(t, []int{2, 1, 0}, idx)

	// Moving with an undefined cursor is a no-op.
	l.MoveNext()
	require.Equal(t, -1, l.Index())
	_, err := l.Get()
	require.ErrorIs(t, err, list.ErrOutOfRange)
}

func TestPrependAppendCursor(t *testing.T) {
	l := list.New[int]()

	// Append on empty establishes the cursor.
	l.Append(2)
	require.Equal(t, 0, l.Index())
	v, err := l.Get()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	// Prepend shifts the cursor index but keeps the element.
	l.Prepend(1)
	require.Equal(t, 1, l.Index())
	v, _ = l.Get()
	require.Equal(t, 2, v)

	// Append leaves cursor untouched.
	l.Append(3)
	require.Equal(t, 1, l.Index())
	requireValues(t, l, []int{1, 2, 3})

	// Prepend on empty also establishes the cursor.
	e := list.New[string]()
	e.Prepend("x")
	require.Equal(t, 0, e.Index())

	// Prepend with an undefined cursor keeps it undefined.
	l.MoveNext()
	l.MoveNext()
	require.Equal(t, -1, l.Index())
	l.Prepend(0)
	require.Equal(t, -1, l.Index())
	requireValues(t, l, []int{0, 1, 2, 3})
}

func TestInsertBeforeAfter(t *testing.T) {
	l := list.New[int]()

	// Empty list: both inserts establish the sole element as cursor.
	require.NoError(t, l.InsertAfter(1))
	require.Equal(t, 0, l.Index())
	require.Equal(t, 1, l.Len())

	require.NoError(t, l.InsertAfter(2))
	require.Equal(t, 0, l.Index())
	v, _ := l.Get()
	require.Equal(t, 1, v)

	require.NoError(t, l.InsertBefore(0))
	require.Equal(t, 1, l.Index())
	v, _ = l.Get()
	require.Equal(t, 1, v)
	requireValues(t, l, []int{0, 1, 2})

	// Insert at the ends through the cursor updates front/back.
	l.MoveFront()
	require.NoError(t, l.InsertBefore(-1))
	l.MoveBack()
	require.NoError(t, l.InsertAfter(3))
	requireValues(t, l, []int{-1, 0, 1, 2, 3})
	f, _ := l.Front()
	b, _ := l.Back()
	require.Equal(t, -1, f)
	require.Equal(t, 3, b)
	require.Equal(t, 3, l.Index())

	// Second empty-list case for InsertBefore.
	e := list.New[int]()
	require.NoError(t, e.InsertBefore(7))
	require.Equal(t, 0, e.Index())
	requireValues(t, e, []int{7})
}

func TestInsertUndefinedCursorNonEmpty(t *testing.T) {
	l := list.New(1, 2)
	l.MovePrev() // off the front
	require.Equal(t, -1, l.Index())

	require.ErrorIs(t, l.InsertBefore(9), list.ErrOutOfRange)
	require.ErrorIs(t, l.InsertAfter(9), list.ErrOutOfRange)
	requireValues(t, l, []int{1, 2}) // nothing committed
}

func TestDeleteFrontBack(t *testing.T) {
	l := list.New(1, 2, 3, 4)

	// Cursor on element 3 (index 2).
	l.MoveFront()
	l.MoveNext()
	l.MoveNext()
	require.NoError(t, l.DeleteFront())
	require.Equal(t, 1, l.Index())
	v, _ := l.Get()
	require.Equal(t, 3, v)

	require.NoError(t, l.DeleteBack())
	require.Equal(t, 1, l.Index())
	requireValues(t, l, []int{2, 3})

	// Deleting the cursor element via DeleteBack undefines the cursor.
	require.NoError(t, l.DeleteBack())
	require.Equal(t, -1, l.Index())
	requireValues(t, l, []int{2})

	// And via DeleteFront.
	l.MoveFront()
	require.NoError(t, l.DeleteFront())
	require.Equal(t, -1, l.Index())
	require.Equal(t, 0, l.Len())
	require.ErrorIs(t, l.DeleteFront(), list.ErrOutOfRange)
}

func TestDeleteCursor(t *testing.T) {
	tests := []struct {
		name  string
		pos   int
		after []int
		front int
		back  int
	}{
		{name: "front", pos: 0, after: []int{2, 3}, front: 2, back: 3},
		{name: "middle", pos: 1, after: []int{1, 3}, front: 1, back: 3},
		{name: "back", pos: 2, after: []int{1, 2}, front: 1, back: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := list.New(1, 2, 3)
			l.MoveFront()
			for i := 0; i < tc.pos; i++ {
				l.MoveNext()
			}
			require.NoError(t, l.Delete())
			require.Equal(t, -1, l.Index())
			requireValues(t, l, tc.after)
			f, _ := l.Front()
			b, _ := l.Back()
			require.Equal(t, tc.front, f)
			require.Equal(t, tc.back, b)
			require.ErrorIs(t, l.Delete(), list.ErrOutOfRange)
		})
	}
}

func TestDrainFromFront(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 50; i++ {
		l.Append(i)
	}
	for l.Len() > 0 {
		l.MoveFront()
		require.NoError(t, l.Delete())
	}
	require.Equal(t, 0, l.Len())
	require.Equal(t, -1, l.Index())

	// The drained list is fully reusable.
	l.Append(42)
	requireValues(t, l, []int{42})
	require.Equal(t, 0, l.Index())
}

func TestSet(t *testing.T) {
	l := list.New("a", "b", "c")
	l.MoveBack()
	require.NoError(t, l.Set("z"))
	require.Equal(t, 2, l.Index())
	requireValues(t, l, []string{"a", "b", "z"})
}

func TestClear(t *testing.T) {
	l := list.New(1, 2, 3)
	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Equal(t, -1, l.Index())
	requireValues(t, l, []int{})

	l.Prepend(5)
	l.Append(6)
	requireValues(t, l, []int{5, 6})
}

func TestIterationKeepsCursor(t *testing.T) {
	l := list.New(1, 2, 3, 4)
	l.MoveFront()
	l.MoveNext()

	sum := 0
	for v := range l.All() {
		sum += v
	}
	require.Equal(t, 10, sum)
	require.Equal(t, 1, l.Index())
	v, _ := l.Get()
	require.Equal(t, 2, v)

	// Restartable, and early exit works.
	var first []int
	for v := range l.All() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, first)

	var rev []int
	for v := range l.Backward() {
		rev = append(rev, v)
	}
	require.Equal(t, []int{4, 3, 2, 1}, rev)
	require.Equal(t, 1, l.Index())
}

func TestEqual(t *testing.T) {
	a := list.New(1, 2, 3)
	b := list.New(1, 2, 3)
	b.MoveBack() // cursor state does not matter

	require.True(t, list.Equal(a, b))
	require.True(t, list.Equal(a, a))
	require.True(t, list.EqualSlice(a, []int{1, 2, 3}))
	require.False(t, list.EqualSlice(a, []int{1, 2}))
	require.False(t, list.EqualSlice(a, []int{1, 2, 4}))

	b.Append(4)
	require.False(t, list.Equal(a, b))
	require.NoError(t, b.DeleteBack())
	require.NoError(t, b.DeleteBack())
	b.Append(9)
	require.False(t, list.Equal(a, b))

	require.True(t, list.Equal(list.New[int](), list.New[int]()))

	type pair struct{ k []int }
	p := list.New(pair{k: []int{1}})
	q := list.New(pair{k: []int{1}})
	require.True(t, list.EqualFunc(p, q, func(x, y pair) bool { return cmp.Equal(x.k, y.k) }))
	require.True(t, list.EqualSliceFunc(p, []pair{{k: []int{1}}}, func(x, y pair) bool { return cmp.Equal(x.k, y.k) }))
}

func TestCopyIndependent(t *testing.T) {
	a := list.New(1, 2, 3)
	c := a.Copy()
	require.True(t, list.Equal(a, c))
	require.Equal(t, 0, c.Index())

	c.MoveFront()
	require.NoError(t, c.Set(100))
	c.Append(4)
	requireValues(t, a, []int{1, 2, 3})
	requireValues(t, c, []int{100, 2, 3, 4})
}

func TestConcat(t *testing.T) {
	a := list.New(1, 2)
	a.Concat(list.New(3, 4))
	requireValues(t, a, []int{1, 2, 3, 4})

	// Self-concat doubles the list and terminates.
	a.Concat(a)
	requireValues(t, a, []int{1, 2, 3, 4, 1, 2, 3, 4})
}
