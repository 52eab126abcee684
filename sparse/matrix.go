// SPDX-License-Identifier: MIT

// Package sparse - construction, access and single-entry mutation.
//
// Row lookup is a linear scan over the row list that stops at the first row
// whose index is >= the target. The scan leaves the row cursor there, which
// is exactly the insertion point when the row is missing and the deletion
// point when the row empties.
//
// Complexity quicksheet (R = stored rows, L = entries in the target row):
//   - New/Size/MakeZero: O(1).
//   - NNZ/RowCount: O(R).
//   - At/Set: O(R + L).
//   - Copy/Equal: O(R + NNZ).

package sparse

import (
	"iter"

	"github.com/katalvlaran/sparsemat/list"
)

// New returns an empty n×n matrix. n == 0 is legal: such a matrix has no
// valid index.
// Errors: ErrInvalidDimensions (wraps ErrOutOfRange) if n < 0.
func New(n int) (*Matrix, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxNew, n, n, ErrInvalidDimensions)
	}

	return newMatrix(n), nil
}

// newMatrix builds an empty matrix for a size already known to be valid.
func newMatrix(n int) *Matrix {
	return &Matrix{n: n, rows: list.New[*row]()}
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions if n < 0.
func Identity(n int) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for k := 1; k <= n; k++ {
		// Rows arrive in increasing order, so each Set appends.
		_ = m.Set(k, k, 1) // k is in range by construction
	}

	return m, nil
}

// FromEntries returns an n×n matrix built by calling Set for every entry in
// order. Later entries overwrite earlier ones; zero values delete.
// Errors: ErrInvalidDimensions, or ErrOutOfRange naming the first bad entry.
func FromEntries(n int, entries ...Entry) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, opErrorf(ctxFrom, err)
		}
	}

	return m, nil
}

// Size returns n.
func (m *Matrix) Size() int { return m.n }

// NNZ returns the number of stored (non-zero) entries.
func (m *Matrix) NNZ() int {
	nnz := 0
	for r := range m.rows.All() {
		nnz += r.Len()
	}

	return nnz
}

// RowCount returns the number of rows holding at least one entry.
func (m *Matrix) RowCount() int { return m.rows.Len() }

// RowLengths returns the entry count of every stored row, in row order.
func (m *Matrix) RowLengths() []int {
	out := make([]int, 0, m.rows.Len())
	for r := range m.rows.All() {
		out = append(out, r.Len())
	}

	return out
}

// Entries returns the stored entries in row-major order.
func (m *Matrix) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for r := range m.rows.All() {
			for e := range r.All() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// At returns the value at (i, j), or 0 when no entry is stored there.
// Errors: ErrOutOfRange unless 1 <= i, j <= Size().
func (m *Matrix) At(i, j int) (float64, error) {
	if err := m.validateIndex(ctxAt, i, j); err != nil {
		return 0, err
	}

	r := m.seekRow(i)
	if r == nil {
		return 0, nil
	}
	for r.MoveFront(); r.Index() != -1; r.MoveNext() {
		e, _ := r.Get()
		if e.Col == j {
			return e.Value, nil
		}
		if e.Col > j {
			break // columns are sorted; j is absent
		}
	}

	return 0, nil
}

// Set stores x at (i, j). x == 0 removes any stored entry, and removes row i
// as well when that was its last entry.
//
// Implementation:
//   - Stage 1: bounds check; nothing is mutated on failure.
//   - Stage 2: seekRow positions the row cursor at row i or its insertion point.
//   - Stage 3: missing row: create it with the single entry (x != 0 only).
//   - Stage 4: existing row: scan columns; overwrite, delete, insert before the
//     first larger column, or append at the end.
//
// Errors: ErrOutOfRange unless 1 <= i, j <= Size().
func (m *Matrix) Set(i, j int, x float64) error {
	if err := m.validateIndex(ctxSet, i, j); err != nil {
		return err
	}

	r := m.seekRow(i)
	if r == nil {
		if x == 0 {
			return nil
		}
		return m.insertRow(list.New(Entry{Row: i, Col: j, Value: x}))
	}

	for r.MoveFront(); r.Index() != -1; r.MoveNext() {
		e, _ := r.Get()
		switch {
		case e.Col == j && x != 0:
			e.Value = x
			return r.Set(e)
		case e.Col == j:
			if err := r.Delete(); err != nil {
				return matrixErrorf(ctxSet, i, j, err)
			}
			if r.Len() == 0 {
				// The row cursor still sits on r from seekRow.
				return m.rows.Delete()
			}
			return nil
		case e.Col > j:
			if x == 0 {
				return nil
			}
			return r.InsertBefore(Entry{Row: i, Col: j, Value: x})
		}
	}
	if x != 0 {
		r.Append(Entry{Row: i, Col: j, Value: x})
	}

	return nil
}

// seekRow scans the row list for row i and returns it, or nil if absent.
// Either way the row cursor is left on the first row with index >= i, or
// undefined when every stored row lies before i.
func (m *Matrix) seekRow(i int) *row {
	for m.rows.MoveFront(); m.rows.Index() != -1; m.rows.MoveNext() {
		r, _ := m.rows.Get()
		switch idx := rowIndex(r); {
		case idx == i:
			return r
		case idx > i:
			return nil
		}
	}

	return nil
}

// insertRow places r at the row cursor left by seekRow: before the cursor
// row, or at the end when the cursor ran off the list.
func (m *Matrix) insertRow(r *row) error {
	if m.rows.Index() == -1 {
		m.rows.Append(r)
		return nil
	}

	return m.rows.InsertBefore(r)
}

// MakeZero removes every entry. The size is unchanged.
func (m *Matrix) MakeZero() { m.rows.Clear() }

// Copy returns a deep copy sharing no list storage with m.
func (m *Matrix) Copy() *Matrix {
	c := newMatrix(m.n)
	for r := range m.rows.All() {
		c.rows.Append(r.Copy()) // Entry is a value type: row copies are independent
	}

	return c
}

// Equal reports structural equality: same size, same NNZ, same stored rows
// and, row by row, the same (Row, Col, Value) entries in order. A nil other is
// never equal.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	if m == other {
		return true
	}
	if m.n != other.n || m.NNZ() != other.NNZ() || m.rows.Len() != other.rows.Len() {
		return false
	}

	m.rows.MoveFront()
	other.rows.MoveFront()
	for m.rows.Index() != -1 && other.rows.Index() != -1 {
		a, _ := m.rows.Get()
		b, _ := other.rows.Get()
		if !list.Equal(a, b) {
			return false
		}
		m.rows.MoveNext()
		other.rows.MoveNext()
	}

	return true
}
