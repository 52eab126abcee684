// SPDX-License-Identifier: MIT

// Package sparse - algebra over sorted row lists.
//
// addScalarMultiple is the shared primitive: C = A + x·B in one forward pass
// over both row lists, merging the column lists of rows present in both.
// Add, Sub and ScalarMult are thin callers of it. Mult transposes its right
// operand so that both sides expose rows sorted by column and reduces to
// sparse dot products.
//
// Zero policy: a result entry is emitted only when its value is non-zero,
// and a result row only when it is non-empty. This covers cancellation
// (a + x·b == 0), x == 0 and underflow of x·b.
//
// Complexity (NNZ_A, NNZ_B, R_A rows of A, R_B rows of Bᵀ):
//   - Add/Sub/ScalarMult: O(R_A + R_B + NNZ_A + NNZ_B).
//   - Transpose: O(NNZ · average row length), via the general Set path.
//   - Mult: transpose + Σ over row pairs of the merged row lengths.

package sparse

import "github.com/katalvlaran/sparsemat/list"

// Add returns m + b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	if err := ValidateSameSize(m, b); err != nil {
		return nil, opErrorf(ctxAdd, err)
	}
	if b == m {
		b = b.Copy() // the merge walks both cursors
	}

	return m.addScalarMultiple(b, 1), nil
}

// Sub returns m - b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	if err := ValidateSameSize(m, b); err != nil {
		return nil, opErrorf(ctxSub, err)
	}
	if b == m {
		b = b.Copy()
	}

	return m.addScalarMultiple(b, -1), nil
}

// ScalarMult returns x·m as a new matrix. x == 0 yields an empty matrix.
func (m *Matrix) ScalarMult(x float64) *Matrix {
	return newMatrix(m.n).addScalarMultiple(m, x)
}

// Transpose returns mᵀ: every entry (r, c, v) becomes (c, r, v).
func (m *Matrix) Transpose() *Matrix {
	t := newMatrix(m.n)
	for r := range m.rows.All() {
		for e := range r.All() {
			_ = t.Set(e.Col, e.Row, e.Value) // indices come from m, same size
		}
	}

	return t
}

// Mult returns the matrix product m·b as a new matrix.
//
// Implementation:
//   - Stage 1: validate sizes; snapshot b if it is m.
//   - Stage 2: bt = bᵀ, so column k of b is row k of bt, sorted by row of b.
//   - Stage 3: for every row of m and every row of bt, merge-scan both by
//     column and accumulate products of matching columns.
//   - Stage 4: keep non-zero sums only; skip empty result rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Mult(b *Matrix) (*Matrix, error) {
	if err := ValidateSameSize(m, b); err != nil {
		return nil, opErrorf(ctxMult, err)
	}
	if b == m {
		b = b.Copy()
	}

	c := newMatrix(m.n)
	bt := b.Transpose()
	for m.rows.MoveFront(); m.rows.Index() != -1; m.rows.MoveNext() {
		ar, _ := m.rows.Get()
		i := rowIndex(ar)

		out := list.New[Entry]()
		for bt.rows.MoveFront(); bt.rows.Index() != -1; bt.rows.MoveNext() {
			br, _ := bt.rows.Get()
			if v := dot(ar, br); v != 0 {
				out.Append(Entry{Row: i, Col: rowIndex(br), Value: v})
			}
		}
		if out.Len() > 0 {
			c.rows.Append(out)
		}
	}

	return c, nil
}

// addScalarMultiple returns m + x·b. Sizes must already match and b must not
// be m.
//
// Row merge, per step:
//   - only b has the next row (or the smaller index): emit x·b's entries.
//   - only m has the next row (or the smaller index): emit m's entries.
//   - same index: merge the column lists (mergeRows).
func (m *Matrix) addScalarMultiple(b *Matrix, x float64) *Matrix {
	c := newMatrix(m.n)

	m.rows.MoveFront()
	b.rows.MoveFront()
	for m.rows.Index() != -1 || b.rows.Index() != -1 {
		var ar, br *row
		var ai, bi int
		if m.rows.Index() != -1 {
			ar, _ = m.rows.Get()
			ai = rowIndex(ar)
		}
		if b.rows.Index() != -1 {
			br, _ = b.rows.Get()
			bi = rowIndex(br)
		}

		out := list.New[Entry]()
		switch {
		case ar == nil || (br != nil && bi < ai):
			appendScaled(out, br, x)
			b.rows.MoveNext()
		case br == nil || ai < bi:
			for e := range ar.All() {
				out.Append(e)
			}
			m.rows.MoveNext()
		default:
			mergeRows(out, ar, br, x)
			m.rows.MoveNext()
			b.rows.MoveNext()
		}
		if out.Len() > 0 {
			c.rows.Append(out)
		}
	}

	return c
}

// appendScaled appends x·e for every entry of r whose scaled value is
// non-zero.
func appendScaled(out, r *row, x float64) {
	for e := range r.All() {
		if e.Value *= x; e.Value != 0 {
			out.Append(e)
		}
	}
}

// mergeRows appends a + x·b for two rows with the same index, merging their
// column lists with one cursor each. Ties advance both sides.
func mergeRows(out, a, b *row, x float64) {
	a.MoveFront()
	b.MoveFront()
	for a.Index() != -1 || b.Index() != -1 {
		ae, aok := cursorEntry(a)
		be, bok := cursorEntry(b)
		switch {
		case !aok || (bok && be.Col < ae.Col):
			if be.Value *= x; be.Value != 0 {
				out.Append(be)
			}
			b.MoveNext()
		case !bok || ae.Col < be.Col:
			out.Append(ae)
			a.MoveNext()
		default:
			if ae.Value += x * be.Value; ae.Value != 0 {
				out.Append(ae)
			}
			a.MoveNext()
			b.MoveNext()
		}
	}
}

// dot returns Σ a[k]·b[k] over columns k present in both rows.
func dot(a, b *row) float64 {
	var sum float64
	a.MoveFront()
	b.MoveFront()
	for a.Index() != -1 && b.Index() != -1 {
		ae, _ := a.Get()
		be, _ := b.Get()
		switch {
		case ae.Col == be.Col:
			sum += ae.Value * be.Value
			a.MoveNext()
			b.MoveNext()
		case ae.Col < be.Col:
			a.MoveNext()
		default:
			b.MoveNext()
		}
	}

	return sum
}
