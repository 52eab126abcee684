// SPDX-License-Identifier: MIT

// Package sparse implements square row-sparse matrices of float64.
//
// A Matrix stores only its non-zero entries. Rows are kept in a list.List in
// strictly increasing row order, and each row is itself a list.List of Entry
// in strictly increasing column order. A row exists only while it holds at
// least one entry, and a stored value is never exactly zero: writing 0 removes
// the entry (and the row, if it empties).
//
// Indices are 1-based: valid rows and columns lie in [1, Size()].
//
// Algebra is expressed as merges over sorted lists:
//
//	Add, Sub, ScalarMult   one forward pass over both row lists (addScalarMultiple)
//	Mult                   transpose the right operand, then sparse dot products
//	Transpose              Set for every entry onto a fresh matrix
//
// Operators that receive their own receiver as argument (A.Add(A)) snapshot
// the argument with Copy first, because the merge walks the cursors of both
// operands at once.
//
// String renders the sparse listing, one line per stored row:
//
//	1: (1, 2.0) (3, 1.0)
//	3: (2, 3.0)
//
// Errors: every index or size violation matches ErrOutOfRange via errors.Is.
//
// A Matrix is not safe for concurrent use; even read-only operations move
// the cursors of its internal lists.
package sparse
