// SPDX-License-Identifier: MIT

// Package problem reads and writes matrix problem files.
//
// A problem file describes two n×n sparse matrices A and B:
//
//	n a b
//
//	row col value   (a lines for A)
//	...
//
//	row col value   (b lines for B)
//	...
//
// Tokens are whitespace-separated and may be spread over lines freely; blank
// lines carry no meaning. Indices are 1-based. Entries are applied in file
// order through sparse.Matrix.Set, so a repeated (row, col) overwrites and a
// zero value deletes. Anything after the last B entry is ignored.
//
// Errors:
//   - ErrMalformed for missing or unparsable tokens, negative counts and
//     non-finite values, with the 1-based line number.
//   - sparse.ErrOutOfRange (via errors.Is) for indices outside [1, n] and for
//     a negative n.
package problem
