// SPDX-License-Identifier: MIT

// Package report renders the labeled operation report for a pair of
// matrices A and B.
//
// The default report has ten sections, in this order:
//
//	A has <nnz> non-zero entries:
//	B has <nnz> non-zero entries:
//	(1.5)*A =
//	A+B =
//	A+A =
//	B-A =
//	A-A =
//	Transpose(A) =
//	A*B =
//	B*B =
//
// Each header line is followed by the matrix in sparse.Matrix.String form and
// one blank line. Operation headers end in "= " (with the trailing space).
// WithScalar changes the factor of the scalar section; WithSections selects
// and orders sections.
package report
