// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/list"
)

// Entry is one stored non-zero value at (Row, Col), both 1-based.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// row is the entry list of one matrix row, sorted by Col. A stored row is
// never empty, so its front entry carries the row index.
type row = list.List[Entry]

// Matrix is an n×n row-sparse matrix.
type Matrix struct {
	n    int              // dimension
	rows *list.List[*row] // non-empty rows, increasing row index
}

var _ fmt.Stringer = (*Matrix)(nil)

// rowIndex returns the row index of a stored (non-empty) row.
func rowIndex(r *row) int {
	e, _ := r.Front() // stored rows are never empty
	return e.Row
}

// cursorEntry returns the entry under r's cursor and whether there was one.
func cursorEntry(r *row) (Entry, bool) {
	e, err := r.Get()
	return e, err == nil
}
