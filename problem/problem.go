// SPDX-License-Identifier: MIT

package problem

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Problem is a parsed problem file: two matrices of the same size.
type Problem struct {
	Size int
	A    *sparse.Matrix
	B    *sparse.Matrix
}

// Parse reads a problem file from r.
//
// Implementation:
//   - Stage 1: header n, a, b; allocate A and B.
//   - Stage 2: a triplets into A, then b triplets into B, each through Set.
//
// Errors: ErrMalformed, sparse.ErrOutOfRange, or a read error from r.
func Parse(r io.Reader) (*Problem, error) {
	tk := newTokens(r)

	n, line, err := tk.nextInt("size")
	if err != nil {
		return nil, err
	}
	aCount, err := tk.nextCount("A count")
	if err != nil {
		return nil, err
	}
	bCount, err := tk.nextCount("B count")
	if err != nil {
		return nil, err
	}

	p := &Problem{Size: n}
	if p.A, err = sparse.New(n); err != nil {
		return nil, lineErrorf(line, "size", err)
	}
	p.B, _ = sparse.New(n) // same n, already accepted

	if err = readEntries(tk, p.A, "A", aCount); err != nil {
		return nil, err
	}
	if err = readEntries(tk, p.B, "B", bCount); err != nil {
		return nil, err
	}

	return p, nil
}

// readEntries applies count triplets to m.
func readEntries(tk *tokens, m *sparse.Matrix, name string, count int) error {
	for k := 0; k < count; k++ {
		what := fmt.Sprintf("%s entry %d", name, k+1)
		i, _, err := tk.nextInt(what + " row")
		if err != nil {
			return err
		}
		j, _, err := tk.nextInt(what + " column")
		if err != nil {
			return err
		}
		x, line, err := tk.nextFloat(what + " value")
		if err != nil {
			return err
		}
		if err = m.Set(i, j, x); err != nil {
			return lineErrorf(line, what, err)
		}
	}

	return nil
}

// Write encodes a and b as a problem file that Parse reads back to equal
// matrices. Entries are written in row-major order.
// Errors: sparse.ErrNilMatrix, sparse.ErrDimensionMismatch, or a write error.
func Write(w io.Writer, a, b *sparse.Matrix) error {
	if err := sparse.ValidateSameSize(a, b); err != nil {
		return fmt.Errorf("problem: write: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d\n", a.Size(), a.NNZ(), b.NNZ())
	for _, m := range []*sparse.Matrix{a, b} {
		bw.WriteString("\n")
		for e := range m.Entries() {
			fmt.Fprintf(bw, "%d %d %s\n", e.Row, e.Col, sparse.FormatValue(e.Value))
		}
	}

	return bw.Flush()
}
