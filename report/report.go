// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemat/sparse"
)

// block renders one section: a header line and the matrix it shows.
type block struct {
	header func(o *Options, a, b *sparse.Matrix) string
	eval   func(o *Options, a, b *sparse.Matrix) (*sparse.Matrix, error)
}

// fixed returns a header func for a constant label.
func fixed(label string) func(*Options, *sparse.Matrix, *sparse.Matrix) string {
	return func(*Options, *sparse.Matrix, *sparse.Matrix) string { return label }
}

var blocks = map[Section]block{
	SectionA: {
		header: func(_ *Options, a, _ *sparse.Matrix) string {
			return fmt.Sprintf("A has %d non-zero entries:", a.NNZ())
		},
		eval: func(_ *Options, a, _ *sparse.Matrix) (*sparse.Matrix, error) { return a, nil },
	},
	SectionB: {
		header: func(_ *Options, _, b *sparse.Matrix) string {
			return fmt.Sprintf("B has %d non-zero entries:", b.NNZ())
		},
		eval: func(_ *Options, _, b *sparse.Matrix) (*sparse.Matrix, error) { return b, nil },
	},
	SectionScalar: {
		header: func(o *Options, _, _ *sparse.Matrix) string {
			return fmt.Sprintf("(%s)*A = ", sparse.FormatValue(o.scalar))
		},
		eval: func(o *Options, a, _ *sparse.Matrix) (*sparse.Matrix, error) {
			return a.ScalarMult(o.scalar), nil
		},
	},
	SectionSum: {
		header: fixed("A+B = "),
		eval:   func(_ *Options, a, b *sparse.Matrix) (*sparse.Matrix, error) { return a.Add(b) },
	},
	SectionDouble: {
		header: fixed("A+A = "),
		eval:   func(_ *Options, a, _ *sparse.Matrix) (*sparse.Matrix, error) { return a.Add(a) },
	},
	SectionDiff: {
		header: fixed("B-A = "),
		eval:   func(_ *Options, a, b *sparse.Matrix) (*sparse.Matrix, error) { return b.Sub(a) },
	},
	SectionZero: {
		header: fixed("A-A = "),
		eval:   func(_ *Options, a, _ *sparse.Matrix) (*sparse.Matrix, error) { return a.Sub(a) },
	},
	SectionTranspose: {
		header: fixed("Transpose(A) = "),
		eval: func(_ *Options, a, _ *sparse.Matrix) (*sparse.Matrix, error) {
			return a.Transpose(), nil
		},
	},
	SectionProduct: {
		header: fixed("A*B = "),
		eval:   func(_ *Options, a, b *sparse.Matrix) (*sparse.Matrix, error) { return a.Mult(b) },
	},
	SectionSquare: {
		header: fixed("B*B = "),
		eval:   func(_ *Options, _, b *sparse.Matrix) (*sparse.Matrix, error) { return b.Mult(b) },
	},
}

// Write renders the report for a and b to w.
//
// Implementation:
//   - Stage 1: validate operands; nothing is written on failure.
//   - Stage 2: for each selected section, evaluate it and write the header
//     line, the matrix listing and a blank line.
//
// Errors: sparse.ErrNilMatrix, sparse.ErrDimensionMismatch, or a write error.
func Write(w io.Writer, a, b *sparse.Matrix, opts ...Option) error {
	if err := sparse.ValidateSameSize(a, b); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	o := gatherOptions(opts...)

	bw := bufio.NewWriter(w)
	for _, s := range o.sections {
		blk := blocks[s]
		m, err := blk.eval(&o, a, b)
		if err != nil {
			return fmt.Errorf("report: section %s: %w", s, err)
		}
		fmt.Fprintln(bw, blk.header(&o, a, b))
		fmt.Fprintln(bw, m.String())
	}

	return bw.Flush()
}
