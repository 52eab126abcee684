// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/problem"
	"github.com/katalvlaran/sparsemat/sparse"
)

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <infile>",
		Short: "Summarize the sparsity of the matrices in a problem file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runStats,
	}
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	in, err := a.openInput(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	p, err := problem.Parse(in)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	for _, m := range []struct {
		name string
		mat  *sparse.Matrix
	}{{"A", p.A}, {"B", p.B}} {
		if err := writeStats(out, m.name, m.mat); err != nil {
			return err
		}
	}

	return nil
}

// matrixStats summarizes one matrix.
type matrixStats struct {
	size    int
	nnz     int
	rows    int
	density float64 // nnz / size², 0 for size 0
	mean    float64 // entries per stored row
	median  float64
	max     float64
}

func summarize(m *sparse.Matrix) (matrixStats, error) {
	s := matrixStats{size: m.Size(), nnz: m.NNZ(), rows: m.RowCount()}
	if s.size > 0 {
		s.density = float64(s.nnz) / (float64(s.size) * float64(s.size))
	}
	if s.rows == 0 {
		return s, nil
	}

	lengths := make([]float64, 0, s.rows)
	for _, l := range m.RowLengths() {
		lengths = append(lengths, float64(l))
	}
	var err error
	if s.mean, err = stats.Mean(lengths); err != nil {
		return s, err
	}
	if s.median, err = stats.Median(lengths); err != nil {
		return s, err
	}
	if s.max, err = stats.Max(lengths); err != nil {
		return s, err
	}

	return s, nil
}

func writeStats(w io.Writer, name string, m *sparse.Matrix) error {
	s, err := summarize(m)
	if err != nil {
		return fmt.Errorf("stats for %s: %w", name, err)
	}
	_, err = fmt.Fprintf(w, "%s: size %s, nnz %s, density %s%%, rows %d, row length mean %.2f median %.2f max %.0f\n",
		name,
		humanize.Comma(int64(s.size)),
		humanize.Comma(int64(s.nnz)),
		humanize.FtoaWithDigits(s.density*100, 4),
		s.rows, s.mean, s.median, s.max,
	)

	return err
}
