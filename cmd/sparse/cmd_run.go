// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sparsemat/problem"
	"github.com/katalvlaran/sparsemat/report"
)

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <infile> <outfile>",
		Short: "Compute the matrix report for a problem file",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runReport,
	}
}

func (a *app) runReport(_ *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]
	start := time.Now()

	in, err := a.openInput(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	p, err := problem.Parse(in)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inPath, err)
	}
	a.logger.Debug("problem parsed",
		zap.Int("n", p.Size),
		zap.Int("nnzA", p.A.NNZ()),
		zap.Int("nnzB", p.B.NNZ()),
	)

	opts, err := a.cfg.ReportOptions()
	if err != nil {
		return err
	}
	err = writeOutput(outPath, func(w io.Writer) error {
		return report.Write(w, p.A, p.B, opts...)
	})
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Info("report written",
		zap.String("out", outPath),
		zap.Int("n", p.Size),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}
