// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sparsemat/lex"
)

func (a *app) newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <infile> <outfile>",
		Short: "Write the lines of a file in lexicographic order",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runLex,
	}
}

func (a *app) runLex(_ *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	in, err := a.openInput(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var n int
	err = writeOutput(outPath, func(w io.Writer) error {
		n, err = lex.Run(in, w)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to sort %s: %w", inPath, err)
	}

	a.logger.Info("lines sorted", zap.String("out", outPath), zap.Int("lines", n))

	return nil
}
