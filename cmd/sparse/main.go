// SPDX-License-Identifier: MIT

// Command sparse runs the matrix report, the line sorter and matrix
// statistics from the command line.
//
// Usage:
//
//	sparse run <infile> <outfile>
//	sparse lex <infile> <outfile>
//	sparse stats <infile>
//
// Persistent flags: --config <path> (YAML, see package config) and
// --verbose (debug logging).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sparsemat/config"
)

// loggerFactory builds the command logger from the loaded configuration.
type loggerFactory func(cfg *config.Config, verbose bool) (*zap.Logger, error)

// app carries per-invocation state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg       *config.Config
	logger    *zap.Logger
	newLogger loggerFactory
}

func main() {
	if err := newRootCmd(productionLogger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{newLogger: newLogger, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "sparse",
		Short: "Sparse matrix algebra and cursor-list tools",
		Long: `sparse operates on n×n sparse matrices stored as sorted row lists.

  run    parse a problem file (n a b, then a+b "row col value" lines) and
         write the labeled report for A and B
  lex    write the lines of a file in lexicographic order
  stats  summarize the sparsity of both matrices of a problem file`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newRunCmd(), a.newLexCmd(), a.newStatsCmd())

	return root
}

// setup loads configuration and builds the logger before any subcommand.
func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := a.newLogger(cfg, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Float64("scalar", cfg.Report.Scalar),
		zap.Strings("sections", cfg.Report.Sections),
	)

	return nil
}

// productionLogger is zap's production config with the configured level
// and encoding; --verbose forces debug.
func productionLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = cfg.Logging.Encoding
	if zc.Encoding == config.EncodingConsole {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}
