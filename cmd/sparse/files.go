// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/readahead"
	"go.uber.org/zap"
)

// Read-ahead geometry for input files.
const (
	readBuffers    = 4
	readBufferSize = 1 << 20
)

// input is an opened input file read through a read-ahead buffer.
type input struct {
	io.Reader
	file *os.File
	ra   io.ReadCloser
	size int64
}

// openInput opens path for streaming reads and logs its size.
func (a *app) openInput(path string) (*input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	ra, err := readahead.NewReaderSize(f, readBuffers, readBufferSize)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to start read-ahead: %w", err)
	}
	a.logger.Debug("input opened",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(st.Size()))),
	)

	return &input{Reader: ra, file: f, ra: ra, size: st.Size()}, nil
}

// Close stops the read-ahead goroutine and closes the file.
func (in *input) Close() error {
	return errors.Join(in.ra.Close(), in.file.Close())
}

// writeOutput creates path and hands it to fn. The file is closed before
// returning; a close error is reported when fn succeeded.
func writeOutput(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return fn(f)
}
