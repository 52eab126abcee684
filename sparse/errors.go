// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// All positional and dimensional failures are OutOfRange conditions:
// ErrInvalidDimensions and ErrDimensionMismatch wrap ErrOutOfRange, so
// errors.Is(err, ErrOutOfRange) matches every one of them while the narrower
// sentinels stay available to callers that care.
//
// Call sites wrap sentinels with method context ("Matrix.Set(0,4): ...");
// tests match with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a row or column index outside [1, Size()].
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrInvalidDimensions indicates a negative matrix size.
	ErrInvalidDimensions = fmt.Errorf("%w: size must be >= 0", ErrOutOfRange)

	// ErrDimensionMismatch indicates operands of different sizes in Add, Sub
	// or Mult.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrOutOfRange)

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// method tags used in error wrappers.
const (
	ctxNew  = "New"
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxAdd  = "Add"
	ctxSub  = "Sub"
	ctxMult = "Mult"
	ctxFrom = "FromEntries"
	ctxPow  = "Power"
)

// matrixErrorf attaches method context and coordinates to a sentinel.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// opErrorf attaches method context to an operand-level failure.
func opErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}
