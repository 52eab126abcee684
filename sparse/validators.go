// SPDX-License-Identifier: MIT
// Package sparse: validation guards.
//
// Purpose:
//   - One place for the nil, size and index checks used by every operation.
//   - Guards run before any mutation, so a failed call leaves the receiver
//     exactly as it was.

package sparse

import "fmt"

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize checks that a and b are non-nil and of equal size.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameSize(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameSize(%d,%d)", a.n, b.n), ErrDimensionMismatch)
	}

	return nil
}

// validateIndex checks 1 <= i, j <= n.
func (m *Matrix) validateIndex(method string, i, j int) error {
	if i < 1 || i > m.n || j < 1 || j > m.n {
		return matrixErrorf(method, i, j, ErrOutOfRange)
	}

	return nil
}
