// SPDX-License-Identifier: MIT
// Package sparse - function-style facades.
//
// Each facade forwards to the method of the same meaning; none adds logic
// beyond a nil guard on the receiver-side operand.

package sparse

// Sum returns a + b.
func Sum(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(ctxAdd, err)
	}

	return a.Add(b)
}

// Diff returns a - b.
func Diff(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(ctxSub, err)
	}

	return a.Sub(b)
}

// Product returns a·b.
func Product(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(ctxMult, err)
	}

	return a.Mult(b)
}

// Power returns m^k for k >= 0 by repeated squaring; m^0 is the identity.
// Errors: ErrNilMatrix; ErrOutOfRange if k < 0.
func Power(m *Matrix, k int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(ctxPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(ctxPow, k, k, ErrOutOfRange)
	}

	acc, _ := Identity(m.n) // m.n >= 0 for any constructed matrix
	base := m
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			acc, _ = acc.Mult(base) // equal sizes
		}
		if k > 1 {
			base, _ = base.Mult(base) // self-alias handled by Mult
		}
	}

	return acc, nil
}
