// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (the 3×3 examples used throughout).
//   - Seeded random sparse matrices with small integer values, so every sum
//     and product is exact in float64 and results compare with Equal.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

// MustNew allocates an empty n×n matrix or fails the test.
func MustNew(t testing.TB, n int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(n)
	require.NoError(t, err)

	return m
}

// MustFrom builds an n×n matrix from entries or fails the test.
func MustFrom(t testing.TB, n int, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromEntries(n, entries...)
	require.NoError(t, err)

	return m
}

// SampleA is
//
//	2 0 1
//	0 0 0
//	0 3 0
func SampleA(t testing.TB) *sparse.Matrix {
	return MustFrom(t, 3,
		sparse.Entry{Row: 1, Col: 1, Value: 2},
		sparse.Entry{Row: 1, Col: 3, Value: 1},
		sparse.Entry{Row: 3, Col: 2, Value: 3},
	)
}

// SampleB is
//
//	0 0 3
//	0 0 0
//	0 1 0
func SampleB(t testing.TB) *sparse.Matrix {
	return MustFrom(t, 3,
		sparse.Entry{Row: 1, Col: 3, Value: 3},
		sparse.Entry{Row: 3, Col: 2, Value: 1},
	)
}

// SampleC is
//
//	4 0 0
//	0 8 1
//	5 0 9
func SampleC(t testing.TB) *sparse.Matrix {
	return MustFrom(t, 3,
		sparse.Entry{Row: 1, Col: 1, Value: 4},
		sparse.Entry{Row: 2, Col: 2, Value: 8},
		sparse.Entry{Row: 2, Col: 3, Value: 1},
		sparse.Entry{Row: 3, Col: 1, Value: 5},
		sparse.Entry{Row: 3, Col: 3, Value: 9},
	)
}

// RandomSparse returns an n×n matrix where each cell is non-zero with
// probability p and holds an integer in [-4, 4]. Cells are written in a
// shuffled order to exercise every Set insertion path.
func RandomSparse(t testing.TB, rng *rand.Rand, n int, p float64) *sparse.Matrix {
	t.Helper()
	m := MustNew(t, n)
	cells := rng.Perm(n * n)
	for _, c := range cells {
		if rng.Float64() >= p {
			continue
		}
		v := float64(rng.Intn(9) - 4)
		require.NoError(t, m.Set(c/n+1, c%n+1, v))
	}

	return m
}

// ToGrid expands m into a dense row-major [][]float64 (0-based).
func ToGrid(t testing.TB, m *sparse.Matrix) [][]float64 {
	t.Helper()
	n := m.Size()
	g := make([][]float64, n)
	for i := range g {
		g[i] = make([]float64, n)
	}
	for e := range m.Entries() {
		g[e.Row-1][e.Col-1] = e.Value
	}

	return g
}

// CountNonZero counts non-zero cells through At, independent of NNZ.
func CountNonZero(t testing.TB, m *sparse.Matrix) int {
	t.Helper()
	cnt := 0
	for i := 1; i <= m.Size(); i++ {
		for j := 1; j <= m.Size(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if v != 0 {
				cnt++
			}
		}
	}

	return cnt
}
