// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2.0"},
		{-2, "-2.0"},
		{0, "0.0"},
		{3.5, "3.5"},
		{-0.25, "-0.25"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{1e21, "1000000000000000000000.0"},
		{1.0 / 3, "0.3333333333333333"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, sparse.FormatValue(tc.in))
	}
}

func TestStringEmpty(t *testing.T) {
	require.Equal(t, "", MustNew(t, 0).String())
	require.Equal(t, "", MustNew(t, 5).String())
}

func TestStringSkipsEmptyRows(t *testing.T) {
	m := MustFrom(t, 6,
		sparse.Entry{Row: 6, Col: 1, Value: -1},
		sparse.Entry{Row: 2, Col: 6, Value: 0.5},
		sparse.Entry{Row: 2, Col: 2, Value: 10},
	)
	require.Equal(t, "2: (2, 10.0) (6, 0.5)\n6: (1, -1.0)\n", m.String())
}
