// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowSep   = ":"
	_fmtOpen     = " ("
	_fmtEntrySep = ", "
	_fmtClose    = ")"
	_fmtRowEnd   = "\n"
)

// String renders the stored rows, one line each, in row order:
//
//	<row>: (<col>, <value>) (<col>, <value>) ...
//
// Every line ends with "\n"; an all-zero matrix renders as "".
// Complexity: O(R + NNZ).
func (m *Matrix) String() string {
	var sb strings.Builder
	for r := range m.rows.All() {
		sb.WriteString(strconv.Itoa(rowIndex(r)))
		sb.WriteString(_fmtRowSep)
		for e := range r.All() {
			sb.WriteString(_fmtOpen)
			sb.WriteString(strconv.Itoa(e.Col))
			sb.WriteString(_fmtEntrySep)
			sb.WriteString(FormatValue(e.Value))
			sb.WriteString(_fmtClose)
		}
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}

// FormatValue renders v as the shortest decimal that parses back to v, with
// a ".0" suffix when it would otherwise look like an integer: 2 → "2.0",
// 3.5 → "3.5", -0.25 → "-0.25". NaN and ±Inf use strconv's spelling.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.ContainsRune(s, '.') {
		return s
	}

	return s + ".0"
}
