// SPDX-License-Identifier: MIT

package problem

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// tokens yields whitespace-separated fields across lines, remembering the
// line each field came from.
type tokens struct {
	sc     *bufio.Scanner
	line   int
	fields []string
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &tokens{sc: sc}
}

// next returns the next field and its line. At end of input it reports
// ErrMalformed naming what was expected.
func (t *tokens) next(what string) (string, int, error) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", t.line, fmt.Errorf("problem: read: %w", err)
			}
			return "", t.line, lineErrorf(t.line, "missing "+what, ErrMalformed)
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	f := t.fields[0]
	t.fields = t.fields[1:]

	return f, t.line, nil
}

// nextInt reads a base-10 integer.
func (t *tokens) nextInt(what string) (int, int, error) {
	f, line, err := t.next(what)
	if err != nil {
		return 0, line, err
	}
	v, perr := strconv.Atoi(f)
	if perr != nil {
		return 0, line, lineErrorf(line, fmt.Sprintf("%s %q", what, f), ErrMalformed)
	}

	return v, line, nil
}

// nextCount reads a non-negative integer.
func (t *tokens) nextCount(what string) (int, error) {
	v, line, err := t.nextInt(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, lineErrorf(line, fmt.Sprintf("negative %s %d", what, v), ErrMalformed)
	}

	return v, nil
}

// nextFloat reads a finite float64.
func (t *tokens) nextFloat(what string) (float64, int, error) {
	f, line, err := t.next(what)
	if err != nil {
		return 0, line, err
	}
	v, perr := strconv.ParseFloat(f, 64)
	if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, line, lineErrorf(line, fmt.Sprintf("%s %q", what, f), ErrMalformed)
	}

	return v, line, nil
}
