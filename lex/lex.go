// SPDX-License-Identifier: MIT

// Package lex orders text lines lexicographically by building a cursor list
// of line indices with insertion sort.
//
// Comparison is byte-wise (Go string order). Equal lines keep their input
// order. The sort is quadratic in the number of lines.
package lex

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemat/list"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Order returns the indices of lines in sorted order.
//
// Each index is inserted by scanning from the front past every line that is
// <= it, then inserting before the cursor, or appending when the scan ran
// off the end.
func Order(lines []string) []int {
	l := list.New[int]()
	for i, line := range lines {
		for l.MoveFront(); l.Index() != -1; l.MoveNext() {
			if cur, _ := l.Get(); line < lines[cur] {
				break
			}
		}
		if l.Index() == -1 {
			l.Append(i)
			continue
		}
		_ = l.InsertBefore(i) // cursor is defined
	}

	return l.Values()
}

// Sort returns a sorted copy of lines.
func Sort(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, i := range Order(lines) {
		out = append(out, lines[i])
	}

	return out
}

// ReadLines reads r to EOF, one string per line without its terminator.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lex: read: %w", err)
	}

	return lines, nil
}

// Run reads every line of r and writes them to w in sorted order, each
// followed by "\n". It returns the number of lines written.
func Run(r io.Reader, w io.Writer) (int, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	for _, i := range Order(lines) {
		bw.WriteString(lines[i])
		bw.WriteByte('\n')
	}
	if err = bw.Flush(); err != nil {
		return 0, fmt.Errorf("lex: write: %w", err)
	}

	return len(lines), nil
}
