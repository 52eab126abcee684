// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates a problem file that cannot be tokenized into the
// expected header and entries.
var ErrMalformed = errors.New("problem: malformed input")

// lineErrorf attaches a 1-based line number and a short description.
func lineErrorf(line int, what string, err error) error {
	return fmt.Errorf("line %d: %s: %w", line, what, err)
}
