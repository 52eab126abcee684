// SPDX-License-Identifier: MIT
// Package list: sentinel errors.
//
// Every positional failure (empty list, undefined cursor) reports
// ErrOutOfRange wrapped with the failing method, so callers match with
// errors.Is and still get a readable message.

package list

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates access to a position that does not exist:
// Front/Back/DeleteFront/DeleteBack on an empty list, or Get/Set/Delete/
// InsertBefore/InsertAfter while the cursor is undefined.
var ErrOutOfRange = errors.New("list: position out of range")

const (
	reasonEmpty     = "empty list"
	reasonNoCursor  = "cursor undefined"
	methodFront     = "Front"
	methodBack      = "Back"
	methodGet       = "Get"
	methodSet       = "Set"
	methodInsBefore = "InsertBefore"
	methodInsAfter  = "InsertAfter"
	methodDelFront  = "DeleteFront"
	methodDelBack   = "DeleteBack"
	methodDelete    = "Delete"
)

// listErrorf tags ErrOutOfRange with the method and reason.
func listErrorf(method, reason string) error {
	return fmt.Errorf("List.%s: %s: %w", method, reason, ErrOutOfRange)
}
