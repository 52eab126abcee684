// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

// Section names one block of the report.
type Section string

// Report sections, in default order.
const (
	SectionA         Section = "A"
	SectionB         Section = "B"
	SectionScalar    Section = "scalar"
	SectionSum       Section = "A+B"
	SectionDouble    Section = "A+A"
	SectionDiff      Section = "B-A"
	SectionZero      Section = "A-A"
	SectionTranspose Section = "transpose"
	SectionProduct   Section = "A*B"
	SectionSquare    Section = "B*B"
)

// ErrUnknownSection is returned by ParseSection for an unrecognized name.
var ErrUnknownSection = errors.New("report: unknown section")

// AllSections returns every section in default report order.
func AllSections() []Section {
	return []Section{
		SectionA, SectionB, SectionScalar, SectionSum, SectionDouble,
		SectionDiff, SectionZero, SectionTranspose, SectionProduct, SectionSquare,
	}
}

// ParseSection maps a section name to its Section.
func ParseSection(s string) (Section, error) {
	sec := Section(s)
	if _, ok := blocks[sec]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}

	return sec, nil
}
