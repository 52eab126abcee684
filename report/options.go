// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"
)

// DefaultScalar is the factor of the scalar section.
const DefaultScalar = 1.5

const (
	panicScalarInvalid  = "report: WithScalar: x must be finite"
	panicSectionInvalid = "report: WithSections: unknown section %q"
)

// Option adjusts report rendering.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	scalar   float64
	sections []Section
}

// WithScalar sets the factor used by SectionScalar. Panics if x is NaN or ±Inf.
func WithScalar(x float64) Option {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(panicScalarInvalid)
	}

	return func(o *Options) { o.scalar = x }
}

// WithSections selects the sections to render, in the given order.
// Duplicates are rendered twice; an empty list renders nothing.
// Panics on an unknown section; use ParseSection on untrusted names.
func WithSections(sections ...Section) Option {
	for _, s := range sections {
		if _, ok := blocks[s]; !ok {
			panic(fmt.Sprintf(panicSectionInvalid, s))
		}
	}
	own := append([]Section(nil), sections...)

	return func(o *Options) { o.sections = own }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		scalar:   DefaultScalar,
		sections: AllSections(),
	}
	for _, set := range user {
		set(&o) // last writer wins
	}

	return o
}
