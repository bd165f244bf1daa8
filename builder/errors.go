// SPDX-License-Identifier: MIT
// Package: mallnav/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Data-integrity problems in the venue are NOT errors: they become
//     Warnings on the Report and construction continues.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilVenue indicates Build was called without a venue.
var ErrNilVenue = errors.New("builder: venue is nil")

// ErrGraphInsert indicates the core graph rejected a vertex or edge that the
// builder considered valid. It always wraps the underlying core error.
var ErrGraphInsert = errors.New("builder: graph insert failed")

// builderErrorf wraps err with the stage that produced it:
// "<stage>: <ErrGraphInsert>: <err>".
func builderErrorf(stage string, err error) error {
	return fmt.Errorf("%s: %w: %w", stage, ErrGraphInsert, err)
}
