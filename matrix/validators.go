// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for card validation checks.
//   - Keep New and the sinks minimal by delegating height/row/capacity checks here.
//
// Determinism & Performance:
//   - All checks are pure and deterministic and allocate nothing on success.
//   - ValidateRows is O(H): it compares whole-row lengths, never individual cells.
//
// Note:
//   - ValidateRows follows a fixed sequence: Height → Count → NotNil → Lengths.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/punchcard/bitrow"
	"github.com/katalvlaran/punchcard/word"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateHeight ensures h is a supported card height.
//
// Returns ErrUnsupportedHeight otherwise.
// Complexity: O(1).
func ValidateHeight(h int) error {
	if !word.Supported(h) {
		return validatorErrorf(fmt.Sprintf("ValidateHeight(%d)", h), ErrUnsupportedHeight)
	}

	return nil
}

// ValidateRows checks that rows form a valid card of height h and returns
// the shared row length L.
//
// Stage 1: h is supported and len(rows) == h.
// Stage 2: no row is nil, including interfaces holding a nil pointer.
// Stage 3: every row has row 0's length; the first offender is reported as
// *LengthMismatchError.
//
// The whole card is checked before returning, so callers never produce output
// for a card that would fail halfway through.
// Complexity: O(h).
func ValidateRows(h int, rows []bitrow.Row) (int, error) {
	// The height must be one of the six word widths.
	if err := ValidateHeight(h); err != nil {
		return 0, validatorErrorf("ValidateRows", err)
	}
	// Exactly one row per bit of the word.
	if len(rows) != h {
		return 0, validatorErrorf(fmt.Sprintf("ValidateRows: got %d rows, want %d", len(rows), h), ErrRowCount)
	}

	// Reject nil rows up front, typed nils included, so Len is never called on one.
	for i, r := range rows {
		if bitrow.IsNil(r) {
			return 0, validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrNilRow)
		}
	}

	// Row 0 fixes the card length; every other row must agree with it.
	expected := rows[0].Len()
	for i := 1; i < len(rows); i++ {
		// Report the first offender with both lengths - fast negative path.
		if n := rows[i].Len(); n != expected {
			return 0, validatorErrorf("ValidateRows", &LengthMismatchError{Expected: expected, Row: i, Actual: n})
		}
	}

	// All H lengths agree; the card is rectangular.
	return expected, nil
}

// ValidateCapacity ensures a fixed sink's declared capacity equals the card length.
//
// Returns *CapacityMismatchError otherwise.
// Complexity: O(1).
func ValidateCapacity(expected, provided int) error {
	if expected != provided {
		return validatorErrorf("ValidateCapacity", &CapacityMismatchError{Expected: expected, Provided: provided})
	}

	return nil
}
