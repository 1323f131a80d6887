// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every error returned by this package matches one of the sentinels below via
// errors.Is. The two mismatch errors additionally carry their numbers as typed
// errors (LengthMismatchError, CapacityMismatchError) reachable via errors.As.
// Nothing in this package panics on user input; option constructors panic only
// on nonsensical values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// height/row count -> nil row -> length mismatch; capacity is checked by the
// sink, after the card itself is known to be valid.

var (
	// ErrUnsupportedHeight is returned when a height is not one of 1/8/16/32/64/128.
	ErrUnsupportedHeight = errors.New("matrix: unsupported height")

	// ErrRowCount indicates that the number of rows differs from the height
	// bound to the word type.
	ErrRowCount = errors.New("matrix: row count does not match height")

	// ErrNilRow indicates that one of the supplied rows is nil.
	ErrNilRow = errors.New("matrix: nil row")

	// ErrLengthMismatch indicates that a row's length differs from row 0's.
	// Returned as *LengthMismatchError.
	ErrLengthMismatch = errors.New("matrix: row length mismatch")

	// ErrCapacityMismatch indicates a fixed-capacity sink whose capacity differs
	// from the card length. Returned as *CapacityMismatchError.
	ErrCapacityMismatch = errors.New("matrix: sink capacity mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilSink indicates that PackInto received a nil sink.
	ErrNilSink = errors.New("matrix: nil sink")

	// ErrNilMatrix indicates a method call on a nil *Matrix.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// LengthMismatchError reports the first row whose length differs from row 0.
type LengthMismatchError struct {
	Expected int // length of row 0
	Row      int // index of the offending row
	Actual   int // length of the offending row
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: row %d has length %d, want %d", ErrLengthMismatch, e.Row, e.Actual, e.Expected)
}

// Unwrap lets errors.Is(err, ErrLengthMismatch) succeed.
func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// CapacityMismatchError reports a fixed sink sized for the wrong card length.
type CapacityMismatchError struct {
	Expected int // card length
	Provided int // declared sink capacity
}

func (e *CapacityMismatchError) Error() string {
	return fmt.Sprintf("%v: capacity %d, want %d", ErrCapacityMismatch, e.Provided, e.Expected)
}

// Unwrap lets errors.Is(err, ErrCapacityMismatch) succeed.
func (e *CapacityMismatchError) Unwrap() error { return ErrCapacityMismatch }
