// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/punchcard/bitrow"
	"github.com/katalvlaran/punchcard/word"
)

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// New builds a card from exactly word.Width[W]() rows, row 0 first.
// Stage 1 (Validate): row count, nil rows, then whole-row lengths (ValidateRows).
// Stage 2 (Prepare): snapshot every row and resolve the packing kernel.
// Stage 3 (Finalize): return the Matrix; no partial Matrix is ever returned.
//
// Rows are copied (bitrow.Snapshot), so writes the caller makes to its own
// data after New returns never reach the card.
//
// Errors: ErrRowCount, ErrNilRow, *LengthMismatchError (ErrLengthMismatch).
// Complexity: O(H) validation plus O(H×L) for the snapshot.
func New[W word.Word](rows ...bitrow.Row) (*Matrix[W], error) {
	h := word.Width[W]()
	length, err := ValidateRows(h, rows)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	// Deep copy to prevent external mutation: a bitrow.Bools converted from
	// a caller slice would otherwise still share its storage.
	own := make([]bitrow.Row, h)
	for i, r := range rows {
		own[i] = bitrow.Snapshot(r)
	}

	return &Matrix[W]{
		height: h,
		length: length,
		rows:   own,
		pack:   word.Packer[W](),
	}, nil
}

// FromBools is New over bitrow.Bools rows copied from rows.
func FromBools[W word.Word](rows ...[]bool) (*Matrix[W], error) {
	return New[W](bitrow.FromBools(rows...)...)
}

// Height returns H, the number of rows; 0 for a nil Matrix.
// Complexity: O(1).
func (m *Matrix[W]) Height() int {
	if m == nil {
		return 0
	}

	return m.height
}

// Len returns L, the number of columns and so the number of packed words;
// 0 for a nil Matrix.
// Complexity: O(1).
func (m *Matrix[W]) Len() int {
	if m == nil {
		return 0
	}

	return m.length
}

// Row returns a copy of row i; writes to it never reach the card.
// Errors: ErrNilMatrix, ErrOutOfRange if i is outside [0, Height()).
// Complexity: O(L).
func (m *Matrix[W]) Row(i int) (bitrow.Row, error) {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return nil, matrixErrorf(fmt.Sprintf("Row(%d)", i), ErrNilMatrix)
	}
	if i < 0 || i >= m.height {
		return nil, matrixErrorf(fmt.Sprintf("Row(%d)", i), ErrOutOfRange)
	}

	// Snapshot again: a stored Bools is a slice the caller could write through.
	return bitrow.Snapshot(m.rows[i]), nil
}

// Column gathers column c top to bottom into a fresh slice of H booleans.
// Errors: ErrNilMatrix, ErrOutOfRange if c is outside [0, Len()).
// Complexity: O(H).
func (m *Matrix[W]) Column(c int) ([]bool, error) {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return nil, matrixErrorf(fmt.Sprintf("Column(%d)", c), ErrNilMatrix)
	}
	if c < 0 || c >= m.length {
		return nil, matrixErrorf(fmt.Sprintf("Column(%d)", c), ErrOutOfRange)
	}

	return lo.Map(m.rows, func(r bitrow.Row, _ int) bool {
		return r.At(c)
	}), nil
}

// Pack transposes the card into one word per column using the sink chosen
// by opts (growable by default, see WithFixedCapacity).
// Word c has bit (H-1-h) set exactly when row h is true at column c.
//
// Errors: *CapacityMismatchError (ErrCapacityMismatch) for a fixed sink of
// the wrong size; no words are produced in that case.
// Complexity: O(H×L) time, O(L) memory for the result.
func (m *Matrix[W]) Pack(opts ...Option) ([]W, error) {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return nil, matrixErrorf("Pack", ErrNilMatrix)
	}
	// Resolve the sink kind from options over the defaults.
	s := newSink[W](gatherOptions(opts...))
	// Drive the column loop; any error leaves the caller with no words.
	if err := m.PackInto(s); err != nil {
		return nil, err
	}

	return s.Words(), nil
}

// PackInto drives the column-major loop into a caller-supplied sink.
// Stage 1 (Prepare): s.Reserve(Len()); a failure aborts before any Put.
// Stage 2 (Execute): for each column, gather one bit per row into a reused
// buffer, pack it and Put it at the column index.
//
// Errors: ErrNilMatrix, ErrNilSink, or whatever Reserve returns.
// Complexity: O(H×L) time, O(H) scratch memory.
func (m *Matrix[W]) PackInto(s Sink[W]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return matrixErrorf("PackInto", ErrNilMatrix)
	}
	// A nil sink has nowhere to put the words.
	if s == nil {
		return matrixErrorf("PackInto", ErrNilSink)
	}
	// Size the sink once; a fixed sink of the wrong capacity fails here,
	// before a single word is written.
	if err := s.Reserve(m.length); err != nil {
		return matrixErrorf("PackInto", err)
	}

	bits := make([]bool, m.height) // one column, row 0 first; reused per column
	for c := 0; c < m.length; c++ {
		// Gather column c top to bottom: bits[h] is row h's cell.
		for h := range bits {
			bits[h] = m.rows[h].At(c)
		}
		// Fold the column into one word (row 0 = MSB) and store it at index c.
		s.Put(c, m.pack(bits))
	}

	// Every column 0..L-1 has been written exactly once.
	return nil
}
