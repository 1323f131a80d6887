// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the Matrix type; errors, options and sinks live in
// their dedicated files.
package matrix

import (
	"github.com/katalvlaran/punchcard/bitrow"
	"github.com/katalvlaran/punchcard/word"
)

// Matrix is a validated punch card: exactly H rows of one common length L,
// where H = word.Width[W]().
//
// A Matrix is immutable once built. Pack may be called any number of times and
// always yields an equal sequence.
//
// Complexity notes: Height and Len are O(1); Pack is O(H×L).
type Matrix[W word.Word] struct {
	height int            // H, bound to W
	length int            // L, shared by every row
	rows   []bitrow.Row   // exactly height rows, row 0 first (MSB)
	pack   func([]bool) W // width-specific kernel from word.Packer
}
