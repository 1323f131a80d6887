// SPDX-License-Identifier: MIT

package word

import "errors"

var (
	// ErrColumnHeight is returned when a column does not hold exactly
	// Width[W]() booleans.
	ErrColumnHeight = errors.New("word: column height does not match word width")

	// ErrRowOutOfRange indicates a row index outside [0, Width[W]()).
	ErrRowOutOfRange = errors.New("word: row index out of range")
)
