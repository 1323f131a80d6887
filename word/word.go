// SPDX-License-Identifier: MIT

package word

import "lukechampine.com/uint128"

// Uint128 is the 128-bit column word used by 128-row cards.
type Uint128 = uint128.Uint128

// Word is the set of column word types. The type fixes the card height.
type Word interface {
	bool | uint8 | uint16 | uint32 | uint64 | Uint128
}

// Supported card heights, one per Word type.
const (
	Height1   = 1
	Height8   = 8
	Height16  = 16
	Height32  = 32
	Height64  = 64
	Height128 = 128
)

// heights lists the supported heights in ascending order.
var heights = [...]int{Height1, Height8, Height16, Height32, Height64, Height128}

// Heights returns a fresh slice of all supported heights, ascending.
func Heights() []int {
	out := make([]int, len(heights))
	copy(out, heights[:])

	return out
}

// Supported reports whether h is one of the supported card heights.
func Supported(h int) bool {
	for _, v := range heights {
		if v == h {
			return true
		}
	}

	return false
}

// Width returns the card height H bound to the word type W.
// Complexity: O(1).
func Width[W Word]() int {
	var zero W
	switch any(zero).(type) {
	case bool:
		return Height1
	case uint8:
		return Height8
	case uint16:
		return Height16
	case uint32:
		return Height32
	case uint64:
		return Height64
	case Uint128:
		return Height128
	}

	// unreachable: Word is a closed type set
	return 0
}
