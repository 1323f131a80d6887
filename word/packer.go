// SPDX-License-Identifier: MIT

package word

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Width-specific kernels, resolved once so the column loop never switches on type.
var (
	pack8   = unsignedPacker(weights8)
	pack16  = unsignedPacker(weights16)
	pack32  = unsignedPacker(weights32)
	pack64  = unsignedPacker(weights64)
	pack128 = widePacker(weights128)
)

// packBool is the H=1 kernel: the column's only bit is the word.
func packBool(bits []bool) bool {
	return bits[0]
}

// unsignedPacker returns the kernel ORing the weight of every set row.
func unsignedPacker[U constraints.Unsigned](weights []U) func([]bool) U {
	return func(bits []bool) U {
		var w U
		for row, set := range bits {
			if set {
				w |= weights[row]
			}
		}

		return w
	}
}

// widePacker is unsignedPacker for Uint128.
func widePacker(weights []Uint128) func([]bool) Uint128 {
	return func(bits []bool) Uint128 {
		var w Uint128
		for row, set := range bits {
			if set {
				w = w.Or(weights[row])
			}
		}

		return w
	}
}

// Packer returns the pure packing kernel for W.
// The kernel expects exactly Width[W]() booleans and does not check it;
// use Pack for a checked call.
func Packer[W Word]() func([]bool) W {
	var zero W
	var fn any
	switch any(zero).(type) {
	case bool:
		fn = packBool
	case uint8:
		fn = pack8
	case uint16:
		fn = pack16
	case uint32:
		fn = pack32
	case uint64:
		fn = pack64
	case Uint128:
		fn = pack128
	}

	return fn.(func([]bool) W)
}

// Pack folds one column into a W word. bits[h] is row h's value, row 0 first.
//
// Errors: ErrColumnHeight if len(bits) != Width[W]().
// Complexity: O(H), no allocation.
func Pack[W Word](bits []bool) (W, error) {
	if len(bits) != Width[W]() {
		var zero W
		return zero, fmt.Errorf("Pack: got %d bits, want %d: %w", len(bits), Width[W](), ErrColumnHeight)
	}

	return Packer[W]()(bits), nil
}
