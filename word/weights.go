// SPDX-License-Identifier: MIT

package word

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Bit-weight tables: entry h holds 2^(H-1-h), so row 0 maps to the MSB.
// They are built once at package init and never written afterwards.
var (
	weights8   = unsignedWeights[uint8](Height8)
	weights16  = unsignedWeights[uint16](Height16)
	weights32  = unsignedWeights[uint32](Height32)
	weights64  = unsignedWeights[uint64](Height64)
	weights128 = wideWeights()
)

// unsignedWeights builds the weight table for a native unsigned word of h bits.
func unsignedWeights[U constraints.Unsigned](h int) []U {
	w := make([]U, h)
	for row := range w {
		w[row] = U(1) << uint(h-1-row)
	}

	return w
}

// wideWeights builds the 128-row table; Uint128 has no native shift operator.
func wideWeights() []Uint128 {
	w := make([]Uint128, Height128)
	for row := range w {
		w[row] = uint128.From64(1).Lsh(uint(Height128 - 1 - row))
	}

	return w
}

// Weight returns the value row contributes to a W word when its bit is set.
// For bool words the only row is 0 and its weight is true.
//
// Errors: ErrRowOutOfRange if row is outside [0, Width[W]()).
// Complexity: O(1).
func Weight[W Word](row int) (W, error) {
	var zero W
	if row < 0 || row >= Width[W]() {
		return zero, fmt.Errorf("Weight(%d): %w", row, ErrRowOutOfRange)
	}

	var v any
	switch any(zero).(type) {
	case bool:
		v = true
	case uint8:
		v = weights8[row]
	case uint16:
		v = weights16[row]
	case uint32:
		v = weights32[row]
	case uint64:
		v = weights64[row]
	case Uint128:
		v = weights128[row]
	}

	return v.(W), nil
}

// Bit reports whether row's bit is set in w, i.e. bit (H-1-row).
// It is the read side of the weight table: Bit(Pack(bits), h) == bits[h].
//
// Errors: ErrRowOutOfRange if row is outside [0, Width[W]()).
// Complexity: O(1).
func Bit[W Word](w W, row int) (bool, error) {
	if row < 0 || row >= Width[W]() {
		return false, fmt.Errorf("Bit(%d): %w", row, ErrRowOutOfRange)
	}

	switch v := any(w).(type) {
	case bool:
		return v, nil
	case uint8:
		return v&weights8[row] != 0, nil
	case uint16:
		return v&weights16[row] != 0, nil
	case uint32:
		return v&weights32[row] != 0, nil
	case uint64:
		return v&weights64[row] != 0, nil
	case Uint128:
		return !v.And(weights128[row]).IsZero(), nil
	}

	return false, nil
}
