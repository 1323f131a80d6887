// Package word defines the packed output words of a punch card and the pure
// packer that turns one column of row bits into one word.
//
// What:
//
//   - Word is the closed set of supported output types. Each type binds the
//     card height H: bool (H=1), uint8 (8), uint16 (16), uint32 (32),
//     uint64 (64) and Uint128 (128).
//   - Pack / Packer map exactly H booleans (row 0 first) to one word.
//   - Weight / Bit expose the fixed bit-weight assignment and its inverse.
//
// Bit order:
//
//	Row h contributes 2^(H-1-h) when set, so row 0 is the most significant
//	bit and row H-1 the least significant one:
//
//	  row 0 → bit 7 ┐
//	  row 1 → bit 6 │  uint8 column word
//	  ...           │
//	  row 7 → bit 0 ┘
//
//	H=1 is not a packed word at all: the "word" is the single boolean.
//
// Complexity:
//
//   - Pack: O(H) time, no allocation.
//   - Weight, Bit, Width: O(1).
//
// Errors:
//
//   - ErrColumnHeight: the column slice does not hold exactly H booleans.
//   - ErrRowOutOfRange: a row index outside [0, H).
package word
