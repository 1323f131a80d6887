// Package punchcard encodes small fixed-height boolean matrices ("punch
// cards") into packed unsigned words, one word per column.
//
// What is a punch card here?
//
//	H rows of booleans, all of the same length L. Reading the card column by
//	column, the H bits of each column are folded into one word whose width is
//	H bits: bool for H=1, then uint8, uint16, uint32, uint64 and a 128-bit
//	word for H=8/16/32/64/128.
//
//	    col: 0 1 2
//	  row 0: 1 0 0   ← most significant bit
//	  row 1: 1 1 0
//	    ...
//	  row 7: 1 1 1   ← least significant bit
//	         ↓ ↓ ↓
//	        FF 7F 01
//
// Under the hood, everything is organized under three subpackages:
//
//	bitrow/ — the Row abstraction and its []bool and bitset realizations
//	word/   — the word types, bit-weight tables and the pure column packer
//	matrix/ — card validation, the column-major traversal and output sinks
//
// Guarantees:
//
//   - Validation is eager and total: a card whose rows differ in length is
//     rejected with a LengthMismatchError before any word is produced.
//   - Errors are values; nothing panics on user input.
//   - Pack is deterministic and idempotent; cards are immutable.
//   - Pure Go, no global state, no I/O.
//
// Install with:
//
//	go get github.com/katalvlaran/punchcard
package punchcard
