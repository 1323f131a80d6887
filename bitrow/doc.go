// Package bitrow provides the Row abstraction: a finite, ordered, read-only
// sequence of booleans with a known length.
//
// A Row is one horizontal line of a punch card. Two realizations ship here:
// Bools, a plain []bool, and Bitset, a view over a bits-and-blooms BitSet.
// NewBools, NewBitset and the adapters copy their input, so a Row built
// through them never changes once handed to a card.
package bitrow
