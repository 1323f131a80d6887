package bitrow

import "github.com/bits-and-blooms/bitset"

// Bitset is a Row stored one bit per column in a bits-and-blooms BitSet.
// The row length is the BitSet's Len, not the position of its last set bit,
// so trailing false columns are preserved.
type Bitset struct {
	bits *bitset.BitSet // private clone, never mutated
}

// NewBitset returns a Row over a clone of b. Later changes to b are not seen.
// Returns ErrNilBitset if b is nil.
func NewBitset(b *bitset.BitSet) (*Bitset, error) {
	if b == nil {
		return nil, ErrNilBitset
	}

	return &Bitset{bits: b.Clone()}, nil
}

// ToBitset copies any Row into a new Bitset row.
// Complexity: O(Len) time, O(Len/64) words of memory.
func ToBitset(r Row) *Bitset {
	n := r.Len()
	b := bitset.New(uint(n))
	for c := 0; c < n; c++ {
		if r.At(c) {
			b.Set(uint(c))
		}
	}

	return &Bitset{bits: b}
}

// Len implements Row. A nil or zero Bitset is an empty row.
func (r *Bitset) Len() int {
	if r == nil || r.bits == nil {
		return 0
	}

	return int(r.bits.Len())
}

// At implements Row. A nil or zero Bitset reads as false everywhere.
func (r *Bitset) At(col int) bool {
	if r == nil || r.bits == nil {
		return false
	}

	return r.bits.Test(uint(col))
}

// Count returns the number of true columns.
func (r *Bitset) Count() int {
	if r == nil || r.bits == nil {
		return 0
	}

	return int(r.bits.Count())
}

// BitSet returns a clone of the underlying set; empty for a zero Bitset.
func (r *Bitset) BitSet() *bitset.BitSet {
	if r == nil || r.bits == nil {
		return bitset.New(0)
	}

	return r.bits.Clone()
}
