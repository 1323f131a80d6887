package bitrow

import "errors"

// ErrNilBitset indicates that a nil *bitset.BitSet was passed to NewBitset.
var ErrNilBitset = errors.New("bitrow: bitset is nil")
