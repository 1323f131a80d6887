package bitrow

import "reflect"

// Row is a finite ordered sequence of booleans.
//
// At is only defined for 0 <= col < Len(); callers (the matrix traversal in
// particular) must not index past the end.
type Row interface {
	// Len returns the number of columns in the row.
	Len() int

	// At returns the value at column col.
	At(col int) bool
}

// Bools is a Row backed by a plain bool slice.
type Bools []bool

// NewBools returns a Bools row holding a copy of bs.
func NewBools(bs ...bool) Bools {
	out := make(Bools, len(bs))
	copy(out, bs)

	return out
}

// Len implements Row.
func (r Bools) Len() int { return len(r) }

// At implements Row.
func (r Bools) At(col int) bool { return r[col] }

// Values materializes any Row into a fresh bool slice.
// Complexity: O(Len) time and memory.
func Values(r Row) []bool {
	out := make([]bool, r.Len())
	for c := range out {
		out[c] = r.At(c)
	}

	return out
}

// Equal reports whether a and b have the same length and the same value
// at every column.
func Equal(a, b Row) bool {
	if a.Len() != b.Len() {
		return false
	}
	for c := 0; c < a.Len(); c++ {
		if a.At(c) != b.At(c) {
			return false
		}
	}

	return true
}

// IsNil reports whether r is a nil interface or an interface holding a nil
// pointer, map, func or chan. A nil Bools slice is not nil here: it is a
// valid empty row.
func IsNil(r Row) bool {
	if r == nil {
		return true
	}

	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Snapshot returns a Row that no later write by the caller can change.
// A non-nil *Bitset is already private and is returned as is; any other
// Row is copied into a fresh Bools.
// Complexity: O(Len) time and memory, O(1) for *Bitset.
func Snapshot(r Row) Row {
	if b, ok := r.(*Bitset); ok && b != nil && b.bits != nil {
		return b
	}

	return Bools(Values(r))
}
