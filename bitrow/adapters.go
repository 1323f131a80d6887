package bitrow

import "github.com/samber/lo"

// FromBools wraps each slice in a Bools row, copying the data.
// The result keeps the input order: rows[i] becomes result[i].
func FromBools(rows ...[]bool) []Row {
	return lo.Map(rows, func(bs []bool, _ int) Row {
		return NewBools(bs...)
	})
}

// Lengths returns Len() of every row, in order.
func Lengths(rows []Row) []int {
	return lo.Map(rows, func(r Row, _ int) int {
		return r.Len()
	})
}
