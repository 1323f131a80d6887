package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/punchcard/matrix"
)

// ExampleMatrix_Pack packs an 8-row card into one byte per column.
// Row 0 is the most significant bit.
//
//	col:   0 1 2
//	row 0: 1 0 0   → bit 7
//	row 1: 1 1 0
//	...
//	row 7: 1 1 1   → bit 0
func ExampleMatrix_Pack() {
	m, err := matrix.FromBools[uint8](
		[]bool{true, false, false},
		[]bool{true, true, false},
		[]bool{true, true, false},
		[]bool{true, true, false},
		[]bool{true, true, false},
		[]bool{true, true, false},
		[]bool{true, true, false},
		[]bool{true, true, true},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, _ := m.Pack()
	for c, w := range out {
		fmt.Printf("column %d: 0x%02x\n", c, w)
	}

	// Output:
	// column 0: 0xff
	// column 1: 0x7f
	// column 2: 0x01
}

// ExampleNew_lengthMismatch shows the error returned for a ragged card.
func ExampleNew_lengthMismatch() {
	rows := make([][]bool, 8)
	for i := range rows {
		rows[i] = make([]bool, 3)
	}
	rows[1] = make([]bool, 4)

	_, err := matrix.FromBools[uint8](rows...)

	var lm *matrix.LengthMismatchError
	if errors.As(err, &lm) {
		fmt.Printf("expected=%d row=%d actual=%d\n", lm.Expected, lm.Row, lm.Actual)
	}

	// Output:
	// expected=3 row=1 actual=4
}

// ExampleWithFixedCapacity packs into a pre-sized sink.
func ExampleWithFixedCapacity() {
	m, _ := matrix.FromBools[bool]([]bool{true, false, true})

	out, err := m.Pack(matrix.WithFixedCapacity(3))
	fmt.Println(out, err)

	_, err = m.Pack(matrix.WithFixedCapacity(2))
	fmt.Println(errors.Is(err, matrix.ErrCapacityMismatch))

	// Output:
	// [true false true] <nil>
	// true
}
