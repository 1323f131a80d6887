// Package matrix_test provides benchmarks for Pack across word widths,
// using deterministic random cards.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/punchcard/bitrow"
	"github.com/katalvlaran/punchcard/matrix"
	"github.com/katalvlaran/punchcard/word"
)

// benchLengths are the card lengths to benchmark.
var benchLengths = []int{64, 1024, 16384}

// sinks to defeat dead-code elimination
var (
	sink8   []uint8
	sink64  []uint64
	sink128 []word.Uint128
)

func BenchmarkPack8(b *testing.B) {
	b.ReportAllocs()
	for _, l := range benchLengths {
		b.Run(fmt.Sprintf("L=%d", l), func(b *testing.B) {
			m := mustMatrix[uint8](b, randomRows(1337, 8, l))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink8 = mustPack(b, m)
			}
		})
	}
}

func BenchmarkPack64Fixed(b *testing.B) {
	b.ReportAllocs()
	for _, l := range benchLengths {
		b.Run(fmt.Sprintf("L=%d", l), func(b *testing.B) {
			m := mustMatrix[uint64](b, randomRows(4242, 64, l))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink64 = mustPack(b, m, matrix.WithFixedCapacity(l))
			}
		})
	}
}

func BenchmarkPack128Bitset(b *testing.B) {
	b.ReportAllocs()
	for _, l := range benchLengths {
		b.Run(fmt.Sprintf("L=%d", l), func(b *testing.B) {
			rows := bitrow.FromBools(randomRows(99, 128, l)...)
			for i := range rows {
				rows[i] = bitrow.ToBitset(rows[i])
			}
			m, err := matrix.New[word.Uint128](rows...)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink128 = mustPack(b, m)
			}
		})
	}
}
