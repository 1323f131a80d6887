// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic card fixtures for the pack tests.
//   - Keep fixture construction out of the assertions.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/punchcard/matrix"
	"github.com/katalvlaran/punchcard/word"
)

// filled returns h rows of length l with every cell set to v.
func filled(h, l int, v bool) [][]bool {
	rows := make([][]bool, h)
	for i := range rows {
		rows[i] = make([]bool, l)
		for c := range rows[i] {
			rows[i][c] = v
		}
	}

	return rows
}

// randomRows returns h rows of length l filled from a seeded source.
func randomRows(seed int64, h, l int) [][]bool {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]bool, h)
	for i := range rows {
		rows[i] = make([]bool, l)
		for c := range rows[i] {
			rows[i][c] = rng.Intn(2) == 1
		}
	}

	return rows
}

// mustMatrix builds a card or fails the test (fatal on error).
func mustMatrix[W word.Word](tb testing.TB, rows [][]bool) *matrix.Matrix[W] {
	tb.Helper()

	m, err := matrix.FromBools[W](rows...)
	if err != nil {
		tb.Fatalf("FromBools: %v", err)
	}

	return m
}

// mustPack packs m with opts or fails the test.
func mustPack[W word.Word](tb testing.TB, m *matrix.Matrix[W], opts ...matrix.Option) []W {
	tb.Helper()

	out, err := m.Pack(opts...)
	if err != nil {
		tb.Fatalf("Pack: %v", err)
	}

	return out
}

// requireBitExact checks bit (H-1-h) of out[c] against rows[h][c] for every cell.
func requireBitExact[W word.Word](t *testing.T, rows [][]bool, out []W) {
	t.Helper()

	if len(rows) == 0 {
		t.Fatal("requireBitExact: no rows")
	}
	if len(out) != len(rows[0]) {
		t.Fatalf("got %d words, want %d", len(out), len(rows[0]))
	}
	for c, w := range out {
		for h := range rows {
			got, err := word.Bit(w, h)
			if err != nil {
				t.Fatalf("Bit(%d): %v", h, err)
			}
			if got != rows[h][c] {
				t.Fatalf("column %d row %d: got %v, want %v", c, h, got, rows[h][c])
			}
		}
	}
}

// recordingSink is a Sink that logs every call it receives.
type recordingSink[W word.Word] struct {
	reserved []int
	cols     []int
	words    []W
	fail     error
}

func (s *recordingSink[W]) Reserve(n int) error {
	s.reserved = append(s.reserved, n)

	return s.fail
}

func (s *recordingSink[W]) Put(col int, w W) {
	s.cols = append(s.cols, col)
	s.words = append(s.words, w)
}

func (s *recordingSink[W]) Words() []W { return s.words }
