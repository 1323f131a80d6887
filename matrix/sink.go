// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/punchcard/word"

// Sink receives the packed words of a card, one per column.
//
// Pack calls Reserve exactly once with the card length n before any Put,
// then Put for col = 0, 1, ..., n-1 in order. A Reserve error aborts the
// pack before a single word is written.
type Sink[W word.Word] interface {
	// Reserve prepares the sink for n words.
	Reserve(n int) error

	// Put stores w at column col.
	Put(col int, w W)

	// Words returns the stored words, index-aligned with columns.
	Words() []W
}

// Growable is a Sink that appends. It never fails.
type Growable[W word.Word] struct {
	words []W
}

// NewGrowable returns an empty growable sink.
func NewGrowable[W word.Word]() *Growable[W] {
	return &Growable[W]{}
}

// Reserve discards earlier contents and pre-sizes the backing slice.
func (g *Growable[W]) Reserve(n int) error {
	g.words = make([]W, 0, n)

	return nil
}

// Put appends w; col is implied by the append order.
func (g *Growable[W]) Put(_ int, w W) {
	g.words = append(g.words, w)
}

// Words implements Sink.
func (g *Growable[W]) Words() []W { return g.words }

// Fixed is a Sink with a capacity declared at construction.
type Fixed[W word.Word] struct {
	capacity int
	words    []W
}

// NewFixed returns a fixed sink able to hold exactly capacity words.
// A negative capacity yields a sink that rejects every Reserve.
func NewFixed[W word.Word](capacity int) *Fixed[W] {
	f := &Fixed[W]{capacity: capacity}
	if capacity > 0 {
		f.words = make([]W, capacity)
	} else {
		f.words = []W{}
	}

	return f
}

// Cap returns the declared capacity.
func (f *Fixed[W]) Cap() int { return f.capacity }

// Reserve fails with *CapacityMismatchError unless n equals the declared capacity.
func (f *Fixed[W]) Reserve(n int) error {
	return ValidateCapacity(n, f.capacity)
}

// Put writes w at index col.
func (f *Fixed[W]) Put(col int, w W) {
	f.words[col] = w
}

// Words implements Sink.
func (f *Fixed[W]) Words() []W { return f.words }

// newSink builds the sink selected by o.
func newSink[W word.Word](o Options) Sink[W] {
	if o.sink == SinkFixed {
		return NewFixed[W](o.capacity)
	}

	return NewGrowable[W]()
}
