// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Pack. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves user options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option selects a different sink and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The card height is not an option: it is fixed by the word type parameter W.
//   - The last sink option wins when several are given.
package matrix

// SinkKind selects the output container Pack writes into.
type SinkKind int

const (
	// SinkGrowable starts empty and appends one word per column. Never fails.
	SinkGrowable SinkKind = iota

	// SinkFixed is allocated up front with a declared capacity that must
	// equal the card length.
	SinkFixed
)

// String implements fmt.Stringer.
func (k SinkKind) String() string {
	switch k {
	case SinkGrowable:
		return "growable"
	case SinkFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSinkKind is used when no sink option is supplied.
	DefaultSinkKind = SinkGrowable

	// DefaultCapacity is the declared capacity of a fixed sink when none is
	// given; only meaningful together with SinkFixed.
	DefaultCapacity = 0
)

const panicCapacityNegative = "matrix: WithFixedCapacity: capacity must be non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	sink     SinkKind // DefaultSinkKind
	capacity int      // DefaultCapacity; used by SinkFixed only
}

// WithGrowable selects the growable sink (the default).
// Complexity: O(1).
func WithGrowable() Option {
	return func(o *Options) {
		o.sink = SinkGrowable
		// Reset so a previous WithFixedCapacity leaves no trace.
		o.capacity = DefaultCapacity
	}
}

// WithFixedCapacity selects a fixed-capacity sink of exactly n words.
// Pack fails with *CapacityMismatchError unless n equals the card length.
//
// Panics if n < 0 (programmer error).
// Complexity: O(1).
func WithFixedCapacity(n int) Option {
	// Validate eagerly: a negative size is a bug at the call site, not input.
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *Options) {
		o.sink = SinkFixed
		o.capacity = n
	}
}

// NewPackOptions resolves opts over the defaults; useful for introspection.
func NewPackOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// SinkKind returns the selected sink kind.
func (o Options) SinkKind() SinkKind { return o.sink }

// Capacity returns the declared capacity of a fixed sink.
func (o Options) Capacity() int { return o.capacity }

// gatherOptions applies user setters over the defaults, nil setters skipped.
func gatherOptions(user ...Option) Options {
	// Start from the documented defaults.
	o := Options{
		sink:     DefaultSinkKind,
		capacity: DefaultCapacity,
	}
	// Apply setters in order; the last sink option wins.
	for _, set := range user {
		// A nil setter is a no-op rather than a panic.
		if set != nil {
			set(&o)
		}
	}

	return o
}
