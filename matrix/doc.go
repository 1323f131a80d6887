// Package matrix builds punch cards from rows and packs them column by column.
//
// What:
//
//   - Matrix[W] holds exactly H = word.Width[W]() rows of one common length L.
//   - New validates the whole card eagerly: row count, nil rows, then every
//     row's length against row 0. A bad card never yields partial output.
//   - Pack walks columns 0..L-1, gathers one bit per row and writes one W word
//     per column into a Sink (growable by default, fixed-capacity on request).
//
// Bit order:
//
//	Row 0 is the most significant bit of every word. For H=8 a column whose
//	only clear row is row 0 packs to 0x7F.
//
// Complexity:
//
//   - New: O(H).
//   - Pack / PackInto: O(H×L) time, O(L) result memory, O(H) scratch.
//
// Options:
//
//   - WithGrowable(): append-only sink (default).
//   - WithFixedCapacity(n): pre-sized sink; n must equal L.
//
// Errors:
//
//   - ErrRowCount, ErrNilRow: malformed row set.
//   - ErrLengthMismatch (*LengthMismatchError): rows of different lengths.
//   - ErrCapacityMismatch (*CapacityMismatchError): fixed sink of the wrong size.
//   - ErrOutOfRange: Row/Column index outside the card.
package matrix
