// Package intv answers "which interval contains timestamp t" against
// sorted boundary lists.
//
// Two modes are supported:
//
//   - Covering: boundaries b0 < b1 < … < bk partition the line into
//     (-∞,b0), [b0,b1), …, [bk,+∞).  Every timestamp maps to exactly one
//     index in 0..k+1, never NotFound.
//
//   - Explicit: independent starts and stops (same length, both sorted,
//     stops[i] > starts[i]) describe intervals that need not touch.  A
//     timestamp in a gap maps to NotFound.  Gaps are expected, so this is
//     a value rather than an error.
//
// Both modes use the right-open convention: a start boundary is inside its
// interval, a stop boundary is outside.
//
// Batch queries (QueryCovering, QueryExplicit) validate their boundary
// lists once and then answer each event with the same per-event logic as
// the scalar IndexCovering / IndexExplicit.  Each query costs O(log M)
// against M boundaries.
//
// Index wraps the intervals produced by package rle for point lookups by
// sample index.
package intv
