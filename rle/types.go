package rle

// Interval is one maximal run of identical labels.
//
// Fields:
//   - Start — first sample index of the run (inclusive).
//   - Stop  — one past the last sample index of the run (exclusive).
//   - Label — the label shared by every sample in [Start, Stop).
//
// Invariant: 0 ≤ Start < Stop.
type Interval[V comparable] struct {
	Start int
	Stop  int
	Label V
}

// Len returns the number of samples covered by the interval.
func (iv Interval[V]) Len() int { return iv.Stop - iv.Start }

// Contains reports whether sample index t lies in [Start, Stop).
func (iv Interval[V]) Contains(t int) bool { return iv.Start <= t && t < iv.Stop }

// Segment is an Interval annotated with its duration, in samples and in
// milliseconds, for a known sampling rate.
type Segment[V comparable] struct {
	Interval[V]

	// Samples is Stop-Start.
	Samples int

	// Millis is the duration of the run in milliseconds: 1000/sr · Samples.
	Millis float64
}
