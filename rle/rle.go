package rle

import "iter"

// Encode scans seq once and merges maximal runs of identical consecutive
// labels into intervals, in strictly increasing Start order.
//
// Errors:
//   - ErrEmptyInput — len(seq) == 0.
//
// Complexity: O(N) time, O(R) memory where R is the number of runs.
func Encode[V comparable](seq []V, opts ...Option) ([]Interval[V], error) {
	runs, err := Scan(seq, opts...)
	if err != nil {
		return nil, err
	}

	var out []Interval[V]
	for iv := range runs {
		out = append(out, iv)
	}

	return out, nil
}

// Scan is the lazy form of Encode: the returned sequence yields one interval
// at a time and stops early when the consumer breaks out of the loop.
// Boundaries always agree with Encode for the same input and options.
//
// Errors:
//   - ErrEmptyInput — len(seq) == 0, reported before iteration starts.
func Scan[V comparable](seq []V, opts ...Option) (iter.Seq[Interval[V]], error) {
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}
	off := newConfig(opts).offset

	return func(yield func(Interval[V]) bool) {
		start := 0
		for i := 1; i <= len(seq); i++ {
			if i < len(seq) && seq[i] == seq[start] {
				continue
			}
			if !yield(Interval[V]{Start: start + off, Stop: i + off, Label: seq[start]}) {
				return
			}
			start = i
		}
	}, nil
}

// Decode expands contiguous, sorted intervals back into a flat label
// sequence of length ivs[len(ivs)-1].Stop.
//
// The intervals are trusted to come from Encode and are not re-validated.
// Overlapping or gapped input yields unspecified contents; samples before
// the first Start (an encoding offset) hold the zero value of V.
// Returns nil for an empty slice.
func Decode[V comparable](ivs []Interval[V]) []V {
	if len(ivs) == 0 {
		return nil
	}

	out := make([]V, ivs[len(ivs)-1].Stop)
	for _, iv := range ivs {
		for t := iv.Start; t < iv.Stop; t++ {
			out[t] = iv.Label
		}
	}

	return out
}

// IterDecode is the lazy form of Decode: samples before the first Start
// are the zero value of V, then each interval contributes Len() copies of
// its label.  Nothing is buffered, and it yields exactly what Decode
// returns for the same intervals.
func IterDecode[V comparable](ivs iter.Seq[Interval[V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var zero V
		prev := 0
		for iv := range ivs {
			for ; prev < iv.Start; prev++ {
				if !yield(zero) {
					return
				}
			}
			for n := iv.Len(); n > 0; n-- {
				if !yield(iv.Label) {
					return
				}
			}
			prev = max(prev, iv.Stop)
		}
	}
}

// Starts returns the Start of every interval; handy as a boundary list for
// intv.QueryCovering.
func Starts[V comparable](ivs []Interval[V]) []int {
	out := make([]int, len(ivs))
	for i, iv := range ivs {
		out[i] = iv.Start
	}
	return out
}
