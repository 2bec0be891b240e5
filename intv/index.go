package intv

import "github.com/katalvlaran/metastates/rle"

// Index answers point lookups by sample index against a set of rle
// intervals.  The intervals must be sorted and non-overlapping; gaps are
// allowed, so an Index built from a Select-ed subset still works.
type Index[V comparable] struct {
	ivs    []rle.Interval[V]
	starts []int
	stops  []int
}

// NewIndex validates ivs and builds an Index over a private copy.
//
// Errors: those of QueryExplicit (ErrUnsorted, ErrEmptySpan).
func NewIndex[V comparable](ivs []rle.Interval[V]) (*Index[V], error) {
	starts := make([]int, len(ivs))
	stops := make([]int, len(ivs))
	for i, iv := range ivs {
		starts[i], stops[i] = iv.Start, iv.Stop
	}
	if err := validateExplicit(starts, stops); err != nil {
		return nil, err
	}
	for i := 1; i < len(ivs); i++ {
		if ivs[i].Start < ivs[i-1].Stop {
			return nil, ErrUnsorted
		}
	}

	return &Index[V]{
		ivs:    append([]rle.Interval[V](nil), ivs...),
		starts: starts,
		stops:  stops,
	}, nil
}

// Len returns the number of indexed intervals.
func (x *Index[V]) Len() int { return len(x.ivs) }

// Lookup returns the interval containing sample t.
func (x *Index[V]) Lookup(t int) (rle.Interval[V], bool) {
	i := IndexExplicit(x.starts, x.stops, t)
	if i == NotFound {
		return rle.Interval[V]{}, false
	}
	return x.ivs[i], true
}

// Locate returns, for every event, the position of its enclosing interval
// in the index, or NotFound.
func (x *Index[V]) Locate(events []int) []int {
	out := make([]int, len(events))
	for i, e := range events {
		out[i] = IndexExplicit(x.starts, x.stops, e)
	}
	return out
}

// Select returns a new Index holding only the intervals labeled label.
func (x *Index[V]) Select(label V) *Index[V] {
	sub := &Index[V]{}
	for i, iv := range x.ivs {
		if iv.Label != label {
			continue
		}
		sub.ivs = append(sub.ivs, iv)
		sub.starts = append(sub.starts, x.starts[i])
		sub.stops = append(sub.stops, x.stops[i])
	}
	return sub
}
