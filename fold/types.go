package fold

// Range is a half-open range of trial indices [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns End-Start.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether trial i lies in the range.
func (r Range) Contains(i int) bool { return r.Start <= i && i < r.End }

// Fold is one train/test split of the trials.
//
// Fields:
//   - Index — position of the fold in Partition's output, from 0.
//   - Test  — the contiguous block of held-out trials.
//   - Train — every other trial index, ascending.
type Fold struct {
	Index int
	Test  Range
	Train []int
}
