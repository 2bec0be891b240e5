package fold

// Trials views a flat label series as Count consecutive trials of Length
// samples each.  The series is shared, never copied or mutated.
type Trials struct {
	Series []int
	Count  int
	Length int
}

// NewTrials checks that series splits evenly into count trials.
//
// Errors:
//   - ErrInvalidPartition — count ≤ 0.
//   - ErrEmptySeries      — len(series) == 0.
//   - ErrTrialMismatch    — len(series) % count != 0.
func NewTrials(series []int, count int) (Trials, error) {
	if count <= 0 {
		return Trials{}, ErrInvalidPartition
	}
	if len(series) == 0 {
		return Trials{}, ErrEmptySeries
	}
	if len(series)%count != 0 {
		return Trials{}, ErrTrialMismatch
	}

	return Trials{Series: series, Count: count, Length: len(series) / count}, nil
}

// Trial returns the samples of trial i.
func (t Trials) Trial(i int) []int {
	return t.Series[i*t.Length : (i+1)*t.Length : (i+1)*t.Length]
}

// Lengths returns n copies of the trial length, the per-sequence lengths a
// trainer expects for n concatenated trials.
func (t Trials) Lengths(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = t.Length
	}
	return out
}

// Split holds the concatenated samples of one fold's training and testing
// trials along with their per-trial lengths.
type Split struct {
	Train        []int
	TrainLengths []int
	Test         []int
	TestLengths  []int
}

// Split materializes f against the trials.  Testing samples are a
// sub-slice of Series (contiguous); training samples are a fresh copy.
//
// Errors:
//   - ErrFoldRange — f.Test is empty or extends past Count.
func (t Trials) Split(f Fold) (Split, error) {
	if f.Test.Start < 0 || f.Test.End > t.Count || f.Test.Len() <= 0 {
		return Split{}, ErrFoldRange
	}

	train := make([]int, 0, len(f.Train)*t.Length)
	for _, i := range f.Train {
		if i < 0 || i >= t.Count {
			return Split{}, ErrFoldRange
		}
		train = append(train, t.Trial(i)...)
	}

	return Split{
		Train:        train,
		TrainLengths: t.Lengths(len(f.Train)),
		Test:         t.Series[f.Test.Start*t.Length : f.Test.End*t.Length : f.Test.End*t.Length],
		TestLengths:  t.Lengths(f.Test.Len()),
	}, nil
}
