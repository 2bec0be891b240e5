package fold

// Partition splits trials 0..trials-1 into contiguous folds by sliding a
// test window of width ⌊trials/k⌋ from left to right; the last window is
// clipped to trials.  When k exceeds trials every trial becomes its own
// fold.
//
// Errors:
//   - ErrInvalidPartition — trials ≤ 0 or k ≤ 0.
//
// Complexity: O(F·T) time and memory for F folds.
func Partition(trials, k int) ([]Fold, error) {
	if trials <= 0 || k <= 0 {
		return nil, ErrInvalidPartition
	}

	block := trials / k
	if block < 1 {
		block = 1
	}

	count := (trials + block - 1) / block
	folds := make([]Fold, 0, count)
	for start := 0; start < trials; start += block {
		end := min(start+block, trials)
		train := make([]int, 0, trials-(end-start))
		for i := 0; i < start; i++ {
			train = append(train, i)
		}
		for i := end; i < trials; i++ {
			train = append(train, i)
		}
		folds = append(folds, Fold{
			Index: len(folds),
			Test:  Range{Start: start, End: end},
			Train: train,
		})
	}

	return folds, nil
}
