// Package fold partitions independent trials into contiguous
// cross-validation folds and slices a trial-structured series into the
// matching training and testing data.
//
// Partitioning is a pure function of (trials, k):
//
//	l      = max(1, ⌊T/k⌋)          block size
//	folds  = ⌈T/l⌉                  the last test block may be shorter
//	test_i = [i·l, min((i+1)·l, T)) contiguous, left to right
//	train_i = [0,T) \ test_i        trial order preserved
//
// Nothing is shuffled, so identical inputs always give identical folds.
//
// A series of N samples holding T trials must satisfy N mod T == 0; each
// trial is then L = N/T consecutive samples (see NewTrials).
package fold
