package crossval_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/metastates/crossval"
	"github.com/katalvlaran/metastates/fold"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// labeledTrials builds count trials of length samples where every sample of
// trial i equals i, so a trainer can tell folds apart from the data alone.
func labeledTrials(t *testing.T, count, length int) fold.Trials {
	t.Helper()
	series := make([]int, 0, count*length)
	for i := 0; i < count; i++ {
		for j := 0; j < length; j++ {
			series = append(series, i)
		}
	}
	tr, err := fold.NewTrials(series, count)
	require.NoError(t, err)
	return tr
}

// fakeScore is a deterministic held-out score: larger k is worse, and the
// test block position moves the score so folds differ.
func fakeScore(k int, test []int) float64 {
	var sum float64
	for _, v := range test {
		sum += float64(v)
	}
	return -100*float64(k) - sum/float64(len(test)) + 0.1
}

// fakeTrainer returns k as the model and fakeScore as the score.
func fakeTrainer() crossval.FuncTrainer[int] {
	return crossval.FuncTrainer[int]{
		FitFunc: func(_ context.Context, data, lengths []int, k int) (int, error) {
			return k, nil
		},
		ScoreFunc: func(_ context.Context, k int, data, lengths []int) (float64, error) {
			return fakeScore(k, data), nil
		},
	}
}

// expectedMean recomputes the average for k by walking the folds.
func expectedMean(t *testing.T, tr fold.Trials, folds, k int) float64 {
	t.Helper()
	fs, err := fold.Partition(tr.Count, folds)
	require.NoError(t, err)
	var sum float64
	for _, f := range fs {
		s, err := tr.Split(f)
		require.NoError(t, err)
		sum += fakeScore(k, s.Test)
	}
	return sum / float64(len(fs))
}
