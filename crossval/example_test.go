package crossval_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/metastates/crossval"
	"github.com/katalvlaran/metastates/fold"
)

// ExampleRun selects between two candidate state counts with a toy
// trainer whose held-out score favours k=2.
func ExampleRun() {
	series := []int{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1}
	trials, err := fold.NewTrials(series, 6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	trainer := crossval.FuncTrainer[int]{
		FitFunc: func(_ context.Context, _, _ []int, k int) (int, error) { return k, nil },
		ScoreFunc: func(_ context.Context, k int, data, _ []int) (float64, error) {
			d := float64(k - 2)
			return -d*d - float64(len(data)), nil
		},
	}

	table, err := crossval.Run(context.Background(), trials, trainer,
		crossval.Config{Hyperparameters: []int{1, 2, 3}, Folds: 3, Workers: 2},
		crossval.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, e := range table.Entries() {
		fmt.Printf("k=%d mean=%.1f folds=%d\n", e.K, e.Mean, e.Folds)
	}
	best, _, _ := table.Best()
	fmt.Println("best:", best)
	// Output:
	// k=1 mean=-5.0 folds=3
	// k=2 mean=-4.0 folds=3
	// k=3 mean=-5.0 folds=3
	// best: 2
}
