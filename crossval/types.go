package crossval

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/metastates/fold"
)

// Trainer is the external model contract.  Both calls may be slow and
// must be safe to invoke concurrently on independent inputs.
//
//   - Fit trains a fresh model with hyperparameter k on data, which is
//     the concatenation of sequences of the given lengths.
//   - Score returns the held-out log-likelihood of data under model.
type Trainer[M any] interface {
	Fit(ctx context.Context, data, lengths []int, k int) (M, error)
	Score(ctx context.Context, model M, data, lengths []int) (float64, error)
}

// FuncTrainer adapts a pair of functions to Trainer.
type FuncTrainer[M any] struct {
	FitFunc   func(ctx context.Context, data, lengths []int, k int) (M, error)
	ScoreFunc func(ctx context.Context, model M, data, lengths []int) (float64, error)
}

// Fit calls FitFunc.
func (f FuncTrainer[M]) Fit(ctx context.Context, data, lengths []int, k int) (M, error) {
	return f.FitFunc(ctx, data, lengths, k)
}

// Score calls ScoreFunc.
func (f FuncTrainer[M]) Score(ctx context.Context, model M, data, lengths []int) (float64, error) {
	return f.ScoreFunc(ctx, model, data, lengths)
}

// Config is the explicit configuration of one cross-validation run.
//
// Fields:
//   - Hyperparameters — candidate values of k; duplicates are ignored.
//   - Folds           — requested fold count, passed to fold.Partition.
//   - Workers         — maximum concurrent tasks; 0 means GOMAXPROCS.
type Config struct {
	Hyperparameters []int
	Folds           int
	Workers         int
}

// Validate checks the configuration without touching any data.
func (c Config) Validate() error {
	if len(c.Hyperparameters) == 0 {
		return fmt.Errorf("%w: %w", ErrNoHyperparameters, fold.ErrInvalidPartition)
	}
	if c.Folds <= 0 {
		return fmt.Errorf("crossval: folds=%d: %w", c.Folds, fold.ErrInvalidPartition)
	}
	if c.Workers < 0 {
		return ErrWorkers
	}
	return nil
}

// hyperparameters returns the distinct values of k in first-seen order.
func (c Config) hyperparameters() []int {
	seen := make(map[int]struct{}, len(c.Hyperparameters))
	out := make([]int, 0, len(c.Hyperparameters))
	for _, k := range c.Hyperparameters {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// TaskID identifies one training task.
type TaskID struct {
	K    int
	Fold int
	Test fold.Range
}

func (id TaskID) String() string {
	return fmt.Sprintf("k=%d fold=%d test=[%d,%d)", id.K, id.Fold, id.Test.Start, id.Test.End)
}

// Result is the outcome of one task.  Err is nil or a *TaskError.
type Result struct {
	ID      TaskID
	Score   float64
	Err     error
	Elapsed time.Duration
}
