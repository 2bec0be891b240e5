package crossval

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/metastates/fold"
)

// task is one (k, fold) unit of work.  It owns everything it needs, so a
// worker never reads scheduler state.
type task struct {
	id    TaskID
	split fold.Split
}

// Run cross-validates every hyperparameter in cfg over trials and returns
// the finalized ScoreTable.
//
// Contracts:
//   - cfg must pass Validate; trials must come from fold.NewTrials.
//   - At most cfg.Workers tasks are in flight; the next queued task is
//     dispatched as soon as a worker frees up.
//   - Task failures never fail Run; they are recorded in the table.
//
// Errors:
//   - those of Config.Validate, fold.Partition and fold.Trials.Split,
//     before any task is dispatched;
//   - ctx.Err() if ctx is cancelled before every task reported; a table
//     whose tasks all reported is returned even if ctx is done by then.
func Run[M any](ctx context.Context, trials fold.Trials, trainer Trainer[M], cfg Config, opts ...Option) (*ScoreTable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tasks, err := plan(trials, cfg)
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	ks := cfg.hyperparameters()
	workers := cfg.workers()
	log := o.logger.With(slog.String("run", uuid.NewString()))
	log.Info("cross-validation started",
		slog.Int("tasks", len(tasks)),
		slog.Any("hyperparameters", ks),
		slog.Int("trials", trials.Count),
		slog.Int("workers", workers))

	results := make(chan Result)
	go dispatch(ctx, tasks, workers, results, func(t task) Result {
		return execute(ctx, trainer, t, o)
	})

	agg := newAggregator(ks)
	start := time.Now()
	var failed, received int
	for res := range results {
		received++
		agg.record(res)
		o.metrics.observe(res)
		if res.Err != nil {
			failed++
			log.Warn("task failed",
				slog.Int("k", res.ID.K),
				slog.Int("fold", res.ID.Fold),
				slog.Int("test_start", res.ID.Test.Start),
				slog.Int("test_end", res.ID.Test.End),
				slog.Any("err", res.Err))
		} else {
			log.Debug("task done",
				slog.String("task", res.ID.String()),
				slog.Float64("score", res.Score),
				slog.Duration("elapsed", res.Elapsed))
		}
		if o.progress != nil {
			o.progress(res)
		}
	}

	if err := ctx.Err(); err != nil && received < len(tasks) {
		log.Warn("cross-validation cancelled, discarding partial results", slog.Any("err", err))
		return nil, err
	}

	log.Info("cross-validation finished",
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(start)))

	return agg.finalize(), nil
}

// plan partitions the trials and materializes one task per (k, fold) in
// nested submission order.
func plan(trials fold.Trials, cfg Config) ([]task, error) {
	folds, err := fold.Partition(trials.Count, cfg.Folds)
	if err != nil {
		return nil, err
	}

	splits := make([]fold.Split, len(folds))
	for i, f := range folds {
		if splits[i], err = trials.Split(f); err != nil {
			return nil, fmt.Errorf("crossval: fold %d: %w", f.Index, err)
		}
	}

	ks := cfg.hyperparameters()
	tasks := make([]task, 0, len(ks)*len(folds))
	for _, k := range ks {
		for i, f := range folds {
			tasks = append(tasks, task{
				id:    TaskID{K: k, Fold: f.Index, Test: f.Test},
				split: splits[i],
			})
		}
	}

	return tasks, nil
}

// dispatch submits tasks to a bounded pool and closes results once every
// submitted task has reported.  It stops submitting when ctx is done.
func dispatch(ctx context.Context, tasks []task, workers int, results chan<- Result, run func(task) Result) {
	var g errgroup.Group
	g.SetLimit(workers)

	for _, t := range tasks {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results <- run(t)
			return nil
		})
	}

	_ = g.Wait()
	close(results)
}

// execute runs one task.  Trainer errors and panics become a *TaskError so
// nothing escapes the task boundary.
func execute[M any](ctx context.Context, trainer Trainer[M], t task, o options) (res Result) {
	ctx, span := o.tracer.Start(ctx, "crossval.task", trace.WithAttributes(
		attribute.Int("k", t.id.K),
		attribute.Int("fold", t.id.Fold),
		attribute.Int("test.start", t.id.Test.Start),
		attribute.Int("test.end", t.id.Test.End),
	))
	o.metrics.started()
	start := time.Now()
	stage := StageFit

	defer func() {
		if r := recover(); r != nil {
			res = Result{ID: t.id, Err: &TaskError{ID: t.id, Stage: stage, Err: fmt.Errorf("panic: %v", r)}}
		}
		res.Elapsed = time.Since(start)
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, string(stage))
		} else {
			span.SetAttributes(attribute.Float64("score", res.Score))
		}
		o.metrics.finished()
		span.End()
	}()

	model, err := trainer.Fit(ctx, t.split.Train, t.split.TrainLengths, t.id.K)
	if err != nil {
		return Result{ID: t.id, Err: &TaskError{ID: t.id, Stage: StageFit, Err: err}}
	}

	stage = StageScore
	score, err := trainer.Score(ctx, model, t.split.Test, t.split.TestLengths)
	if err == nil && math.IsNaN(score) {
		err = ErrNaNScore
	}
	if err != nil {
		return Result{ID: t.id, Err: &TaskError{ID: t.id, Stage: StageScore, Err: err}}
	}

	return Result{ID: t.id, Score: score}
}
