// Package crossval selects a model hyperparameter by parallel k-fold
// cross-validation over independently trainable candidate models.
//
// For every hyperparameter value k and every fold from fold.Partition, Run
// builds one task: fit a fresh model with k on the fold's training trials,
// then score it on the fold's held-out trials.  Tasks go to a pool of at
// most Config.Workers goroutines; completion order is unconstrained.
//
// Every task and every Result carries its TaskID (k, fold index, test
// range), so results are attributed correctly whatever order they arrive
// in.  A single goroutine (the caller of Run) consumes completions and is
// the only writer of the ScoreTable; it waits on "next completed task",
// never on a specific one.
//
// Failure policy:
//   - configuration problems (bad trials, folds, empty hyperparameter set,
//     negative worker budget) fail Run before any task is dispatched;
//   - a trainer error or panic is caught at the task boundary, logged with
//     its TaskID, recorded as a *TaskError, and removes that fold from k's
//     average only;
//   - a k whose every fold failed has an undefined score (ErrUndefinedScore),
//     never a silent zero.
//
// Averages divide by the number of folds that reported for k, so a short
// last fold counts as one fold.  Per-fold scores are summed in fold order,
// which makes finalized tables bit-for-bit independent of completion order.
//
// Cancelling ctx stops dispatch; tasks already running finish (they see the
// cancelled ctx) and Run returns ctx.Err() without a table.
package crossval
