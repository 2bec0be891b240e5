package crossval

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHyperparameters indicates an empty hyperparameter set.
	// Config.Validate wraps it together with fold.ErrInvalidPartition.
	ErrNoHyperparameters = errors.New("crossval: hyperparameter set must be non-empty")

	// ErrWorkers indicates a negative worker budget.
	ErrWorkers = errors.New("crossval: worker budget must be >= 0")

	// ErrTrainingFailure marks a task whose fit or score step failed.
	ErrTrainingFailure = errors.New("crossval: training failure")

	// ErrUndefinedScore indicates a hyperparameter with no successful fold.
	ErrUndefinedScore = errors.New("crossval: score undefined, every fold failed")

	// ErrUnknownHyperparameter indicates a lookup of a k that was not run.
	ErrUnknownHyperparameter = errors.New("crossval: unknown hyperparameter")

	// ErrNaNScore indicates a trainer returned NaN as a held-out score.
	ErrNaNScore = errors.New("crossval: trainer returned NaN score")
)

// Stage names the step of a task that failed.
type Stage string

const (
	StageFit   Stage = "fit"
	StageScore Stage = "score"
)

// TaskError is the failure of one (k, fold) task.  It matches
// ErrTrainingFailure and unwraps to the trainer's error.
type TaskError struct {
	ID    TaskID
	Stage Stage
	Err   error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("crossval: training failure at %s (%s): %v", e.ID, e.Stage, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As.
func (e *TaskError) Unwrap() []error {
	return []error{ErrTrainingFailure, e.Err}
}
