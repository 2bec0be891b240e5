package fold

import "errors"

var (
	// ErrInvalidPartition indicates a non-positive trial or fold count.
	ErrInvalidPartition = errors.New("fold: trial and fold counts must be > 0")

	// ErrTrialMismatch indicates the series length is not a multiple of the
	// trial count.
	ErrTrialMismatch = errors.New("fold: series length is not a multiple of the number of trials")

	// ErrEmptySeries indicates a series with no samples.
	ErrEmptySeries = errors.New("fold: series must be non-empty")

	// ErrFoldRange indicates a fold whose test range does not fit the trials.
	ErrFoldRange = errors.New("fold: test range outside trial bounds")
)
