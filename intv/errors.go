package intv

import "errors"

var (
	// ErrLengthMismatch indicates starts and stops of different lengths.
	ErrLengthMismatch = errors.New("intv: starts and stops must have equal length")

	// ErrUnsorted indicates a boundary list that is not sorted ascending.
	ErrUnsorted = errors.New("intv: boundaries must be sorted ascending")

	// ErrEmptySpan indicates an interval whose stop does not exceed its start.
	ErrEmptySpan = errors.New("intv: stop must be greater than start")
)
