package labelio

import "errors"

var (
	// ErrNoLabels indicates an input without a single label.
	ErrNoLabels = errors.New("labelio: no labels in input")

	// ErrSyntax indicates a token that is not a base-10 integer.
	ErrSyntax = errors.New("labelio: invalid label")
)
