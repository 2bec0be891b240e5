package hmm

import "errors"

var (
	// ErrEmptySequence indicates no observations were given.
	ErrEmptySequence = errors.New("hmm: observation sequence must be non-empty")

	// ErrStateCount indicates a non-positive number of hidden states.
	ErrStateCount = errors.New("hmm: number of states must be > 0")

	// ErrSymbolRange indicates an observation outside 0..Symbols-1.
	ErrSymbolRange = errors.New("hmm: observation outside the symbol alphabet")

	// ErrLengthMismatch indicates sequence lengths that do not add up to the
	// number of observations, or a non-positive length.
	ErrLengthMismatch = errors.New("hmm: sequence lengths do not match observations")

	// ErrNotStochastic indicates a probability vector that is negative or
	// does not sum to 1, or matrices of inconsistent shape.
	ErrNotStochastic = errors.New("hmm: parameters are not a valid stochastic model")
)
