package rle

import "errors"

var (
	// ErrEmptyInput indicates an empty sequence was given to Encode or Scan.
	// An empty sequence has no well-defined last interval.
	ErrEmptyInput = errors.New("rle: input sequence must be non-empty")

	// ErrSampleRate indicates a non-positive sampling rate for Annotate.
	ErrSampleRate = errors.New("rle: sample rate must be > 0")
)
