package config

import "errors"

var (
	// ErrTooLarge indicates a configuration file above MaxFileSize.
	ErrTooLarge = errors.New("config: file too large")

	// ErrInvalid indicates a configuration that failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)
