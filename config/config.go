package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metastates/hmm"
)

// MaxFileSize is the largest configuration file Load accepts (1 MiB).
const MaxFileSize = 1 << 20

var validate = validator.New()

// Config is the full command configuration.
type Config struct {
	// Input is the label file; Output defaults to Input + ".out".
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Shift is added to labels on load; its negation is added on save.
	Shift int `yaml:"shift"`

	// Trials is the number of equal-length trials the series holds.
	Trials int `yaml:"trials" validate:"gte=1"`

	// States lists the candidate state counts.  When empty, 1..MaxStates.
	States    []int `yaml:"states" validate:"omitempty,dive,gte=1"`
	MaxStates int   `yaml:"max_states" validate:"gte=1"`

	// Folds is the cross-validation fold count; 0 disables cross-validation.
	Folds int `yaml:"folds" validate:"eq=0|gte=2"`

	// Jobs bounds concurrent trainings; 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs" validate:"gte=0"`

	// SampleRate in Hz, used for interval durations.
	SampleRate float64 `yaml:"sample_rate" validate:"gt=0"`

	// Offset is added to every encoded interval boundary.
	Offset int `yaml:"offset" validate:"gte=0"`

	HMM HMM `yaml:"hmm"`
	Log Log `yaml:"log"`
}

// HMM holds the training parameters of the reference model.
type HMM struct {
	MaxIter int     `yaml:"max_iter" validate:"gte=1"`
	Tol     float64 `yaml:"tol" validate:"gte=0"`
	Seed    int64   `yaml:"seed"`
}

// Log configures the command logger.
type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Shift:      -1,
		Trials:     1,
		MaxStates:  2,
		Jobs:       1,
		SampleRate: 250,
		HMM: HMM{
			MaxIter: 100,
			Tol:     0.1,
			Seed:    42,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the YAML file at path over Default and validates the result.
// An empty path returns Default.
//
// Errors: ErrTooLarge, ErrInvalid, and open, read or YAML errors.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(data) > MaxFileSize {
		return Config{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, path, MaxFileSize)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.  Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags, wrapping failures in ErrInvalid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// StateCounts returns the candidate state counts: States if set (first
// occurrence of each value, in order), else 1..MaxStates.
func (c Config) StateCounts() []int {
	if len(c.States) > 0 {
		out := make([]int, 0, len(c.States))
		for _, k := range c.States {
			if !slices.Contains(out, k) {
				out = append(out, k)
			}
		}
		return out
	}
	out := make([]int, c.MaxStates)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// OutputPath returns Output, or Input + ".out" when Output is empty.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return c.Input + ".out"
}

// HMMOptions converts the hmm section, fixing the alphabet size.
func (c Config) HMMOptions(symbols int) hmm.Options {
	opts := hmm.DefaultOptions()
	opts.MaxIter = c.HMM.MaxIter
	opts.Tol = c.HMM.Tol
	opts.Seed = c.HMM.Seed
	opts.Symbols = symbols
	return opts
}

// SlogLevel maps Log.Level to a slog.Level; unknown values map to Info.
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
