package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metastates/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metastates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, -1, cfg.Shift)
	assert.Equal(t, 1, cfg.Trials)
	assert.Equal(t, []int{1, 2}, cfg.StateCounts())
	assert.Equal(t, 0, cfg.Folds)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Equal(t, 250.0, cfg.SampleRate)
	assert.Equal(t, config.HMM{MaxIter: 100, Tol: 0.1, Seed: 42}, cfg.HMM)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overlay(t *testing.T) {
	path := writeFile(t, `
input: data/a.txt
trials: 20
states: [2, 4]
folds: 5
jobs: 0
hmm:
  tol: 0.01
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/a.txt", cfg.Input)
	assert.Equal(t, "data/a.txt.out", cfg.OutputPath())
	assert.Equal(t, 20, cfg.Trials)
	assert.Equal(t, []int{2, 4}, cfg.StateCounts())
	assert.Equal(t, 5, cfg.Folds)
	assert.Equal(t, 0, cfg.Jobs)
	assert.Equal(t, 100, cfg.HMM.MaxIter, "unset keys keep defaults")
	assert.Equal(t, 0.01, cfg.HMM.Tol)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	opts := cfg.HMMOptions(3)
	assert.Equal(t, 3, opts.Symbols)
	assert.Equal(t, 0.01, opts.Tol)
	assert.Equal(t, int64(42), opts.Seed)
	assert.Equal(t, 1e-10, opts.Floor)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"trials":      "trials: 0",
		"folds one":   "folds: 1",
		"folds neg":   "folds: -2",
		"jobs":        "jobs: -1",
		"states":      "states: [1, 0]",
		"max states":  "max_states: 0",
		"sample rate": "sample_rate: 0",
		"level":       "log: {level: loud}",
		"max iter":    "hmm: {max_iter: 0}",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("nfold: 3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nfold")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	big := writeFile(t, "input: x\n# "+strings.Repeat("a", config.MaxFileSize)+"\n")
	_, err = config.Load(big)
	assert.ErrorIs(t, err, config.ErrTooLarge)

	bad := writeFile(t, "trials: 0\n")
	_, err = config.Load(bad)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestStateCounts_Dedupes(t *testing.T) {
	cfg := config.Default()
	cfg.States = []int{3, 1, 3, 2}
	assert.Equal(t, []int{3, 1, 2}, cfg.StateCounts())

	cfg.States, cfg.MaxStates = nil, 4
	assert.Equal(t, []int{1, 2, 3, 4}, cfg.StateCounts())
}

func TestOutputPath_Explicit(t *testing.T) {
	cfg := config.Default()
	cfg.Input, cfg.Output = "in.txt", "out.txt"
	assert.Equal(t, "out.txt", cfg.OutputPath())
}
