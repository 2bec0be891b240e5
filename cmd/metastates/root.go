package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metastates/config"
	"github.com/katalvlaran/metastates/crossval"
	"github.com/katalvlaran/metastates/fold"
	"github.com/katalvlaran/metastates/labelio"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath  string
	logLevel    string
	metricsFile string
	flags       flagValues

	cfg     config.Config
	logger  *slog.Logger
	reg     *prometheus.Registry
	metrics *crossval.Metrics
}

// flagValues are the command-line overrides of config.Config fields.
type flagValues struct {
	input      string
	output     string
	shift      int
	jobs       int
	trials     int
	maxStates  int
	states     []int
	folds      int
	sampleRate float64
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "metastates",
		Short:        "Interval encoding and HMM model selection for discrete state sequences",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.writeMetrics()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.StringVarP(&a.flags.input, "input-file", "i", "", "label file")
	pf.StringVarP(&a.flags.output, "output-file", "o", "", "output file [default: <input-file>.out]")
	pf.IntVar(&a.flags.shift, "shift", -1, "added to every label on load, subtracted on save")
	pf.IntVarP(&a.flags.jobs, "jobs", "j", 1, "concurrent trainings, 0 for one per CPU")
	pf.IntVarP(&a.flags.trials, "trials", "t", 1, "number of equal-length trials in the input")
	pf.IntVarP(&a.flags.maxStates, "max-states", "s", 2, "try 1..max-states hidden states")
	pf.IntSliceVar(&a.flags.states, "states", nil, "explicit list of state counts (overrides --max-states)")
	pf.IntVarP(&a.flags.folds, "folds", "k", 0, "cross-validation folds")
	pf.Float64Var(&a.flags.sampleRate, "sample-rate", 250, "sampling rate in Hz for interval durations")

	root.AddCommand(
		newEncodeCmd(a),
		newInferCmd(a),
		newCrossvalCmd(a),
		newQueryCmd(a),
	)
	return root
}

// setup loads the configuration, applies explicit flags over it and
// installs the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("input-file") {
		cfg.Input = a.flags.input
	}
	if f.Changed("output-file") {
		cfg.Output = a.flags.output
	}
	if f.Changed("shift") {
		cfg.Shift = a.flags.shift
	}
	if f.Changed("jobs") {
		cfg.Jobs = a.flags.jobs
	}
	if f.Changed("trials") {
		cfg.Trials = a.flags.trials
	}
	if f.Changed("max-states") {
		cfg.MaxStates = a.flags.maxStates
		cfg.States = nil
	}
	if f.Changed("states") {
		cfg.States = a.flags.states
	}
	if f.Changed("folds") {
		cfg.Folds = a.flags.folds
	}
	if f.Changed("sample-rate") {
		cfg.SampleRate = a.flags.sampleRate
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = slog.New(tint.NewHandler(a.errOut, &tint.Options{
		Level:      cfg.SlogLevel(),
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(a.errOut),
	}))
	a.reg = prometheus.NewRegistry()
	a.metrics = crossval.NewMetrics(a.reg)
	return nil
}

// isTerminal reports whether w is a terminal; only then is log output
// coloured.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) writeMetrics() error {
	if a.metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.metricsFile, a.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", slog.String("path", a.metricsFile))
	return nil
}

// workers resolves cfg.Jobs, 0 meaning one per CPU.
func (a *app) workers() int {
	if a.cfg.Jobs == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return a.cfg.Jobs
}

var errNoInput = errors.New("no input file (use -i or input: in the config)")

// loadLabels reads the input label file with cfg.Shift applied.
func (a *app) loadLabels() ([]int, error) {
	if a.cfg.Input == "" {
		return nil, errNoInput
	}
	f, err := os.Open(a.cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, err := labelio.Load(f, a.cfg.Shift)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.Input, err)
	}
	a.logger.Info("labels loaded", slog.String("path", a.cfg.Input), slog.Int("samples", len(labels)))
	return labels, nil
}

// loadTrials splits the input labels into cfg.Trials trials and returns
// the alphabet size, max(label)+1.  Labels must be non-negative.
func (a *app) loadTrials() (fold.Trials, int, error) {
	labels, err := a.loadLabels()
	if err != nil {
		return fold.Trials{}, 0, err
	}
	if low := slices.Min(labels); low < 0 {
		return fold.Trials{}, 0, fmt.Errorf("%s: label %d is negative after shift %d", a.cfg.Input, low, a.cfg.Shift)
	}
	trials, err := fold.NewTrials(labels, a.cfg.Trials)
	if err != nil {
		return fold.Trials{}, 0, fmt.Errorf("%s: %d samples into %d trials: %w", a.cfg.Input, len(labels), a.cfg.Trials, err)
	}
	a.logger.Debug("trials", slog.Int("count", trials.Count), slog.Int("length", trials.Length))
	return trials, slices.Max(labels) + 1, nil
}
