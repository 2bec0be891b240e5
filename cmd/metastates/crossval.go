package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metastates/crossval"
	"github.com/katalvlaran/metastates/hmm"
)

var errNoFolds = errors.New("cross-validation needs --folds >= 2")

func newCrossvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "crossval",
		Short: "Score every state count by k-fold cross-validation over trials",
		Long: "Split the input into --trials trials, hold out each fold of " +
			"trials in turn, fit an HMM on the rest and average the held-out " +
			"log-likelihood per state count. Prints the table and the best count.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.crossval(cmd.Context())
		},
	}
}

func (a *app) crossval(ctx context.Context) error {
	if a.cfg.Folds == 0 {
		return errNoFolds
	}
	trials, symbols, err := a.loadTrials()
	if err != nil {
		return err
	}

	trainer := hmm.Trainer{Options: a.cfg.HMMOptions(symbols)}
	cfg := crossval.Config{
		Hyperparameters: a.cfg.StateCounts(),
		Folds:           a.cfg.Folds,
		Workers:         a.workers(),
	}
	table, err := crossval.Run(ctx, trials, trainer, cfg,
		crossval.WithLogger(a.logger),
		crossval.WithMetrics(a.metrics),
		crossval.WithProgress(func(r crossval.Result) {
			a.logger.Debug("fold scored", slog.String("task", r.ID.String()), slog.Float64("score", r.Score),
				slog.Duration("elapsed", r.Elapsed))
		}))
	if err != nil {
		return err
	}

	return printTable(a, table)
}

func printTable(a *app, table *crossval.ScoreTable) error {
	fmt.Fprintln(a.out, "k\tmean\tfolds\tfailed")
	for _, e := range table.Entries() {
		fmt.Fprintf(a.out, "%d\t%.4f\t%d\t%d\n", e.K, e.Mean, e.Folds, e.Failed)
	}
	for _, te := range table.Failures() {
		fmt.Fprintf(a.out, "failure\t%s\n", te)
	}

	k, score, err := table.Best()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "best\t%d\t%.4f\n", k, score)
	return nil
}
