package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/metastates/fold"
	"github.com/katalvlaran/metastates/hmm"
	"github.com/katalvlaran/metastates/labelio"
	"github.com/katalvlaran/metastates/rle"
)

func newInferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "infer",
		Short: "Fit an HMM per state count and save its Viterbi path",
		Long: "Fit one HMM per state count on all trials (in parallel, bounded " +
			"by --jobs), save the Viterbi path to the output file (suffixed " +
			".k<n> when several counts are tried) and print its intervals.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.infer(cmd.Context())
		},
	}
}

type inference struct {
	k     int
	model *hmm.Model
	path  []int
}

func (a *app) infer(ctx context.Context) error {
	trials, symbols, err := a.loadTrials()
	if err != nil {
		return err
	}
	ks := a.cfg.StateCounts()
	opts := a.cfg.HMMOptions(symbols)

	results, err := fitAll(ctx, trials, ks, opts, a.workers(), a.logger)
	if err != nil {
		return err
	}

	for _, r := range results {
		path := a.cfg.OutputPath()
		if len(ks) > 1 {
			path = fmt.Sprintf("%s.k%d", path, r.k)
		}
		if err := savePath(path, r.path, -a.cfg.Shift); err != nil {
			return err
		}

		ivs, err := rle.Encode(r.path, rle.WithOffset(a.cfg.Offset))
		if err != nil {
			return err
		}
		segs, err := rle.Annotate(ivs, a.cfg.SampleRate)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "# k=%d loglik=%.4f iterations=%d converged=%t output=%s\n",
			r.k, r.model.LogLik, r.model.Iterations, r.model.Converged, path)
		if err := labelio.WriteSegments(a.out, segs, -a.cfg.Shift); err != nil {
			return err
		}
	}
	return nil
}

// fitAll fits one model per state count, at most workers at a time, and
// returns the inferences in ks order.  The first failure cancels the rest.
func fitAll(ctx context.Context, trials fold.Trials, ks []int, opts hmm.Options, workers int, log *slog.Logger) ([]inference, error) {
	out := make([]inference, len(ks))
	lengths := trials.Lengths(trials.Count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, k := range ks {
		g.Go(func() error {
			start := time.Now()
			m, err := hmm.Fit(gctx, trials.Series, lengths, k, opts)
			if err != nil {
				return fmt.Errorf("fit k=%d: %w", k, err)
			}
			path, err := m.Predict(trials.Series, lengths)
			if err != nil {
				return fmt.Errorf("predict k=%d: %w", k, err)
			}
			log.Info("model fitted",
				slog.Int("k", k),
				slog.Float64("loglik", m.LogLik),
				slog.Int("iterations", m.Iterations),
				slog.Duration("elapsed", time.Since(start)))
			out[i] = inference{k: k, model: m, path: path}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func savePath(path string, labels []int, shift int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := labelio.Save(f, labels, shift); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
