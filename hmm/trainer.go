package hmm

import "context"

// Trainer fits and scores Models with fixed Options.  It satisfies
// crossval.Trainer[*Model] and is safe for concurrent use: every Fit
// builds its own model and workspace.
type Trainer struct {
	Options Options
}

// Fit trains a fresh k-state model.
func (t Trainer) Fit(ctx context.Context, data, lengths []int, k int) (*Model, error) {
	return Fit(ctx, data, lengths, k, t.Options)
}

// Score returns the held-out log-likelihood of data under m.
func (t Trainer) Score(ctx context.Context, m *Model, data, lengths []int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.LogLikelihood(data, lengths)
}
