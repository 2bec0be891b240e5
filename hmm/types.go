package hmm

// Options configures Fit.
//
// Fields:
//   - MaxIter — maximum number of EM iterations.
//   - Tol     — stop once the training log-likelihood gains less than Tol.
//   - Seed    — seed of the random initial parameters.
//   - Symbols — alphabet size; 0 means max(observation)+1 of the training data.
//   - Floor   — lower bound added to every probability after each M-step so
//     unseen transitions or symbols keep a finite log-likelihood.
type Options struct {
	MaxIter int
	Tol     float64
	Seed    int64
	Symbols int
	Floor   float64
}

// DefaultOptions returns MaxIter=100, Tol=0.1, Seed=42, Floor=1e-10.
func DefaultOptions() Options {
	return Options{
		MaxIter: 100,
		Tol:     1e-1,
		Seed:    42,
		Floor:   1e-10,
	}
}

// Model is a trained discrete HMM.
//
// Fields:
//   - Start      — initial state distribution, length K.
//   - Trans      — K×K transition matrix, rows sum to 1.
//   - Emit       — K×Symbols emission matrix, rows sum to 1.
//   - LogLik     — training log-likelihood after the last iteration.
//   - Iterations — number of EM iterations run.
//   - Converged  — whether Tol was reached before MaxIter.
type Model struct {
	Start      []float64
	Trans      [][]float64
	Emit       [][]float64
	LogLik     float64
	Iterations int
	Converged  bool
}

// States returns K.
func (m *Model) States() int { return len(m.Start) }

// Symbols returns the alphabet size.
func (m *Model) Symbols() int {
	if len(m.Emit) == 0 {
		return 0
	}
	return len(m.Emit[0])
}
