package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// stochTol is the tolerance on row sums accepted by New.
const stochTol = 1e-9

// New builds a Model from explicit parameters after checking their shapes
// and that every row is a probability distribution.
//
// Errors:
//   - ErrStateCount    — len(start) == 0.
//   - ErrNotStochastic — shape mismatch, negative entry, or a row sum ≠ 1.
func New(start []float64, trans, emit [][]float64) (*Model, error) {
	k := len(start)
	if k == 0 {
		return nil, ErrStateCount
	}
	if len(trans) != k || len(emit) != k || len(emit[0]) == 0 {
		return nil, ErrNotStochastic
	}
	if !isDistribution(start) {
		return nil, ErrNotStochastic
	}
	for i := 0; i < k; i++ {
		if len(trans[i]) != k || len(emit[i]) != len(emit[0]) {
			return nil, ErrNotStochastic
		}
		if !isDistribution(trans[i]) || !isDistribution(emit[i]) {
			return nil, ErrNotStochastic
		}
	}

	return &Model{
		Start: append([]float64(nil), start...),
		Trans: cloneMatrix(trans),
		Emit:  cloneMatrix(emit),
	}, nil
}

func isDistribution(p []float64) bool {
	for _, v := range p {
		if v < 0 || math.IsNaN(v) {
			return false
		}
	}
	return math.Abs(floats.Sum(p)-1) <= stochTol
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}
	return out
}

// LogLikelihood returns log P(data | m), summed over the sequences given by
// lengths (nil lengths means one sequence).
//
// Errors: ErrEmptySequence, ErrLengthMismatch, ErrSymbolRange.
func (m *Model) LogLikelihood(data, lengths []int) (float64, error) {
	seqs, err := sequences(data, lengths, m.Symbols())
	if err != nil {
		return 0, err
	}

	var ll float64
	w := newWorkspace(m.States(), maxLen(seqs))
	for _, obs := range seqs {
		ll += m.forward(obs, w)
	}
	return ll, nil
}

// Predict returns the most likely state path (Viterbi) for each sequence,
// concatenated in input order.
//
// Errors: ErrEmptySequence, ErrLengthMismatch, ErrSymbolRange.
func (m *Model) Predict(data, lengths []int) ([]int, error) {
	seqs, err := sequences(data, lengths, m.Symbols())
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(data))
	for _, obs := range seqs {
		out = append(out, m.viterbi(obs)...)
	}
	return out, nil
}

// viterbi decodes one sequence in log space.
func (m *Model) viterbi(obs []int) []int {
	k, n := m.States(), len(obs)
	logA := logMatrix(m.Trans)
	logB := logMatrix(m.Emit)

	delta := make([]float64, k)
	next := make([]float64, k)
	back := make([][]int, n)
	for i := 0; i < k; i++ {
		delta[i] = math.Log(m.Start[i]) + logB[i][obs[0]]
	}

	cand := make([]float64, k)
	for t := 1; t < n; t++ {
		back[t] = make([]int, k)
		for j := 0; j < k; j++ {
			for i := 0; i < k; i++ {
				cand[i] = delta[i] + logA[i][j]
			}
			best := floats.MaxIdx(cand)
			back[t][j] = best
			next[j] = cand[best] + logB[j][obs[t]]
		}
		delta, next = next, delta
	}

	path := make([]int, n)
	path[n-1] = floats.MaxIdx(delta)
	for t := n - 1; t > 0; t-- {
		path[t-1] = back[t][path[t]]
	}
	return path
}

func logMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = math.Log(v)
		}
	}
	return out
}
