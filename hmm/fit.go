package hmm

import (
	"context"
	"math"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Fit trains a k-state model on data, the concatenation of sequences of the
// given lengths (nil lengths means one sequence), with Baum–Welch.
//
// Fit checks ctx between iterations and returns ctx.Err() if it is done.
//
// Errors: ErrStateCount, ErrEmptySequence, ErrLengthMismatch, ErrSymbolRange.
func Fit(ctx context.Context, data, lengths []int, k int, opts Options) (*Model, error) {
	if k <= 0 {
		return nil, ErrStateCount
	}
	symbols := opts.Symbols
	if symbols == 0 && len(data) > 0 {
		symbols = slices.Max(data) + 1
	}
	seqs, err := sequences(data, lengths, symbols)
	if err != nil {
		return nil, err
	}

	m := initialModel(k, symbols, data, rand.New(rand.NewSource(opts.Seed)))
	w := newWorkspace(k, maxLen(seqs))
	acc := newAccumulator(k, symbols)

	prev := math.Inf(-1)
	for it := 0; it < max(opts.MaxIter, 1); it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		acc.reset()
		var ll float64
		for _, obs := range seqs {
			ll += m.forward(obs, w)
			m.backward(obs, w)
			acc.add(m, obs, w)
		}
		acc.update(m, opts.Floor)

		m.LogLik = ll
		m.Iterations = it + 1
		if ll-prev < opts.Tol {
			m.Converged = true
			break
		}
		prev = ll
	}

	// Report the likelihood of the parameters actually returned.
	var ll float64
	for _, obs := range seqs {
		ll += m.forward(obs, w)
	}
	m.LogLik = ll

	return m, nil
}

// Initial parameters.
const (
	initStay   = 0.9 // self-transition probability of every state
	initPeak   = 0.5 // weight of a state's own symbol against the empirical frequencies
	initJitter = 0.2 // relative jitter applied to every initial probability
)

// initialModel builds the starting point of EM.  Transitions are sticky and
// each state's emissions mix the empirical symbol frequencies of data with
// a peak on one observed symbol, states taking the observed symbols in a
// seed-dependent order.
func initialModel(k, symbols int, data []int, rng *rand.Rand) *Model {
	freq := make([]float64, symbols)
	for _, o := range data {
		freq[o]++
	}
	floats.Scale(1/float64(len(data)), freq)

	var seen []int
	for _, j := range rng.Perm(symbols) {
		if freq[j] > 0 {
			seen = append(seen, j)
		}
	}

	m := &Model{
		Start: make([]float64, k),
		Trans: make([][]float64, k),
		Emit:  make([][]float64, k),
	}
	for i := 0; i < k; i++ {
		m.Start[i] = 1 / float64(k)

		m.Trans[i] = make([]float64, k)
		for j := range m.Trans[i] {
			switch {
			case k == 1:
				m.Trans[i][j] = 1
			case i == j:
				m.Trans[i][j] = initStay
			default:
				m.Trans[i][j] = (1 - initStay) / float64(k-1)
			}
		}
		jitter(m.Trans[i], rng)

		m.Emit[i] = make([]float64, symbols)
		floats.AddScaled(m.Emit[i], 1-initPeak, freq)
		m.Emit[i][seen[i%len(seen)]] += initPeak
		jitter(m.Emit[i], rng)
	}
	return m
}

// jitter scales every entry of row by a factor in [1-initJitter/2,
// 1+initJitter/2) and renormalizes it.
func jitter(row []float64, rng *rand.Rand) {
	for j := range row {
		row[j] *= 1 - initJitter/2 + initJitter*rng.Float64()
	}
	floats.Scale(1/floats.Sum(row), row)
}

// accumulator holds the expected counts of one E-step.
type accumulator struct {
	start []float64
	trans [][]float64
	emit  [][]float64
}

func newAccumulator(k, symbols int) *accumulator {
	a := &accumulator{
		start: make([]float64, k),
		trans: make([][]float64, k),
		emit:  make([][]float64, k),
	}
	for i := 0; i < k; i++ {
		a.trans[i] = make([]float64, k)
		a.emit[i] = make([]float64, symbols)
	}
	return a
}

func (a *accumulator) reset() {
	for i := range a.start {
		a.start[i] = 0
		clear(a.trans[i])
		clear(a.emit[i])
	}
}

// add accumulates gamma and xi of one sequence from the scaled forward and
// backward variables in w.
func (a *accumulator) add(m *Model, obs []int, w *workspace) {
	k := m.States()
	for t := range obs {
		for i := 0; i < k; i++ {
			g := w.alpha[t][i] * w.beta[t][i]
			if t == 0 {
				a.start[i] += g
			}
			a.emit[i][obs[t]] += g
		}
		if t+1 == len(obs) {
			continue
		}
		o := obs[t+1]
		inv := 1 / w.scale[t+1]
		for i := 0; i < k; i++ {
			ai := w.alpha[t][i] * inv
			for j := 0; j < k; j++ {
				a.trans[i][j] += ai * m.Trans[i][j] * m.Emit[j][o] * w.beta[t+1][j]
			}
		}
	}
}

// update is the M-step: normalize expected counts into probabilities,
// flooring every entry.
func (a *accumulator) update(m *Model, floor float64) {
	normalize(a.start, floor)
	copy(m.Start, a.start)
	for i := range a.trans {
		normalize(a.trans[i], floor)
		copy(m.Trans[i], a.trans[i])
		normalize(a.emit[i], floor)
		copy(m.Emit[i], a.emit[i])
	}
}

func normalize(row []float64, floor float64) {
	floats.AddConst(floor, row)
	s := floats.Sum(row)
	if s <= 0 {
		for j := range row {
			row[j] = 1 / float64(len(row))
		}
		return
	}
	floats.Scale(1/s, row)
}
