package hmm_test

import (
	"context"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metastates/crossval"
	"github.com/katalvlaran/metastates/fold"
	"github.com/katalvlaran/metastates/hmm"
)

var _ crossval.Trainer[*hmm.Model] = hmm.Trainer{}

// sticky returns a 2-state model with self-transition 0.9 whose states
// prefer symbol 0 and symbol 1 respectively.
func sticky(t *testing.T) *hmm.Model {
	t.Helper()
	m, err := hmm.New(
		[]float64{0.5, 0.5},
		[][]float64{{0.9, 0.1}, {0.1, 0.9}},
		[][]float64{{0.9, 0.1}, {0.1, 0.9}},
	)
	require.NoError(t, err)
	return m
}

// blocks emits alternating regimes of length run: the first regime emits
// symbol 0 and the second symbol 1, each flipped with probability 0.1.
func blocks(n, run int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = (i / run) % 2
		if rng.Float64() < 0.1 {
			out[i] = 1 - out[i]
		}
	}
	return out
}

func assertStochastic(t *testing.T, m *hmm.Model) {
	t.Helper()
	sum := func(p []float64) float64 {
		var s float64
		for _, v := range p {
			s += v
		}
		return s
	}
	assert.InDelta(t, 1.0, sum(m.Start), 1e-9)
	for i := 0; i < m.States(); i++ {
		assert.InDelta(t, 1.0, sum(m.Trans[i]), 1e-9, "trans row %d", i)
		assert.InDelta(t, 1.0, sum(m.Emit[i]), 1e-9, "emit row %d", i)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := hmm.New(nil, nil, nil)
	assert.ErrorIs(t, err, hmm.ErrStateCount)

	cases := []struct {
		name  string
		start []float64
		trans [][]float64
		emit  [][]float64
	}{
		{"start sum", []float64{0.6, 0.6}, [][]float64{{1, 0}, {0, 1}}, [][]float64{{1}, {1}}},
		{"negative", []float64{1.5, -0.5}, [][]float64{{1, 0}, {0, 1}}, [][]float64{{1}, {1}}},
		{"trans shape", []float64{1, 0}, [][]float64{{1, 0}}, [][]float64{{1}, {1}}},
		{"trans row", []float64{1, 0}, [][]float64{{1, 0}, {0.5, 0.6}}, [][]float64{{1}, {1}}},
		{"emit ragged", []float64{1, 0}, [][]float64{{1, 0}, {0, 1}}, [][]float64{{1}, {0.5, 0.5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hmm.New(tc.start, tc.trans, tc.emit)
			assert.ErrorIs(t, err, hmm.ErrNotStochastic)
		})
	}
}

func TestNew_CopiesParameters(t *testing.T) {
	start := []float64{1, 0}
	m, err := hmm.New(start, [][]float64{{1, 0}, {0, 1}}, [][]float64{{1}, {1}})
	require.NoError(t, err)
	start[0] = 42
	assert.Equal(t, 1.0, m.Start[0])
	assert.Equal(t, 2, m.States())
	assert.Equal(t, 1, m.Symbols())
}

func TestLogLikelihood_SingleState(t *testing.T) {
	m, err := hmm.New([]float64{1}, [][]float64{{1}}, [][]float64{{0.5, 0.5}})
	require.NoError(t, err)

	ll, err := m.LogLikelihood([]int{0, 1, 1, 0}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Log(0.5), ll, 1e-12)
}

func TestLogLikelihood_SequencesAreIndependent(t *testing.T) {
	m := sticky(t)
	a, b := []int{0, 0, 1}, []int{1, 1}

	la, err := m.LogLikelihood(a, nil)
	require.NoError(t, err)
	lb, err := m.LogLikelihood(b, nil)
	require.NoError(t, err)
	both, err := m.LogLikelihood(append(append([]int{}, a...), b...), []int{3, 2})
	require.NoError(t, err)

	assert.InDelta(t, la+lb, both, 1e-12)
}

func TestLogLikelihood_Errors(t *testing.T) {
	m := sticky(t)

	_, err := m.LogLikelihood(nil, nil)
	assert.ErrorIs(t, err, hmm.ErrEmptySequence)

	_, err = m.LogLikelihood([]int{0, 2}, nil)
	assert.ErrorIs(t, err, hmm.ErrSymbolRange)

	_, err = m.LogLikelihood([]int{0, -1}, nil)
	assert.ErrorIs(t, err, hmm.ErrSymbolRange)

	_, err = m.LogLikelihood([]int{0, 1, 1}, []int{2, 2})
	assert.ErrorIs(t, err, hmm.ErrLengthMismatch)

	_, err = m.LogLikelihood([]int{0, 1, 1}, []int{1, 1})
	assert.ErrorIs(t, err, hmm.ErrLengthMismatch)

	_, err = m.LogLikelihood([]int{0, 1}, []int{0, 2})
	assert.ErrorIs(t, err, hmm.ErrLengthMismatch)
}

func TestPredict_Viterbi(t *testing.T) {
	m := sticky(t)

	path, err := m.Predict([]int{0, 0, 0, 1, 1, 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, path)

	// A lone outlier is absorbed by the sticky transition.
	path, err = m.Predict([]int{0, 0, 1, 0, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, path)

	path, err = m.Predict([]int{1, 1, 0, 0}, []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 0}, path)
}

func TestFit_Stochastic(t *testing.T) {
	data := blocks(400, 40, 1)
	m, err := hmm.Fit(context.Background(), data, nil, 3, hmm.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, m.States())
	assert.Equal(t, 2, m.Symbols())
	assert.LessOrEqual(t, m.Iterations, 100)
	assert.False(t, math.IsInf(m.LogLik, 0) || math.IsNaN(m.LogLik))
	assertStochastic(t, m)

	ll, err := m.LogLikelihood(data, nil)
	require.NoError(t, err)
	assert.InDelta(t, ll, m.LogLik, 1e-9)
}

func TestFit_RecoversRegimes(t *testing.T) {
	data := blocks(600, 50, 2)
	opts := hmm.DefaultOptions()

	one, err := hmm.Fit(context.Background(), data, nil, 1, opts)
	require.NoError(t, err)
	two, err := hmm.Fit(context.Background(), data, nil, 2, opts)
	require.NoError(t, err)
	assert.Greater(t, two.LogLik, one.LogLik)

	// The decoded path follows the regimes up to a relabeling of states.
	path, err := two.Predict(data, nil)
	require.NoError(t, err)
	assert.Greater(t, regimeAccuracy(path, 50), 0.9)

	// The richer model also scores better on unseen data.
	held := blocks(200, 50, 3)
	l1, err := one.LogLikelihood(held, nil)
	require.NoError(t, err)
	l2, err := two.LogLikelihood(held, nil)
	require.NoError(t, err)
	assert.Greater(t, l2, l1)
}

// regimeAccuracy is the share of a 2-state path matching the alternating
// regimes of length run, under the better of the two state labelings.
func regimeAccuracy(path []int, run int) float64 {
	agree := 0
	for i, s := range path {
		if s == (i/run)%2 {
			agree++
		}
	}
	return float64(max(agree, len(path)-agree)) / float64(len(path))
}

// TestFit_DefaultOptionsAcrossSeeds keeps EM from stopping at the
// symmetric starting point whatever the seed.
func TestFit_DefaultOptionsAcrossSeeds(t *testing.T) {
	data := blocks(600, 50, 2)
	one, err := hmm.Fit(context.Background(), data, nil, 1, hmm.DefaultOptions())
	require.NoError(t, err)

	for _, seed := range []int64{42, 0, 1, 2, 3, 7, 99} {
		opts := hmm.DefaultOptions()
		opts.Seed = seed

		m, err := hmm.Fit(context.Background(), data, nil, 2, opts)
		require.NoError(t, err, "seed %d", seed)
		assert.Greater(t, m.LogLik, one.LogLik+50, "seed %d", seed)

		path, err := m.Predict(data, nil)
		require.NoError(t, err)
		assert.Greater(t, regimeAccuracy(path, 50), 0.9, "seed %d", seed)
	}
}

// TestTrainer_CrossvalSelectsTwoStates runs the default trainer through
// crossval.Run and expects the two-regime structure to win.
func TestTrainer_CrossvalSelectsTwoStates(t *testing.T) {
	trials, err := fold.NewTrials(blocks(600, 50, 2), 12)
	require.NoError(t, err)

	tr := hmm.Trainer{Options: hmm.DefaultOptions()}
	tr.Options.Symbols = 2
	table, err := crossval.Run(context.Background(), trials, tr,
		crossval.Config{Hyperparameters: []int{1, 2}, Folds: 4, Workers: 2},
		crossval.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	require.Empty(t, table.Failures())

	best, _, err := table.Best()
	require.NoError(t, err)
	assert.Equal(t, 2, best)
}

func TestFit_Deterministic(t *testing.T) {
	data := blocks(200, 20, 4)
	a, err := hmm.Fit(context.Background(), data, []int{100, 100}, 2, hmm.DefaultOptions())
	require.NoError(t, err)
	b, err := hmm.Fit(context.Background(), data, []int{100, 100}, 2, hmm.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFit_Errors(t *testing.T) {
	ctx := context.Background()
	opts := hmm.DefaultOptions()

	_, err := hmm.Fit(ctx, []int{0, 1}, nil, 0, opts)
	assert.ErrorIs(t, err, hmm.ErrStateCount)

	_, err = hmm.Fit(ctx, nil, nil, 2, opts)
	assert.ErrorIs(t, err, hmm.ErrEmptySequence)

	_, err = hmm.Fit(ctx, []int{0, 1, 0}, []int{2}, 2, opts)
	assert.ErrorIs(t, err, hmm.ErrLengthMismatch)

	opts.Symbols = 2
	_, err = hmm.Fit(ctx, []int{0, 1, 2}, nil, 2, opts)
	assert.ErrorIs(t, err, hmm.ErrSymbolRange)
}

func TestFit_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := hmm.Fit(ctx, []int{0, 1, 0}, nil, 2, hmm.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrainer_Score(t *testing.T) {
	tr := hmm.Trainer{Options: hmm.DefaultOptions()}
	tr.Options.Symbols = 4
	ctx := context.Background()

	m, err := tr.Fit(ctx, blocks(200, 50, 5), nil, 2)
	require.NoError(t, err)

	// Symbol 3 never occurs in training yet scores finitely.
	s, err := tr.Score(ctx, m, []int{3, 3, 3}, nil)
	require.NoError(t, err)
	assert.False(t, math.IsInf(s, 0) || math.IsNaN(s))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = tr.Score(canceled, m, []int{0}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
