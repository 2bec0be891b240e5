package hmm

import "math"

// workspace holds the scaled forward/backward variables for the longest
// sequence so they are allocated once per Fit or LogLikelihood call.
type workspace struct {
	alpha [][]float64
	beta  [][]float64
	scale []float64
}

func newWorkspace(k, n int) *workspace {
	w := &workspace{
		alpha: make([][]float64, n),
		beta:  make([][]float64, n),
		scale: make([]float64, n),
	}
	for t := 0; t < n; t++ {
		w.alpha[t] = make([]float64, k)
		w.beta[t] = make([]float64, k)
	}
	return w
}

// forward fills w.alpha (each row normalized to 1) and w.scale, and returns
// log P(obs) = Σ log scale[t].
func (m *Model) forward(obs []int, w *workspace) float64 {
	k := m.States()
	var ll float64
	for t, o := range obs {
		row := w.alpha[t]
		for j := 0; j < k; j++ {
			var p float64
			if t == 0 {
				p = m.Start[j]
			} else {
				prev := w.alpha[t-1]
				for i := 0; i < k; i++ {
					p += prev[i] * m.Trans[i][j]
				}
			}
			row[j] = p * m.Emit[j][o]
		}

		var c float64
		for _, v := range row {
			c += v
		}
		w.scale[t] = c
		if c == 0 {
			return math.Inf(-1)
		}
		for j := range row {
			row[j] /= c
		}
		ll += math.Log(c)
	}
	return ll
}

// backward fills w.beta with the same scaling as forward, so that
// alpha[t][i]·beta[t][i] is the posterior of state i at t.
func (m *Model) backward(obs []int, w *workspace) {
	k := m.States()
	n := len(obs)
	for i := 0; i < k; i++ {
		w.beta[n-1][i] = 1
	}
	for t := n - 2; t >= 0; t-- {
		o := obs[t+1]
		inv := 1 / w.scale[t+1]
		for i := 0; i < k; i++ {
			var s float64
			for j := 0; j < k; j++ {
				s += m.Trans[i][j] * m.Emit[j][o] * w.beta[t+1][j]
			}
			w.beta[t][i] = s * inv
		}
	}
}
