package crossval

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// Entry is the finalized score of one hyperparameter.
//
// Fields:
//   - K       — the hyperparameter.
//   - Mean    — average held-out score over successful folds; NaN when
//     Defined is false.
//   - Folds   — number of successful folds.
//   - Failed  — number of failed folds.
//   - Defined — Folds > 0.
type Entry struct {
	K       int
	Mean    float64
	Folds   int
	Failed  int
	Defined bool
}

// ScoreTable maps each hyperparameter to its averaged held-out score.
// A ScoreTable is only handed out once finalized and is read-only.
type ScoreTable struct {
	entries  []Entry
	byK      map[int]int
	failures []*TaskError
}

// Hyperparameters returns the values of k in run order.
func (t *ScoreTable) Hyperparameters() []int {
	out := make([]int, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.K
	}
	return out
}

// Entries returns a copy of every entry in run order.
func (t *ScoreTable) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Entry returns the entry for k.
func (t *ScoreTable) Entry(k int) (Entry, bool) {
	i, ok := t.byK[k]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Score returns the average held-out score for k.
//
// Errors:
//   - ErrUnknownHyperparameter — k was not part of the run.
//   - ErrUndefinedScore        — every fold for k failed.
func (t *ScoreTable) Score(k int) (float64, error) {
	e, ok := t.Entry(k)
	if !ok {
		return 0, fmt.Errorf("k=%d: %w", k, ErrUnknownHyperparameter)
	}
	if !e.Defined {
		return math.NaN(), fmt.Errorf("k=%d: %w", k, ErrUndefinedScore)
	}
	return e.Mean, nil
}

// Folds returns the number of folds that reported successfully for k.
func (t *ScoreTable) Folds(k int) int {
	e, _ := t.Entry(k)
	return e.Folds
}

// Failures returns every task failure ordered by (k, fold).
func (t *ScoreTable) Failures() []*TaskError {
	return slices.Clone(t.failures)
}

// Best returns the hyperparameter with the highest defined average score.
// Ties go to the smaller k.
//
// Errors:
//   - ErrUndefinedScore — no hyperparameter has a defined score.
func (t *ScoreTable) Best() (int, float64, error) {
	best := -1
	for i, e := range t.entries {
		if !e.Defined {
			continue
		}
		if best < 0 || e.Mean > t.entries[best].Mean ||
			(e.Mean == t.entries[best].Mean && e.K < t.entries[best].K) {
			best = i
		}
	}
	if best < 0 {
		return 0, math.NaN(), ErrUndefinedScore
	}
	return t.entries[best].K, t.entries[best].Mean, nil
}

// aggregator accumulates results as they arrive.  It is owned by a single
// goroutine and never shared.
type aggregator struct {
	order    []int
	scores   map[int]map[int]float64 // k → fold → score
	failed   map[int]int
	failures []*TaskError
}

func newAggregator(ks []int) *aggregator {
	a := &aggregator{
		order:  ks,
		scores: make(map[int]map[int]float64, len(ks)),
		failed: make(map[int]int, len(ks)),
	}
	for _, k := range ks {
		a.scores[k] = make(map[int]float64)
	}
	return a
}

// record folds one result into the running state.  Results for a k that
// is not part of the run are ignored.
func (a *aggregator) record(res Result) {
	folds, ok := a.scores[res.ID.K]
	if !ok {
		return
	}
	if res.Err != nil {
		a.failed[res.ID.K]++
		var te *TaskError
		if !errors.As(res.Err, &te) {
			te = &TaskError{ID: res.ID, Stage: StageFit, Err: res.Err}
		}
		a.failures = append(a.failures, te)
		return
	}
	folds[res.ID.Fold] = res.Score
}

// finalize divides each sum by its own fold count.  Scores are summed in
// fold order so the result does not depend on arrival order.
func (a *aggregator) finalize() *ScoreTable {
	t := &ScoreTable{
		entries: make([]Entry, len(a.order)),
		byK:     make(map[int]int, len(a.order)),
	}
	for i, k := range a.order {
		folds := a.scores[k]
		idx := make([]int, 0, len(folds))
		for f := range folds {
			idx = append(idx, f)
		}
		slices.Sort(idx)

		var sum float64
		for _, f := range idx {
			sum += folds[f]
		}

		e := Entry{K: k, Folds: len(idx), Failed: a.failed[k], Mean: math.NaN()}
		if e.Folds > 0 {
			e.Mean = sum / float64(e.Folds)
			e.Defined = true
		}
		t.entries[i] = e
		t.byK[k] = i
	}

	t.failures = slices.Clone(a.failures)
	slices.SortFunc(t.failures, func(x, y *TaskError) int {
		if c := cmp.Compare(x.ID.K, y.ID.K); c != 0 {
			return c
		}
		return cmp.Compare(x.ID.Fold, y.ID.Fold)
	})

	return t
}

// Aggregate builds a finalized table from a complete slice of results, in
// any order, exactly as Run does incrementally.
func Aggregate(ks []int, results []Result) *ScoreTable {
	a := newAggregator(Config{Hyperparameters: ks}.hyperparameters())
	for _, res := range results {
		a.record(res)
	}
	return a.finalize()
}
