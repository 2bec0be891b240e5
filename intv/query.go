package intv

import (
	"cmp"
	"slices"
	"sort"
)

// NotFound is returned by explicit-mode queries for timestamps that lie in
// no interval.  It is never a valid index.
const NotFound = -1

// searchRight returns the number of elements of sorted a that are ≤ t,
// i.e. the right insertion index of t.
func searchRight[T cmp.Ordered](a []T, t T) int {
	return sort.Search(len(a), func(i int) bool { return a[i] > t })
}

// IndexCovering returns the index of the covering interval that contains t:
// 0 for t < bounds[0], i for bounds[i-1] ≤ t < bounds[i], len(bounds) for
// t ≥ bounds[len-1].  bounds must be sorted ascending (not re-checked).
//
// Complexity: O(log M).
func IndexCovering[T cmp.Ordered](bounds []T, t T) int {
	return searchRight(bounds, t)
}

// QueryCovering applies IndexCovering to every event.
//
// Errors:
//   - ErrUnsorted — bounds not sorted ascending.
//
// Complexity: O(M + E·log M).
func QueryCovering[T cmp.Ordered](bounds, events []T) ([]int, error) {
	if !slices.IsSorted(bounds) {
		return nil, ErrUnsorted
	}

	out := make([]int, len(events))
	for i, e := range events {
		out[i] = IndexCovering(bounds, e)
	}

	return out, nil
}

// IndexExplicit returns i such that starts[i] ≤ t < stops[i], or NotFound.
//
// With α the right insertion index of t into starts and β the one into
// stops, t is enclosed exactly when α−β == 1, and the interval is α−1.
// starts/stops must satisfy the QueryExplicit preconditions (not re-checked).
//
// Complexity: O(log M).
func IndexExplicit[T cmp.Ordered](starts, stops []T, t T) int {
	alpha := searchRight(starts, t)
	beta := searchRight(stops, t)
	if alpha-beta == 1 {
		return alpha - 1
	}
	return NotFound
}

// QueryExplicit applies IndexExplicit to every event after validating the
// interval lists.
//
// Errors:
//   - ErrLengthMismatch — len(starts) != len(stops).
//   - ErrUnsorted       — starts or stops not sorted ascending.
//   - ErrEmptySpan      — some stops[i] ≤ starts[i].
//
// Complexity: O(M + E·log M).
func QueryExplicit[T cmp.Ordered](starts, stops, events []T) ([]int, error) {
	if err := validateExplicit(starts, stops); err != nil {
		return nil, err
	}

	out := make([]int, len(events))
	for i, e := range events {
		out[i] = IndexExplicit(starts, stops, e)
	}

	return out, nil
}

// validateExplicit checks the explicit-mode preconditions in one pass.
func validateExplicit[T cmp.Ordered](starts, stops []T) error {
	if len(starts) != len(stops) {
		return ErrLengthMismatch
	}
	if !slices.IsSorted(starts) || !slices.IsSorted(stops) {
		return ErrUnsorted
	}
	for i := range starts {
		if stops[i] <= starts[i] {
			return ErrEmptySpan
		}
	}
	return nil
}
