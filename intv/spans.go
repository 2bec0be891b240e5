package intv

import "cmp"

// Span is a half-open interval [Start, Stop).
type Span[T cmp.Ordered] struct {
	Start T
	Stop  T
}

// SpanOption customizes FromBoundaries.
type SpanOption[T cmp.Ordered] func(*spanConfig[T])

type spanConfig[T cmp.Ordered] struct {
	lower, upper       T
	hasLower, hasUpper bool
}

// WithLower prepends b as the start of an extra first span ending at bds[0].
func WithLower[T cmp.Ordered](b T) SpanOption[T] {
	return func(c *spanConfig[T]) {
		c.lower, c.hasLower = b, true
	}
}

// WithUpper appends b as the stop of an extra last span starting at bds[len-1].
func WithUpper[T cmp.Ordered](b T) SpanOption[T] {
	return func(c *spanConfig[T]) {
		c.upper, c.hasUpper = b, true
	}
}

// FromBoundaries turns a sorted boundary list into consecutive spans: each
// boundary ends one span and starts the next.
//
//	FromBoundaries([1 4 29])                         → [1,4) [4,29)
//	FromBoundaries([1 4 29], WithLower(0))           → [0,1) [1,4) [4,29)
//	FromBoundaries([1 4 29], WithUpper(55))          → [1,4) [4,29) [29,55)
//	FromBoundaries([1 4 29], WithLower(0), WithUpper(55))
//
// Errors:
//   - ErrEmptySpan — two consecutive boundaries (lower and upper included)
//     are not strictly increasing.
func FromBoundaries[T cmp.Ordered](bds []T, opts ...SpanOption[T]) ([]Span[T], error) {
	var c spanConfig[T]
	for _, opt := range opts {
		opt(&c)
	}

	all := make([]T, 0, len(bds)+2)
	if c.hasLower {
		all = append(all, c.lower)
	}
	all = append(all, bds...)
	if c.hasUpper {
		all = append(all, c.upper)
	}
	if len(all) < 2 {
		return nil, nil
	}

	out := make([]Span[T], len(all)-1)
	for i := range out {
		if all[i+1] <= all[i] {
			return nil, ErrEmptySpan
		}
		out[i] = Span[T]{Start: all[i], Stop: all[i+1]}
	}

	return out, nil
}
