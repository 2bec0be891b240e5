package rle

// Option customizes encoding.
type Option func(*config)

type config struct {
	offset int
}

// WithOffset adds offset to every Start and Stop produced by Encode or Scan.
// Run detection is unaffected; the shift is purely additive.
// Panics on a negative offset.
func WithOffset(offset int) Option {
	if offset < 0 {
		panic("rle: WithOffset(offset<0)")
	}
	return func(c *config) {
		c.offset = offset
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
