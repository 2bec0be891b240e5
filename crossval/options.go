package crossval

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/metastates/crossval"

// Option customizes Run.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	progress func(Result)
}

// WithLogger sets the structured logger.  Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("crossval: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records task counters and durations into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracer overrides the OpenTelemetry tracer used for task spans.
// Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("crossval: WithTracer(nil)")
	}
	return func(o *options) {
		o.tracer = t
	}
}

// WithProgress calls fn with every result as it is aggregated.  fn runs on
// the aggregating goroutine, one call at a time, in completion order.
func WithProgress(fn func(Result)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
