package crossval

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by Run.  A nil *Metrics
// records nothing.
type Metrics struct {
	tasks    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics registers the cross-validation collectors with reg.
// Like promauto, it panics if they are already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		tasks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "metastates_crossval_tasks_total",
			Help: "Cross-validation tasks by outcome (ok, fit_error, score_error)",
		}, []string{"outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "metastates_crossval_task_duration_seconds",
			Help:    "Wall time of one fit+score task",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4min
		}, []string{"outcome"}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "metastates_crossval_tasks_in_flight",
			Help: "Tasks currently held by a worker",
		}),
	}
}

func outcome(res Result) string {
	if res.Err == nil {
		return "ok"
	}
	var te *TaskError
	if errors.As(res.Err, &te) && te.Stage == StageScore {
		return "score_error"
	}
	return "fit_error"
}

func (m *Metrics) observe(res Result) {
	if m == nil {
		return
	}
	o := outcome(res)
	m.tasks.WithLabelValues(o).Inc()
	m.duration.WithLabelValues(o).Observe(res.Elapsed.Seconds())
}

func (m *Metrics) started() {
	if m != nil {
		m.inFlight.Inc()
	}
}

func (m *Metrics) finished() {
	if m != nil {
		m.inFlight.Dec()
	}
}
