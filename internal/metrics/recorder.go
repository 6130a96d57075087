// Package metrics records per-run statistics of the demo steps with the
// Prometheus client library and renders them in the text exposition format.
package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/quickrun/internal/fibonacci"
)

const namespace = "quickrun"

// maxCountableIndex is the largest index whose naive call count fits in a uint64.
const maxCountableIndex = 91

// Step outcome label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder holds the metrics of one run in a private registry.
// A private registry keeps runs and tests isolated from the global default.
type Recorder struct {
	registry       *prometheus.Registry
	stepDuration   *prometheus.HistogramVec
	stepsTotal     *prometheus.CounterVec
	fibonacciIndex prometheus.Gauge
	fibonacciCalls prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall-clock duration of each demo step.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"step"}),
		stepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Demo steps executed, by outcome.",
		}, []string{"step", "result"}),
		fibonacciIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fibonacci_index",
			Help:      "Index n of the last Fibonacci term computed.",
		}),
		fibonacciCalls: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fibonacci_recursive_calls",
			Help:      "Invocations performed by the naive recursion for the last index.",
		}),
	}
	r.registry.MustRegister(r.stepDuration, r.stepsTotal, r.fibonacciIndex, r.fibonacciCalls)
	return r
}

// ObserveStep records the duration and outcome of a demo step.
func (r *Recorder) ObserveStep(step string, d time.Duration, err error) {
	r.stepDuration.WithLabelValues(step).Observe(d.Seconds())
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.stepsTotal.WithLabelValues(step, result).Inc()
}

// RecordFibonacci records the index computed and the number of recursive
// calls the naive form needed for it. The call count is left unset for
// indices where it would overflow.
func (r *Recorder) RecordFibonacci(n uint64) {
	r.fibonacciIndex.Set(float64(n))
	if n <= maxCountableIndex {
		r.fibonacciCalls.Set(float64(fibonacci.CallCount(n)))
	}
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteText writes every collected metric family to w in the Prometheus
// text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	var errs []error
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
