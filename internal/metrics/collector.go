// Package metrics exposes Prometheus instrumentation for harness runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels used on per-case counters
const (
	ResultPass = "pass"
	ResultFail = "fail"
	ResultSkip = "skip"
)

// Collector manages Prometheus metrics for case execution. Construct it
// once per process: the vectors register themselves with the default
// Prometheus registry.
type Collector struct {
	caseRuns     *prometheus.CounterVec
	caseDuration *prometheus.HistogramVec

	runsTotal   prometheus.Counter
	runDuration prometheus.Histogram

	casesRegistered prometheus.Gauge
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	return &Collector{
		caseRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "runnable_case_runs_total",
				Help: "Total number of case invocations by result",
			},
			[]string{"case", "result"},
		),
		caseDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "runnable_case_duration_seconds",
				Help:    "Duration of individual case invocations",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
			},
			[]string{"case"},
		),
		runsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "runnable_runs_total",
				Help: "Total number of harness runs",
			},
		),
		runDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "runnable_run_duration_seconds",
				Help:    "Duration of whole harness runs",
				Buckets: prometheus.DefBuckets,
			},
		),
		casesRegistered: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "runnable_cases_registered",
				Help: "Number of cases currently registered",
			},
		),
	}
}

// RecordCase records one case invocation
func (c *Collector) RecordCase(name, result string, duration time.Duration) {
	c.caseRuns.WithLabelValues(name, result).Inc()
	if result != ResultSkip {
		c.caseDuration.WithLabelValues(name).Observe(duration.Seconds())
	}
}

// RecordRun records one whole harness run
func (c *Collector) RecordRun(duration time.Duration) {
	c.runsTotal.Inc()
	c.runDuration.Observe(duration.Seconds())
}

// SetRegistered publishes the current registry size
func (c *Collector) SetRegistered(n int) {
	c.casesRegistered.Set(float64(n))
}
