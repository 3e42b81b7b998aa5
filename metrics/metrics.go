// Package metrics exposes prometheus instrumentation for network growth runs.
//
// A Registry owns its own prometheus.Registry so independent runs (and tests)
// never collide on the global default. All Record methods are safe for
// concurrent use and are no-ops on a nil *Registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rpanet"

// Registry holds all metrics for the generator.
type Registry struct {
	// Growth
	EdgesTotal       *prometheus.CounterVec
	ExhaustionsTotal *prometheus.CounterVec
	NodesCreated     prometheus.Counter
	StepDuration     prometheus.Histogram

	// Runs
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram
	LastNodes   prometheus.Gauge
	LastEdges   prometheus.Gauge

	// Sampling
	SampleRejections *prometheus.CounterVec
	DriftCorrections *prometheus.CounterVec

	// Logging
	LogEntriesTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.initGrowthMetrics()
	r.initRunMetrics()
	r.initSamplingMetrics()
	r.initLogMetrics()

	return r
}

// Prometheus returns the underlying prometheus registry.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// RecordEdge counts one appended edge of the given scenario.
func (r *Registry) RecordEdge(scenario string) {
	if r == nil {
		return
	}
	r.EdgesTotal.WithLabelValues(scenario).Inc()
}

// RecordNodes counts n created nodes.
func (r *Registry) RecordNodes(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.NodesCreated.Add(float64(n))
}

// RecordExhaustion counts one truncated step, labelled by the scenario whose
// draw was infeasible.
func (r *Registry) RecordExhaustion(scenario string) {
	if r == nil {
		return
	}
	r.ExhaustionsTotal.WithLabelValues(scenario).Inc()
}

// RecordStep observes the wall time of one step.
func (r *Registry) RecordStep(duration time.Duration) {
	if r == nil {
		return
	}
	r.StepDuration.Observe(duration.Seconds())
}

// RecordRun records a finished run and its final size.
func (r *Registry) RecordRun(status string, duration time.Duration, nodes, edges int) {
	if r == nil {
		return
	}
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(duration.Seconds())
	r.LastNodes.Set(float64(nodes))
	r.LastEdges.Set(float64(edges))
}

// RecordSampling adds sampler diagnostics accumulated over a run.
func (r *Registry) RecordSampling(sourceRejections, targetRejections, clamps, fallbacks uint64) {
	if r == nil {
		return
	}
	r.SampleRejections.WithLabelValues("source").Add(float64(sourceRejections))
	r.SampleRejections.WithLabelValues("target").Add(float64(targetRejections))
	r.DriftCorrections.WithLabelValues("clamp").Add(float64(clamps))
	r.DriftCorrections.WithLabelValues("fallback").Add(float64(fallbacks))
}

// RecordLogEntry counts one emitted log entry of the given level.
func (r *Registry) RecordLogEntry(level string) {
	if r == nil {
		return
	}
	r.LogEntriesTotal.WithLabelValues(level).Inc()
}

// WriteTextfile dumps the current values in the node-exporter textfile format.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
