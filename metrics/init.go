package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// initGrowthMetrics initializes per-edge and per-step metrics
func (r *Registry) initGrowthMetrics() {
	r.EdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_total",
			Help:      "Total number of edges appended, by scenario",
		},
		[]string{"scenario"},
	)

	r.ExhaustionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exhaustions_total",
			Help:      "Total number of steps truncated because no eligible node remained",
		},
		[]string{"scenario"},
	)

	r.NodesCreated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_created_total",
			Help:      "Total number of nodes created during growth",
		},
	)

	r.StepDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time of a single growth step",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
	)
}

// initRunMetrics initializes whole-run metrics
func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of runs, by completion status",
		},
		[]string{"status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a complete run",
			Buckets:   prometheus.ExponentialBuckets(1e-3, 4, 10),
		},
	)

	r.LastNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_nodes",
			Help:      "Node count of the most recently finished run",
		},
	)

	r.LastEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_edges",
			Help:      "Edge count of the most recently finished run",
		},
	)
}

// initSamplingMetrics initializes sampler diagnostics
func (r *Registry) initSamplingMetrics() {
	r.SampleRejections = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_rejections_total",
			Help:      "Total number of draws rejected because the node was excluded",
		},
		[]string{"role"},
	)

	r.DriftCorrections = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sampler_drift_corrections_total",
			Help:      "Total number of floating-point drift corrections, by kind",
		},
		[]string{"kind"},
	)
}

// initLogMetrics initializes log entry counters
func (r *Registry) initLogMetrics() {
	r.LogEntriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_entries_total",
			Help:      "Total number of log entries by level",
		},
		[]string{"level"},
	)
}
