package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Telemetry tracks pipeline, search and completion metrics. A nil *Telemetry
// is valid and records nothing, so callers without metrics (one-shot CLI,
// tests) can pass nil.
type Telemetry struct {
	pipelineRuns       *prometheus.CounterVec
	pipelineDuration   prometheus.Histogram
	searchQueries      *prometheus.CounterVec
	completionDuration prometheus.Histogram
}

// NewTelemetry registers the trip agent metrics on the given registerer.
func NewTelemetry(reg prometheus.Registerer) *Telemetry {
	factory := promauto.With(reg)
	return &Telemetry{
		pipelineRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tripagent_pipeline_runs_total",
			Help: "Pipeline invocations by terminal status.",
		}, []string{"status"}),
		pipelineDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripagent_pipeline_duration_seconds",
			Help:    "End to end pipeline latency.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		searchQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tripagent_search_queries_total",
			Help: "Search gateway calls by outcome.",
		}, []string{"outcome"}),
		completionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripagent_completion_duration_seconds",
			Help:    "Completion gateway latency.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
	}
}

// RecordPipelineRun records one completed pipeline invocation.
func (t *Telemetry) RecordPipelineRun(success bool, d time.Duration) {
	if t == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	t.pipelineRuns.WithLabelValues(status).Inc()
	t.pipelineDuration.Observe(d.Seconds())
}

// RecordSearchQuery records one search gateway call.
func (t *Telemetry) RecordSearchQuery(success bool) {
	if t == nil {
		return
	}
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	t.searchQueries.WithLabelValues(outcome).Inc()
}

// RecordCompletion records one completion gateway call.
func (t *Telemetry) RecordCompletion(d time.Duration) {
	if t == nil {
		return
	}
	t.completionDuration.Observe(d.Seconds())
}
