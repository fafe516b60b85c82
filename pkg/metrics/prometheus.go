package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	cacheTotal      *prometheus.CounterVec
	branchFailures  *prometheus.CounterVec
	snapshots       *prometheus.CounterVec
}

// New creates a Prometheus metrics recorder registered against reg.
// A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		upstreamTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finplan_upstream_requests_total",
				Help: "Upstream requests by provider and result",
			},
			[]string{"provider", "result"},
		),
		upstreamLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finplan_upstream_duration_seconds",
				Help:    "Duration of upstream requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		cacheTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finplan_cache_outcomes_total",
				Help: "Accessor outcomes by category (hit, miss, stale, fallback)",
			},
			[]string{"category", "outcome"},
		),
		branchFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finplan_aggregate_branch_failures_total",
				Help: "Market context branches that resolved to absent",
			},
			[]string{"branch"},
		),
		snapshots: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finplan_snapshots_published_total",
				Help: "Market context snapshots handed to the publisher",
			},
			[]string{"status"},
		),
	}
}

// RecordUpstream records one upstream call.
func (r *Recorder) RecordUpstream(provider, result string, seconds float64) {
	r.upstreamTotal.WithLabelValues(provider, result).Inc()
	r.upstreamLatency.WithLabelValues(provider).Observe(seconds)
}

// RecordCache records how an accessor call was served.
func (r *Recorder) RecordCache(category, outcome string) {
	r.cacheTotal.WithLabelValues(category, outcome).Inc()
}

func (r *Recorder) RecordBranchFailure(branch string) {
	r.branchFailures.WithLabelValues(branch).Inc()
}

func (r *Recorder) RecordSnapshotPublished(ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	r.snapshots.WithLabelValues(status).Inc()
}

// Nop discards every observation.
type Nop struct{}

func (Nop) RecordUpstream(string, string, float64) {}
func (Nop) RecordCache(string, string)             {}
func (Nop) RecordBranchFailure(string)             {}
func (Nop) RecordSnapshotPublished(bool)           {}
