// Package prom implements the observability hooks with Prometheus metrics.
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/maxla/pkg/observability"
)

// Hooks records solver and cache events as Prometheus metrics. It
// implements both observability.SearchHooks and observability.CacheHooks.
type Hooks struct {
	solves        *prometheus.CounterVec
	solveDuration prometheus.Histogram
	explored      prometheus.Counter
	tasks         prometheus.Counter
	discards      *prometheus.CounterVec
	cacheRequests *prometheus.CounterVec
	cacheBytes    prometheus.Counter
}

// New creates the metrics and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Hooks {
	f := promauto.With(reg)
	return &Hooks{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "maxla_solves_total",
			Help: "Number of Solve calls by outcome",
		}, []string{"status"}),
		solveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "maxla_solve_duration_seconds",
			Help:    "Wall time of Solve calls",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		explored: f.NewCounter(prometheus.CounterOpts{
			Name: "maxla_nodes_explored_total",
			Help: "Search tree nodes explored",
		}),
		tasks: f.NewCounter(prometheus.CounterOpts{
			Name: "maxla_tasks_total",
			Help: "Search tasks (first vertices) completed",
		}),
		discards: f.NewCounterVec(prometheus.CounterOpts{
			Name: "maxla_discards_total",
			Help: "Candidate vertices discarded, by pruning rule",
		}, []string{"reason"}),
		cacheRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "maxla_cache_requests_total",
			Help: "Result cache lookups by result",
		}, []string{"type", "result"}),
		cacheBytes: f.NewCounter(prometheus.CounterOpts{
			Name: "maxla_cache_written_bytes_total",
			Help: "Bytes written to the result cache",
		}),
	}
}

func (h *Hooks) OnSolveStart(context.Context, string, int) {}

func (h *Hooks) OnSolveComplete(_ context.Context, _ string, _, _, _ int, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	h.solves.WithLabelValues(status).Inc()
	h.solveDuration.Observe(d.Seconds())
}

func (h *Hooks) OnTaskComplete(_ context.Context, _ int, explored int64, discards map[string]int64, _ time.Duration) {
	h.tasks.Inc()
	h.explored.Add(float64(explored))
	for reason, n := range discards {
		if n > 0 {
			h.discards.WithLabelValues(reason).Add(float64(n))
		}
	}
}

func (h *Hooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheRequests.WithLabelValues(keyType, "hit").Inc()
}

func (h *Hooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheRequests.WithLabelValues(keyType, "miss").Inc()
}

func (h *Hooks) OnCacheSet(_ context.Context, _ string, size int) {
	h.cacheBytes.Add(float64(size))
}

var (
	_ observability.SearchHooks = (*Hooks)(nil)
	_ observability.CacheHooks  = (*Hooks)(nil)
)
