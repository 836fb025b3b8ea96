package prom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)
	ctx := context.Background()

	h.OnSolveStart(ctx, "run", 5)
	h.OnTaskComplete(ctx, 0, 10, map[string]int64{"bipartite": 3, "leaf_order": 0}, time.Millisecond)
	h.OnTaskComplete(ctx, 1, 5, map[string]int64{"bipartite": 1, "upper_bound": 2}, time.Millisecond)
	h.OnSolveComplete(ctx, "run", 5, 11, 2, time.Second, nil)
	h.OnSolveComplete(ctx, "run", 5, 0, 0, time.Second, errors.New("canceled"))

	assert.Equal(t, 15.0, testutil.ToFloat64(h.explored))
	assert.Equal(t, 2.0, testutil.ToFloat64(h.tasks))
	assert.Equal(t, 4.0, testutil.ToFloat64(h.discards.WithLabelValues("bipartite")))
	assert.Equal(t, 2.0, testutil.ToFloat64(h.discards.WithLabelValues("upper_bound")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.solves.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.solves.WithLabelValues("error")))

	n, err := testutil.GatherAndCount(reg, "maxla_solve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCacheMetrics(t *testing.T) {
	h := New(prometheus.NewRegistry())
	ctx := context.Background()

	h.OnCacheMiss(ctx, "result")
	h.OnCacheSet(ctx, "result", 128)
	h.OnCacheHit(ctx, "result")
	h.OnCacheHit(ctx, "result")

	assert.Equal(t, 2.0, testutil.ToFloat64(h.cacheRequests.WithLabelValues("result", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.cacheRequests.WithLabelValues("result", "miss")))
	assert.Equal(t, 128.0, testutil.ToFloat64(h.cacheBytes))
}

func TestDoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

func TestNilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil).OnCacheHit(context.Background(), "result")
	})
}
