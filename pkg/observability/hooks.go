// Package observability provides hooks for metrics and tracing.
//
// The solver and the caches report events through the interfaces defined
// here without depending on a metrics backend. Applications register an
// implementation at startup, such as the Prometheus one in
// [github.com/matzehuels/maxla/pkg/observability/prom]:
//
//	func main() {
//	    h := prom.New(prometheus.DefaultRegisterer)
//	    observability.SetSearchHooks(h)
//	    observability.SetCacheHooks(h)
//	    // ... solve trees
//	}
//
// Libraries emit events through the registry:
//
//	observability.Search().OnSolveStart(ctx, runID, n)
//	// ... search ...
//	observability.Search().OnSolveComplete(ctx, runID, n, value, reps, elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from the branch-and-bound solver.
type SearchHooks interface {
	// OnSolveStart fires once per Solve call after the input is validated.
	OnSolveStart(ctx context.Context, runID string, vertices int)

	// OnSolveComplete fires when Solve returns. value and representatives
	// are zero when err is non-nil.
	OnSolveComplete(ctx context.Context, runID string, vertices, value, representatives int, duration time.Duration, err error)

	// OnTaskComplete fires after the subtree rooted at one first vertex
	// has been searched. discards is keyed by pruning rule name.
	OnTaskComplete(ctx context.Context, first int, explored int64, discards map[string]int64, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from result cache lookups.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSolveStart(context.Context, string, int) {}
func (NoopSearchHooks) OnSolveComplete(context.Context, string, int, int, int, time.Duration, error) {
}
func (NoopSearchHooks) OnTaskComplete(context.Context, int, int64, map[string]int64, time.Duration) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks. Call it once at startup
// before solving. A nil h is ignored.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	cacheHooks = NoopCacheHooks{}
}
