package maxla

import (
	"context"
	"encoding/json"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/maxla/internal/logging"
	"github.com/matzehuels/maxla/pkg/buildinfo"
	"github.com/matzehuels/maxla/pkg/cache"
	"github.com/matzehuels/maxla/pkg/errors"
	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/maxla/bnb"
	"github.com/matzehuels/maxla/pkg/maxla/collector"
	"github.com/matzehuels/maxla/pkg/maxla/seed"
	"github.com/matzehuels/maxla/pkg/observability"
	"github.com/matzehuels/maxla/pkg/tree"
)

const cacheKeyType = "result"

// Options configures a Solver. The zero value is usable.
type Options struct {
	// Workers is the number of search goroutines. Zero means
	// runtime.GOMAXPROCS(0). It is capped by the number of tasks.
	Workers int

	// OneThistle also tries the one-thistle construction as the initial
	// incumbent.
	OneThistle bool

	// Logger receives solver logs. When nil, the logger attached to the
	// context is used, and logs are discarded if there is none.
	Logger *log.Logger

	// Cache stores results between solves. Nil disables caching.
	Cache cache.Cache
	// Keyer derives cache keys. Nil means cache.NewDefaultKeyer().
	Keyer cache.Keyer
	// CacheTTL is the lifetime of stored results. Zero means
	// cache.TTLResult.
	CacheTTL time.Duration
	// Refresh skips the cache lookup but still stores the new result.
	Refresh bool

	// Progress, if set, is called once per finished task. Calls are
	// serialized.
	Progress func(Progress)
}

// Solver computes maximum linear arrangements. It holds no per-solve
// state, so one Solver may serve concurrent Solve calls.
type Solver struct {
	opts Options
}

// NewSolver returns a solver with opts, filling in defaults.
func NewSolver(opts Options) *Solver {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = cache.TTLResult
	}
	return &Solver{opts: opts}
}

// Solve returns the maximum sum of edge lengths of t together with one
// maximum arrangement per level signature. It uses a solver with default
// options and the one-thistle seed enabled.
func Solve(ctx context.Context, t *tree.Tree) (int, []linarr.Arrangement, error) {
	res, err := NewSolver(Options{OneThistle: true}).Solve(ctx, t)
	if err != nil {
		return 0, nil, err
	}
	return res.Value, res.Arrangements, nil
}

// Solve runs the search on t. It fails with [errors.ErrCodeInvalidTree]
// for inputs that are not free trees and with [errors.ErrCodeCanceled]
// when ctx ends first. Cache failures are logged and never fail a solve.
func (s *Solver) Solve(ctx context.Context, t *tree.Tree) (res *Result, err error) {
	if t == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "tree is nil")
	}
	n := t.NumNodes()
	if err := errors.ValidateVertexCount(n); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := s.logger(ctx).With("run", runID)
	hooks := observability.Search()
	prog := logging.NewProgress(logger)
	hooks.OnSolveStart(ctx, runID, n)
	logger.Info("solving", "vertices", n, "workers", s.opts.Workers)

	defer func() {
		value, reps := 0, 0
		if err == nil {
			res.RunID = runID
			res.Duration = prog.Elapsed()
			value, reps = res.Value, len(res.Arrangements)
			prog.Done("solved", "value", value, "arrangements", reps, "cached", res.Cached)
		} else {
			logger.Warn("solve failed", "err", err)
		}
		hooks.OnSolveComplete(ctx, runID, n, value, reps, prog.Elapsed(), err)
	}()

	if n < 2 {
		return &Result{
			Arrangements: []linarr.Arrangement{linarr.Identity(n)},
			Seed:         SeedInfo{Kind: seed.KindBipartite.String()},
		}, nil
	}

	key := s.opts.Keyer.ResultKey(tree.Hash(t), cache.ResultKeyOpts{
		Version:    buildinfo.CacheVersion(),
		OneThistle: s.opts.OneThistle,
	})
	if !s.opts.Refresh {
		if r, ok := s.lookup(ctx, logger, t, key); ok {
			return r, nil
		}
	}

	res, err = s.search(ctx, logger, runID, t)
	if err != nil {
		return nil, err
	}
	s.store(ctx, logger, key, res)
	return res, nil
}

func (s *Solver) logger(ctx context.Context) *log.Logger {
	if s.opts.Logger != nil {
		return s.opts.Logger
	}
	if l, ok := logging.Lookup(ctx); ok {
		return l
	}
	return logging.Discard()
}

func (s *Solver) lookup(ctx context.Context, logger *log.Logger, t *tree.Tree, key string) (*Result, bool) {
	data, hit, err := s.opts.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	var c cachedResult
	if err := json.Unmarshal(data, &c); err != nil {
		logger.Warn("discarding undecodable cache entry", "err", err)
		return nil, false
	}
	r, err := c.restore(t)
	if err != nil {
		logger.Warn("discarding invalid cache entry", "err", err)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	logger.Debug("cache hit", "value", r.Value)
	return r, true
}

func (s *Solver) store(ctx context.Context, logger *log.Logger, key string, r *Result) {
	data, err := json.Marshal(newCachedResult(r))
	if err != nil {
		logger.Warn("encoding result for cache failed", "err", err)
		return
	}
	if err := s.opts.Cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil {
		logger.Warn("cache store failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// incumbents seeds every worker's collector. Bipartite arrangements are
// never generated by the search, so the bipartite seed and its mirror are
// always offered.
func incumbents(t *tree.Tree, colors []tree.Color, best seed.Seed) func(*collector.Set) {
	bv, ba := seed.Bipartite(t, colors)
	bm := ba.Mirror()
	return func(c *collector.Set) {
		c.Add(bv, ba)
		c.Add(bv, bm)
		if best.Kind != seed.KindBipartite {
			c.Add(best.Value, best.Arrangement)
			c.Add(best.Value, best.Arrangement.Mirror())
		}
	}
}

// search runs one task per orbit representative on a pool of workers,
// each with a private engine and collector, then merges the collectors in
// worker order.
func (s *Solver) search(ctx context.Context, logger *log.Logger, runID string, t *tree.Tree) (*Result, error) {
	p := bnb.NewProblem(t)
	best := seed.Best(t, p.Colors, s.opts.OneThistle)
	seedAll := incumbents(t, p.Colors, best)
	logger.Debug("seeded", "kind", best.Kind, "value", best.Value)

	roots := p.Roots()
	workers := min(s.opts.Workers, len(roots))
	tasks := make(chan int, len(roots))
	for _, r := range roots {
		tasks <- r
	}
	close(tasks)

	colls := make([]*collector.Set, workers)
	stats := make([]bnb.Stats, workers)
	var (
		mu   sync.Mutex
		done int
	)
	hooks := observability.Search()

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		colls[w] = collector.New(t)
		seedAll(colls[w])
		g.Go(func() error {
			e := bnb.New(p, colls[w])
			defer func() { stats[w] = e.Stats() }()
			for first := range tasks {
				if err := gctx.Err(); err != nil {
					return errors.Wrap(errors.ErrCodeCanceled, err, "search from vertex %d", first)
				}
				start := time.Now()
				before := e.Stats()
				if err := e.Run(gctx, first); err != nil {
					return err
				}
				delta := e.Stats().Sub(before)
				elapsed := time.Since(start)
				hooks.OnTaskComplete(gctx, first, delta.Explored, delta.DiscardsByName(), elapsed)
				logger.Debug("task done", "first", first, "explored", delta.Explored,
					"discards", delta.TotalDiscards(), "best", colls[w].Best())

				mu.Lock()
				done++
				if s.opts.Progress != nil {
					s.opts.Progress(Progress{
						RunID:     runID,
						First:     first,
						Done:      done,
						Total:     len(roots),
						Explored:  delta.Explored,
						Incumbent: colls[w].Best(),
						Elapsed:   elapsed,
					})
				}
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := colls[0]
	var total bnb.Stats
	for w := range workers {
		if w > 0 {
			merged.Merge(colls[w])
		}
		total.Merge(stats[w])
	}
	return &Result{
		Value:        merged.Best(),
		Arrangements: merged.Representatives(),
		Seed:         SeedInfo{Kind: best.Kind.String(), Value: best.Value},
		Stats:        total,
	}, nil
}
