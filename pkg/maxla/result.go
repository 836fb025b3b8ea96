package maxla

import (
	"time"

	"github.com/matzehuels/maxla/pkg/errors"
	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/maxla/bnb"
	"github.com/matzehuels/maxla/pkg/tree"
)

// Stats aggregates the search counters of all tasks of a solve.
type Stats = bnb.Stats

// SeedInfo describes the initial incumbent.
type SeedInfo struct {
	Kind  string `json:"kind"`
	Value int    `json:"value"`
}

// Result is the outcome of a solve.
type Result struct {
	// Value is the maximum sum of edge lengths.
	Value int

	// Arrangements holds one maximum arrangement per distinct level
	// signature, ordered by signature, lexicographically descending.
	Arrangements []linarr.Arrangement

	// Seed is the incumbent the search started from.
	Seed SeedInfo

	// Stats are the merged search counters. They are zero for trees with
	// fewer than two vertices and restored from the cache on a hit.
	Stats Stats

	RunID    string
	Cached   bool
	Duration time.Duration
}

// Signatures returns the level signature of every arrangement in order.
func (r *Result) Signatures(t *tree.Tree) [][]int {
	out := make([][]int, len(r.Arrangements))
	for i, a := range r.Arrangements {
		out[i] = linarr.Levels(t, a)
	}
	return out
}

// Progress is reported once per finished search task.
type Progress struct {
	RunID string
	// First is the vertex the task placed at position 0.
	First int
	// Done counts finished tasks, Total all tasks of the solve.
	Done, Total int
	// Explored is the number of placements made by this task.
	Explored int64
	// Incumbent is the best value known to the worker that ran the task.
	Incumbent int
	Elapsed   time.Duration
}

// cachedResult is the JSON form of a Result stored in the cache.
type cachedResult struct {
	Value        int      `json:"value"`
	Seed         SeedInfo `json:"seed"`
	Arrangements [][]int  `json:"arrangements"`
	Stats        Stats    `json:"stats"`
}

func newCachedResult(r *Result) cachedResult {
	c := cachedResult{
		Value:        r.Value,
		Seed:         r.Seed,
		Arrangements: make([][]int, len(r.Arrangements)),
		Stats:        r.Stats,
	}
	for i, a := range r.Arrangements {
		c.Arrangements[i] = a.Inverse()
	}
	return c
}

// restore rebuilds a Result for t, validating every stored arrangement
// and its value against the tree.
func (c cachedResult) restore(t *tree.Tree) (*Result, error) {
	r := &Result{Value: c.Value, Seed: c.Seed, Stats: c.Stats, Cached: true}
	if len(c.Arrangements) == 0 {
		return nil, errors.New(errors.ErrCodeCache, "cached result has no arrangements")
	}
	for _, order := range c.Arrangements {
		a, err := linarr.FromInverse(order)
		if err != nil {
			return nil, err
		}
		if err := a.Validate(t.NumNodes()); err != nil {
			return nil, err
		}
		if d := linarr.SumEdgeLengths(t, a); d != c.Value {
			return nil, errors.New(errors.ErrCodeCache, "cached arrangement has D=%d, want %d", d, c.Value)
		}
		r.Arrangements = append(r.Arrangements, a)
	}
	return r, nil
}
