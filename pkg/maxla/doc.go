// Package maxla computes maximum linear arrangements of free trees.
//
// A linear arrangement places the n vertices of a tree on positions
// 0..n-1. Its cost D is the sum over all edges of the distance between the
// endpoints' positions. This package finds the maximum D together with one
// arrangement for every distinct level signature that attains it, where the
// level of a vertex is the number of its neighbours placed to its right
// minus the number placed to its left.
//
// # Usage
//
//	value, arrs, err := maxla.Solve(ctx, t)
//
// or, with workers, logging and a result cache:
//
//	s := maxla.NewSolver(maxla.Options{
//	    Workers: 8,
//	    Logger:  logger,
//	    Cache:   cache.NewMemoryCache(1024, 0),
//	})
//	res, err := s.Solve(ctx, t)
//
// [NewSolverFromConfig] builds the same from a TOML file.
//
// # Search
//
// The search is an exact branch and bound ([bnb]) started from the better
// of two constructed arrangements ([seed]). Vertices in the same
// automorphism orbit yield mirror-equivalent searches, so one task is run
// per orbit representative. Tasks are distributed over a worker pool; each
// worker keeps a private incumbent and result set, and the sets are merged
// when all tasks have finished. The merged result does not depend on the
// number of workers.
package maxla
