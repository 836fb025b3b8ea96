// Package pkg holds the libraries of the maxla module, which computes
// maximum linear arrangements of free trees.
//
// # Overview
//
// The directory is organized into three areas:
//
//  1. Structure: [tree] and its subpackages (branchless paths, orbits,
//     generators), and [linarr] (arrangements, their measures and an
//     exhaustive reference solver)
//  2. Search: [maxla] and its subpackages (seed arrangements, the result
//     collector and the branch and bound engine)
//  3. Infrastructure: [cache], [observability], [errors] and [buildinfo]
//
// # Data flow
//
//	tree.Tree
//	    ↓
//	bnb.Problem (paths, orbits, colouring)
//	    ↓
//	seed.Best → collector.Set per worker
//	    ↓
//	bnb.Engine.Run per orbit representative
//	    ↓
//	merged collector → maxla.Result (cached by tree hash)
//
// # Quick Start
//
//	t, err := tree.FromEdges(5, []tree.Edge{{0, 1}, {1, 2}, {1, 3}, {3, 4}})
//	if err != nil {
//	    return err
//	}
//	value, arrs, err := maxla.Solve(ctx, t)
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/maxla/pkg/tree
// [linarr]: https://pkg.go.dev/github.com/matzehuels/maxla/pkg/linarr
// [maxla]: https://pkg.go.dev/github.com/matzehuels/maxla/pkg/maxla
// [cache]: https://pkg.go.dev/github.com/matzehuels/maxla/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/maxla/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/maxla/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/maxla/pkg/buildinfo
package pkg
