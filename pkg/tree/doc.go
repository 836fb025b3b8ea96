// Package tree provides the free (unrooted, undirected) tree used by the
// arrangement solvers.
//
// # Overview
//
// A [Tree] stores n vertices labelled 0..n-1 and at most n-1 undirected
// edges. Edges are validated on insertion: out-of-range endpoints, loops,
// duplicates and edges that would close a cycle are rejected, so a Tree is
// always a forest. [Tree.Validate] reports whether the forest is connected,
// which is what the solvers require.
//
// The type is deliberately small. Neighbour lists are returned as read-only
// views, degrees are cached, and nothing is allocated by the query methods,
// because the branch-and-bound engine calls them in its innermost loop.
//
// # Derived views
//
// A few read-only views are computed on demand:
//
//   - [Coloring]: the proper 2-colouring of the tree (bipartition)
//   - [Parents]: the tree rooted at a chosen vertex, as a parent array
//   - [Centers]: the one or two central vertices
//   - [Hash]: a stable digest of the labelled edge set, used for cache keys
//
// # Example
//
//	t, err := tree.FromEdges(4, []tree.Edge{{0, 1}, {1, 2}, {1, 3}})
//	if err != nil {
//	    return err
//	}
//	if err := t.Validate(); err != nil {
//	    return err
//	}
//	fmt.Println(t.Degree(1)) // 3
package tree
