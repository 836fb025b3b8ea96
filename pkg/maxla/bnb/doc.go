// Package bnb implements the branch and bound search for maximum linear
// arrangements of free trees.
//
// An [Engine] builds arrangements left to right. At every position it
// first bounds the best value any completion of the current prefix can
// reach and abandons the prefix when the bound falls below the incumbent.
// When the remaining vertices form an independent set the single best
// completion is written directly. Otherwise every unassigned vertex is
// tried in increasing index order after passing a battery of pruning rules
// (see [Reason]); rules that depend on the structure of the tree use the
// branchless path decomposition and the vertex orbits held by [Problem].
//
// Along every branchless path the edges of a maximum arrangement alternate
// direction, except possibly at one vertex of a bridge. Placing a vertex
// fixes the direction of its path edges, which in turn determines the
// level of vertices further along the same paths. These predicted levels
// feed back into the pruning rules and are rolled back with the placement.
//
// An Engine is single-threaded and owns all of its state. Problems are
// read-only and may be shared by engines running in parallel.
package bnb
