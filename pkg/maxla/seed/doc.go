// Package seed computes good arrangements of a tree without searching, to
// serve as the initial incumbent of the branch and bound.
//
// Three constructions are provided:
//
//   - [Bipartite] places one colour class entirely before the other. It is
//     the best arrangement in which no vertex is a thistle.
//   - [OneThistle] lets a single vertex take neighbours on both sides and
//     evaluates every way of splitting its neighbourhood. It is a
//     constructive lower bound: no optimality among one-thistle
//     arrangements is claimed.
//   - [Planar] is the best arrangement without edge crossings, built from
//     [Projective] layouts of every rooted version of the tree.
//
// [Best] returns the best of them.
package seed
