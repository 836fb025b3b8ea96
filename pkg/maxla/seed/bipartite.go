package seed

import (
	"cmp"
	"slices"

	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/linarr/perm"
	"github.com/matzehuels/maxla/pkg/tree"
)

// Bipartite returns the maximum bipartite arrangement of t and its D.
//
// The colour class of vertex 0 is placed first, sorted by degree in
// decreasing order; the other class follows in increasing order of degree.
// Ties keep index order. The mirror of the result attains the same D with
// the other class first.
func Bipartite(t *tree.Tree, colors []tree.Color) (int, linarr.Arrangement) {
	n := t.NumNodes()
	if n == 0 {
		return 0, linarr.New(0)
	}
	first := colors[0]
	order := perm.Seq(n)
	slices.SortStableFunc(order, func(u, v int) int {
		fu, fv := colors[u] == first, colors[v] == first
		switch {
		case fu && !fv:
			return -1
		case !fu && fv:
			return 1
		case fu:
			return cmp.Compare(t.Degree(v), t.Degree(u))
		default:
			return cmp.Compare(t.Degree(u), t.Degree(v))
		}
	})
	a := linarr.MustFromInverse(order)
	return linarr.SumEdgeLengths(t, a), a
}
