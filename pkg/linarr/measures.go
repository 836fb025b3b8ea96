package linarr

import "github.com/matzehuels/maxla/pkg/tree"

// SumEdgeLengths returns D = Σ |π(u) − π(v)| over the edges of t.
func SumEdgeLengths(t *tree.Tree, a Arrangement) int {
	d := 0
	for u := 0; u < t.NumNodes(); u++ {
		for _, v := range t.Neighbors(u) {
			if u < v {
				d += abs(a.Position(u) - a.Position(v))
			}
		}
	}
	return d
}

// LevelOf returns the level value of u: the number of neighbours placed to
// its right minus the number placed to its left.
func LevelOf(t *tree.Tree, a Arrangement, u int) int {
	pu := a.Position(u)
	l := 0
	for _, v := range t.Neighbors(u) {
		if a.Position(v) > pu {
			l++
		} else {
			l--
		}
	}
	return l
}

// Levels returns the level signature of a: the level value of the vertex
// at every position, left to right.
func Levels(t *tree.Tree, a Arrangement) []int {
	out := make([]int, a.Len())
	for p := range out {
		out[p] = LevelOf(t, a, a.Vertex(p))
	}
	return out
}

// Cuts returns, for every position p < n-1, the number of edges joining a
// vertex at position ≤ p to a vertex at position > p. The cuts sum to D.
func Cuts(t *tree.Tree, a Arrangement) []int {
	n := a.Len()
	if n <= 1 {
		return nil
	}
	out := make([]int, n-1)
	cur := 0
	for p := 0; p < n-1; p++ {
		cur += LevelOf(t, a, a.Vertex(p))
		out[p] = cur
	}
	return out
}

// Thistles returns the vertices whose absolute level differs from their
// degree, in increasing order.
func Thistles(t *tree.Tree, a Arrangement) []int {
	var out []int
	for u := 0; u < t.NumNodes(); u++ {
		if abs(LevelOf(t, a, u)) != t.Degree(u) {
			out = append(out, u)
		}
	}
	return out
}

// IsBipartite reports whether a places one colour class of t entirely
// before the other: no vertex is a thistle and levels never increase.
func IsBipartite(t *tree.Tree, a Arrangement) bool {
	if len(Thistles(t, a)) > 0 {
		return false
	}
	return IsNonIncreasing(Levels(t, a))
}

// IsNonIncreasing reports whether levels never increase left to right.
func IsNonIncreasing(levels []int) bool {
	for i := 1; i < len(levels); i++ {
		if levels[i] > levels[i-1] {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
