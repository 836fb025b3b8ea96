package seed

import (
	"cmp"
	"slices"

	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/tree"
)

// side is where a vertex sits relative to its parent in a projective layout.
type side uint8

const (
	sideRoot side = iota
	sideLeft
	sideRight
)

// rooted is t rooted at one vertex, with every child list sorted by
// subtree size, largest first.
type rooted struct {
	children [][]int
	size     []int
}

func newRooted(t *tree.Tree, root int) *rooted {
	n := t.NumNodes()
	parent := tree.Parents(t, root)
	r := &rooted{
		children: make([][]int, n),
		size:     tree.SubtreeSizes(t, root),
	}
	for v := 0; v < n; v++ {
		if pv := parent[v]; pv >= 0 {
			r.children[pv] = append(r.children[pv], v)
		}
	}
	for _, c := range r.children {
		slices.SortStableFunc(c, func(u, v int) int {
			return cmp.Compare(r.size[v], r.size[u])
		})
	}
	return r
}

// arrange lays out the subtree of u on positions lo..hi. u goes to the end
// of the interval away from its parent and its children follow, largest
// subtree first. If a is nil only the value is computed.
//
// The result is D of the edges below u plus, for a non-root u, the part of
// the edge to its parent that lies inside the interval.
func (r *rooted) arrange(u int, s side, lo, hi int, a *linarr.Arrangement) int {
	if a != nil {
		if s == sideLeft {
			a.Assign(u, lo)
		} else {
			a.Assign(u, hi)
		}
	}
	next := sideLeft
	if s == sideLeft {
		next = sideRight
	}

	d, acc := 0, 0
	for _, v := range r.children[u] {
		nv := r.size[v]
		var clo, chi int
		if s == sideLeft {
			clo = lo + acc + 1
			chi = clo + nv - 1
		} else {
			chi = hi - acc - 1
			clo = chi - nv + 1
		}
		d += r.arrange(v, next, clo, chi, a) + 1 + acc
		acc += nv
	}
	if s != sideRoot {
		d += acc
	}
	return d
}

// Projective returns a maximum projective arrangement of t rooted at root
// and its D. In a projective arrangement no two edges cross and no edge
// passes over the root. root must be a vertex of t unless t is empty.
func Projective(t *tree.Tree, root int) (int, linarr.Arrangement) {
	n := t.NumNodes()
	a := linarr.New(n)
	if n == 0 {
		return 0, a
	}
	d := newRooted(t, root).arrange(root, sideRoot, 0, n-1, &a)
	return d, a
}

// Planar returns a maximum planar arrangement of t and its D. A planar
// arrangement has no crossing edges; its maximum is the best maximum
// projective arrangement over all roots. Ties keep the smallest root.
func Planar(t *tree.Tree) (int, linarr.Arrangement) {
	n := t.NumNodes()
	best, root := -1, 0
	for r := 0; r < n; r++ {
		if d := newRooted(t, r).arrange(r, sideRoot, 0, n-1, nil); d > best {
			best, root = d, r
		}
	}
	return Projective(t, root)
}
