package seed

import (
	"cmp"
	"slices"

	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/linarr/perm"
	"github.com/matzehuels/maxla/pkg/tree"
)

// maxExhaustiveSplit bounds the thistle degree for which every split of the
// neighbourhood is tried. Above it only prefix splits by branch size are.
const maxExhaustiveSplit = 10

// OneThistle returns the best arrangement found among those in which a
// single vertex x has neighbours on both sides.
//
// For every x of degree ≥ 2 and every non-trivial set S of neighbours put to
// the left of x, each branch hanging from x is oriented as in a bipartite
// arrangement: branches rooted in S take level +deg at their root, the others
// -deg, alternating along the branch. x gets |N(x)∖S| − |S|. Vertices are
// sorted by predicted level, x is moved left past equal-level non-neighbours
// and D is evaluated exactly. ok is false when t has no vertex of degree ≥ 2.
func OneThistle(t *tree.Tree) (value int, arr linarr.Arrangement, ok bool) {
	n := t.NumNodes()
	value = -1
	b := newBranches(n)
	level := make([]int, n)
	order := make([]int, n)

	for x := 0; x < n; x++ {
		deg := t.Degree(x)
		if deg < 2 {
			continue
		}
		b.compute(t, x)
		eval := func(left []bool) {
			d, a := b.arrange(t, x, left, level, order)
			if d > value {
				value, arr, ok = d, a, true
			}
		}

		left := make([]bool, deg)
		if deg <= maxExhaustiveSplit {
			for mask := 1; mask < 1<<deg-1; mask++ {
				for i := range left {
					left[i] = mask&(1<<i) != 0
				}
				eval(left)
			}
			continue
		}
		idx := perm.Seq(deg)
		slices.SortStableFunc(idx, func(i, j int) int {
			return cmp.Compare(b.size[j], b.size[i])
		})
		for k := 1; k < deg; k++ {
			clear(left)
			for _, i := range idx[:k] {
				left[i] = true
			}
			eval(left)
		}
	}
	if !ok {
		value = 0
	}
	return value, arr, ok
}

// branches records, for a fixed thistle x, which neighbour's branch every
// other vertex hangs from and the parity of its distance to x.
type branches struct {
	branch []int // index into N(x); -1 for x itself
	odd    []bool
	parent []int
	size   []int // per neighbour index
	queue  []int
}

func newBranches(n int) *branches {
	return &branches{
		branch: make([]int, n),
		odd:    make([]bool, n),
		parent: make([]int, n),
		queue:  make([]int, 0, n),
	}
}

func (b *branches) compute(t *tree.Tree, x int) {
	nbrs := t.Neighbors(x)
	sub := tree.SubtreeSizes(t, x)
	b.size = make([]int, len(nbrs))
	b.branch[x] = -1
	b.queue = b.queue[:0]
	for i, v := range nbrs {
		b.size[i] = sub[v]
		b.branch[v] = i
		b.odd[v] = true
		b.parent[v] = x
		b.queue = append(b.queue, v)
	}
	for h := 0; h < len(b.queue); h++ {
		u := b.queue[h]
		for _, w := range t.Neighbors(u) {
			if w == b.parent[u] {
				continue
			}
			b.parent[w] = u
			b.branch[w] = b.branch[u]
			b.odd[w] = !b.odd[u]
			b.queue = append(b.queue, w)
		}
	}
}

func (b *branches) arrange(t *tree.Tree, x int, left []bool, level, order []int) (int, linarr.Arrangement) {
	n := t.NumNodes()
	for u := 0; u < n; u++ {
		order[u] = u
		if u == x {
			continue
		}
		// the root of a left branch has x to its right
		positive := left[b.branch[u]] == b.odd[u]
		if positive {
			level[u] = t.Degree(u)
		} else {
			level[u] = -t.Degree(u)
		}
	}
	nl := 0
	for _, l := range left {
		if l {
			nl++
		}
	}
	level[x] = len(left) - 2*nl

	slices.SortStableFunc(order, func(u, v int) int {
		return cmp.Compare(level[v], level[u])
	})
	p := slices.Index(order, x)
	for p > 0 && level[order[p-1]] == level[x] && !t.HasEdge(order[p-1], x) {
		order[p-1], order[p] = order[p], order[p-1]
		p--
	}
	a := linarr.MustFromInverse(order)
	return linarr.SumEdgeLengths(t, a), a
}
