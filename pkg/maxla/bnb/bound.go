package bnb

import (
	"cmp"
	"slices"
)

// upperBound returns an upper bound on D over all completions of the
// prefix that fills positions 0..pos-1.
//
// Edges inside the prefix contribute their exact length. An edge from the
// prefix to the suffix contributes its length up to pos plus at most the
// distance its suffix endpoint can be pushed to the right; border vertices
// with more assigned neighbours take the farthest positions. The m edges
// among the n' suffix vertices contribute at most ⌊(4n'm − m² − 4m + m mod 2)/4⌋.
func (e *Engine) upperBound(pos int) int {
	ub := e.dp + e.dpsm

	length := e.n - 1 - pos
	for k := len(e.border) - 1; k >= 1; k-- {
		c := e.border[k]
		if c == 0 {
			continue
		}
		// lengths length, length-1, ..., length-c+1
		ub += k * (c*length - c*(c-1)/2)
		length -= c
	}

	n, m := e.n-pos, e.es
	ub += (4*n*m + m%2 - m*m - 4*m) / 4
	return ub
}

// completeIndependent finishes a prefix whose remaining vertices are
// pairwise non-adjacent. Each of them has all its neighbours in the prefix,
// so the best completion sorts them by degree. When they are all leaves
// any order is as good and index order is used.
func (e *Engine) completeIndependent(pos int) {
	t := e.p.Tree
	rest := e.rest[:0]
	allLeaves := true
	for u := 0; u < e.n; u++ {
		if !e.assigned[u] {
			rest = append(rest, u)
			allLeaves = allLeaves && t.Degree(u) == 1
		}
	}
	if !allLeaves {
		slices.SortStableFunc(rest, func(u, v int) int {
			return cmp.Compare(t.Degree(u), t.Degree(v))
		})
	}

	d := e.dp
	for i, u := range rest {
		q := pos + i
		e.arr.Assign(u, q)
		for _, v := range t.Neighbors(u) {
			d += q - e.arr.Position(v)
		}
	}
	e.coll.Add(d, e.arr)
	for _, u := range rest {
		e.arr.Unassign(u)
	}
	e.rest = rest
}
