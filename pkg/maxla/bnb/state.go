package bnb

import "github.com/matzehuels/maxla/pkg/tree"

// place puts u at pos and updates every incremental quantity. It returns
// false if propagation finds a contradiction; the caller must still call
// unplace(pos).
func (e *Engine) place(u, pos int) bool {
	t := e.p.Tree
	e.assigned[u] = true
	e.arr.Assign(u, pos)
	if e.p.Colors[u] == tree.Blue {
		e.blue++
	} else {
		e.red++
	}
	if k := e.left[u]; k > 0 {
		e.border[k]--
	}

	for _, v := range t.Neighbors(u) {
		if e.assigned[v] {
			d := pos - e.arr.Position(v)
			e.dp += d
			e.dpsm -= d
			e.eps--
			continue
		}
		e.right[u]++
		if k := e.left[v]; k > 0 {
			e.border[k]--
		}
		e.left[v]++
		e.border[e.left[v]]++
		e.eps++
		e.es--
	}
	e.dpsm += e.eps

	l := e.right[u] - e.left[u]
	e.level[u] = l
	if pos == 0 {
		e.cut[0] = l
	} else {
		e.cut[pos] = e.cut[pos-1] + l
	}
	e.countPath(u, 1)

	if pr := e.pred[u]; pr.Set() {
		e.predCount[pr.Value+e.p.maxDeg]--
	}
	e.marks[pos] = len(e.undo)
	return e.propagate(u)
}

// unplace exactly reverses place for the vertex at pos, which must be the
// last placed vertex.
func (e *Engine) unplace(pos int) {
	t := e.p.Tree
	u := e.arr.Vertex(pos)

	e.rollback(e.marks[pos])
	if pr := e.pred[u]; pr.Set() {
		e.predCount[pr.Value+e.p.maxDeg]++
	}
	e.countPath(u, -1)

	e.dpsm -= e.eps
	for _, v := range t.Neighbors(u) {
		if e.assigned[v] {
			d := pos - e.arr.Position(v)
			e.dp -= d
			e.dpsm += d
			e.eps++
			continue
		}
		e.right[u]--
		e.border[e.left[v]]--
		e.left[v]--
		if k := e.left[v]; k > 0 {
			e.border[k]++
		}
		e.eps--
		e.es++
	}
	e.level[u] = 0
	e.cut[pos] = 0
	if k := e.left[u]; k > 0 {
		e.border[k]++
	}
	if e.p.Colors[u] == tree.Blue {
		e.blue--
	} else {
		e.red--
	}
	e.arr.Unassign(u)
	e.assigned[u] = false
}

// countPath moves u in or out of the per-path counters. u's level must be
// set.
func (e *Engine) countPath(u, delta int) {
	p := e.p
	switch p.Tree.Degree(u) {
	case 1:
		e.freeLeaves -= delta
		return
	case 2:
		e.freeDeg2 -= delta
	default:
		return
	}
	idx := p.Paths.PathOf(u)
	if delta < 0 {
		e.pathAssigned[idx]--
	}
	if e.pathAssigned[idx] == 0 {
		e.untouched -= delta
	}
	if delta > 0 {
		e.pathAssigned[idx]++
	}

	switch e.level[u] {
	case 2:
		owed := e.pathPlus2[idx] < p.minPlus[idx]
		e.pathPlus2[idx] += delta
		if now := e.pathPlus2[idx] < p.minPlus[idx]; now != owed {
			if now {
				e.deficit++
			} else {
				e.deficit--
			}
		}
	case 0:
		e.pathThistles[idx] += delta
	}
}
