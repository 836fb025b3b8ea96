package bnb

import "github.com/matzehuels/maxla/pkg/errors"

// checkInvariants recomputes the incremental state from scratch and
// reports the first mismatch. It is slow and only run from tests.
func (e *Engine) checkInvariants() error {
	t := e.p.Tree
	placed := 0
	for u := 0; u < e.n; u++ {
		if e.assigned[u] {
			placed++
		}
	}

	dp, eps, es := 0, 0, 0
	border := make([]int, len(e.border))
	for u := 0; u < e.n; u++ {
		k := 0
		for _, v := range t.Neighbors(u) {
			switch {
			case e.assigned[u] && e.assigned[v] && u < v:
				dp += abs(e.arr.Position(u) - e.arr.Position(v))
			case e.assigned[u] && !e.assigned[v]:
				eps++
			case !e.assigned[u] && !e.assigned[v] && u < v:
				es++
			case !e.assigned[u] && e.assigned[v]:
				k++
			}
		}
		if !e.assigned[u] {
			if k != e.left[u] {
				return errors.New(errors.ErrCodeInternal, "vertex %d: left degree %d, want %d", u, e.left[u], k)
			}
			if k > 0 {
				border[k]++
			}
			continue
		}
		if e.left[u]+e.right[u] != t.Degree(u) {
			return errors.New(errors.ErrCodeInternal, "vertex %d: left+right = %d, degree %d",
				u, e.left[u]+e.right[u], t.Degree(u))
		}
		if e.level[u] != e.right[u]-e.left[u] {
			return errors.New(errors.ErrCodeInternal, "vertex %d: level %d", u, e.level[u])
		}
	}
	if dp != e.dp || eps != e.eps || es != e.es {
		return errors.New(errors.ErrCodeInternal, "edge sums: dp=%d/%d eps=%d/%d es=%d/%d",
			e.dp, dp, e.eps, eps, e.es, es)
	}
	for k := range border {
		if k > 0 && border[k] != e.border[k] {
			return errors.New(errors.ErrCodeInternal, "border vertices with %d assigned neighbours: %d, want %d",
				k, e.border[k], border[k])
		}
	}

	cut := 0
	for q := 0; q < placed; q++ {
		u := e.arr.Vertex(q)
		if u < 0 {
			return errors.New(errors.ErrCodeInternal, "position %d is empty", q)
		}
		cut += e.level[u]
		if e.cut[q] != cut {
			return errors.New(errors.ErrCodeInternal, "cut after %d: %d, want %d", q, e.cut[q], cut)
		}
		if q == 0 {
			continue
		}
		prev := e.arr.Vertex(q - 1)
		if e.level[prev] < e.level[u] {
			return errors.New(errors.ErrCodeInternal, "levels increase at position %d", q)
		}
		if e.level[prev] == e.level[u] && prev > u {
			return errors.New(errors.ErrCodeInternal, "equal levels out of order at position %d", q)
		}
		for _, v := range t.Neighbors(u) {
			if e.assigned[v] && e.arr.Position(v) < q && e.level[v] <= e.level[u] {
				return errors.New(errors.ErrCodeInternal, "neighbours %d and %d: level of left one not larger", v, u)
			}
		}
	}

	counts := make([]int, len(e.predCount))
	for u := 0; u < e.n; u++ {
		if !e.assigned[u] && e.pred[u].Set() {
			counts[e.pred[u].Value+e.p.maxDeg]++
		}
	}
	for i := range counts {
		if counts[i] != e.predCount[i] {
			return errors.New(errors.ErrCodeInternal, "prediction count for level %d: %d, want %d",
				i-e.p.maxDeg, e.predCount[i], counts[i])
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
