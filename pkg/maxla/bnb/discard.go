package bnb

import "github.com/matzehuels/maxla/pkg/tree"

// discard decides whether unassigned u may be placed at pos > 0. The rules
// only reject prefixes that cannot be extended to a maximum arrangement, or
// whose maximum arrangements share a level signature with one kept
// elsewhere in the search.
func (e *Engine) discard(u, pos int) Reason {
	p := e.p
	t := p.Tree

	blue, red := e.blue, e.red
	if p.Colors[u] == tree.Blue {
		blue++
	} else {
		red++
	}
	if (blue == p.numBlue && red == 0) || (red == p.numRed && blue == 0) {
		return ReasonBipartite
	}

	deg := t.Degree(u)
	lu := deg - 2*e.left[u]

	if deg == 2 && lu == 0 {
		idx := p.Paths.PathOf(u)
		if p.kind[idx] == antenna {
			return ReasonAntennaThistle
		}
		if e.pathThistles[idx] > 0 || p.Paths.Paths[idx].Lowest != u {
			return ReasonBridgeThistle
		}
	}

	prev := e.arr.Vertex(pos - 1)
	pl := e.level[prev]
	if pl < lu {
		return ReasonNotNonIncreasing
	}
	if pl > 0 && lu <= 0 && pos < e.n-1 && e.cut[pos-1] < (e.n-1)/2 {
		return ReasonCut
	}
	if pl == lu && prev > u {
		return ReasonTieBreak
	}

	for _, v := range t.Neighbors(u) {
		if e.assigned[v] {
			if e.level[v] <= lu {
				return ReasonAdjacentLevel
			}
			continue
		}
		// v lands to the right of u with a strictly smaller level
		if lu <= -t.Degree(v) {
			return ReasonNeighborInfeasible
		}
		if pv := e.pred[v]; pv.Set() && pv.Value >= lu {
			return ReasonNeighborInfeasible
		}
	}

	if pu := e.pred[u]; pu.Set() && pu.Value != lu {
		return ReasonPrediction
	}
	if e.predictedAbove(lu) {
		return ReasonPredictionAhead
	}
	if r := e.pathBudget(u, lu); r != ReasonNone {
		return r
	}

	if deg == 1 {
		for _, l := range p.leaves[t.Neighbors(u)[0]] {
			if l >= u {
				break
			}
			if !e.assigned[l] {
				return ReasonLeafOrder
			}
		}
	}

	if u != e.first {
		orb := p.Orbits.Orbit(p.Orbits.Of(u))
		for _, w := range orb {
			if w >= u {
				break
			}
			if !e.assigned[w] && tree.AreSiblings(e.parent, u, w) {
				return ReasonOrbitOrder
			}
		}
	}
	return ReasonNone
}

// pathBudget rejects u when a later vertex would need a level that the
// non-increasing order no longer allows once u takes level lu.
func (e *Engine) pathBudget(u, lu int) Reason {
	deg := e.p.Tree.Degree(u)

	leaves := e.freeLeaves
	if deg == 1 {
		leaves--
	}
	if lu < -1 && leaves > 0 {
		return ReasonMissingDegree1
	}

	internal := e.freeDeg2
	if deg == 2 {
		internal--
	}
	if lu < -2 && internal > 0 {
		if e.untouched > 0 {
			return ReasonMissingPath
		}
		return ReasonMissingDegree2Minus
	}

	if lu < 2 && e.deficit > 0 {
		return ReasonMissingDegree2Plus
	}
	return ReasonNone
}
