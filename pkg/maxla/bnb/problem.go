package bnb

import (
	"github.com/matzehuels/maxla/pkg/tree"
	"github.com/matzehuels/maxla/pkg/tree/orbits"
	"github.com/matzehuels/maxla/pkg/tree/paths"
)

type pathKind uint8

const (
	antenna pathKind = iota
	bridge
)

// run is a maximal stretch of path edges whose directions alternate in
// every arrangement the search keeps. Edge indices are inclusive.
type run struct {
	path       int
	start, end int
}

// pathEdge is a path edge seen from one of its endpoints. The edge adds
// coef*phase[run] to the level of that endpoint.
type pathEdge struct {
	run   int
	coef  int8
	other int
}

// Problem holds the tables derived from a tree that every search task reads.
// It is immutable once built and may be shared between goroutines.
type Problem struct {
	Tree   *tree.Tree
	Paths  *paths.Table
	Orbits *orbits.Orbits
	Colors []tree.Color

	numBlue, numRed int
	maxDeg          int
	numLeaves       int
	numDeg2         int

	leaves  [][]int    // leaf neighbours of every vertex, ascending
	kind    []pathKind // per path
	minPlus []int      // per path: +2 internal vertices every kept arrangement has
	runs    []run
	runVtx  [][]int      // vertices touching each run
	inc     [][]pathEdge // path edges incident to every vertex
	origin  []Origin     // how a predicted level of each vertex is derived
}

// NewProblem computes the path decomposition, orbits and colouring of t.
// t must be a valid tree.
func NewProblem(t *tree.Tree) *Problem {
	n := t.NumNodes()
	p := &Problem{
		Tree:   t,
		Paths:  paths.Find(t),
		Orbits: orbits.Compute(t),
		Colors: tree.Coloring(t),
		maxDeg: t.MaxDegree(),
		leaves: make([][]int, n),
		inc:    make([][]pathEdge, n),
		origin: make([]Origin, n),
	}
	p.numBlue, p.numRed = tree.ColorCounts(p.Colors)
	for u := 0; u < n; u++ {
		p.leaves[u] = t.Leaves(u)
		switch t.Degree(u) {
		case 1:
			p.numLeaves++
		case 2:
			p.numDeg2++
		}
	}

	p.kind = make([]pathKind, p.Paths.Len())
	p.minPlus = make([]int, p.Paths.Len())
	for i, path := range p.Paths.Paths {
		p.addPath(i, path)
	}
	for u := 0; u < n; u++ {
		p.origin[u] = p.originOf(u)
	}
	return p
}

func (p *Problem) addPath(idx int, path paths.Path) {
	t := p.Tree
	v := path.Vertices
	last := len(v) - 2 // index of the final edge

	if path.IsAntenna(t) {
		p.kind[idx] = antenna
		p.minPlus[idx] = path.NumInternal() / 2
		p.addRun(idx, 0, last)
		return
	}
	p.kind[idx] = bridge
	if path.Lowest < 0 {
		p.addRun(idx, 0, last)
		return
	}
	// the lowest internal vertex may be the bridge's only thistle
	w := path.Position(path.Lowest)
	p.minPlus[idx] = (w-1)/2 + (len(v)-2-w)/2
	p.addRun(idx, 0, w-1)
	p.addRun(idx, w, last)
}

func (p *Problem) addRun(path, start, end int) {
	r := len(p.runs)
	p.runs = append(p.runs, run{path: path, start: start, end: end})
	v := p.Paths.Paths[path].Vertices
	p.runVtx = append(p.runVtx, v[start:end+2])
	for j := start; j <= end; j++ {
		alt := int8(1)
		if (j-start)%2 == 1 {
			alt = -1
		}
		a, b := v[j], v[j+1]
		p.inc[a] = append(p.inc[a], pathEdge{run: r, coef: alt, other: b})
		p.inc[b] = append(p.inc[b], pathEdge{run: r, coef: -alt, other: a})
	}
}

func (p *Problem) originOf(u int) Origin {
	t := p.Tree
	switch t.Degree(u) {
	case 0:
		return OriginNone
	case 1:
		return OriginAntennaLeaf
	case 2:
		idx := p.Paths.PathOf(u)
		switch {
		case p.kind[idx] == antenna:
			return OriginAntennaInternal
		case p.Paths.Paths[idx].Lowest == u:
			return OriginBridgeLowest
		default:
			return OriginBridgeInternal
		}
	}
	for _, in := range p.Paths.Incident(u) {
		if p.kind[in.Path] == antenna {
			return OriginAntennaHub
		}
	}
	return OriginBridgeHub
}

// N returns the number of vertices.
func (p *Problem) N() int { return p.Tree.NumNodes() }

// Roots returns the first vertex of every search task: the smallest
// vertex of each orbit.
func (p *Problem) Roots() []int { return p.Orbits.Representatives() }
