// Package paths decomposes a free tree into its maximal branchless paths.
//
// A branchless path is a maximal sequence of vertices v0, v1, ..., vk such
// that consecutive vertices are adjacent, the internal vertices v1..v(k-1)
// all have degree 2, and the endpoints have degree different from 2. The
// endpoints are called hubs. Every edge of the tree belongs to exactly one
// branchless path and every degree-2 vertex is internal to exactly one.
//
// Two kinds of path matter to the arrangement solvers:
//
//   - a bridge joins two hubs of degree at least 3
//   - an antenna joins a hub to a leaf (a tree that is itself a path is a
//     single path with two leaf endpoints and is treated as an antenna)
//
// Each path records its lowest internal vertex (by index). Canonical choices
// that break symmetry along a bridge are anchored at that vertex.
package paths

import (
	"github.com/matzehuels/maxla/pkg/tree"
)

// Path is a maximal branchless path. Vertices runs from H1 to H2.
type Path struct {
	Vertices []int
	H1, H2   int
	// Lowest is the smallest internal vertex, or -1 when the path is a
	// single edge and has no internal vertices.
	Lowest int
}

// Len returns the number of vertices, endpoints included.
func (p Path) Len() int { return len(p.Vertices) }

// Internal returns the internal (degree-2) vertices in path order.
func (p Path) Internal() []int {
	if len(p.Vertices) <= 2 {
		return nil
	}
	return p.Vertices[1 : len(p.Vertices)-1]
}

// NumInternal returns the number of internal vertices.
func (p Path) NumInternal() int { return max(len(p.Vertices)-2, 0) }

// Position returns the index of v in Vertices, or -1.
func (p Path) Position(v int) int {
	for i, u := range p.Vertices {
		if u == v {
			return i
		}
	}
	return -1
}

// IsAntenna reports whether one of the endpoints is a leaf.
func (p Path) IsAntenna(t *tree.Tree) bool {
	return min(t.Degree(p.H1), t.Degree(p.H2)) == 1
}

// IsBridge reports whether both endpoints have degree at least 3.
func (p Path) IsBridge(t *tree.Tree) bool {
	return min(t.Degree(p.H1), t.Degree(p.H2)) >= 3
}

// Incidence ties a path endpoint to the path it terminates.
type Incidence struct {
	Path int  // index into Table.Paths
	Last bool // true when the vertex is H2 (the final vertex), false for H1
}

// Table is the full decomposition of a tree with per-vertex lookups.
type Table struct {
	Paths    []Path
	internal []int         // internal vertex -> path index, -1 otherwise
	position []int         // internal vertex -> index within its path
	incident [][]Incidence // endpoint -> paths that end there
}

// Find computes all branchless paths of t.
//
// Paths are discovered by scanning the vertices of degree other than 2 in
// increasing index order and walking out of each through its neighbours in
// adjacency order. A single-edge path between two such vertices is reported
// once, from its lower endpoint; longer paths are reported once, from the
// endpoint that reaches them first.
func Find(t *tree.Tree) *Table {
	n := t.NumNodes()
	tab := &Table{
		internal: make([]int, n),
		position: make([]int, n),
		incident: make([][]Incidence, n),
	}
	for i := range tab.internal {
		tab.internal[i] = -1
		tab.position[i] = -1
	}
	visited := make([]bool, n)

	for u := 0; u < n; u++ {
		if t.Degree(u) == 2 {
			continue
		}
		for _, v := range t.Neighbors(u) {
			if t.Degree(v) != 2 {
				if u < v {
					tab.add(Path{Vertices: []int{u, v}, H1: u, H2: v, Lowest: -1})
				}
				continue
			}
			if visited[v] {
				continue
			}
			seq := []int{u}
			prev, cur := u, v
			for t.Degree(cur) == 2 {
				visited[cur] = true
				seq = append(seq, cur)
				next := t.Neighbors(cur)[0]
				if next == prev {
					next = t.Neighbors(cur)[1]
				}
				prev, cur = cur, next
			}
			seq = append(seq, cur)
			p := Path{Vertices: seq, H1: u, H2: cur, Lowest: n}
			for _, w := range seq[1 : len(seq)-1] {
				p.Lowest = min(p.Lowest, w)
			}
			tab.add(p)
		}
	}
	return tab
}

func (tab *Table) add(p Path) {
	idx := len(tab.Paths)
	tab.Paths = append(tab.Paths, p)
	for i, w := range p.Vertices {
		if i == 0 || i == len(p.Vertices)-1 {
			continue
		}
		tab.internal[w] = idx
		tab.position[w] = i
	}
	tab.incident[p.H1] = append(tab.incident[p.H1], Incidence{Path: idx})
	tab.incident[p.H2] = append(tab.incident[p.H2], Incidence{Path: idx, Last: true})
}

// Len returns the number of paths.
func (tab *Table) Len() int { return len(tab.Paths) }

// PathOf returns the index of the path that has v as an internal vertex,
// or -1 when v has degree other than 2.
func (tab *Table) PathOf(v int) int { return tab.internal[v] }

// PositionOf returns the index of internal vertex v within its path, or -1.
func (tab *Table) PositionOf(v int) int { return tab.position[v] }

// Incident returns the paths that have v as an endpoint. Only vertices of
// degree other than 2 are endpoints; a hub of degree d has d incidences.
func (tab *Table) Incident(v int) []Incidence { return tab.incident[v] }
