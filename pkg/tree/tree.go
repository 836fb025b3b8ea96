package tree

import (
	"slices"

	"github.com/matzehuels/maxla/pkg/errors"
)

// Edge is an undirected edge between vertices U and V.
// Edges returned by [Tree.Edges] always have U < V.
type Edge struct {
	U, V int
}

// Sorted returns the edge with its endpoints in increasing order.
func (e Edge) Sorted() Edge {
	if e.U > e.V {
		return Edge{e.V, e.U}
	}
	return e
}

// Tree is an undirected forest on the vertices 0..n-1 that becomes a free
// tree once n-1 edges have been added.
//
// The zero value is an empty tree with no vertices. Use [New] or [FromEdges]
// to create a tree with vertices. Tree is not safe for concurrent mutation;
// once built it may be shared freely between goroutines for reading.
type Tree struct {
	adj    [][]int
	edges  int
	uf     []int // union-find parents, used to reject cycles
	maxDeg int
}

// New creates a tree with n vertices and no edges.
// Negative n is treated as zero.
func New(n int) *Tree {
	n = max(n, 0)
	t := &Tree{
		adj: make([][]int, n),
		uf:  make([]int, n),
	}
	for i := range t.uf {
		t.uf[i] = i
	}
	return t
}

// FromEdges creates a tree with n vertices and the given edges.
// It returns an error if any edge is invalid; see [Tree.AddEdge].
// The result is not required to be connected; call [Tree.Validate] for that.
func FromEdges(n int, edges []Edge) (*Tree, error) {
	if err := errors.ValidateVertexCount(n); err != nil {
		return nil, err
	}
	t := New(n)
	for _, e := range edges {
		if err := t.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustFromEdges is like [FromEdges] but panics on error.
// It is intended for tests and package-level fixtures.
func MustFromEdges(n int, edges []Edge) *Tree {
	t, err := FromEdges(n, edges)
	if err != nil {
		panic(err)
	}
	return t
}

// AddEdge adds the undirected edge {u, v}.
//
// It returns an error with code [errors.ErrCodeInvalidTree] if either
// endpoint is out of range, if u == v, or if the edge would close a cycle
// (which includes duplicate edges).
func (t *Tree) AddEdge(u, v int) error {
	n := len(t.adj)
	if err := errors.ValidateVertex(u, n); err != nil {
		return err
	}
	if err := errors.ValidateVertex(v, n); err != nil {
		return err
	}
	if u == v {
		return errors.New(errors.ErrCodeInvalidTree, "self-loop at vertex %d", u)
	}
	ru, rv := t.find(u), t.find(v)
	if ru == rv {
		return errors.New(errors.ErrCodeInvalidTree, "edge {%d, %d} closes a cycle", u, v)
	}
	t.uf[ru] = rv

	t.adj[u] = append(t.adj[u], v)
	t.adj[v] = append(t.adj[v], u)
	t.edges++
	t.maxDeg = max(t.maxDeg, len(t.adj[u]), len(t.adj[v]))
	return nil
}

func (t *Tree) find(u int) int {
	for t.uf[u] != u {
		t.uf[u] = t.uf[t.uf[u]]
		u = t.uf[u]
	}
	return u
}

// NumNodes returns the number of vertices.
func (t *Tree) NumNodes() int { return len(t.adj) }

// NumEdges returns the number of edges added so far.
func (t *Tree) NumEdges() int { return t.edges }

// Degree returns the number of neighbours of u.
func (t *Tree) Degree(u int) int { return len(t.adj[u]) }

// MaxDegree returns the largest vertex degree, or 0 for an edgeless tree.
func (t *Tree) MaxDegree() int { return t.maxDeg }

// Neighbors returns the neighbours of u in insertion order.
// The returned slice is owned by the tree and must not be modified.
func (t *Tree) Neighbors(u int) []int { return t.adj[u] }

// HasEdge reports whether u and v are adjacent.
func (t *Tree) HasEdge(u, v int) bool {
	a, b := u, v
	if len(t.adj[a]) > len(t.adj[b]) {
		a, b = b, a
	}
	return slices.Contains(t.adj[a], b)
}

// Edges returns all edges with U < V, sorted lexicographically.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, 0, t.edges)
	for u, nbrs := range t.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{u, v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})
	return out
}

// Leaves returns the degree-1 neighbours of u in increasing index order.
func (t *Tree) Leaves(u int) []int {
	var out []int
	for _, v := range t.adj[u] {
		if len(t.adj[v]) == 1 {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// IsTree reports whether the graph is connected and acyclic.
// The empty graph counts as a tree.
func (t *Tree) IsTree() bool {
	n := len(t.adj)
	return n == 0 || t.edges == n-1
}

// Validate returns an error with code [errors.ErrCodeInvalidTree] unless the
// graph is a free tree. Since AddEdge already rejects cycles, a forest with
// exactly n-1 edges is connected.
func (t *Tree) Validate() error {
	if t.IsTree() {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidTree,
		"graph is not connected: %d vertices but %d edges", len(t.adj), t.edges)
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		adj:    make([][]int, len(t.adj)),
		edges:  t.edges,
		uf:     slices.Clone(t.uf),
		maxDeg: t.maxDeg,
	}
	for u, nbrs := range t.adj {
		c.adj[u] = slices.Clone(nbrs)
	}
	return c
}
