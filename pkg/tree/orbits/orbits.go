// Package orbits computes the vertex orbits of a free tree: the classes of
// vertices that are mapped onto each other by some automorphism.
//
// Two vertices u and v of a tree lie in the same orbit exactly when the tree
// rooted at u is isomorphic (as a rooted tree) to the tree rooted at v. The
// package assigns every rooted subtree an integer code with the AHU scheme:
// the code of a vertex seen from its parent is the interned, sorted list of
// its children's codes. Codes are memoised per directed edge, so computing
// the code of the tree rooted at every vertex costs little more than a single
// rooting.
package orbits

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/matzehuels/maxla/pkg/tree"
)

// Orbits is the partition of the vertex set into automorphism classes.
type Orbits struct {
	orbits [][]int
	of     []int
}

// Len returns the number of orbits.
func (o *Orbits) Len() int { return len(o.orbits) }

// Orbit returns the vertices of orbit i in increasing order.
// The returned slice must not be modified.
func (o *Orbits) Orbit(i int) []int { return o.orbits[i] }

// Of returns the index of the orbit containing v.
func (o *Orbits) Of(v int) int { return o.of[v] }

// Representatives returns the smallest vertex of every orbit, in orbit order.
func (o *Orbits) Representatives() []int {
	out := make([]int, len(o.orbits))
	for i, orb := range o.orbits {
		out[i] = orb[0]
	}
	return out
}

// Compute returns the orbits of t. Orbits are ordered by their smallest
// vertex and each orbit lists its vertices in increasing order.
func Compute(t *tree.Tree) *Orbits {
	n := t.NumNodes()
	c := newCoder(t)

	o := &Orbits{of: make([]int, n)}
	byCode := make(map[int]int)
	for u := 0; u < n; u++ {
		code := c.code(u, -1)
		idx, ok := byCode[code]
		if !ok {
			idx = len(o.orbits)
			byCode[code] = idx
			o.orbits = append(o.orbits, nil)
		}
		o.orbits[idx] = append(o.orbits[idx], u)
		o.of[u] = idx
	}
	return o
}

// RootedCodes returns, for every vertex u, an integer identifying the
// isomorphism class of t rooted at u. Equal codes mean isomorphic rootings.
func RootedCodes(t *tree.Tree) []int {
	c := newCoder(t)
	out := make([]int, t.NumNodes())
	for u := range out {
		out[u] = c.code(u, -1)
	}
	return out
}

type coder struct {
	t      *tree.Tree
	n      int
	memo   map[int]int
	intern map[string]int
	buf    []byte
}

func newCoder(t *tree.Tree) *coder {
	return &coder{
		t:      t,
		n:      t.NumNodes(),
		memo:   make(map[int]int, 3*t.NumNodes()),
		intern: make(map[string]int),
	}
}

// code returns the class of the subtree hanging from v when p is its parent
// (p == -1 roots the whole tree at v).
func (c *coder) code(v, p int) int {
	key := v*(c.n+1) + p + 1
	if id, ok := c.memo[key]; ok {
		return id
	}
	children := make([]int, 0, c.t.Degree(v))
	for _, w := range c.t.Neighbors(v) {
		if w != p {
			children = append(children, c.code(w, v))
		}
	}
	slices.Sort(children)

	c.buf = c.buf[:0]
	for _, ch := range children {
		c.buf = binary.AppendUvarint(c.buf, uint64(ch))
	}
	id, ok := c.intern[string(c.buf)]
	if !ok {
		id = len(c.intern)
		c.intern[string(c.buf)] = id
	}
	c.memo[key] = id
	return id
}

// Canonical returns a string that identifies the isomorphism class of t:
// two trees have the same canonical string iff they are isomorphic. The tree
// is rooted at its centre; with two centres the smaller of the two rooted
// encodings is used.
func Canonical(t *tree.Tree) string {
	centers := tree.Centers(t)
	if len(centers) == 0 {
		return ""
	}
	best := ""
	for i, r := range centers {
		var sb strings.Builder
		encode(t, r, -1, &sb)
		if s := sb.String(); i == 0 || s < best {
			best = s
		}
	}
	return best
}

func encode(t *tree.Tree, v, p int, sb *strings.Builder) {
	var parts []string
	for _, w := range t.Neighbors(v) {
		if w == p {
			continue
		}
		var child strings.Builder
		encode(t, w, v, &child)
		parts = append(parts, child.String())
	}
	slices.Sort(parts)
	sb.WriteByte('(')
	for _, s := range parts {
		sb.WriteString(s)
	}
	sb.WriteByte(')')
}
