// Package treegen builds free trees: named families (paths, stars,
// caterpillars, spiders), uniformly random labelled trees via Prüfer
// sequences, and the complete list of unlabelled trees of a given order.
//
// Generators never panic on well-formed parameters. Random generators take an
// explicit *rand.Rand so that results are reproducible for a fixed seed.
package treegen

import (
	"math/rand/v2"

	"github.com/matzehuels/maxla/pkg/errors"
	"github.com/matzehuels/maxla/pkg/tree"
	"github.com/matzehuels/maxla/pkg/tree/orbits"
)

// Path returns the path 0 - 1 - ... - n-1.
func Path(n int) *tree.Tree {
	t := tree.New(n)
	for i := 1; i < n; i++ {
		mustAdd(t, i-1, i)
	}
	return t
}

// Star returns the star with centre 0 and leaves 1..n-1.
func Star(n int) *tree.Tree {
	t := tree.New(n)
	for i := 1; i < n; i++ {
		mustAdd(t, 0, i)
	}
	return t
}

// Caterpillar returns a spine path 0..spine-1 where every spine vertex has
// legs additional leaves. Leaves are numbered after the spine.
func Caterpillar(spine, legs int) *tree.Tree {
	spine = max(spine, 0)
	legs = max(legs, 0)
	t := tree.New(spine * (1 + legs))
	next := spine
	for s := 0; s < spine; s++ {
		if s > 0 {
			mustAdd(t, s-1, s)
		}
		for range legs {
			mustAdd(t, s, next)
			next++
		}
	}
	return t
}

// Spider returns a tree with centre 0 and one hanging path per entry of legs,
// each of the given length. Non-positive lengths are ignored.
func Spider(legs ...int) *tree.Tree {
	n := 1
	for _, l := range legs {
		n += max(l, 0)
	}
	t := tree.New(n)
	next := 1
	for _, l := range legs {
		prev := 0
		for range max(l, 0) {
			mustAdd(t, prev, next)
			prev = next
			next++
		}
	}
	return t
}

// FromPrufer decodes a Prüfer sequence into the labelled tree on
// len(seq)+2 vertices it encodes.
func FromPrufer(seq []int) (*tree.Tree, error) {
	n := len(seq) + 2
	if err := errors.ValidateVertexCount(n); err != nil {
		return nil, err
	}
	deg := make([]int, n)
	for i := range deg {
		deg[i] = 1
	}
	for _, v := range seq {
		if err := errors.ValidateVertex(v, n); err != nil {
			return nil, err
		}
		deg[v]++
	}

	t := tree.New(n)
	ptr := 0
	for deg[ptr] != 1 {
		ptr++
	}
	leaf := ptr
	for _, v := range seq {
		mustAdd(t, leaf, v)
		deg[leaf]--
		deg[v]--
		if deg[v] == 1 && v < ptr {
			leaf = v
			continue
		}
		ptr++
		for deg[ptr] != 1 {
			ptr++
		}
		leaf = ptr
	}
	// two vertices of degree one remain: leaf and n-1
	mustAdd(t, leaf, n-1)
	return t, nil
}

// Random returns a labelled tree on n vertices drawn uniformly at random
// from all n^(n-2) labelled trees.
func Random(n int, rng *rand.Rand) *tree.Tree {
	switch {
	case n <= 0:
		return tree.New(0)
	case n == 1:
		return tree.New(1)
	}
	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = rng.IntN(n)
	}
	t, err := FromPrufer(seq)
	if err != nil {
		panic(err)
	}
	return t
}

// AllFree returns one representative of every isomorphism class of free
// trees on n vertices. Trees are grown by attaching a leaf to every vertex
// of every tree on n-1 vertices and keeping the first tree of each class.
// The number of trees grows exponentially; n up to about 16 is practical.
func AllFree(n int) []*tree.Tree {
	if n <= 0 {
		return nil
	}
	level := []*tree.Tree{tree.New(1)}
	for size := 2; size <= n; size++ {
		seen := make(map[string]bool)
		var next []*tree.Tree
		for _, base := range level {
			for v := 0; v < size-1; v++ {
				t := grow(base, v)
				key := orbits.Canonical(t)
				if seen[key] {
					continue
				}
				seen[key] = true
				next = append(next, t)
			}
		}
		level = next
	}
	return level
}

func grow(base *tree.Tree, v int) *tree.Tree {
	n := base.NumNodes()
	t := tree.New(n + 1)
	for _, e := range base.Edges() {
		mustAdd(t, e.U, e.V)
	}
	mustAdd(t, v, n)
	return t
}

// Relabel returns a copy of t in which vertex v is renamed perm[v].
// perm must be a permutation of 0..n-1.
func Relabel(t *tree.Tree, perm []int) (*tree.Tree, error) {
	n := t.NumNodes()
	if len(perm) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"permutation has %d entries, tree has %d vertices", len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "not a permutation of 0..%d", n-1)
		}
		seen[p] = true
	}
	out := tree.New(n)
	for _, e := range t.Edges() {
		if err := out.AddEdge(perm[e.U], perm[e.V]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func mustAdd(t *tree.Tree, u, v int) {
	if err := t.AddEdge(u, v); err != nil {
		panic(err)
	}
}
