package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/linarr/perm"
	"github.com/matzehuels/maxla/pkg/maxla/seed"
	"github.com/matzehuels/maxla/pkg/tree"
	"github.com/matzehuels/maxla/pkg/tree/treegen"
)

func TestBipartite(t *testing.T) {
	tests := []struct {
		name  string
		tr    *tree.Tree
		want  int
		order []int
	}{
		{"empty", tree.New(0), 0, []int{}},
		{"single", tree.New(1), 0, []int{0}},
		{"edge", treegen.Path(2), 1, []int{0, 1}},
		{"path3", treegen.Path(3), 3, []int{0, 2, 1}},
		{"path4", treegen.Path(4), 7, []int{2, 0, 3, 1}},
		{"star4", treegen.Star(4), 6, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, a := seed.Bipartite(tt.tr, tree.Coloring(tt.tr))
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.order, a.Inverse())
			assert.True(t, linarr.IsBipartite(tt.tr, a))
		})
	}
}

// bruteBipartite returns the largest D over all bipartite arrangements.
func bruteBipartite(tr *tree.Tree) int {
	n := tr.NumNodes()
	best := 0
	a := linarr.New(n)
	perm.Each(n, func(order []int) bool {
		for p, u := range order {
			a.Assign(u, p)
		}
		if linarr.IsBipartite(tr, a) {
			best = max(best, linarr.SumEdgeLengths(tr, a))
		}
		return true
	})
	return best
}

func TestBipartiteIsOptimalAmongBipartite(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, tr := range treegen.AllFree(n) {
			v, a := seed.Bipartite(tr, tree.Coloring(tr))
			require.NoError(t, a.Validate(n))
			assert.Equal(t, bruteBipartite(tr), v, "tree %v", tr.Edges())
			assert.Equal(t, v, linarr.SumEdgeLengths(tr, a.Mirror()))
		}
	}
}

func TestOneThistle(t *testing.T) {
	v, a, ok := seed.OneThistle(treegen.Path(3))
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Len(t, linarr.Thistles(treegen.Path(3), a), 1)

	_, _, ok = seed.OneThistle(treegen.Path(2))
	assert.False(t, ok)
	v, _, ok = seed.OneThistle(tree.New(0))
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestSeedsBoundedByOptimum(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, tr := range treegen.AllFree(n) {
			opt, _, err := linarr.MaxExhaustive(tr)
			require.NoError(t, err)

			v, a, ok := seed.OneThistle(tr)
			if ok {
				require.NoError(t, a.Validate(n))
				assert.Equal(t, v, linarr.SumEdgeLengths(tr, a))
				assert.LessOrEqual(t, v, opt)
			}

			pv, _ := seed.Planar(tr)
			assert.LessOrEqual(t, pv, opt)

			s := seed.Best(tr, tree.Coloring(tr), true)
			assert.LessOrEqual(t, s.Value, opt)
			assert.GreaterOrEqual(t, s.Value, pv)
			assert.Equal(t, s.Value, linarr.SumEdgeLengths(tr, s.Arrangement))
		}
	}
}

func TestOneThistleHighDegree(t *testing.T) {
	// the centre has 12 neighbours and only prefix splits are tried
	tr := treegen.Spider(1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2)
	v, a, ok := seed.OneThistle(tr)
	require.True(t, ok)
	require.NoError(t, a.Validate(tr.NumNodes()))
	assert.Equal(t, v, linarr.SumEdgeLengths(tr, a))
}

func TestBest(t *testing.T) {
	tr := treegen.Star(5)
	s := seed.Best(tr, tree.Coloring(tr), true)
	assert.Equal(t, seed.KindBipartite, s.Kind)
	assert.Equal(t, 10, s.Value)

	s = seed.Best(tr, tree.Coloring(tr), false)
	assert.Equal(t, seed.KindBipartite, s.Kind)
	assert.Equal(t, "bipartite", s.Kind.String())
	assert.Equal(t, "one-thistle", seed.KindOneThistle.String())
	assert.Equal(t, "planar", seed.KindPlanar.String())
}

func TestProjective(t *testing.T) {
	tests := []struct {
		name  string
		tr    *tree.Tree
		root  int
		want  int
		order []int
	}{
		{"empty", tree.New(0), 0, 0, []int{}},
		{"single", tree.New(1), 0, 0, []int{0}},
		{"edge", treegen.Path(2), 0, 1, []int{1, 0}},
		{"path5 from an end", treegen.Path(5), 0, 10, []int{1, 3, 4, 2, 0}},
		{"star5 from the centre", treegen.Star(5), 0, 10, []int{4, 3, 2, 1, 0}},
		{"spider from the centre", treegen.Spider(2, 2, 2), 0, 15, []int{5, 6, 3, 4, 1, 2, 0}},
		{"spider from a leg", treegen.Spider(1, 2, 3), 2, 21, []int{3, 0, 5, 6, 4, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, a := seed.Projective(tt.tr, tt.root)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.order, a.Inverse())
			assert.Equal(t, v, linarr.SumEdgeLengths(tt.tr, a))
		})
	}
}

// crossing reports whether two edges of tr cross in a, or, if root >= 0,
// whether an edge passes over root.
func crossing(tr *tree.Tree, a linarr.Arrangement, root int) bool {
	edges := tr.Edges()
	span := func(e tree.Edge) (int, int) {
		p, q := a.Position(e.U), a.Position(e.V)
		return min(p, q), max(p, q)
	}
	for i, e := range edges {
		l1, r1 := span(e)
		if root >= 0 && l1 < a.Position(root) && a.Position(root) < r1 {
			return true
		}
		for _, f := range edges[i+1:] {
			l2, r2 := span(f)
			if (l1 < l2 && l2 < r1 && r1 < r2) || (l2 < l1 && l1 < r2 && r2 < r1) {
				return true
			}
		}
	}
	return false
}

// brutePlanar returns the largest D over all arrangements without
// crossings, and over those that also leave root uncovered.
func brutePlanar(tr *tree.Tree, root int) (planar, projective int) {
	n := tr.NumNodes()
	a := linarr.New(n)
	perm.Each(n, func(order []int) bool {
		for p, u := range order {
			a.Assign(u, p)
		}
		if crossing(tr, a, -1) {
			return true
		}
		d := linarr.SumEdgeLengths(tr, a)
		planar = max(planar, d)
		if !crossing(tr, a, root) {
			projective = max(projective, d)
		}
		return true
	})
	return planar, projective
}

func TestPlanarIsOptimalAmongPlanar(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, tr := range treegen.AllFree(n) {
			wantPlanar, wantProj := brutePlanar(tr, n-1)

			v, a := seed.Planar(tr)
			require.NoError(t, a.Validate(n))
			assert.Equal(t, wantPlanar, v, "tree %v", tr.Edges())
			assert.Equal(t, v, linarr.SumEdgeLengths(tr, a))
			assert.False(t, crossing(tr, a, -1))

			v, a = seed.Projective(tr, n-1)
			require.NoError(t, a.Validate(n))
			assert.Equal(t, wantProj, v, "tree %v rooted at %d", tr.Edges(), n-1)
			assert.False(t, crossing(tr, a, n-1))
		}
	}
}
