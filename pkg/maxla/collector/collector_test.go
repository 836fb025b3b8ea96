package collector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/maxla/collector"
	"github.com/matzehuels/maxla/pkg/tree/treegen"
)

func TestAdd(t *testing.T) {
	tr := treegen.Star(4)
	s := collector.New(tr)
	assert.Equal(t, -1, s.Best())
	assert.Equal(t, 0, s.Len())

	low := linarr.MustFromInverse([]int{1, 0, 2, 3})
	assert.True(t, s.Add(linarr.SumEdgeLengths(tr, low), low))
	assert.Equal(t, 4, s.Best())

	first := linarr.MustFromInverse([]int{0, 1, 2, 3})
	assert.True(t, s.Add(6, first))
	assert.Equal(t, 6, s.Best())
	assert.Equal(t, 1, s.Len())

	// same signature, different leaves
	assert.False(t, s.Add(6, linarr.MustFromInverse([]int{0, 3, 2, 1})))
	assert.False(t, s.Add(4, low))
	assert.True(t, s.Add(6, first.Mirror()))
	assert.Equal(t, 2, s.Len())

	reps := s.Representatives()
	require.Len(t, reps, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, reps[0].Inverse())
	assert.Equal(t, []int{3, 2, 1, 0}, reps[1].Inverse())
	assert.Equal(t, [][]int{{3, -1, -1, -1}, {1, 1, 1, -3}}, s.Signatures())
}

func TestAddCopies(t *testing.T) {
	tr := treegen.Path(3)
	s := collector.New(tr)
	a := linarr.MustFromInverse([]int{0, 2, 1})
	require.True(t, s.Add(3, a))
	a.Assign(1, 0)
	a.Assign(0, 2)
	assert.Equal(t, []int{0, 2, 1}, s.Representatives()[0].Inverse())
}

func TestMerge(t *testing.T) {
	tr := treegen.Star(4)
	centreFirst := linarr.MustFromInverse([]int{0, 1, 2, 3})
	centreLast := centreFirst.Mirror()

	a := collector.New(tr)
	a.Add(6, centreFirst)
	b := collector.New(tr)
	b.Add(6, centreLast)
	b.Add(6, linarr.MustFromInverse([]int{1, 2, 3, 0}))
	a.Merge(b)
	assert.Equal(t, 6, a.Best())
	assert.Equal(t, 2, a.Len())

	worse := collector.New(tr)
	worse.Add(4, linarr.MustFromInverse([]int{1, 0, 2, 3}))
	a.Merge(worse)
	assert.Equal(t, 6, a.Best())
	assert.Equal(t, 2, a.Len())

	worse.Merge(a)
	assert.Equal(t, 6, worse.Best())
	assert.Equal(t, 2, worse.Len())

	empty := collector.New(tr)
	empty.Merge(collector.New(tr))
	assert.Equal(t, -1, empty.Best())
}
