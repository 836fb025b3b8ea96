// Package collector keeps the set of maximum arrangements found by a search:
// the best D seen so far and one representative arrangement per distinct
// level signature attaining it.
//
// Two arrangements with the same level signature are interchangeable for
// the maximum linear arrangement problem, so only the first one added is
// kept. A Set is not safe for concurrent use; each search worker owns one
// and the sets are merged afterwards.
package collector

import (
	"encoding/binary"
	"slices"

	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/tree"
)

type entry struct {
	levels []int
	arr    linarr.Arrangement
}

// Set is a maximum-arrangement set for one tree.
type Set struct {
	t       *tree.Tree
	best    int
	entries map[string]entry
	buf     []byte
}

// New returns an empty set for t. Its best value is -1.
func New(t *tree.Tree) *Set {
	return &Set{t: t, best: -1, entries: make(map[string]entry)}
}

// Best returns the largest D added so far, or -1 if the set is empty.
func (s *Set) Best() int { return s.best }

// Len returns the number of distinct level signatures attaining Best.
func (s *Set) Len() int { return len(s.entries) }

// Add offers an arrangement with sum of edge lengths value. A larger value
// replaces the whole set; an equal value is kept if its level signature is
// new. Add reports whether a was stored. The set keeps a copy of a.
func (s *Set) Add(value int, a linarr.Arrangement) bool {
	if value < s.best {
		return false
	}
	if value > s.best {
		s.best = value
		clear(s.entries)
	}
	levels := linarr.Levels(s.t, a)
	key := s.key(levels)
	if _, ok := s.entries[key]; ok {
		return false
	}
	s.entries[key] = entry{levels: levels, arr: a.Clone()}
	return true
}

// Merge adds every representative of other into s. Entries of the side
// with the smaller best value are dropped.
func (s *Set) Merge(other *Set) {
	switch {
	case other.best < s.best:
		return
	case other.best > s.best:
		s.best = other.best
		clear(s.entries)
	}
	for k, e := range other.entries {
		if _, ok := s.entries[k]; !ok {
			s.entries[k] = e
		}
	}
}

// Representatives returns one arrangement per level signature attaining
// Best, ordered by signature, lexicographically decreasing.
func (s *Set) Representatives() []linarr.Arrangement {
	es := make([]entry, 0, len(s.entries))
	for _, e := range s.entries {
		es = append(es, e)
	}
	slices.SortFunc(es, func(a, b entry) int {
		return slices.Compare(b.levels, a.levels)
	})
	out := make([]linarr.Arrangement, len(es))
	for i, e := range es {
		out[i] = e.arr.Clone()
	}
	return out
}

// Signatures returns the level signatures attaining Best, in the same order
// as Representatives.
func (s *Set) Signatures() [][]int {
	out := make([][]int, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, slices.Clone(e.levels))
	}
	slices.SortFunc(out, func(a, b []int) int { return slices.Compare(b, a) })
	return out
}

func (s *Set) key(levels []int) string {
	s.buf = s.buf[:0]
	for _, l := range levels {
		s.buf = binary.AppendVarint(s.buf, int64(l))
	}
	return string(s.buf)
}
