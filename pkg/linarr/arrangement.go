// Package linarr represents linear arrangements of tree vertices and
// evaluates them: the sum of edge lengths D, level values, cut widths and
// thistle vertices. It also contains an exhaustive maximum arrangement
// solver that serves as a test oracle for small trees.
//
// An arrangement places the n vertices of a tree at the positions 0..n-1.
// It is stored in both directions, so that Position and Vertex are O(1).
package linarr

import (
	"fmt"
	"slices"

	"github.com/matzehuels/maxla/pkg/errors"
)

// Arrangement is a bijection between vertices and positions. The zero value
// is the empty arrangement.
type Arrangement struct {
	pos []int // vertex -> position
	inv []int // position -> vertex
}

// New returns an arrangement of n vertices with nothing placed yet.
// Position and Vertex return -1 until Assign is called.
func New(n int) Arrangement {
	a := Arrangement{pos: make([]int, n), inv: make([]int, n)}
	for i := 0; i < n; i++ {
		a.pos[i] = -1
		a.inv[i] = -1
	}
	return a
}

// Identity returns the arrangement that places vertex i at position i.
func Identity(n int) Arrangement {
	a := Arrangement{pos: make([]int, n), inv: make([]int, n)}
	for i := 0; i < n; i++ {
		a.pos[i] = i
		a.inv[i] = i
	}
	return a
}

// FromInverse builds an arrangement from the sequence of vertices read left
// to right. It returns an error unless order is a permutation of 0..n-1.
func FromInverse(order []int) (Arrangement, error) {
	n := len(order)
	a := New(n)
	for p, u := range order {
		if u < 0 || u >= n {
			return Arrangement{}, errors.New(errors.ErrCodeInvalidArrangement,
				"vertex %d at position %d out of range [0, %d)", u, p, n)
		}
		if a.pos[u] >= 0 {
			return Arrangement{}, errors.New(errors.ErrCodeInvalidArrangement,
				"vertex %d placed twice", u)
		}
		a.Assign(u, p)
	}
	return a, nil
}

// MustFromInverse is like [FromInverse] but panics on error.
func MustFromInverse(order []int) Arrangement {
	a, err := FromInverse(order)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of vertices.
func (a Arrangement) Len() int { return len(a.pos) }

// Position returns the position of vertex u, or -1 if u is not placed.
func (a Arrangement) Position(u int) int { return a.pos[u] }

// Vertex returns the vertex at position p, or -1 if p is empty.
func (a Arrangement) Vertex(p int) int { return a.inv[p] }

// Assign places u at position p.
func (a Arrangement) Assign(u, p int) {
	a.pos[u] = p
	a.inv[p] = u
}

// Unassign removes u from its position. It is a no-op if u is not placed.
func (a Arrangement) Unassign(u int) {
	if p := a.pos[u]; p >= 0 {
		a.inv[p] = -1
		a.pos[u] = -1
	}
}

// Inverse returns a copy of the vertex sequence, left to right.
func (a Arrangement) Inverse() []int { return slices.Clone(a.inv) }

// Clone returns a deep copy of a.
func (a Arrangement) Clone() Arrangement {
	return Arrangement{pos: slices.Clone(a.pos), inv: slices.Clone(a.inv)}
}

// Mirror returns the arrangement read right to left. It has the same D and
// the negated, reversed level signature.
func (a Arrangement) Mirror() Arrangement {
	n := len(a.pos)
	m := New(n)
	for p, u := range a.inv {
		if u >= 0 {
			m.Assign(u, n-1-p)
		}
	}
	return m
}

// Equal reports whether a and b place every vertex at the same position.
func (a Arrangement) Equal(b Arrangement) bool {
	return slices.Equal(a.inv, b.inv)
}

// Validate checks that a is a complete bijection on n vertices.
func (a Arrangement) Validate(n int) error {
	if len(a.pos) != n || len(a.inv) != n {
		return errors.New(errors.ErrCodeInvalidArrangement,
			"arrangement has %d vertices, want %d", len(a.pos), n)
	}
	for u, p := range a.pos {
		if p < 0 || p >= n {
			return errors.New(errors.ErrCodeInvalidArrangement, "vertex %d is not placed", u)
		}
		if a.inv[p] != u {
			return errors.New(errors.ErrCodeInvalidArrangement,
				"position %d holds %d, vertex %d claims it", p, a.inv[p], u)
		}
	}
	return nil
}

// String formats a as its vertex sequence, e.g. "[2 0 1]".
func (a Arrangement) String() string { return fmt.Sprint(a.inv) }
