package linarr

import (
	"fmt"

	"github.com/matzehuels/maxla/pkg/errors"
	"github.com/matzehuels/maxla/pkg/linarr/perm"
	"github.com/matzehuels/maxla/pkg/tree"
)

// MaxExhaustiveLimit is the largest tree MaxExhaustive accepts.
const MaxExhaustiveLimit = 10

// MaxExhaustive computes the maximum linear arrangement of t by trying all
// n! arrangements. It returns the maximum D and one arrangement per distinct
// level signature attaining it, in the order first found.
func MaxExhaustive(t *tree.Tree) (int, []Arrangement, error) {
	n := t.NumNodes()
	if n > MaxExhaustiveLimit {
		return 0, nil, errors.New(errors.ErrCodeInvalidInput,
			"exhaustive search is limited to %d vertices, got %d", MaxExhaustiveLimit, n)
	}
	if err := t.Validate(); err != nil {
		return 0, nil, err
	}

	best := -1
	var reps []Arrangement
	seen := make(map[string]bool)
	a := New(n)
	perm.Each(n, func(order []int) bool {
		for p, u := range order {
			a.Assign(u, p)
		}
		d := SumEdgeLengths(t, a)
		if d < best {
			return true
		}
		if d > best {
			best = d
			reps = reps[:0]
			clear(seen)
		}
		key := fmt.Sprint(Levels(t, a))
		if !seen[key] {
			seen[key] = true
			reps = append(reps, a.Clone())
		}
		return true
	})
	return best, reps, nil
}
