package seed

import (
	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/tree"
)

// Kind names the construction a seed came from.
type Kind int

const (
	KindBipartite Kind = iota
	KindOneThistle
	KindPlanar
)

func (k Kind) String() string {
	switch k {
	case KindBipartite:
		return "bipartite"
	case KindOneThistle:
		return "one-thistle"
	case KindPlanar:
		return "planar"
	default:
		return "unknown"
	}
}

// Seed is an arrangement together with its D.
type Seed struct {
	Kind        Kind
	Value       int
	Arrangement linarr.Arrangement
}

// Best returns the best of the bipartite, the planar and, if oneThistle is
// set, the one-thistle arrangement. Ties favour the bipartite one, then the
// one-thistle one.
func Best(t *tree.Tree, colors []tree.Color, oneThistle bool) Seed {
	v, a := Bipartite(t, colors)
	s := Seed{Kind: KindBipartite, Value: v, Arrangement: a}
	if oneThistle {
		if tv, ta, ok := OneThistle(t); ok && tv > s.Value {
			s = Seed{Kind: KindOneThistle, Value: tv, Arrangement: ta}
		}
	}
	if pv, pa := Planar(t); pv > s.Value {
		s = Seed{Kind: KindPlanar, Value: pv, Arrangement: pa}
	}
	return s
}
