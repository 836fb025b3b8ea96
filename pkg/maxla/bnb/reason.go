package bnb

// Reason says why a candidate vertex was not placed at a position.
type Reason uint8

const (
	ReasonNone Reason = iota
	// placing the vertex would make the prefix exactly one colour class;
	// bipartite arrangements come from the seed instead
	ReasonBipartite
	ReasonNotNonIncreasing
	// equal consecutive levels must appear in increasing vertex order
	ReasonTieBreak
	ReasonAdjacentLevel
	ReasonNeighborInfeasible
	ReasonPrediction
	ReasonMissingDegree1
	ReasonMissingPath
	ReasonMissingDegree2Minus
	ReasonMissingDegree2Plus
	ReasonPredictionAhead
	ReasonAntennaThistle
	ReasonBridgeThistle
	ReasonPropagation
	ReasonCut
	ReasonLeafOrder
	ReasonOrbitOrder

	NumReasons
)

var reasonNames = [NumReasons]string{
	ReasonNone:                "none",
	ReasonBipartite:           "bipartite",
	ReasonNotNonIncreasing:    "not_non_increasing",
	ReasonTieBreak:            "tie_break",
	ReasonAdjacentLevel:       "adjacent_level",
	ReasonNeighborInfeasible:  "neighbor_infeasible",
	ReasonPrediction:          "prediction",
	ReasonMissingDegree1:      "missing_degree1",
	ReasonMissingPath:         "missing_path",
	ReasonMissingDegree2Minus: "missing_degree2_minus",
	ReasonMissingDegree2Plus:  "missing_degree2_plus",
	ReasonPredictionAhead:     "prediction_ahead",
	ReasonAntennaThistle:      "antenna_thistle",
	ReasonBridgeThistle:       "bridge_thistle",
	ReasonPropagation:         "propagation",
	ReasonCut:                 "cut",
	ReasonLeafOrder:           "leaf_order",
	ReasonOrbitOrder:          "orbit_order",
}

func (r Reason) String() string {
	if r < NumReasons {
		return reasonNames[r]
	}
	return "unknown"
}

// Stats counts the work done by one or more search tasks.
type Stats struct {
	Tasks       int
	Explored    int64 // vertices placed
	Bounded     int64 // prefixes cut off by the upper bound
	Independent int64 // prefixes completed as an independent set
	Leaves      int64 // complete arrangements reached by placement
	Discards    [NumReasons]int64
}

// Merge adds o into s.
func (s *Stats) Merge(o Stats) {
	s.Tasks += o.Tasks
	s.Explored += o.Explored
	s.Bounded += o.Bounded
	s.Independent += o.Independent
	s.Leaves += o.Leaves
	for i := range s.Discards {
		s.Discards[i] += o.Discards[i]
	}
}

// TotalDiscards returns the number of rejected candidates over all reasons.
func (s Stats) TotalDiscards() int64 {
	var total int64
	for _, d := range s.Discards {
		total += d
	}
	return total
}

// Sub returns the counters accumulated in s since the snapshot o.
func (s Stats) Sub(o Stats) Stats {
	d := Stats{
		Tasks:       s.Tasks - o.Tasks,
		Explored:    s.Explored - o.Explored,
		Bounded:     s.Bounded - o.Bounded,
		Independent: s.Independent - o.Independent,
		Leaves:      s.Leaves - o.Leaves,
	}
	for i := range d.Discards {
		d.Discards[i] = s.Discards[i] - o.Discards[i]
	}
	return d
}

// DiscardsByName returns the non-zero discard counters keyed by reason name.
func (s Stats) DiscardsByName() map[string]int64 {
	out := make(map[string]int64)
	for r, d := range s.Discards {
		if d > 0 {
			out[Reason(r).String()] = d
		}
	}
	return out
}
