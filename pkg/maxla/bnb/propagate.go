package bnb

// Origin records how a predicted level was derived.
type Origin uint8

const (
	OriginNone Origin = iota
	OriginSelf
	OriginAntennaLeaf
	OriginAntennaInternal
	OriginAntennaHub
	OriginBridgeHub
	OriginBridgeLowest
	OriginBridgeInternal
)

var originNames = [...]string{
	OriginNone:            "none",
	OriginSelf:            "self",
	OriginAntennaLeaf:     "antenna_leaf",
	OriginAntennaInternal: "antenna_internal",
	OriginAntennaHub:      "antenna_hub",
	OriginBridgeHub:       "bridge_hub",
	OriginBridgeLowest:    "bridge_lowest",
	OriginBridgeInternal:  "bridge_internal",
}

func (o Origin) String() string {
	if int(o) < len(originNames) {
		return originNames[o]
	}
	return "unknown"
}

// Prediction is the level a vertex must take in every arrangement that
// extends the current prefix. The zero value means no prediction.
type Prediction struct {
	Value  int
	Origin Origin
}

// Set reports whether p carries a value.
func (p Prediction) Set() bool { return p.Origin != OriginNone }

type undoKind uint8

const (
	undoPhase undoKind = iota
	undoPrediction
)

type undo struct {
	kind undoKind
	idx  int
}

// propagate fixes the phase of every run that gains a directed edge when u
// is placed, and predicts the level of vertices whose path edges are now
// all directed. It returns false when an edge contradicts a fixed phase.
func (e *Engine) propagate(u int) bool {
	p := e.p
	fixed := e.fixed[:0]
	for _, pe := range p.inc[u] {
		if e.assigned[pe.other] {
			continue
		}
		// pe.other ends up to the right of u
		switch e.phase[pe.run] {
		case 0:
			e.phase[pe.run] = pe.coef
			e.undo = append(e.undo, undo{kind: undoPhase, idx: pe.run})
			fixed = append(fixed, pe.run)
		case pe.coef:
		default:
			e.fixed = fixed
			return false
		}
	}
	for _, r := range fixed {
		for _, v := range p.runVtx[r] {
			if !e.assigned[v] && !e.pred[v].Set() {
				e.predict(v)
			}
		}
	}
	e.fixed = fixed

	if !e.pred[u].Set() {
		e.pred[u] = Prediction{Value: e.level[u], Origin: OriginSelf}
		e.undo = append(e.undo, undo{kind: undoPrediction, idx: u})
	}
	return true
}

// predict sets the level of unassigned v if all of its path edges have a
// known direction.
func (e *Engine) predict(v int) {
	if len(e.p.inc[v]) == 0 {
		return
	}
	level := 0
	for _, pe := range e.p.inc[v] {
		ph := e.phase[pe.run]
		if ph == 0 {
			return
		}
		level += int(pe.coef * ph)
	}
	e.pred[v] = Prediction{Value: level, Origin: e.p.origin[v]}
	e.predCount[level+e.p.maxDeg]++
	e.undo = append(e.undo, undo{kind: undoPrediction, idx: v})
}

// rollback pops the undo log down to mark.
func (e *Engine) rollback(mark int) {
	for i := len(e.undo) - 1; i >= mark; i-- {
		op := e.undo[i]
		switch op.kind {
		case undoPhase:
			e.phase[op.idx] = 0
		case undoPrediction:
			v := op.idx
			if !e.assigned[v] {
				e.predCount[e.pred[v].Value+e.p.maxDeg]--
			}
			e.pred[v] = Prediction{}
		}
	}
	e.undo = e.undo[:mark]
}

// predictedAbove reports whether some unassigned vertex is predicted to
// take a level greater than l.
func (e *Engine) predictedAbove(l int) bool {
	off := e.p.maxDeg
	for v := off; v > l; v-- {
		if e.predCount[v+off] > 0 {
			return true
		}
	}
	return false
}
