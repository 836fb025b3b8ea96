package bnb

import "github.com/matzehuels/maxla/pkg/errors"

// CheckInvariants exposes the consistency checker to tests.
func CheckInvariants(e *Engine) error { return e.checkInvariants() }

// SetPlaceHook installs fn to run after every successful placement.
func SetPlaceHook(e *Engine, fn func(pos int)) { e.onPlace = fn }

// ForcePoll makes the next loop iteration of Run check its context.
func ForcePoll(e *Engine) { e.steps = pollMask }

// Discard places prefix from position 0 and returns the reason u would be
// rejected at the next position, or ReasonPropagation if placing the prefix
// fails. Every placement is undone before it returns.
func Discard(e *Engine, prefix []int, u int) Reason {
	e.reset(prefix[0])
	placed := 0
	defer func() {
		for pos := placed - 1; pos >= 0; pos-- {
			e.unplace(pos)
		}
	}()
	for pos, v := range prefix {
		placed++
		if !e.place(v, pos) {
			return ReasonPropagation
		}
	}
	return e.discard(u, len(prefix))
}

// Pristine reports whether e holds no placement, as after a completed Run.
func Pristine(e *Engine) error {
	if err := e.checkInvariants(); err != nil {
		return err
	}
	for u := 0; u < e.n; u++ {
		if e.assigned[u] || e.arr.Position(u) >= 0 || e.pred[u].Set() {
			return errors.New(errors.ErrCodeInternal, "vertex %d still placed or predicted", u)
		}
	}
	for r, ph := range e.phase {
		if ph != 0 {
			return errors.New(errors.ErrCodeInternal, "run %d keeps phase %d", r, ph)
		}
	}
	if len(e.undo) != 0 || e.dpsm != 0 {
		return errors.New(errors.ErrCodeInternal, "undo log %d entries, dpsm %d", len(e.undo), e.dpsm)
	}
	if e.freeLeaves != e.p.numLeaves || e.freeDeg2 != e.p.numDeg2 || e.blue != 0 || e.red != 0 {
		return errors.New(errors.ErrCodeInternal, "vertex counters not restored")
	}
	for i := range e.pathAssigned {
		if e.pathAssigned[i] != 0 || e.pathPlus2[i] != 0 || e.pathThistles[i] != 0 {
			return errors.New(errors.ErrCodeInternal, "path %d counters not restored", i)
		}
	}
	return nil
}

// MinPlus returns the number of +2 internal vertices required on path i.
func MinPlus(p *Problem, i int) int { return p.minPlus[i] }

// NumRuns returns the number of alternation runs.
func NumRuns(p *Problem) int { return len(p.runs) }
