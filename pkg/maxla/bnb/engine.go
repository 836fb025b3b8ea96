package bnb

import (
	"context"

	"github.com/matzehuels/maxla/pkg/errors"
	"github.com/matzehuels/maxla/pkg/linarr"
	"github.com/matzehuels/maxla/pkg/maxla/collector"
	"github.com/matzehuels/maxla/pkg/tree"
)

// pollMask sets how often Run checks its context, in loop iterations.
const pollMask = 1<<12 - 1

type frame struct {
	next int // next candidate vertex; -1 before the position is visited
}

// Engine runs branch and bound tasks for one Problem. Every complete
// arrangement that may be maximum is offered to the collector given to New,
// whose best value also serves as the incumbent for bounding.
type Engine struct {
	p    *Problem
	n    int
	coll *collector.Set

	first  int
	parent []int // rooted at first

	assigned []bool
	arr      linarr.Arrangement
	left     []int // assigned neighbours
	right    []int // neighbours placed after the vertex
	level    []int
	cut      []int // edges crossing the gap after each position
	dp       int   // lengths of edges inside the prefix
	dpsm     int   // lengths of prefix-to-suffix edges up to the next position
	eps, es  int   // prefix-to-suffix and suffix edge counts
	border   []int // unassigned vertices per number of assigned neighbours
	blue     int
	red      int

	pathAssigned []int
	pathPlus2    []int
	pathThistles []int
	deficit      int // paths still owed a +2 internal vertex
	untouched    int // paths with internal vertices, none assigned
	freeLeaves   int
	freeDeg2     int

	phase     []int8
	pred      []Prediction
	predCount []int // unassigned predicted vertices per level, offset by maxDeg
	undo      []undo
	marks     []int
	fixed     []int

	frames  []frame
	rest    []int
	steps   int
	stats   Stats
	onPlace func(pos int)
}

// New returns an engine for p that reports to coll.
func New(p *Problem, coll *collector.Set) *Engine {
	n := p.N()
	return &Engine{
		p:            p,
		n:            n,
		coll:         coll,
		assigned:     make([]bool, n),
		arr:          linarr.New(n),
		left:         make([]int, n),
		right:        make([]int, n),
		level:        make([]int, n),
		cut:          make([]int, n),
		border:       make([]int, p.maxDeg+1),
		pathAssigned: make([]int, p.Paths.Len()),
		pathPlus2:    make([]int, p.Paths.Len()),
		pathThistles: make([]int, p.Paths.Len()),
		phase:        make([]int8, len(p.runs)),
		pred:         make([]Prediction, n),
		predCount:    make([]int, 2*p.maxDeg+1),
		marks:        make([]int, n),
		frames:       make([]frame, n+1),
	}
}

// Stats returns the counters accumulated over all tasks run so far.
func (e *Engine) Stats() Stats { return e.stats }

// Collector returns the set the engine reports to.
func (e *Engine) Collector() *collector.Set { return e.coll }

func (e *Engine) reset(first int) {
	p := e.p
	e.first = first
	e.parent = tree.Parents(p.Tree, first)
	for u := 0; u < e.n; u++ {
		e.assigned[u] = false
		e.arr.Unassign(u)
		e.left[u], e.right[u], e.level[u], e.cut[u] = 0, 0, 0, 0
		e.pred[u] = Prediction{}
	}
	clear(e.border)
	clear(e.pathAssigned)
	clear(e.pathPlus2)
	clear(e.pathThistles)
	clear(e.phase)
	clear(e.predCount)
	e.undo = e.undo[:0]
	e.dp, e.dpsm, e.eps, e.es = 0, 0, 0, p.Tree.NumEdges()
	e.blue, e.red = 0, 0

	e.deficit, e.untouched = 0, 0
	for i, path := range p.Paths.Paths {
		if p.minPlus[i] > 0 {
			e.deficit++
		}
		if path.NumInternal() > 0 {
			e.untouched++
		}
	}
	e.freeLeaves, e.freeDeg2 = p.numLeaves, p.numDeg2
}

// Run explores every arrangement whose first vertex is first and offers
// the complete ones to the collector. It returns an error with code
// [errors.ErrCodeCanceled] if ctx is done before the search finishes; the
// collector then holds whatever was found so far.
func (e *Engine) Run(ctx context.Context, first int) error {
	if err := errors.ValidateVertex(first, e.n); err != nil {
		return err
	}
	e.reset(first)
	e.stats.Tasks++
	if !e.place(first, 0) {
		e.stats.Discards[ReasonPropagation]++
		e.unplace(0)
		return nil
	}
	e.stats.Explored++

	pos := 1
	e.frames[pos].next = -1
	for pos > 0 {
		if e.steps++; e.steps&pollMask == 0 {
			if err := ctx.Err(); err != nil {
				for pos > 0 {
					pos = e.backtrack(pos)
				}
				return errors.Wrap(errors.ErrCodeCanceled, err, "search from vertex %d", first)
			}
		}

		f := &e.frames[pos]
		if f.next < 0 {
			f.next = 0
			if e.visit(pos) {
				pos = e.backtrack(pos)
				continue
			}
		}

		u := e.nextCandidate(f, pos)
		if u < 0 {
			pos = e.backtrack(pos)
			continue
		}
		if !e.place(u, pos) {
			e.stats.Discards[ReasonPropagation]++
			e.unplace(pos)
			continue
		}
		e.stats.Explored++
		if e.onPlace != nil {
			e.onPlace(pos)
		}
		pos++
		e.frames[pos].next = -1
	}
	return nil
}

// visit handles the work done once per prefix before candidates are tried.
// It reports whether the prefix is finished.
func (e *Engine) visit(pos int) bool {
	if pos == e.n {
		e.stats.Leaves++
		e.coll.Add(e.dp, e.arr)
		return true
	}
	if e.upperBound(pos) < e.coll.Best() {
		e.stats.Bounded++
		return true
	}
	if e.es == 0 {
		e.stats.Independent++
		e.completeIndependent(pos)
		return true
	}
	return false
}

func (e *Engine) nextCandidate(f *frame, pos int) int {
	for u := f.next; u < e.n; u++ {
		if e.assigned[u] {
			continue
		}
		if r := e.discard(u, pos); r != ReasonNone {
			e.stats.Discards[r]++
			continue
		}
		f.next = u + 1
		return u
	}
	f.next = e.n
	return -1
}

// backtrack removes the vertex at pos-1 and returns the new position.
func (e *Engine) backtrack(pos int) int {
	pos--
	e.unplace(pos)
	return pos
}
