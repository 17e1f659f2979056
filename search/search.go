package search

import (
	"container/heap"

	"github.com/katalvlaran/orthoroute/core"
)

// Search finds a direction-constrained path from start to goal.
//
// The returned Result.Path runs from goal back to start. Routing failures
// never produce an error; they degrade to the [goal, start] fallback and are
// reported through Result.Outcome. An error is returned only for a nil
// oracle or an invalid Option.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. oracle must be non-nil (ErrNilOracle).
//
// Complexity: see package documentation.
func Search(oracle Oracle, start, goal core.Cell, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	// 2) Validate the oracle is non-nil.
	if oracle == nil {
		return Result{}, ErrNilOracle
	}

	// 3) An anchor embedded in a shape can never be left; draw it straight.
	if oracle.Collides(start) || oracle.Collides(goal) {
		return fallback(start, goal, OutcomeBlocked, 0), nil
	}

	// 4) Prepare per-call state and run the best-first loop.
	r := newRunner(oracle, cfg, goal)

	return r.run(start), nil
}

// state is a search node: a cell plus the heading it was entered with.
type state struct {
	cell core.Cell
	dir  core.Dir
}

// successorDirs lists, per incoming heading, the headings a node may leave
// with: everything for the start node, otherwise straight on or a 90° turn.
var successorDirs = [...][]core.Dir{
	core.DirNone:  {core.DirNorth, core.DirEast, core.DirSouth, core.DirWest},
	core.DirNorth: {core.DirNorth, core.DirEast, core.DirWest},
	core.DirEast:  {core.DirEast, core.DirNorth, core.DirSouth},
	core.DirSouth: {core.DirSouth, core.DirEast, core.DirWest},
	core.DirWest:  {core.DirWest, core.DirNorth, core.DirSouth},
}

// runner holds the mutable state of a single Search call. It is never
// stored or shared.
type runner struct {
	oracle Oracle
	opts   Options
	goal   core.Cell
	bounds core.Bounds

	openSet   openHeap
	closedSet map[state]struct{}
	gScore    map[state]int
	fScore    map[state]int
	cameFrom  map[state]state

	seq      int // insertion counter for deterministic ties
	expanded int
}

func newRunner(oracle Oracle, opts Options, goal core.Cell) *runner {
	b := oracle.Bounds()
	hint := (b.MaxX + 1) * (b.MaxY + 1)
	if hint > 1<<16 || hint < 0 {
		hint = 1 << 16
	}

	return &runner{
		oracle:    oracle,
		opts:      opts,
		goal:      goal,
		bounds:    b,
		openSet:   make(openHeap, 0, 64),
		closedSet: make(map[state]struct{}, hint),
		gScore:    make(map[state]int, hint),
		fScore:    make(map[state]int, hint),
		cameFrom:  make(map[state]state, hint),
	}
}

// run is the main best-first loop.
func (r *runner) run(start core.Cell) Result {
	// 1) Seed the open set with the start node, which has no heading yet.
	origin := state{cell: start, dir: core.DirNone}
	r.gScore[origin] = 0
	r.fScore[origin] = r.heuristic(origin)
	r.push(origin)

	for r.openSet.Len() > 0 {
		// 2) Pop the node with the smallest (f, h, seq).
		it := heap.Pop(&r.openSet).(*openItem)
		cur := it.st

		// 3) Lazy decrease-key: skip finished states and outdated entries.
		if r.closed(cur) || it.f > r.fScore[cur] {
			continue
		}
		// 4) Stop at the goal, or when the expansion budget is spent.
		if cur.cell == r.goal {
			return Result{Path: r.reconstruct(cur), Outcome: OutcomeFound, Expanded: r.expanded}
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return fallback(start, r.goal, OutcomeBudget, r.expanded)
		}

		// 5) Close cur and generate its successors.
		r.closedSet[cur] = struct{}{}
		r.expanded++
		r.opts.OnExpand(cur.cell)

		if r.opts.Policy == PolicyJumpPoint {
			r.expandJumps(cur)
		} else {
			r.expandSteps(cur)
		}
	}

	return fallback(start, r.goal, OutcomeUnreachable, r.expanded)
}

// expandSteps generates single-cell successors with the turn surcharge.
func (r *runner) expandSteps(cur state) {
	g := r.gScore[cur]
	for _, d := range successorDirs[cur.dir] {
		next := state{cell: cur.cell.Step(d), dir: d}
		if r.closed(next) {
			continue
		}
		if !r.oracle.Walkable(next.cell, cur.cell) {
			continue
		}
		cost := g + r.opts.StepCost
		if cur.dir != core.DirNone && d != cur.dir {
			cost += r.opts.TurnCost
		}
		r.relax(cur, next, cost)
	}
}

// relax records a cheaper way to reach `to` through `from`.
func (r *runner) relax(from, to state, g int) {
	if old, seen := r.gScore[to]; seen && g >= old {
		return
	}
	r.gScore[to] = g
	r.fScore[to] = g + r.heuristic(to)
	r.cameFrom[to] = from
	r.push(to)
}

func (r *runner) push(s state) {
	r.seq++
	f := r.fScore[s]
	heap.Push(&r.openSet, &openItem{st: s, f: f, h: f - r.gScore[s], seq: r.seq})
}

func (r *runner) closed(s state) bool {
	_, ok := r.closedSet[s]
	return ok
}

// heuristic estimates the remaining cost of s.
func (r *runner) heuristic(s state) int {
	h := r.opts.StepCost * s.cell.Manhattan(r.goal)
	if r.opts.Policy == PolicyTurnPenalty && r.opts.TurnCost > 0 {
		h += r.opts.TurnCost * minTurns(s.dir, r.goal.X-s.cell.X, r.goal.Y-s.cell.Y)
	}

	return h
}

// minTurns is the fewest axis changes an unobstructed path needs to cover
// offset (dx, dy) when it currently travels along d.
func minTurns(d core.Dir, dx, dy int) int {
	if dx == 0 && dy == 0 {
		return 0
	}
	var along, across, sign int
	switch d.Axis() {
	case core.AxisX:
		along, across = dx, dy
		sign, _ = d.Delta()
	case core.AxisY:
		along, across = dy, dx
		_, sign = d.Delta()
	default:
		if dx == 0 || dy == 0 {
			return 0
		}
		return 1
	}

	behind := along*sign < 0
	switch {
	case across == 0 && behind:
		return 3 // leave the line, come back, rejoin it
	case across == 0:
		return 0
	case behind:
		return 2
	default:
		return 1
	}
}

// fallback is the direct two-point path [goal, start].
func fallback(start, goal core.Cell, o Outcome, expanded int) Result {
	return Result{Path: []core.Cell{goal, start}, Outcome: o, Expanded: expanded}
}

// openItem is one entry of the open set.
type openItem struct {
	st  state
	f   int // g + h at push time
	h   int
	seq int
}

// openHeap is a min-heap on (f, h, seq).
type openHeap []*openItem

func (q openHeap) Len() int { return len(q) }

func (q openHeap) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}

	return q[i].seq < q[j].seq
}

func (q openHeap) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openHeap) Push(x interface{}) { *q = append(*q, x.(*openItem)) }

func (q *openHeap) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return it
}
