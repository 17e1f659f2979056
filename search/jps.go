package search

import (
	"github.com/katalvlaran/orthoroute/core"
)

// expandJumps generates jump-point successors of cur. A jump costs
// StepCost per cell travelled; bends are free because a jump chain cannot
// contain spurious ones.
func (r *runner) expandJumps(cur state) {
	g := r.gScore[cur]
	for _, d := range successorDirs[cur.dir] {
		jp, ok := r.jump(cur.cell, d, false)
		if !ok {
			continue
		}
		next := state{cell: jp, dir: d}
		if r.closed(next) {
			continue
		}
		r.relax(cur, next, g+r.opts.StepCost*cur.cell.Manhattan(jp))
	}
}

// jump scans from `from` along d and returns the first cell worth stopping
// at: the goal, a forced cell, or (on a primary scan) a cell whose
// perpendicular scan succeeds. Perpendicular scans do not recurse again, and
// every scan gives up after Bounds.Diagonal() steps.
func (r *runner) jump(from core.Cell, d core.Dir, perpendicular bool) (core.Cell, bool) {
	limit := r.bounds.Diagonal()
	cur := from
	for i := 0; i < limit; i++ {
		next := cur.Step(d)
		if !r.oracle.Walkable(next, cur) {
			return core.Cell{}, false
		}
		if next == r.goal || r.forced(next, d) {
			return next, true
		}
		if !perpendicular {
			for _, p := range d.Turns() {
				if _, ok := r.jump(next, p, true); ok {
					return next, true
				}
			}
		}
		cur = next
	}

	return core.Cell{}, false
}

// forced reports whether c sits on an obstacle edge relative to travel
// along d: a side step out of c is walkable while the same side step one
// cell back is not, or the other way round. Foreign connectors count.
func (r *runner) forced(c core.Cell, d core.Dir) bool {
	back := c.Step(d.Opposite())
	for _, p := range d.Turns() {
		if r.oracle.Walkable(c.Step(p), c) != r.oracle.Walkable(back.Step(p), back) {
			return true
		}
	}

	return false
}
