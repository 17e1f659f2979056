package search

import (
	"fmt"

	"github.com/katalvlaran/orthoroute/core"
)

// reconstruct follows cameFrom from s back to the start node and returns
// the cells goal → start. Jump chains are expanded into single steps.
func (r *runner) reconstruct(s state) []core.Cell {
	nodes := []core.Cell{s.cell}
	for {
		prev, ok := r.cameFrom[s]
		if !ok {
			break
		}
		nodes = append(nodes, prev.cell)
		s = prev
	}
	if r.opts.Policy == PolicyJumpPoint {
		return expandSegments(nodes)
	}

	return nodes
}

// expandSegments fills straight gaps between consecutive nodes so every
// pair of neighbouring cells in the result is one orthogonal step apart.
// Two nodes sharing neither row nor column mean the successor generator is
// broken; that is a defect, so it panics with ErrDiagonalMove.
func expandSegments(nodes []core.Cell) []core.Cell {
	if len(nodes) == 0 {
		return nil
	}
	out := []core.Cell{nodes[0]}
	for i := 1; i < len(nodes); i++ {
		a, b := nodes[i-1], nodes[i]
		if a == b {
			continue
		}
		d, ok := core.DirBetween(a, b)
		if !ok {
			panic(fmt.Errorf("%w: %v -> %v", ErrDiagonalMove, a, b))
		}
		for c := a; c != b; {
			c = c.Step(d)
			out = append(out, c)
		}
	}

	return out
}
