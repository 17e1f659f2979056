// Package search finds an orthogonal ("Manhattan") cell path between a start
// and a goal cell using best-first search over a walkability oracle.
//
// Overview:
//
//   - Movement is direction-constrained. A node with no predecessor may move
//     in all four directions; a node entered while moving along one axis may
//     only continue or turn 90°. Reversal and diagonal steps never happen, so
//     paths are made of straight horizontal and vertical runs.
//   - Search nodes are (cell, heading) states. gScore, fScore and cameFrom are
//     keyed by state, which keeps turn costs exact.
//   - The open set is a min-heap ordered by f, then h, then insertion order,
//     with the lazy decrease-key strategy: improved states are pushed again and
//     stale entries are skipped when popped.
//   - All state lives in a runner created by Search and dropped on return.
//     Search itself is safe to call concurrently with independent oracles.
//
// Policies:
//
//   - PolicyTurnPenalty (default): every step costs StepCost (10); changing
//     axis adds TurnCost (5). The heuristic is
//     StepCost·manhattan + TurnCost·minTurns(heading, offset), where minTurns
//     is the fewest turns an unobstructed path needs. It is admissible and
//     consistent, so the first time the goal is popped its path is optimal
//     and, among equally long paths, has the fewest bends.
//   - PolicyJumpPoint: instead of single steps, scan along the heading until
//     the goal, a forced cell (a side step whose walkability differs from the
//     same side step one cell back) or a cell whose perpendicular scan reaches
//     such a cell. The jump costs StepCost·distance. Perpendicular scans do not
//     recurse, and every scan is bounded by Bounds.Diagonal(). The jump chain is
//     expanded back into contiguous cells before it is returned.
//
// Degradation:
//
//   - If the start or goal cell collides, Search returns [goal, start] without
//     entering the loop (OutcomeBlocked).
//   - If the open set empties (OutcomeUnreachable) or the optional expansion
//     budget runs out (OutcomeBudget), Search returns [goal, start] too.
//
// These are not errors: the caller always gets a drawable path.
//
// Complexity:
//
//   - Time:  O(N log N) heap work for N = 4·(MaxX+1)·(MaxY+1) states, plus
//     oracle calls. Jump scans add O(W·H) per expanded node in the worst case.
//   - Space: O(N).
//
// Errors:
//
//   - ErrNilOracle:       the oracle argument is nil.
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrDiagonalMove:    panic payload only; signals a bug, never a routing condition.
package search
