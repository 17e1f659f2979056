package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthoroute/core"
)

// gridOracle is an in-memory search.Oracle parsed from an ASCII map:
//
//	'.' free   '#' shape   'S' start   'G' goal
//
// Steps listed in foreign behave like crossings of another connector.
type gridOracle struct {
	bounds  core.Bounds
	blocked map[core.Cell]bool
	foreign map[[2]core.Cell]bool

	start, goal   core.Cell
	walkableCalls int
}

func parseGrid(t *testing.T, ascii string) *gridOracle {
	t.Helper()
	rows := strings.Split(strings.TrimSpace(ascii), "\n")
	require.NotEmpty(t, rows)
	g := &gridOracle{
		blocked: make(map[core.Cell]bool),
		foreign: make(map[[2]core.Cell]bool),
	}
	for y, row := range rows {
		row = strings.TrimSpace(row)
		require.Len(t, row, len(strings.TrimSpace(rows[0])), "ragged map row %d", y)
		for x, ch := range row {
			c := core.Cell{X: x, Y: y}
			switch ch {
			case '#':
				g.blocked[c] = true
			case 'S':
				g.start = c
			case 'G':
				g.goal = c
			}
		}
	}
	g.bounds = core.Bounds{MaxX: len(strings.TrimSpace(rows[0])) - 1, MaxY: len(rows) - 1}

	return g
}

// forbid marks the step a↔b as crossing a foreign connector.
func (g *gridOracle) forbid(a, b core.Cell) {
	g.foreign[[2]core.Cell{a, b}] = true
	g.foreign[[2]core.Cell{b, a}] = true
}

func (g *gridOracle) Walkable(to, from core.Cell) bool {
	g.walkableCalls++
	return g.Passable(to) && !g.foreign[[2]core.Cell{from, to}]
}

func (g *gridOracle) Passable(c core.Cell) bool {
	return g.bounds.Contains(c) && !g.blocked[c]
}

func (g *gridOracle) Collides(c core.Cell) bool { return g.blocked[c] }

func (g *gridOracle) Bounds() core.Bounds { return g.bounds }

// requireValidPath checks a found path: it ends at start, begins at goal,
// every step is one orthogonal cell and no cell is blocked.
func requireValidPath(t *testing.T, g *gridOracle, path []core.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, g.goal, path[0], "path must begin at goal")
	require.Equal(t, g.start, path[len(path)-1], "path must end at start")
	for i, c := range path {
		require.False(t, g.blocked[c], "cell %v is blocked", c)
		if i == 0 {
			continue
		}
		require.Equal(t, 1, c.Manhattan(path[i-1]), "step %v -> %v is not a unit move", path[i-1], c)
		require.False(t, g.foreign[[2]core.Cell{c, path[i-1]}], "step %v -> %v crosses a foreign connector", c, path[i-1])
	}
}

// bends counts direction changes along a contiguous path.
func bends(path []core.Cell) int {
	n := 0
	for i := 2; i < len(path); i++ {
		d1, _ := core.DirBetween(path[i-2], path[i-1])
		d2, _ := core.DirBetween(path[i-1], path[i])
		if d1 != d2 {
			n++
		}
	}
	return n
}
