package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/search"
)

var policies = []search.Policy{search.PolicyTurnPenalty, search.PolicyJumpPoint}

func TestSearch_StraightLine(t *testing.T) {
	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			g := parseGrid(t, `S..G`)
			res, err := search.Search(g, g.start, g.goal, search.WithPolicy(p))
			require.NoError(t, err)
			assert.Equal(t, search.OutcomeFound, res.Outcome)
			assert.Equal(t, []core.Cell{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, res.Path)
		})
	}
}

func TestSearch_DetourAroundShape(t *testing.T) {
	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			g := parseGrid(t, `
S#.
.#.
..G`)
			res, err := search.Search(g, g.start, g.goal, search.WithPolicy(p))
			require.NoError(t, err)
			require.Equal(t, search.OutcomeFound, res.Outcome)
			want := []core.Cell{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}}
			assert.Equal(t, want, res.Path)
		})
	}
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			g := parseGrid(t, `...`)
			c := core.Cell{X: 1, Y: 0}
			res, err := search.Search(g, c, c, search.WithPolicy(p))
			require.NoError(t, err)
			assert.Equal(t, search.OutcomeFound, res.Outcome)
			assert.Equal(t, []core.Cell{c}, res.Path)
		})
	}
}

func TestSearch_BlockedEndpoints(t *testing.T) {
	g := parseGrid(t, `
S..
.#.
...`)
	inside := core.Cell{X: 1, Y: 1}

	cases := []struct {
		name        string
		start, goal core.Cell
	}{
		{"goal inside shape", g.start, inside},
		{"start inside shape", inside, core.Cell{X: 2, Y: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g.walkableCalls = 0
			res, err := search.Search(g, tc.start, tc.goal)
			require.NoError(t, err)
			assert.Equal(t, search.OutcomeBlocked, res.Outcome)
			assert.True(t, res.Outcome.Fallback())
			assert.Equal(t, []core.Cell{tc.goal, tc.start}, res.Path)
			assert.Zero(t, res.Expanded)
			assert.Zero(t, g.walkableCalls, "search loop must not run")
		})
	}
}

func TestSearch_Unreachable(t *testing.T) {
	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			g := parseGrid(t, `
S#G
.#.
.#.`)
			res, err := search.Search(g, g.start, g.goal, search.WithPolicy(p))
			require.NoError(t, err)
			assert.Equal(t, search.OutcomeUnreachable, res.Outcome)
			assert.Equal(t, []core.Cell{g.goal, g.start}, res.Path)
			assert.Positive(t, res.Expanded)
		})
	}
}

func TestSearch_Budget(t *testing.T) {
	g := parseGrid(t, `
S.........
..........
.........G`)
	res, err := search.Search(g, g.start, g.goal, search.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.Equal(t, search.OutcomeBudget, res.Outcome)
	assert.Equal(t, []core.Cell{g.goal, g.start}, res.Path)
	assert.Equal(t, 3, res.Expanded)

	res, err = search.Search(g, g.start, g.goal, search.WithMaxExpansions(0))
	require.NoError(t, err)
	assert.Equal(t, search.OutcomeFound, res.Outcome)
}

func TestSearch_OpenGridIsShortestWithOneBend(t *testing.T) {
	g := parseGrid(t, `
S.....
......
......
......
......
.....G`)
	pairs := [][2]core.Cell{
		{{X: 0, Y: 0}, {X: 5, Y: 5}},
		{{X: 5, Y: 0}, {X: 0, Y: 5}},
		{{X: 2, Y: 4}, {X: 4, Y: 1}},
		{{X: 5, Y: 5}, {X: 0, Y: 0}},
	}
	for _, p := range policies {
		for _, pr := range pairs {
			g.start, g.goal = pr[0], pr[1]
			res, err := search.Search(g, g.start, g.goal, search.WithPolicy(p))
			require.NoError(t, err)
			require.Equal(t, search.OutcomeFound, res.Outcome)
			requireValidPath(t, g, res.Path)
			assert.Len(t, res.Path, pr[0].Manhattan(pr[1])+1, "%s %v->%v", p, pr[0], pr[1])
			if p == search.PolicyTurnPenalty {
				assert.Equal(t, 1, bends(res.Path), "%v->%v", pr[0], pr[1])
			}
		}
	}
}

func TestSearch_TurnPenaltyPrefersFewerBends(t *testing.T) {
	// Both single-bend routes are blocked. Of the shortest routes left, only
	// the one down column 2 bends twice; the rest are staircases.
	g := parseGrid(t, `
S..#
.#..
.#..
#..G`)
	res, err := search.Search(g, g.start, g.goal)
	require.NoError(t, err)
	require.Equal(t, search.OutcomeFound, res.Outcome)
	requireValidPath(t, g, res.Path)
	want := []core.Cell{
		{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0},
	}
	assert.Equal(t, want, res.Path)
	assert.Equal(t, 2, bends(res.Path))
}

func TestSearch_MazeAgreesAcrossPolicies(t *testing.T) {
	maps := []string{
		`
S###.
...#.
.#...
.###.
....G`,
		`
......G.
........
###.####
........
........
S.......`,
		`
S.#.....
..#.###.
..#...#.
....#.#G`,
	}
	for i, m := range maps {
		g := parseGrid(t, m)
		turn, err := search.Search(g, g.start, g.goal)
		require.NoError(t, err)
		jump, err := search.Search(g, g.start, g.goal, search.WithPolicy(search.PolicyJumpPoint))
		require.NoError(t, err)

		require.Equal(t, search.OutcomeFound, turn.Outcome, "map %d", i)
		require.Equal(t, search.OutcomeFound, jump.Outcome, "map %d", i)
		requireValidPath(t, g, turn.Path)
		requireValidPath(t, g, jump.Path)
		assert.Equal(t, len(turn.Path), len(jump.Path), "map %d: path lengths differ", i)
	}
}

func TestSearch_AvoidsForeignConnector(t *testing.T) {
	// A vertical connector runs between columns 1 and 2 on rows 0..2.
	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			g := parseGrid(t, `
S...G
.....
.....
.....`)
			for y := 0; y <= 2; y++ {
				g.forbid(core.Cell{X: 1, Y: y}, core.Cell{X: 2, Y: y})
			}
			res, err := search.Search(g, g.start, g.goal, search.WithPolicy(p))
			require.NoError(t, err)
			require.Equal(t, search.OutcomeFound, res.Outcome)
			requireValidPath(t, g, res.Path)
			assert.Len(t, res.Path, 11)
		})
	}
}

func TestSearch_Deterministic(t *testing.T) {
	g := parseGrid(t, `
S.......
.##..##.
........
.##..##.
.......G`)
	for _, p := range policies {
		first, err := search.Search(g, g.start, g.goal, search.WithPolicy(p))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := search.Search(g, g.start, g.goal, search.WithPolicy(p))
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestSearch_OnExpandMatchesCounter(t *testing.T) {
	g := parseGrid(t, `
S#..
.#..
...G`)
	var seen []core.Cell
	res, err := search.Search(g, g.start, g.goal, search.WithOnExpand(func(c core.Cell) {
		seen = append(seen, c)
	}))
	require.NoError(t, err)
	assert.Len(t, seen, res.Expanded)
	assert.Equal(t, g.start, seen[0])
}

func TestSearch_Errors(t *testing.T) {
	g := parseGrid(t, `S.G`)

	_, err := search.Search(nil, g.start, g.goal)
	assert.ErrorIs(t, err, search.ErrNilOracle)

	bad := []search.Option{
		search.WithCosts(0, 1),
		search.WithCosts(1, -1),
		search.WithMaxExpansions(-1),
		search.WithPolicy(search.Policy(42)),
	}
	for _, opt := range bad {
		_, err := search.Search(g, g.start, g.goal, opt)
		assert.ErrorIs(t, err, search.ErrOptionViolation)
	}

	// Option errors take precedence over a nil oracle.
	_, err = search.Search(nil, g.start, g.goal, search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]search.Policy{
		"":     search.PolicyTurnPenalty,
		"turn": search.PolicyTurnPenalty,
		"jump": search.PolicyJumpPoint,
		"jps":  search.PolicyJumpPoint,
	} {
		got, err := search.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParsePolicy("diagonal")
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	assert.Equal(t, "Policy(7)", search.Policy(7).String())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "found", search.OutcomeFound.String())
	assert.Equal(t, "blocked", search.OutcomeBlocked.String())
	assert.Equal(t, "unreachable", search.OutcomeUnreachable.String())
	assert.Equal(t, "budget", search.OutcomeBudget.String())
	assert.Equal(t, "unknown", search.Outcome(9).String())
	assert.False(t, search.OutcomeFound.Fallback())
}
