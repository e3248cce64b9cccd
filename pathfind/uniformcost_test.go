package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// board builds a grid with the given endpoints and walls, failing the test
// on any invalid fixture coordinate.
func board(t *testing.T, width, height int, start, end grid.Position, walls ...grid.Position) *grid.Grid {
	t.Helper()
	g, err := grid.New(width, height)
	require.NoError(t, err)
	for _, w := range walls {
		require.NoError(t, g.SetWall(w))
	}
	require.NoError(t, g.SetStart(start))
	require.NoError(t, g.SetEnd(end))

	return g
}

// manhattan is the lower bound on unit-cost path length.
func manhattan(a, b grid.Position) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// requireValidPath asserts the structural path guarantees: every position is
// walkable and 4-adjacent to its predecessor, and the path ends at end.
func requireValidPath(t *testing.T, g *grid.Grid, start, end grid.Position, path []grid.Position) {
	t.Helper()
	prev := start
	for _, p := range path {
		require.True(t, g.IsWalkable(p), "path position %s not walkable", p)
		require.Equal(t, 1, manhattan(prev, p), "%s -> %s not 4-adjacent", prev, p)
		prev = p
	}
	require.Equal(t, end, prev)
}

// TestUniformCost_OpenGrid runs the concrete 5×5 scenario: no walls,
// (0,0)→(4,4) must take exactly 8 steps, the Manhattan distance.
func TestUniformCost_OpenGrid(t *testing.T) {
	start, end := grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4}
	g := board(t, 5, 5, start, end)

	uc, err := pathfind.NewUniformCost(g)
	require.NoError(t, err)
	path, err := uc.FindPath()
	require.NoError(t, err)
	require.Len(t, path, 8)
	requireValidPath(t, g, start, end, path)
}

// TestUniformCost_NoWalls_ManhattanLength checks the shortest-path guarantee
// on wall-free grids for a spread of endpoint pairs.
func TestUniformCost_NoWalls_ManhattanLength(t *testing.T) {
	pairs := []struct{ start, end grid.Position }{
		{grid.Position{X: 0, Y: 0}, grid.Position{X: 7, Y: 0}},
		{grid.Position{X: 3, Y: 6}, grid.Position{X: 3, Y: 6}},
		{grid.Position{X: 1, Y: 5}, grid.Position{X: 6, Y: 2}},
		{grid.Position{X: 7, Y: 7}, grid.Position{X: 0, Y: 1}},
	}
	for _, tc := range pairs {
		g := board(t, 7, 7, tc.start, tc.end)
		uc, err := pathfind.NewUniformCost(g)
		require.NoError(t, err)
		path, err := uc.FindPath()
		require.NoError(t, err)
		require.Len(t, path, manhattan(tc.start, tc.end))
		requireValidPath(t, g, tc.start, tc.end, path)
	}
}

// TestUniformCost_Detour forces the search around a wall and checks the
// returned path is still the shortest available.
func TestUniformCost_Detour(t *testing.T) {
	// Vertical wall at x=2, y=0..3 on a 5×5 board leaves a gap at y=4.
	start, end := grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 0}
	g := board(t, 5, 5, start, end,
		grid.Position{X: 2, Y: 0},
		grid.Position{X: 2, Y: 1},
		grid.Position{X: 2, Y: 2},
		grid.Position{X: 2, Y: 3},
	)

	uc, err := pathfind.NewUniformCost(g)
	require.NoError(t, err)
	path, err := uc.FindPath()
	require.NoError(t, err)
	// Down to y=4, across, back up: 4 + 4 + 4 edges.
	require.Len(t, path, 12)
	requireValidPath(t, g, start, end, path)
}

// TestUniformCost_SealedRow runs the concrete sealed-board scenario: a solid
// wall row at y=2 spanning x=0..5 with no gap separates (0,0) from (0,4).
func TestUniformCost_SealedRow(t *testing.T) {
	walls := make([]grid.Position, 0, 6)
	for x := 0; x <= 5; x++ {
		walls = append(walls, grid.Position{X: x, Y: 2})
	}
	g := board(t, 5, 5, grid.Position{X: 0, Y: 0}, grid.Position{X: 0, Y: 4}, walls...)

	uc, err := pathfind.NewUniformCost(g)
	require.NoError(t, err)
	_, err = uc.FindPath()
	require.ErrorIs(t, err, pathfind.ErrNoPathFound)
}

// TestUniformCost_MissingEndpoint covers the constructor preconditions.
func TestUniformCost_MissingEndpoint(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	_, err = pathfind.NewUniformCost(g)
	require.ErrorIs(t, err, pathfind.ErrMissingEndpoint)

	require.NoError(t, g.SetStart(grid.Position{X: 0, Y: 0}))
	_, err = pathfind.NewUniformCost(g)
	require.ErrorIs(t, err, pathfind.ErrMissingEndpoint)

	_, err = pathfind.NewUniformCost(nil)
	require.ErrorIs(t, err, pathfind.ErrNilGrid)
}

// TestUniformCost_StartEqualsEnd expects an empty path: the path excludes
// the start, and the goal is already reached.
func TestUniformCost_StartEqualsEnd(t *testing.T) {
	p := grid.Position{X: 2, Y: 2}
	g := board(t, 5, 5, p, p)

	uc, err := pathfind.NewUniformCost(g)
	require.NoError(t, err)
	path, err := uc.FindPath()
	require.NoError(t, err)
	require.Empty(t, path)

	require.Equal(t, pathfind.StepDone, uc.Advance().Kind)
}

// TestUniformCost_AdvanceReplaysPath checks the step-wise surface: Advance
// yields FindPath's positions in order, then sticky Done.
func TestUniformCost_AdvanceReplaysPath(t *testing.T) {
	start, end := grid.Position{X: 0, Y: 0}, grid.Position{X: 3, Y: 0}
	g := board(t, 5, 5, start, end)

	uc, err := pathfind.NewUniformCost(g)
	require.NoError(t, err)
	path, err := uc.FindPath()
	require.NoError(t, err)

	for _, want := range path {
		res := uc.Advance()
		require.Equal(t, pathfind.StepContinue, res.Kind)
		require.Equal(t, want, res.Pos)
	}
	require.Equal(t, pathfind.StepDone, uc.Advance().Kind)
	require.Equal(t, pathfind.StepDone, uc.Advance().Kind)
}

// TestUniformCost_AdvanceStuckWhenSealed checks the step-wise surface on an
// unreachable end: every Advance returns Stuck.
func TestUniformCost_AdvanceStuckWhenSealed(t *testing.T) {
	walls := make([]grid.Position, 0, 6)
	for x := 0; x <= 5; x++ {
		walls = append(walls, grid.Position{X: x, Y: 2})
	}
	g := board(t, 5, 5, grid.Position{X: 0, Y: 0}, grid.Position{X: 0, Y: 4}, walls...)

	uc, err := pathfind.NewUniformCost(g)
	require.NoError(t, err)
	require.Equal(t, pathfind.StepStuck, uc.Advance().Kind)
	require.Equal(t, pathfind.StepStuck, uc.Advance().Kind)
}
