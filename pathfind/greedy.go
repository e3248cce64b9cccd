package pathfind

import "github.com/katalvlaran/gridpath/grid"

// Greedy is a single-pass, no-backtracking walker: from the current position
// it always steps to the walkable, not-yet-visited neighbor with the smallest
// straight-line distance to the end. Cheap and visually intuitive, but it can
// dead-end on any grid with local minima — callers must handle StepStuck.
type Greedy struct {
	board   *grid.Grid
	end     grid.Position
	current grid.Position
	visited map[grid.Position]struct{}

	done  bool
	stuck bool
}

// NewGreedy constructs a greedy walker over g.
// Returns ErrNilGrid on a nil grid and ErrMissingEndpoint if the grid lacks
// a start or end point.
func NewGreedy(g *grid.Grid) (*Greedy, error) {
	start, end, err := endpoints(g)
	if err != nil {
		return nil, err
	}

	return &Greedy{
		board:   g,
		end:     end,
		current: start,
		visited: map[grid.Position]struct{}{start: {}},
	}, nil
}

// Advance moves the walker by one step.
//
// If the current position is the end, it returns Done. Otherwise it picks the
// walkable, unvisited neighbor minimizing the distance to the end — ties
// broken by the grid.Neighbors4 enumeration order (left, right, up, down) —
// and returns Continue with the new position. If no such neighbor exists the
// walker is stuck and returns Stuck. Both terminal results are sticky.
func (w *Greedy) Advance() StepResult {
	switch {
	case w.stuck:
		return stepStuck
	case w.done:
		return stepDone
	case w.current == w.end:
		w.done = true

		return stepDone
	}

	found := false
	var best grid.Position
	bestDist := 0.0
	for _, q := range w.board.Neighbors4(w.current) {
		if !w.board.IsWalkable(q) {
			continue
		}
		if _, seen := w.visited[q]; seen {
			continue
		}
		// Strict < keeps the first candidate on ties, preserving the
		// enumeration-order tie-break.
		if d := q.DistanceTo(w.end); !found || d < bestDist {
			found, best, bestDist = true, q, d
		}
	}
	if !found {
		w.stuck = true

		return stepStuck
	}

	w.visited[best] = struct{}{}
	w.current = best

	return stepContinue(best)
}
