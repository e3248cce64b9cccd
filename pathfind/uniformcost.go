package pathfind

import (
	"slices"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pqueue"
)

// unitCost is the weight of every grid edge; path cost equals edge count.
const unitCost = 1.0

// UniformCost runs Dijkstra's algorithm over unit-cost edges. It guarantees
// a shortest path by edge count between the grid's start and end.
//
// The search runs at most once per instance: FindPath performs it on the
// first call and caches the outcome; Advance replays the cached path one
// position per call.
type UniformCost struct {
	board      *grid.Grid
	start, end grid.Position

	searched bool
	path     []grid.Position
	err      error
	next     int
}

// NewUniformCost constructs a uniform-cost pathfinder over g.
// Returns ErrNilGrid on a nil grid and ErrMissingEndpoint if the grid lacks
// a start or end point.
func NewUniformCost(g *grid.Grid) (*UniformCost, error) {
	start, end, err := endpoints(g)
	if err != nil {
		return nil, err
	}

	return &UniformCost{board: g, start: start, end: end}, nil
}

// FindPath returns the shortest path from start to end, excluding start and
// ending at end. Every position is walkable and 4-adjacent to its
// predecessor. Returns ErrNoPathFound if the end is unreachable.
// The result is computed once and cached; later calls are O(1).
func (u *UniformCost) FindPath() ([]grid.Position, error) {
	if !u.searched {
		u.path, u.err = u.search()
		u.searched = true
	}

	return u.path, u.err
}

// Advance replays the shortest path one position per call: Continue for each
// path position in order, then Done. If no path exists, every call returns
// Stuck. The search itself happens lazily on the first call.
func (u *UniformCost) Advance() StepResult {
	path, err := u.FindPath()
	if err != nil {
		return stepStuck
	}
	if u.next >= len(path) {
		return stepDone
	}
	p := path[u.next]
	u.next++

	return stepContinue(p)
}

// search is the Dijkstra main loop.
//
// open holds the frontier with the best-known tentative cost per position;
// closed holds positions whose cost is finalized; parents records the
// predecessor on the best-known path, used only for reconstruction.
func (u *UniformCost) search() ([]grid.Position, error) {
	open := pqueue.New[grid.Position]()
	open.Put(0, u.start)
	closed := make(map[grid.Position]struct{})
	parents := make(map[grid.Position]grid.Position)

	for {
		// 1) Pop the cheapest frontier node; a drained open set means the
		//    end is sealed off.
		cost, node, err := open.PopMin()
		if err != nil {
			return nil, ErrNoPathFound
		}

		// 2) Finalize it.
		closed[node] = struct{}{}

		// 3) Goal reached: walk parents back to start and reverse.
		if node == u.end {
			return u.reconstruct(parents), nil
		}

		// 4) Relax every walkable, unfinalized neighbor. On improvement the
		//    NEIGHBOR's priority and parent are updated.
		for _, nb := range u.board.Neighbors4(node) {
			if !u.board.IsWalkable(nb) {
				continue
			}
			if _, ok := closed[nb]; ok {
				continue
			}
			tentative := cost + unitCost
			if current, inOpen := open.PriorityOf(nb); !inOpen {
				open.Put(tentative, nb)
				parents[nb] = node
			} else if tentative < current {
				open.Replace(tentative, nb)
				parents[nb] = node
			}
		}
	}
}

// reconstruct follows parents from end back to start and reverses the chain.
// The start itself is excluded; for start == end the path is empty.
func (u *UniformCost) reconstruct(parents map[grid.Position]grid.Position) []grid.Position {
	var path []grid.Position
	for node := u.end; node != u.start; node = parents[node] {
		path = append(path, node)
	}
	slices.Reverse(path)

	return path
}
