// File: pathfind/example_test.go
package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// ExampleUniformCost_FindPath demonstrates a shortest path around a wall.
// Scenario:
//
//   - 5×5 board, vertical wall at x=2 covering y=0..3 (gap at y=4 only).
//   - Start (0,0), end (4,0): the direct row is blocked, so the path dives
//     to the gap and climbs back — 12 unit edges instead of 4.
//
// Complexity: O(W·H·log(W·H))
func ExampleUniformCost_FindPath() {
	g, _ := grid.New(5, 5)
	for y := 0; y <= 3; y++ {
		_ = g.SetWall(grid.Position{X: 2, Y: y})
	}
	_ = g.SetStart(grid.Position{X: 0, Y: 0})
	_ = g.SetEnd(grid.Position{X: 4, Y: 0})

	finder, _ := pathfind.NewUniformCost(g)
	path, _ := finder.FindPath()

	fmt.Println("steps:", len(path))
	fmt.Println("goal:", path[len(path)-1])
	// Output:
	// steps: 12
	// goal: (4,0)
}

// ExampleGreedy_Advance demonstrates step-wise iteration: one Advance per
// animation frame until a terminal result.
func ExampleGreedy_Advance() {
	g, _ := grid.New(3, 3)
	_ = g.SetStart(grid.Position{X: 0, Y: 0})
	_ = g.SetEnd(grid.Position{X: 3, Y: 0})

	walker, _ := pathfind.NewGreedy(g)
	for {
		res := walker.Advance()
		if res.Kind != pathfind.StepContinue {
			break
		}
		fmt.Println(res.Pos)
	}
	// Output:
	// (1,0)
	// (2,0)
	// (3,0)
}
