// File: hull/example_test.go
package hull_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/hull"
)

// ExampleCompute demonstrates hull construction and diameter selection on
// the square-corners scenario: the interior point is dropped and the
// farthest pair are opposite corners at distance 5√2.
//
// Complexity: O(n·log n) for the hull, O(h²) for the diameter.
func ExampleCompute() {
	points := []grid.Position{
		{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 2, Y: 2},
	}

	vertices, _ := hull.Compute(points)
	fmt.Println("hull:", vertices)

	a, b := hull.FarthestPair(vertices)
	fmt.Printf("diameter: %s %s = %.4f\n", a, b, a.DistanceTo(b))
	// Output:
	// hull: [(0,0) (5,0) (5,5) (0,5)]
	// diameter: (0,0) (5,5) = 7.0711
}
