// Package hull implements convex-hull-based endpoint selection
// for github.com/katalvlaran/gridpath.
package hull

import (
	"errors"
	"fmt"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrInsufficientPoints indicates hull construction was attempted on fewer
// than three points.
var ErrInsufficientPoints = errors.New("hull: need at least three points")

// minHullPoints is the smallest input for which a hull is well-defined.
const minHullPoints = 3

// Compute returns the convex hull of points in counter-clockwise order,
// starting from the lowest (y, then x) point. Collinear points along hull
// edges are excluded; a fully collinear input collapses to its two extremes.
// Returns ErrInsufficientPoints for fewer than three input points.
func Compute(points []grid.Position) ([]grid.Position, error) {
	if len(points) < minHullPoints {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(points))
	}

	// 1) Pivot: lowest y, then lowest x.
	pts := make([]orb.Point, len(points))
	for i, p := range points {
		pts[i] = p.Point()
	}
	pivot := pts[0]
	for _, p := range pts[1:] {
		if p.Y() < pivot.Y() || (p.Y() == pivot.Y() && p.X() < pivot.X()) {
			pivot = p
		}
	}

	// 2) Sort the remaining points by polar angle around the pivot,
	//    collinear ties resolved nearest-first. Nearest-first is what lets
	//    the sweep below pop interior collinear points via its strict-turn
	//    test, including those on the final ray.
	rest := make([]orb.Point, 0, len(pts)-1)
	for _, p := range pts {
		if p != pivot {
			rest = append(rest, p)
		}
	}
	slices.SortFunc(rest, func(a, b orb.Point) int {
		switch c := cross(pivot, a, b); {
		case c > 0:
			return -1
		case c < 0:
			return 1
		}
		da, db := planar.DistanceSquared(pivot, a), planar.DistanceSquared(pivot, b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})

	// 3) Sweep: pop while the last three points do not make a strict
	//    counter-clockwise turn.
	stack := append(make([]orb.Point, 0, len(pts)), pivot)
	for _, p := range rest {
		for len(stack) >= 2 && cross(stack[len(stack)-2], stack[len(stack)-1], p) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}

	out := make([]grid.Position, len(stack))
	for i, p := range stack {
		out[i] = grid.Position{X: int(p.X()), Y: int(p.Y())}
	}

	return out, nil
}

// FarthestPair returns the two points of vertices with the maximum Euclidean
// distance between them — for a convex hull, its diameter. Ties keep the
// first pair found in vertex order. Callers must pass at least two points;
// fewer yields zero values.
func FarthestPair(vertices []grid.Position) (grid.Position, grid.Position) {
	var a, b grid.Position
	best := -1.0
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if d := planar.DistanceSquared(vertices[i].Point(), vertices[j].Point()); d > best {
				best = d
				a, b = vertices[i], vertices[j]
			}
		}
	}

	return a, b
}

// SelectEndpoints picks the two open interior points farthest apart and
// installs them as g's start and end. Border points (x equal to 0 or width,
// y equal to 0 or height) are excluded before hull construction.
// Returns ErrInsufficientPoints if fewer than three interior points remain;
// callers typically recarve walls with a new seed and retry.
func SelectEndpoints(g *grid.Grid) (grid.Position, grid.Position, error) {
	var interior []grid.Position
	for _, p := range g.OpenPoints() {
		if p.X > 0 && p.X < g.Width && p.Y > 0 && p.Y < g.Height {
			interior = append(interior, p)
		}
	}

	vertices, err := Compute(interior)
	if err != nil {
		return grid.Position{}, grid.Position{}, err
	}
	start, end := FarthestPair(vertices)

	if err := g.SetStart(start); err != nil {
		return grid.Position{}, grid.Position{}, err
	}
	if err := g.SetEnd(end); err != nil {
		return grid.Position{}, grid.Position{}, err
	}

	return start, end, nil
}

// cross returns the z-component of (b−a) × (c−a): positive for a strict
// counter-clockwise turn a→b→c, zero for collinear.
func cross(a, b, c orb.Point) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}
