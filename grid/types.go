// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates New was called with a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrInvalidPosition indicates a position outside the inclusive grid bounds.
	ErrInvalidPosition = errors.New("grid: position out of bounds")
	// ErrOccupied indicates a wall/endpoint mutation that would make the wall
	// set and the endpoints overlap.
	ErrOccupied = errors.New("grid: walls and endpoints are mutually exclusive")
)

// Position is a point on the board. It is a plain value type: two Positions
// are equal iff both coordinates match, and it may be used as a map key.
type Position struct {
	X, Y int
}

// Point converts the position to an orb.Point for geometry consumers.
func (p Position) Point() orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// DistanceTo returns the Euclidean distance from p to q.
// Used by pathfinders as a heuristic only, never as a traversal cost.
func (p Position) DistanceTo(q Position) float64 {
	return planar.Distance(p.Point(), q.Point())
}

// String formats the position as "(x,y)" for errors and debug output.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
