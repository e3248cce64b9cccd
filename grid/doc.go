// Package grid models the board every other gridpath component operates on:
// a finite 2D field of integer coordinates with single-cell walls and an
// optional start/end pair.
//
// What:
//
//   - Position is an immutable (x, y) value with value equality, usable as a
//     map key; DistanceTo gives the Euclidean distance between two positions.
//   - Grid holds the dimensions, the wall set and the endpoints. Its shape is
//     fixed at construction; walls and endpoints mutate through checked setters.
//   - Neighbors4 enumerates the axis-aligned neighbors in a fixed order that
//     downstream tie-breaking relies on: (x-1,y), (x+1,y), (x,y-1), (x,y+1).
//
// Bounds convention:
//
//	InBounds is INCLUSIVE on both ends: 0 ≤ x ≤ width and 0 ≤ y ≤ height,
//	so a width×height grid carries (width+1)×(height+1) distinct points.
//	Positions sit on grid-line intersections, not inside cells, so the board
//	has one more point than cell along each axis. Every consumer preserves
//	this convention, including the border filter in hull.SelectEndpoints.
//
// Invariant:
//
//	The wall set and the endpoints are mutually exclusive. SetWall on the
//	start or end returns ErrOccupied, as does SetStart/SetEnd on a wall.
//
// Complexity:
//
//   - IsWall / IsWalkable / InBounds / setters: O(1).
//   - Neighbors4: O(1) (at most four candidates).
//   - OpenPoints / Walls: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: New called with a non-positive width or height.
//   - ErrInvalidPosition: a mutation addressed an out-of-bounds position.
//   - ErrOccupied: a mutation would overlap a wall with an endpoint.
package grid
