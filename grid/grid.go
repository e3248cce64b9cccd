package grid

import "fmt"

// Grid is the board: fixed dimensions, a mutable set of single-cell walls,
// and an optional start/end pair. The shape never changes after New; walls
// and endpoints mutate through the checked setters below.
//
// Bounds are inclusive: valid coordinates are 0 ≤ x ≤ Width, 0 ≤ y ≤ Height.
type Grid struct {
	Width, Height int

	walls map[Position]struct{}

	start, end       Position
	hasStart, hasEnd bool
}

// New constructs an empty Grid of the given dimensions.
// Returns ErrBadDimensions if width or height is not positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}

	return &Grid{
		Width:  width,
		Height: height,
		walls:  make(map[Position]struct{}),
	}, nil
}

// InBounds reports whether p lies on the board. Both ends are inclusive.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X <= g.Width && p.Y >= 0 && p.Y <= g.Height
}

// IsWall reports whether p carries a wall.
func (g *Grid) IsWall(p Position) bool {
	_, ok := g.walls[p]

	return ok
}

// IsWalkable reports whether a path may pass through p:
// in bounds and not a wall.
func (g *Grid) IsWalkable(p Position) bool {
	return g.InBounds(p) && !g.IsWall(p)
}

// SetWall marks p as a wall.
// Returns ErrInvalidPosition if p is out of bounds, ErrOccupied if p is the
// start or end point. Setting an existing wall again is a no-op.
func (g *Grid) SetWall(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: wall at %s", ErrInvalidPosition, p)
	}
	if (g.hasStart && g.start == p) || (g.hasEnd && g.end == p) {
		return fmt.Errorf("%w: wall at endpoint %s", ErrOccupied, p)
	}
	g.walls[p] = struct{}{}

	return nil
}

// ClearWall removes the wall at p, if any.
func (g *Grid) ClearWall(p Position) {
	delete(g.walls, p)
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	return len(g.walls)
}

// Walls returns the wall positions. Order is unspecified.
func (g *Grid) Walls() []Position {
	out := make([]Position, 0, len(g.walls))
	for p := range g.walls {
		out = append(out, p)
	}

	return out
}

// SetStart fixes the start point.
// Returns ErrInvalidPosition if p is out of bounds, ErrOccupied if p is a wall.
func (g *Grid) SetStart(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: start at %s", ErrInvalidPosition, p)
	}
	if g.IsWall(p) {
		return fmt.Errorf("%w: start on wall %s", ErrOccupied, p)
	}
	g.start, g.hasStart = p, true

	return nil
}

// SetEnd fixes the end point.
// Returns ErrInvalidPosition if p is out of bounds, ErrOccupied if p is a wall.
func (g *Grid) SetEnd(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: end at %s", ErrInvalidPosition, p)
	}
	if g.IsWall(p) {
		return fmt.Errorf("%w: end on wall %s", ErrOccupied, p)
	}
	g.end, g.hasEnd = p, true

	return nil
}

// Start returns the start point and whether one has been set.
func (g *Grid) Start() (Position, bool) {
	return g.start, g.hasStart
}

// End returns the end point and whether one has been set.
func (g *Grid) End() (Position, bool) {
	return g.end, g.hasEnd
}

// Neighbors4 returns the in-bounds axis-aligned neighbors of p, in the fixed
// order (x-1,y), (x+1,y), (x,y-1), (x,y+1). Walls are NOT filtered here;
// callers decide whether they want walkable-only neighbors.
//
// The enumeration order is part of the contract: the greedy pathfinder breaks
// distance ties by it.
func (g *Grid) Neighbors4(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, q := range [4]Position{
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
	} {
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// OpenPoints returns every in-bounds, non-wall point in row-major order
// (y ascending, then x ascending). Border points are included; consumers
// that need interior points only (endpoint selection) filter them out.
func (g *Grid) OpenPoints() []Position {
	out := make([]Position, 0, (g.Width+1)*(g.Height+1)-len(g.walls))
	for y := 0; y <= g.Height; y++ {
		for x := 0; x <= g.Width; x++ {
			p := Position{x, y}
			if !g.IsWall(p) {
				out = append(out, p)
			}
		}
	}

	return out
}
