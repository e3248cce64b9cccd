package wallgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// directions are the four axis-aligned unit steps, indexed by rng.Intn(4).
var directions = [4]grid.Position{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// Carve draws randomized wall segments into g. See the package documentation
// for the segment model and the look-ahead abort rule.
//
// Carve mutates only the wall set; start/end, if already chosen, are treated
// as permanently open. Deterministic for a fixed rng stream and initial grid.
func Carve(g *grid.Grid, rng Rand, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	if rng == nil {
		return ErrNilRand
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Segment budget scales logarithmically with board area.
	alpha := int(math.Ceil(math.Log(float64(g.Width * g.Height))))
	segments := randInt(rng, alpha, 2*alpha)

	c := &carver{g: g, rng: rng, cfg: cfg}
	for i := 0; i < segments; i++ {
		length := randInt(rng, 2*alpha, alpha*alpha)
		if err := c.segment(length); err != nil {
			return fmt.Errorf("wallgen: segment %d: %w", i, err)
		}
	}

	return nil
}

// carver bundles the per-run state so segment and its helpers stay short.
type carver struct {
	g   *grid.Grid
	rng Rand
	cfg Options
}

// segment walks one wall segment of at most length cells.
func (c *carver) segment(length int) error {
	seeds := c.openPoints()
	if len(seeds) == 0 {
		return nil
	}
	cur := seeds[c.rng.Intn(len(seeds))]
	dir := directions[c.rng.Intn(len(directions))]

	for step := 0; step < length; step++ {
		// Abort before committing: the cell must still be open and the three
		// points ahead of the direction of travel must be wall-free.
		if !c.open(cur) || c.aheadBlocked(cur, dir) {
			return nil
		}
		if err := c.g.SetWall(cur); err != nil {
			return err
		}
		// Turn 90° with fixed probability, picking uniformly between the two
		// perpendicular directions; otherwise keep going straight.
		if c.rng.Float64() < c.cfg.TurnProbability {
			dir = perpendicular(dir, c.rng.Intn(2))
		}
		cur = grid.Position{X: cur.X + dir.X, Y: cur.Y + dir.Y}
	}

	return nil
}

// open reports whether p can still receive a wall: walkable and not an
// endpoint.
func (c *carver) open(p grid.Position) bool {
	if !c.g.IsWalkable(p) {
		return false
	}
	if s, ok := c.g.Start(); ok && s == p {
		return false
	}
	if e, ok := c.g.End(); ok && e == p {
		return false
	}

	return true
}

// aheadBlocked reports whether any of the three points ahead of dir —
// straight ahead plus the two forward diagonals — already carries a wall.
func (c *carver) aheadBlocked(p, dir grid.Position) bool {
	ahead := grid.Position{X: p.X + dir.X, Y: p.Y + dir.Y}
	left := perpendicular(dir, 0)
	right := perpendicular(dir, 1)
	for _, q := range [3]grid.Position{
		ahead,
		{X: ahead.X + left.X, Y: ahead.Y + left.Y},
		{X: ahead.X + right.X, Y: ahead.Y + right.Y},
	} {
		if c.g.IsWall(q) {
			return true
		}
	}

	return false
}

// openPoints returns the grid's open points minus the endpoints, preserving
// the grid's deterministic row-major order for reproducible seeding.
func (c *carver) openPoints() []grid.Position {
	all := c.g.OpenPoints()
	out := all[:0:0]
	for _, p := range all {
		if c.open(p) {
			out = append(out, p)
		}
	}

	return out
}

// perpendicular returns one of the two directions orthogonal to dir,
// selected by which ∈ {0, 1}.
func perpendicular(dir grid.Position, which int) grid.Position {
	// Rotating (x,y) by ±90° maps to (∓y, ±x).
	if which == 0 {
		return grid.Position{X: -dir.Y, Y: dir.X}
	}

	return grid.Position{X: dir.Y, Y: -dir.X}
}

// randInt returns a uniform integer in the inclusive range [lo, hi].
// A degenerate range (hi < lo) collapses to lo.
func randInt(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}
