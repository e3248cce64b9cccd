// Package wallgen carves randomized wall segments into a grid.Grid,
// producing maze-like obstacles for the pathfinders to thread.
//
// What:
//
//	Carve draws a batch of wall segments. Segment count and length scale
//	with board area: with alpha = ⌈ln(width·height)⌉, the number of
//	segments is uniform in [alpha, 2·alpha] and each segment's length is
//	uniform in [2·alpha, alpha²]. A segment starts at a uniformly random
//	still-open point with a uniformly random axis-aligned direction and
//	walks forward, turning 90° with fixed probability at each placed cell.
//
// Look-ahead rule:
//
//	Before committing a cell, the segment aborts (keeping what was already
//	placed) if the cell is no longer open, or if any of the three points
//	ahead of the direction of travel — straight ahead plus the two forward
//	diagonals — already carries a wall. This keeps segments from touching
//	or crossing and from pinching off 1-cell-wide unreachable pockets.
//
// Determinism:
//
//	All randomness flows through the injected Rand; there is no ambient
//	RNG. Seed points are drawn from the grid's row-major open-point order,
//	so for a fixed seed and the same initial grid, Carve produces an
//	identical wall set. Start and end points, if set, are never walled.
//
// Complexity:
//
//   - Carve: O(S × (W×H)) worst case (S segments, each reseeding from the
//     open-point scan); the walk itself is O(length) per segment.
//
// Errors:
//
//   - ErrNilGrid: Carve called on a nil grid.
//   - ErrNilRand: Carve called without a random source.
package wallgen
