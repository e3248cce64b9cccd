// Package hull computes the convex hull of open board points and uses its
// diameter — the farthest pair of hull vertices — to choose visually
// interesting start and end points for a pathfinding run.
//
// What:
//
//   - Compute runs a Graham scan: pivot at the lowest (y, then x) point,
//     polar-angle sort around it, then a stack sweep that pops while the
//     last three points fail to make a strict counter-clockwise turn.
//   - FarthestPair scans all hull-vertex pairs for the maximum Euclidean
//     distance. O(h²) over hull size h, which is far smaller than the full
//     point count in practice.
//   - SelectEndpoints filters the grid's open points down to the interior
//     (border coordinates excluded, honoring the inclusive-bounds
//     convention: x ∈ {0, width} and y ∈ {0, height} are border), computes
//     the hull, and installs the diameter pair as the grid's start and end.
//
// Determinism:
//
//	The hull of a point set does not depend on input order, and the angle
//	sort resolves collinear ties by distance, so for a point set with a
//	unique diameter pair the selected endpoints are stable across input
//	permutations. Which of the pair becomes start versus end is arbitrary.
//
// Complexity:
//
//   - Compute: O(n log n) time, O(n) space.
//   - FarthestPair: O(h²) time, O(1) space.
//
// Errors:
//
//   - ErrInsufficientPoints: fewer than three eligible points; hull
//     construction would be degenerate, so the operation fails explicitly
//     (callers typically regenerate walls with a fresh seed and retry).
package hull
