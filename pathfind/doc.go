// Package pathfind implements two pathfinding strategies over a grid.Grid:
// a greedy straight-line walker and a uniform-cost (Dijkstra) search.
//
// What:
//
//   - Pathfinder is the shared capability: Advance() produces one StepResult
//     per call. StepResult is a tagged value — Continue carries the next
//     Position on the path, Done marks successful termination, Stuck marks a
//     dead end. Terminal results are sticky: once Done or Stuck is returned,
//     every later Advance repeats it.
//   - Greedy walks from the start, always stepping to the unvisited walkable
//     neighbor closest (straight-line) to the end. No backtracking, no
//     completeness guarantee: any local minimum ends the walk with Stuck.
//   - UniformCost runs Dijkstra over unit-cost edges and guarantees a
//     shortest path by edge count. FindPath returns the whole path in one
//     call; Advance replays it one Position per call for animation.
//
// Tie-break:
//
//	Greedy breaks equal distances by the neighbor enumeration order of
//	grid.Neighbors4: left, right, up, down. UniformCost inherits the
//	deterministic update-order tie-break of pqueue.IndexedQueue.
//
// Relaxation:
//
//	When a cheaper route to a frontier neighbor is found, the NEIGHBOR's
//	priority and parent are updated (conventional Dijkstra relaxation).
//
// Complexity:
//
//   - Greedy: O(1) per Advance; at most O(W×H) steps total.
//   - UniformCost: O(W×H × log(W×H)) for the search, O(1) per replayed step.
//
// Errors:
//
//   - ErrNilGrid: a pathfinder was constructed on a nil grid.
//   - ErrMissingEndpoint: the grid lacks a start or end point.
//   - ErrNoPathFound: the open set drained before the end was reached.
//
// The search state inside each pathfinder is mutable and not safe for
// concurrent use; abandon a search by dropping the value.
package pathfind
