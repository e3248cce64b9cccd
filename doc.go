// Package gridpath is an engine for visualizing pathfinding over a 2D
// board with procedurally carved walls.
//
// 🚀 What is gridpath?
//
//	A small, deterministic library that brings together:
//		• Board model: inclusive-bounds grid with walls and endpoints
//		• Indexed priority queue: O(log n) decrease-key, O(1) membership
//		• Pathfinders: greedy straight-line walker & uniform-cost (Dijkstra)
//		• Wall carver: randomized walk-based maze segments, seedable RNG
//		• Endpoint selector: convex hull + diameter to pick the farthest pair
//
// ✨ Why choose gridpath?
//
//   - Step-wise by design – every pathfinder emits one Position per Advance,
//     so a renderer can animate the search as it unfolds
//   - Deterministic – all randomness flows through an injected RNG;
//     the same seed always carves the same maze
//   - Pure engine – no rendering, no timing, no I/O inside the core
//
// Everything is organized under five subpackages plus a demo driver:
//
//	grid/        — Position and Grid: bounds, walls, endpoints, neighbors
//	pqueue/      — generic indexed binary min-heap with Replace
//	pathfind/    — Greedy and UniformCost pathfinders, StepResult protocol
//	wallgen/     — randomized wall segment carver
//	hull/        — convex hull, farthest pair, endpoint selection
//	cmd/pathviz/ — terminal animation of a full run (tcell)
//
// Quick ASCII example:
//
//	S · · ▓ ·
//	· ▓ · ▓ ·
//	· ▓ · · E
//
//	a 5×3 board where S/E were chosen as the hull's farthest pair and the
//	uniform-cost pathfinder threads the gap in the wall.
//
// Dive into the package docs for contracts, complexity notes and errors.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
