// Package forage plans collect-every-goal routes on bounded 2-D grids with
// static obstacles.
//
// 🚀 What is forage?
//
//	A small, focused library for multi-goal grid pathfinding:
//		• grid/   — immutable world model: coordinates, moves, bounds,
//		            obstacles, and an ASCII map parser
//		• search/ — the state-space engine: problem formalization plus three
//		            strategies — uniform-cost, heuristic best-first (A*-style),
//		            and iterative-deepening depth-limited search
//
// ✨ Why choose forage?
//
//   - One formalization, three strategies – compare optimality, pruning and
//     memory behavior on identical problems
//   - Multi-goal native – the remaining-goal set lives inside the search
//     state, so "visit everything" is solved exactly, not goal-by-goal
//   - Legible worlds – draw test maps in ASCII ('#' wall, '@' start, '*' goal)
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	#####
//	#@.*#
//	#####
//
//	one agent, one goal two steps east: East, East, reward 10-1-1 = 8.
//
// Dive into examples/ for runnable demos and each package's doc.go for the
// full contract.
package forage
