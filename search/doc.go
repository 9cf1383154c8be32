// Package search plans routes that collect every goal on a bounded 2-D grid
// with static obstacles, minimizing movement cost net of per-goal rewards.
//
// What:
//
//   - Problem: immutable formalization of one planning task — grid, start,
//     goal set, action set, step cost, goal reward, heuristic.
//   - State / Node: (location, remaining goals) with cost and parent links;
//     state identity ignores cost and ancestry.
//   - UniformCost: optimal cost-ordered search with an incumbent bound.
//   - AStar: the same loop keyed on path cost plus a heuristic estimate
//     (MinGoalDistance: Manhattan distance to the nearest remaining goal).
//   - IterativeDeepening: memory-bounded depth-limited search with
//     branch-local cycle pruning; distinguishes cutoff from no-solution.
//
// Why:
//
//   - Collect-everything routing: couriers, sweepers, item pickups on maps.
//   - The remaining-goal set rides inside the state, so revisiting a cell
//     with fewer goals left is a genuinely different search state.
//   - Three strategies expose the classic time/memory/optimality tradeoffs
//     over a single problem formalization.
//
// Cost convention: StepCost and GoalReward are rewards (defaults -1 and +10).
// Internally nodes minimize the negated sum, so collecting a goal pulls path
// cost down; Result.TotalReward reports the positive-is-better total.
//
// Complexity:
//
//   - UniformCost / AStar: O(N log N) over N reachable (location, goal-set)
//     states; memory O(N).
//   - IterativeDeepening: O(b^d) time per depth d, memory O(d); d is capped
//     by the grid's free-cell count.
//
// Options:
//
//   - WithStepCost(c) / WithGoalReward(r): cost configuration.
//   - WithMoves(...): replace the four orthogonal moves with any finite
//     delta set.
//   - WithHeuristic(h): estimate for AStar; ZeroHeuristic by default.
//
// Errors:
//
//   - ErrNilGrid, ErrNoMoves, ErrStartOutOfBounds, ErrStartOnObstacle,
//     ErrGoalOutOfBounds, ErrGoalOnObstacle: NewProblem preconditions.
//   - ErrNilProblem: nil problem handed to a strategy.
//
// Unreachable goals are not errors: strategies terminate and report
// NoSolution (or Cutoff, for a depth-limited pass that ran out of budget).
package search
