// Package search — heuristic best-first strategy.
//
// The uniform-cost loop re-keyed on estimated total cost (accumulated plus
// heuristic).
package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/forage/grid"
)

// AStar finds a minimum-total-cost plan guided by the problem's heuristic:
// frontier ordering, reached-map improvement checks, and the incumbent bound
// all use path cost plus heuristic estimate instead of path cost alone. With
// the default ZeroHeuristic it behaves exactly like UniformCost.
//
// The usual pairing is WithHeuristic(MinGoalDistance): Manhattan distance to
// the nearest remaining goal. That estimate is a true lower bound only in
// open terrain; obstacles that force detours can make it overestimate, so
// callers needing provable optimality on walled maps should prefer
// UniformCost. State deduplication is identical to UniformCost: location
// plus remaining goals, never cost or ancestry.
//
// Returns ErrNilProblem for a nil problem; outcome semantics match
// UniformCost.
//
// Complexity: O(N log N) pops for N reachable states, memory O(N); a sharp
// heuristic reaches far fewer of them.
func AStar(p *Problem) (Result, error) {
	// 1) Validate input.
	if p == nil {
		return Result{}, ErrNilProblem
	}

	// 2) Seed the root with its own estimate; short-circuit the trivial problem.
	root := p.root(p.heuristic)
	if p.IsGoal(root.state) {
		return Result{Actions: []grid.Move{}, Expanded: 1, Outcome: SolutionFound}, nil
	}

	// 3) Initialize frontier, reached map (keyed on estimated totals), and
	//    the bound; the full reward pool caps how far any estimate can
	//    still sink.
	frontier := make(nodePQ, 0, 64)
	heap.Init(&frontier)
	heap.Push(&frontier, root)
	reached := map[string]float64{root.state.key(): root.totalCost()}
	fullReward := p.maxCollectibleReward(root.state)
	bound := math.Inf(1)
	var incumbent *Node

	expanded := 0
	for frontier.Len() > 0 {
		// 4) Pop the node with the best estimated total. Pop estimates are
		//    non-decreasing, so once even the full reward pool cannot bring
		//    one below the incumbent, stop.
		n := heap.Pop(&frontier).(*Node)
		if n.totalCost()-fullReward >= bound {
			break
		}

		// 5) Drop stale lazy-decrease-key entries and nodes whose own
		//    remaining goals cannot beat the incumbent.
		k := n.state.key()
		if best, ok := reached[k]; ok && n.totalCost() > best {
			continue
		}
		if n.totalCost()-p.maxCollectibleReward(n.state) >= bound {
			continue
		}
		expanded++

		// 6) Expand every legal child under the problem heuristic.
		for _, m := range p.LegalActions(n.state) {
			child := p.Expand(n, m)
			ck := child.state.key()
			total := child.totalCost()

			// 7) Keep the child only if its estimated total is new or improved.
			if best, ok := reached[ck]; ok && total >= best {
				continue
			}
			reached[ck] = total
			heap.Push(&frontier, child)

			// 8) Track the best goal-complete child as the incumbent.
			if p.IsGoal(child.state) && total < bound {
				bound = total
				incumbent = child
			}
		}
	}

	// 9) No incumbent after draining the frontier: no goal is reachable.
	if incumbent == nil {
		return Result{Expanded: expanded, Outcome: NoSolution}, nil
	}

	return Result{
		Actions:     incumbent.unwind(),
		TotalReward: -incumbent.pathCost,
		Expanded:    expanded,
		Outcome:     SolutionFound,
	}, nil
}
