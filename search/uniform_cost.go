// Package search — uniform-cost strategy.
//
// The classic cost-ordered search shaped around an incumbent-solution bound,
// since goal rewards make edges effectively cost-reducing.
package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/forage/grid"
)

// UniformCost finds the minimum-total-cost plan collecting every goal,
// where total cost is step costs net of rewards. It orders its frontier by
// accumulated path cost alone, ignoring any configured heuristic.
//
// Goal rewards let path cost decrease upon collection, so the classic
// non-negative-edge assumption does not hold. The search stays correct
// because the goal set only ever shrinks: total collectible reward is
// bounded by the finite goal count and no cost-reducing cycle exists.
// Rather than finalizing a state on first pop, the loop keeps an incumbent
// best solution and prunes a popped node only when even collecting every
// goal it has left could not bring it below the incumbent; it stops
// outright once that holds against the full reward pool, since the
// frontier is cost-ordered.
//
// Returns ErrNilProblem for a nil problem. A start already at goal yields an
// empty plan at zero reward with only the root expanded. If no plan exists,
// the frontier drains and the Result carries NoSolution.
//
// Complexity: O(N log N) pops for N reachable (location, goal-set) states,
// memory O(N) for the reached map and frontier.
func UniformCost(p *Problem) (Result, error) {
	// 1) Validate input.
	if p == nil {
		return Result{}, ErrNilProblem
	}

	// 2) Seed the root; the trivial problem short-circuits before any frontier work.
	root := p.root(ZeroHeuristic)
	if p.IsGoal(root.state) {
		return Result{Actions: []grid.Move{}, Expanded: 1, Outcome: SolutionFound}, nil
	}

	// 3) Initialize frontier, reached map, and the incumbent bound. The
	//    full reward pool bounds how far below its current cost any node
	//    can still sink.
	frontier := make(nodePQ, 0, 64)
	heap.Init(&frontier)
	heap.Push(&frontier, root)
	reached := map[string]float64{root.state.key(): 0}
	fullReward := p.maxCollectibleReward(root.state)
	bound := math.Inf(1)
	var incumbent *Node

	expanded := 0
	for frontier.Len() > 0 {
		// 4) Pop the cheapest node. Pop costs are non-decreasing, so once
		//    even the full reward pool cannot bring one below the
		//    incumbent, no frontier node can.
		n := heap.Pop(&frontier).(*Node)
		if n.pathCost-fullReward >= bound {
			break
		}

		// 5) Drop stale lazy-decrease-key entries and nodes whose own
		//    remaining goals cannot beat the incumbent.
		k := n.state.key()
		if best, ok := reached[k]; ok && n.pathCost > best {
			continue
		}
		if n.pathCost-p.maxCollectibleReward(n.state) >= bound {
			continue
		}
		expanded++

		// 6) Expand every legal child.
		for _, m := range p.LegalActions(n.state) {
			child := p.expand(n, m, ZeroHeuristic)
			ck := child.state.key()

			// 7) Keep the child only if its state is new or improved.
			if best, ok := reached[ck]; ok && child.pathCost >= best {
				continue
			}
			reached[ck] = child.pathCost
			heap.Push(&frontier, child)

			// 8) A goal-complete child that beats the incumbent becomes the incumbent.
			if p.IsGoal(child.state) && child.pathCost < bound {
				bound = child.pathCost
				incumbent = child
			}
		}
	}

	// 9) Drained frontier without an incumbent: no goal is reachable.
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
