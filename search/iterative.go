// Package search — iterative-deepening depth-limited strategy.
//
// Memory bounded by the current path, with per-branch cycle pruning.
package search

import (
	"github.com/katalvlaran/forage/grid"
)

// IterativeDeepening finds a plan by running depth-limited searches at
// depth limits 0, 1, 2, … and stopping at the first depth that yields one.
// The objective is path length; step costs and goal rewards play no part in
// which plan is found. TotalReward on a found plan is the configured step
// cost times the plan length (the strategy collects goals only as a side
// effect of reaching them).
//
// Each depth-limited pass recurses with a branch-local visited set: a state
// already on the current root-to-node path is never re-entered, while the
// same state may be visited again on a different branch. Memory is therefore
// proportional to the current path, not the explored graph — the tradeoff
// against UniformCost and AStar.
//
// Outcomes: SolutionFound with the first plan discovered; NoSolution as soon
// as a pass exhausts every branch below its limit without cutting off
// (deeper limits cannot help, and the outer loop stops immediately); Cutoff
// when every limit up to the free-cell count was cut off. The free-cell cap
// bounds the deepest cycle-free path, so the loop always terminates.
//
// Returns ErrNilProblem for a nil problem.
//
// Complexity: O(b^d) time per pass at depth d with branching factor b,
// memory O(d).
func IterativeDeepening(p *Problem) (Result, error) {
	// 1) Validate input.
	if p == nil {
		return Result{}, ErrNilProblem
	}

	// 2) Short-circuit the trivial problem before any deepening.
	root := p.root(ZeroHeuristic)
	if p.IsGoal(root.state) {
		return Result{Actions: []grid.Move{}, Expanded: 1, Outcome: SolutionFound}, nil
	}

	// 3) Deepen up to the longest possible cycle-free path.
	expanded := 0
	for depth := 0; depth < p.grid.FreeCells(); depth++ {
		run := &dlsRun{problem: p, visited: make(map[string]struct{}, depth+1)}
		node, outcome := run.recurse(root, depth)
		expanded += run.expanded

		switch outcome {
		case SolutionFound:
			actions := node.unwind()

			return Result{
				Actions:     actions,
				TotalReward: p.stepCost * float64(len(actions)),
				Expanded:    expanded,
				Outcome:     SolutionFound,
			}, nil
		case NoSolution:
			// Every branch bottomed out below the limit; deeper cannot help.
			return Result{Expanded: expanded, Outcome: NoSolution}, nil
		}
		// Cutoff: try the next depth.
	}

	return Result{Expanded: expanded, Outcome: Cutoff}, nil
}

// dlsRun carries the mutable state of one depth-limited pass: the branch-local
// visited set and the expansion counter.
type dlsRun struct {
	problem  *Problem
	visited  map[string]struct{} // states on the current root-to-node path
	expanded int
}

// recurse performs depth-limited search below n with the given remaining
// budget. It returns the solution node with SolutionFound, nil with Cutoff
// when the budget ran out somewhere below, or nil with NoSolution when every
// continuation was exhausted or pruned.
//
// The visited set is extended with n for the duration of the children's
// recursion and restored on backtrack, giving exact branch-local semantics
// with O(path) memory.
func (r *dlsRun) recurse(n *Node, budget int) (*Node, Outcome) {
	r.expanded++

	// 1) Goal test before the budget check: a goal on the boundary counts.
	if r.problem.IsGoal(n.state) {
		return n, SolutionFound
	}

	// 2) Budget exhausted: a solution may exist deeper.
	if budget == 0 {
		return nil, Cutoff
	}

	// 3) Extend the branch with n; restore on the way out.
	key := n.state.key()
	r.visited[key] = struct{}{}
	defer delete(r.visited, key)

	// 4) Recurse into each legal child not already on this branch.
	cutoff := false
	for _, m := range r.problem.LegalActions(n.state) {
		child := r.problem.expand(n, m, ZeroHeuristic)
		if _, onBranch := r.visited[child.state.key()]; onBranch {
			continue
		}

		node, outcome := r.recurse(child, budget-1)
		switch outcome {
		case SolutionFound:
			// Short-circuit: the first concrete solution wins.
			return node, SolutionFound
		case Cutoff:
			cutoff = true
		}
	}

	// 5) No child solved it: cutoff if any child was cut off, otherwise
	//    this branch is definitively exhausted.
	if cutoff {
		return nil, Cutoff
	}

	return nil, NoSolution
}
