package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/forage/grid"
)

// State is a point in the search space: where the agent stands and which
// goals it has not collected yet. The remaining-goal set only ever shrinks
// along a path; goals are never re-added.
//
// States reached along different paths are the same state: identity is the
// location plus the remaining-goal set, never the route taken.
type State struct {
	// Loc is the agent's current cell.
	Loc grid.Coordinate

	// remaining is the uncollected goal set. It is shared, never mutated:
	// Transition copies it only when a goal is consumed.
	remaining map[grid.Coordinate]struct{}
}

// GoalCount returns the number of goals not yet collected.
func (s State) GoalCount() int { return len(s.remaining) }

// HasGoal reports whether c is still an uncollected goal.
func (s State) HasGoal(c grid.Coordinate) bool {
	_, ok := s.remaining[c]

	return ok
}

// Goals returns the uncollected goals as a fresh slice, in no particular order.
func (s State) Goals() []grid.Coordinate {
	out := make([]grid.Coordinate, 0, len(s.remaining))
	for g := range s.remaining {
		out = append(out, g)
	}

	return out
}

// key renders the state in canonical form for use as a map key: the location
// followed by the remaining goals in sorted order. Two states compare equal
// exactly when their keys match, regardless of how they were reached.
// Complexity: O(k log k) for k remaining goals.
func (s State) key() string {
	goals := s.Goals()
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].X != goals[j].X {
			return goals[i].X < goals[j].X
		}

		return goals[i].Y < goals[j].Y
	})

	var b strings.Builder
	b.WriteString(strconv.Itoa(s.Loc.X))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.Loc.Y))
	for _, g := range goals {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(g.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(g.Y))
	}

	return b.String()
}

// Node wraps a State with the bookkeeping a search strategy needs: the cost
// accumulated from the root, the heuristic estimate of what remains, and the
// action/parent links used to reconstruct the plan afterwards.
//
// Nodes are never mutated after construction. The parent links form an
// acyclic chain back to the root; reconstruction walks it and reverses.
type Node struct {
	state     State
	pathCost  float64    // accumulated cost from the root (lower is better)
	heuristic float64    // estimated cost still to pay; 0 for uninformed search
	action    *grid.Move // move that produced this node; nil at the root
	parent    *Node      // nil at the root
}

// State returns the node's search state.
func (n *Node) State() State { return n.state }

// PathCost returns the accumulated cost from the root to this node.
func (n *Node) PathCost() float64 { return n.pathCost }

// HeuristicCost returns the heuristic estimate attached at construction.
func (n *Node) HeuristicCost() float64 { return n.heuristic }

// totalCost is the frontier ordering key: accumulated plus estimated cost.
func (n *Node) totalCost() float64 { return n.pathCost + n.heuristic }

// less orders nodes for the priority frontier: ascending total estimated
// cost, ties broken by fewer remaining goals.
func (n *Node) less(other *Node) bool {
	if n.totalCost() == other.totalCost() {
		return n.state.GoalCount() < other.state.GoalCount()
	}

	return n.totalCost() < other.totalCost()
}

// unwind collects the actions along the parent chain from the root to n,
// in execution order. The root contributes no action.
// Complexity: O(path length).
func (n *Node) unwind() []grid.Move {
	actions := make([]grid.Move, 0, 8)
	for cur := n; cur.action != nil; cur = cur.parent {
		actions = append(actions, *cur.action)
	}
	// Collected goal-to-root; reverse into start-to-goal order.
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return actions
}
