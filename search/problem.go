// Package search formalizes multi-goal grid pathfinding as a state-space
// search problem and implements three strategies over it: uniform-cost
// search, heuristic best-first search, and iterative-deepening depth-limited
// search.
package search

import (
	"github.com/katalvlaran/forage/grid"
)

// Problem is an immutable snapshot of one planning task: the world, the
// agent's start cell, the goals to collect, the action set, and the cost
// configuration. Build it once per episode with NewProblem and hand it to
// any strategy; strategies never mutate it.
type Problem struct {
	grid       *grid.Grid
	start      grid.Coordinate
	goals      map[grid.Coordinate]struct{}
	stepCost   float64
	goalReward float64
	moves      []grid.Move
	heuristic  Heuristic
}

// NewProblem validates and assembles a Problem. Goal and move slices are
// copied; the caller may reuse them afterwards.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. The move set must be non-empty (ErrNoMoves).
//  3. start must be inside the grid (ErrStartOutOfBounds) and not an
//     obstacle (ErrStartOnObstacle).
//  4. Every goal must be inside the grid (ErrGoalOutOfBounds) and not an
//     obstacle (ErrGoalOnObstacle).
//
// Duplicate goal coordinates collapse into one goal.
// Complexity: O(len(goals) + len(moves)).
func NewProblem(g *grid.Grid, start grid.Coordinate, goals []grid.Coordinate, opts ...Option) (*Problem, error) {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate the move set.
	if len(cfg.Moves) == 0 {
		return nil, ErrNoMoves
	}

	// 4) Validate the start cell.
	if !g.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}
	if g.Blocked(start) {
		return nil, ErrStartOnObstacle
	}

	// 5) Validate and collect the goal set.
	goalSet := make(map[grid.Coordinate]struct{}, len(goals))
	for _, goal := range goals {
		if !g.InBounds(goal) {
			return nil, ErrGoalOutOfBounds
		}
		if g.Blocked(goal) {
			return nil, ErrGoalOnObstacle
		}
		goalSet[goal] = struct{}{}
	}

	// 6) Copy the move set to keep the Problem immutable.
	moves := make([]grid.Move, len(cfg.Moves))
	copy(moves, cfg.Moves)

	return &Problem{
		grid:       g,
		start:      start,
		goals:      goalSet,
		stepCost:   cfg.StepCost,
		goalReward: cfg.GoalReward,
		moves:      moves,
		heuristic:  cfg.Heur,
	}, nil
}

// Start returns the agent's initial cell.
func (p *Problem) Start() grid.Coordinate { return p.start }

// Grid returns the underlying world. The Grid itself is immutable.
func (p *Problem) Grid() *grid.Grid { return p.grid }

// Moves returns a copy of the full action set.
func (p *Problem) Moves() []grid.Move {
	out := make([]grid.Move, len(p.moves))
	copy(out, p.moves)

	return out
}

// InitialState returns the root state: the start cell with every goal
// still uncollected.
func (p *Problem) InitialState() State {
	return State{Loc: p.start, remaining: p.goals}
}

// LegalActions returns the subset of the full action set applicable in s:
// moves whose target cell is inside the grid and not an obstacle. Pure
// function of s and the static problem data.
// Complexity: O(len(moves)).
func (p *Problem) LegalActions(s State) []grid.Move {
	legal := make([]grid.Move, 0, len(p.moves))
	for _, m := range p.moves {
		if p.grid.Free(m.Apply(s.Loc)) {
			legal = append(legal, m)
		}
	}

	return legal
}

// Transition applies m to s and returns the successor state, consuming the
// target cell's goal if one remains there. Applying an illegal move is a
// caller bug, not a domain failure: the transition degrades to a no-op and
// returns s unchanged.
// Complexity: O(goals remaining) when a goal is consumed, O(1) otherwise.
func (p *Problem) Transition(s State, m grid.Move) State {
	next := m.Apply(s.Loc)
	if !p.grid.Free(next) {
		return s
	}

	remaining := s.remaining
	if s.HasGoal(next) {
		// Copy-on-consume keeps every previously issued State valid.
		remaining = make(map[grid.Coordinate]struct{}, len(s.remaining)-1)
		for g := range s.remaining {
			if g != next {
				remaining[g] = struct{}{}
			}
		}
	}

	return State{Loc: next, remaining: remaining}
}

// StepCost returns the reward earned by moving from s to next: the per-move
// step cost, plus the goal reward when next's cell was still a goal in s.
// It must be evaluated against the pre-transition state s; re-applying it to
// an already-transitioned state misses the consumption.
// Complexity: O(1).
func (p *Problem) StepCost(s State, next State) float64 {
	if s.HasGoal(next.Loc) {
		return p.stepCost + p.goalReward
	}

	return p.stepCost
}

// IsGoal reports whether s has collected every goal.
func (p *Problem) IsGoal(s State) bool { return s.GoalCount() == 0 }

// maxCollectibleReward bounds the reward still earnable from s: one goal
// reward per remaining goal, zero when the reward is not positive. In the
// minimization space no continuation of s can lower its path cost by more
// than this.
func (p *Problem) maxCollectibleReward(s State) float64 {
	if p.goalReward <= 0 {
		return 0
	}

	return p.goalReward * float64(s.GoalCount())
}

// Expand builds the child node reached by taking m from n, using the
// problem's configured heuristic.
func (p *Problem) Expand(n *Node, m grid.Move) *Node {
	return p.expand(n, m, p.heuristic)
}

// expand builds the child node reached by taking m from n, attaching the
// estimate of h. Path cost grows by the negated step reward, so minimizing
// path cost maximizes accumulated reward.
func (p *Problem) expand(n *Node, m grid.Move, h Heuristic) *Node {
	next := p.Transition(n.state, m)
	move := m

	return &Node{
		state:     next,
		pathCost:  n.pathCost - p.StepCost(n.state, next),
		heuristic: h(next),
		action:    &move,
		parent:    n,
	}
}

// root builds the root node for a search, attaching the estimate of h.
func (p *Problem) root(h Heuristic) *Node {
	s := p.InitialState()

	return &Node{state: s, heuristic: h(s)}
}
