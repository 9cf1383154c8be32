// Package search defines the shared types, options, and sentinel errors for
// the forage search strategies: the problem formalization, search nodes,
// results, and heuristic functions.
package search

import (
	"errors"

	"github.com/katalvlaran/forage/grid"
)

// Default cost configuration. Costs are expressed as rewards: a step
// "earns" DefaultStepCost (negative) and consuming a goal earns
// DefaultGoalReward on top of the step.
const (
	DefaultStepCost   = -1.0
	DefaultGoalReward = 10.0
)

// Sentinel errors returned by problem construction and the search entry points.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to NewProblem.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilProblem indicates a nil *Problem was passed to a search strategy.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNoMoves indicates an empty move set; an agent that cannot move
	// cannot search.
	ErrNoMoves = errors.New("search: move set is empty")

	// ErrStartOutOfBounds indicates the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start out of bounds")

	// ErrStartOnObstacle indicates the start coordinate is an obstacle cell.
	ErrStartOnObstacle = errors.New("search: start on an obstacle")

	// ErrGoalOutOfBounds indicates a goal coordinate lies outside the grid.
	ErrGoalOutOfBounds = errors.New("search: goal out of bounds")

	// ErrGoalOnObstacle indicates a goal coordinate is an obstacle cell.
	ErrGoalOnObstacle = errors.New("search: goal on an obstacle")
)

// Heuristic estimates the remaining cost to collect every goal from s.
// A heuristic must never be negative; returning 0 everywhere degenerates
// heuristic search into uniform-cost search.
type Heuristic func(s State) float64

// ZeroHeuristic is the default heuristic: no estimate at all.
func ZeroHeuristic(State) float64 { return 0 }

// MinGoalDistance estimates remaining cost as the Manhattan distance to the
// nearest remaining goal, or 0 when no goals remain. It is a lower bound on
// the number of moves still needed in open terrain; obstacles that force
// detours are not accounted for.
// Complexity: O(goals remaining).
func MinGoalDistance(s State) float64 {
	best := -1
	for _, goal := range s.Goals() {
		if d := grid.Manhattan(s.Loc, goal); best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}

	return float64(best)
}

// Option configures optional Problem behavior.
// Use with NewProblem(g, start, goals, opts...).
type Option func(*Options)

// Options holds configurable parameters of a Problem.
type Options struct {
	// StepCost is the reward earned by every move; typically negative.
	StepCost float64

	// GoalReward is the one-time reward earned when a move lands on a
	// remaining goal; typically positive.
	GoalReward float64

	// Moves is the full action set. Legality is decided per state; see
	// Problem.LegalActions.
	Moves []grid.Move

	// Heur estimates remaining cost for heuristic search. Defaults to
	// ZeroHeuristic.
	Heur Heuristic
}

// DefaultOptions returns Options with StepCost=-1, GoalReward=+10, the four
// orthogonal moves, and the zero heuristic.
func DefaultOptions() Options {
	return Options{
		StepCost:   DefaultStepCost,
		GoalReward: DefaultGoalReward,
		Moves:      grid.DefaultMoves(),
		Heur:       ZeroHeuristic,
	}
}

// WithStepCost returns an Option that sets the per-move reward.
func WithStepCost(c float64) Option {
	return func(o *Options) {
		o.StepCost = c
	}
}

// WithGoalReward returns an Option that sets the per-goal reward.
func WithGoalReward(r float64) Option {
	return func(o *Options) {
		o.GoalReward = r
	}
}

// WithMoves returns an Option that replaces the action set.
// Passing no moves has no effect (the default set is retained).
func WithMoves(moves ...grid.Move) Option {
	return func(o *Options) {
		if len(moves) > 0 {
			o.Moves = moves
		}
	}
}

// WithHeuristic returns an Option that installs h as the cost estimate used
// by AStar. Passing nil has no effect (ZeroHeuristic is retained).
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heur = h
		}
	}
}

// Outcome classifies the result of a search strategy.
type Outcome int

const (
	// SolutionFound means Actions holds a complete plan collecting every goal.
	SolutionFound Outcome = iota
	// NoSolution means no plan exists at any depth; searching more cannot help.
	NoSolution
	// Cutoff means the depth bound was exhausted before the search space;
	// a plan may still exist at greater depth. Only IterativeDeepening
	// produces it.
	Cutoff
)

// String renders the outcome for diagnostics.
func (o Outcome) String() string {
	switch o {
	case SolutionFound:
		return "solution"
	case NoSolution:
		return "no solution"
	case Cutoff:
		return "cutoff"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single search invocation.
type Result struct {
	// Actions is the plan from the start to a goal-complete state, in
	// execution order. Empty when the start already satisfies the goal test
	// and nil when Outcome is not SolutionFound.
	Actions []grid.Move

	// TotalReward is the accumulated reward of executing Actions: step costs
	// plus one reward per goal collected. Zero unless Outcome is SolutionFound.
	TotalReward float64

	// Expanded counts nodes expanded during the search. Diagnostic only;
	// not part of the algorithmic contract.
	Expanded int

	// Outcome distinguishes a concrete plan from no-solution and cutoff.
	Outcome Outcome
}
