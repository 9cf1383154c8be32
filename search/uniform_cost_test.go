package search_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/forage/grid"
	"github.com/katalvlaran/forage/search"
)

// stateID renders a state canonically for the brute-force reference search.
func stateID(s search.State) string {
	goals := s.Goals()
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].X != goals[j].X {
			return goals[i].X < goals[j].X
		}

		return goals[i].Y < goals[j].Y
	})

	return fmt.Sprint(s.Loc, goals)
}

// bruteBest exhaustively enumerates every state-simple path and returns the
// best achievable total reward. With a negative step cost an optimal plan
// never revisits a (location, goal-set) state, so branch-local pruning on
// state identity is lossless. Only usable on tiny grids.
func bruteBest(p *search.Problem) (best float64, found bool) {
	seen := make(map[string]bool)
	var rec func(s search.State, reward float64)
	rec = func(s search.State, reward float64) {
		if p.IsGoal(s) {
			if !found || reward > best {
				best, found = reward, true
			}

			return
		}
		id := stateID(s)
		seen[id] = true
		defer delete(seen, id)

		for _, m := range p.LegalActions(s) {
			next := p.Transition(s, m)
			if seen[stateID(next)] {
				continue
			}
			rec(next, reward+p.StepCost(s, next))
		}
	}
	rec(p.InitialState(), 0)

	return best, found
}

// mustParse parses an ASCII world or fails the test.
func mustParse(t *testing.T, world string, opts ...search.Option) *search.Problem {
	t.Helper()
	m, err := grid.ParseMap(world)
	require.NoError(t, err)
	p, err := search.NewProblem(m.Grid, m.Start, m.Goals, opts...)
	require.NoError(t, err)

	return p
}

// UniformCostSuite exercises the cost-ordered strategy.
type UniformCostSuite struct {
	suite.Suite
}

// TestNilProblem verifies the fail-fast precondition.
func (s *UniformCostSuite) TestNilProblem() {
	_, err := search.UniformCost(nil)
	require.ErrorIs(s.T(), err, search.ErrNilProblem)
}

// TestAlreadyAtGoal: no goals at all means the start satisfies the goal test;
// only the root is expanded.
func (s *UniformCostSuite) TestAlreadyAtGoal() {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(s.T(), err)
	p, err := search.NewProblem(g, grid.Coordinate{X: 1, Y: 1}, nil)
	require.NoError(s.T(), err)

	res, err := search.UniformCost(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.SolutionFound, res.Outcome)
	require.Empty(s.T(), res.Actions)
	require.NotNil(s.T(), res.Actions, "empty plan, not absent plan")
	require.Equal(s.T(), 0.0, res.TotalReward)
	require.Equal(s.T(), 1, res.Expanded)
}

// TestCorridor reproduces the 4×1 scenario: start at x=0, goal at x=3,
// step -1, reward +10 → plan East×3, total 10-3 = 7.
func (s *UniformCostSuite) TestCorridor() {
	g, err := grid.NewGrid(4, 1, nil)
	require.NoError(s.T(), err)
	p, err := search.NewProblem(g, grid.Coordinate{X: 0, Y: 0},
		[]grid.Coordinate{{X: 3, Y: 0}},
		search.WithMoves(grid.East, grid.West))
	require.NoError(s.T(), err)

	res, err := search.UniformCost(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.SolutionFound, res.Outcome)
	require.Equal(s.T(), []grid.Move{grid.East, grid.East, grid.East}, res.Actions)
	require.Equal(s.T(), 7.0, res.TotalReward)
}

// TestBlockedCorridor: a wall at x=2 in a height-1 grid leaves the goal
// unreachable; the frontier must drain into NoSolution, not hang.
func (s *UniformCostSuite) TestBlockedCorridor() {
	g, err := grid.NewGrid(4, 1, []grid.Coordinate{{X: 2, Y: 0}})
	require.NoError(s.T(), err)
	p, err := search.NewProblem(g, grid.Coordinate{X: 0, Y: 0},
		[]grid.Coordinate{{X: 3, Y: 0}})
	require.NoError(s.T(), err)

	res, err := search.UniformCost(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.NoSolution, res.Outcome)
	require.Nil(s.T(), res.Actions)
}

// TestTwoGoalsOnALine: start between two goals; both must be collected, and
// the plan length equals the Manhattan distance of the optimal visiting order.
func (s *UniformCostSuite) TestTwoGoalsOnALine() {
	g, err := grid.NewGrid(5, 1, nil)
	require.NoError(s.T(), err)
	p, err := search.NewProblem(g, grid.Coordinate{X: 2, Y: 0},
		[]grid.Coordinate{{X: 0, Y: 0}, {X: 4, Y: 0}})
	require.NoError(s.T(), err)

	res, err := search.UniformCost(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.SolutionFound, res.Outcome)
	require.Len(s.T(), res.Actions, 6, "2 to the near end plus 4 across")
	require.Equal(s.T(), 14.0, res.TotalReward, "two rewards minus six steps")

	final := replay(s.T(), p, res.Actions)
	require.Equal(s.T(), 0, final.GoalCount())
}

// TestDetourAroundWall: the walled center forces a 4-step detour; uniform
// cost finds it exactly.
func (s *UniformCostSuite) TestDetourAroundWall() {
	p := mustParse(s.T(), `
#####
#..*#
#.#.#
#@..#
#####
`)
	res, err := search.UniformCost(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.SolutionFound, res.Outcome)
	require.Len(s.T(), res.Actions, 4)
	require.Equal(s.T(), 6.0, res.TotalReward)

	final := replay(s.T(), p, res.Actions)
	require.Equal(s.T(), 0, final.GoalCount())
}

// TestThreeSpreadGoals: three goals fanned around a central start. The first
// complete tour the frontier generates takes 8 steps but the best visiting
// order takes 6; the incumbent bound must not lock in the first plan it sees.
func (s *UniformCostSuite) TestThreeSpreadGoals() {
	p := mustParse(s.T(), "*.*\n.@.\n*..\n")

	res, err := search.UniformCost(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.SolutionFound, res.Outcome)
	require.Len(s.T(), res.Actions, 6)
	require.Equal(s.T(), 24.0, res.TotalReward, "three rewards minus six steps")

	final := replay(s.T(), p, res.Actions)
	require.Equal(s.T(), 0, final.GoalCount())
}

// TestMatchesExhaustiveSearch validates the incumbent-bound pruning against
// brute-force enumeration on small worlds, including reward configurations
// that make edges cost-reducing mid-path and spread multi-goal layouts where
// the cheapest-first visiting order is not the optimal tour.
func (s *UniformCostSuite) TestMatchesExhaustiveSearch() {
	worlds := []string{
		"@..\n.*.\n..*\n",
		"@#*\n...\n*..\n",
		"*.@\n#.#\n*..\n",
		"@*\n**\n",
		"*.*\n.@.\n*..\n",
		"*..\n.@*\n*..\n",
		"..*\n*@.\n..*\n",
		"*.*\n.@.\n*.*\n",
	}
	rewards := []float64{10, 3, 100}
	for _, world := range worlds {
		for _, reward := range rewards {
			p := mustParse(s.T(), world, search.WithGoalReward(reward))

			want, reachable := bruteBest(p)
			require.True(s.T(), reachable, "test worlds keep goals reachable")

			res, err := search.UniformCost(p)
			require.NoError(s.T(), err)
			require.Equal(s.T(), search.SolutionFound, res.Outcome)
			require.Equal(s.T(), want, res.TotalReward,
				"world %q reward %v: optimal %v, got %v", world, reward, want, res.TotalReward)

			final := replay(s.T(), p, res.Actions)
			require.Equal(s.T(), 0, final.GoalCount())
		}
	}
}

// TestUniformCostSuite wires the suite into go test.
func TestUniformCostSuite(t *testing.T) {
	suite.Run(t, new(UniformCostSuite))
}
