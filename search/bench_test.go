package search_test

import (
	"testing"

	"github.com/katalvlaran/forage/grid"
	"github.com/katalvlaran/forage/search"
)

// benchWorld is a 16×7 hall with pillar walls, two goals, and the agent in
// the south-west corner.
const benchWorld = `
################
#....#....#...*#
#....#....#....#
#....#.........#
#....#....#....#
#@##.....*...###
################
`

// benchProblem parses benchWorld once per benchmark setup.
func benchProblem(b *testing.B, opts ...search.Option) *search.Problem {
	b.Helper()
	m, err := grid.ParseMap(benchWorld)
	if err != nil {
		b.Fatalf("setup ParseMap failed: %v", err)
	}
	p, err := search.NewProblem(m.Grid, m.Start, m.Goals, opts...)
	if err != nil {
		b.Fatalf("setup NewProblem failed: %v", err)
	}

	return p
}

// BenchmarkUniformCost measures the cost-ordered strategy on the hall world.
func BenchmarkUniformCost(b *testing.B) {
	p := benchProblem(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.UniformCost(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAStar measures the heuristic strategy on the same world.
func BenchmarkAStar(b *testing.B) {
	p := benchProblem(b, search.WithHeuristic(search.MinGoalDistance))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.AStar(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIterativeDeepening runs on a short corridor; depth-limited search
// is exponential in plan length and a hall-sized world would swamp the bench.
func BenchmarkIterativeDeepening(b *testing.B) {
	m, err := grid.ParseMap("########\n#@....*#\n########\n")
	if err != nil {
		b.Fatalf("setup ParseMap failed: %v", err)
	}
	p, err := search.NewProblem(m.Grid, m.Start, m.Goals)
	if err != nil {
		b.Fatalf("setup NewProblem failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.IterativeDeepening(p); err != nil {
			b.Fatal(err)
		}
	}
}
