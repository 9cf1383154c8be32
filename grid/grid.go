// Package grid models a bounded 2-D world of free and blocked cells.
// A Grid is immutable once built: constructors deep-copy their inputs.
package grid

// Grid is a rectangular field of cells with a static obstacle set.
// Width and Height define the bounds: valid coordinates satisfy
// 0 <= X < Width and 0 <= Y < Height. Immutable after construction.
type Grid struct {
	width, height int
	obstacles     map[Coordinate]struct{}
}

// NewGrid constructs a Grid of the given dimensions with the given obstacles.
// The obstacle slice is copied, so later mutation of it does not affect the Grid.
// Returns ErrEmptyGrid for non-positive dimensions and ErrObstacleOutOfBounds
// if any obstacle lies outside the bounds.
// Complexity: O(len(obstacles)) time and memory.
func NewGrid(width, height int, obstacles []Coordinate) (*Grid, error) {
	// 1) Validate dimensions.
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	// 2) Copy obstacles into a set, validating bounds as we go.
	g := &Grid{
		width:     width,
		height:    height,
		obstacles: make(map[Coordinate]struct{}, len(obstacles)),
	}
	for _, o := range obstacles {
		if !g.InBounds(o) {
			return nil, ErrObstacleOutOfBounds
		}
		g.obstacles[o] = struct{}{}
	}

	return g, nil
}

// Width returns the horizontal extent of the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical extent of the grid.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Blocked reports whether c is an obstacle cell. Out-of-bounds
// coordinates are not obstacles; check InBounds separately.
// Complexity: O(1).
func (g *Grid) Blocked(c Coordinate) bool {
	_, ok := g.obstacles[c]

	return ok
}

// Free reports whether c is inside the grid and not an obstacle.
// Complexity: O(1).
func (g *Grid) Free(c Coordinate) bool {
	return g.InBounds(c) && !g.Blocked(c)
}

// FreeCells returns the number of non-obstacle cells. This bounds the
// length of any cycle-free path through the grid.
// Complexity: O(1).
func (g *Grid) FreeCells() int {
	return g.width*g.height - len(g.obstacles)
}

// Obstacles returns a fresh copy of the obstacle set as a slice,
// in no particular order.
// Complexity: O(len(obstacles)).
func (g *Grid) Obstacles() []Coordinate {
	out := make([]Coordinate, 0, len(g.obstacles))
	for o := range g.obstacles {
		out = append(out, o)
	}

	return out
}
