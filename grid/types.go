// Package grid defines the core value types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/forage.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and map parsing.
var (
	// ErrEmptyGrid indicates non-positive grid dimensions.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrObstacleOutOfBounds indicates an obstacle coordinate outside the grid.
	ErrObstacleOutOfBounds = errors.New("grid: obstacle out of bounds")
	// ErrRaggedMap indicates map rows of differing lengths.
	ErrRaggedMap = errors.New("grid: all map rows must have the same length")
	// ErrNoStart indicates a parsed map without a start marker.
	ErrNoStart = errors.New("grid: map has no start cell '@'")
	// ErrMultipleStart indicates a parsed map with more than one start marker.
	ErrMultipleStart = errors.New("grid: map has more than one start cell '@'")
	// ErrUnknownRune indicates an unrecognized character in a map string.
	ErrUnknownRune = errors.New("grid: unknown map character")
)

// Coordinate is a cell position on the grid. It is a value type:
// equality and map-key behavior follow from its fields.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns the Manhattan (L1) distance between a and b.
// Complexity: O(1).
func Manhattan(a, b Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Move is a single movement action carrying its 2-D integer delta.
// Any finite delta set is valid, including the zero (wait) move;
// the four compass moves below cover the common orthogonal grid.
type Move struct {
	DX, DY int
}

// The four orthogonal moves. North increases Y, East increases X.
var (
	North = Move{DX: 0, DY: 1}
	South = Move{DX: 0, DY: -1}
	East  = Move{DX: 1, DY: 0}
	West  = Move{DX: -1, DY: 0}
)

// DefaultMoves returns the four orthogonal moves in N, S, E, W order.
// Callers may freely reorder or extend the returned slice.
func DefaultMoves() []Move {
	return []Move{North, South, East, West}
}

// Apply returns the coordinate reached by taking m from c.
// Complexity: O(1).
func (m Move) Apply(c Coordinate) Coordinate {
	return Coordinate{X: c.X + m.DX, Y: c.Y + m.DY}
}

// String names the four compass moves; any other delta prints as "move(dx,dy)".
func (m Move) String() string {
	switch m {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("move(%d,%d)", m.DX, m.DY)
	}
}
