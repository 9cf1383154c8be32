package grid

import (
	"fmt"
	"strings"
)

// Map is a parsed world description: the grid itself plus the agent
// start cell and the goal cells found in the map text.
type Map struct {
	Grid  *Grid
	Start Coordinate
	Goals []Coordinate
}

// Map characters recognized by ParseMap.
const (
	runeObstacle = '#'
	runeFree     = '.'
	runeSpace    = ' '
	runeStart    = '@'
	runeGoal     = '*'
)

// ParseMap builds a Map from an ASCII drawing of the world.
//
// Recognized characters:
//
//	'#'        obstacle
//	'.' or ' ' free cell
//	'@'        agent start (exactly one required)
//	'*'        goal cell
//
// Leading and trailing blank lines are ignored. The first non-blank line is
// the top row of the world, so North (+Y) points up the page. All rows must
// have the same length.
//
// Returns ErrEmptyGrid for a blank map, ErrRaggedMap for uneven rows,
// ErrNoStart/ErrMultipleStart for a missing or duplicated '@', and
// ErrUnknownRune (with position context) for any other character.
// Complexity: O(W×H).
func ParseMap(s string) (*Map, error) {
	// 1) Split into rows and strip surrounding blank lines.
	rows := strings.Split(s, "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	// 2) Validate rectangularity.
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedMap
		}
	}

	// 3) Scan cells. Text row i maps to grid row y = h-1-i (top row on top).
	var (
		obstacles []Coordinate
		goals     []Coordinate
		start     Coordinate
		seenStart bool
	)
	for i, row := range rows {
		y := h - 1 - i
		for x, r := range row {
			c := Coordinate{X: x, Y: y}
			switch r {
			case runeObstacle:
				obstacles = append(obstacles, c)
			case runeFree, runeSpace:
				// free cell, nothing to record
			case runeStart:
				if seenStart {
					return nil, ErrMultipleStart
				}
				start, seenStart = c, true
			case runeGoal:
				goals = append(goals, c)
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownRune, r, c)
			}
		}
	}
	if !seenStart {
		return nil, ErrNoStart
	}

	// 4) Assemble the grid; bounds are correct by construction.
	g, err := NewGrid(w, h, obstacles)
	if err != nil {
		return nil, fmt.Errorf("assembling parsed map: %w", err)
	}

	return &Map{Grid: g, Start: start, Goals: goals}, nil
}
