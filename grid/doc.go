// Package grid provides the immutable world model shared by the forage
// search strategies: integer coordinates, movement deltas, a bounded
// rectangular field with static obstacles, and an ASCII map parser.
//
// What:
//
//   - Coordinate: value-type (x,y) cell position with Manhattan distance.
//   - Move: a movement action as a 2-D integer delta (N/S/E/W predeclared).
//   - Grid: width × height bounds plus an obstacle set; immutable once built.
//   - ParseMap: ASCII world descriptions ('#' wall, '@' start, '*' goal).
//
// Why:
//
//   - Search problems need a cheap, copy-free bounds/obstacle oracle.
//   - Value types make states usable directly as map keys.
//   - ASCII maps keep test worlds and examples legible.
//
// Complexity:
//
//   - InBounds/Blocked/Free: O(1).
//   - NewGrid: O(obstacles). ParseMap: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or a blank map.
//   - ErrObstacleOutOfBounds: obstacle outside the bounds.
//   - ErrRaggedMap: map rows of differing lengths.
//   - ErrNoStart / ErrMultipleStart: '@' missing or duplicated.
//   - ErrUnknownRune: unrecognized map character.
package grid
