// Package world provides the hex grid, terrain catalog, and tile data
// structures. Uses axial coordinates (q, r) for the hex grid.
package world

// Coord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// NationID identifies a nation. Zero means "no nation" (unowned tiles).
type NationID uint8

// NeighborDirections defines the six neighbor offsets in axial coordinates.
var NeighborDirections = [6]Coord{
	{Q: 1, R: 0},
	{Q: -1, R: 0},
	{Q: 0, R: 1},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
	{Q: -1, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range NeighborDirections {
		result[i] = Coord{Q: c.Q + dir.Q, R: c.R + dir.R}
	}
	return result
}

// Distance returns the hex distance between two axial coordinates.
// This is the single canonical formula; every range, targeting, and
// placement check goes through it.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	ds := abs(a.Q + a.R - b.Q - b.R)
	dr := abs(a.R - b.R)
	return (dq + ds + dr) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
