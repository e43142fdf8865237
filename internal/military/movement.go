package military

import (
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// MoveCost returns the cost to enter a tile: terrain cost discounted by
// road (−0.5) or railroad (−1), floored at 0.5.
func MoveCost(tile *world.Tile) float64 {
	cost := tile.Terrain.Info().MoveCost
	switch {
	case tile.HasBuilding(world.BuildingRailroad):
		cost = maxf(0.5, cost-1)
	case tile.HasBuilding(world.BuildingRoad):
		cost = maxf(0.5, cost-0.5)
	}
	return cost
}

// CanMove reports whether the unit may legally enter the tile this turn:
// the move must be to an adjacent hex, the terrain must suit the unit's
// category, and enough movement must remain to cover the entry cost.
func CanMove(unit *Unit, to *world.Tile) bool {
	if to == nil || unit.MovementLeft <= 0 {
		return false
	}
	if world.Distance(unit.Pos, to.Coord) != 1 {
		return false
	}

	if unit.Category() == rules.CategoryNaval {
		return to.Terrain.Info().Naval || to.Terrain == world.TerrainCoast
	}

	// Land units are barred from open water.
	if to.Terrain.Water() {
		return false
	}

	return unit.MovementLeft >= MoveCost(to)
}

// Move commits the unit to the tile, deducting the entry cost. The caller
// owns the tile unit-list bookkeeping.
func Move(unit *Unit, to *world.Tile) {
	unit.Pos = to.Coord
	unit.MovementLeft = maxf(0, unit.MovementLeft-MoveCost(to))
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
