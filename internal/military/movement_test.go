package military

import (
	"testing"

	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

func terrainTile(q, r int, terrain world.Terrain) *world.Tile {
	return &world.Tile{Coord: world.Coord{Q: q, R: r}, Terrain: terrain}
}

func TestMoveCost(t *testing.T) {
	tests := []struct {
		name string
		tile *world.Tile
		want float64
	}{
		{"grassland", terrainTile(0, 0, world.TerrainGrassland), 1},
		{"hills", terrainTile(0, 0, world.TerrainHills), 2},
		{"mountains", terrainTile(0, 0, world.TerrainMountains), 3},
		{"hills with road", &world.Tile{
			Terrain:   world.TerrainHills,
			Buildings: []world.Building{{Kind: world.BuildingRoad}},
		}, 1.5},
		{"hills with railroad", &world.Tile{
			Terrain:   world.TerrainHills,
			Buildings: []world.Building{{Kind: world.BuildingRailroad}},
		}, 1},
		{"grassland with railroad floors at 0.5", &world.Tile{
			Terrain:   world.TerrainGrassland,
			Buildings: []world.Building{{Kind: world.BuildingRailroad}},
		}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveCost(tt.tile); got != tt.want {
				t.Errorf("MoveCost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMove(t *testing.T) {
	land := NewUnit(1, rules.UnitInfantry, 1, world.Coord{Q: 1, R: 1})
	ship := NewUnit(2, rules.UnitFrigate, 1, world.Coord{Q: 1, R: 1})

	tests := []struct {
		name string
		unit *Unit
		to   *world.Tile
		want bool
	}{
		{"land to adjacent grassland", land, terrainTile(2, 1, world.TerrainGrassland), true},
		{"land into ocean", land, terrainTile(2, 1, world.TerrainOcean), false},
		{"land two hexes away", land, terrainTile(3, 1, world.TerrainGrassland), false},
		{"nil tile", land, nil, false},
		{"ship into ocean", ship, terrainTile(2, 1, world.TerrainOcean), true},
		{"ship into coast", ship, terrainTile(2, 1, world.TerrainCoast), true},
		{"ship onto grassland", ship, terrainTile(2, 1, world.TerrainGrassland), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMove(tt.unit, tt.to); got != tt.want {
				t.Errorf("CanMove = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanMoveExhausted(t *testing.T) {
	u := NewUnit(1, rules.UnitInfantry, 1, world.Coord{Q: 1, R: 1})
	u.MovementLeft = 0

	if CanMove(u, terrainTile(2, 1, world.TerrainGrassland)) {
		t.Error("unit with no movement left can still move")
	}
}

func TestCanMoveInsufficientForTerrain(t *testing.T) {
	u := NewUnit(1, rules.UnitInfantry, 1, world.Coord{Q: 1, R: 1})
	u.MovementLeft = 1.5

	if CanMove(u, terrainTile(2, 1, world.TerrainMountains)) {
		t.Error("1.5 movement entered mountains costing 3")
	}
	if !CanMove(u, terrainTile(2, 1, world.TerrainGrassland)) {
		t.Error("1.5 movement rejected grassland costing 1")
	}
}

func TestMove(t *testing.T) {
	u := NewUnit(1, rules.UnitInfantry, 1, world.Coord{Q: 1, R: 1})
	dest := terrainTile(2, 1, world.TerrainHills)

	Move(u, dest)

	if u.Pos != dest.Coord {
		t.Errorf("position = %v, want %v", u.Pos, dest.Coord)
	}
	if u.MovementLeft != 0 {
		t.Errorf("movement left = %v, want 0", u.MovementLeft)
	}
}

func TestResetMovementHeals(t *testing.T) {
	u := NewUnit(1, rules.UnitInfantry, 1, world.Coord{})
	u.HP = 20
	u.MovementLeft = 0

	ResetMovement([]*Unit{u})

	if u.MovementLeft != u.Movement {
		t.Errorf("movement left = %v, want %v", u.MovementLeft, u.Movement)
	}
	// Heals 10% of max HP per turn, capped at max.
	if u.HP != 25 {
		t.Errorf("HP = %d after rest, want 25", u.HP)
	}

	u.HP = u.MaxHP
	ResetMovement([]*Unit{u})
	if u.HP != u.MaxHP {
		t.Errorf("HP = %d, overhealed past %d", u.HP, u.MaxHP)
	}
}
