package world

import "fmt"

// BuildingKind tags a constructed (or under-construction) improvement on a
// tile. The static data for each kind lives in the rules catalog.
type BuildingKind uint8

const (
	BuildingFarm BuildingKind = iota
	BuildingFishery
	BuildingRanch
	BuildingLumberMill
	BuildingIronMine
	BuildingCoalMine
	BuildingQuarry
	BuildingHuntingLodge
	BuildingWorkshop
	BuildingMarket
	BuildingBank
	BuildingBarracks
	BuildingPort
	BuildingFort
	BuildingRoad
	BuildingRailroad
	BuildingUniversity

	BuildingKindCount
)

// Building is an improvement instance on a tile. ConstructionLeft counts
// down each turn; zero means operational. It never goes negative.
type Building struct {
	Kind             BuildingKind `json:"kind"`
	ConstructionLeft int          `json:"construction_left"`
}

// Complete reports whether construction has finished.
func (b Building) Complete() bool { return b.ConstructionLeft == 0 }

// Tile is a single hex on the world map. Tiles are created once at
// generation and mutated in place for the rest of the game.
type Tile struct {
	Coord   Coord   `json:"coord"`
	Terrain Terrain `json:"terrain"`

	// Continuous generation signals, kept for debugging and river routing.
	Elevation   float64 `json:"elevation"`
	Moisture    float64 `json:"moisture"`
	Temperature float64 `json:"temperature"`

	Resource Resource `json:"resource"`

	Owner     NationID   `json:"owner"` // 0 = unowned
	Buildings []Building `json:"buildings"`

	// Per-nation exploration and the player-facing fog flag.
	Explored map[NationID]bool `json:"-"`
	Fog      bool              `json:"fog"`
}

// HasBuilding reports whether the tile holds a building of the given kind,
// complete or not.
func (t *Tile) HasBuilding(kind BuildingKind) bool {
	for _, b := range t.Buildings {
		if b.Kind == kind {
			return true
		}
	}
	return false
}

// HasCompleteBuilding reports whether the tile holds an operational
// building of the given kind.
func (t *Tile) HasCompleteBuilding(kind BuildingKind) bool {
	for _, b := range t.Buildings {
		if b.Kind == kind && b.Complete() {
			return true
		}
	}
	return false
}

// Map holds the complete tile grid. Rectangular in axial space: q spans
// [0, width) and r spans [0, height).
type Map struct {
	Tiles  map[Coord]*Tile `json:"-"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Seed   int64           `json:"seed"`
}

// NewMap creates an empty map with the given dimensions.
func NewMap(width, height int, seed int64) *Map {
	return &Map{
		Tiles:  make(map[Coord]*Tile, width*height),
		Width:  width,
		Height: height,
		Seed:   seed,
	}
}

// Get returns the tile at the given coordinate, or nil if out of bounds.
func (m *Map) Get(c Coord) *Tile {
	return m.Tiles[c]
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(%dx%d, seed=%d, tiles=%d)", m.Width, m.Height, m.Seed, len(m.Tiles))
}
