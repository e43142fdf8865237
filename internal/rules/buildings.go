// Package rules holds the static game catalogs: building and unit
// specifications, the technology tree, nation templates, and random event
// templates. Catalogs are indexed by enum kinds; an unknown kind is a
// programming error and panics rather than degrading to a no-op.
package rules

import "github.com/talgya/hegemon/internal/world"

// Cost is a price in gold plus optional resources. A cost must be fully
// satisfiable before any part of it is deducted.
type Cost struct {
	Gold      int
	Resources map[world.Resource]int
}

// BuildingSpec is the static data for one building kind.
type BuildingSpec struct {
	Name      string
	Cost      Cost
	BuildTime int

	ValidTerrain []world.Terrain

	// Economy hooks: per-turn output, all-or-nothing input, flat gold.
	Produces    map[world.Resource]int
	Consumes    map[world.Resource]int
	GoldPerTurn int

	RequiresTech     TechID         // TechNone if unrestricted
	RequiresResource world.Resource // ResourceNone if unrestricted
	Replaces         world.BuildingKind
	HasReplaces      bool // true when the building upgrades another
}

// anyLand lists every buildable terrain, for buildings without siting
// restrictions.
var anyLand = []world.Terrain{
	world.TerrainCoast, world.TerrainRiver, world.TerrainGrassland,
	world.TerrainPlains, world.TerrainForest, world.TerrainJungle,
	world.TerrainSavanna, world.TerrainDesert, world.TerrainTundra,
	world.TerrainSwamp, world.TerrainHills,
}

var buildingTable = [world.BuildingKindCount]BuildingSpec{
	world.BuildingFarm: {
		Name:      "Farm",
		Cost:      Cost{Gold: 40, Resources: map[world.Resource]int{world.ResourceTimber: 1}},
		BuildTime: 3,
		ValidTerrain: []world.Terrain{
			world.TerrainGrassland, world.TerrainPlains, world.TerrainSavanna, world.TerrainRiver,
		},
		Produces: map[world.Resource]int{world.ResourceGrain: 3},
	},
	world.BuildingFishery: {
		Name:         "Fishery",
		Cost:         Cost{Gold: 50, Resources: map[world.Resource]int{world.ResourceTimber: 2}},
		BuildTime:    3,
		ValidTerrain: []world.Terrain{world.TerrainCoast, world.TerrainRiver},
		Produces:     map[world.Resource]int{world.ResourceFish: 3},
	},
	world.BuildingRanch: {
		Name:      "Ranch",
		Cost:      Cost{Gold: 50, Resources: map[world.Resource]int{world.ResourceTimber: 1}},
		BuildTime: 3,
		ValidTerrain: []world.Terrain{
			world.TerrainGrassland, world.TerrainPlains, world.TerrainSavanna,
		},
		Produces: map[world.Resource]int{world.ResourceCattle: 2},
	},
	world.BuildingLumberMill: {
		Name:         "Lumber Mill",
		Cost:         Cost{Gold: 60},
		BuildTime:    4,
		ValidTerrain: []world.Terrain{world.TerrainForest, world.TerrainJungle},
		Produces:     map[world.Resource]int{world.ResourceTimber: 3},
	},
	world.BuildingIronMine: {
		Name:             "Iron Mine",
		Cost:             Cost{Gold: 80, Resources: map[world.Resource]int{world.ResourceTimber: 2}},
		BuildTime:        5,
		ValidTerrain:     []world.Terrain{world.TerrainHills},
		RequiresResource: world.ResourceIron,
		Produces:         map[world.Resource]int{world.ResourceIron: 2},
	},
	world.BuildingCoalMine: {
		Name:             "Coal Mine",
		Cost:             Cost{Gold: 80, Resources: map[world.Resource]int{world.ResourceTimber: 2}},
		BuildTime:        5,
		ValidTerrain:     []world.Terrain{world.TerrainHills},
		RequiresResource: world.ResourceCoal,
		Produces:         map[world.Resource]int{world.ResourceCoal: 2},
	},
	world.BuildingQuarry: {
		Name:         "Quarry",
		Cost:         Cost{Gold: 70, Resources: map[world.Resource]int{world.ResourceTimber: 1}},
		BuildTime:    4,
		ValidTerrain: []world.Terrain{world.TerrainHills, world.TerrainDesert},
		Produces:     map[world.Resource]int{world.ResourceStone: 2},
	},
	world.BuildingHuntingLodge: {
		Name:         "Hunting Lodge",
		Cost:         Cost{Gold: 45, Resources: map[world.Resource]int{world.ResourceTimber: 1}},
		BuildTime:    3,
		ValidTerrain: []world.Terrain{world.TerrainForest, world.TerrainTundra},
		Produces:     map[world.Resource]int{world.ResourceFurs: 2},
	},
	world.BuildingWorkshop: {
		Name:         "Workshop",
		Cost:         Cost{Gold: 100, Resources: map[world.Resource]int{world.ResourceTimber: 2, world.ResourceStone: 1}},
		BuildTime:    5,
		ValidTerrain: anyLand,
		Consumes:     map[world.Resource]int{world.ResourceTimber: 1, world.ResourceIron: 1},
		GoldPerTurn:  8,
		RequiresTech: TechEngineering,
	},
	world.BuildingMarket: {
		Name:         "Market",
		Cost:         Cost{Gold: 80},
		BuildTime:    4,
		ValidTerrain: anyLand,
		GoldPerTurn:  5,
	},
	world.BuildingBank: {
		Name:         "Bank",
		Cost:         Cost{Gold: 150, Resources: map[world.Resource]int{world.ResourceStone: 2}},
		BuildTime:    5,
		ValidTerrain: anyLand,
		GoldPerTurn:  12,
		RequiresTech: TechBanking,
		Replaces:     world.BuildingMarket,
		HasReplaces:  true,
	},
	world.BuildingBarracks: {
		Name:         "Barracks",
		Cost:         Cost{Gold: 70, Resources: map[world.Resource]int{world.ResourceTimber: 2}},
		BuildTime:    4,
		ValidTerrain: anyLand,
	},
	world.BuildingPort: {
		Name:         "Port",
		Cost:         Cost{Gold: 90, Resources: map[world.Resource]int{world.ResourceTimber: 3}},
		BuildTime:    4,
		ValidTerrain: []world.Terrain{world.TerrainCoast},
	},
	world.BuildingFort: {
		Name:         "Fort",
		Cost:         Cost{Gold: 110, Resources: map[world.Resource]int{world.ResourceStone: 2}},
		BuildTime:    5,
		ValidTerrain: anyLand,
	},
	world.BuildingRoad: {
		Name:         "Road",
		Cost:         Cost{Gold: 30},
		BuildTime:    2,
		ValidTerrain: anyLand,
	},
	world.BuildingRailroad: {
		Name:         "Railroad",
		Cost:         Cost{Gold: 120, Resources: map[world.Resource]int{world.ResourceIron: 2, world.ResourceCoal: 1}},
		BuildTime:    4,
		ValidTerrain: anyLand,
		RequiresTech: TechRailroads,
		Replaces:     world.BuildingRoad,
		HasReplaces:  true,
	},
	world.BuildingUniversity: {
		Name:         "University",
		Cost:         Cost{Gold: 130, Resources: map[world.Resource]int{world.ResourceStone: 2}},
		BuildTime:    6,
		ValidTerrain: anyLand,
		GoldPerTurn:  3,
		RequiresTech: TechEducation,
	},
}

// BuildingSpecFor returns the static data for a building kind. Panics on
// an out-of-range kind: catalogs are closed sets.
func BuildingSpecFor(kind world.BuildingKind) BuildingSpec {
	if kind >= world.BuildingKindCount {
		panic("rules: unknown building kind")
	}
	return buildingTable[kind]
}

// AllBuildingKinds lists every building kind in catalog order, for AI
// scoring and validation loops.
func AllBuildingKinds() []world.BuildingKind {
	kinds := make([]world.BuildingKind, 0, world.BuildingKindCount)
	for k := world.BuildingKind(0); k < world.BuildingKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
