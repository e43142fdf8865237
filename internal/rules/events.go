package rules

import "github.com/talgya/hegemon/internal/world"

// EventConditions gate whether an event template applies to a nation this
// turn. Zero-valued fields are unset.
type EventConditions struct {
	StabilityBelow int // applies only while stability < this (0 = unset)
	StabilityAbove int // applies only while stability > this (0 = unset)

	RequiresBuilding     world.BuildingKind
	HasBuildingCondition bool

	RequiresTerrain []world.Terrain // any owned tile with one of these
}

// EventEffects are applied immediately when the event fires.
type EventEffects struct {
	Stability       int     // delta, clamped to [0, 100]
	Gold            int     // flat gold
	PopulationScale float64 // multiplier (0 = unset)
	ResearchBonus   float64 // progress points toward current research
}

// EventSpec is a random event template. Each turn every template is rolled
// independently against a random living nation.
type EventSpec struct {
	Name        string
	Icon        string
	Description string // {territory} is replaced with an owned tile
	Probability float64
	Duration    int
	Conditions  EventConditions
	Effects     EventEffects
}

// RandomEvents is the full event template catalog.
var RandomEvents = []EventSpec{
	{
		Name: "Plague", Icon: "💀",
		Description: "A plague breaks out near {territory}. The sick fill the streets.",
		Probability: 0.02, Duration: 3,
		Conditions: EventConditions{StabilityBelow: 40},
		Effects:    EventEffects{Stability: -5, PopulationScale: 0.90},
	},
	{
		Name: "Riots", Icon: "🔥",
		Description: "Riots erupt in {territory}. Granaries are looted and tax offices burned.",
		Probability: 0.03, Duration: 2,
		Conditions: EventConditions{StabilityBelow: 30},
		Effects:    EventEffects{Stability: -10, Gold: -50},
	},
	{
		Name: "Bountiful Harvest", Icon: "🌾",
		Description: "The fields around {territory} yield a bountiful harvest.",
		Probability: 0.05, Duration: 1,
		Conditions: EventConditions{RequiresTerrain: []world.Terrain{
			world.TerrainGrassland, world.TerrainPlains, world.TerrainRiver,
		}},
		Effects: EventEffects{Stability: 3, Gold: 20},
	},
	{
		Name: "Gold Rush", Icon: "⛏️",
		Description: "Prospectors strike a rich vein near {territory}.",
		Probability: 0.02, Duration: 1,
		Conditions: EventConditions{RequiresTerrain: []world.Terrain{
			world.TerrainHills, world.TerrainMountains,
		}},
		Effects: EventEffects{Gold: 100},
	},
	{
		Name: "Scientific Breakthrough", Icon: "🔬",
		Description: "Scholars at {territory} publish a celebrated discovery.",
		Probability: 0.03, Duration: 1,
		Conditions: EventConditions{RequiresBuilding: world.BuildingUniversity, HasBuildingCondition: true},
		Effects:    EventEffects{ResearchBonus: 15},
	},
	{
		Name: "Festival", Icon: "🎉",
		Description: "A grand festival in {territory} lifts spirits across the realm.",
		Probability: 0.04, Duration: 1,
		Conditions: EventConditions{StabilityAbove: 60},
		Effects:    EventEffects{Stability: 5},
	},
	{
		Name: "Earthquake", Icon: "🌋",
		Description: "An earthquake shakes {territory}. Repairs drain the treasury.",
		Probability: 0.01, Duration: 1,
		Effects:     EventEffects{Stability: -5, Gold: -30},
	},
	{
		Name: "Trade Boom", Icon: "🛶",
		Description: "Caravans crowd the markets of {territory}.",
		Probability: 0.03, Duration: 2,
		Conditions: EventConditions{RequiresBuilding: world.BuildingMarket, HasBuildingCondition: true},
		Effects:    EventEffects{Gold: 50},
	},
}
