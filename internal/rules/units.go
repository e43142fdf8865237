package rules

import "github.com/talgya/hegemon/internal/world"

// UnitKind tags a unit type in the immutable unit catalog.
type UnitKind uint8

const (
	UnitMilitia UnitKind = iota
	UnitInfantry
	UnitCavalry
	UnitArtillery
	UnitEngineer
	UnitFrigate
	UnitIronclad

	unitKindCount
)

// UnitCategory splits land from naval units for movement and recruitment.
type UnitCategory uint8

const (
	CategoryLand UnitCategory = iota
	CategoryNaval
)

// UnitSpec is the static data for one unit kind.
type UnitSpec struct {
	Name         string
	Category     UnitCategory
	HP           int
	Attack       int
	Defense      int
	Movement     float64
	Upkeep       int
	Cost         Cost
	RequiresTech TechID
}

var unitTable = [unitKindCount]UnitSpec{
	UnitMilitia: {
		Name: "Militia", Category: CategoryLand,
		HP: 30, Attack: 2, Defense: 2, Movement: 2, Upkeep: 1,
		Cost: Cost{Gold: 30},
	},
	UnitInfantry: {
		Name: "Infantry", Category: CategoryLand,
		HP: 50, Attack: 4, Defense: 4, Movement: 2, Upkeep: 2,
		Cost: Cost{Gold: 60, Resources: map[world.Resource]int{world.ResourceIron: 1}},
	},
	UnitCavalry: {
		Name: "Cavalry", Category: CategoryLand,
		HP: 45, Attack: 6, Defense: 3, Movement: 4, Upkeep: 3,
		Cost: Cost{Gold: 90, Resources: map[world.Resource]int{world.ResourceCattle: 1}},
	},
	UnitArtillery: {
		Name: "Artillery", Category: CategoryLand,
		HP: 35, Attack: 8, Defense: 2, Movement: 1, Upkeep: 4,
		Cost:         Cost{Gold: 140, Resources: map[world.Resource]int{world.ResourceIron: 2, world.ResourceCoal: 1}},
		RequiresTech: TechGunpowder,
	},
	UnitEngineer: {
		Name: "Engineer", Category: CategoryLand,
		HP: 25, Attack: 1, Defense: 2, Movement: 2, Upkeep: 1,
		Cost: Cost{Gold: 40, Resources: map[world.Resource]int{world.ResourceTimber: 1}},
	},
	UnitFrigate: {
		Name: "Frigate", Category: CategoryNaval,
		HP: 60, Attack: 6, Defense: 5, Movement: 5, Upkeep: 3,
		Cost:         Cost{Gold: 120, Resources: map[world.Resource]int{world.ResourceTimber: 2}},
		RequiresTech: TechSailing,
	},
	UnitIronclad: {
		Name: "Ironclad", Category: CategoryNaval,
		HP: 80, Attack: 10, Defense: 8, Movement: 4, Upkeep: 5,
		Cost:         Cost{Gold: 200, Resources: map[world.Resource]int{world.ResourceIron: 3, world.ResourceCoal: 2}},
		RequiresTech: TechNavigation,
	},
}

// UnitSpecFor returns the static data for a unit kind. Panics on an
// out-of-range kind: catalogs are closed sets.
func UnitSpecFor(kind UnitKind) UnitSpec {
	if kind >= unitKindCount {
		panic("rules: unknown unit kind")
	}
	return unitTable[kind]
}
