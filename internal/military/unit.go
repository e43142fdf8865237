// Package military provides unit instancing, movement legality and cost,
// and combat resolution. Pure functions over units and tiles; unit
// placement bookkeeping belongs to the game state owner.
package military

import (
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// UnitID uniquely identifies a unit within one game instance. IDs are
// allocated by a sequence owned by the game state, never a process-wide
// counter.
type UnitID uint32

// Unit is a military unit instance. A unit is listed on exactly one tile
// at any instant; Pos must always equal that tile's coordinate.
type Unit struct {
	ID    UnitID         `json:"id"`
	Kind  rules.UnitKind `json:"kind"`
	Owner world.NationID `json:"owner"`
	Pos   world.Coord    `json:"pos"`

	HP      int `json:"hp"`
	MaxHP   int `json:"max_hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`

	Movement     float64 `json:"movement"`
	MovementLeft float64 `json:"movement_left"`

	Upkeep       int `json:"upkeep"`
	Experience   int `json:"experience"`
	VeteranLevel int `json:"veteran_level"`
}

// NewUnit instances a unit from the catalog at the given position.
func NewUnit(id UnitID, kind rules.UnitKind, owner world.NationID, pos world.Coord) *Unit {
	spec := rules.UnitSpecFor(kind)
	return &Unit{
		ID:           id,
		Kind:         kind,
		Owner:        owner,
		Pos:          pos,
		HP:           spec.HP,
		MaxHP:        spec.HP,
		Attack:       spec.Attack,
		Defense:      spec.Defense,
		Movement:     spec.Movement,
		MovementLeft: spec.Movement,
		Upkeep:       spec.Upkeep,
	}
}

// Category returns the unit's land/naval category from the catalog.
func (u *Unit) Category() rules.UnitCategory {
	return rules.UnitSpecFor(u.Kind).Category
}

// Name returns the unit's catalog name.
func (u *Unit) Name() string {
	return rules.UnitSpecFor(u.Kind).Name
}

// ResetMovement restores full movement and heals 10% of max HP for each
// unit, at the start of its side's turn window.
func ResetMovement(units []*Unit) {
	for _, u := range units {
		u.MovementLeft = u.Movement
		if u.HP < u.MaxHP {
			u.HP = min(u.MaxHP, u.HP+u.MaxHP/10)
		}
	}
}

// ArmyStrength estimates the combined fighting power of a group of units,
// weighting stats by health and veterancy.
func ArmyStrength(units []*Unit) float64 {
	total := 0.0
	for _, u := range units {
		healthRatio := float64(u.HP) / float64(u.MaxHP)
		total += float64(u.Attack+u.Defense) * healthRatio * (1 + float64(u.VeteranLevel)*0.15)
	}
	return total
}
