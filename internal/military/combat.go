package military

import (
	"math"
	"math/rand"

	"github.com/talgya/hegemon/internal/world"
)

// Outcome labels a single combat exchange. Combat models one bounded
// exchange, not annihilation: both sides may survive with an advantage
// label.
type Outcome uint8

const (
	OutcomeDraw Outcome = iota
	OutcomeAttacker
	OutcomeDefender
	OutcomeAttackerAdvantage
	OutcomeDefenderAdvantage
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDraw:
		return "draw"
	case OutcomeAttacker:
		return "attacker"
	case OutcomeDefender:
		return "defender"
	case OutcomeAttackerAdvantage:
		return "attacker advantage"
	default:
		return "defender advantage"
	}
}

// fortDefenseBonus is the flat defense bonus a fort grants the occupant.
const fortDefenseBonus = 5

// CombatResult reports the outcome of one exchange.
type CombatResult struct {
	Winner           Outcome `json:"winner"`
	AttackerDamage   int     `json:"attacker_damage"` // damage taken by attacker
	DefenderDamage   int     `json:"defender_damage"` // damage taken by defender
	AttackerSurvived bool    `json:"attacker_survived"`
	DefenderSurvived bool    `json:"defender_survived"`
	AttackerHPLeft   int     `json:"attacker_hp_left"`
	DefenderHPLeft   int     `json:"defender_hp_left"`
}

// ResolveCombat runs a single exchange between attacker and defender.
// Effective stats scale with experience and remaining health; the defender
// gains terrain and fort bonuses; both sides roll an independent random
// multiplier in [0.8, 1.2]. Damage is asymmetric: the attacker risks less
// per exchange. HP never goes below zero; both combatants gain experience
// and may promote a veteran level.
func ResolveCombat(rng *rand.Rand, attacker, defender *Unit, defenderTile *world.Tile) CombatResult {
	attackPower := float64(attacker.Attack) * (1 + float64(attacker.Experience)*0.02)
	defensePower := float64(defender.Defense) * (1 + float64(defender.Experience)*0.02)

	if defenderTile != nil {
		defensePower += defenderTile.Terrain.Info().Defense
		if defenderTile.HasBuilding(world.BuildingFort) {
			defensePower += fortDefenseBonus
		}
	}

	attackPower *= float64(attacker.HP) / float64(attacker.MaxHP)
	defensePower *= float64(defender.HP) / float64(defender.MaxHP)

	attackPower *= 0.8 + rng.Float64()*0.4
	defensePower *= 0.8 + rng.Float64()*0.4

	atkDamage := int(math.Max(1, math.Floor(attackPower*5)))
	defDamage := int(math.Max(1, math.Floor(defensePower*3)))

	attacker.HP = max(0, attacker.HP-defDamage)
	defender.HP = max(0, defender.HP-atkDamage)

	attacker.Experience += 2
	defender.Experience += 1
	promote(attacker)
	promote(defender)

	result := CombatResult{
		AttackerDamage:   defDamage,
		DefenderDamage:   atkDamage,
		AttackerSurvived: attacker.HP > 0,
		DefenderSurvived: defender.HP > 0,
		AttackerHPLeft:   attacker.HP,
		DefenderHPLeft:   defender.HP,
	}

	switch {
	case attacker.HP <= 0 && defender.HP <= 0:
		result.Winner = OutcomeDraw
	case attacker.HP <= 0:
		result.Winner = OutcomeDefender
	case defender.HP <= 0:
		result.Winner = OutcomeAttacker
	case attacker.HP > defender.HP:
		result.Winner = OutcomeAttackerAdvantage
	default:
		result.Winner = OutcomeDefenderAdvantage
	}

	return result
}

// promote advances a unit's veteran level when total experience crosses
// 10 × (level+1): +1 attack, +1 defense, +10 max HP.
func promote(u *Unit) {
	if u.Experience >= 10*(u.VeteranLevel+1) {
		u.VeteranLevel++
		u.Attack++
		u.Defense++
		u.MaxHP += 10
	}
}
