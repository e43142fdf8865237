package engine

import (
	"fmt"

	"github.com/talgya/hegemon/internal/diplomacy"
	"github.com/talgya/hegemon/internal/econ"
	"github.com/talgya/hegemon/internal/military"
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// CommandResult is the outcome of one player command. Player mistakes are
// reported here, never panicked on.
type CommandResult struct {
	OK      bool   `json:"success"`
	Message string `json:"message"`

	Unit   *military.Unit         `json:"unit,omitempty"`
	Combat *military.CombatResult `json:"combat,omitempty"`
}

func fail(format string, args ...any) CommandResult {
	return CommandResult{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Build orders construction of a building on a player-owned tile.
func (s *State) Build(c world.Coord, kind world.BuildingKind) CommandResult {
	if s.GameOver {
		return fail("The game is over")
	}
	player := s.Player()

	tile := s.Map.Get(c)
	if tile == nil {
		return fail("No such tile")
	}
	if tile.Owner != player.ID {
		return fail("You do not own this tile")
	}
	if len(tile.Buildings) >= maxBuildingsPerTile {
		return fail("Tile already has %d buildings", maxBuildingsPerTile)
	}
	if tile.HasBuilding(kind) {
		return fail("Tile already has this building")
	}

	spec := rules.BuildingSpecFor(kind)
	if spec.RequiresTech != rules.TechNone && !rules.HasTech(player.Researched, spec.RequiresTech) {
		return fail("Requires %s", rules.TechSpecFor(spec.RequiresTech).Name)
	}
	if spec.RequiresResource != world.ResourceNone && tile.Resource != spec.RequiresResource {
		return fail("Requires a %s deposit", spec.RequiresResource)
	}
	if spec.HasReplaces && !tile.HasCompleteBuilding(spec.Replaces) {
		return fail("Requires a completed %s first", rules.BuildingSpecFor(spec.Replaces).Name)
	}

	valid := false
	for _, t := range spec.ValidTerrain {
		if tile.Terrain == t {
			valid = true
			break
		}
	}
	if !valid {
		return fail("Cannot build %s on %s", spec.Name, tile.Terrain.Info().Name)
	}

	if !econ.CanAfford(player.Economy, spec.Cost) {
		return fail("Cannot afford %s", spec.Name)
	}

	econ.PayCost(player.Economy, spec.Cost)
	tile.Buildings = append(tile.Buildings, world.Building{
		Kind:             kind,
		ConstructionLeft: spec.BuildTime,
	})
	return CommandResult{OK: true, Message: fmt.Sprintf("%s under construction (%d turns)", spec.Name, spec.BuildTime)}
}

// Recruit fields a new unit at a player-owned tile with a completed
// barracks (port for naval units).
func (s *State) Recruit(c world.Coord, kind rules.UnitKind) CommandResult {
	if s.GameOver {
		return fail("The game is over")
	}
	player := s.Player()

	tile := s.Map.Get(c)
	if tile == nil {
		return fail("No such tile")
	}
	if tile.Owner != player.ID {
		return fail("You do not own this tile")
	}

	spec := rules.UnitSpecFor(kind)
	if spec.Category == rules.CategoryNaval {
		if !tile.HasCompleteBuilding(world.BuildingPort) {
			return fail("Naval units require a completed Port")
		}
	} else if !tile.HasCompleteBuilding(world.BuildingBarracks) {
		return fail("Land units require a completed Barracks")
	}

	if spec.RequiresTech != rules.TechNone && !rules.HasTech(player.Researched, spec.RequiresTech) {
		return fail("Requires %s", rules.TechSpecFor(spec.RequiresTech).Name)
	}
	if !econ.CanAfford(player.Economy, spec.Cost) {
		return fail("Cannot afford %s", spec.Name)
	}

	econ.PayCost(player.Economy, spec.Cost)
	u := s.spawnUnit(kind, player.ID, c)
	return CommandResult{OK: true, Message: fmt.Sprintf("%s recruited", spec.Name), Unit: u}
}

// MoveUnit moves a player unit to an adjacent tile, resolving combat when
// the tile is held by a nation at war with the player.
func (s *State) MoveUnit(id military.UnitID, to world.Coord) CommandResult {
	if s.GameOver {
		return fail("The game is over")
	}
	player := s.Player()

	unit := s.UnitByID(id)
	if unit == nil {
		return fail("No such unit")
	}
	if unit.Owner != player.ID {
		return fail("Not your unit")
	}

	tile := s.Map.Get(to)
	if tile == nil {
		return fail("No such tile")
	}
	if !military.CanMove(unit, tile) {
		return fail("Unit cannot move there")
	}

	occupants := s.UnitsAt(to)
	if len(occupants) > 0 && occupants[0].Owner != player.ID {
		if !s.atWar(player.ID, occupants[0].Owner) {
			return fail("Cannot enter tile with foreign units")
		}
		return s.playerAttack(player, unit, occupants[0], tile)
	}

	s.relocateUnit(unit, to)
	military.Move(unit, tile)
	s.revealArea(to, 2, player.ID)

	if tile.Owner == 0 && tile.Terrain.Info().Buildable {
		tile.Owner = player.ID
		return CommandResult{OK: true, Message: fmt.Sprintf("Claimed (%d, %d)", to.Q, to.R), Unit: unit}
	}
	return CommandResult{OK: true, Message: "Unit moved", Unit: unit}
}

func (s *State) playerAttack(player *Nation, attacker, defender *military.Unit, tile *world.Tile) CommandResult {
	result := military.ResolveCombat(s.rng, attacker, defender, tile)

	enemy := s.NationByID(defender.Owner)
	if !result.DefenderSurvived {
		s.removeUnit(defender)
	}
	if !result.AttackerSurvived {
		s.removeUnit(attacker)
	}

	if result.AttackerSurvived && !result.DefenderSurvived && len(s.UnitsAt(tile.Coord)) == 0 {
		s.relocateUnit(attacker, tile.Coord)
		attacker.Pos = tile.Coord
		attacker.MovementLeft = 0
		if tile.Terrain.Info().Buildable {
			tile.Owner = player.ID
		}
		s.revealArea(tile.Coord, 2, player.ID)
	}

	s.logf("%s attacks %s at (%d, %d): %s",
		player.Name, enemyName(enemy), tile.Coord.Q, tile.Coord.R, result.Winner)
	return CommandResult{
		OK:      true,
		Message: fmt.Sprintf("Combat: %s", result.Winner),
		Unit:    attacker,
		Combat:  &result,
	}
}

// DeclareWarOn opens a war between the player and the target nation. Trade
// deals between the pair are cancelled and the target's friends take a
// relation hit toward the player.
func (s *State) DeclareWarOn(target world.NationID) CommandResult {
	if s.GameOver {
		return fail("The game is over")
	}
	player := s.Player()

	other := s.NationByID(target)
	if other == nil || !other.Alive {
		return fail("No such nation")
	}
	if other.ID == player.ID {
		return fail("Cannot declare war on yourself")
	}
	if s.atWar(player.ID, target) {
		return fail("Already at war")
	}

	diplomacy.DeclareWar(player.Diplomacy, other.Diplomacy, player.ID, other.ID, s.Turn)
	cancelTradeDeals(player, other)

	// Third parties fond of the victim resent the aggressor.
	for _, third := range s.Nations {
		if third.ID == player.ID || third.ID == other.ID || !third.Alive {
			continue
		}
		if rel, ok := third.Diplomacy[other.ID]; ok && rel.Value > 30 {
			third.Diplomacy.Modify(player.ID, -20, "Attacked our friend")
		}
	}

	s.logf("%s declares war on %s", player.Name, other.Name)
	return CommandResult{OK: true, Message: fmt.Sprintf("War declared on %s", other.Name)}
}

// ProposePeaceWith offers to end an ongoing war. The enemy accepts when it
// has lost its appetite for the war.
func (s *State) ProposePeaceWith(target world.NationID) CommandResult {
	if s.GameOver {
		return fail("The game is over")
	}
	player := s.Player()

	other := s.NationByID(target)
	if other == nil || !other.Alive {
		return fail("No such nation")
	}
	if !s.atWar(player.ID, target) {
		return fail("Not at war")
	}

	rel := other.Diplomacy[player.ID]
	balance := s.nationStrength(other) / maxFloat(1, s.nationStrength(player))
	willingness := diplomacy.EvaluateWarWillingness(rel, balance, other.Template.Traits.Aggression, s.Turn)
	if willingness > 50 {
		return fail("%s is not ready for peace", other.Name)
	}

	diplomacy.MakePeace(player.Diplomacy, other.Diplomacy, player.ID, other.ID, s.Turn)
	s.logf("%s and %s sign a peace treaty", player.Name, other.Name)
	return CommandResult{OK: true, Message: fmt.Sprintf("Peace with %s", other.Name)}
}

// ProposeTreatyWith offers a treaty to the target nation. An accepted trade
// agreement registers reciprocal standing trade deals.
func (s *State) ProposeTreatyWith(target world.NationID, t diplomacy.TreatyType) CommandResult {
	if s.GameOver {
		return fail("The game is over")
	}
	player := s.Player()

	other := s.NationByID(target)
	if other == nil || !other.Alive {
		return fail("No such nation")
	}
	if other.ID == player.ID {
		return fail("Cannot sign treaties with yourself")
	}

	result := diplomacy.ProposeTreaty(player.Diplomacy, other.Diplomacy, player.ID, other.ID, t, s.Turn)
	if !result.Accepted {
		return CommandResult{OK: false, Message: result.Reason}
	}

	if t == diplomacy.TreatyTradeAgreement {
		addTradeDeals(player, other)
	}
	s.logf("%s signs a %s with %s", player.Name, t, other.Name)
	return CommandResult{OK: true, Message: result.Reason}
}

// SetResearch points the player's research slot at a technology whose
// prerequisites are met.
func (s *State) SetResearch(tech rules.TechID) CommandResult {
	if s.GameOver {
		return fail("The game is over")
	}
	player := s.Player()

	for _, id := range rules.AvailableTechs(player.Researched) {
		if id == tech {
			player.CurrentResearch = tech
			player.ResearchProgress = 0
			return CommandResult{OK: true, Message: fmt.Sprintf("Researching %s", rules.TechSpecFor(tech).Name)}
		}
	}
	return fail("Technology is not available")
}

// SetTaxRate adjusts the player's tax rate within [0.05, 0.4].
func (s *State) SetTaxRate(rate float64) CommandResult {
	if rate < 0.05 || rate > 0.4 {
		return fail("Tax rate must be between 0.05 and 0.40")
	}
	s.Player().Economy.TaxRate = rate
	return CommandResult{OK: true, Message: fmt.Sprintf("Tax rate set to %.0f%%", rate*100)}
}
