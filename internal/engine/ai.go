package engine

import (
	"fmt"

	"github.com/talgya/hegemon/internal/diplomacy"
	"github.com/talgya/hegemon/internal/econ"
	"github.com/talgya/hegemon/internal/military"
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// advisor is one stage of the AI decision pipeline. Advisors mutate state
// directly and return log lines describing what they did.
type advisor interface {
	Advise(s *State, n *Nation) []string
}

// aiAdvisors run in a fixed order each turn: long-term choices first, then
// spending, then unit orders, then external affairs.
var aiAdvisors = []advisor{
	researchAdvisor{},
	constructionAdvisor{},
	recruitmentAdvisor{},
	movementAdvisor{},
	diplomacyAdvisor{},
	taxAdvisor{},
}

func (s *State) runAI(n *Nation) []string {
	var lines []string
	for _, a := range aiAdvisors {
		lines = append(lines, a.Advise(s, n)...)
	}
	return lines
}

// researchAdvisor picks a new technology whenever the slot is free,
// weighting categories by personality and cheap tiers over deep ones.
type researchAdvisor struct{}

func (researchAdvisor) Advise(s *State, n *Nation) []string {
	if n.CurrentResearch != rules.TechNone {
		return nil
	}

	available := rules.AvailableTechs(n.Researched)
	if len(available) == 0 {
		return nil
	}

	best := rules.TechNone
	bestScore := -1.0
	for _, id := range available {
		spec := rules.TechSpecFor(id)
		score := categoryAffinity(n.Template.Personality, spec.Category)
		score += float64(5-spec.Tier) * 0.5
		if score > bestScore {
			best, bestScore = id, score
		}
	}

	n.CurrentResearch = best
	n.ResearchProgress = 0
	return []string{fmt.Sprintf("%s begins researching %s", n.Name, rules.TechSpecFor(best).Name)}
}

func categoryAffinity(p rules.Personality, c rules.TechCategory) float64 {
	affinities := map[rules.Personality]map[rules.TechCategory]float64{
		rules.PersonalityMilitarist:    {rules.TechCategoryMilitary: 3},
		rules.PersonalityMerchant:      {rules.TechCategoryEconomy: 3, rules.TechCategoryNaval: 2},
		rules.PersonalityIndustrialist: {rules.TechCategoryIndustry: 3, rules.TechCategoryEconomy: 2},
		rules.PersonalityDiplomat:      {rules.TechCategoryCulture: 3, rules.TechCategoryEconomy: 2},
		rules.PersonalityExpansionist:  {rules.TechCategoryMilitary: 2, rules.TechCategoryIndustry: 2},
	}
	if w, ok := affinities[p][c]; ok {
		return w
	}
	return 1
}

// needs is the construction advisor's view of what the nation is short of.
type needs struct {
	resources map[world.Resource]float64
	military  float64
	naval     float64
	defense   float64
}

// constructionAdvisor starts the highest scoring affordable building on
// each owned tile. Affordability is rechecked per placement, so the
// treasury throttles a building spree on its own.
type constructionAdvisor struct{}

const maxBuildingsPerTile = 3

func (constructionAdvisor) Advise(s *State, n *Nation) []string {
	owned := s.OwnedTiles(n.ID)
	nd := assessNeeds(s, n, owned)

	var lines []string
	for _, tile := range owned {
		if len(tile.Buildings) >= maxBuildingsPerTile {
			continue
		}

		started := false
		var bestKind world.BuildingKind
		bestScore := 2.0 // below this, saving the gold is better
		for _, kind := range rules.AllBuildingKinds() {
			if !canPlace(n, tile, kind) {
				continue
			}
			score := scoreBuilding(kind, tile, nd) * n.Template.Traits.Industry
			if score > bestScore {
				bestKind, bestScore, started = kind, score, true
			}
		}
		if !started {
			continue
		}

		spec := rules.BuildingSpecFor(bestKind)
		econ.PayCost(n.Economy, spec.Cost)
		tile.Buildings = append(tile.Buildings, world.Building{
			Kind:             bestKind,
			ConstructionLeft: spec.BuildTime,
		})
		lines = append(lines, fmt.Sprintf("%s starts a %s at (%d, %d)", n.Name, spec.Name, tile.Coord.Q, tile.Coord.R))
	}
	return lines
}

func assessNeeds(s *State, n *Nation, owned []*world.Tile) needs {
	nd := needs{resources: make(map[world.Resource]float64)}
	e := n.Economy

	food := 0
	for _, res := range world.FoodResources {
		food += e.Stocks[res]
	}
	if food < e.Population/300 {
		nd.resources[world.ResourceGrain] = 5
		nd.resources[world.ResourceFish] = 5
		nd.resources[world.ResourceCattle] = 5
	}
	for _, res := range []world.Resource{world.ResourceIron, world.ResourceCoal, world.ResourceTimber} {
		if e.Stocks[res] < 3 {
			nd.resources[res] = 3
		}
	}

	hasBarracks := false
	hasPort := false
	coastal := false
	for _, tile := range owned {
		if tile.HasBuilding(world.BuildingBarracks) {
			hasBarracks = true
		}
		if tile.HasBuilding(world.BuildingPort) {
			hasPort = true
		}
		if tile.Terrain == world.TerrainCoast {
			coastal = true
		}
		if isBorderTile(s, n, tile) && !tile.HasBuilding(world.BuildingFort) {
			nd.defense = 2
		}
	}
	if !hasBarracks {
		nd.military = 5
	}
	if coastal && !hasPort {
		nd.naval = 3
	}

	return nd
}

// isBorderTile reports whether any neighbor belongs to another nation.
func isBorderTile(s *State, n *Nation, tile *world.Tile) bool {
	for _, nb := range tile.Coord.Neighbors() {
		t := s.Map.Get(nb)
		if t != nil && t.Owner != 0 && t.Owner != n.ID {
			return true
		}
	}
	return false
}

// canPlace checks terrain, tech, deposit, upgrade chain, duplication, and
// affordability for one candidate placement.
func canPlace(n *Nation, tile *world.Tile, kind world.BuildingKind) bool {
	spec := rules.BuildingSpecFor(kind)

	if tile.HasBuilding(kind) {
		return false
	}
	if spec.RequiresTech != rules.TechNone && !rules.HasTech(n.Researched, spec.RequiresTech) {
		return false
	}
	if spec.RequiresResource != world.ResourceNone && tile.Resource != spec.RequiresResource {
		return false
	}
	if spec.HasReplaces && !tile.HasCompleteBuilding(spec.Replaces) {
		return false
	}

	valid := false
	for _, t := range spec.ValidTerrain {
		if tile.Terrain == t {
			valid = true
			break
		}
	}
	if !valid {
		return false
	}

	return econ.CanAfford(n.Economy, spec.Cost)
}

func scoreBuilding(kind world.BuildingKind, tile *world.Tile, nd needs) float64 {
	spec := rules.BuildingSpecFor(kind)

	score := 0.0
	for res := range spec.Produces {
		w, ok := nd.resources[res]
		if !ok {
			w = 1
		}
		score += w * 2
		// Improving the tile's own deposit beats building on bare land.
		if tile.Resource == res {
			score += 2
		}
	}

	switch kind {
	case world.BuildingBarracks:
		score += nd.military * 3
	case world.BuildingPort:
		score += nd.naval * 3
	case world.BuildingMarket, world.BuildingBank:
		score += 3
	case world.BuildingRoad, world.BuildingRailroad:
		score += 2
	case world.BuildingUniversity:
		score += 4
	case world.BuildingFort:
		score += nd.defense * 2
	}

	return score
}

// recruitmentAdvisor fields new land units at complete barracks until the
// land army reaches a size target scaled by territory and the military
// trait. Ships do not count toward the target.
type recruitmentAdvisor struct{}

func (recruitmentAdvisor) Advise(s *State, n *Nation) []string {
	owned := s.OwnedTiles(n.ID)
	target := int(float64(len(owned)) * 0.3 * n.Template.Traits.Military)
	if target < 3 {
		target = 3
	}

	current := 0
	for _, u := range s.NationUnits(n.ID) {
		if u.Category() == rules.CategoryLand {
			current++
		}
	}
	var lines []string

	for _, tile := range owned {
		if current >= target {
			break
		}
		if !tile.HasCompleteBuilding(world.BuildingBarracks) {
			continue
		}

		kind := chooseRecruit(n)
		spec := rules.UnitSpecFor(kind)
		if !econ.CanAfford(n.Economy, spec.Cost) {
			continue
		}

		econ.PayCost(n.Economy, spec.Cost)
		s.spawnUnit(kind, n.ID, tile.Coord)
		current++
		lines = append(lines, fmt.Sprintf("%s recruits %s at (%d, %d)", n.Name, spec.Name, tile.Coord.Q, tile.Coord.R))
	}

	return lines
}

func chooseRecruit(n *Nation) rules.UnitKind {
	if n.Template.Traits.Military > 1.2 && econ.CanAfford(n.Economy, rules.UnitSpecFor(rules.UnitCavalry).Cost) {
		return rules.UnitCavalry
	}
	if n.Economy.Gold > 100 && econ.CanAfford(n.Economy, rules.UnitSpecFor(rules.UnitInfantry).Cost) {
		return rules.UnitInfantry
	}
	return rules.UnitMilitia
}

// movementAdvisor gives each unit one order: attack, expand, or defend,
// whichever adjacent tile scores highest.
type movementAdvisor struct{}

func (movementAdvisor) Advise(s *State, n *Nation) []string {
	var lines []string
	for _, unit := range s.NationUnits(n.ID) {
		if line := s.orderUnit(n, unit); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (s *State) orderUnit(n *Nation, unit *military.Unit) string {
	var best *world.Tile
	bestScore := 0.0

	for _, nb := range unit.Pos.Neighbors() {
		tile := s.Map.Get(nb)
		if tile == nil || !military.CanMove(unit, tile) {
			continue
		}

		occupants := s.UnitsAt(tile.Coord)
		foreign := len(occupants) > 0 && occupants[0].Owner != n.ID
		if foreign && !s.atWar(n.ID, occupants[0].Owner) {
			continue
		}

		score := 0.0
		if tile.Owner != 0 && tile.Owner != n.ID && s.atWar(n.ID, tile.Owner) {
			score += 20 * n.Template.Traits.Aggression
			if foreign {
				mine := military.ArmyStrength([]*military.Unit{unit})
				theirs := military.ArmyStrength(occupants)
				if mine > theirs*0.8 {
					score += 15
				} else {
					score -= 10
				}
			} else {
				score += 10
			}
		}
		if tile.Owner == 0 && tile.Terrain.Info().Buildable {
			score += 5 * n.Template.Traits.Expansion
		}
		if tile.Owner == n.ID && s.enemyAdjacent(n.ID, tile.Coord) {
			score += 8
		}

		if score > bestScore {
			best, bestScore = tile, score
		}
	}

	if best == nil {
		return ""
	}

	occupants := s.UnitsAt(best.Coord)
	if len(occupants) > 0 && occupants[0].Owner != n.ID {
		return s.aiAttack(n, unit, occupants[0], best)
	}

	s.relocateUnit(unit, best.Coord)
	military.Move(unit, best)
	if best.Owner == 0 && best.Terrain.Info().Buildable {
		best.Owner = n.ID
		return fmt.Sprintf("%s claims (%d, %d)", n.Name, best.Coord.Q, best.Coord.R)
	}
	return ""
}

func (s *State) aiAttack(n *Nation, attacker, defender *military.Unit, tile *world.Tile) string {
	result := military.ResolveCombat(s.rng, attacker, defender, tile)

	enemy := s.NationByID(defender.Owner)
	if !result.DefenderSurvived {
		s.removeUnit(defender)
	}
	if !result.AttackerSurvived {
		s.removeUnit(attacker)
	}

	// Kill with no garrison left takes the tile.
	if result.AttackerSurvived && !result.DefenderSurvived && len(s.UnitsAt(tile.Coord)) == 0 {
		s.relocateUnit(attacker, tile.Coord)
		attacker.Pos = tile.Coord
		attacker.MovementLeft = 0
		if tile.Terrain.Info().Buildable {
			tile.Owner = n.ID
		}
	}

	if enemy != nil {
		s.notifyPlayer(enemy, "war", fmt.Sprintf("%s attacked your %s at (%d, %d)", n.Name, defender.Name(), tile.Coord.Q, tile.Coord.R))
	}
	return fmt.Sprintf("%s attacks %s at (%d, %d): %s",
		n.Name, enemyName(enemy), tile.Coord.Q, tile.Coord.R, result.Winner)
}

func enemyName(n *Nation) string {
	if n == nil {
		return "unknown forces"
	}
	return n.Name
}

func (s *State) atWar(a, b world.NationID) bool {
	n := s.NationByID(a)
	if n == nil {
		return false
	}
	rel, ok := n.Diplomacy[b]
	return ok && rel.Status == diplomacy.StatusWar
}

// enemyAdjacent reports whether a hostile unit stands next to the tile.
func (s *State) enemyAdjacent(id world.NationID, c world.Coord) bool {
	for _, nb := range c.Neighbors() {
		for _, u := range s.UnitsAt(nb) {
			if u.Owner != id && s.atWar(id, u.Owner) {
				return true
			}
		}
	}
	return false
}

// diplomacyAdvisor handles AI-to-AI relations: opportunistic wars for
// aggressive nations, trade agreements for diplomatic ones. The human is
// skipped entirely; wars with the player start only by the player's own
// declaration.
type diplomacyAdvisor struct{}

func (diplomacyAdvisor) Advise(s *State, n *Nation) []string {
	var lines []string
	for _, other := range s.Nations {
		if other.ID == n.ID || !other.Alive || other.IsPlayer {
			continue
		}
		rel, ok := n.Diplomacy[other.ID]
		if !ok {
			continue
		}

		traits := n.Template.Traits
		if rel.Status == diplomacy.StatusWar {
			// Sue for peace once the war stops looking winnable, if the
			// other side is willing to stop too.
			mine := s.nationStrength(n) / maxFloat(1, s.nationStrength(other))
			ownWill := diplomacy.EvaluateWarWillingness(rel, mine, traits.Aggression, s.Turn)
			otherRel := other.Diplomacy[n.ID]
			otherWill := diplomacy.EvaluateWarWillingness(otherRel, 1/maxFloat(0.01, mine), other.Template.Traits.Aggression, s.Turn)
			if ownWill < 25 && otherWill <= 50 {
				diplomacy.MakePeace(n.Diplomacy, other.Diplomacy, n.ID, other.ID, s.Turn)
				s.logf("%s and %s sign a peace treaty", n.Name, other.Name)
				lines = append(lines, fmt.Sprintf("%s makes peace with %s", n.Name, other.Name))
			}
			continue
		}
		if traits.Aggression > 0.8 {
			balance := s.nationStrength(n) / maxFloat(1, s.nationStrength(other))
			willingness := diplomacy.EvaluateWarWillingness(rel, balance, traits.Aggression, s.Turn)
			if willingness > 50 && s.rng.Float64() < 0.1*traits.Aggression {
				diplomacy.DeclareWar(n.Diplomacy, other.Diplomacy, n.ID, other.ID, s.Turn)
				cancelTradeDeals(n, other)
				s.logf("%s declares war on %s", n.Name, other.Name)
				lines = append(lines, fmt.Sprintf("%s declares war on %s", n.Name, other.Name))
				continue
			}
		}

		if traits.Diplomacy > 0.8 &&
			rel.Value > -10 && !rel.HasTreaty(diplomacy.TreatyTradeAgreement) &&
			s.rng.Float64() < 0.15*traits.Diplomacy {
			result := diplomacy.ProposeTreaty(n.Diplomacy, other.Diplomacy, n.ID, other.ID, diplomacy.TreatyTradeAgreement, s.Turn)
			if result.Accepted {
				addTradeDeals(n, other)
				lines = append(lines, fmt.Sprintf("%s signs a trade agreement with %s", n.Name, other.Name))
			}
		}
	}
	return lines
}

// taxAdvisor trades stability against treasury: ease taxes under unrest,
// raise them when broke and stable.
type taxAdvisor struct{}

func (taxAdvisor) Advise(_ *State, n *Nation) []string {
	e := n.Economy
	switch {
	case e.Stability < 40 && e.TaxRate > 0.1:
		e.TaxRate = maxFloat(0.05, e.TaxRate-0.05)
	case e.Gold < 50 && e.Stability > 60:
		e.TaxRate = minFloat(0.4, e.TaxRate+0.05)
	}
	return nil
}

// nationStrength is the coarse power estimate used for war calculus: army
// strength plus discounted gold and territory.
func (s *State) nationStrength(n *Nation) float64 {
	strength := military.ArmyStrength(s.NationUnits(n.ID))
	strength += float64(n.Economy.Gold) * 0.1
	strength += float64(len(s.OwnedTiles(n.ID))) * 2
	return strength
}

// cancelTradeDeals removes every standing deal between the pair, both ways.
func cancelTradeDeals(a, b *Nation) {
	a.Economy.TradeDeals = dropDealsWith(a.Economy.TradeDeals, b.ID)
	b.Economy.TradeDeals = dropDealsWith(b.Economy.TradeDeals, a.ID)
}

func dropDealsWith(deals []econ.TradeDeal, partner world.NationID) []econ.TradeDeal {
	out := deals[:0]
	for _, d := range deals {
		if d.Partner != partner {
			out = append(out, d)
		}
	}
	return out
}

// addTradeDeals registers the reciprocal flat-gold deals of a fresh trade
// agreement.
func addTradeDeals(a, b *Nation) {
	a.Economy.TradeDeals = append(a.Economy.TradeDeals, econ.TradeDeal{Partner: b.ID, GoldPerTurn: 10, Active: true})
	b.Economy.TradeDeals = append(b.Economy.TradeDeals, econ.TradeDeal{Partner: a.ID, GoldPerTurn: 10, Active: true})
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
