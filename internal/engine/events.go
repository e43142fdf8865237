package engine

import (
	"fmt"
	"strings"

	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// tickEvents ages active events out and rolls the template catalog for new
// ones. Returns the descriptions of events fired this turn.
func (s *State) tickEvents() []string {
	kept := s.ActiveEvents[:0]
	for _, ev := range s.ActiveEvents {
		ev.TurnsLeft--
		if ev.TurnsLeft > 0 {
			kept = append(kept, ev)
		}
	}
	s.ActiveEvents = kept

	return s.rollEvents()
}

// rollEvents rolls every template independently against a random living
// nation and fires those whose conditions hold.
func (s *State) rollEvents() []string {
	var fired []string

	living := make([]*Nation, 0, len(s.Nations))
	for _, n := range s.Nations {
		if n.Alive {
			living = append(living, n)
		}
	}
	if len(living) == 0 {
		return nil
	}

	for _, spec := range rules.RandomEvents {
		if s.rng.Float64() > spec.Probability {
			continue
		}

		n := living[s.rng.Intn(len(living))]
		owned := s.OwnedTiles(n.ID)
		if len(owned) == 0 {
			continue
		}
		if !eventApplies(spec.Conditions, n, owned) {
			continue
		}

		tile := owned[s.rng.Intn(len(owned))]
		msg := strings.ReplaceAll(spec.Description, "{territory}",
			fmt.Sprintf("(%d, %d)", tile.Coord.Q, tile.Coord.R))

		s.applyEventEffects(spec.Effects, n)

		s.ActiveEvents = append(s.ActiveEvents, &ActiveEvent{
			Spec:      spec,
			Nation:    n.ID,
			Tile:      tile.Coord,
			Message:   msg,
			TurnsLeft: spec.Duration,
		})

		s.logf("%s %s: %s", spec.Icon, spec.Name, msg)
		s.notifyPlayer(n, "event", fmt.Sprintf("%s %s: %s", spec.Icon, spec.Name, msg))
		fired = append(fired, fmt.Sprintf("%s (%s)", spec.Name, n.Name))
	}

	return fired
}

func eventApplies(c rules.EventConditions, n *Nation, owned []*world.Tile) bool {
	e := n.Economy

	if c.StabilityBelow > 0 && e.Stability >= c.StabilityBelow {
		return false
	}
	if c.StabilityAbove > 0 && e.Stability <= c.StabilityAbove {
		return false
	}

	if c.HasBuildingCondition {
		found := false
		for _, tile := range owned {
			if tile.HasCompleteBuilding(c.RequiresBuilding) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(c.RequiresTerrain) > 0 {
		found := false
		for _, tile := range owned {
			for _, t := range c.RequiresTerrain {
				if tile.Terrain == t {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func (s *State) applyEventEffects(eff rules.EventEffects, n *Nation) {
	e := n.Economy

	if eff.Stability != 0 {
		e.Stability += eff.Stability
		if e.Stability < 0 {
			e.Stability = 0
		}
		if e.Stability > 100 {
			e.Stability = 100
		}
	}
	e.Gold += eff.Gold
	if eff.PopulationScale > 0 {
		e.Population = int(float64(e.Population) * eff.PopulationScale)
	}
	if eff.ResearchBonus > 0 && n.CurrentResearch != rules.TechNone {
		n.ResearchProgress += eff.ResearchBonus
	}
}
