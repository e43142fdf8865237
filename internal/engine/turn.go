package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/hegemon/internal/diplomacy"
	"github.com/talgya/hegemon/internal/econ"
	"github.com/talgya/hegemon/internal/military"
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// TurnSummary is the digest of one AdvanceTurn call.
type TurnSummary struct {
	Turn    int                            `json:"turn"`
	Actions []string                       `json:"actions"` // AI action log lines
	Reports map[world.NationID]econ.Report `json:"reports"`
	Events  []string                       `json:"events"`
}

// AdvanceTurn runs one full turn. Phase order is fixed: construction,
// AI nations, economy, research, diplomacy drift, events, player movement
// reset, scoring and elimination, victory check, turn increment.
func (s *State) AdvanceTurn() TurnSummary {
	summary := TurnSummary{
		Turn:    s.Turn,
		Reports: make(map[world.NationID]econ.Report),
	}
	if s.GameOver {
		return summary
	}

	s.advanceConstruction()

	for _, n := range s.Nations {
		if (n.IsPlayer && !s.Settings.Autopilot) || !n.Alive {
			continue
		}
		military.ResetMovement(s.NationUnits(n.ID))
		summary.Actions = append(summary.Actions, s.runAI(n)...)
	}

	for _, n := range s.Nations {
		if !n.Alive {
			continue
		}
		upkeep := 0
		for _, u := range s.NationUnits(n.ID) {
			upkeep += u.Upkeep
		}
		summary.Reports[n.ID] = econ.ProcessTurn(n.Economy, s.OwnedTiles(n.ID), upkeep)
	}

	for _, n := range s.Nations {
		if n.Alive {
			s.advanceResearch(n)
		}
	}

	for _, n := range s.Nations {
		if n.Alive {
			diplomacy.ProcessDrift(n.Diplomacy)
		}
	}

	summary.Events = s.tickEvents()

	// Under autopilot the AI loop already reset the player's units.
	if !s.Settings.Autopilot {
		military.ResetMovement(s.NationUnits(s.Player().ID))
	}

	s.updateScores()
	s.checkEliminations()
	s.checkVictory()

	s.Turn++

	slog.Debug("turn advanced", "turn", summary.Turn, "actions", len(summary.Actions), "events", len(summary.Events))
	return summary
}

// advanceConstruction ticks every in-progress building down by one turn.
// A building completed here produces from this turn's economy phase on.
func (s *State) advanceConstruction() {
	for r := 0; r < s.Map.Height; r++ {
		for q := 0; q < s.Map.Width; q++ {
			tile := s.Map.Get(world.Coord{Q: q, R: r})
			if tile == nil {
				continue
			}
			for i := range tile.Buildings {
				b := &tile.Buildings[i]
				if b.ConstructionLeft > 0 {
					b.ConstructionLeft--
					if b.ConstructionLeft == 0 {
						if n := s.NationByID(tile.Owner); n != nil {
							spec := rules.BuildingSpecFor(b.Kind)
							s.logf("%s completed a %s at (%d, %d)", n.Name, spec.Name, tile.Coord.Q, tile.Coord.R)
							s.notifyPlayer(n, "construction", fmt.Sprintf("%s completed at (%d, %d)", spec.Name, tile.Coord.Q, tile.Coord.R))
						}
					}
				}
			}
		}
	}
}

// advanceResearch accrues progress on the nation's current tech. The rate
// grows with the number of completed techs.
func (s *State) advanceResearch(n *Nation) {
	if n.CurrentResearch == rules.TechNone {
		return
	}

	rate := 3 + 0.5*float64(len(n.Researched))
	n.ResearchProgress += rate

	spec := rules.TechSpecFor(n.CurrentResearch)
	if n.ResearchProgress >= spec.Cost {
		n.Researched = append(n.Researched, n.CurrentResearch)
		s.logf("%s discovered %s", n.Name, spec.Name)
		s.notifyPlayer(n, "research", fmt.Sprintf("Research complete: %s", spec.Name))
		n.CurrentResearch = rules.TechNone
		n.ResearchProgress = 0
	}
}

// updateScores recomputes every living nation's score.
func (s *State) updateScores() {
	for _, n := range s.Nations {
		if !n.Alive {
			continue
		}
		tiles := len(s.OwnedTiles(n.ID))
		n.Score = float64(tiles*10) + float64(n.Economy.Gold) + float64(n.Economy.Population)*0.01
	}
}

// checkEliminations marks nations with no territory left as dead.
func (s *State) checkEliminations() {
	for _, n := range s.Nations {
		if !n.Alive {
			continue
		}
		if len(s.OwnedTiles(n.ID)) == 0 {
			n.Alive = false
			s.logf("%s has been eliminated", n.Name)
			s.notifyPlayer(n, "elimination", "Your nation has fallen.")
		}
	}
}

// checkVictory ends the game when a living nation holds the domination
// share of buildable land or reaches the economic gold target. Nations are
// checked in roster order, which also breaks ties.
func (s *State) checkVictory() {
	buildable := 0
	for _, t := range s.Map.Tiles {
		if t.Terrain.Info().Buildable {
			buildable++
		}
	}
	if buildable == 0 {
		return
	}

	for _, n := range s.Nations {
		if !n.Alive {
			continue
		}

		owned := len(s.OwnedTiles(n.ID))
		if float64(owned)/float64(buildable) >= s.Victory.Domination {
			s.endGame(n, VictoryDomination)
			return
		}
		if n.Economy.Gold >= s.Victory.EconomicTarget {
			s.endGame(n, VictoryEconomic)
			return
		}
	}
}

func (s *State) endGame(winner *Nation, vt VictoryType) {
	s.GameOver = true
	s.Winner = winner.ID
	s.VictoryType = vt
	s.logf("%s has won a %s victory", winner.Name, vt)
	slog.Info("game over", "winner", winner.Name, "victory", string(vt), "turn", s.Turn)
}
