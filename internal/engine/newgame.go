package engine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/hegemon/internal/diplomacy"
	"github.com/talgya/hegemon/internal/econ"
	"github.com/talgya/hegemon/internal/military"
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// Difficulty shifts starting advantages between the player and the AI.
type Difficulty uint8

const (
	DifficultyNormal Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty maps a config string to a Difficulty. Unknown values fall
// back to normal.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}

// Settings configure a new game. Zero values are filled in by defaults.
type Settings struct {
	MapWidth     int        `yaml:"map_width"`
	MapHeight    int        `yaml:"map_height"`
	NumAI        int        `yaml:"num_ai"`
	PlayerNation string     `yaml:"player_nation"` // template name, empty picks the first drawn
	Difficulty   Difficulty `yaml:"-"`
	Seed         int64      `yaml:"seed"` // 0 draws a random seed

	// Autopilot runs the AI pipeline for the player nation too, for
	// headless campaigns.
	Autopilot bool `yaml:"autopilot"`
}

func (s *Settings) applyDefaults() {
	if s.MapWidth <= 0 {
		s.MapWidth = 50
	}
	if s.MapHeight <= 0 {
		s.MapHeight = 40
	}
	if s.NumAI <= 0 {
		s.NumAI = 7
	}
	if s.NumAI > len(rules.NationTemplates)-1 {
		s.NumAI = len(rules.NationTemplates) - 1
	}
	if s.Seed == 0 {
		s.Seed = rand.Int63()
	}
}

const (
	startRevealRadius   = 4
	dominationThreshold = 0.6
	economicGoldTarget  = 5000
)

// NewGame builds a fresh game state: generated map, drawn nation roster,
// starting positions, capitals, starting buildings and units. The same
// settings (including seed) always produce the same game.
func NewGame(settings Settings) (*State, error) {
	settings.applyDefaults()
	rng := rand.New(rand.NewSource(settings.Seed))

	m := world.Generate(settings.MapWidth, settings.MapHeight, settings.Seed)

	total := settings.NumAI + 1
	roster := drawRoster(rng, settings.PlayerNation, total)

	starts := world.FindStartingPositions(m, total)
	if starts == nil {
		return nil, fmt.Errorf("map %dx%d (seed %d) has too little usable land for %d nations",
			settings.MapWidth, settings.MapHeight, settings.Seed, total)
	}

	s := &State{
		ID:       uuid.New(),
		Map:      m,
		Turn:     1,
		Settings: settings,
		Victory: VictoryConditions{
			Domination:     dominationThreshold,
			EconomicTarget: economicGoldTarget,
		},
		units:     make(map[world.Coord][]*military.Unit),
		unitIndex: make(map[military.UnitID]*military.Unit),
		rng:       rng,
	}

	ids := make([]world.NationID, total)
	for i := range ids {
		ids[i] = world.NationID(i + 1)
	}

	for i, tmpl := range roster {
		id := ids[i]
		others := make([]world.NationID, 0, total-1)
		for _, other := range ids {
			if other != id {
				others = append(others, other)
			}
		}

		n := &Nation{
			ID:             id,
			Name:           tmpl.Name,
			Color:          tmpl.Color,
			SecondaryColor: tmpl.SecondaryColor,
			Flag:           tmpl.Flag,
			Template:       tmpl,
			IsPlayer:       i == 0,
			Economy:        econ.NewEconomy(),
			Diplomacy:      diplomacy.NewLedger(others),
			Capital:        starts[i],
			Alive:          true,
		}
		s.Nations = append(s.Nations, n)

		s.settleCapital(n, starts[i])
	}

	applyDifficulty(s, settings.Difficulty)

	s.logf("A new age begins. %d nations contest the continent.", total)
	s.revealArea(s.Player().Capital, startRevealRadius, s.Player().ID)

	slog.Info("game created",
		"id", s.ID,
		"seed", settings.Seed,
		"map", fmt.Sprintf("%dx%d", settings.MapWidth, settings.MapHeight),
		"nations", total,
		"player", s.Player().Name,
		"difficulty", settings.Difficulty.String(),
	)

	return s, nil
}

// drawRoster shuffles the template roster and takes the first n entries. A
// requested player nation, when present, is moved to the front.
func drawRoster(rng *rand.Rand, playerNation string, n int) []rules.NationTemplate {
	roster := make([]rules.NationTemplate, len(rules.NationTemplates))
	copy(roster, rules.NationTemplates)
	rng.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})

	if playerNation != "" {
		for i, tmpl := range roster {
			if tmpl.Name == playerNation {
				roster[0], roster[i] = roster[i], roster[0]
				break
			}
		}
	}

	return roster[:n]
}

// settleCapital claims the capital tile and its buildable neighbors, raises
// the starting buildings, and fields the starting army.
func (s *State) settleCapital(n *Nation, capital world.Coord) {
	tile := s.Map.Get(capital)
	tile.Owner = n.ID

	for _, nb := range capital.Neighbors() {
		t := s.Map.Get(nb)
		if t != nil && t.Owner == 0 && t.Terrain.Info().Buildable {
			t.Owner = n.ID
		}
	}

	// Capitals start with a working garrison town, no construction delay.
	tile.Buildings = append(tile.Buildings,
		world.Building{Kind: world.BuildingBarracks},
		world.Building{Kind: world.BuildingMarket},
	)

	s.spawnUnit(rules.UnitInfantry, n.ID, capital)
	s.spawnUnit(rules.UnitInfantry, n.ID, capital)
	s.spawnUnit(rules.UnitEngineer, n.ID, capital)
}

// applyDifficulty shifts starting gold and workers. Hard boosts every AI,
// easy boosts the player.
func applyDifficulty(s *State, d Difficulty) {
	boost := func(e *econ.Economy) {
		e.Gold = e.Gold * 3 / 2
		e.WorkerCount += 3
		e.MaxWorkers += 3
	}

	switch d {
	case DifficultyHard:
		for _, n := range s.Nations {
			if !n.IsPlayer {
				boost(n.Economy)
			}
		}
	case DifficultyEasy:
		boost(s.Player().Economy)
	}
}
