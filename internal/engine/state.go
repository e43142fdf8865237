// Package engine owns the authoritative game state and the turn
// orchestrator: game creation, the player command surface, the AI decision
// pipeline, random events, and victory evaluation.
//
// The simulation is strictly single-threaded and turn-atomic. State is
// exclusively owned by the orchestrator during any command or turn
// advance; callers read the state between commands but must route every
// mutation through one.
package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/talgya/hegemon/internal/diplomacy"
	"github.com/talgya/hegemon/internal/econ"
	"github.com/talgya/hegemon/internal/military"
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// Nation is one polity in the game, created once at game start.
type Nation struct {
	ID             world.NationID       `json:"id"`
	Name           string               `json:"name"`
	Color          string               `json:"color"`
	SecondaryColor string               `json:"secondary_color"`
	Flag           string               `json:"flag"`
	Template       rules.NationTemplate `json:"-"`
	IsPlayer       bool                 `json:"is_player"`

	Economy   *econ.Economy    `json:"economy"`
	Diplomacy diplomacy.Ledger `json:"diplomacy"`

	Researched       []rules.TechID `json:"researched"`
	CurrentResearch  rules.TechID   `json:"current_research"`
	ResearchProgress float64        `json:"research_progress"`

	Capital world.Coord `json:"capital"`
	Alive   bool        `json:"alive"`
	Score   float64     `json:"score"`
}

// LogEntry is one line of the chronological game log.
type LogEntry struct {
	Turn    int    `json:"turn"`
	Message string `json:"message"`
}

// Notification is a transient message queued for the human player.
type Notification struct {
	Kind    string `json:"kind"` // "research", "event", "war", ...
	Message string `json:"message"`
}

// ActiveEvent is a fired random event with a remaining duration.
type ActiveEvent struct {
	Spec      rules.EventSpec `json:"spec"`
	Nation    world.NationID  `json:"nation"`
	Tile      world.Coord     `json:"tile"`
	Message   string          `json:"message"`
	TurnsLeft int             `json:"turns_left"`
}

// VictoryType labels how a game ended.
type VictoryType string

const (
	VictoryDomination VictoryType = "domination"
	VictoryEconomic   VictoryType = "economic"
)

// VictoryConditions are the thresholds checked at the end of each turn.
type VictoryConditions struct {
	Domination     float64 `json:"domination"`      // owned fraction of buildable land
	EconomicTarget int     `json:"economic_target"` // gold
}

// State is the single mutable game aggregate.
type State struct {
	ID      uuid.UUID `json:"id"`
	Map     *world.Map
	Nations []*Nation
	Turn    int // monotonically increasing, starts at 1

	Log           []LogEntry
	Notifications []Notification
	ActiveEvents  []*ActiveEvent

	Victory     VictoryConditions
	GameOver    bool
	Winner      world.NationID
	VictoryType VictoryType

	Settings Settings

	// Unit placement: every unit lives in exactly one tile list. Moving
	// or dying updates exactly this pair of structures.
	units     map[world.Coord][]*military.Unit
	unitIndex map[military.UnitID]*military.Unit

	// Unit id sequence owned by this instance, so concurrent games stay
	// isolated.
	nextUnitID military.UnitID

	// Single seeded generator behind all in-game randomness (combat,
	// events, AI rolls). Identical settings replay identically.
	rng *rand.Rand
}

// Player returns the human nation.
func (s *State) Player() *Nation {
	for _, n := range s.Nations {
		if n.IsPlayer {
			return n
		}
	}
	return nil
}

// NationByID returns the nation with the given id, or nil.
func (s *State) NationByID(id world.NationID) *Nation {
	for _, n := range s.Nations {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// UnitsAt returns the units on the given tile.
func (s *State) UnitsAt(c world.Coord) []*military.Unit {
	return s.units[c]
}

// UnitByID returns the unit with the given id, or nil once it has died.
func (s *State) UnitByID(id military.UnitID) *military.Unit {
	return s.unitIndex[id]
}

// NationUnits returns a nation's units ordered by id, so per-unit passes
// are deterministic.
func (s *State) NationUnits(id world.NationID) []*military.Unit {
	var out []*military.Unit
	for _, units := range s.units {
		for _, u := range units {
			if u.Owner == id {
				out = append(out, u)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OwnedTiles returns a nation's tiles in row-major order, keeping
// per-tile passes deterministic.
func (s *State) OwnedTiles(id world.NationID) []*world.Tile {
	var out []*world.Tile
	for r := 0; r < s.Map.Height; r++ {
		for q := 0; q < s.Map.Width; q++ {
			t := s.Map.Get(world.Coord{Q: q, R: r})
			if t != nil && t.Owner == id {
				out = append(out, t)
			}
		}
	}
	return out
}

// spawnUnit creates a unit from the catalog and places it on the tile.
func (s *State) spawnUnit(kind rules.UnitKind, owner world.NationID, pos world.Coord) *military.Unit {
	s.nextUnitID++
	u := military.NewUnit(s.nextUnitID, kind, owner, pos)
	s.units[pos] = append(s.units[pos], u)
	s.unitIndex[u.ID] = u
	return u
}

// removeUnit deletes a dead unit from its tile list and the index.
func (s *State) removeUnit(u *military.Unit) {
	list := s.units[u.Pos]
	for i, other := range list {
		if other.ID == u.ID {
			s.units[u.Pos] = append(list[:i], list[i+1:]...)
			break
		}
	}
	delete(s.unitIndex, u.ID)
}

// relocateUnit moves a unit's placement from its current tile to another.
// The unit's own position is updated by military.Move; this keeps the tile
// lists consistent with it.
func (s *State) relocateUnit(u *military.Unit, to world.Coord) {
	list := s.units[u.Pos]
	for i, other := range list {
		if other.ID == u.ID {
			s.units[u.Pos] = append(list[:i], list[i+1:]...)
			break
		}
	}
	s.units[to] = append(s.units[to], u)
}

// logf appends a formatted line to the chronological game log.
func (s *State) logf(format string, args ...any) {
	s.Log = append(s.Log, LogEntry{Turn: s.Turn, Message: fmt.Sprintf(format, args...)})
}

// notifyPlayer queues a notification when the affected nation is human.
func (s *State) notifyPlayer(n *Nation, kind, message string) {
	if n.IsPlayer {
		s.Notifications = append(s.Notifications, Notification{Kind: kind, Message: message})
	}
}

// DrainNotifications returns and clears the queued player notifications.
func (s *State) DrainNotifications() []Notification {
	out := s.Notifications
	s.Notifications = nil
	return out
}

// revealArea marks every tile within radius as explored by the nation and
// lifts the fog there.
func (s *State) revealArea(center world.Coord, radius int, id world.NationID) {
	for _, t := range s.Map.Tiles {
		if world.Distance(center, t.Coord) <= radius {
			t.Explored[id] = true
			t.Fog = false
		}
	}
}
