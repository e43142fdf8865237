// Package diplomacy provides the per-nation-pair relationship state
// machine: a continuous relation value, its derived discrete status,
// treaties, and war history.
//
// Invariant: a relation's Status always equals Classify(Value). Every
// mutation path reclassifies atomically; no code sets one without the
// other.
package diplomacy

import "github.com/talgya/hegemon/internal/world"

// Status is the discrete classification of a relation value.
type Status uint8

const (
	StatusWar Status = iota
	StatusHostile
	StatusCold
	StatusNeutral
	StatusFriendly
	StatusAllied
)

func (s Status) String() string {
	switch s {
	case StatusWar:
		return "war"
	case StatusHostile:
		return "hostile"
	case StatusCold:
		return "cold"
	case StatusNeutral:
		return "neutral"
	case StatusFriendly:
		return "friendly"
	default:
		return "allied"
	}
}

// Classify maps a relation value in [-100, 100] to its status. The
// breakpoints are fixed balance constants.
func Classify(value float64) Status {
	switch {
	case value <= -75:
		return StatusWar
	case value <= -40:
		return StatusHostile
	case value <= -10:
		return StatusCold
	case value <= 30:
		return StatusNeutral
	case value <= 65:
		return StatusFriendly
	default:
		return StatusAllied
	}
}

// TreatyType enumerates bilateral agreements.
type TreatyType uint8

const (
	TreatyTradeAgreement TreatyType = iota
	TreatyNonAggression
	TreatyMilitaryAccess
	TreatyAlliance
	TreatyPeace
)

func (t TreatyType) String() string {
	switch t {
	case TreatyTradeAgreement:
		return "trade agreement"
	case TreatyNonAggression:
		return "non-aggression pact"
	case TreatyMilitaryAccess:
		return "military access"
	case TreatyAlliance:
		return "alliance"
	default:
		return "peace treaty"
	}
}

// requiredRelation is the minimum relation value at which the receiver
// accepts a proposal of each treaty type.
func requiredRelation(t TreatyType) float64 {
	switch t {
	case TreatyTradeAgreement:
		return -10
	case TreatyNonAggression:
		return 10
	case TreatyMilitaryAccess:
		return 30
	case TreatyAlliance:
		return 60
	default:
		return 0
	}
}

// Treaty is an active agreement as seen from one side of a pair.
type Treaty struct {
	Type      TreatyType `json:"type"`
	StartTurn int        `json:"start_turn"`
}

// War is one entry in a pair's war history. EndTurn is zero while the war
// is ongoing.
type War struct {
	StartTurn int `json:"start_turn"`
	EndTurn   int `json:"end_turn"`
}

// Relation is one nation's view of another. The two directional records of
// a pair are kept consistent by every mutation.
type Relation struct {
	Value      float64  `json:"value"` // [-100, 100]
	Status     Status   `json:"status"`
	Treaties   []Treaty `json:"treaties"`
	WarHistory []War    `json:"war_history"`
	LastAction string   `json:"last_action,omitempty"`
}

// HasTreaty reports whether a treaty of the given type is active.
func (r *Relation) HasTreaty(t TreatyType) bool {
	for _, tr := range r.Treaties {
		if tr.Type == t {
			return true
		}
	}
	return false
}

// openWar returns the ongoing war entry, or nil.
func (r *Relation) openWar() *War {
	for i := range r.WarHistory {
		if r.WarHistory[i].EndTurn == 0 {
			return &r.WarHistory[i]
		}
	}
	return nil
}

// Ledger holds one nation's relations with every other nation.
type Ledger map[world.NationID]*Relation

// NewLedger creates neutral relations toward the given nations.
func NewLedger(others []world.NationID) Ledger {
	l := make(Ledger, len(others))
	for _, id := range others {
		l[id] = &Relation{Value: 0, Status: StatusNeutral}
	}
	return l
}

// Modify adjusts a relation value, clamping to [-100, 100] and
// reclassifying atomically.
func (l Ledger) Modify(id world.NationID, amount float64, reason string) {
	rel, ok := l[id]
	if !ok {
		return
	}
	rel.Value = clamp(rel.Value+amount, -100, 100)
	rel.Status = Classify(rel.Value)
	rel.LastAction = reason
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
