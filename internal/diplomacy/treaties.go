package diplomacy

import "github.com/talgya/hegemon/internal/world"

// DeclareWar forces both directional records of the pair to value -100 and
// war status, clears all treaties, and opens a war-history entry on both
// sides. The caller is responsible for cancelling economic trade deals
// between the pair.
func DeclareWar(a, b Ledger, aID, bID world.NationID, turn int) {
	for _, side := range [2]struct {
		ledger Ledger
		other  world.NationID
	}{{a, bID}, {b, aID}} {
		rel, ok := side.ledger[side.other]
		if !ok {
			continue
		}
		rel.Value = -100
		rel.Status = StatusWar
		rel.Treaties = nil
		rel.WarHistory = append(rel.WarHistory, War{StartTurn: turn})
	}
}

// MakePeace ends the ongoing war between the pair: both sides move to
// value -20 (cold), record a peace treaty, and close the open war-history
// entry.
func MakePeace(a, b Ledger, aID, bID world.NationID, turn int) {
	for _, side := range [2]struct {
		ledger Ledger
		other  world.NationID
	}{{a, bID}, {b, aID}} {
		rel, ok := side.ledger[side.other]
		if !ok {
			continue
		}
		rel.Value = -20
		rel.Status = StatusCold
		rel.Treaties = append(rel.Treaties, Treaty{Type: TreatyPeace, StartTurn: turn})
		if war := rel.openWar(); war != nil {
			war.EndTurn = turn
		}
	}
}

// ProposalResult reports the receiver's decision on a treaty proposal.
type ProposalResult struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
}

// ProposeTreaty evaluates a treaty proposal from proposer to receiver.
// Rejected while at war, when the treaty already exists, or when the
// relation is below the treaty's required threshold. On acceptance the
// treaty registers symmetrically and both sides gain a small relation
// bump.
func ProposeTreaty(proposer, receiver Ledger, proposerID, receiverID world.NationID, t TreatyType, turn int) ProposalResult {
	rel, ok := proposer[receiverID]
	if !ok {
		return ProposalResult{Accepted: false, Reason: "Unknown nation"}
	}

	if rel.HasTreaty(t) {
		return ProposalResult{Accepted: false, Reason: "Treaty already exists"}
	}
	if rel.Status == StatusWar {
		return ProposalResult{Accepted: false, Reason: "Currently at war"}
	}
	if rel.Value < requiredRelation(t) {
		return ProposalResult{Accepted: false, Reason: "Relations are not warm enough"}
	}

	rel.Treaties = append(rel.Treaties, Treaty{Type: t, StartTurn: turn})
	if recv, ok := receiver[proposerID]; ok {
		recv.Treaties = append(recv.Treaties, Treaty{Type: t, StartTurn: turn})
	}
	proposer.Modify(receiverID, 5, "Signed "+t.String())
	receiver.Modify(proposerID, 5, "Signed "+t.String())

	return ProposalResult{Accepted: true, Reason: "Treaty signed!"}
}

// ProcessDrift applies one turn of passive drift to every relation in the
// ledger: values move toward zero by 0.5 (never crossing it), trade
// agreements and alliances add small positive drift, and war relations
// stay frozen. Status is reclassified after each adjustment.
func ProcessDrift(l Ledger) {
	for _, rel := range l {
		if rel.Status == StatusWar {
			continue
		}

		if rel.Value > 0 {
			rel.Value = maxf(0, rel.Value-0.5)
		} else if rel.Value < 0 {
			rel.Value = minf(0, rel.Value+0.5)
		}

		if rel.HasTreaty(TreatyTradeAgreement) {
			rel.Value = minf(100, rel.Value+0.3)
		}
		if rel.HasTreaty(TreatyAlliance) {
			rel.Value = minf(100, rel.Value+0.5)
		}

		rel.Status = Classify(rel.Value)
	}
}

// EvaluateWarWillingness scores how inclined a nation is to open a war
// against the owner of rel: colder relations and military advantage raise
// it, the aggression trait scales it, standing pacts and a recent peace
// lower it. Pure query, never mutates state.
func EvaluateWarWillingness(rel *Relation, militaryBalance, aggression float64, turn int) float64 {
	if rel == nil {
		return 0
	}

	willingness := (50 - rel.Value) * 0.3
	willingness += (militaryBalance - 1) * 30
	willingness *= aggression

	if rel.HasTreaty(TreatyNonAggression) {
		willingness -= 30
	}
	if rel.HasTreaty(TreatyAlliance) {
		willingness -= 60
	}

	// Cooldown after a recent peace.
	for _, w := range rel.WarHistory {
		if w.EndTurn != 0 && turn-w.EndTurn < 20 {
			willingness -= 20
			break
		}
	}

	return willingness
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
