package econ

import (
	"math"

	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// Report summarizes one turn of economic processing, for logging and the
// player's turn digest.
type Report struct {
	Produced    map[world.Resource]int `json:"produced"`
	Consumed    map[world.Resource]int `json:"consumed"`
	Income      int                    `json:"income"`
	Expenses    int                    `json:"expenses"`
	FoodSurplus int                    `json:"food_surplus"`
	NetGold     int                    `json:"net_gold"`
}

// ProcessTurn runs one turn of economic simulation for a nation: building
// production and consumption, resource trickle, taxes, trade, upkeep,
// population growth or famine, and tax-driven stability drift.
//
// owned must be the tiles the nation currently owns; unitUpkeep is the
// summed upkeep of its units this turn.
func ProcessTurn(e *Economy, owned []*world.Tile, unitUpkeep int) Report {
	income := 0
	expenses := 0
	produced := make(map[world.Resource]int)
	consumed := make(map[world.Resource]int)

	for _, tile := range owned {
		riverBonus := 1.0
		if tile.Terrain == world.TerrainRiver {
			riverBonus = 1.2
		}
		railBonus := 1.0
		if tile.HasBuilding(world.BuildingRailroad) {
			railBonus = 1.5
		}

		for _, b := range tile.Buildings {
			if !b.Complete() {
				continue
			}
			spec := rules.BuildingSpecFor(b.Kind)

			for res, amount := range spec.Produces {
				total := int(math.Floor(float64(amount) * riverBonus * railBonus))
				e.Stocks[res] += total
				produced[res] += total
			}

			// All-or-nothing consumption: a processing building that
			// cannot cover its full input does nothing this turn.
			if len(spec.Consumes) > 0 {
				ok := true
				for res, amount := range spec.Consumes {
					if e.Stocks[res] < amount {
						ok = false
						break
					}
				}
				if ok {
					for res, amount := range spec.Consumes {
						e.Stocks[res] -= amount
						consumed[res] += amount
					}
				}
			}

			income += spec.GoldPerTurn
		}

		// Unimproved natural resources trickle in a small fixed amount.
		if tile.Resource != world.ResourceNone && !tileExploits(tile, tile.Resource) {
			e.Stocks[tile.Resource]++
			produced[tile.Resource]++
		}

		// Building maintenance, complete or not.
		expenses += len(tile.Buildings)
	}

	// Taxes scale with population.
	income += int(float64(e.Population) * e.TaxRate * 0.01)

	// Standing trade deals: flat gold plus resource sales when stocked.
	for _, deal := range e.TradeDeals {
		if !deal.Active {
			continue
		}
		income += deal.GoldPerTurn
		if deal.Sells != world.ResourceNone && deal.Amount > 0 && e.Stocks[deal.Sells] >= deal.Amount {
			e.Stocks[deal.Sells] -= deal.Amount
			consumed[deal.Sells] += deal.Amount
			income += deal.Sells.BaseValue() * deal.Amount
		}
	}

	expenses += unitUpkeep

	// Population: grow on a food surplus, shrink on famine.
	foodAvailable := 0
	for _, res := range world.FoodResources {
		foodAvailable += e.Stocks[res]
	}
	foodNeeded := (e.Population + 499) / 500
	foodSurplus := foodAvailable - foodNeeded

	if foodSurplus >= 0 {
		e.Population = int(float64(e.Population) * (1 + e.PopulationGrowth))
		e.MaxWorkers = e.Population/200 + 5
		remaining := foodNeeded
		for _, res := range world.FoodResources {
			take := min(e.Stocks[res], remaining)
			e.Stocks[res] -= take
			remaining -= take
			if remaining <= 0 {
				break
			}
		}
	} else {
		e.Population = int(float64(e.Population) * 0.97)
		e.Stability = clamp(e.Stability-3, 0, 100)
	}

	// Tax pressure on stability.
	if e.TaxRate > 0.3 {
		e.Stability = clamp(e.Stability-1, 0, 100)
	}
	if e.TaxRate < 0.15 {
		e.Stability = clamp(e.Stability+1, 0, 100)
	}

	e.Income = income
	e.Expenses = expenses
	e.Gold += income - expenses

	return Report{
		Produced:    produced,
		Consumed:    consumed,
		Income:      income,
		Expenses:    expenses,
		FoodSurplus: foodSurplus,
		NetGold:     income - expenses,
	}
}

// tileExploits reports whether any building on the tile produces the given
// resource, i.e. the natural deposit is already improved.
func tileExploits(tile *world.Tile, res world.Resource) bool {
	for _, b := range tile.Buildings {
		if _, ok := rules.BuildingSpecFor(b.Kind).Produces[res]; ok {
			return true
		}
	}
	return false
}
