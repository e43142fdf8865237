// Package econ provides per-nation resource, gold, and population
// bookkeeping. All functions operate on a nation's economy plus the tiles
// it owns; nothing here reaches into wider game state.
package econ

import (
	"golang.org/x/exp/constraints"

	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// TradeDeal is a standing arrangement granting flat gold and optional
// resource sales each turn. Deals are cleared when war breaks out with the
// partner.
type TradeDeal struct {
	Partner     world.NationID `json:"partner"`
	GoldPerTurn int            `json:"gold_per_turn"`
	Sells       world.Resource `json:"sells"`  // ResourceNone for gold-only deals
	Amount      int            `json:"amount"` // units sold per turn
	Active      bool           `json:"active"`
}

// Economy is the resource/gold/population ledger of one nation.
type Economy struct {
	Stocks   map[world.Resource]int `json:"stocks"`
	Gold     int                    `json:"gold"`
	Income   int                    `json:"income"`   // last computed
	Expenses int                    `json:"expenses"` // last computed

	TradeDeals []TradeDeal `json:"trade_deals"`

	WorkerCount int `json:"worker_count"`
	MaxWorkers  int `json:"max_workers"`

	TaxRate   float64 `json:"tax_rate"`
	Stability int     `json:"stability"` // 0–100

	Population       int     `json:"population"`
	PopulationGrowth float64 `json:"population_growth"`
}

// NewEconomy returns the starting ledger every nation begins with.
func NewEconomy() *Economy {
	return &Economy{
		Stocks:           make(map[world.Resource]int),
		Gold:             100,
		WorkerCount:      5,
		MaxWorkers:       10,
		TaxRate:          0.2,
		Stability:        70,
		Population:       1000,
		PopulationGrowth: 0.02,
	}
}

// CanAfford reports whether the economy fully covers the cost. Gold is a
// distinguished key; every resource entry must be satisfiable.
func CanAfford(e *Economy, cost rules.Cost) bool {
	if e.Gold < cost.Gold {
		return false
	}
	for res, amount := range cost.Resources {
		if e.Stocks[res] < amount {
			return false
		}
	}
	return true
}

// PayCost deducts the cost from the economy. Callers must check CanAfford
// first; a cost is never partially paid.
func PayCost(e *Economy, cost rules.Cost) {
	e.Gold -= cost.Gold
	for res, amount := range cost.Resources {
		e.Stocks[res] -= amount
	}
}

// TradeValue prices a resource sale, scaled by the buyer's disposition
// toward the seller (relation value in [-100, 100]).
func TradeValue(res world.Resource, amount int, buyerRelation float64) int {
	mod := 1 + buyerRelation/200
	return int(float64(res.BaseValue()*amount) * mod)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
