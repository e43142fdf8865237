package rules

// TechID identifies a technology. TechNone marks "no research in
// progress".
type TechID uint8

const (
	TechNone TechID = iota

	// Tier 1
	TechAgriculture
	TechBronzeWorking
	TechWriting
	TechSailing
	TechMining

	// Tier 2
	TechCurrency
	TechIronWorking
	TechMathematics
	TechShipbuilding
	TechEngineering

	// Tier 3
	TechBanking
	TechGunpowder
	TechEducation
	TechNavigation
	TechRailroads

	techCount
)

// TechCategory groups technologies for AI personality affinity.
type TechCategory uint8

const (
	TechCategoryMilitary TechCategory = iota
	TechCategoryEconomy
	TechCategoryIndustry
	TechCategoryNaval
	TechCategoryCulture
)

// TechSpec is the static data for one technology.
type TechSpec struct {
	Name     string
	Category TechCategory
	Tier     int
	Cost     float64 // Research points required
	Requires []TechID
}

var techTable = [techCount]TechSpec{
	TechAgriculture:   {Name: "Agriculture", Category: TechCategoryEconomy, Tier: 1, Cost: 20},
	TechBronzeWorking: {Name: "Bronze Working", Category: TechCategoryMilitary, Tier: 1, Cost: 25},
	TechWriting:       {Name: "Writing", Category: TechCategoryCulture, Tier: 1, Cost: 20},
	TechSailing:       {Name: "Sailing", Category: TechCategoryNaval, Tier: 1, Cost: 25},
	TechMining:        {Name: "Mining", Category: TechCategoryIndustry, Tier: 1, Cost: 25},

	TechCurrency:     {Name: "Currency", Category: TechCategoryEconomy, Tier: 2, Cost: 40, Requires: []TechID{TechAgriculture, TechWriting}},
	TechIronWorking:  {Name: "Iron Working", Category: TechCategoryMilitary, Tier: 2, Cost: 45, Requires: []TechID{TechBronzeWorking}},
	TechMathematics:  {Name: "Mathematics", Category: TechCategoryCulture, Tier: 2, Cost: 40, Requires: []TechID{TechWriting}},
	TechShipbuilding: {Name: "Shipbuilding", Category: TechCategoryNaval, Tier: 2, Cost: 45, Requires: []TechID{TechSailing}},
	TechEngineering:  {Name: "Engineering", Category: TechCategoryIndustry, Tier: 2, Cost: 50, Requires: []TechID{TechMining}},

	TechBanking:    {Name: "Banking", Category: TechCategoryEconomy, Tier: 3, Cost: 70, Requires: []TechID{TechCurrency}},
	TechGunpowder:  {Name: "Gunpowder", Category: TechCategoryMilitary, Tier: 3, Cost: 80, Requires: []TechID{TechIronWorking}},
	TechEducation:  {Name: "Education", Category: TechCategoryCulture, Tier: 3, Cost: 70, Requires: []TechID{TechMathematics}},
	TechNavigation: {Name: "Navigation", Category: TechCategoryNaval, Tier: 3, Cost: 75, Requires: []TechID{TechShipbuilding, TechMathematics}},
	TechRailroads:  {Name: "Railroads", Category: TechCategoryIndustry, Tier: 3, Cost: 90, Requires: []TechID{TechEngineering}},
}

// TechSpecFor returns the static data for a technology. Panics on TechNone
// or an out-of-range id: catalogs are closed sets.
func TechSpecFor(id TechID) TechSpec {
	if id == TechNone || id >= techCount {
		panic("rules: unknown tech id")
	}
	return techTable[id]
}

// AvailableTechs lists techs not yet researched whose prerequisites are all
// met, in catalog order.
func AvailableTechs(researched []TechID) []TechID {
	done := make(map[TechID]bool, len(researched))
	for _, id := range researched {
		done[id] = true
	}

	var out []TechID
	for id := TechID(1); id < techCount; id++ {
		if done[id] {
			continue
		}
		ok := true
		for _, req := range techTable[id].Requires {
			if !done[req] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}

// HasTech reports whether the researched set contains the given tech.
func HasTech(researched []TechID, id TechID) bool {
	for _, r := range researched {
		if r == id {
			return true
		}
	}
	return false
}
