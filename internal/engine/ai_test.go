package engine

import (
	"strings"
	"testing"

	"github.com/talgya/hegemon/internal/diplomacy"
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

func TestCategoryAffinity(t *testing.T) {
	tests := []struct {
		name string
		p    rules.Personality
		c    rules.TechCategory
		want float64
	}{
		{"militarist primary", rules.PersonalityMilitarist, rules.TechCategoryMilitary, 3},
		{"militarist has no secondary", rules.PersonalityMilitarist, rules.TechCategoryIndustry, 1},
		{"merchant primary", rules.PersonalityMerchant, rules.TechCategoryEconomy, 3},
		{"merchant secondary is naval", rules.PersonalityMerchant, rules.TechCategoryNaval, 2},
		{"merchant default", rules.PersonalityMerchant, rules.TechCategoryCulture, 1},
		{"expansionist military", rules.PersonalityExpansionist, rules.TechCategoryMilitary, 2},
		{"expansionist industry", rules.PersonalityExpansionist, rules.TechCategoryIndustry, 2},
		{"balanced default", rules.PersonalityBalanced, rules.TechCategoryEconomy, 1},
	}
	for _, tt := range tests {
		if got := categoryAffinity(tt.p, tt.c); got != tt.want {
			t.Errorf("%s: affinity = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConstructionAdvisorCoversEveryTile(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	n := s.Nations[0]
	a := s.Map.Get(world.Coord{Q: 2, R: 2})
	b := s.Map.Get(world.Coord{Q: 6, R: 6})
	a.Owner = n.ID
	b.Owner = n.ID
	n.Economy.Gold = 1000
	n.Economy.Stocks[world.ResourceTimber] = 20

	lines := constructionAdvisor{}.Advise(s, n)

	if len(lines) != 2 {
		t.Fatalf("started %d buildings across two eligible tiles, want 2: %v", len(lines), lines)
	}
	if len(a.Buildings) != 1 || len(b.Buildings) != 1 {
		t.Errorf("buildings per tile = %d and %d, want 1 each", len(a.Buildings), len(b.Buildings))
	}
}

func TestRecruitmentCountsLandArmyOnly(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	n := s.Nations[0]
	tile := s.Map.Get(world.Coord{Q: 3, R: 3})
	tile.Owner = n.ID
	tile.Buildings = []world.Building{{Kind: world.BuildingBarracks}}
	n.Economy.Gold = 500
	n.Economy.Stocks[world.ResourceIron] = 5

	// A fleet at anchor must not satisfy the land-army target.
	for i := 0; i < 3; i++ {
		s.spawnUnit(rules.UnitFrigate, n.ID, world.Coord{Q: 0, R: i})
	}

	lines := recruitmentAdvisor{}.Advise(s, n)
	if len(lines) != 1 {
		t.Fatalf("recruited %d units, want 1: %v", len(lines), lines)
	}

	land := 0
	for _, u := range s.NationUnits(n.ID) {
		if u.Category() == rules.CategoryLand {
			land++
		}
	}
	if land != 1 {
		t.Errorf("land units = %d after recruiting, want 1", land)
	}
}

func TestOrderUnitWeighsDefendingStack(t *testing.T) {
	t.Run("strong stack deters the attack", func(t *testing.T) {
		s := flatState(t, 10, 10, 2)
		n := s.Nations[0]
		n.Template.Traits.Aggression = 0.4

		home := world.Coord{Q: 3, R: 3}
		hostile := world.Coord{Q: 4, R: 3}
		s.Map.Get(home).Owner = n.ID
		s.Map.Get(hostile).Owner = 2

		unit := s.spawnUnit(rules.UnitInfantry, n.ID, home)
		d1 := s.spawnUnit(rules.UnitInfantry, 2, hostile)
		d2 := s.spawnUnit(rules.UnitInfantry, 2, hostile)
		if res := s.DeclareWarOn(2); !res.OK {
			t.Fatalf("DeclareWarOn failed: %s", res.Message)
		}

		s.orderUnit(n, unit)

		if d1.HP != d1.MaxHP || d2.HP != d2.MaxHP {
			t.Error("unit attacked into a stack twice its strength")
		}
	})

	t.Run("lone weak defender gets attacked", func(t *testing.T) {
		s := flatState(t, 10, 10, 2)
		n := s.Nations[0]
		n.Template.Traits.Aggression = 0.4

		home := world.Coord{Q: 3, R: 3}
		hostile := world.Coord{Q: 4, R: 3}
		s.Map.Get(home).Owner = n.ID
		s.Map.Get(hostile).Owner = 2

		unit := s.spawnUnit(rules.UnitInfantry, n.ID, home)
		defender := s.spawnUnit(rules.UnitMilitia, 2, hostile)
		if res := s.DeclareWarOn(2); !res.OK {
			t.Fatalf("DeclareWarOn failed: %s", res.Message)
		}

		line := s.orderUnit(n, unit)

		if !strings.Contains(line, "attacks") {
			t.Fatalf("order line = %q, want an attack", line)
		}
		if s.UnitByID(defender.ID) != nil && defender.HP == defender.MaxHP {
			t.Error("defender untouched after the attack")
		}
	})
}

func TestAIDiplomacyLeavesPlayerAlone(t *testing.T) {
	s := flatState(t, 10, 10, 3)
	player := s.Nations[0]
	ai := s.Nations[1]
	third := s.Nations[2]

	// Rich and fully aggressive: war willingness is far past the roll
	// threshold against everyone.
	ai.Template.Traits.Aggression = 1.0
	ai.Economy.Gold = 10000

	for i := 0; i < 200; i++ {
		diplomacyAdvisor{}.Advise(s, ai)
	}

	if ai.Diplomacy[player.ID].Status == diplomacy.StatusWar {
		t.Error("AI declared war on the player")
	}
	if len(ai.Diplomacy[player.ID].Treaties) != 0 {
		t.Error("AI signed treaties with the player")
	}
	if len(player.Economy.TradeDeals) != 0 {
		t.Error("AI registered trade deals with the player")
	}
	if !s.atWar(ai.ID, third.ID) {
		t.Error("AI never declared war on a much weaker AI rival")
	}
}

func TestAutopilotHealsOnce(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	s.Settings.Autopilot = true
	s.Map.Get(world.Coord{Q: 1, R: 1}).Owner = 1
	s.Map.Get(world.Coord{Q: 8, R: 8}).Owner = 2
	s.Nations[0].Economy.Stocks[world.ResourceGrain] = 50
	s.Nations[1].Economy.Stocks[world.ResourceGrain] = 50

	u := s.spawnUnit(rules.UnitInfantry, 1, world.Coord{Q: 1, R: 1})
	u.HP = 20

	s.AdvanceTurn()

	// One 10% tick of 50 max HP, not two.
	if u.HP != 25 {
		t.Errorf("HP = %d after one autopilot turn, want 25", u.HP)
	}
}
