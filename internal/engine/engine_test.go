package engine

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/talgya/hegemon/internal/diplomacy"
	"github.com/talgya/hegemon/internal/econ"
	"github.com/talgya/hegemon/internal/military"
	"github.com/talgya/hegemon/internal/rules"
	"github.com/talgya/hegemon/internal/world"
)

// newTestGame creates a real game, scanning a few seeds in case the first
// one generates a map without room for everyone.
func newTestGame(t *testing.T, numAI int, seed int64) *State {
	t.Helper()
	for offset := int64(0); offset < 10; offset++ {
		s, err := NewGame(Settings{
			MapWidth:  50,
			MapHeight: 40,
			NumAI:     numAI,
			Seed:      seed + offset,
		})
		if err == nil {
			return s
		}
	}
	t.Fatalf("no playable map found near seed %d", seed)
	return nil
}

// flatState builds a hand-rolled state on an all-grassland map, for tests
// that need exact control over ownership and units.
func flatState(t *testing.T, width, height int, nations int) *State {
	t.Helper()

	m := world.NewMap(width, height, 1)
	for r := 0; r < height; r++ {
		for q := 0; q < width; q++ {
			c := world.Coord{Q: q, R: r}
			m.Tiles[c] = &world.Tile{
				Coord:    c,
				Terrain:  world.TerrainGrassland,
				Explored: make(map[world.NationID]bool),
			}
		}
	}

	s := &State{
		ID:   uuid.New(),
		Map:  m,
		Turn: 1,
		Victory: VictoryConditions{
			Domination:     0.6,
			EconomicTarget: 5000,
		},
		units:     make(map[world.Coord][]*military.Unit),
		unitIndex: make(map[military.UnitID]*military.Unit),
		rng:       rand.New(rand.NewSource(1)),
	}

	ids := make([]world.NationID, nations)
	for i := range ids {
		ids[i] = world.NationID(i + 1)
	}
	for i := 0; i < nations; i++ {
		others := make([]world.NationID, 0, nations-1)
		for _, other := range ids {
			if other != ids[i] {
				others = append(others, other)
			}
		}
		s.Nations = append(s.Nations, &Nation{
			ID:        ids[i],
			Name:      rules.NationTemplates[i].Name,
			Template:  rules.NationTemplates[i],
			IsPlayer:  i == 0,
			Economy:   econ.NewEconomy(),
			Diplomacy: diplomacy.NewLedger(others),
			Alive:     true,
		})
	}
	return s
}

func TestNewGame(t *testing.T) {
	s := newTestGame(t, 3, 42)

	if s.Turn != 1 {
		t.Errorf("turn = %d, want 1", s.Turn)
	}
	if len(s.Nations) != 4 {
		t.Fatalf("%d nations, want 4", len(s.Nations))
	}
	if s.Player() == nil || !s.Nations[0].IsPlayer {
		t.Fatal("player nation missing or misplaced")
	}

	for _, n := range s.Nations {
		if !n.Alive {
			t.Errorf("%s starts dead", n.Name)
		}
		capital := s.Map.Get(n.Capital)
		if capital == nil || capital.Owner != n.ID {
			t.Errorf("%s does not own its capital", n.Name)
		}
		if !capital.HasCompleteBuilding(world.BuildingBarracks) {
			t.Errorf("%s capital lacks a working barracks", n.Name)
		}
		if got := len(s.NationUnits(n.ID)); got != 3 {
			t.Errorf("%s starts with %d units, want 3", n.Name, got)
		}
		if got := len(n.Diplomacy); got != 3 {
			t.Errorf("%s has %d relations, want 3", n.Name, got)
		}
	}
}

func TestNewGameDeterministic(t *testing.T) {
	s1 := newTestGame(t, 3, 42)
	s2, err := NewGame(s1.Settings)
	if err != nil {
		t.Fatalf("replaying settings failed: %v", err)
	}

	for i, n1 := range s1.Nations {
		n2 := s2.Nations[i]
		if n1.Name != n2.Name {
			t.Errorf("nation %d: %s vs %s", i, n1.Name, n2.Name)
		}
		if n1.Capital != n2.Capital {
			t.Errorf("%s capital %v vs %v", n1.Name, n1.Capital, n2.Capital)
		}
	}
}

func TestAdvanceTurn(t *testing.T) {
	s := newTestGame(t, 3, 42)

	for i := 0; i < 5; i++ {
		before := s.Turn
		summary := s.AdvanceTurn()
		if summary.Turn != before {
			t.Errorf("summary turn = %d, want %d", summary.Turn, before)
		}
		if s.Turn != before+1 {
			t.Fatalf("turn = %d after advance, want %d", s.Turn, before+1)
		}
		for _, n := range s.Nations {
			if n.Alive {
				if _, ok := summary.Reports[n.ID]; !ok {
					t.Errorf("turn %d: no economy report for %s", before, n.Name)
				}
			}
		}
	}
}

func TestConstructionCountdown(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	tile := s.Map.Get(world.Coord{Q: 5, R: 5})
	tile.Owner = 1
	tile.Buildings = []world.Building{{Kind: world.BuildingFarm, ConstructionLeft: 2}}
	s.Nations[0].Economy.Stocks[world.ResourceGrain] = 50

	s.AdvanceTurn()
	if got := tile.Buildings[0].ConstructionLeft; got != 1 {
		t.Fatalf("construction left = %d after one turn, want 1", got)
	}

	s.AdvanceTurn()
	if !tile.Buildings[0].Complete() {
		t.Fatal("farm not complete after two turns")
	}

	s.AdvanceTurn()
	if got := tile.Buildings[0].ConstructionLeft; got != 0 {
		t.Fatalf("construction left = %d, went negative or reset", got)
	}
}

func TestResearchProgression(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	s.Map.Get(world.Coord{Q: 1, R: 1}).Owner = 1
	s.Map.Get(world.Coord{Q: 8, R: 8}).Owner = 2
	player := s.Nations[0]
	player.Economy.Stocks[world.ResourceGrain] = 100
	s.Nations[1].Economy.Stocks[world.ResourceGrain] = 100

	if res := s.SetResearch(rules.TechAgriculture); !res.OK {
		t.Fatalf("SetResearch failed: %s", res.Message)
	}

	// Agriculture costs 20 at 3 points per turn with nothing researched.
	for i := 0; i < 7; i++ {
		if len(player.Researched) > 0 {
			break
		}
		s.AdvanceTurn()
	}

	if !rules.HasTech(player.Researched, rules.TechAgriculture) {
		t.Fatalf("agriculture not finished after 7 turns, progress %v", player.ResearchProgress)
	}
	if player.CurrentResearch != rules.TechNone {
		t.Error("research slot not cleared after completion")
	}
}

func TestEliminationOnZeroTiles(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	s.Map.Get(world.Coord{Q: 1, R: 1}).Owner = 1
	// Nation 2 owns nothing.

	s.AdvanceTurn()

	if !s.Nations[0].Alive {
		t.Error("landed nation eliminated")
	}
	if s.Nations[1].Alive {
		t.Error("landless nation still alive")
	}
}

func TestDominationVictory(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	// 100 grassland tiles, all buildable. 60 tiles meets the 0.6 share.
	count := 0
	for r := 0; r < 10 && count < 60; r++ {
		for q := 0; q < 10 && count < 60; q++ {
			s.Map.Get(world.Coord{Q: q, R: r}).Owner = 1
			count++
		}
	}
	s.Map.Get(world.Coord{Q: 9, R: 9}).Owner = 2 // keep nation 2 alive

	s.AdvanceTurn()

	if !s.GameOver {
		t.Fatal("game not over at 60% domination")
	}
	if s.Winner != 1 || s.VictoryType != VictoryDomination {
		t.Errorf("winner %d via %s, want nation 1 via domination", s.Winner, s.VictoryType)
	}
}

func TestEconomicVictory(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	s.Map.Get(world.Coord{Q: 1, R: 1}).Owner = 1
	s.Map.Get(world.Coord{Q: 8, R: 8}).Owner = 2
	s.Nations[1].Economy.Gold = 6000
	s.Nations[0].Economy.Stocks[world.ResourceGrain] = 10
	s.Nations[1].Economy.Stocks[world.ResourceGrain] = 10

	s.AdvanceTurn()

	if !s.GameOver {
		t.Fatal("game not over at 6000 gold")
	}
	if s.Winner != 2 || s.VictoryType != VictoryEconomic {
		t.Errorf("winner %d via %s, want nation 2 via economic", s.Winner, s.VictoryType)
	}
}

func TestVictoryTieBreakRosterOrder(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	s.Map.Get(world.Coord{Q: 1, R: 1}).Owner = 1
	s.Map.Get(world.Coord{Q: 8, R: 8}).Owner = 2
	s.Nations[0].Economy.Gold = 9000
	s.Nations[1].Economy.Gold = 9000

	s.checkVictory()

	if s.Winner != 1 {
		t.Errorf("winner = %d, want nation 1 (earlier in roster)", s.Winner)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	s.GameOver = true

	before := s.Turn
	s.AdvanceTurn()
	if s.Turn != before {
		t.Error("turn advanced after game over")
	}

	if res := s.Build(world.Coord{Q: 1, R: 1}, world.BuildingFarm); res.OK {
		t.Error("Build succeeded after game over")
	}
}

func TestBuildCommand(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	player := s.Nations[0]
	tile := s.Map.Get(world.Coord{Q: 3, R: 3})
	tile.Owner = player.ID
	player.Economy.Stocks[world.ResourceTimber] = 5

	t.Run("happy path", func(t *testing.T) {
		res := s.Build(tile.Coord, world.BuildingFarm)
		if !res.OK {
			t.Fatalf("Build failed: %s", res.Message)
		}
		if !tile.HasBuilding(world.BuildingFarm) {
			t.Fatal("farm not placed")
		}
		if tile.Buildings[0].Complete() {
			t.Error("farm complete instantly, want construction delay")
		}
		spec := rules.BuildingSpecFor(world.BuildingFarm)
		if player.Economy.Gold != 100-spec.Cost.Gold {
			t.Errorf("gold = %d, cost not deducted", player.Economy.Gold)
		}
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		if res := s.Build(tile.Coord, world.BuildingFarm); res.OK {
			t.Error("second farm on the same tile accepted")
		}
	})

	t.Run("unowned tile rejected", func(t *testing.T) {
		if res := s.Build(world.Coord{Q: 7, R: 7}, world.BuildingFarm); res.OK {
			t.Error("built on unowned tile")
		}
	})

	t.Run("wrong terrain rejected", func(t *testing.T) {
		port := s.Map.Get(world.Coord{Q: 4, R: 4})
		port.Owner = player.ID
		if res := s.Build(port.Coord, world.BuildingPort); res.OK {
			t.Error("port accepted on grassland")
		}
	})

	t.Run("tech gate", func(t *testing.T) {
		uni := s.Map.Get(world.Coord{Q: 5, R: 5})
		uni.Owner = player.ID
		player.Economy.Gold = 1000
		if res := s.Build(uni.Coord, world.BuildingUniversity); res.OK {
			t.Error("university accepted without Education")
		}
	})
}

func TestRecruitCommand(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	player := s.Nations[0]
	tile := s.Map.Get(world.Coord{Q: 3, R: 3})
	tile.Owner = player.ID

	t.Run("needs a barracks", func(t *testing.T) {
		if res := s.Recruit(tile.Coord, rules.UnitMilitia); res.OK {
			t.Error("recruited without a barracks")
		}
	})

	tile.Buildings = []world.Building{{Kind: world.BuildingBarracks}}

	t.Run("happy path", func(t *testing.T) {
		res := s.Recruit(tile.Coord, rules.UnitMilitia)
		if !res.OK {
			t.Fatalf("Recruit failed: %s", res.Message)
		}
		if res.Unit == nil || res.Unit.Pos != tile.Coord {
			t.Fatal("unit missing or misplaced")
		}
		if len(s.UnitsAt(tile.Coord)) != 1 {
			t.Error("unit not listed on the tile")
		}
	})

	t.Run("cannot afford", func(t *testing.T) {
		player.Economy.Gold = 0
		if res := s.Recruit(tile.Coord, rules.UnitMilitia); res.OK {
			t.Error("recruited with an empty treasury")
		}
	})

	t.Run("tech gate", func(t *testing.T) {
		player.Economy.Gold = 10000
		player.Economy.Stocks[world.ResourceIron] = 10
		player.Economy.Stocks[world.ResourceCoal] = 10
		if res := s.Recruit(tile.Coord, rules.UnitArtillery); res.OK {
			t.Error("artillery recruited without Gunpowder")
		}
	})
}

func TestMoveUnitCommand(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	player := s.Nations[0]
	home := s.Map.Get(world.Coord{Q: 3, R: 3})
	home.Owner = player.ID
	u := s.spawnUnit(rules.UnitInfantry, player.ID, home.Coord)

	t.Run("unknown unit", func(t *testing.T) {
		if res := s.MoveUnit(999, world.Coord{Q: 4, R: 3}); res.OK {
			t.Error("moved a unit that does not exist")
		}
	})

	t.Run("too far", func(t *testing.T) {
		if res := s.MoveUnit(u.ID, world.Coord{Q: 6, R: 3}); res.OK {
			t.Error("moved three hexes in one order")
		}
	})

	t.Run("claims unowned land", func(t *testing.T) {
		dest := world.Coord{Q: 4, R: 3}
		res := s.MoveUnit(u.ID, dest)
		if !res.OK {
			t.Fatalf("MoveUnit failed: %s", res.Message)
		}
		if u.Pos != dest {
			t.Errorf("unit at %v, want %v", u.Pos, dest)
		}
		if s.Map.Get(dest).Owner != player.ID {
			t.Error("unowned buildable tile not claimed")
		}
		if len(s.UnitsAt(home.Coord)) != 0 || len(s.UnitsAt(dest)) != 1 {
			t.Error("tile unit lists out of sync after move")
		}
	})

	t.Run("foreign units block without war", func(t *testing.T) {
		blocker := world.Coord{Q: 4, R: 4}
		s.spawnUnit(rules.UnitMilitia, 2, blocker)
		res := s.MoveUnit(u.ID, blocker)
		if res.OK {
			t.Error("entered a foreign-held tile at peace")
		}
		if res.Message != "Cannot enter tile with foreign units" {
			t.Errorf("message = %q", res.Message)
		}
	})
}

func TestCombatThroughMoveCommand(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	player := s.Nations[0]
	enemy := s.Nations[1]

	home := world.Coord{Q: 3, R: 3}
	hostile := world.Coord{Q: 4, R: 3}
	s.Map.Get(home).Owner = player.ID
	s.Map.Get(hostile).Owner = enemy.ID

	attacker := s.spawnUnit(rules.UnitArtillery, player.ID, home)
	defender := s.spawnUnit(rules.UnitMilitia, enemy.ID, hostile)
	defender.HP = 1

	if res := s.DeclareWarOn(enemy.ID); !res.OK {
		t.Fatalf("DeclareWarOn failed: %s", res.Message)
	}

	res := s.MoveUnit(attacker.ID, hostile)
	if !res.OK {
		t.Fatalf("attack move failed: %s", res.Message)
	}
	if res.Combat == nil {
		t.Fatal("no combat result on an attack move")
	}
	if res.Combat.DefenderSurvived {
		t.Fatal("1 HP militia survived artillery")
	}
	if s.UnitByID(defender.ID) != nil {
		t.Error("dead defender still indexed")
	}
	if attacker.Pos != hostile {
		t.Error("attacker did not advance into the cleared tile")
	}
	if s.Map.Get(hostile).Owner != player.ID {
		t.Error("cleared tile not captured")
	}
	if attacker.MovementLeft != 0 {
		t.Error("capture should end the attacker's movement")
	}
}

func TestDeclareWarCommand(t *testing.T) {
	s := flatState(t, 10, 10, 3)
	player := s.Nations[0]
	target := s.Nations[1]
	third := s.Nations[2]

	// The third party likes the target.
	third.Diplomacy.Modify(target.ID, 50, "old friends")
	player.Economy.TradeDeals = []econ.TradeDeal{{Partner: target.ID, GoldPerTurn: 10, Active: true}}
	target.Economy.TradeDeals = []econ.TradeDeal{{Partner: player.ID, GoldPerTurn: 10, Active: true}}

	res := s.DeclareWarOn(target.ID)
	if !res.OK {
		t.Fatalf("DeclareWarOn failed: %s", res.Message)
	}

	if player.Diplomacy[target.ID].Status != diplomacy.StatusWar {
		t.Error("player not at war with target")
	}
	if target.Diplomacy[player.ID].Status != diplomacy.StatusWar {
		t.Error("target not at war with player")
	}
	if len(player.Economy.TradeDeals) != 0 || len(target.Economy.TradeDeals) != 0 {
		t.Error("trade deals survived the war declaration")
	}
	if got := third.Diplomacy[player.ID].Value; got != -20 {
		t.Errorf("third party relation = %v, want -20", got)
	}

	t.Run("repeat rejected", func(t *testing.T) {
		if res := s.DeclareWarOn(target.ID); res.OK {
			t.Error("declared war twice")
		}
	})
	t.Run("self rejected", func(t *testing.T) {
		if res := s.DeclareWarOn(player.ID); res.OK {
			t.Error("declared war on self")
		}
	})
}

func TestProposePeaceCommand(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	player := s.Nations[0]
	other := s.Nations[1]
	s.Map.Get(world.Coord{Q: 1, R: 1}).Owner = player.ID
	s.Map.Get(world.Coord{Q: 8, R: 8}).Owner = other.ID

	if res := s.ProposePeaceWith(other.ID); res.OK {
		t.Error("made peace while not at war")
	}

	s.DeclareWarOn(other.ID)

	res := s.ProposePeaceWith(other.ID)
	if !res.OK {
		t.Fatalf("evenly matched enemy refused peace: %s", res.Message)
	}
	if player.Diplomacy[other.ID].Status == diplomacy.StatusWar {
		t.Error("still at war after peace")
	}
	if !player.Diplomacy[other.ID].HasTreaty(diplomacy.TreatyPeace) {
		t.Error("peace treaty not recorded")
	}
	if war := player.Diplomacy[other.ID].WarHistory[0]; war.EndTurn != s.Turn {
		t.Errorf("war end turn = %d, want %d", war.EndTurn, s.Turn)
	}
}

func TestProposeTreatyCommand(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	player := s.Nations[0]
	other := s.Nations[1]

	res := s.ProposeTreatyWith(other.ID, diplomacy.TreatyTradeAgreement)
	if !res.OK {
		t.Fatalf("trade agreement rejected: %s", res.Message)
	}
	if len(player.Economy.TradeDeals) != 1 || len(other.Economy.TradeDeals) != 1 {
		t.Error("reciprocal trade deals not registered")
	}

	if res := s.ProposeTreatyWith(other.ID, diplomacy.TreatyAlliance); res.OK {
		t.Error("alliance accepted at neutral relations")
	}
}

func TestSetResearchCommand(t *testing.T) {
	s := flatState(t, 10, 10, 2)

	if res := s.SetResearch(rules.TechRailroads); res.OK {
		t.Error("tier three tech accepted with nothing researched")
	}
	if res := s.SetResearch(rules.TechMining); !res.OK {
		t.Errorf("tier one tech rejected: %s", res.Message)
	}
	if s.Nations[0].CurrentResearch != rules.TechMining {
		t.Error("research slot not set")
	}
}

func TestSetTaxRateCommand(t *testing.T) {
	s := flatState(t, 10, 10, 2)

	if res := s.SetTaxRate(0.5); res.OK {
		t.Error("tax rate above cap accepted")
	}
	if res := s.SetTaxRate(0.3); !res.OK {
		t.Errorf("valid tax rate rejected: %s", res.Message)
	}
	if s.Nations[0].Economy.TaxRate != 0.3 {
		t.Error("tax rate not applied")
	}
}

func TestDrainNotifications(t *testing.T) {
	s := flatState(t, 10, 10, 2)
	s.notifyPlayer(s.Nations[0], "test", "hello")
	s.notifyPlayer(s.Nations[1], "test", "should not appear")

	notes := s.DrainNotifications()
	if len(notes) != 1 || notes[0].Message != "hello" {
		t.Fatalf("notifications = %+v, want just the player's", notes)
	}
	if len(s.DrainNotifications()) != 0 {
		t.Error("drain did not clear the queue")
	}
}
