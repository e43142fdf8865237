package world

import "testing"

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(30, 24, 42)
	b := Generate(30, 24, 42)

	if len(a.Tiles) != len(b.Tiles) {
		t.Fatalf("tile counts differ: %d vs %d", len(a.Tiles), len(b.Tiles))
	}

	for coord, ta := range a.Tiles {
		tb := b.Get(coord)
		if tb == nil {
			t.Fatalf("tile %v missing from second map", coord)
		}
		if ta.Terrain != tb.Terrain {
			t.Errorf("tile %v: terrain %v vs %v", coord, ta.Terrain, tb.Terrain)
		}
		if ta.Resource != tb.Resource {
			t.Errorf("tile %v: resource %v vs %v", coord, ta.Resource, tb.Resource)
		}
		if ta.Elevation != tb.Elevation {
			t.Errorf("tile %v: elevation %v vs %v", coord, ta.Elevation, tb.Elevation)
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := Generate(30, 24, 1)
	b := Generate(30, 24, 2)

	same := 0
	for coord, ta := range a.Tiles {
		if tb := b.Get(coord); tb != nil && ta.Terrain == tb.Terrain {
			same++
		}
	}
	if same == len(a.Tiles) {
		t.Error("different seeds produced identical terrain")
	}
}

func TestGenerateCoversGrid(t *testing.T) {
	m := Generate(20, 16, 7)

	if got, want := len(m.Tiles), 20*16; got != want {
		t.Fatalf("generated %d tiles, want %d", got, want)
	}
	for r := 0; r < m.Height; r++ {
		for q := 0; q < m.Width; q++ {
			if m.Get(Coord{Q: q, R: r}) == nil {
				t.Fatalf("missing tile at (%d, %d)", q, r)
			}
		}
	}
	if m.Get(Coord{Q: -1, R: 0}) != nil || m.Get(Coord{Q: 20, R: 0}) != nil {
		t.Error("out-of-bounds lookup returned a tile")
	}
}

func TestGenerateProducesLand(t *testing.T) {
	m := Generate(50, 40, 42)
	counts := TerrainCounts(m)

	land := 0
	for terrain, count := range counts {
		if !terrain.Water() {
			land += count
		}
	}
	if land == 0 {
		t.Fatal("map has no land at all")
	}
	// The edge falloff should leave water at the map rim.
	if counts[TerrainOcean]+counts[TerrainDeepOcean] == 0 {
		t.Error("map has no ocean")
	}
}

func TestGenerateResourcesMatchTerrain(t *testing.T) {
	m := Generate(50, 40, 99)

	for coord, tile := range m.Tiles {
		if tile.Resource == ResourceNone {
			continue
		}
		// River conversion keeps whatever deposit the tile already had.
		if tile.Terrain == TerrainRiver {
			continue
		}
		allowed := tile.Terrain.Info().Resources
		found := false
		for _, res := range allowed {
			if res == tile.Resource {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("tile %v (%s) carries %s, not offered by that terrain",
				coord, tile.Terrain.Info().Name, tile.Resource)
		}
	}
}

func TestFindStartingPositions(t *testing.T) {
	m := Generate(50, 40, 42)

	const n = 6
	starts := FindStartingPositions(m, n)
	if starts == nil {
		t.Fatal("no starting positions found on a 50x40 map")
	}
	if len(starts) != n {
		t.Fatalf("got %d starting positions, want %d", len(starts), n)
	}

	seen := make(map[Coord]bool)
	for _, c := range starts {
		tile := m.Get(c)
		if tile == nil {
			t.Fatalf("start %v is off the map", c)
		}
		if !tile.Terrain.Info().Buildable {
			t.Errorf("start %v is on non-buildable %s", c, tile.Terrain.Info().Name)
		}
		if tile.Terrain == TerrainSwamp || tile.Terrain == TerrainDesert {
			t.Errorf("start %v is on hostile terrain %s", c, tile.Terrain.Info().Name)
		}
		if seen[c] {
			t.Errorf("duplicate start %v", c)
		}
		seen[c] = true
	}
}

func TestFindStartingPositionsDeterministic(t *testing.T) {
	m1 := Generate(50, 40, 13)
	m2 := Generate(50, 40, 13)

	a := FindStartingPositions(m1, 4)
	b := FindStartingPositions(m2, 4)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("position %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
