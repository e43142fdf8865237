// Starting position selection: scores eligible land tiles and greedily
// picks the best ones subject to a minimum pairwise distance.
package world

import "sort"

// FindStartingPositions returns n capital positions, best first, or nil
// when the map cannot fit that many capitals at the required spacing.
func FindStartingPositions(m *Map, n int) []Coord {
	type scored struct {
		tile  *Tile
		score int
	}
	var candidates []scored

	// Row-major iteration keeps tie-breaking deterministic.
	for r := 0; r < m.Height; r++ {
		for q := 0; q < m.Width; q++ {
			t := m.Get(Coord{Q: q, R: r})
			if t == nil || !t.Terrain.Info().Buildable {
				continue
			}
			if t.Terrain == TerrainSwamp || t.Terrain == TerrainDesert {
				continue
			}
			candidates = append(candidates, scored{tile: t, score: startScore(m, t)})
		}
	}

	if len(candidates) < n {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	minDistance := min(m.Width, m.Height) * 10 / (n * 6) // floor(min(w,h) / (n*0.6))

	var positions []Coord
	for _, c := range candidates {
		if len(positions) >= n {
			break
		}
		tooClose := false
		for _, p := range positions {
			if Distance(p, c.tile.Coord) < minDistance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			positions = append(positions, c.tile.Coord)
		}
	}

	if len(positions) < n {
		return nil
	}
	return positions
}

// startScore evaluates capital desirability: resources, favorable terrain,
// river placement, coastal access, and neighbor terrain diversity.
func startScore(m *Map, t *Tile) int {
	score := 0
	if t.Resource != ResourceNone {
		score += 3
	}
	if t.Terrain == TerrainGrassland || t.Terrain == TerrainPlains {
		score += 2
	}
	if t.Terrain == TerrainRiver {
		score += 3
	}

	terrains := make(map[Terrain]bool)
	for _, nc := range t.Coord.Neighbors() {
		nt := m.Get(nc)
		if nt == nil {
			continue
		}
		terrains[nt.Terrain] = true
		if nt.Resource != ResourceNone {
			score++
		}
		if nt.Terrain == TerrainCoast {
			score += 2
		}
	}
	score += len(terrains)

	return score
}
