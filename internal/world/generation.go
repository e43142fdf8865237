// World generation using layered simplex noise. Produces elevation,
// moisture, and temperature fields, then derives terrain, natural
// resources, and rivers. Generation is a pure function of (width, height,
// seed): the same inputs always yield an identical tile set.
package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

const riverCount = 8

// Generate creates a complete world map with terrain, resources, and
// rivers.
func Generate(width, height int, seed int64) *Map {
	// Independent noise layers, offset-seeded so they decorrelate.
	elevNoise := opensimplex.New(seed)
	moistNoise := opensimplex.New(seed + 1000)
	tempNoise := opensimplex.New(seed + 2000)
	resNoise := opensimplex.New(seed + 3000)

	m := NewMap(width, height, seed)

	for r := 0; r < height; r++ {
		for q := 0; q < width; q++ {
			nq := float64(q) / float64(width)
			nr := float64(r) / float64(height)

			// Multi-octave elevation blended with an edge-distance falloff
			// (island silhouette) and a lower-frequency continental layer.
			elev := octaveNoise(elevNoise, nq*4, nr*4, 6, 0.5, 2.0)

			edgeQ := float64(min(q, width-q)) / (float64(width) / 2)
			edgeR := float64(min(r, height-r)) / (float64(height) / 2)
			edge := math.Min(edgeQ, edgeR)
			elev = elev*0.7 + edge*0.3

			continent := octaveNoise(elevNoise, nq*2, nr*2, 3, 0.6, 2.0)
			elev = elev*0.6 + continent*0.4

			moisture := (octaveNoise(moistNoise, nq*3, nr*3, 4, 0.5, 2.0) + 1) / 2

			// Warmer near the vertical center of the map.
			baseTemp := 1 - math.Abs(float64(r)/float64(height)-0.5)*2
			temp := baseTemp*0.7 + (octaveNoise(tempNoise, nq*2, nr*2, 3, 0.5, 2.0)+1)/2*0.3

			terrain := classifyTerrain(elev, moisture, temp)

			tile := &Tile{
				Coord:       Coord{Q: q, R: r},
				Terrain:     terrain,
				Elevation:   elev,
				Moisture:    moisture,
				Temperature: temp,
				Resource:    assignResource(terrain, octaveNoise(resNoise, nq*5, nr*5, 2, 0.5, 2.0), q, r),
				Explored:    make(map[NationID]bool),
				Fog:         true,
			}
			m.Tiles[tile.Coord] = tile
		}
	}

	addRivers(m, elevNoise)

	return m
}

// classifyTerrain is the terrain decision table over (elevation, moisture,
// temperature). The thresholds are balance constants, not noise tuning.
func classifyTerrain(elevation, moisture, temperature float64) Terrain {
	if elevation < -0.3 {
		return TerrainDeepOcean
	}
	if elevation < -0.1 {
		return TerrainOcean
	}
	if elevation < 0.0 {
		return TerrainCoast
	}

	if elevation > 0.6 {
		return TerrainMountains
	}
	if elevation > 0.4 {
		return TerrainHills
	}

	if temperature < 0.2 {
		return TerrainTundra
	}

	if temperature < 0.35 {
		if moisture > 0.5 {
			return TerrainForest
		}
		return TerrainPlains
	}

	if temperature > 0.75 {
		if moisture < 0.25 {
			return TerrainDesert
		}
		if moisture < 0.45 {
			return TerrainSavanna
		}
		if moisture > 0.7 {
			return TerrainJungle
		}
		return TerrainGrassland
	}

	// Temperate band.
	if moisture > 0.7 && elevation < 0.15 {
		return TerrainSwamp
	}
	if moisture > 0.6 {
		return TerrainForest
	}
	if moisture > 0.45 {
		return TerrainGrassland
	}
	return TerrainPlains
}

// assignResource gives roughly 30% of eligible tiles one resource from the
// terrain's allowed set. Selection uses a coordinate-seeded hash rather
// than the noise layer so it reproduces exactly per coordinate.
func assignResource(terrain Terrain, noiseVal float64, q, r int) Resource {
	allowed := terrain.Info().Resources
	if len(allowed) == 0 {
		return ResourceNone
	}

	if (noiseVal+1)/2 < 0.7 {
		return ResourceNone
	}

	h := math.Abs(math.Sin(float64(q)*12.9898+float64(r)*78.233) * 43758.5453)
	h -= math.Floor(h)
	return allowed[int(h*float64(len(allowed)))]
}

// addRivers routes a fixed number of rivers: each seeds at a jittered high
// point and walks steepest-descent until reaching ocean or flat ground,
// converting buildable tiles to river terrain along the way.
func addRivers(m *Map, noise opensimplex.Noise) {
	w, h := float64(m.Width), float64(m.Height)

	for i := 0; i < riverCount; i++ {
		fi := float64(i)
		startQ := int(w*0.2 + math.Abs(noise.Eval2(fi*7.3, fi*3.7)+1)/2*w*0.6)
		startR := int(h*0.2 + math.Abs(noise.Eval2(fi*5.1, fi*9.2)+1)/2*h*0.6)

		start := m.Get(Coord{Q: startQ, R: startR})
		if start == nil || start.Terrain.Water() || start.Elevation <= 0.3 {
			continue
		}

		current := start
		for steps := 0; steps < 30; steps++ {
			var lowest *Tile
			lowestElev := current.Elevation
			for _, nc := range current.Coord.Neighbors() {
				nt := m.Get(nc)
				if nt != nil && nt.Elevation < lowestElev {
					lowestElev = nt.Elevation
					lowest = nt
				}
			}

			if lowest == nil || lowest.Terrain.Water() {
				break
			}

			if lowest.Terrain.Info().Buildable && lowest.Terrain != TerrainRiver {
				lowest.Terrain = TerrainRiver
				if lowest.Resource == ResourceNone {
					lowest.Resource = ResourceFish
				}
			}
			current = lowest
		}
	}
}

// octaveNoise layers multiple noise frequencies into fractal noise.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, persistence, lacunarity float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxVal
}

// TerrainCounts returns the terrain type distribution, useful for logging
// and generation sanity checks.
func TerrainCounts(m *Map) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, t := range m.Tiles {
		counts[t.Terrain]++
	}
	return counts
}
