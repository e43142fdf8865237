package world

// Terrain classifies a tile. The classification is fixed at generation
// except for river conversion during river routing.
type Terrain uint8

const (
	TerrainDeepOcean Terrain = iota
	TerrainOcean
	TerrainCoast
	TerrainRiver
	TerrainGrassland
	TerrainPlains
	TerrainForest
	TerrainJungle
	TerrainSavanna
	TerrainDesert
	TerrainTundra
	TerrainSwamp
	TerrainHills
	TerrainMountains

	terrainCount
)

// Resource is an optional natural yield tag on a tile, exploited by
// matching buildings or trickled in unimproved.
type Resource uint8

const (
	ResourceNone Resource = iota
	ResourceGrain
	ResourceFish
	ResourceCattle
	ResourceTimber
	ResourceIron
	ResourceCoal
	ResourceStone
	ResourceFurs
	ResourceGems
)

// FoodResources lists food in famine consumption priority order.
var FoodResources = [3]Resource{ResourceGrain, ResourceFish, ResourceCattle}

// resourceValues is the base trade value per unit when sold on the market.
var resourceValues = map[Resource]int{
	ResourceGrain:  3,
	ResourceFish:   3,
	ResourceCattle: 4,
	ResourceTimber: 4,
	ResourceIron:   6,
	ResourceCoal:   5,
	ResourceStone:  4,
	ResourceFurs:   8,
	ResourceGems:   15,
}

// BaseValue returns the trade value of one unit of the resource.
func (r Resource) BaseValue() int {
	if v, ok := resourceValues[r]; ok {
		return v
	}
	return 5
}

func (r Resource) String() string {
	switch r {
	case ResourceGrain:
		return "grain"
	case ResourceFish:
		return "fish"
	case ResourceCattle:
		return "cattle"
	case ResourceTimber:
		return "timber"
	case ResourceIron:
		return "iron"
	case ResourceCoal:
		return "coal"
	case ResourceStone:
		return "stone"
	case ResourceFurs:
		return "furs"
	case ResourceGems:
		return "gems"
	default:
		return "none"
	}
}

// TerrainInfo holds the static gameplay attributes of a terrain kind.
type TerrainInfo struct {
	Name      string
	MoveCost  float64 // Base movement cost to enter
	Defense   float64 // Defender bonus in combat
	Buildable bool    // Can be owned, built on, and claimed
	Naval     bool    // Open water, passable by ships only
	Resources []Resource
}

// terrainTable is the balance table for all terrain kinds. The thresholds
// in generation.go and these attributes are load-bearing game constants.
var terrainTable = [terrainCount]TerrainInfo{
	TerrainDeepOcean: {Name: "Deep Ocean", MoveCost: 1, Naval: true},
	TerrainOcean:     {Name: "Ocean", MoveCost: 1, Naval: true, Resources: []Resource{ResourceFish}},
	TerrainCoast:     {Name: "Coast", MoveCost: 1, Buildable: true, Resources: []Resource{ResourceFish}},
	TerrainRiver:     {Name: "River", MoveCost: 1, Defense: 1, Buildable: true, Resources: []Resource{ResourceFish}},
	TerrainGrassland: {Name: "Grassland", MoveCost: 1, Buildable: true, Resources: []Resource{ResourceGrain, ResourceCattle}},
	TerrainPlains:    {Name: "Plains", MoveCost: 1, Buildable: true, Resources: []Resource{ResourceGrain, ResourceCattle}},
	TerrainForest:    {Name: "Forest", MoveCost: 2, Defense: 2, Buildable: true, Resources: []Resource{ResourceTimber, ResourceFurs}},
	TerrainJungle:    {Name: "Jungle", MoveCost: 2, Defense: 2, Buildable: true, Resources: []Resource{ResourceTimber, ResourceGems}},
	TerrainSavanna:   {Name: "Savanna", MoveCost: 1, Buildable: true, Resources: []Resource{ResourceCattle, ResourceGrain}},
	TerrainDesert:    {Name: "Desert", MoveCost: 2, Buildable: true, Resources: []Resource{ResourceStone, ResourceGems}},
	TerrainTundra:    {Name: "Tundra", MoveCost: 2, Defense: 1, Buildable: true, Resources: []Resource{ResourceFurs}},
	TerrainSwamp:     {Name: "Swamp", MoveCost: 2, Defense: 1, Buildable: true},
	TerrainHills:     {Name: "Hills", MoveCost: 2, Defense: 3, Buildable: true, Resources: []Resource{ResourceIron, ResourceCoal, ResourceStone}},
	TerrainMountains: {Name: "Mountains", MoveCost: 3, Defense: 5, Resources: []Resource{ResourceIron, ResourceGems}},
}

// Info returns the static attributes of the terrain.
func (t Terrain) Info() TerrainInfo {
	if int(t) >= len(terrainTable) {
		panic("world: unknown terrain kind")
	}
	return terrainTable[t]
}

func (t Terrain) String() string { return t.Info().Name }

// Water reports whether the terrain is open or deep ocean, impassable for
// land units.
func (t Terrain) Water() bool {
	return t == TerrainOcean || t == TerrainDeepOcean
}
