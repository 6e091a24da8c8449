// Map generation pipeline: partition the grid into regions, build the region
// adjacency graph, color regions with terrain, derive per-hex terrain, and
// sample the noise fields. Pure computation over owned arrays; all I/O and
// rendering belongs to callers.
package world

import (
	"fmt"
	"math/rand"
)

// GenConfig holds map generation parameters.
type GenConfig struct {
	Width       int   // Grid width in hexes
	Height      int   // Grid height in hexes
	NumRegions  int   // Target region count (regions may go extinct)
	NumTerrains int   // Terrain types to color with, at most NumTerrains
	Seed        int64 // Random seed (0 = random)
}

// DefaultGenConfig returns the classic 16x9 map with 18 regions.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:       16,
		Height:      9,
		NumRegions:  18,
		NumTerrains: int(NumTerrains),
		Seed:        0,
	}
}

// SmallTestConfig returns a tiny map for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Width:       6,
		Height:      4,
		NumRegions:  4,
		NumTerrains: int(NumTerrains),
		Seed:        42,
	}
}

// MapData is the complete output of a generation run. Every slice is freshly
// allocated; nothing aliases the inputs or other outputs.
type MapData struct {
	Grid Grid  `json:"grid"`
	Seed int64 `json:"seed"`

	// Regions assigns a region id in [0,NumRegions) to every hex, row-major.
	Regions []int `json:"regions"`

	// Adjacency lists each region's neighboring regions in discovery order,
	// indexed by region id. Extinct regions have empty lists.
	Adjacency [][]int `json:"adjacency"`

	// RegionTerrain assigns a terrain type to every region id.
	RegionTerrain []Terrain `json:"region_terrain"`

	// HexTerrain is the per-hex terrain, derived by composing Regions with
	// RegionTerrain.
	HexTerrain []Terrain `json:"hex_terrain"`

	// Elevation and Moisture are per-hex noise fields for decoration
	// placement; they do not influence terrain assignment.
	Elevation []float64 `json:"elevation"`
	Moisture  []float64 `json:"moisture"`
}

// Validate checks the configuration before any computation runs.
func (cfg GenConfig) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid grid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.NumRegions <= 0 {
		return fmt.Errorf("invalid region count %d", cfg.NumRegions)
	}
	if cfg.NumTerrains <= 0 || cfg.NumTerrains > int(NumTerrains) {
		return fmt.Errorf("invalid terrain count %d (must be in [1,%d])", cfg.NumTerrains, NumTerrains)
	}
	return nil
}

// Generate runs the full pipeline and returns a complete map. Deterministic
// for a given non-zero seed.
func Generate(cfg GenConfig) (*MapData, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := Grid{Width: cfg.Width, Height: cfg.Height}
	regions := GenerateRegions(grid, cfg.NumRegions, rng)
	adj := RegionNeighbors(grid, regions, cfg.NumRegions)
	regionTerrain := AssignTerrains(adj, cfg.NumTerrains)

	hexTerrain := make([]Terrain, grid.Size())
	for i, r := range regions {
		hexTerrain[i] = regionTerrain[r]
	}

	elevation, moisture := BuildFields(grid, seed)

	return &MapData{
		Grid:          grid,
		Seed:          seed,
		Regions:       regions,
		Adjacency:     adj,
		RegionTerrain: regionTerrain,
		HexTerrain:    hexTerrain,
		Elevation:     elevation,
		Moisture:      moisture,
	}, nil
}

// TerrainCounts returns a summary of terrain type distribution over hexes.
func TerrainCounts(m *MapData) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, t := range m.HexTerrain {
		counts[t]++
	}
	return counts
}
