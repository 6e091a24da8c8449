package world

// Terrain types for hex tiles, mapped to a dense integer range. The numeric
// order matters: greedy coloring prefers lower values, and tile-sheet offsets
// are computed from the value (see EdgeTileIndex).
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainDirt
	TerrainSand
	TerrainWater
	TerrainSwamp
	TerrainSnow
	NumTerrains
)

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainGrass:
		return "Grass"
	case TerrainDirt:
		return "Dirt"
	case TerrainSand:
		return "Sand"
	case TerrainWater:
		return "Water"
	case TerrainSwamp:
		return "Swamp"
	case TerrainSnow:
		return "Snow"
	default:
		return "Unknown"
	}
}

// AssignTerrains colors each region with one of numTerrains terrain types
// using greedy coloring: regions are processed in increasing id order and get
// the lowest-numbered type unused by their already-colored neighbors.
// Neighbors with a higher id have not been colored yet and are ignored; this
// is a single forward pass, not a fixed-point iteration.
//
// When every type is already taken by colored neighbors, the region falls
// back to type 0 regardless of the conflict. A rare pair of adjacent
// same-terrain regions is accepted rather than searching further; this is a
// deliberate trade-off, not a defect.
func AssignTerrains(adj [][]int, numTerrains int) []Terrain {
	numRegions := len(adj)
	assigned := make([]int, numRegions)
	for r := range assigned {
		assigned[r] = -1
	}

	for r := 0; r < numRegions; r++ {
		used := make([]bool, numTerrains)
		remaining := numTerrains
		for _, rNeighbor := range adj[r] {
			if t := assigned[rNeighbor]; t >= 0 && !used[t] {
				used[t] = true
				remaining--
			}
		}

		assigned[r] = 0 // exhaustion fallback
		if remaining > 0 {
			for t := 0; t < numTerrains; t++ {
				if !used[t] {
					assigned[r] = t
					break
				}
			}
		}
	}

	terrains := make([]Terrain, numRegions)
	for r, t := range assigned {
		terrains[r] = Terrain(t)
	}
	return terrains
}

// EdgeTerrain decides which transition terrain to draw between two
// neighboring hexes. Rules in priority order, first match wins:
//
//  1. exactly one side is water, or exactly one side is sand -> sand
//  2. the pair is dirt/grass in either order -> grass
//  3. any other differing pair -> dirt
//  4. identical terrains -> no transition (ok = false)
//
// The selected kind is the same regardless of argument order; only the tile
// direction chosen by the caller differs.
func EdgeTerrain(from, to Terrain) (Terrain, bool) {
	switch {
	case (from == TerrainWater) != (to == TerrainWater),
		(from == TerrainSand) != (to == TerrainSand):
		return TerrainSand, true
	case (from == TerrainDirt && to == TerrainGrass) ||
		(from == TerrainGrass && to == TerrainDirt):
		return TerrainGrass, true
	case from != to:
		return TerrainDirt, true
	}
	return 0, false
}

// EdgeTileIndex composes a transition terrain and a direction into the
// tile-sheet offset used by the renderer. Edge tiles are laid out six per
// terrain, in direction order.
func EdgeTileIndex(edge Terrain, d Direction) int {
	return int(edge)*int(NumDirections) + int(d)
}
