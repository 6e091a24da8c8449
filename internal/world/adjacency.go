package world

// RegionNeighbors builds an adjacency list per region by scanning every hex
// and recording neighbors that lie in a different region. The result is
// indexed by region id; each list holds distinct neighbor ids in
// first-discovery order (row-major hex scan, then direction order). A region
// with no hexes gets an empty list. No self-loops occur.
func RegionNeighbors(g Grid, regions []int, numRegions int) [][]int {
	adj := make([][]int, numRegions)
	for i := 0; i < g.Size(); i++ {
		reg := regions[i]
		for _, n := range g.NeighborIndices(i) {
			rNeighbor := regions[n]
			if rNeighbor != reg && !containsRegion(adj[reg], rNeighbor) {
				adj[reg] = append(adj[reg], rNeighbor)
			}
		}
	}
	return adj
}

// containsRegion does a linear scan; neighbor lists are tiny (a handful of
// entries) so a set type would be overkill.
func containsRegion(list []int, r int) bool {
	for _, v := range list {
		if v == r {
			return true
		}
	}
	return false
}
