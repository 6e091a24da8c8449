// Region partitioning via Lloyd relaxation over the hex grid.
// A fixed number of passes gives visually regular regions; the algorithm is
// not run to convergence.
package world

import (
	"math"
	"math/rand"
)

// relaxationPasses is the number of assign/recenter rounds. Chosen
// empirically: four passes produce regular-looking regions on small maps.
const relaxationPasses = 4

// findClosest returns the region whose center is nearest to h. Among equal
// distances the first region in ascending id order wins (strict < against the
// best so far). Centers at HexInvalid belong to extinct regions and are
// skipped, so an extinct region can never win a hex again.
func findClosest(h HexCoord, centers []HexCoord) int {
	closest := -1
	bestSoFar := math.MaxInt
	for r, c := range centers {
		if c == HexInvalid {
			continue
		}
		if dist := Distance(h, c); dist < bestSoFar {
			closest = r
			bestSoFar = dist
		}
	}
	return closest
}

// regionCenters computes the center of mass of each region as the
// floor-divided mean of its hexes' coordinates. A region that owns no hexes
// keeps the HexInvalid sentinel.
func regionCenters(g Grid, regions []int, numRegions int) []HexCoord {
	sumX := make([]int, numRegions)
	sumY := make([]int, numRegions)
	count := make([]int, numRegions)

	for i, r := range regions {
		h := g.coord(i)
		sumX[r] += h.X
		sumY[r] += h.Y
		count[r]++
	}

	centers := make([]HexCoord, numRegions)
	for r := range centers {
		if count[r] > 0 {
			centers[r] = HexCoord{X: sumX[r] / count[r], Y: sumY[r] / count[r]}
		} else {
			// Relaxation sometimes leaves a region absorbed by its
			// neighbors with no hexes left. Its center stays invalid for
			// the rest of the run.
			centers[r] = HexInvalid
		}
	}
	return centers
}

// GenerateRegions partitions the grid into numRegions contiguous regions and
// returns a region id per hex, indexed row-major. Centers are seeded from rng
// (duplicates are tolerated), relaxed for a fixed number of passes, and a
// final assignment pass produces the result.
func GenerateRegions(g Grid, numRegions int, rng *rand.Rand) []int {
	centers := make([]HexCoord, numRegions)
	for r := range centers {
		centers[r] = g.RandomHex(rng)
	}
	return PartitionFromCenters(g, centers)
}

// PartitionFromCenters runs the relaxation from an explicit set of seed
// centers instead of random ones, one region per center. Useful when the
// caller wants reproducible center placement.
func PartitionFromCenters(g Grid, centers []HexCoord) []int {
	numRegions := len(centers)
	centers = append([]HexCoord(nil), centers...)

	regions := make([]int, g.Size())
	for pass := 0; pass < relaxationPasses; pass++ {
		for i := range regions {
			regions[i] = findClosest(g.coord(i), centers)
		}
		centers = regionCenters(g, regions, numRegions)
	}

	// Final assignment against the last recomputed centers.
	for i := range regions {
		regions[i] = findClosest(g.coord(i), centers)
	}
	return regions
}

// RegionSizes returns the number of hexes owned by each region. Extinct
// regions report zero.
func RegionSizes(regions []int, numRegions int) []int {
	sizes := make([]int, numRegions)
	for _, r := range regions {
		sizes[r]++
	}
	return sizes
}
