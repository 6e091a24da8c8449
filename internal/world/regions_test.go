package world

import (
	"math/rand"
	"testing"
)

func TestPartitionCoverage(t *testing.T) {
	g := mustGrid(t, 16, 9)
	regions := GenerateRegions(g, 18, rand.New(rand.NewSource(99)))

	if len(regions) != 144 {
		t.Fatalf("got %d assignments, want 144", len(regions))
	}
	for i, r := range regions {
		if r < 0 || r >= 18 {
			t.Errorf("hex %d assigned region %d, want [0,18)", i, r)
		}
	}
}

func TestPartitionDeterminism(t *testing.T) {
	g := mustGrid(t, 16, 9)
	a := GenerateRegions(g, 18, rand.New(rand.NewSource(123)))
	b := GenerateRegions(g, 18, rand.New(rand.NewSource(123)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("assignments differ at hex %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestPartitionRegionsAreClustered(t *testing.T) {
	// Nearest-center assignment should not scatter single hexes everywhere:
	// most hexes share a region with at least one neighbor.
	g := mustGrid(t, 16, 9)
	regions := GenerateRegions(g, 18, rand.New(rand.NewSource(5)))

	isolated := 0
	for i := range regions {
		same := false
		for _, n := range g.NeighborIndices(i) {
			if regions[n] == regions[i] {
				same = true
				break
			}
		}
		if !same {
			isolated++
		}
	}
	if isolated > 10 {
		t.Errorf("%d hexes have no same-region neighbor, expected clustered regions", isolated)
	}
}

func TestFindClosestTieBreak(t *testing.T) {
	// Two centers equidistant from the probe: the lower region id wins.
	centers := []HexCoord{{X: 2, Y: 4}, {X: 6, Y: 4}}
	probe := HexCoord{X: 4, Y: 4}
	if Distance(probe, centers[0]) != Distance(probe, centers[1]) {
		t.Fatal("test setup broken: centers not equidistant")
	}
	if got := findClosest(probe, centers); got != 0 {
		t.Errorf("findClosest tie = region %d, want 0 (lowest id)", got)
	}

	// Same distances with the order swapped still picks the first.
	swapped := []HexCoord{{X: 6, Y: 4}, {X: 2, Y: 4}}
	if got := findClosest(probe, swapped); got != 0 {
		t.Errorf("findClosest tie (swapped) = region %d, want 0", got)
	}
}

func TestFindClosestSkipsExtinctCenters(t *testing.T) {
	// An extinct region's invalid center must never win, even when every
	// other center is far away.
	centers := []HexCoord{HexInvalid, {X: 15, Y: 8}}
	if got := findClosest(HexCoord{X: 0, Y: 0}, centers); got != 1 {
		t.Errorf("findClosest = region %d, want 1 (region 0 is extinct)", got)
	}
}

func TestRegionCentersFloorDivision(t *testing.T) {
	g := mustGrid(t, 4, 4)
	// All 16 hexes in one region: sum x = 24, sum y = 24, count 16 -> (1,1).
	regions := make([]int, g.Size())
	centers := regionCenters(g, regions, 1)
	if centers[0] != (HexCoord{X: 1, Y: 1}) {
		t.Errorf("center = %v, want (1,1) via floor division", centers[0])
	}
}

func TestRegionCentersExtinctSentinel(t *testing.T) {
	g := mustGrid(t, 4, 4)
	regions := make([]int, g.Size()) // every hex in region 0
	centers := regionCenters(g, regions, 3)

	if centers[0] == HexInvalid {
		t.Error("region 0 owns all hexes but has an invalid center")
	}
	for r := 1; r < 3; r++ {
		if centers[r] != HexInvalid {
			t.Errorf("extinct region %d center = %v, want HexInvalid", r, centers[r])
		}
	}
}

func TestPartitionToleratesMoreRegionsThanHexes(t *testing.T) {
	// Extreme degeneracy: more regions than hexes. Every hex still gets a
	// valid assignment and nothing panics.
	g := mustGrid(t, 3, 3)
	regions := GenerateRegions(g, 20, rand.New(rand.NewSource(1)))
	for i, r := range regions {
		if r < 0 || r >= 20 {
			t.Errorf("hex %d assigned region %d, want [0,20)", i, r)
		}
	}
}

func TestPartitionFromCentersReproducible(t *testing.T) {
	g := mustGrid(t, 16, 9)
	rng := rand.New(rand.NewSource(8))
	centers := make([]HexCoord, 18)
	for r := range centers {
		centers[r] = g.RandomHex(rng)
	}

	a := PartitionFromCenters(g, centers)
	b := PartitionFromCenters(g, centers)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("assignments differ at hex %d: %d vs %d", i, a[i], b[i])
		}
		if a[i] < 0 || a[i] >= 18 {
			t.Errorf("hex %d assigned region %d, want [0,18)", i, a[i])
		}
	}

	// The input center slice must not be mutated by the relaxation.
	rng2 := rand.New(rand.NewSource(8))
	for r := range centers {
		if want := g.RandomHex(rng2); centers[r] != want {
			t.Fatalf("center %d mutated to %v", r, centers[r])
		}
	}
}

func TestRegionSizes(t *testing.T) {
	regions := []int{0, 0, 1, 2, 2, 2}
	sizes := RegionSizes(regions, 4)
	want := []int{2, 1, 3, 0}
	for r := range want {
		if sizes[r] != want[r] {
			t.Errorf("region %d size = %d, want %d", r, sizes[r], want[r])
		}
	}
}
