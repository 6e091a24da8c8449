package world

import "testing"

func generateTestMap(t *testing.T) *MapData {
	t.Helper()
	cfg := DefaultGenConfig()
	cfg.Seed = 2024
	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return m
}

func TestRenderPlanBaseCoverage(t *testing.T) {
	m := generateTestMap(t)
	plan := RenderPlan(m)

	// Every in-grid hex gets exactly one base tile.
	baseDraws := make(map[HexCoord]int)
	for _, d := range plan {
		if !d.Edge {
			baseDraws[HexCoord{X: d.HX, Y: d.HY}]++
		}
	}
	for x := 0; x < m.Grid.Width; x++ {
		for y := 0; y < m.Grid.Height; y++ {
			h := HexCoord{X: x, Y: y}
			if baseDraws[h] != 1 {
				t.Errorf("hex (%d,%d) has %d base draws, want 1", x, y, baseDraws[h])
			}
		}
	}
}

func TestRenderPlanBaseTilesMatchTerrain(t *testing.T) {
	m := generateTestMap(t)
	for _, d := range RenderPlan(m) {
		if d.Edge {
			continue
		}
		h := HexCoord{X: d.HX, Y: d.HY}
		if !m.Grid.Contains(h) {
			continue // overdraw band, checked separately
		}
		i, _ := m.Grid.ToIndex(h)
		if d.Tile != int(m.HexTerrain[i]) {
			t.Errorf("base draw at (%d,%d) tile %d, want terrain %d", d.HX, d.HY, d.Tile, m.HexTerrain[i])
		}
	}
}

func TestRenderPlanOverdrawBands(t *testing.T) {
	m := generateTestMap(t)
	g := m.Grid

	left, top, right, bottom := 0, 0, 0, 0
	for _, d := range RenderPlan(m) {
		if d.Edge {
			continue
		}
		switch {
		case d.HX == -1:
			left++
		case d.HY == -1:
			top++
		case d.HX == g.Width:
			right++
		case d.HY == g.Height:
			bottom++
		}
	}

	if want := g.Height + 1; left != want {
		t.Errorf("left band has %d base draws, want %d", left, want)
	}
	// Top band covers odd columns only; bottom band covers even columns only.
	if want := g.Width / 2; top != want {
		t.Errorf("top band has %d base draws, want %d", top, want)
	}
	if want := g.Height + 1; right != want {
		t.Errorf("right band has %d base draws, want %d", right, want)
	}
	if want := (g.Width + 1) / 2; bottom != want {
		t.Errorf("bottom band has %d base draws, want %d", bottom, want)
	}
}

func TestRenderPlanOverdrawMirrorsGridEdge(t *testing.T) {
	m := generateTestMap(t)
	g := m.Grid

	for _, d := range RenderPlan(m) {
		if d.Edge {
			continue
		}
		switch {
		case d.HX == -1:
			// Left band mirrors column 0, one row down (clamped).
			mirror := g.index(0, min(d.HY+1, g.Height-1))
			if d.Tile != int(m.HexTerrain[mirror]) {
				t.Errorf("left overdraw at hy=%d tile %d, want %d", d.HY, d.Tile, m.HexTerrain[mirror])
			}
		case d.HX == g.Width:
			mirror := g.index(g.Width-1, min(d.HY, g.Height-1))
			if d.Tile != int(m.HexTerrain[mirror]) {
				t.Errorf("right overdraw at hy=%d tile %d, want %d", d.HY, d.Tile, m.HexTerrain[mirror])
			}
		case d.HY == -1:
			mirror := g.index(d.HX, 0)
			if d.Tile != int(m.HexTerrain[mirror]) {
				t.Errorf("top overdraw at hx=%d tile %d, want %d", d.HX, d.Tile, m.HexTerrain[mirror])
			}
		case d.HY == g.Height:
			mirror := g.index(d.HX, g.Height-1)
			if d.Tile != int(m.HexTerrain[mirror]) {
				t.Errorf("bottom overdraw at hx=%d tile %d, want %d", d.HX, d.Tile, m.HexTerrain[mirror])
			}
		}
	}
}

func TestRenderPlanEdgeTilesInRange(t *testing.T) {
	m := generateTestMap(t)
	maxTile := int(NumTerrains) * int(NumDirections)
	for _, d := range RenderPlan(m) {
		if !d.Edge {
			continue
		}
		if d.Tile < 0 || d.Tile >= maxTile {
			t.Errorf("edge draw at (%d,%d) tile %d, want [0,%d)", d.HX, d.HY, d.Tile, maxTile)
		}
	}
}

func TestRenderPlanInGridEdgesMatchResolver(t *testing.T) {
	m := generateTestMap(t)
	g := m.Grid

	// Collect expected in-grid edge draws straight from the resolver.
	type edgeKey struct {
		h    HexCoord
		tile int
	}
	want := make(map[edgeKey]bool)
	for i := 0; i < g.Size(); i++ {
		h := g.coord(i)
		for dir := DirN; dir < NumDirections; dir++ {
			n := g.Neighbor(i, dir)
			if n == OffGrid {
				continue
			}
			if edge, ok := EdgeTerrain(m.HexTerrain[i], m.HexTerrain[n]); ok {
				want[edgeKey{h, EdgeTileIndex(edge, dir)}] = true
			}
		}
	}

	got := make(map[edgeKey]bool)
	for _, d := range RenderPlan(m) {
		if d.Edge && g.Contains(HexCoord{X: d.HX, Y: d.HY}) {
			got[edgeKey{HexCoord{X: d.HX, Y: d.HY}, d.Tile}] = true
		}
	}

	for k := range want {
		if !got[k] {
			t.Errorf("missing edge draw at (%d,%d) tile %d", k.h.X, k.h.Y, k.tile)
		}
	}
}

func TestRenderPlanDeterminism(t *testing.T) {
	m := generateTestMap(t)
	p1 := RenderPlan(m)
	p2 := RenderPlan(m)
	if len(p1) != len(p2) {
		t.Fatalf("plan lengths differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("plans differ at %d: %+v vs %+v", i, p1[i], p2[i])
		}
	}
}
