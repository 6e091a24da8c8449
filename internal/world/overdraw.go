// Render plan construction. The renderer consumes a flat list of tile-draw
// instructions: base terrain tiles, edge transitions between differing
// terrains, and the four mirrored border bands that overdraw the map edges so
// the visible boundary is not jagged. Overdrawn positions copy the mirrored
// in-grid hex, and edge directions are interpreted relative to that mirrored
// hex's own neighbor table, since the overdrawn hex itself is off-grid.
package world

// TileDraw is a single blit instruction. HX/HY may lie one hex outside the
// grid for border overdraw. Tile is a terrain index for base draws and an
// EdgeTileIndex for edge draws.
type TileDraw struct {
	HX   int  `json:"hx"`
	HY   int  `json:"hy"`
	Tile int  `json:"tile"`
	Edge bool `json:"edge"`
}

// RenderPlan produces the ordered draw list for a generated map: the in-grid
// hexes with their edge transitions, then the left, top, right, and bottom
// overdraw bands.
func RenderPlan(m *MapData) []TileDraw {
	g := m.Grid
	plan := make([]TileDraw, 0, g.Size()*2)

	for hx := 0; hx < g.Width; hx++ {
		for hy := 0; hy < g.Height; hy++ {
			aPos := g.index(hx, hy)
			t := m.HexTerrain[aPos]
			plan = append(plan, TileDraw{HX: hx, HY: hy, Tile: int(t)})
			for d := DirN; d < NumDirections; d++ {
				aNeighbor := g.Neighbor(aPos, d)
				if aNeighbor == OffGrid {
					continue
				}
				if edge, ok := EdgeTerrain(t, m.HexTerrain[aNeighbor]); ok {
					plan = append(plan, TileDraw{HX: hx, HY: hy, Tile: EdgeTileIndex(edge, d), Edge: true})
				}
			}
		}
	}

	plan = append(plan, overdrawLeft(m)...)
	plan = append(plan, overdrawTop(m)...)
	plan = append(plan, overdrawRight(m)...)
	plan = append(plan, overdrawBottom(m)...)
	return plan
}

// overdrawLeft mirrors column 0 one hex to the left. The mirrored hex is to
// the southeast of the overdraw position, so the transition is computed
// against its north neighbor.
func overdrawLeft(m *MapData) []TileDraw {
	g := m.Grid
	var plan []TileDraw
	for hy := -1; hy < g.Height; hy++ {
		aMirror := g.index(0, min(hy+1, g.Height-1))
		t := m.HexTerrain[aMirror]
		plan = append(plan, TileDraw{HX: -1, HY: hy, Tile: int(t)})

		aNeighbor := g.Neighbor(aMirror, DirN)
		if aNeighbor == OffGrid {
			continue
		}
		tn := m.HexTerrain[aNeighbor]
		if edge, ok := EdgeTerrain(t, tn); ok {
			plan = append(plan, TileDraw{HX: -1, HY: hy, Tile: EdgeTileIndex(edge, DirNE), Edge: true})
		}
		// The neighbor may need the reverse transition drawn as well.
		if edge, ok := EdgeTerrain(tn, t); ok {
			n := g.coord(aNeighbor)
			plan = append(plan, TileDraw{HX: n.X, HY: n.Y, Tile: EdgeTileIndex(edge, DirSW), Edge: true})
		}
	}
	return plan
}

// overdrawTop mirrors row 0 upward above the odd columns (even columns
// already touch the top border). The mirrored hex is to the south, so the
// transitions are computed against its northwest and northeast neighbors.
func overdrawTop(m *MapData) []TileDraw {
	g := m.Grid
	var plan []TileDraw
	for hx := 1; hx < g.Width; hx += 2 {
		aMirror := g.index(hx, 0)
		t := m.HexTerrain[aMirror]
		plan = append(plan, TileDraw{HX: hx, HY: -1, Tile: int(t)})

		plan = append(plan, mirrorPair(m, aMirror, t, hx, -1, DirNW, DirSW, DirNE)...)
		plan = append(plan, mirrorPair(m, aMirror, t, hx, -1, DirNE, DirSE, DirNW)...)
	}
	return plan
}

// overdrawRight mirrors the last column one hex to the right. The mirrored
// hex is to the southwest, so the transition is computed against its north
// neighbor.
func overdrawRight(m *MapData) []TileDraw {
	g := m.Grid
	var plan []TileDraw
	for hy := 0; hy < g.Height+1; hy++ {
		aMirror := g.index(g.Width-1, min(hy, g.Height-1))
		t := m.HexTerrain[aMirror]
		plan = append(plan, TileDraw{HX: g.Width, HY: hy, Tile: int(t)})

		aNeighbor := g.Neighbor(aMirror, DirN)
		if aNeighbor == OffGrid {
			continue
		}
		tn := m.HexTerrain[aNeighbor]
		if edge, ok := EdgeTerrain(t, tn); ok {
			plan = append(plan, TileDraw{HX: g.Width, HY: hy, Tile: EdgeTileIndex(edge, DirNW), Edge: true})
		}
		if edge, ok := EdgeTerrain(tn, t); ok {
			n := g.coord(aNeighbor)
			plan = append(plan, TileDraw{HX: n.X, HY: n.Y, Tile: EdgeTileIndex(edge, DirSE), Edge: true})
		}
	}
	return plan
}

// overdrawBottom mirrors the last row downward below the even columns. The
// mirrored hex is to the north, so the transitions are computed against its
// southwest and southeast neighbors.
func overdrawBottom(m *MapData) []TileDraw {
	g := m.Grid
	var plan []TileDraw
	for hx := 0; hx < g.Width; hx += 2 {
		aMirror := g.index(hx, g.Height-1)
		t := m.HexTerrain[aMirror]
		plan = append(plan, TileDraw{HX: hx, HY: g.Height, Tile: int(t)})

		plan = append(plan, mirrorPair(m, aMirror, t, hx, g.Height, DirSW, DirNW, DirSE)...)
		plan = append(plan, mirrorPair(m, aMirror, t, hx, g.Height, DirSE, DirNE, DirSW)...)
	}
	return plan
}

// mirrorPair computes the two transitions between a mirrored hex and one of
// its in-grid neighbors: the overdraw position draws toward the neighbor
// (outDir) and the neighbor may draw the reverse transition back (backDir).
func mirrorPair(m *MapData, aMirror int, t Terrain, hx, hy int, neighborDir, outDir, backDir Direction) []TileDraw {
	g := m.Grid
	aNeighbor := g.Neighbor(aMirror, neighborDir)
	if aNeighbor == OffGrid {
		return nil
	}

	var plan []TileDraw
	tn := m.HexTerrain[aNeighbor]
	if edge, ok := EdgeTerrain(t, tn); ok {
		plan = append(plan, TileDraw{HX: hx, HY: hy, Tile: EdgeTileIndex(edge, outDir), Edge: true})
	}
	if edge, ok := EdgeTerrain(tn, t); ok {
		n := g.coord(aNeighbor)
		plan = append(plan, TileDraw{HX: n.X, HY: n.Y, Tile: EdgeTileIndex(edge, backDir), Edge: true})
	}
	return plan
}
