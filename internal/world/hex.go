// Package world provides the hex grid and the terrain map generation pipeline.
// Uses offset coordinates (x = column, y = row) with odd columns shifted down
// half a hex when rendered ("odd-q" layout).
package world

// HexCoord represents a position on the hex grid using offset coordinates.
type HexCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// HexInvalid is the sentinel coordinate for "no hex", e.g. the center of a
// region that owns no hexes.
var HexInvalid = HexCoord{X: -1, Y: -1}

// Direction enumerates the six hex neighbor directions in the fixed cyclic
// order used for both neighbor lookup and edge-tile selection.
type Direction uint8

const (
	DirN Direction = iota
	DirNE
	DirSE
	DirS
	DirSW
	DirNW
	NumDirections
)

// DirectionName returns a human-readable name for a direction.
func DirectionName(d Direction) string {
	switch d {
	case DirN:
		return "N"
	case DirNE:
		return "NE"
	case DirSE:
		return "SE"
	case DirS:
		return "S"
	case DirSW:
		return "SW"
	case DirNW:
		return "NW"
	default:
		return "Unknown"
	}
}

// Neighbor deltas depend on column parity: odd columns sit half a hex lower,
// so their diagonal neighbors land one row further down. This table is the
// single point of truth for the parity split.
var (
	evenColDeltas = [NumDirections]HexCoord{
		{X: 0, Y: -1},  // N
		{X: 1, Y: -1},  // NE
		{X: 1, Y: 0},   // SE
		{X: 0, Y: 1},   // S
		{X: -1, Y: 0},  // SW
		{X: -1, Y: -1}, // NW
	}
	oddColDeltas = [NumDirections]HexCoord{
		{X: 0, Y: -1}, // N
		{X: 1, Y: 0},  // NE
		{X: 1, Y: 1},  // SE
		{X: 0, Y: 1},  // S
		{X: -1, Y: 1}, // SW
		{X: -1, Y: 0}, // NW
	}
)

// Delta returns the coordinate offset of the given direction for a hex in
// column x.
func Delta(x int, d Direction) HexCoord {
	if x%2 == 0 {
		return evenColDeltas[d]
	}
	return oddColDeltas[d]
}

// Neighbor returns the adjacent coordinate in the given direction. The result
// is not bounds-checked; see Grid.Neighbor for the in-grid variant.
func (h HexCoord) Neighbor(d Direction) HexCoord {
	delta := Delta(h.X, d)
	return HexCoord{X: h.X + delta.X, Y: h.Y + delta.Y}
}

// Neighbors returns the six adjacent hex coordinates in direction order.
func (h HexCoord) Neighbors() [NumDirections]HexCoord {
	var result [NumDirections]HexCoord
	for d := DirN; d < NumDirections; d++ {
		result[d] = h.Neighbor(d)
	}
	return result
}

// axial converts an offset coordinate to axial (q, r) for distance math.
func axial(h HexCoord) (q, r int) {
	q = h.X
	r = h.Y - (h.X-(h.X&1))/2
	return
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	aq, ar := axial(a)
	bq, br := axial(b)
	dq := aq - bq
	dr := ar - br
	ds := (-aq - ar) - (-bq - br)
	if dq < 0 {
		dq = -dq
	}
	if dr < 0 {
		dr = -dr
	}
	if ds < 0 {
		ds = -ds
	}
	// Max of the three absolute differences in cube coordinates.
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}
