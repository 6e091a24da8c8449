package world

import (
	"fmt"
	"math/rand"
)

// OffGrid is the sentinel index returned when a neighbor falls outside the
// grid.
const OffGrid = -1

// Grid describes a fixed-size hex grid stored as a flat row-major array.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Size returns the total number of hexes in the grid.
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Contains returns true if the coordinate lies within the grid.
func (g Grid) Contains(h HexCoord) bool {
	return h.X >= 0 && h.X < g.Width && h.Y >= 0 && h.Y < g.Height
}

// ToIndex converts a hex coordinate to its array index.
func (g Grid) ToIndex(h HexCoord) (int, error) {
	if !g.Contains(h) {
		return OffGrid, fmt.Errorf("hex (%d,%d) outside %dx%d grid", h.X, h.Y, g.Width, g.Height)
	}
	return g.index(h.X, h.Y), nil
}

// ToCoord converts an array index back to a hex coordinate. Inverse of
// ToIndex for all valid indices.
func (g Grid) ToCoord(i int) (HexCoord, error) {
	if i < 0 || i >= g.Size() {
		return HexInvalid, fmt.Errorf("index %d outside [0,%d)", i, g.Size())
	}
	return g.coord(i), nil
}

// index and coord are the unchecked converters used on hot paths after bounds
// have been established.
func (g Grid) index(x, y int) int {
	return y*g.Width + x
}

func (g Grid) coord(i int) HexCoord {
	return HexCoord{X: i % g.Width, Y: i / g.Width}
}

// Neighbor returns the array index of the hex adjacent to index i in the
// given direction, or OffGrid when the neighbor lies outside the grid (or i
// itself is invalid).
func (g Grid) Neighbor(i int, d Direction) int {
	if i < 0 || i >= g.Size() || d >= NumDirections {
		return OffGrid
	}
	n := g.coord(i).Neighbor(d)
	if !g.Contains(n) {
		return OffGrid
	}
	return g.index(n.X, n.Y)
}

// NeighborIndices returns the array indices of all in-grid neighbors of index
// i, in direction order. Hexes on the map border have fewer than six.
func (g Grid) NeighborIndices(i int) []int {
	result := make([]int, 0, NumDirections)
	for d := DirN; d < NumDirections; d++ {
		if n := g.Neighbor(i, d); n != OffGrid {
			result = append(result, n)
		}
	}
	return result
}

// RandomHex returns a uniformly random in-bounds coordinate. Repeated calls
// may return duplicates.
func (g Grid) RandomHex(rng *rand.Rand) HexCoord {
	return HexCoord{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}
