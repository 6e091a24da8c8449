// Noise fields layered over the generated map. Elevation and moisture give
// the renderer something to vary decoration and obstacle placement with; the
// terrain coloring itself stays purely region-based.
package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// BuildFields samples per-hex elevation and moisture from layered simplex
// noise, deterministic for a given seed.
func BuildFields(g Grid, seed int64) (elevation, moisture []float64) {
	elevNoise := opensimplex.NewNormalized(seed)
	moistNoise := opensimplex.NewNormalized(seed + 1)

	elevation = make([]float64, g.Size())
	moisture = make([]float64, g.Size())

	for i := 0; i < g.Size(); i++ {
		h := g.coord(i)
		// Offset hex -> continuous space: columns overlap by a quarter hex,
		// odd columns sit half a hex lower.
		x := float64(h.X) * 0.75
		y := float64(h.Y)
		if h.X%2 != 0 {
			y += 0.5
		}

		elevation[i] = octaveNoise(elevNoise, x, y, 4, 0.15, 0.5)
		moisture[i] = octaveNoise(moistNoise, x, y, 3, 0.12, 0.5)
	}
	return elevation, moisture
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
