package sand

import (
	"math"

	"github.com/aquilax/go-perlin"

	"sandcastle/internal/core"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// SurfaceHeights returns the row of the topmost Dirt cell for every column.
// A value of h-1 means the column has no dirt above the bedrock row.
func SurfaceHeights(w, h int, cfg TerrainConfig, seed int64) []int {
	heights := make([]int, w)
	var noise *perlin.Perlin
	if cfg.Roughness > 0 {
		noise = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	}
	wavelength := cfg.Wavelength
	if wavelength <= 0 {
		wavelength = float64(w)
	}
	for x := 0; x < w; x++ {
		surface := float64(h)*cfg.Base + cfg.Amplitude*math.Sin(2*math.Pi*float64(x)/wavelength)
		if noise != nil {
			surface += cfg.Roughness * noise.Noise1D(float64(x)*cfg.RoughnessScale)
		}
		row := int(math.Round(surface))
		if row < 0 {
			row = 0
		}
		if row > h-1 {
			row = h - 1
		}
		heights[x] = row
	}
	return heights
}

// GenerateTerrain resets g to Air and lays down the sine-wave dirt profile,
// scattering gold through the dirt and closing the bottom row with bedrock.
// The result depends only on the grid size, cfg and seed.
func GenerateTerrain(g *Grid, cfg TerrainConfig, seed int64) {
	g.Fill(Air)
	rng := core.NewRNG(seed)
	heights := SurfaceHeights(g.w, g.h, cfg, seed)
	bottom := g.h - 1
	for x := 0; x < g.w; x++ {
		for y := heights[x]; y < bottom; y++ {
			k := Dirt
			if rng.Chance(cfg.GoldChance) {
				k = Gold
			}
			g.SetCell(x, y, Cell{Kind: k})
		}
		g.SetCell(x, bottom, Cell{Kind: Bedrock})
	}
}
