package body

import (
	perlin "github.com/aquilax/go-perlin"
)

// PerlinGround is a rolling height field sampled from 2D Perlin noise.
type PerlinGround struct {
	BaseHeight float32
	Amplitude  float32
	Scale      float32 // world units to noise units
	noise      *perlin.Perlin
}

// NewPerlinGround builds a deterministic terrain for a seed.
func NewPerlinGround(baseHeight, amplitude, scale float32, seed int64) *PerlinGround {
	return &PerlinGround{
		BaseHeight: baseHeight,
		Amplitude:  amplitude,
		Scale:      scale,
		noise:      perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (g *PerlinGround) HeightAt(x, z float32) float32 {
	n := g.noise.Noise2D(float64(x*g.Scale), float64(z*g.Scale))
	return g.BaseHeight + float32(n)*g.Amplitude
}
