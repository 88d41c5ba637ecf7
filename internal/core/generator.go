package core

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Generator yields a terrain for one cell. Implementations must always
// return a valid Terrain.
type Generator interface {
	Terrain(row, col int) Terrain
}

// GradientGenerator produces a diagonal band pattern perturbed by a
// little random noise: (row + 2*col + rand(0..2)) mod TerrainCount.
type GradientGenerator struct {
	rng *rand.Rand
}

func NewGradientGenerator(seed int64) *GradientGenerator {
	return &GradientGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *GradientGenerator) Terrain(row, col int) Terrain {
	v := (row + 2*col + g.rng.Intn(3)) % int(TerrainCount)
	return Terrain(v)
}

// NoiseGenerator buckets normalized simplex noise into terrain kinds,
// giving contiguous regions instead of stripes.
type NoiseGenerator struct {
	noise     opensimplex.Noise
	frequency float64
	octaves   int
}

func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		noise:     opensimplex.NewNormalized(seed),
		frequency: 0.08,
		octaves:   3,
	}
}

func (g *NoiseGenerator) Terrain(row, col int) Terrain {
	var total, amp, norm float64 = 0, 1, 0
	freq := g.frequency
	for i := 0; i < g.octaves; i++ {
		total += g.noise.Eval2(float64(col)*freq, float64(row)*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	v := int(total / norm * float64(TerrainCount))
	if v < 0 {
		v = 0
	}
	if v >= int(TerrainCount) {
		v = int(TerrainCount) - 1
	}
	return Terrain(v)
}

// GeneratorByName maps a config name to a generator. ok is false for
// unknown names, in which case the gradient generator is returned.
func GeneratorByName(name string, seed int64) (gen Generator, ok bool) {
	switch name {
	case "noise":
		return NewNoiseGenerator(seed), true
	case "gradient", "":
		return NewGradientGenerator(seed), true
	default:
		return NewGradientGenerator(seed), false
	}
}
