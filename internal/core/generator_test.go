package core

import "testing"

func TestGeneratorsProduceValidTerrain(t *testing.T) {
	for _, name := range []string{"gradient", "noise"} {
		gen, ok := GeneratorByName(name, 7)
		if !ok {
			t.Fatalf("generator %q not found", name)
		}
		g, _ := NewGrid(40, 40)
		g.Fill(gen)
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				if !g.At(r, c).Valid() {
					t.Fatalf("%s: invalid terrain %d at (%d,%d)", name, g.At(r, c), r, c)
				}
			}
		}
	}
}

func TestGradientStaysNearDiagonal(t *testing.T) {
	gen := NewGradientGenerator(1)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			base := (r + 2*c) % int(TerrainCount)
			got := int(gen.Terrain(r, c))
			d := (got - base + int(TerrainCount)) % int(TerrainCount)
			if d > 2 {
				t.Fatalf("(%d,%d)=%d drifted %d from %d", r, c, got, d, base)
			}
		}
	}
}

func TestGeneratorsAreSeeded(t *testing.T) {
	a := NewGradientGenerator(42)
	b := NewGradientGenerator(42)
	for i := 0; i < 50; i++ {
		if a.Terrain(i, i) != b.Terrain(i, i) {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
	n1, n2 := NewNoiseGenerator(3), NewNoiseGenerator(3)
	if n1.Terrain(5, 9) != n2.Terrain(5, 9) {
		t.Fatalf("noise generator not deterministic")
	}
}

func TestUnknownGeneratorFallsBack(t *testing.T) {
	gen, ok := GeneratorByName("voronoi", 1)
	if ok {
		t.Fatalf("unknown name reported ok")
	}
	if _, isGradient := gen.(*GradientGenerator); !isGradient {
		t.Fatalf("fallback is %T", gen)
	}
}

func TestTerrainString(t *testing.T) {
	if TerrainMountain.String() != "Mountain" || TerrainPlains.String() != "Plains" {
		t.Fatalf("names wrong")
	}
	if Terrain(99).String() != "Unknown" {
		t.Fatalf("out of range name %q", Terrain(99).String())
	}
}
