package ui

import (
	"image/color"
	"testing"

	"github.com/2048civ/2048civ/internal/core"
)

func TestTerrainColors(t *testing.T) {
	seen := map[color.RGBA]core.Terrain{}
	for tr := core.Terrain(0); tr < core.TerrainCount; tr++ {
		c := terrainColor(tr)
		if prev, dup := seen[c]; dup {
			t.Fatalf("%v and %v share colour %v", prev, tr, c)
		}
		seen[c] = tr
	}
	if terrainColor(core.Terrain(42)) != colUnknown {
		t.Fatalf("unknown terrain colour")
	}
}

func TestOutlineColorDarkens(t *testing.T) {
	got := outlineColor(color.RGBA{60, 140, 30, 255})
	want := color.RGBA{20, 100, 0, 255}
	if got != want {
		t.Fatalf("outline=%v want %v", got, want)
	}
}
