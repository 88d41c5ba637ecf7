package ui

import (
	"image/color"

	"github.com/2048civ/2048civ/internal/core"
	"github.com/2048civ/2048civ/internal/utils"
)

var (
	colBackground = color.RGBA{30, 30, 30, 255}
	colSelection  = color.NRGBA{255, 255, 0, 200}
	colInfoBG     = color.NRGBA{0, 0, 0, 160}
	colInfoText   = color.White
	colUnknown    = color.RGBA{200, 200, 200, 255}
)

var terrainColors = [core.TerrainCount]color.RGBA{
	core.TerrainPlains:   {170, 210, 120, 255},
	core.TerrainHills:    {190, 170, 110, 255},
	core.TerrainForest:   {60, 140, 60, 255},
	core.TerrainDesert:   {240, 220, 120, 255},
	core.TerrainWater:    {70, 130, 200, 255},
	core.TerrainMountain: {120, 120, 120, 255},
}

func terrainColor(t core.Terrain) color.RGBA {
	if !t.Valid() {
		return colUnknown
	}
	return terrainColors[t]
}

// outlineColor is c darkened by 40 per channel.
func outlineColor(c color.RGBA) color.RGBA {
	const d = 40
	return color.RGBA{
		utils.DarkenChannel(c.R, d),
		utils.DarkenChannel(c.G, d),
		utils.DarkenChannel(c.B, d),
		c.A,
	}
}
