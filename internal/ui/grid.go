package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/2048civ/2048civ/internal/core"
	"github.com/2048civ/2048civ/internal/hexgrid"
)

// visibleCells calls fn for every tile that may intersect the w x h
// viewport, row by row.
func visibleCells(l hexgrid.Layout, w, h int, fn func(hexgrid.Cell)) {
	rowLo, rowHi, colLo, colHi, ok := l.Range(image.Rect(0, 0, w, h))
	if !ok {
		return
	}
	for r := rowLo; r <= rowHi; r++ {
		for c := colLo; c <= colHi; c++ {
			fn(hexgrid.Cell{Row: r, Col: c})
		}
	}
}

// drawMap fills and outlines every visible tile, then re-strokes the
// selected one on top.
func drawMap(dst *ebiten.Image, grid *core.Grid, l hexgrid.Layout, w, h int, sel hexgrid.Cell, hasSel bool) int {
	drawn := 0
	visibleCells(l, w, h, func(c hexgrid.Cell) {
		poly := l.Polygon(c)
		fill := terrainColor(grid.At(c.Row, c.Col))
		for _, s := range hexgrid.FillSpans(poly) {
			drawSpan(dst, s, fill)
		}
		strokePolygon(dst, poly, outlineColor(fill))
		drawn++
	})
	if hasSel && grid.InBounds(sel.Row, sel.Col) {
		strokePolygon(dst, l.Polygon(sel), colSelection)
	}
	return drawn
}
