package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/2048civ/2048civ/internal/hexgrid"
)

// The draw primitives below are variables so tests can override them to
// capture draw calls without a graphics device.

var fillScreen = func(dst *ebiten.Image, c color.Color) {
	dst.Fill(c)
}

// drawSpan paints one scanline run, both ends inclusive.
var drawSpan = func(dst *ebiten.Image, s hexgrid.Span, c color.Color) {
	vector.DrawFilledRect(dst, float32(s.X0), float32(s.Y), float32(s.X1-s.X0+1), 1, c, false)
}

// strokePolygon draws the closed outline of pts.
var strokePolygon = func(dst *ebiten.Image, pts []image.Point, c color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
	}
}

var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

var drawText = func(dst *ebiten.Image, s string, face text.Face, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

var measureText = func(s string, face text.Face) (w, h int) {
	fw, fh := text.Measure(s, face, 0)
	return int(fw + 0.5), int(fh + 0.5)
}

var debugPrint = ebitenutil.DebugPrintAt

var setWindowTitle = ebiten.SetWindowTitle
