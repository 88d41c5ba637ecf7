package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/2048civ/2048civ/internal/hexgrid"
)

// frame runs one Update with the given pointer state.
func frame(t *testing.T, g *Game, p image.Point, pressed bool, wheelY float64, keys ...ebiten.Key) error {
	t.Helper()
	restore := SetInputForTest(
		func() (int, int) { return p.X, p.Y },
		func(b ebiten.MouseButton) bool { return pressed && b == ebiten.MouseButtonLeft },
		func(k ebiten.Key) bool {
			for _, want := range keys {
				if k == want {
					return true
				}
			}
			return false
		},
		func() (float64, float64) { return 0, wheelY },
	)
	defer restore()
	return g.Update()
}

// click presses and releases on consecutive frames.
func click(t *testing.T, g *Game, p image.Point) {
	t.Helper()
	frame(t, g, p, true, 0)
	frame(t, g, p, false, 0)
}

type drawLog struct {
	fills    int
	spans    int
	outlines []color.Color
	rects    []image.Rectangle
	texts    []string
	debug    []string
	titles   []string
}

// captureDraws swaps every draw primitive for a recorder until the test ends.
func captureDraws(t *testing.T) *drawLog {
	t.Helper()
	l := &drawLog{}
	oldFill, oldSpan, oldStroke := fillScreen, drawSpan, strokePolygon
	oldRect, oldText, oldDebug, oldTitle := drawRect, drawText, debugPrint, setWindowTitle
	fillScreen = func(*ebiten.Image, color.Color) { l.fills++ }
	drawSpan = func(*ebiten.Image, hexgrid.Span, color.Color) { l.spans++ }
	strokePolygon = func(_ *ebiten.Image, _ []image.Point, c color.Color) { l.outlines = append(l.outlines, c) }
	drawRect = func(_ *ebiten.Image, r image.Rectangle, _ color.Color) { l.rects = append(l.rects, r) }
	drawText = func(_ *ebiten.Image, s string, _ text.Face, _, _ int, _ color.Color) { l.texts = append(l.texts, s) }
	debugPrint = func(_ *ebiten.Image, s string, _, _ int) { l.debug = append(l.debug, s) }
	setWindowTitle = func(s string) { l.titles = append(l.titles, s) }
	t.Cleanup(func() {
		fillScreen, drawSpan, strokePolygon = oldFill, oldSpan, oldStroke
		drawRect, drawText, debugPrint, setWindowTitle = oldRect, oldText, oldDebug, oldTitle
	})
	return l
}
