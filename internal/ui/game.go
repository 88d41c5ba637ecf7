package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/2048civ/2048civ/internal/core"
	"github.com/2048civ/2048civ/internal/hexgrid"
	game_log "github.com/2048civ/2048civ/internal/log"
)

const DefaultTitle = "Hex Terrain Map"

// info box placement, top-left
const (
	infoX, infoY       = 15, 14
	infoPadX, infoPadY = 5, 4
)

type Options struct {
	Radius        int
	Width, Height int
	FontPath      string
	FontSize      int
}

type Game struct {
	grid   *core.Grid
	cam    *Camera
	ctrl   *Controller
	logger *game_log.Logger

	face  text.Face // nil when no font could be loaded
	title string
	info  string

	/* selection last reflected in title / info box */
	shown   hexgrid.Cell
	shownOK bool

	leftPrev bool
	debug    bool
	drawn    int // tiles drawn last frame
}

func New(grid *core.Grid, opts Options, logger *game_log.Logger) *Game {
	cam := NewCamera(grid.Rows(), grid.Cols(), opts.Radius, opts.Width, opts.Height, logger)
	g := &Game{
		grid:   grid,
		cam:    cam,
		ctrl:   NewController(cam, logger),
		logger: logger,
		title:  DefaultTitle,
	}
	if opts.FontPath != "" {
		face, err := loadFace(opts.FontPath, opts.FontSize)
		if err != nil {
			logger.Warnf("[FONT] %v; text rendering disabled", err)
		} else {
			g.face = face
			logger.Infof("[FONT] loaded %s at %dpx", opts.FontPath, opts.FontSize)
		}
	}
	logger.Infof("[GAME] %dx%d map, radius %d, viewport %dx%d", grid.Rows(), grid.Cols(), cam.Radius, opts.Width, opts.Height)
	return g
}

func (g *Game) Layout(w, h int) (int, int) {
	g.cam.SetViewport(w, h)
	return w, h
}

func (g *Game) Update() error {
	if isKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Infof("[GAME] quit requested")
		return ebiten.Termination
	}
	if isKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	x, y := cursorPosition()
	p := image.Pt(x, y)
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case left && !g.leftPrev:
		g.ctrl.PointerDown(p)
	case left:
		g.ctrl.PointerMove(p)
	case g.leftPrev:
		g.ctrl.PointerUp()
	}
	g.leftPrev = left

	if _, wy := wheel(); wy > 0 {
		g.ctrl.Wheel(1, p)
	} else if wy < 0 {
		g.ctrl.Wheel(-1, p)
	}

	g.syncSelection()
	return nil
}

// syncSelection pushes selection changes to the window title and info box.
func (g *Game) syncSelection() {
	cell, ok := g.ctrl.Selection()
	if ok == g.shownOK && cell == g.shown {
		return
	}
	g.shown, g.shownOK = cell, ok
	if ok {
		t := g.grid.At(cell.Row, cell.Col)
		g.title = fmt.Sprintf("Hex (%d,%d) - %s", cell.Row, cell.Col, t)
		g.info = fmt.Sprintf("Cell: (%d,%d)  Terrain: %s", cell.Row, cell.Col, t)
		g.logger.Infof("[GAME] selected (%d,%d) %s", cell.Row, cell.Col, t)
	} else {
		g.title = DefaultTitle
		g.info = ""
		g.logger.Debugf("[GAME] selection cleared")
	}
	setWindowTitle(g.title)
}

func (g *Game) Draw(screen *ebiten.Image) {
	fillScreen(screen, colBackground)
	w, h := g.cam.Viewport()
	sel, ok := g.ctrl.Selection()
	g.drawn = drawMap(screen, g.grid, g.cam.Layout(), w, h, sel, ok)
	g.drawInfo(screen)
	if g.debug {
		msg := fmt.Sprintf("radius %d  offset (%d,%d)  tiles %d  TPS %.1f",
			g.cam.Radius, g.cam.OffsetX, g.cam.OffsetY, g.drawn, ebiten.ActualTPS())
		debugPrint(screen, msg, infoX, h-20)
	}
}

func (g *Game) drawInfo(dst *ebiten.Image) {
	if g.face == nil || g.info == "" {
		return
	}
	tw, th := measureText(g.info, g.face)
	bg := image.Rect(infoX-infoPadX, infoY-infoPadY, infoX+tw+infoPadX, infoY+th+infoPadY)
	drawRect(dst, bg, colInfoBG)
	drawText(dst, g.info, g.face, infoX, infoY, colInfoText)
}
