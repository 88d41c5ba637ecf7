package ui

import (
	"image"

	"github.com/2048civ/2048civ/internal/hexgrid"
	game_log "github.com/2048civ/2048civ/internal/log"
)

// Controller turns pointer gestures into selection, pan and zoom. It is
// either idle or dragging; wheel events are accepted in both states.
type Controller struct {
	cam    *Camera
	sel    Selection
	drag   dragState
	logger *game_log.Logger
}

func NewController(cam *Camera, logger *game_log.Logger) *Controller {
	return &Controller{cam: cam, logger: logger}
}

func (c *Controller) Selection() (hexgrid.Cell, bool) { return c.sel.Cell() }

func (c *Controller) Dragging() bool { return c.drag.active }

// PointerDown hit-tests p, toggles or clears the selection, and starts a
// drag whether or not a tile was hit so empty space can be panned.
func (c *Controller) PointerDown(p image.Point) {
	if cell, ok := c.cam.Layout().CellAt(p); ok {
		c.sel.Toggle(cell)
		c.logger.Debugf("[INPUT] press %v hit (%d,%d)", p, cell.Row, cell.Col)
	} else {
		c.sel.Clear()
		c.logger.Debugf("[INPUT] press %v missed", p)
	}
	c.drag = dragState{active: true, start: p, startOffset: c.cam.Offset()}
}

// PointerMove pans relative to where the drag started.
func (c *Controller) PointerMove(p image.Point) {
	if !c.drag.active {
		return
	}
	c.cam.Pan(c.drag.startOffset, p.Sub(c.drag.start))
}

// PointerUp ends any drag. The selection is left alone.
func (c *Controller) PointerUp() {
	c.drag = dragState{}
}

// Wheel zooms one step toward dir around the pointer. While dragging, the
// drag origin is rebased so the next move continues from the new offset.
func (c *Controller) Wheel(dir int, p image.Point) {
	if dir == 0 {
		return
	}
	if c.cam.Zoom(dir, p) && c.drag.active {
		c.drag.start = p
		c.drag.startOffset = c.cam.Offset()
	}
}
