package ui

import (
	"image"

	"github.com/2048civ/2048civ/internal/hexgrid"
	game_log "github.com/2048civ/2048civ/internal/log"
	"github.com/2048civ/2048civ/internal/utils"
)

const (
	MinRadius = 8
	MaxRadius = 120

	// ZoomOutFactor is the exact inverse of ZoomInFactor rather than the
	// original viewer's 0.9, which drifts (40 -> 64 -> 38 over five steps
	// each way). With the inverse, n steps in then n steps out land back on
	// the starting radius unless MinRadius/MaxRadius clamped on the way.
	ZoomInFactor  = 1.1
	ZoomOutFactor = 1 / ZoomInFactor
)

// Camera owns zoom (hex radius) & pan offset and keeps the map glued to
// the viewport.
type Camera struct {
	Radius  int
	OffsetX int
	OffsetY int

	rows, cols   int
	viewW, viewH int
	bounds       hexgrid.Bounds
	logger       *game_log.Logger
}

func NewCamera(rows, cols, radius, viewW, viewH int, logger *game_log.Logger) *Camera {
	c := &Camera{
		Radius: utils.Clamp(radius, MinRadius, MaxRadius),
		rows:   rows,
		cols:   cols,
		viewW:  viewW,
		viewH:  viewH,
		logger: logger,
	}
	c.RecomputeBounds()
	c.Clamp()
	return c
}

func (c *Camera) Offset() image.Point { return image.Pt(c.OffsetX, c.OffsetY) }

func (c *Camera) Bounds() hexgrid.Bounds { return c.bounds }

func (c *Camera) Viewport() (w, h int) { return c.viewW, c.viewH }

// Layout is the grid as currently placed on screen.
func (c *Camera) Layout() hexgrid.Layout {
	return hexgrid.Layout{Rows: c.rows, Cols: c.cols, Radius: c.Radius, Offset: c.Offset()}
}

// RecomputeBounds refreshes the world-space map extent. Needed after any
// radius or grid size change; panning does not affect it.
func (c *Camera) RecomputeBounds() {
	c.bounds = hexgrid.WorldBounds(c.rows, c.cols, c.Radius)
}

// SetViewport records a new screen size and re-clamps.
func (c *Camera) SetViewport(w, h int) {
	if w == c.viewW && h == c.viewH {
		return
	}
	c.viewW, c.viewH = w, h
	c.Clamp()
}

func (c *Camera) Clamp() {
	p := ClampOffset(c.Offset(), c.bounds, c.viewW, c.viewH)
	c.OffsetX, c.OffsetY = p.X, p.Y
}

// Pan moves the camera to start+delta, then clamps.
func (c *Camera) Pan(start, delta image.Point) {
	p := start.Add(delta)
	c.OffsetX, c.OffsetY = p.X, p.Y
	c.Clamp()
}

// Zoom steps the radius in (dir > 0) or out (dir < 0) keeping anchor
// visually fixed. It reports whether the radius changed.
func (c *Camera) Zoom(dir int, anchor image.Point) bool {
	old := c.Radius
	next := ZoomRadius(old, dir)
	if next == old {
		return false
	}
	scale := float64(next) / float64(old)
	c.OffsetX = anchor.X - utils.Round(float64(anchor.X-c.OffsetX)*scale)
	c.OffsetY = anchor.Y - utils.Round(float64(anchor.Y-c.OffsetY)*scale)
	c.Radius = next
	c.RecomputeBounds()
	c.Clamp()
	c.logger.Debugf("[CAMERA] zoom %d -> %d anchor=%v offset=(%d,%d)", old, next, anchor, c.OffsetX, c.OffsetY)
	return true
}

// ZoomRadius applies one zoom step to radius and clamps the result to
// [MinRadius, MaxRadius].
func ZoomRadius(radius, dir int) int {
	switch {
	case dir > 0:
		radius = utils.Round(float64(radius) * ZoomInFactor)
	case dir < 0:
		radius = utils.Round(float64(radius) * ZoomOutFactor)
	}
	return utils.Clamp(radius, MinRadius, MaxRadius)
}

// ClampOffset keeps the map's pixel box (b translated by off) attached to
// a viewW x viewH viewport. On an axis where the map is smaller than the
// viewport the map is centered instead.
func ClampOffset(off image.Point, b hexgrid.Bounds, viewW, viewH int) image.Point {
	return image.Pt(
		clampAxis(off.X, b.MinX, b.MaxX, viewW),
		clampAxis(off.Y, b.MinY, b.MaxY, viewH),
	)
}

func clampAxis(off, lo, hi, view int) int {
	low := view - hi
	high := -lo
	if low > high {
		return (low + high) / 2
	}
	return utils.Clamp(off, low, high)
}
