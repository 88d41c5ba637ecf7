package hexgrid

import (
	"image"
	"math"
)

// Bounds is the inclusive pixel extent of every vertex of a grid.
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

func (b Bounds) Width() int  { return b.MaxX - b.MinX }
func (b Bounds) Height() int { return b.MaxY - b.MinY }

// WorldBounds returns min/max over the vertices of every tile with no
// camera offset applied. An empty grid yields the zero Bounds.
//
// Only the first and last rows are visited. A vertex's x depends on the
// column alone and its y never decreases with the row, so every extreme
// lies on one of them.
func WorldBounds(rows, cols, radius int) Bounds {
	if rows <= 0 || cols <= 0 {
		return Bounds{}
	}
	b := Bounds{MinX: math.MaxInt, MaxX: math.MinInt, MinY: math.MaxInt, MaxY: math.MinInt}
	fold := func(r, c int) {
		for _, v := range Vertices(Center(r, c, radius, image.Point{}), radius) {
			b.MinX = min(b.MinX, v.X)
			b.MaxX = max(b.MaxX, v.X)
			b.MinY = min(b.MinY, v.Y)
			b.MaxY = max(b.MaxY, v.Y)
		}
	}
	for c := 0; c < cols; c++ {
		fold(0, c)
		fold(rows-1, c)
	}
	return b
}

// Layout is a grid placed on screen at a given zoom and camera offset.
type Layout struct {
	Rows, Cols int
	Radius     int
	Offset     image.Point
}

// TileRadius is the radius tiles are drawn and hit-tested with, leaving
// a one pixel gutter between neighbours.
func (l Layout) TileRadius() int {
	return max(l.Radius-1, 1)
}

func (l Layout) Center(c Cell) image.Point {
	return Center(c.Row, c.Col, l.Radius, l.Offset)
}

// Polygon returns the drawn outline of tile c in screen space.
func (l Layout) Polygon(c Cell) []image.Point {
	return Vertices(l.Center(c), l.TileRadius())
}

// Range returns the inclusive row and column ranges of tiles whose
// hexagon may intersect rect. ok is false when no tile can.
func (l Layout) Range(rect image.Rectangle) (rowLo, rowHi, colLo, colHi int, ok bool) {
	if l.Rows <= 0 || l.Cols <= 0 || l.Radius <= 0 || rect.Empty() {
		return 0, 0, 0, 0, false
	}
	w, h := float64(ColSpacing(l.Radius)), RowSpacing(l.Radius)
	origin := image.Pt(l.Offset.X+l.Radius+Margin, l.Offset.Y+l.Radius+Margin)
	reach := float64(l.Radius + 2)

	x0 := float64(rect.Min.X-origin.X) - reach
	x1 := float64(rect.Max.X-1-origin.X) + reach
	y0 := float64(rect.Min.Y-origin.Y) - reach - h/2
	y1 := float64(rect.Max.Y-1-origin.Y) + reach

	colLo = max(int(math.Floor(x0/w)), 0)
	colHi = min(int(math.Ceil(x1/w)), l.Cols-1)
	rowLo = max(int(math.Floor(y0/h)), 0)
	rowHi = min(int(math.Ceil(y1/h)), l.Rows-1)
	if colLo > colHi || rowLo > rowHi {
		return 0, 0, 0, 0, false
	}
	return rowLo, rowHi, colLo, colHi, true
}

// HitTest scans every tile in row-major order and returns the first whose
// polygon contains p.
func (l Layout) HitTest(p image.Point) (Cell, bool) {
	return firstHit(0, l.Rows-1, 0, l.Cols-1, l.Polygon, p)
}

// CellAt gives the same answer as HitTest but inverts the projection first,
// so only the handful of tiles near p are tested.
func (l Layout) CellAt(p image.Point) (Cell, bool) {
	rowLo, rowHi, colLo, colHi, ok := l.Range(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	if !ok {
		return Cell{}, false
	}
	return firstHit(rowLo, rowHi, colLo, colHi, l.Polygon, p)
}

// firstHit walks the inclusive ranges in row-major order and returns the
// first cell whose polygon contains p. Overlapping tiles resolve to the
// lowest row, then the lowest column.
func firstHit(rowLo, rowHi, colLo, colHi int, poly func(Cell) []image.Point, p image.Point) (Cell, bool) {
	for r := rowLo; r <= rowHi; r++ {
		for c := colLo; c <= colHi; c++ {
			cell := Cell{r, c}
			if Contains(poly(cell), p) {
				return cell, true
			}
		}
	}
	return Cell{}, false
}
