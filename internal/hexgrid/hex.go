// Package hexgrid holds the pixel geometry of a column-staggered grid of
// flat-topped hexagons: projection from (row, col) to screen, vertex
// generation, hit testing and scanline filling.
//
// Odd columns sit half a hexagon lower than even ones. Coordinates are
// integer screen pixels with +y pointing down.
package hexgrid

import (
	"image"
	"math"
)

// Margin is the fixed screen inset applied before any camera offset.
const Margin = 50

var sqrt3 = math.Sqrt(3)

// Cell identifies one tile.
type Cell struct {
	Row, Col int
}

// ColSpacing is the horizontal distance between adjacent column centers.
// Integer division keeps it constant across the grid at odd radii.
func ColSpacing(radius int) int { return radius * 3 / 2 }

// RowSpacing is the vertical distance between adjacent row centers.
func RowSpacing(radius int) float64 { return float64(radius) * sqrt3 }

// Center returns the pixel center of tile (row, col) for the given hex
// radius, translated by the camera offset. radius must be positive.
//
// The row position is truncated before the odd-column stagger is added,
// and the stagger result is truncated again.
func Center(row, col, radius int, offset image.Point) image.Point {
	x := col*ColSpacing(radius) + radius + Margin
	y := int(float64(row)*RowSpacing(radius) + float64(radius+Margin))
	if col%2 != 0 {
		y = int(float64(y) + RowSpacing(radius)/2)
	}
	return image.Pt(x+offset.X, y+offset.Y)
}

// Vertices returns the six corners of the hexagon around center, vertex i
// at angle i*60 degrees. With +y down the winding is clockwise on screen.
func Vertices(center image.Point, radius int) []image.Point {
	pts := make([]image.Point, 6)
	const step = math.Pi / 3
	for i := range pts {
		a := float64(i) * step
		pts[i] = image.Pt(
			int(float64(center.X)+float64(radius)*math.Cos(a)),
			int(float64(center.Y)+float64(radius)*math.Sin(a)),
		)
	}
	return pts
}

// Contains reports whether p lies inside the closed polygon using an
// even-odd ray cast. Points exactly on an edge may go either way.
func Contains(poly []image.Point, p image.Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := float64(b.X-a.X)*float64(p.Y-a.Y)/float64(b.Y-a.Y) + float64(a.X)
		if float64(p.X) < x {
			inside = !inside
		}
	}
	return inside
}
