package hexgrid

import (
	"image"
	"math"
	"slices"
)

// Span is one horizontal run of a filled polygon, inclusive of both ends.
type Span struct {
	Y, X0, X1 int
}

// FillSpans scan-converts poly. For every integer y between the lowest and
// highest vertex it intersects the non-horizontal edges, sorts the hits and
// pairs them up. A trailing unpaired hit is dropped.
func FillSpans(poly []image.Point) []Span {
	if len(poly) < 3 {
		return nil
	}
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	var spans []Span
	xs := make([]int, 0, len(poly))
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			if a.Y == b.Y {
				continue
			}
			y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
			if y < y0 || y >= y1 {
				continue
			}
			x := float64(a.X) + float64(y-a.Y)*float64(b.X-a.X)/float64(b.Y-a.Y)
			xs = append(xs, int(math.Floor(x+0.5)))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			spans = append(spans, Span{Y: y, X0: xs[i], X1: xs[i+1]})
		}
	}
	return spans
}
