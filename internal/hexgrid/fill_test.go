package hexgrid

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFillSpansRectangle(t *testing.T) {
	poly := []image.Point{{0, 0}, {10, 0}, {10, 5}, {0, 5}}
	var want []Span
	for y := 0; y < 5; y++ {
		want = append(want, Span{Y: y, X0: 0, X1: 10})
	}
	if diff := cmp.Diff(want, FillSpans(poly)); diff != "" {
		t.Fatalf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestFillSpansDegenerate(t *testing.T) {
	if got := FillSpans([]image.Point{{0, 0}, {5, 5}}); got != nil {
		t.Fatalf("two points produced %v", got)
	}
	flat := []image.Point{{0, 3}, {4, 3}, {9, 3}}
	if got := FillSpans(flat); len(got) != 0 {
		t.Fatalf("flat polygon produced %v", got)
	}
}

// A comb with ten teeth crosses a scanline twenty times.
func TestFillSpansManyIntersections(t *testing.T) {
	poly := []image.Point{{0, 12}}
	for k := 0; k < 10; k++ {
		poly = append(poly, image.Pt(2*k, 0), image.Pt(2*k+1, 0), image.Pt(2*k+1, 10))
		if k < 9 {
			poly = append(poly, image.Pt(2*k+2, 10))
		}
	}
	poly = append(poly, image.Pt(19, 12))

	var row []Span
	for _, s := range FillSpans(poly) {
		if s.Y == 5 {
			row = append(row, s)
		}
	}
	var want []Span
	for k := 0; k < 10; k++ {
		want = append(want, Span{Y: 5, X0: 2 * k, X1: 2*k + 1})
	}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Fatalf("comb row mismatch (-want +got):\n%s", diff)
	}
}

func TestFillSpansHexagonCoversCenter(t *testing.T) {
	ctr := image.Pt(90, 90)
	pts := Vertices(ctr, 39)
	spans := FillSpans(pts)
	if len(spans) == 0 {
		t.Fatalf("no spans")
	}
	covered := false
	for _, s := range spans {
		if s.X0 > s.X1 {
			t.Fatalf("inverted span %+v", s)
		}
		if s.Y == ctr.Y && s.X0 <= ctr.X && ctr.X <= s.X1 {
			covered = true
		}
	}
	if !covered {
		t.Fatalf("center row not filled")
	}
	if spans[0].Y != pts[4].Y {
		t.Fatalf("first span y=%d want top vertex y=%d", spans[0].Y, pts[4].Y)
	}
}
