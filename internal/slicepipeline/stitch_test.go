package slicepipeline

import (
	"testing"

	"github.com/chazu/lignin-slicer/internal/geom"
)

func TestStitchContoursClosesSquare(t *testing.T) {
	segs := []geom.LineSegment2D{
		{A: geom.Point2{X: 0, Y: 0}, B: geom.Point2{X: 1, Y: 0}},
		{A: geom.Point2{X: 1, Y: 0}, B: geom.Point2{X: 1, Y: 1}},
		{A: geom.Point2{X: 1, Y: 1}, B: geom.Point2{X: 0, Y: 1}},
		{A: geom.Point2{X: 0, Y: 1}, B: geom.Point2{X: 0, Y: 0}},
	}
	polys, warnings := StitchContours(segs, 0)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if len(polys[0].Vertices) != 5 {
		t.Errorf("got %d vertices, want 5 (4 distinct + repeated close)", len(polys[0].Vertices))
	}
}

func TestStitchContoursHandlesShuffledOrder(t *testing.T) {
	segs := []geom.LineSegment2D{
		{A: geom.Point2{X: 1, Y: 1}, B: geom.Point2{X: 0, Y: 1}},
		{A: geom.Point2{X: 0, Y: 0}, B: geom.Point2{X: 1, Y: 0}},
		{A: geom.Point2{X: 0, Y: 1}, B: geom.Point2{X: 0, Y: 0}},
		{A: geom.Point2{X: 1, Y: 0}, B: geom.Point2{X: 1, Y: 1}},
	}
	polys, warnings := StitchContours(segs, 0)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
}

func TestStitchContoursReportsOpenContour(t *testing.T) {
	segs := []geom.LineSegment2D{
		{A: geom.Point2{X: 0, Y: 0}, B: geom.Point2{X: 1, Y: 0}},
		{A: geom.Point2{X: 1, Y: 0}, B: geom.Point2{X: 1, Y: 1}},
		// Missing the closing segments back to (0,0).
	}
	polys, warnings := StitchContours(segs, 3)
	if len(polys) != 0 {
		t.Errorf("got %d closed polygons, want 0", len(polys))
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].LayerIndex != 3 {
		t.Errorf("warning LayerIndex = %d, want 3", warnings[0].LayerIndex)
	}
}

func TestStitchContoursTwoIndependentSquares(t *testing.T) {
	square := func(x0, y0 float64) []geom.LineSegment2D {
		return []geom.LineSegment2D{
			{A: geom.Point2{X: x0, Y: y0}, B: geom.Point2{X: x0 + 1, Y: y0}},
			{A: geom.Point2{X: x0 + 1, Y: y0}, B: geom.Point2{X: x0 + 1, Y: y0 + 1}},
			{A: geom.Point2{X: x0 + 1, Y: y0 + 1}, B: geom.Point2{X: x0, Y: y0 + 1}},
			{A: geom.Point2{X: x0, Y: y0 + 1}, B: geom.Point2{X: x0, Y: y0}},
		}
	}
	segs := append(square(0, 0), square(10, 10)...)
	polys, warnings := StitchContours(segs, 0)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
}
