package geom

import "testing"

func unitSquareCCW() Polygon {
	return Polygon{Vertices: []Point2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}}
}

func TestSignedAreaAndWinding(t *testing.T) {
	square := unitSquareCCW()
	if area := square.SignedArea(); area != 1 {
		t.Errorf("SignedArea = %v, want 1", area)
	}
	if square.IsClockwise() {
		t.Error("CCW square reported clockwise")
	}

	reversed := square.Reversed()
	if area := reversed.SignedArea(); area != -1 {
		t.Errorf("Reversed SignedArea = %v, want -1", area)
	}
	if !reversed.IsClockwise() {
		t.Error("reversed square should be clockwise")
	}
}

func TestIsDegenerate(t *testing.T) {
	line := Polygon{Vertices: []Point2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}}
	if !line.IsDegenerate() {
		t.Error("collinear triangle should be degenerate")
	}
	if unitSquareCCW().IsDegenerate() {
		t.Error("unit square should not be degenerate")
	}
}

func TestBounds(t *testing.T) {
	bb := unitSquareCCW().Bounds()
	want := BoundingBox2D{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	if bb != want {
		t.Errorf("Bounds = %+v, want %+v", bb, want)
	}
}

func TestContainsInteriorAndExterior(t *testing.T) {
	square := unitSquareCCW()
	if !square.Contains(Point2{X: 0.5, Y: 0.5}) {
		t.Error("centre point should be inside")
	}
	if square.Contains(Point2{X: 2, Y: 2}) {
		t.Error("far exterior point should not be inside")
	}
}

func TestContainsBoundaryIsInside(t *testing.T) {
	square := unitSquareCCW()
	cases := []Point2{
		{X: 0, Y: 0.5}, {X: 1, Y: 0.5}, {X: 0.5, Y: 0}, {X: 0.5, Y: 1}, {X: 0, Y: 0},
	}
	for _, pt := range cases {
		if !square.Contains(pt) {
			t.Errorf("boundary point %+v should be inside", pt)
		}
	}
}

func TestContainsLargerSquare(t *testing.T) {
	big := Polygon{Vertices: []Point2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	if !big.Contains(Point2{X: 5, Y: 5}) {
		t.Error("centre of big square should be inside")
	}
}
