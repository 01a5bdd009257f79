package geom

import "testing"

func TestPoint2Equal(t *testing.T) {
	a := Point2{X: 1, Y: 2}
	b := Point2{X: 1 + Epsilon/2, Y: 2}
	if !a.Equal(b) {
		t.Error("points within epsilon/2 should be equal")
	}
	c := Point2{X: 1.1, Y: 2}
	if a.Equal(c) {
		t.Error("points 0.1 apart should not be equal")
	}
}

func TestLineSegmentLength(t *testing.T) {
	s := LineSegment2D{A: Point2{X: 0, Y: 0}, B: Point2{X: 3, Y: 4}}
	if got := s.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestEndpointsEqualIgnoresOrientation(t *testing.T) {
	a := LineSegment2D{A: Point2{X: 0, Y: 0}, B: Point2{X: 1, Y: 1}}
	b := LineSegment2D{A: Point2{X: 1, Y: 1}, B: Point2{X: 0, Y: 0}}
	if !a.EndpointsEqual(b) {
		t.Error("segments with swapped endpoints should be equal")
	}
	c := LineSegment2D{A: Point2{X: 0, Y: 0}, B: Point2{X: 2, Y: 2}}
	if a.EndpointsEqual(c) {
		t.Error("segments with different endpoints should not be equal")
	}
}

func TestConnectsTo(t *testing.T) {
	a := LineSegment2D{A: Point2{X: 0, Y: 0}, B: Point2{X: 1, Y: 0}}
	b := LineSegment2D{A: Point2{X: 1, Y: 0}, B: Point2{X: 1, Y: 1}}
	if !a.ConnectsTo(b) {
		t.Error("segments sharing an endpoint should connect")
	}
	c := LineSegment2D{A: Point2{X: 5, Y: 5}, B: Point2{X: 6, Y: 6}}
	if a.ConnectsTo(c) {
		t.Error("disjoint segments should not connect")
	}
}

func TestIsZeroLength(t *testing.T) {
	s := LineSegment2D{A: Point2{X: 1, Y: 1}, B: Point2{X: 1, Y: 1}}
	if !s.isZeroLength() {
		t.Error("coincident-endpoint segment should be zero length")
	}
}
