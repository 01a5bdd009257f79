package geom

import "math"

// Point2 is a point in the layer plane (X, Y), in millimetres. Its Z is
// implicit — carried by the containing Layer, never stored per-point.
type Point2 struct {
	X, Y float64
}

func point2Equal(a, b Point2) bool {
	return equal(a.X, b.X) && equal(a.Y, b.Y)
}

// Equal reports whether p and o are within Epsilon of each other on both
// axes.
func (p Point2) Equal(o Point2) bool {
	return point2Equal(p, o)
}

// LineSegment2D is one edge produced by intersecting a triangle with a
// slicing plane (see IntersectTrianglePlane). Its two endpoints are unordered in the
// sense that nothing distinguishes "start" from "end" until the layer
// builder walks it.
type LineSegment2D struct {
	A, B Point2
}

// Length returns the Euclidean length of the segment.
func (s LineSegment2D) Length() float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// EndpointsEqual reports whether s and o have the same two endpoints within
// Epsilon, regardless of orientation.
func (s LineSegment2D) EndpointsEqual(o LineSegment2D) bool {
	same := point2Equal(s.A, o.A) && point2Equal(s.B, o.B)
	swapped := point2Equal(s.A, o.B) && point2Equal(s.B, o.A)
	return same || swapped
}

// ConnectsTo reports whether s shares an endpoint with o within Epsilon, in
// either orientation, and is degenerate-safe: a segment never connects to
// itself via EndpointsEqual alone, so this checks all four endpoint pairs
// directly.
func (s LineSegment2D) ConnectsTo(o LineSegment2D) bool {
	return point2Equal(s.A, o.A) || point2Equal(s.A, o.B) ||
		point2Equal(s.B, o.A) || point2Equal(s.B, o.B)
}

// isZeroLength reports whether the segment's two endpoints coincide within
// Epsilon.
func (s LineSegment2D) isZeroLength() bool {
	return point2Equal(s.A, s.B)
}
