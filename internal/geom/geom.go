// Package geom provides the 3D/2D primitives the slicing pipeline is built
// from: points, vectors, bounding boxes, triangles, meshes, 2D segments and
// polygons. Coordinate equality tests in this package (endpoint equality,
// vertex classification against a plane, closure, zero-area rejection) go
// through Epsilon; ordering comparisons such as ray-crossing tests and
// winding signs compare floats directly.
package geom

import "math"

// Epsilon is the single tolerance governing all coordinate comparisons in
// the slicing pipeline: vertex classification against a plane, segment
// endpoint equality, polygon closure, and zero-area rejection. Implementers
// downstream must not substitute a different tolerance — the test suite's
// fixtures are tuned to this exact value.
const Epsilon = 1e-9

// equal reports whether a and b are within Epsilon of each other.
func equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Point3 is a point in 3D space, in millimetres.
type Point3 struct {
	X, Y, Z float64
}

// Vector3 is a direction or offset in 3D space. It shares Point3's shape but
// a distinct name to keep point/vector arithmetic readable at call sites.
type Vector3 struct {
	X, Y, Z float64
}

// Sub returns a - b.
func (a Point3) Sub(b Point3) Vector3 {
	return Vector3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Add returns the point a translated by v.
func (a Point3) Add(v Vector3) Point3 {
	return Point3{X: a.X + v.X, Y: a.Y + v.Y, Z: a.Z + v.Z}
}

// Scale returns v scaled by f.
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Finite reports whether all three coordinates are finite (not NaN or Inf).
func (p Point3) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// BoundingBox is an axis-aligned range (Min, Max), both Point3, with
// Min.k <= Max.k for every axis k. It is undefined for empty point sets;
// callers must guard against that themselves (see BoundsOf).
type BoundingBox struct {
	Min, Max Point3
}

// BoundsOf computes the bounding box of a non-empty set of points. It
// panics if pts is empty — callers own the guard.
func BoundsOf(pts []Point3) BoundingBox {
	if len(pts) == 0 {
		panic("geom: BoundsOf called with empty point set")
	}
	bb := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < bb.Min.X {
			bb.Min.X = p.X
		}
		if p.Y < bb.Min.Y {
			bb.Min.Y = p.Y
		}
		if p.Z < bb.Min.Z {
			bb.Min.Z = p.Z
		}
		if p.X > bb.Max.X {
			bb.Max.X = p.X
		}
		if p.Y > bb.Max.Y {
			bb.Max.Y = p.Y
		}
		if p.Z > bb.Max.Z {
			bb.Max.Z = p.Z
		}
	}
	return bb
}

// OverlapsZ reports whether the closed interval [lo, hi] overlaps this box's
// Z range, expanded by Epsilon on both ends.
func (b BoundingBox) OverlapsZ(lo, hi float64) bool {
	return b.Min.Z <= hi+Epsilon && b.Max.Z >= lo-Epsilon
}
