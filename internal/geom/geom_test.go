package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Point3{X: 1, Y: 2, Z: 3}
	b := Point3{X: 4, Y: 1, Z: 0}

	v := a.Sub(b)
	if v != (Vector3{X: -3, Y: 1, Z: 3}) {
		t.Errorf("Sub = %+v, want {-3 1 3}", v)
	}

	p := b.Add(v)
	if p != a {
		t.Errorf("b.Add(a.Sub(b)) = %+v, want %+v", p, a)
	}

	scaled := v.Scale(2)
	if scaled != (Vector3{X: -6, Y: 2, Z: 6}) {
		t.Errorf("Scale(2) = %+v, want {-6 2 6}", scaled)
	}
}

func TestFinite(t *testing.T) {
	if !(Point3{X: 1, Y: 2, Z: 3}).Finite() {
		t.Error("ordinary point reported non-finite")
	}
	if (Point3{X: math.NaN(), Y: 0, Z: 0}).Finite() {
		t.Error("NaN point reported finite")
	}
	if (Point3{X: math.Inf(1), Y: 0, Z: 0}).Finite() {
		t.Error("+Inf point reported finite")
	}
}

func TestBoundsOf(t *testing.T) {
	pts := []Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: -1, Z: 2},
		{X: -1, Y: 1, Z: 1},
	}
	bb := BoundsOf(pts)
	want := BoundingBox{Min: Point3{X: -1, Y: -1, Z: 0}, Max: Point3{X: 1, Y: 1, Z: 2}}
	if bb != want {
		t.Errorf("BoundsOf = %+v, want %+v", bb, want)
	}
}

func TestBoundsOfEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BoundsOf(nil) did not panic")
		}
	}()
	BoundsOf(nil)
}

func TestOverlapsZ(t *testing.T) {
	bb := BoundingBox{Min: Point3{Z: 1}, Max: Point3{Z: 5}}
	if !bb.OverlapsZ(2, 3) {
		t.Error("expected overlap for range inside box")
	}
	if !bb.OverlapsZ(0, 1) {
		t.Error("expected overlap at exact lower boundary")
	}
	if bb.OverlapsZ(10, 20) {
		t.Error("did not expect overlap for disjoint range")
	}
}
