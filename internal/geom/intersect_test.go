package geom

import "testing"

func meshOf(t *testing.T, verts []Point3, tri Triangle) (*Mesh, Triangle) {
	t.Helper()
	mesh, err := NewMesh(verts, []Triangle{tri})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return mesh, mesh.Triangles[0]
}

func TestIntersectTwoOneSplit(t *testing.T) {
	verts := []Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 2},
	}
	mesh, tri := meshOf(t, verts, Triangle{V: [3]int{0, 1, 2}})

	seg, ok := IntersectTrianglePlane(mesh, tri, 1)
	if !ok {
		t.Fatal("expected a segment for a 2-1 split")
	}
	if seg.isZeroLength() {
		t.Error("segment should not be zero length")
	}
}

func TestIntersectFullyAboveOrBelowYieldsNoSegment(t *testing.T) {
	verts := []Point3{
		{X: 0, Y: 0, Z: 5}, {X: 1, Y: 0, Z: 5}, {X: 0, Y: 1, Z: 5},
	}
	mesh, tri := meshOf(t, verts, Triangle{V: [3]int{0, 1, 2}})
	if _, ok := IntersectTrianglePlane(mesh, tri, 0); ok {
		t.Error("triangle entirely above the plane should yield no segment")
	}
	if _, ok := IntersectTrianglePlane(mesh, tri, 10); ok {
		t.Error("triangle entirely below the plane should yield no segment")
	}
}

func TestIntersectCoplanarYieldsNoSegment(t *testing.T) {
	verts := []Point3{
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	mesh, tri := meshOf(t, verts, Triangle{V: [3]int{0, 1, 2}})
	if _, ok := IntersectTrianglePlane(mesh, tri, 1); ok {
		t.Error("coplanar triangle should yield no segment")
	}
}

func TestIntersectTwoOnVertices(t *testing.T) {
	verts := []Point3{
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 5},
	}
	mesh, tri := meshOf(t, verts, Triangle{V: [3]int{0, 1, 2}})
	seg, ok := IntersectTrianglePlane(mesh, tri, 1)
	if !ok {
		t.Fatal("expected a segment between the two ON vertices")
	}
	if !seg.EndpointsEqual(LineSegment2D{A: Point2{X: 0, Y: 0}, B: Point2{X: 1, Y: 0}}) {
		t.Errorf("segment = %+v, want the shared edge at z=1", seg)
	}
}

func TestIntersectOneOnOneAboveOneBelow(t *testing.T) {
	verts := []Point3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 3},
		{X: 0, Y: 1, Z: -1},
	}
	mesh, tri := meshOf(t, verts, Triangle{V: [3]int{0, 1, 2}})
	seg, ok := IntersectTrianglePlane(mesh, tri, 1)
	if !ok {
		t.Fatal("expected a segment from the ON vertex to the crossing edge")
	}
	if !seg.A.Equal(Point2{X: 0, Y: 0}) && !seg.B.Equal(Point2{X: 0, Y: 0}) {
		t.Errorf("segment %+v should include the ON vertex at (0,0)", seg)
	}
}

func TestIntersectOneOnTwoAboveYieldsNoSegment(t *testing.T) {
	verts := []Point3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 5},
		{X: 0, Y: 1, Z: 5},
	}
	mesh, tri := meshOf(t, verts, Triangle{V: [3]int{0, 1, 2}})
	if _, ok := IntersectTrianglePlane(mesh, tri, 1); ok {
		t.Error("one ON vertex with the other two above should yield no segment (point touch)")
	}
}
