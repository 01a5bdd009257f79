package geom

import "github.com/pkg/errors"

// Triangle is a face of a Mesh: three vertex indices into the mesh's vertex
// table, plus a unit normal. The normal is not relied upon for correctness
// by the intersector (see Mesh.Vertex); it is kept because loaders (STL,
// 3MF) always carry one and downstream consumers may want it for shading.
type Triangle struct {
	V      [3]int
	Normal Vector3
}

// Mesh is an ordered vertex table and an ordered triangle table, plus a
// cached bounding box. A Mesh exclusively owns both tables; Triangles
// reference vertices by index and never copy coordinates, so large meshes
// can be shared read-only across slicing workers without cloning.
//
// A Mesh is constructed once by a loader (internal/meshio) or a fixture
// generator (internal/fixture) and is treated as immutable by everything
// downstream.
type Mesh struct {
	Vertices  []Point3
	Triangles []Triangle
	Bounds    BoundingBox
}

// NewMesh builds a Mesh from a vertex table and triangle table, validating
// that every vertex is finite and every triangle's indices are in range,
// then computing the bounding box. It returns ErrInvalidGeometry on the
// first violation found.
func NewMesh(vertices []Point3, triangles []Triangle) (*Mesh, error) {
	for i, v := range vertices {
		if !v.Finite() {
			return nil, errors.Wrapf(ErrInvalidGeometry, "vertex %d has non-finite coordinate %+v", i, v)
		}
	}
	for i, t := range triangles {
		for _, idx := range t.V {
			if idx < 0 || idx >= len(vertices) {
				return nil, errors.Wrapf(ErrInvalidGeometry, "triangle %d references out-of-range vertex index %d (have %d vertices)", i, idx, len(vertices))
			}
		}
	}

	m := &Mesh{Vertices: vertices, Triangles: triangles}
	if len(vertices) > 0 {
		m.Bounds = BoundsOf(vertices)
	}
	return m, nil
}

// Vertex resolves one of a triangle's three corners to its Point3.
func (m *Mesh) Vertex(t Triangle, corner int) Point3 {
	return m.Vertices[t.V[corner]]
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
