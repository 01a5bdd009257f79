// Package fixture generates procedural test meshes for the demo CLI
// command, using github.com/deadsy/sdfx's signed-distance-field solids and
// marching-cubes tessellator. It exists so "slice a cube" works with no
// STL file on disk.
package fixture

import (
	"math"

	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
)

// meshCells controls marching-cubes tessellation resolution. Higher values
// produce smoother cylinders at the cost of triangle count and render
// time; 200 matches what a hand-drawn demo shape needs without taking
// seconds to tessellate.
const meshCells = 200

// Box returns a geom.Mesh for an axis-aligned box of the given dimensions,
// with its minimum corner at the origin.
func Box(x, y, z float64) (*geom.Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "fixture: building box SDF")
	}
	centered := sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2}))
	return toMesh(centered)
}

// Cylinder returns a geom.Mesh for a cylinder of the given height and
// radius, standing on the XY plane.
func Cylinder(height, radius float64) (*geom.Mesh, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, errors.Wrap(err, "fixture: building cylinder SDF")
	}
	return toMesh(sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2})))
}

// toMesh tessellates an SDF via uniform marching cubes and converts the
// resulting triangle soup into a geom.Mesh, deduplicating shared vertices
// the same way meshio's STL loader does.
func toMesh(s sdf.SDF3) (*geom.Mesh, error) {
	renderer := render.NewMarchingCubesUniform(meshCells)
	triangles := render.ToTriangles(s, renderer)

	index := make(map[gridKey]int)
	var vertices []geom.Point3
	tris := make([]geom.Triangle, 0, len(triangles))

	for _, t := range triangles {
		n := t.Normal()
		normal := geom.Vector3{X: n.X, Y: n.Y, Z: n.Z}
		var tri geom.Triangle
		tri.Normal = normal
		for j := 0; j < 3; j++ {
			v := t[j]
			p := geom.Point3{X: v.X, Y: v.Y, Z: v.Z}
			tri.V[j] = indexOf(index, &vertices, p)
		}
		tris = append(tris, tri)
	}

	return geom.NewMesh(vertices, tris)
}

type gridKey struct {
	x, y, z int64
}

func indexOf(index map[gridKey]int, vertices *[]geom.Point3, p geom.Point3) int {
	key := gridKey{quantize(p.X), quantize(p.Y), quantize(p.Z)}
	if i, ok := index[key]; ok {
		return i
	}
	i := len(*vertices)
	*vertices = append(*vertices, p)
	index[key] = i
	return i
}

func quantize(v float64) int64 {
	return int64(math.Round(v / geom.Epsilon))
}
