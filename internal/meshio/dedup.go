package meshio

import (
	"math"

	"github.com/chazu/lignin-slicer/internal/geom"
)

// vertexDedup assigns a stable index to each Point3 it sees, merging points
// that land in the same geom.Epsilon-sized grid cell. STL files routinely
// repeat a shared-edge vertex's coordinates verbatim across the two
// triangles that meet there, so a simple quantized-coordinate map is enough
// in practice — no spatial tree needed.
type vertexDedup struct {
	index    map[gridKey]int
	vertices []geom.Point3
}

type gridKey struct {
	x, y, z int64
}

func newVertexDedup() *vertexDedup {
	return &vertexDedup{index: make(map[gridKey]int)}
}

func (d *vertexDedup) indexOf(p geom.Point3) int {
	key := gridKey{
		x: quantize(p.X),
		y: quantize(p.Y),
		z: quantize(p.Z),
	}
	if i, ok := d.index[key]; ok {
		return i
	}
	i := len(d.vertices)
	d.vertices = append(d.vertices, p)
	d.index[key] = i
	return i
}

func quantize(v float64) int64 {
	return int64(math.Round(v / geom.Epsilon))
}
