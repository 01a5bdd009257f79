package geom

// vertexClass classifies a triangle vertex relative to a slicing plane.
type vertexClass int

const (
	below vertexClass = iota
	on
	above
)

func classify(z, planeZ float64) vertexClass {
	d := z - planeZ
	switch {
	case d > Epsilon:
		return above
	case d < -Epsilon:
		return below
	default:
		return on
	}
}

// IntersectTrianglePlane intersects one triangle (resolved to its three
// Point3 corners via m.Vertex) with the horizontal plane Z = planeZ. It
// returns the single resulting LineSegment2D and true, or the zero segment
// and false if the triangle does not produce one (entirely above/below,
// coplanar, or a degenerate zero-length result).
//
// Vertices are classified first (above/on/below), then only the edges that
// actually straddle the plane are interpolated — this is what makes the
// intersector robust to vertices that land exactly on the plane, a routine
// occurrence since layer heights are rational and STL meshes commonly carry
// axis-aligned faces.
func IntersectTrianglePlane(m *Mesh, t Triangle, planeZ float64) (LineSegment2D, bool) {
	var v [3]Point3
	var c [3]vertexClass
	for i := 0; i < 3; i++ {
		v[i] = m.Vertex(t, i)
		c[i] = classify(v[i].Z, planeZ)
	}

	nAbove, nOn, nBelow := 0, 0, 0
	for _, cl := range c {
		switch cl {
		case above:
			nAbove++
		case on:
			nOn++
		case below:
			nBelow++
		}
	}

	var seg LineSegment2D
	switch {
	case nOn == 3:
		// Coplanar triangle: the segment would be ambiguous (the whole
		// triangle lies in the plane). Skip it.
		return LineSegment2D{}, false

	case nAbove == 3 || nBelow == 3:
		return LineSegment2D{}, false

	case nOn == 2:
		// The two ON vertices are themselves the segment.
		var onPts []Point2
		for i := 0; i < 3; i++ {
			if c[i] == on {
				onPts = append(onPts, Point2{X: v[i].X, Y: v[i].Y})
			}
		}
		seg = LineSegment2D{A: onPts[0], B: onPts[1]}

	case nOn == 1:
		// One ON vertex, plus either (2 above, 0 below) / (0 above, 2
		// below) — no crossing edge, no segment — or (1 above, 1 below),
		// whose edge crosses the plane.
		if nAbove == 2 || nBelow == 2 {
			return LineSegment2D{}, false
		}
		var onIdx, aIdx, bIdx int = -1, -1, -1
		for i := 0; i < 3; i++ {
			switch c[i] {
			case on:
				onIdx = i
			case above:
				aIdx = i
			case below:
				bIdx = i
			}
		}
		onPt := Point2{X: v[onIdx].X, Y: v[onIdx].Y}
		crossPt := edgeIntersection(v[aIdx], v[bIdx], planeZ)
		seg = LineSegment2D{A: onPt, B: crossPt}

	default:
		// No ON vertices: 2-1 split of above/below. Exactly two edges
		// cross the plane.
		var pts []Point2
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			if c[i] != c[j] {
				pts = append(pts, edgeIntersection(v[i], v[j], planeZ))
			}
		}
		if len(pts) != 2 {
			return LineSegment2D{}, false
		}
		seg = LineSegment2D{A: pts[0], B: pts[1]}
	}

	if seg.isZeroLength() {
		return LineSegment2D{}, false
	}
	return seg, true
}

// edgeIntersection interpolates the point where the edge a->b crosses
// Z = planeZ. The parameter t is clamped to [0, 1] so floating-point
// overshoot at the boundary never extrapolates past either endpoint.
func edgeIntersection(a, b Point3, planeZ float64) Point2 {
	denom := b.Z - a.Z
	t := (planeZ - a.Z) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	p := a.Add(a.Sub(b).Scale(-t))
	return Point2{X: p.X, Y: p.Y}
}
