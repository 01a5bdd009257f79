package geom

// Polygon is an ordered sequence of 2D vertices. A Polygon produced by the
// layer builder (internal/slicepipeline) is always closed: its first and
// last vertices are equal within Epsilon. Nothing in this type enforces
// that invariant at construction time — it is an output contract of the
// stitcher, checked by tests and by the orchestrator's sanity pass (see
// ErrInternalInconsistency).
type Polygon struct {
	Vertices []Point2
}

// Closed reports whether the polygon satisfies the stitcher's output
// contract: at least a triangle's worth of vertices, first and last equal
// within Epsilon.
func (p Polygon) Closed() bool {
	if len(p.Vertices) < 3 {
		return false
	}
	return p.Vertices[0].Equal(p.Vertices[len(p.Vertices)-1])
}

// SignedArea computes the polygon's signed area via the shoelace formula.
// Positive is counter-clockwise, negative is clockwise, by the package's
// convention. The last vertex is assumed to close back to the
// first; callers must not pass an already-duplicated closing vertex when
// they want the "intrinsic" polygon (i.e. construct Polygon from only the
// N distinct vertices — the stitcher's output, with its explicit repeated
// closing vertex, is handled the same because the repeated vertex
// contributes a zero-area term).
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}
	return sum / 2
}

// Area returns the absolute value of SignedArea.
func (p Polygon) Area() float64 {
	a := p.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsDegenerate reports whether the polygon's absolute signed area is at or
// below Epsilon — callers (the island classifier and anything downstream)
// must discard such polygons rather than treat them as valid contours.
func (p Polygon) IsDegenerate() bool {
	return p.Area() <= Epsilon
}

// IsClockwise reports whether the polygon winds clockwise (signed area < 0).
func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// Reversed returns a copy of the polygon with vertex order reversed, which
// flips its winding (the same set of points, just traversed the other way).
// The copy starts at the original's last vertex; for a stitched polygon,
// whose last vertex repeats its first, the start point is unchanged.
func (p Polygon) Reversed() Polygon {
	n := len(p.Vertices)
	out := make([]Point2, n)
	for i, v := range p.Vertices {
		out[n-1-i] = v
	}
	return Polygon{Vertices: out}
}

// BoundingBox2D is the axis-aligned range over the polygon's vertices.
type BoundingBox2D struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns the polygon's axis-aligned bounding box. Panics on an
// empty polygon; callers never build one with zero vertices.
func (p Polygon) Bounds() BoundingBox2D {
	bb := BoundingBox2D{
		MinX: p.Vertices[0].X, MaxX: p.Vertices[0].X,
		MinY: p.Vertices[0].Y, MaxY: p.Vertices[0].Y,
	}
	for _, v := range p.Vertices[1:] {
		if v.X < bb.MinX {
			bb.MinX = v.X
		}
		if v.X > bb.MaxX {
			bb.MaxX = v.X
		}
		if v.Y < bb.MinY {
			bb.MinY = v.Y
		}
		if v.Y > bb.MaxY {
			bb.MaxY = v.Y
		}
	}
	return bb
}

// Contains reports whether pt lies inside the polygon, using horizontal
// ray-casting to the right from pt. A point exactly on the boundary is
// treated as inside. Edges horizontal at pt's Y contribute
// no crossings; edges with exactly one endpoint at pt's Y use the
// "upward-inclusive, downward-exclusive" convention to avoid double
// counting crossings at shared vertices.
func (p Polygon) Contains(pt Point2) bool {
	if p.onBoundary(pt) {
		return true
	}

	n := len(p.Vertices)
	inside := false
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]

		if equal(a.Y, b.Y) {
			continue // horizontal edge contributes no crossings
		}

		upward := b.Y > a.Y
		var lo, hi Point2
		if upward {
			lo, hi = a, b
		} else {
			lo, hi = b, a
		}

		// Upward edge inclusive of its lower endpoint, exclusive of its
		// upper endpoint; downward edge the opposite — this is the same
		// rule restated either way round, applied consistently here as
		// "[lo.Y, hi.Y)".
		if pt.Y < lo.Y || pt.Y >= hi.Y {
			continue
		}

		t := (pt.Y - lo.Y) / (hi.Y - lo.Y)
		xCross := lo.X + t*(hi.X-lo.X)
		if xCross > pt.X {
			inside = !inside
		}
	}
	return inside
}

// onBoundary reports whether pt lies on any edge of the polygon within
// Epsilon.
func (p Polygon) onBoundary(pt Point2) bool {
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		if pointOnSegment(pt, a, b) {
			return true
		}
	}
	return false
}

func pointOnSegment(pt, a, b Point2) bool {
	// Cross product near zero => colinear; then check pt is within the
	// segment's bounding box.
	cross := (pt.X-a.X)*(b.Y-a.Y) - (pt.Y-a.Y)*(b.X-a.X)
	segLenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	if segLenSq <= Epsilon*Epsilon {
		return point2Equal(pt, a)
	}
	if cross*cross > Epsilon*Epsilon*segLenSq {
		return false
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return pt.X >= minX-Epsilon && pt.X <= maxX+Epsilon && pt.Y >= minY-Epsilon && pt.Y <= maxY+Epsilon
}
