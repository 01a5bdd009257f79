package slicepipeline

import (
	"math"
	"sort"

	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/samber/lo"
)

// Island is one outer polygon plus zero or more holes, canonically wound:
// the outer counter-clockwise, each hole clockwise.
type Island struct {
	Outer geom.Polygon
	Holes []geom.Polygon
}

// ClassifyIslands groups a layer's closed polygons into islands by depth
// parity. Degenerate polygons (|area| <= Epsilon) are dropped
// first. Islands are returned sorted by outer absolute area, descending,
// with equal-area ties broken by input order (stable sort).
func ClassifyIslands(polygons []geom.Polygon) []Island {
	kept := lo.Filter(polygons, func(p geom.Polygon, _ int) bool {
		return !p.IsDegenerate()
	})
	if len(kept) == 0 {
		return nil
	}

	depth := make([]int, len(kept))
	for i, a := range kept {
		for j, b := range kept {
			if i == j {
				continue
			}
			if representativeInside(a, b) {
				depth[i]++
			}
		}
	}

	var outerIdx, holeIdx []int
	for i := range kept {
		if depth[i]%2 == 0 {
			outerIdx = append(outerIdx, i)
		} else {
			holeIdx = append(holeIdx, i)
		}
	}

	islands := make([]Island, len(outerIdx))
	indexOfOuter := make(map[int]int, len(outerIdx)) // kept-index -> islands slice index
	for k, i := range outerIdx {
		outer := kept[i]
		if outer.IsClockwise() {
			outer = outer.Reversed()
		}
		islands[k] = Island{Outer: outer}
		indexOfOuter[i] = k
	}

	// Step 4: assign each hole to the containing outer of minimum
	// enclosing area.
	for _, hi := range holeIdx {
		hole := kept[hi]
		best := -1
		bestArea := 0.0
		for _, oi := range outerIdx {
			if representativeInside(hole, kept[oi]) {
				a := kept[oi].Area()
				if best < 0 || a < bestArea {
					best = oi
					bestArea = a
				}
			}
		}
		if best < 0 {
			// No enclosing outer found (can happen for a mis-nested or
			// self-touching contour); drop the hole rather than guess.
			continue
		}
		if !hole.IsClockwise() {
			hole = hole.Reversed()
		}
		k := indexOfOuter[best]
		islands[k].Holes = append(islands[k].Holes, hole)
	}

	sort.SliceStable(islands, func(i, j int) bool {
		return islands[i].Outer.Area() > islands[j].Outer.Area()
	})

	return islands
}

// representativeInside reports whether polygon a's representative interior
// point lies inside polygon b. The representative point is a's first vertex
// nudged a small step along the inward normal of the edge leaving it — a
// point that sits just inside a's own boundary ring when the interior angle
// at that vertex is at least 90 degrees (at a sharper vertex the nudge can
// land outside a). A's centroid is
// not safe to use here: when a is the outer contour of a ring that encloses
// a hole (or a hole that itself encloses a nested island), the centroid can
// fall inside that enclosed sibling rather than inside a's own filled area,
// which would count a's nesting depth against the wrong polygon.
func representativeInside(a, b geom.Polygon) bool {
	return b.Contains(nudgedVertex(a))
}

// nudgedVertex returns a's first vertex offset by a small step toward the
// polygon's interior, along the inward normal of the edge leaving that
// vertex.
func nudgedVertex(a geom.Polygon) geom.Point2 {
	n := len(a.Vertices)
	v0 := a.Vertices[0]
	v1 := a.Vertices[1%n]
	ex, ey := v1.X-v0.X, v1.Y-v0.Y
	length := math.Sqrt(ex*ex + ey*ey)
	if length > geom.Epsilon {
		ex, ey = ex/length, ey/length
	}
	// Rotate the edge direction 90 degrees; the sign depends on winding so
	// that the nudge points inward regardless of orientation. Interior lies
	// to the left of a CCW edge (normal (-ey,ex)) and to the right of a CW
	// edge (normal (ey,-ex)).
	var nx, ny float64
	if a.IsClockwise() {
		nx, ny = ey, -ex
	} else {
		nx, ny = -ey, ex
	}
	const step = geom.Epsilon * 1e3
	return geom.Point2{X: v0.X + nx*step, Y: v0.Y + ny*step}
}
