// Package slicepipeline implements the layer-building, island-classifying
// and orchestration stages of the slicer: stitching unordered 2D segments
// into closed polygons, grouping those polygons into nested (outer, holes)
// islands, and driving that work in parallel across a mesh's Z schedule.
package slicepipeline

import (
	"fmt"

	"github.com/chazu/lignin-slicer/internal/geom"
)

// Warning is a non-fatal finding recorded during stitching: an open
// contour that was discarded. Warnings never fail a slice — they drop
// content from one layer and are reported back to the caller as data, not
// logged directly, so the CLI and the preview server can each surface them
// in their own idiom. Coplanar triangles skipped by the intersector and
// degenerate polygons dropped by ClassifyIslands produce no Warning.
type Warning struct {
	LayerIndex int
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("layer %d: %s", w.LayerIndex, w.Message)
}

// StitchContours walks an unordered pool of same-Z line segments and
// stitches them into closed polygons with a greedy walk. Segments that
// never close (no connecting segment left in the pool) are discarded and
// reported as a warning; every other segment is consumed exactly once.
func StitchContours(segments []geom.LineSegment2D, layerIndex int) ([]geom.Polygon, []Warning) {
	pool := make([]geom.LineSegment2D, len(segments))
	copy(pool, segments)

	var polygons []geom.Polygon
	var warnings []Warning

	for len(pool) > 0 {
		// Step 2: start a new contour from the first pool segment.
		seg := pool[0]
		pool = pool[1:]

		start := seg.A
		frontier := seg.B
		verts := []geom.Point2{start, frontier}

		closed := false
		for {
			if frontier.Equal(start) {
				closed = true
				break
			}

			idx := findConnecting(pool, frontier)
			if idx < 0 {
				break
			}

			next := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)

			var other geom.Point2
			if next.A.Equal(frontier) {
				other = next.B
			} else {
				other = next.A
			}
			verts = append(verts, other)
			frontier = other
		}

		if closed {
			polygons = append(polygons, geom.Polygon{Vertices: verts})
		} else {
			warnings = append(warnings, Warning{
				LayerIndex: layerIndex,
				Message:    fmt.Sprintf("open contour discarded after %d segments (no connecting segment found)", len(verts)-1),
			})
		}
	}

	return polygons, warnings
}

// findConnecting returns the index of the first segment in pool with an
// endpoint within Epsilon of frontier, or -1. Ties resolve to whichever
// matching segment appears first in the pool.
func findConnecting(pool []geom.LineSegment2D, frontier geom.Point2) int {
	for i, s := range pool {
		if s.A.Equal(frontier) || s.B.Equal(frontier) {
			return i
		}
	}
	return -1
}
