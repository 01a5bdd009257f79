package slicepipeline

import (
	"runtime"
	"sync"

	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/pkg/errors"
)

// Option configures a Slice call.
type Option func(*sliceOptions)

type sliceOptions struct {
	onLayerDone func(index int)
}

// WithLayerProgress registers a callback invoked once per layer as soon as
// that layer's geometry has been computed. Layers may complete out of
// order (they run on a worker pool); the callback only reports that layer
// index's work is done, not that it is the next one in the final ordered
// stack. The serve command uses this to feed internal/preview's websocket
// progress stream; passing no option costs nothing.
func WithLayerProgress(fn func(index int)) Option {
	return func(o *sliceOptions) {
		o.onLayerDone = fn
	}
}

// Slice derives the Z schedule from mesh and profile, intersects every
// triangle against every scheduled plane, stitches and classifies each
// layer in parallel, and returns an index-ordered LayerStack.
//
// Fatal errors (ErrInvalidConfig for a non-positive layer height,
// ErrInvalidGeometry for malformed mesh data) abort the whole slice. Soft
// per-layer failures never do — they show up as that Layer's Warnings.
func Slice(mesh *geom.Mesh, profile PrintProfile, opts ...Option) (*LayerStack, error) {
	var o sliceOptions
	for _, opt := range opts {
		opt(&o)
	}

	if profile.LayerHeight <= 0 {
		return nil, errors.Wrapf(geom.ErrInvalidConfig, "layer_height must be positive, got %v", profile.LayerHeight)
	}
	if profile.FirstLayerHeight <= 0 {
		return nil, errors.Wrapf(geom.ErrInvalidConfig, "first_layer_height must be positive, got %v", profile.FirstLayerHeight)
	}
	if _, err := geom.NewMesh(mesh.Vertices, mesh.Triangles); err != nil {
		return nil, err
	}

	schedule := zSchedule(mesh, profile)
	if len(schedule) == 0 {
		return &LayerStack{}, nil
	}

	layers := make([]Layer, len(schedule))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workerCount())
	var firstErr error
	var errOnce sync.Once

	for i, z := range schedule {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, z float64) {
			defer wg.Done()
			defer func() { <-sem }()

			layer, err := buildLayer(mesh, i, z)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			layers[i] = layer
			if o.onLayerDone != nil {
				o.onLayerDone(i)
			}
		}(i, z)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return &LayerStack{Layers: layers}, nil
}

func workerCount() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// zSchedule computes the slab-centre Z heights to slice at, :
// layer 0 sits at zmin + h1/2; layer i>=1 sits at zmin + h1 + (i-1/2)*h. The
// schedule stops at the smallest N such that z(N-1) + h/2 >= zmax. A mesh
// with zero vertical extent (zmax == zmin) yields an empty schedule.
func zSchedule(mesh *geom.Mesh, profile PrintProfile) []float64 {
	if mesh.IsEmpty() {
		return nil
	}
	zmin := mesh.Bounds.Min.Z
	zmax := mesh.Bounds.Max.Z
	if zmax <= zmin {
		return nil
	}

	h := profile.LayerHeight
	h1 := profile.FirstLayerHeight

	var schedule []float64
	z := zmin + h1/2
	schedule = append(schedule, z)
	for z+h/2 < zmax {
		i := float64(len(schedule))
		z = zmin + h1 + (i-0.5)*h
		schedule = append(schedule, z)
	}
	return schedule
}

// buildLayer runs stages 2-4 (intersect, stitch, classify) for a single Z
// height, restricting triangle tests to those whose Z-range overlaps the
// plane.
func buildLayer(mesh *geom.Mesh, index int, z float64) (Layer, error) {
	var segments []geom.LineSegment2D

	for _, t := range mesh.Triangles {
		lo, hi := triangleZRange(mesh, t)
		if hi < z-geom.Epsilon || lo > z+geom.Epsilon {
			continue
		}
		seg, ok := geom.IntersectTrianglePlane(mesh, t, z)
		if ok {
			segments = append(segments, seg)
		}
	}

	polygons, warnings := StitchContours(segments, index)
	for _, p := range polygons {
		if !p.Closed() {
			return Layer{}, errors.Wrapf(geom.ErrInternalInconsistency,
				"layer %d: stitched polygon with %d vertices failed its closure invariant", index, len(p.Vertices))
		}
	}
	islands := ClassifyIslands(polygons)

	return Layer{
		Index:    index,
		Z:        z,
		Islands:  islands,
		Warnings: warnings,
	}, nil
}

func triangleZRange(mesh *geom.Mesh, t geom.Triangle) (lo, hi float64) {
	lo = mesh.Vertex(t, 0).Z
	hi = lo
	for i := 1; i < 3; i++ {
		z := mesh.Vertex(t, i).Z
		if z < lo {
			lo = z
		}
		if z > hi {
			hi = z
		}
	}
	return lo, hi
}
