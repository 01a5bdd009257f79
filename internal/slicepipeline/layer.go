package slicepipeline

// PrintProfile is the subset of configuration the core cares about.
// internal/config's richer profile converts down to this and is
// responsible for validating it before handing it to Slice; Slice
// re-validates anyway so it stays correct as a standalone library call.
type PrintProfile struct {
	LayerHeight      float64
	FirstLayerHeight float64
}

// Layer is one planar cross-section: a 0-based index, its Z height, and the
// islands found there, sorted by outer area descending. A Layer with no
// islands is empty.
type Layer struct {
	Index    int
	Z        float64
	Islands  []Island
	Warnings []Warning
}

// IsEmpty reports whether the layer has no islands.
func (l Layer) IsEmpty() bool {
	return len(l.Islands) == 0
}

// LayerStack is the ordered sequence of layers produced by slicing, index-
// and Z-ascending. It may contain empty layers (below/above the mesh, or in
// internal gaps).
type LayerStack struct {
	Layers []Layer
}

// Warnings flattens every layer's warnings into a single ordered slice, for
// callers that just want a total count or a combined log.
func (s LayerStack) Warnings() []Warning {
	var all []Warning
	for _, l := range s.Layers {
		all = append(all, l.Warnings...)
	}
	return all
}
