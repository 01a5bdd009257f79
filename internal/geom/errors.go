package geom

import "github.com/pkg/errors"

// Sentinel error kinds for fatal failures: geometry and configuration
// errors surface immediately, wrapped with pkg/errors for the added stack
// context the CLI and preview endpoint use when reporting a failure back
// to a user (layer index, triangle index, offending coordinate).
var (
	// ErrInvalidGeometry marks a vertex containing NaN/Inf or a triangle
	// with out-of-range vertex indices.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidConfig marks a PrintProfile with a non-positive
	// layer_height or first_layer_height.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInternalInconsistency marks a stitched polygon that failed its
	// closure invariant after the builder claimed success. Seeing this
	// indicates a bug in the stitcher, not bad input.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)
