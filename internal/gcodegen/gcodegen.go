// Package gcodegen renders a slicepipeline.LayerStack into G-code text.
// It only emits travel moves and closed-loop perimeter moves: no infill,
// no perimeter offsetting, no extrusion width or E-axis values. A printer
// fed this file traces every outline at Z height with the nozzle off.
package gcodegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/chazu/lignin-slicer/internal/config"
	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/chazu/lignin-slicer/internal/slicepipeline"
)

// GCodeProgram summarizes a completed emission: how many lines, layers, and
// islands it produced, for reporting back through internal/preview without
// needing to re-parse the file.
type GCodeProgram struct {
	Lines   int
	Layers  int
	Islands int
}

// Write renders stack as G-code to w using profile's speeds and start/end
// templates. Layers are emitted in index order regardless of the order
// slicepipeline.Slice computed them in.
func Write(w io.Writer, stack *slicepipeline.LayerStack, profile *config.PrintProfile) (GCodeProgram, error) {
	var program GCodeProgram
	lw := &lineWriter{w: w}

	if profile.GCodeStart != "" {
		lw.raw(profile.GCodeStart)
	}

	for _, layer := range stack.Layers {
		lw.printf("; layer %d, z=%.4f", layer.Index, layer.Z)
		lw.printf("G0 Z%.4f F%.1f", layer.Z, profile.TravelSpeedMMPerMin)
		program.Layers++

		for _, island := range layer.Islands {
			writeLoop(lw, island.Outer, profile)
			program.Islands++
			for _, hole := range island.Holes {
				writeLoop(lw, hole, profile)
			}
		}
	}

	if profile.GCodeEnd != "" {
		lw.raw(profile.GCodeEnd)
	}

	program.Lines = lw.lines
	return program, lw.err
}

// writeLoop emits a travel move to the polygon's first vertex followed by a
// G1 move through every remaining vertex and back to the start, closing the
// loop explicitly rather than relying on the printer to do it.
func writeLoop(lw *lineWriter, poly geom.Polygon, profile *config.PrintProfile) {
	if len(poly.Vertices) == 0 {
		return
	}
	first := poly.Vertices[0]
	lw.printf("G0 X%.4f Y%.4f F%.1f", first.X, first.Y, profile.TravelSpeedMMPerMin)
	for _, v := range poly.Vertices[1:] {
		lw.printf("G1 X%.4f Y%.4f F%.1f", v.X, v.Y, profile.PrintSpeedMMPerMin)
	}
	lw.printf("G1 X%.4f Y%.4f F%.1f", first.X, first.Y, profile.PrintSpeedMMPerMin)
}

// lineWriter tracks the first write error and keeps emitting subsequent
// calls as no-ops, so Write's body never needs its own error checks per
// line.
type lineWriter struct {
	w     io.Writer
	lines int
	err   error
}

func (lw *lineWriter) printf(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	if _, err := fmt.Fprintf(lw.w, format+"\n", args...); err != nil {
		lw.err = err
		return
	}
	lw.lines++
}

func (lw *lineWriter) raw(s string) {
	if lw.err != nil {
		return
	}
	if _, err := fmt.Fprint(lw.w, s); err != nil {
		lw.err = err
		return
	}
	lw.lines += strings.Count(s, "\n")
}
