package gcodegen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/chazu/lignin-slicer/internal/config"
	"github.com/chazu/lignin-slicer/internal/geom"
	"github.com/chazu/lignin-slicer/internal/slicepipeline"
)

func unitCubeStack() *slicepipeline.LayerStack {
	// Five layers at the Z heights a 1mm cube slices to at
	// layer_height = first_layer_height = 0.2mm.
	zs := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	square := geom.Polygon{Vertices: []geom.Point2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}}

	layers := make([]slicepipeline.Layer, len(zs))
	for i, z := range zs {
		layers[i] = slicepipeline.Layer{
			Index:   i,
			Z:       z,
			Islands: []slicepipeline.Island{{Outer: square}},
		}
	}
	return &slicepipeline.LayerStack{Layers: layers}
}

func TestWriteEmitsOneLayerChangeCommentPerLayer(t *testing.T) {
	profile := &config.PrintProfile{PrintSpeedMMPerMin: 1800, TravelSpeedMMPerMin: 3000}
	var buf strings.Builder

	program, err := Write(&buf, unitCubeStack(), profile)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if program.Layers != 5 {
		t.Errorf("program.Layers = %d, want 5", program.Layers)
	}

	out := buf.String()
	count := strings.Count(out, "; layer ")
	if count != 5 {
		t.Errorf("layer-change comment count = %d, want 5", count)
	}
	for _, tok := range strings.Fields(out) {
		if strings.HasPrefix(tok, "E") {
			if _, err := strconv.ParseFloat(tok[1:], 64); err == nil {
				t.Errorf("found E-axis token %q, gcodegen must not emit extrusion", tok)
			}
		}
	}
}

func TestWritePassesThroughStartEndTemplates(t *testing.T) {
	profile := &config.PrintProfile{
		PrintSpeedMMPerMin:  1800,
		TravelSpeedMMPerMin: 3000,
		GCodeStart:          "G28\n",
		GCodeEnd:            "M104 S0\n",
	}
	var buf strings.Builder
	if _, err := Write(&buf, unitCubeStack(), profile); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "G28\n") {
		t.Errorf("output does not start with GCodeStart template: %q", out[:20])
	}
	if !strings.HasSuffix(out, "M104 S0\n") {
		t.Errorf("output does not end with GCodeEnd template")
	}
}

func TestWriteClosesEachLoop(t *testing.T) {
	profile := &config.PrintProfile{PrintSpeedMMPerMin: 1800, TravelSpeedMMPerMin: 3000}
	var buf strings.Builder
	if _, err := Write(&buf, unitCubeStack(), profile); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var g1 []string
	for _, l := range lines {
		if strings.HasPrefix(l, "G1 ") {
			g1 = append(g1, l)
		}
	}
	// 4 vertices -> 3 intermediate G1 moves + 1 closing move back to the
	// start, per layer.
	if len(g1)%4 != 0 {
		t.Errorf("G1 move count = %d, want a multiple of 4", len(g1))
	}
}

func TestWriteEmptyStack(t *testing.T) {
	profile := &config.PrintProfile{PrintSpeedMMPerMin: 1800, TravelSpeedMMPerMin: 3000}
	var buf strings.Builder
	program, err := Write(&buf, &slicepipeline.LayerStack{}, profile)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if program.Layers != 0 || program.Islands != 0 {
		t.Errorf("program = %+v, want zero layers/islands", program)
	}
}
